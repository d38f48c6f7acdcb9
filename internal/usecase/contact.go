package usecase

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/validation"
)

type contactUsecase struct {
	mailCfg   config.MailConfig
	transport email.Transport
}

// NewContactUsecase creates a new contact usecase. transport may be nil when
// it could not be built; submissions then fail as a configuration error.
func NewContactUsecase(mailCfg config.MailConfig, transport email.Transport) domain.ContactUsecase {
	return &contactUsecase{
		mailCfg:   mailCfg,
		transport: transport,
	}
}

func (uc *contactUsecase) MailConfigured() bool {
	return uc.transport != nil && uc.mailCfg.IsConfigured()
}

// SendContactMessage validates the contact request and sends the email.
// Nothing reaches the transport unless every earlier step passed.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) (string, error) {
	form := req.Form().Trimmed()

	if errs := validation.ValidateContact(form); errs != nil {
		return "", apperror.Validation(errs, domain.ErrInvalidFields)
	}

	if !uc.MailConfigured() {
		logger.Log.Error("[Contact] Missing mail configuration", presenceAttrs(uc.mailCfg, uc.transport != nil)...)
		return "", apperror.New(http.StatusInternalServerError,
			"Email service is not configured. Please try again later.", domain.ErrMailNotConfigured)
	}

	if err := uc.transport.Verify(ctx); err != nil {
		logger.Log.Error("[Contact] Mail transport verify failed", "driver", uc.mailCfg.Driver, "error", err.Error())
		return "", apperror.New(http.StatusInternalServerError,
			fmt.Sprintf("%s connection failed: %s", uc.transportLabel(), err.Error()),
			fmt.Errorf("%w: %w", domain.ErrMailVerify, err))
	}

	msg, err := email.NewContactMessage(email.ContactEmailData{
		SenderName:  form.Name,
		SenderEmail: form.Email,
		Message:     form.Message,
	}, uc.mailCfg.ContactTo, uc.mailCfg.From())
	if err != nil {
		return "", apperror.Internal(err)
	}

	if err := uc.transport.Send(ctx, msg); err != nil {
		logger.Log.Error("[Contact] Email send error", "driver", uc.mailCfg.Driver, "error", err.Error())
		return "", apperror.New(http.StatusInternalServerError,
			fmt.Sprintf("Failed to send email: %s", err.Error()),
			fmt.Errorf("%w: %w", domain.ErrMailSend, err))
	}

	logger.Log.Info("[Contact] Email sent successfully", "to", uc.mailCfg.ContactTo)
	return domain.ContactSuccessMessage, nil
}

func (uc *contactUsecase) transportLabel() string {
	if uc.mailCfg.Driver == config.MailDriverSES {
		return "SES"
	}
	return "SMTP"
}

// presenceAttrs flattens MailConfig.Presence into sorted slog key/value pairs
func presenceAttrs(cfg config.MailConfig, transportReady bool) []any {
	presence := cfg.Presence()
	keys := make([]string, 0, len(presence))
	for k := range presence {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := []any{"driver", cfg.Driver, "transport_ready", transportReady}
	for _, k := range keys {
		attrs = append(attrs, k, presence[k])
	}
	return attrs
}
