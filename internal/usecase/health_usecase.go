package usecase

import (
	"context"

	"portfolio-backend/internal/domain"
)

type healthUsecase struct {
	contactUC domain.ContactUsecase
}

func NewHealthUsecase(contactUC domain.ContactUsecase) domain.HealthUsecase {
	return &healthUsecase{contactUC: contactUC}
}

// Check reports liveness and whether the contact form can send mail. It never
// dials the mail server.
func (u *healthUsecase) Check(ctx context.Context) map[string]any {
	return map[string]any{
		"status":          "ok",
		"mail_configured": u.contactUC.MailConfigured(),
	}
}
