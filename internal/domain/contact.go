package domain

import (
	"context"
	"errors"

	"portfolio-backend/pkg/validation"
)

// ContactRequest represents a contact form submission. Missing JSON fields
// decode as empty strings; the usecase owns all field validation.
type ContactRequest struct {
	Name    string `json:"name" example:"Jane"`
	Email   string `json:"email" example:"jane@example.com"`
	Message string `json:"message" example:"Hello, I would like to connect."`
}

// Form converts the request into the shared validation form
func (r *ContactRequest) Form() validation.ContactForm {
	return validation.ContactForm{
		Name:    r.Name,
		Email:   r.Email,
		Message: r.Message,
	}
}

// ContactSuccessMessage is returned to the caller once the email is handed to the relay
const ContactSuccessMessage = "Thanks! Your message has been sent."

// Terminal failure classes of a contact submission. Each is wrapped by the
// *apperror.AppError the usecase returns.
var (
	ErrInvalidBody       = errors.New("invalid request body")
	ErrInvalidFields     = errors.New("contact fields failed validation")
	ErrMailNotConfigured = errors.New("email service is not configured")
	ErrMailVerify        = errors.New("mail transport verification failed")
	ErrMailSend          = errors.New("mail transport send failed")
)

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission and relays it by email.
	// On success it returns the confirmation shown to the submitter.
	SendContactMessage(ctx context.Context, req *ContactRequest) (string, error)
	// MailConfigured reports whether the mail transport has its required settings
	MailConfigured() bool
}

// HealthUsecase reports service readiness for the health endpoint
type HealthUsecase interface {
	Check(ctx context.Context) map[string]any
}
