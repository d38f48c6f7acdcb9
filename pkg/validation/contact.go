package validation

import "strings"

// ContactForm is the shared rule set for a contact submission. Client and
// server both validate through ValidateContact so their messages never drift.
type ContactForm struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,contact_email"`
	Message string `json:"message" validate:"required,min=10"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field
func (f ContactForm) Trimmed() ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
}

var contactValidator = New()

// ValidateContact trims the form and checks it. It returns nil when the form
// is submittable.
func ValidateContact(f ContactForm) FieldErrors {
	errs := FormatValidationErrors(contactValidator.Struct(f.Trimmed()))
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateContactField checks a single field in isolation and returns its
// violation, or "" when the value is acceptable.
func ValidateContactField(field, value string) string {
	var f ContactForm
	switch field {
	case "name":
		f.Name = value
	case "email":
		f.Email = value
	case "message":
		f.Message = value
	default:
		return ""
	}
	return ValidateContact(f)[field]
}
