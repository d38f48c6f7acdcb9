package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a JSON field name to a human-readable violation.
// A field without an entry is valid.
type FieldErrors map[string]string

// FormField is the key used when a failure cannot be attributed to one field
const FormField = "form"

// FieldLabels maps JSON field names to user-facing labels
var FieldLabels = map[string]string{
	"name":    "Name",
	"email":   "Email",
	"message": "Message",
}

// FormatValidationErrors converts validator.ValidationErrors to one message per field.
// Only the first failing rule of each field is reported.
func FormatValidationErrors(err error) FieldErrors {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error; keep the form unsubmittable
		return FieldErrors{FormField: err.Error()}
	}

	out := make(FieldErrors, len(validationErrors))
	for _, e := range validationErrors {
		if _, seen := out[e.Field()]; seen {
			continue
		}
		out[e.Field()] = formatSingleError(e)
	}
	return out
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "contact_email", "email":
		return "Enter a valid email"

	case "min":
		return fmt.Sprintf("%s should be at least %s characters", label, e.Param())

	case "max":
		return fmt.Sprintf("%s should be at most %s characters", label, e.Param())

	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
