package validation_test

import (
	"strings"
	"testing"

	"portfolio-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func TestValidateContact(t *testing.T) {
	t.Run("Should accept a complete submission", func(t *testing.T) {
		errs := validation.ValidateContact(validation.ContactForm{
			Name:    "Jane",
			Email:   "jane@example.com",
			Message: "Hello, I would like to connect.",
		})
		assert.Nil(t, errs)
	})

	t.Run("Should report every empty field", func(t *testing.T) {
		errs := validation.ValidateContact(validation.ContactForm{Name: "  ", Email: "\t", Message: "\n"})
		assert.Equal(t, validation.FieldErrors{
			"name":    "Name is required",
			"email":   "Email is required",
			"message": "Message is required",
		}, errs)
	})

	t.Run("Should report one entry per invalid field", func(t *testing.T) {
		errs := validation.ValidateContact(validation.ContactForm{Name: "", Email: "bad", Message: "hi"})
		assert.Equal(t, validation.FieldErrors{
			"name":    "Name is required",
			"email":   "Enter a valid email",
			"message": "Message should be at least 10 characters",
		}, errs)
	})

	t.Run("Should trim before checking", func(t *testing.T) {
		errs := validation.ValidateContact(validation.ContactForm{
			Name:    "  Jane  ",
			Email:   "  jane@example.com  ",
			Message: "   0123456789   ",
		})
		assert.Nil(t, errs)
	})

	t.Run("Should be idempotent", func(t *testing.T) {
		form := validation.ContactForm{Name: "", Email: "a@b", Message: "short"}
		assert.Equal(t, validation.ValidateContact(form), validation.ValidateContact(form))
	})
}

func TestValidateContactEmail(t *testing.T) {
	valid := []string{"x@y.z", "jane@example.com", "first.last@sub.domain.org", "a+b@c.io"}
	for _, email := range valid {
		t.Run("valid "+email, func(t *testing.T) {
			assert.Empty(t, validation.ValidateContactField("email", email))
		})
	}

	invalid := []string{"bad", "jane.example.com", "jane@example", "@example.com", "jane@.com", "ja ne@example.com", "jane@exa mple.com", "a@b@c.d",
		"a\u00a0b@x.io", "jane@exa\u2003mple.com", "ja\u3000ne@example.com", "jane@example.c\ufeffom", "jane@example.c\vom"}
	for _, email := range invalid {
		t.Run("invalid "+email, func(t *testing.T) {
			assert.Equal(t, "Enter a valid email", validation.ValidateContactField("email", email))
		})
	}
}

func TestValidateContactMessageLength(t *testing.T) {
	for n := 1; n <= 9; n++ {
		msg := strings.Repeat("a", n)
		assert.Equal(t, "Message should be at least 10 characters", validation.ValidateContactField("message", msg), "length %d", n)
	}
	for _, n := range []int{10, 11, 200} {
		assert.Empty(t, validation.ValidateContactField("message", strings.Repeat("a", n)), "length %d", n)
	}

	t.Run("Should count characters, not bytes", func(t *testing.T) {
		assert.Equal(t, "Message should be at least 10 characters", validation.ValidateContactField("message", "ééééééééé"))
		assert.Empty(t, validation.ValidateContactField("message", "éééééééééé"))
	})
}

func TestValidateContactFieldUnknown(t *testing.T) {
	assert.Empty(t, validation.ValidateContactField("subject", ""))
}
