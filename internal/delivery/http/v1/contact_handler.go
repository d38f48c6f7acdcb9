package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
	metrics   *metrics.ContactMetrics
}

// NewContactHandler registers the contact routes (public, no auth required).
// m may be nil.
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, m *metrics.ContactMetrics) {
	handler := &ContactHandler{
		contactUC: contactUC,
		metrics:   m,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates the submission and relays it to the site owner by email.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	start := time.Now()

	var req domain.ContactRequest
	if err := bindStrictJSON(c, &req); err != nil {
		h.metrics.Observe(metrics.OutcomeInvalidBody, time.Since(start))
		c.Error(apperror.New(http.StatusBadRequest, "Invalid request body", domain.ErrInvalidBody))
		return
	}

	message, err := h.contactUC.SendContactMessage(c.Request.Context(), &req)
	h.metrics.Observe(outcomeOf(err), time.Since(start))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, message, nil)
}

// bindStrictJSON decodes the whole body into v. Unlike ShouldBindJSON it
// rejects trailing data after the first JSON value.
func bindStrictJSON(c *gin.Context, v any) error {
	body, err := c.GetRawData()
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSent
	case errors.Is(err, domain.ErrInvalidFields):
		return metrics.OutcomeInvalidFields
	case errors.Is(err, domain.ErrMailNotConfigured):
		return metrics.OutcomeNotConfigured
	case errors.Is(err, domain.ErrMailVerify):
		return metrics.OutcomeVerifyFailed
	case errors.Is(err, domain.ErrMailSend):
		return metrics.OutcomeSendFailed
	default:
		return metrics.OutcomeError
	}
}
