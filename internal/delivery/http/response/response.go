package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response. Exactly one of Message,
// Error or Errors is set on contact outcomes.
type Response struct {
	OK        bool              `json:"ok"`
	Message   string            `json:"message,omitempty"`
	Error     string            `json:"error,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
	Data      interface{}       `json:"data,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get(RequestIDKey)
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}

// RequestIDKey is the gin context key holding the request ID
const RequestIDKey = "RequestID"

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		OK:        true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		OK:        false,
		Error:     message,
		RequestID: requestID(c),
	})
}

// FieldErrors sends a field-attributable validation failure
func FieldErrors(c *gin.Context, code int, fields map[string]string) {
	c.JSON(code, Response{
		OK:        false,
		Errors:    fields,
		RequestID: requestID(c),
	})
}
