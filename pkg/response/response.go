package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response wrapper shared by every endpoint.
type Envelope[T any] struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    T                 `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Success writes a success envelope with the given status and payload.
func Success[T any](c *gin.Context, status int, message string, data T) {
	c.JSON(status, Envelope[T]{Success: true, Message: message, Data: data})
}

// Message writes a success envelope without a data payload.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope[any]{Success: true, Message: message})
}

// Error writes a failure envelope carrying only a message.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope[any]{Success: false, Message: message})
}

// ErrorWithFields writes a failure envelope with field-level errors,
// used for validation failures and duplicate-identity conflicts.
func ErrorWithFields(c *gin.Context, status int, message string, fields map[string]string) {
	c.JSON(status, Envelope[any]{Success: false, Message: message, Errors: fields})
}

// AbortError writes a failure envelope and aborts the middleware chain.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope[any]{Success: false, Message: message})
}
