package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The API speaks the same wire format as the dashboard and mobile clients
// expect: successful calls return the resource payload directly, errors return
// {"message": "..."}. A few auth endpoints wrap their payload in an envelope
// with a success flag and a localized message.

// Envelope is the {success, data, message} wrapper used by registration and
// login endpoints.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ── success ──

// OK writes the payload with 200.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes the payload with 201.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// OKMessage writes 200 with a bare {"message": ...} body.
func OKMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// OKEnvelope writes 200 with a {success, data, message} envelope.
func OKEnvelope(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

// CreatedEnvelope writes 201 with a {success, data, message} envelope.
func CreatedEnvelope(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data, Message: message})
}

// ── errors ──

// Error writes {"message": ...} with an arbitrary status.
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{"message": message})
}

// ErrorEnvelope writes {success: false, message} with an arbitrary status.
// Used by the staff auth endpoints, whose clients check the success flag.
func ErrorEnvelope(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, Envelope{Success: false, Message: message})
}

// BadRequest writes 400.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized writes 401.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden writes 403.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound writes 404.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// TooManyRequests writes 429.
func TooManyRequests(c *gin.Context, message string) {
	Error(c, http.StatusTooManyRequests, message)
}

// InternalError writes the generic 500 body.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}
