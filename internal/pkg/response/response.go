package response

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// APIError is the single error type handlers hand to the error middleware.
// It is rendered as {"message": ..., "code": ...} with Status.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

func New(status int, message string) *APIError {
	return &APIError{
		Status:  status,
		Code:    codeFor(status),
		Message: message,
	}
}

func BadRequest(message string) *APIError {
	return New(http.StatusBadRequest, message)
}

func NotFound(message string) *APIError {
	return New(http.StatusNotFound, message)
}

func Conflict(message string) *APIError {
	return New(http.StatusConflict, message)
}

// Internal hides the cause from clients; the middleware logs it.
func Internal() *APIError {
	return New(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// Abort records err on the context for the error middleware and stops the chain.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// Message writes {"message": msg} with the given status.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// codeFor turns "Not Found" into "NOT_FOUND".
func codeFor(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}
