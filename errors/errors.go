package errors

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
)

// Error is the API error type. It pairs a message with the HTTP status
// the handler should answer with.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

var (
	ErrNotFound            = New("resource not found", http.StatusNotFound)
	ErrBadRequest          = New("bad request", http.StatusBadRequest)
	ErrUnauthorized        = New("unauthorized", http.StatusUnauthorized)
	ErrInternalServerError = New("internal server error", http.StatusInternalServerError)
	InActiveUserError      = New("user inactive", http.StatusUnauthorized)
)

func New(message string, status int) *Error {
	return &Error{
		Message: message,
		Status:  status,
	}
}

// Error satisfies the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// GetUniqueContraintError maps postgres duplicate-key failures to a 400
// so callers don't leak raw constraint names to clients.
func GetUniqueContraintError(err error) *Error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "duplicate key value") || strings.Contains(err.Error(), "23505") {
		return New("record already exists", http.StatusBadRequest)
	}
	return New(err.Error(), http.StatusBadRequest)
}

// ErrorHandler responds for requests rejected by the rate limiter.
func ErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{
		"error": fmt.Sprintf("too many requests, retry after %s", time.Until(info.ResetTime).Round(time.Second)),
	})
}
