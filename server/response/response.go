package response

import (
	"github.com/gin-gonic/gin"
)

// JSON writes the standard response envelope
func JSON(c *gin.Context, message string, status int, data interface{}, err error) {
	errMessage := ""
	if err != nil {
		errMessage = err.Error()
	}
	responsedata := gin.H{
		"message": message,
		"data":    data,
		"errors":  errMessage,
		"status":  status,
	}

	c.JSON(status, responsedata)
}

// JSONWithFieldErrors writes a validation failure with per-field messages
func JSONWithFieldErrors(c *gin.Context, message string, status int, fieldErrors []error) {
	messages := make([]string, 0, len(fieldErrors))
	for _, err := range fieldErrors {
		messages = append(messages, err.Error())
	}
	c.JSON(status, gin.H{
		"message": message,
		"data":    nil,
		"errors":  messages,
		"status":  status,
	})
}
