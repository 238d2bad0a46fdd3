package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the body shape shared by every endpoint, success or failure.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Success    bool        `json:"success"`
	Errors     interface{} `json:"errors,omitempty"`
	Stack      string      `json:"stack,omitempty"`
}

// OK writes a success envelope with the given status, message and data.
func OK(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Envelope{
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
		Success:    statusCode < http.StatusBadRequest,
	})
}
