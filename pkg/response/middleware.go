package response

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors pushed onto the Gin context into the response
// envelope. Every handler reports failures with c.Error and returns; nothing
// else writes error bodies. With devMode enabled, 5xx responses carry the stack
// trace that led to them.
func ErrorHandler(devMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		var apiErr *APIError
		if !errors.As(last.Err, &apiErr) {
			apiErr = NewInternal(last.Err)
			if !devMode {
				apiErr.Message = "Internal Server Error"
				apiErr.Errors = nil
			}
		}

		env := Envelope{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			Success:    false,
			Errors:     apiErr.Errors,
		}
		if devMode && apiErr.StatusCode >= http.StatusInternalServerError {
			env.Stack = string(debug.Stack())
		}

		c.JSON(apiErr.StatusCode, env)
	}
}
