package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"starblog/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorHandler recovers panics and renders the last error a handler attached
// with c.Error. *response.APIError is rendered as-is; anything else becomes a
// logged 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				zerolog.Ctx(c.Request.Context()).Error().
					Str("panic", fmt.Sprint(recovered)).
					Bytes("stack", debug.Stack()).
					Msg("request panicked")
				render(c, response.Internal())
				c.Abort()
				return
			}

			if len(c.Errors) == 0 || c.Writer.Written() {
				return
			}

			err := c.Errors.Last().Err
			var apiErr *response.APIError
			if errors.As(err, &apiErr) {
				render(c, apiErr)
				return
			}

			zerolog.Ctx(c.Request.Context()).Error().Err(err).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("unhandled request error")
			render(c, response.Internal())
		}()

		c.Next()
	}
}

func render(c *gin.Context, e *response.APIError) {
	status := e.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.JSON(status, e)
}
