package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Recovery catches panics and returns a generic 500 payload. Only a
// type tag of the recovered value leaks to the caller; the full value
// stays in the server log.
func Recovery(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error().
					Interface("panic", rec).
					Str("path", c.Request.URL.Path).
					Msg("recovered from panic in handler")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"detail": "An unexpected error occurred. Please try again later.",
					"type":   fmt.Sprintf("%T", rec),
				})
			}
		}()
		c.Next()
	}
}
