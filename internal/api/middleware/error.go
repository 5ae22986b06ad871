package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns a panic anywhere in the handler chain into a JSON 500
// carrying the API's error envelope. The recovered value goes to the
// component logger; the client never sees it.
func ErrorHandler() gin.HandlerFunc {
	log := NewLogger("recover")
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request panicked")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    "INTERNAL_ERROR",
				"message": "unexpected server error",
			},
		})
	})
}
