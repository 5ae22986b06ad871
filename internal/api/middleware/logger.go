package middleware

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewLogger builds the component-tagged logger the API uses everywhere.
func NewLogger(component string) zerolog.Logger {
	return zerolog.New(os.Stdout).With().Timestamp().Str("component", component).Logger()
}

// Logger logs one structured event per request.
func Logger() gin.HandlerFunc {
	log := NewLogger("api")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
