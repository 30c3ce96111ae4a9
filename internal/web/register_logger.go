package web

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RegisterLogger puts a correlation-tagged logger on the context; handlers
// and the grouping middleware pick it up with MustGet("logger").
func RegisterLogger(logger *zerolog.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		correlationId := c.MustGet("correlationId").(string)

		requestLogger := logger.
			With().
			Str("correlationId", correlationId).
			Logger()

		c.Set("logger", &requestLogger)
	}
}
