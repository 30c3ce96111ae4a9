package handling

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HandleError logs the failure on the request logger and writes the plain
// single-line message as the response body. Callers abort the chain
// themselves when used from middleware.
func HandleError(ctx *gin.Context, status int, message string, err error) {
	if log, ok := ctx.Get("logger"); ok {
		event := log.(*zerolog.Logger).Error().Str("label", "handled-error")
		if err != nil {
			event = event.Err(err)
		}
		event.Int("code", status).Msg(message)
	}

	ctx.String(status, message)
}
