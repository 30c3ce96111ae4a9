package web

import (
	"encoding/xml"
	"errors"
	"io"
	"net/http"

	"bitbucket.org/crgw/availability-hub/internal/availability"
	"bitbucket.org/crgw/availability-hub/internal/handling"
	"bitbucket.org/crgw/availability-hub/internal/schema"
	"bitbucket.org/crgw/availability-hub/internal/tools/slowlog"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AvailabilityHandler binds the XML request document, runs the
// validation-and-pricing pipeline and writes the priced response. Rule
// violations come back as the plain single-line message with a 422;
// rate-table gaps as a 500.
func AvailabilityHandler(service *availability.Service) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		logger := ctx.MustGet("logger").(*zerolog.Logger)

		body, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			handling.HandleError(ctx, http.StatusBadRequest, "failed to read request document", err)
			return
		}

		var doc schema.AvailabilityDocument
		if err := xml.Unmarshal(body, &doc); err != nil {
			handling.HandleError(ctx, http.StatusBadRequest, "failed to parse request document", err)
			return
		}

		slowLog := slowlog.CreateLogger(logger)
		slowLog.Start("availability")
		response, err := service.GetAvailability(ctx.Request.Context(), &doc, logger)
		slowLog.Stop("availability")

		if err != nil {
			var ruleErr *availability.RuleError
			if errors.As(err, &ruleErr) {
				handling.HandleError(ctx, http.StatusUnprocessableEntity, ruleErr.Error(), ruleErr)
				return
			}

			handling.HandleError(ctx, http.StatusInternalServerError, err.Error(), err)
			return
		}

		ctx.JSON(http.StatusOK, response)
	}
}
