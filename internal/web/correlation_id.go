package web

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CorrelationId takes the id from the x-correlation-id header so a caller
// can follow one availability document across services; without the header a
// fresh id is minted.
func CorrelationId(c *gin.Context) {
	correlationId := c.GetHeader("x-correlation-id")
	if correlationId == "" {
		correlationId = uuid.New().String()
	}

	c.Set("correlationId", correlationId)
}
