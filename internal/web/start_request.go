package web

import (
	"time"

	"github.com/gin-gonic/gin"
)

// CurrentTimeFunc is swapped out in tests that pin the trace duration.
var CurrentTimeFunc = time.Now

// StartRequest stamps the request start for the trace log at the end of the
// chain.
func StartRequest(c *gin.Context) {
	c.Set("requestStartTime", CurrentTimeFunc())
}
