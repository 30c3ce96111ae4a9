package web

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"bitbucket.org/crgw/availability-hub/internal/availability"
	"bitbucket.org/crgw/availability-hub/internal/tools/redisfactory"
	"bitbucket.org/crgw/availability-hub/internal/trafficlight/grouping"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func SetupRouter(log *zerolog.Logger, redisFactory *redisfactory.Factory) *gin.Engine {
	var (
		startTime       = time.Now()
		openApiLocation = os.Getenv("OPENAPI_LOCATION")
	)

	if openApiLocation == "" {
		openApiLocation = "./api/openapi.json"
	}

	openApiContent, _ := os.ReadFile(openApiLocation)

	if _, err := LoadOpenapiDocument(openApiLocation); err != nil {
		log.Warn().Err(err).Msg("OpenAPI document failed validation")
	}

	router := gin.New()

	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router.
		Use(StartRequest).
		Use(CorrelationId).
		Use(RegisterLogger(log)).
		Use(TraceLog).
		Use(PanicRecovery)

	router.GET("/status", func(c *gin.Context) {
		response := struct {
			Uptime float64 `json:"uptime"`
		}{
			Uptime: time.Since(startTime).Seconds(),
		}

		c.JSON(http.StatusOK, response)
	})

	router.GET("/openapi.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, string(openApiContent))
	})

	pprof.Register(router)

	service := availability.New(availability.DefaultRules())

	router.POST("/availability",
		ServiceAuth(os.Getenv("AUTH_JWT_SECRET")),
		grouping.Middleware(grouping.MiddlewareOptions{
			CreateManager: grouping.NewRequestManager,
			RedisClient:   redisFactory.ResponsesCacheClient(),
			SuccessTtl:    responsesCacheTtl(),
		}),
		AvailabilityHandler(service),
	)

	return router
}

func responsesCacheTtl() time.Duration {
	seconds, err := strconv.Atoi(os.Getenv("RESPONSES_CACHE_TTL"))
	if err != nil {
		return 60 * time.Second
	}

	return time.Duration(seconds) * time.Second
}
