package grouping_test

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bitbucket.org/crgw/availability-hub/internal/trafficlight/grouping"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type groupingManagerMock struct {
	handleRequestMock func(ctx context.Context, requester func() (*grouping.Response, error)) (*grouping.Response, error)
}

func (m *groupingManagerMock) HandleRequest(ctx context.Context, requester func() (*grouping.Response, error)) (*grouping.Response, error) {
	return m.handleRequestMock(ctx, requester)
}

func TestGroupingMiddleware(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	requestDocument := []byte(`<AvailabilityRQ></AvailabilityRQ>`)
	digest := sha256.Sum256(requestDocument)
	expectedCacheKey := "availability:" + hex.EncodeToString(digest[:])

	registerLogger := func(c *gin.Context) {
		c.Set("logger", &log)
	}

	t.Run("should return the response from the next handler", func(t *testing.T) {
		redisClient, _ := redismock.NewClientMock()

		createManager := func(
			redis *redis.Client,
			log *zerolog.Logger,
			cacheKey string,
			successTtl time.Duration,
		) grouping.RequestManager {
			assert.Equal(t, expectedCacheKey, cacheKey)
			assert.Equal(t, time.Minute, successTtl)

			return &groupingManagerMock{
				handleRequestMock: func(ctx context.Context, requester func() (*grouping.Response, error)) (*grouping.Response, error) {
					response, err := requester()
					assert.NoError(t, err)
					return &grouping.Response{Code: response.Code, Body: response.Body}, nil
				},
			}
		}

		response := httptest.NewRecorder()

		router := gin.Default()
		router.Use(registerLogger)

		handleAvailability := func(c *gin.Context) {
			body, err := io.ReadAll(c.Request.Body)
			assert.NoError(t, err)
			assert.Equal(t, requestDocument, body)

			c.Status(http.StatusOK)
			io.Copy(c.Writer, bytes.NewReader([]byte("priced response")))
		}

		router.POST("/availability", grouping.Middleware(
			grouping.MiddlewareOptions{CreateManager: createManager, RedisClient: redisClient, SuccessTtl: time.Minute},
		), handleAvailability)

		request, err := http.NewRequest(http.MethodPost, "/availability", bytes.NewReader(requestDocument))
		assert.NoError(t, err)

		router.ServeHTTP(response, request)

		assert.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, "priced response", response.Body.String())
	})

	t.Run("should provide from manager and not call the next handler", func(t *testing.T) {
		redisClient, _ := redismock.NewClientMock()

		createManager := func(
			redis *redis.Client,
			log *zerolog.Logger,
			cacheKey string,
			successTtl time.Duration,
		) grouping.RequestManager {
			assert.Equal(t, expectedCacheKey, cacheKey)

			return &groupingManagerMock{
				handleRequestMock: func(ctx context.Context, requester func() (*grouping.Response, error)) (*grouping.Response, error) {
					return &grouping.Response{Code: http.StatusOK, Body: "response from cache"}, nil
				},
			}
		}

		response := httptest.NewRecorder()

		router := gin.Default()
		router.Use(registerLogger)

		router.POST("/availability", grouping.Middleware(
			grouping.MiddlewareOptions{CreateManager: createManager, RedisClient: redisClient, SuccessTtl: time.Minute},
		), func(c *gin.Context) {
			assert.Fail(t, "Should not run the pipeline")
		})

		request, err := http.NewRequest(http.MethodPost, "/availability", bytes.NewReader(requestDocument))
		assert.NoError(t, err)

		router.ServeHTTP(response, request)

		assert.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, "response from cache", response.Body.String())
	})

	t.Run("should pass through without a redis client", func(t *testing.T) {
		response := httptest.NewRecorder()

		router := gin.Default()
		router.Use(registerLogger)

		router.POST("/availability", grouping.Middleware(
			grouping.MiddlewareOptions{
				CreateManager: func(*redis.Client, *zerolog.Logger, string, time.Duration) grouping.RequestManager {
					assert.Fail(t, "Should not create a manager")
					return nil
				},
			},
		), func(c *gin.Context) {
			c.String(http.StatusOK, "priced response")
		})

		request, err := http.NewRequest(http.MethodPost, "/availability", bytes.NewReader(requestDocument))
		assert.NoError(t, err)

		router.ServeHTTP(response, request)

		assert.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, "priced response", response.Body.String())
	})
}
