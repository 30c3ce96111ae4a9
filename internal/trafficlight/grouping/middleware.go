package grouping

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"bitbucket.org/crgw/availability-hub/internal/handling"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

type RequestManager interface {
	HandleRequest(context.Context, func() (*Response, error)) (*Response, error)
}

type MiddlewareOptions struct {
	CreateManager func(
		redis *redis.Client,
		log *zerolog.Logger,
		cacheKey string,
		successTtl time.Duration,
	) RequestManager
	RedisClient *redis.Client
	SuccessTtl  time.Duration
}

// Middleware collapses identical availability documents into one pipeline
// run: the first request through takes a lock and computes, everyone else
// replays the stored response. Requests group on a digest of the raw body.
// Without a redis client the middleware is a passthrough.
func Middleware(o MiddlewareOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if o.RedisClient == nil {
			c.Next()
			return
		}

		log := c.MustGet("logger").(*zerolog.Logger)

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			handling.HandleError(c, http.StatusBadRequest, "failed to read request document", err)
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		groupingManager := o.CreateManager(o.RedisClient, log, documentCacheKey(body), o.SuccessTtl)

		requester := func() (*Response, error) {
			bodyWriter := &bodyLogWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
			c.Writer = bodyWriter

			// expects the availability handler to be called
			c.Next()

			code := c.Writer.Status()
			body := bodyWriter.body.String()
			headers := bodyWriter.Header()
			err := c.Err()

			return &Response{
				Code:    code,
				Body:    body,
				Headers: headers,
			}, err
		}

		response, err := groupingManager.HandleRequest(c.Request.Context(), requester)

		if !c.Writer.Written() {
			if err != nil {
				handling.HandleError(
					c,
					http.StatusBadRequest,
					"Error requesting availability",
					err,
				)
				return
			}

			for key, values := range response.Headers {
				for _, value := range values {
					c.Writer.Header().Add(key, value)
				}
			}

			c.Status(response.Code)
			c.Data(response.Code, gin.MIMEJSON, []byte(response.Body))
		}

		c.Abort()
	}
}

func documentCacheKey(body []byte) string {
	digest := sha256.Sum256(body)

	return "availability:" + hex.EncodeToString(digest[:])
}
