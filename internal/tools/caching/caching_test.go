package caching_test

import (
	"context"
	jsonEncoding "encoding/json"
	"testing"
	"time"

	"bitbucket.org/crgw/availability-hub/internal/tools/caching"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestCacher(t *testing.T) {
	ctx := context.Background()

	t.Run("should report a miss for unknown keys", func(t *testing.T) {
		redisClient, mock := redismock.NewClientMock()
		mock.ExpectGet("unknown-key").RedisNil()

		cache := caching.NewRedisCache(redisClient)

		var value string
		assert.False(t, cache.Fetch(ctx, "unknown-key", &value))
		assert.Nil(t, mock.ExpectationsWereMet())
	})

	t.Run("should store compressed json and fetch it back", func(t *testing.T) {
		redisClient, mock := redismock.NewClientMock()

		encoded, _ := jsonEncoding.Marshal("cached-value")
		compressed, err := caching.Compress(encoded)
		assert.Nil(t, err)

		mock.ExpectSetEx("some-key", compressed, time.Minute).SetVal("")
		mock.ExpectGet("some-key").SetVal(string(compressed))

		cache := caching.NewRedisCache(redisClient)

		assert.Nil(t, cache.Store(ctx, "some-key", "cached-value", time.Minute))

		var value string
		assert.True(t, cache.Fetch(ctx, "some-key", &value))
		assert.Equal(t, "cached-value", value)
		assert.Nil(t, mock.ExpectationsWereMet())
	})

	t.Run("should treat broken payloads as a miss", func(t *testing.T) {
		redisClient, mock := redismock.NewClientMock()
		mock.ExpectGet("broken-key").SetVal("not deflate at all")

		cache := caching.NewRedisCache(redisClient)

		var value string
		assert.False(t, cache.Fetch(ctx, "broken-key", &value))
	})

	t.Run("should do nothing without a redis client", func(t *testing.T) {
		cache := caching.NewRedisCache(nil)

		var value string
		assert.False(t, cache.Fetch(ctx, "any-key", &value))
		assert.Nil(t, cache.Store(ctx, "any-key", "value", time.Minute))
	})
}
