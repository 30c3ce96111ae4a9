package grouping

import (
	"context"
	"time"

	"bitbucket.org/crgw/availability-hub/internal/tools/caching"
	"bitbucket.org/crgw/availability-hub/internal/tools/slowlog"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type CachedValue struct {
	Code    int                 `json:"code"`
	Headers map[string][]string `json:"headers"`
	Body    string              `json:"body"`
}

// storage keeps the per-group lock directly on redis and delegates response
// payloads to the shared compressing cacher.
type storage struct {
	redis   *redis.Client
	cache   *caching.Cacher
	log     *zerolog.Logger
	slowLog slowlog.Logger
}

func (s *storage) AcquireLock(ctx context.Context, cacheKey string) (bool, error) {
	response := s.redis.SetNX(ctx, cacheKey, "", 1*time.Minute)
	lockAcquired, err := response.Result()
	return lockAcquired, err
}

func (s *storage) ReleaseLock(ctx context.Context, cacheKey string) {
	s.redis.Del(context.Background(), cacheKey)
}

func (s *storage) StoreResponse(ctx context.Context, responseKey string, response *Response, duration time.Duration) {
	s.slowLog.Start("grouping:storeResponse")
	err := s.cache.Store(ctx, responseKey, CachedValue{
		Code:    response.Code,
		Body:    response.Body,
		Headers: response.Headers,
	}, duration)
	s.slowLog.Stop("grouping:storeResponse")

	if err != nil {
		s.log.Err(err).Msg("Unable to cache the response body")
	}
}

// FetchResponse treats broken cache entries like plain misses; the cacher
// already conflates the two.
func (s *storage) FetchResponse(ctx context.Context, responseKey string) (*CachedValue, error) {
	value := CachedValue{}

	s.slowLog.Start("grouping:fetchResponse")
	ok := s.cache.Fetch(ctx, responseKey, &value)
	s.slowLog.Stop("grouping:fetchResponse")

	if !ok {
		return nil, nil
	}

	return &value, nil
}
