package redisfactory

import (
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Factory hands out the responses-cache connection. Caching is optional:
// when RESPONSES_CACHE_REDIS_URI is unset the factory carries a nil client
// and callers skip the cache.

type Factory struct {
	responsesCache *redis.Client
}

func New() *Factory {
	uri := os.Getenv("RESPONSES_CACHE_REDIS_URI")
	if uri == "" {
		return &Factory{}
	}

	opt, err := redis.ParseURL(uri)
	if err != nil {
		panic(err)
	}

	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	return &Factory{
		responsesCache: redis.NewClient(opt),
	}
}

// NewWithClient is for tests that inject a mocked client.
func NewWithClient(responsesCache *redis.Client) *Factory {
	return &Factory{
		responsesCache: responsesCache,
	}
}

func (f *Factory) ResponsesCacheClient() *redis.Client {
	return f.responsesCache
}
