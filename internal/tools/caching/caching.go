package caching

import (
	"bytes"
	"compress/flate"
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

type Engine interface {
	Store(ctx context.Context, key string, value any, ttl time.Duration) error
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// Cacher stores JSON values deflate-compressed. Without an engine it is a
// no-op: every Fetch misses and Store succeeds silently, so callers do not
// special-case a disabled cache.
type Cacher struct {
	engine Engine
}

func NewRedisCache(redisClient *redis.Client) *Cacher {
	if redisClient == nil {
		return &Cacher{}
	}

	return &Cacher{
		engine: &redisCache{
			redis: redisClient,
		},
	}
}

// Compress is exported so callers building cache payloads by hand (tests,
// mostly) produce exactly what Store writes.
func Compress(uncompressed []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer, _ := flate.NewWriter(&buffer, flate.BestSpeed)

	_, err := writer.Write(uncompressed)
	if err != nil {
		return nil, err
	}

	err = writer.Close()
	if err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func Decompress(compressed []byte) ([]byte, error) {
	buffer := bytes.NewReader(compressed)
	reader := flate.NewReader(buffer)
	defer reader.Close()

	var out bytes.Buffer
	_, err := out.ReadFrom(reader)
	if err != nil {
		return []byte{}, err
	}

	return out.Bytes(), nil
}

func (c *Cacher) Store(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c.engine == nil {
		return nil
	}

	bytes, err := json.Marshal(value)
	if err != nil {
		return err
	}

	compressed, err := Compress(bytes)
	if err != nil {
		return err
	}

	return c.engine.Store(ctx, key, compressed, ttl)
}

func (c *Cacher) Fetch(ctx context.Context, key string, destination any) bool {
	if c.engine == nil {
		return false
	}

	value, err := c.engine.Fetch(ctx, key)
	if err != nil {
		return false
	}

	if value == nil {
		return false
	}

	uncompressed, err := Decompress(value)
	if err != nil {
		return false
	}

	err = json.Unmarshal(uncompressed, destination)
	return err == nil
}
