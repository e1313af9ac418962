package cache

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"tourism-webapp/model"

	"github.com/redis/go-redis/v9"
)

const (
	destinationsKey = "tourism:destinations:all"
	generationKey   = "tourism:destinations:gen"
)

// setIfGeneration writes the list only when the generation counter still
// holds the value the caller read before loading from the store.
const setIfGeneration = `
local current = redis.call("GET", KEYS[1]) or "0"
if current ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call("SET", KEYS[2], ARGV[2], "PX", ARGV[3])
else
	redis.call("SET", KEYS[2], ARGV[2])
end
return 1
`

// Destinations caches the full destination list in Redis as one JSON value.
type Destinations struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewDestinations(client redis.Cmdable, ttl time.Duration) *Destinations {
	return &Destinations{client: client, ttl: ttl}
}

// Connect parses a redis:// URL and checks the server answers.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %v", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis is not available: %v", err)
	}
	return client, nil
}

func (d *Destinations) Get(ctx context.Context) ([]model.Destination, bool, error) {
	raw, err := d.client.Get(ctx, destinationsKey).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	destinations := []model.Destination{}
	if err := json.Unmarshal(raw, &destinations); err != nil {
		return nil, false, fmt.Errorf("corrupt cached destinations: %v", err)
	}
	return destinations, true, nil
}

func (d *Destinations) Generation(ctx context.Context) (int64, error) {
	generation, err := d.client.Get(ctx, generationKey).Int64()
	if stderrors.Is(err, redis.Nil) {
		return 0, nil
	}
	return generation, err
}

// Set stores destinations unless the cache was invalidated after generation
// was read.
func (d *Destinations) Set(ctx context.Context, generation int64, destinations []model.Destination) error {
	raw, err := json.Marshal(destinations)
	if err != nil {
		return err
	}
	keys := []string{generationKey, destinationsKey}
	return d.client.Eval(ctx, setIfGeneration, keys, generation, raw, d.ttl.Milliseconds()).Err()
}

func (d *Destinations) Invalidate(ctx context.Context) error {
	_, err := d.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey)
		pipe.Del(ctx, destinationsKey)
		return nil
	})
	return err
}

// Ping reports whether the cache backend is reachable.
func (d *Destinations) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}
