package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/injectgraph/pkg/errors"
)

// KeyPrefix namespaces every key written by [RedisSink].
const KeyPrefix = "injectgraph:graph:"

// redisClient is the subset of *redis.Client the sink needs.
type redisClient interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
	Close() error
}

// RedisSink stores documents under KeyPrefix+<id>, points
// KeyPrefix+"latest:"+<root> at the newest one and optionally announces
// each document on a pub/sub channel.
type RedisSink struct {
	client  redisClient
	channel string
	ttl     time.Duration
}

// OpenRedis connects to the Redis server named by u and pings it.
// The channel and ttl query parameters are consumed here; all others are
// passed to redis.ParseURL.
func OpenRedis(ctx context.Context, u *url.URL) (*RedisSink, error) {
	q := u.Query()
	channel := q.Get("channel")
	var ttl time.Duration
	if v := q.Get("ttl"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "invalid redis ttl %q", v)
		}
		ttl = d
	}
	q.Del("channel")
	q.Del("ttl")
	clean := *u
	clean.RawQuery = q.Encode()

	opts, err := redis.ParseURL(clean.String())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse redis target")
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(errors.ErrCodeSinkFailed, err, "connect to redis at %s", opts.Addr)
	}
	return newRedisSink(client, channel, ttl), nil
}

func newRedisSink(client redisClient, channel string, ttl time.Duration) *RedisSink {
	return &RedisSink{client: client, channel: channel, ttl: ttl}
}

func (s *RedisSink) Name() string { return "redis" }

func (s *RedisSink) Publish(ctx context.Context, doc *Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	key := KeyPrefix + doc.ID
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	if err := s.client.Set(ctx, KeyPrefix+"latest:"+doc.Root, doc.ID, s.ttl).Err(); err != nil {
		return fmt.Errorf("set latest pointer: %w", err)
	}
	if s.channel != "" {
		if err := s.client.Publish(ctx, s.channel, data).Err(); err != nil {
			return fmt.Errorf("publish to %s: %w", s.channel, err)
		}
	}
	return nil
}

func (s *RedisSink) Close(context.Context) error { return s.client.Close() }
