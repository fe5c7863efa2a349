package changefeed

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// DefaultChannel is the pub/sub channel used when none is configured.
const DefaultChannel = "todos:changed"

// RedisConfig holds connection settings for the Redis feed.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

// Redis is a Feed backed by Redis pub/sub, so every process sharing a
// database sees writes made by the others.
type Redis struct {
	client  *redis.Client
	channel string

	mu     sync.Mutex
	closed bool
}

// NewRedis connects to Redis and verifies the connection with PING.
func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("changefeed: redis ping: %w", err)
	}

	channel := cfg.Channel
	if channel == "" {
		channel = DefaultChannel
	}
	return &Redis{client: client, channel: channel}, nil
}

func (f *Redis) Publish(ctx context.Context) error {
	if f.isClosed() {
		return ErrClosed
	}
	if err := f.client.Publish(ctx, f.channel, "changed").Err(); err != nil {
		return fmt.Errorf("changefeed: redis publish: %w", err)
	}
	return nil
}

func (f *Redis) Subscribe(ctx context.Context) (<-chan struct{}, error) {
	if f.isClosed() {
		return nil, ErrClosed
	}

	pubsub := f.client.Subscribe(ctx, f.channel)
	// Wait for the subscription confirmation so no publish is missed after we return.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("changefeed: redis subscribe: %w", err)
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer pubsub.Close()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				notify(out)
			}
		}
	}()

	return out, nil
}

func (f *Redis) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	return f.client.Close()
}

func (f *Redis) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}
