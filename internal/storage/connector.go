// Package storage implements box persistence on Redis. Boxes live as
// JSON documents keyed by their public code, with the key TTL aligned
// to the box expiry so the store handles the cleanup sweep itself.
package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Connector establishes the Redis connection lazily on first use and
// memoizes it. Concurrent first callers collapse into a single dial
// attempt and all observe the same outcome; a failed attempt is not
// cached, so a later call dials again.
type Connector struct {
	opts *redis.Options

	mu     sync.Mutex
	client *redis.Client
}

// NewConnector validates the URL up front so a bad address is a startup
// failure, not a first-request surprise.
func NewConnector(redisURL string) (*Connector, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &Connector{opts: opts}, nil
}

// Client returns the shared Redis client, dialing and pinging on first
// use.
func (c *Connector) Client(ctx context.Context) (*redis.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		return c.client, nil
	}
	client := redis.NewClient(c.opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	c.client = client
	return client, nil
}

// Close releases the connection if one was established.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	return err
}
