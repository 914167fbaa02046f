package counter

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Well-known counter names.
const (
	PageVisits       = "page_visits"
	SuccessfulLogins = "successful_logins"
	FailedLogins     = "failed_logins"
)

// Service is an atomic, monotonic counter store. Increments carry no
// ordering guarantee relative to other requests.
type Service interface {
	Incr(ctx context.Context, name string) (int64, error)
	Get(ctx context.Context, name string) (int64, error)
}

type redisCounter struct {
	client *redis.Client
}

func NewRedisCounter(client *redis.Client) Service {
	return &redisCounter{client: client}
}

func (c *redisCounter) Incr(ctx context.Context, name string) (int64, error) {
	n, err := c.client.Incr(ctx, name).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter %s: %w", name, err)
	}
	return n, nil
}

func (c *redisCounter) Get(ctx context.Context, name string) (int64, error) {
	n, err := c.client.Get(ctx, name).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read counter %s: %w", name, err)
	}
	return n, nil
}
