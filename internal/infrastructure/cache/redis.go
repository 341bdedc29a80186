package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Open dials redis and verifies the connection with a bounded ping. The
// response cache is the only consumer; a dial failure is surfaced to the
// caller instead of running half-configured.
func Open(ctx context.Context, addr string, db int) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return r, nil
}
