package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisSink keeps a per-device backup history in Redis, newest first, for
// deployments that centralize backups off the operator workstation.
type RedisSink struct {
	client *redis.Client
}

// NewRedisSink connects a sink to the given Redis instance.
func NewRedisSink(addr, password string, db int) *RedisSink {
	return &RedisSink{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Store implements Sink. The dump is pushed onto the device's history list
// and mirrored under a "latest" key for quick retrieval.
func (s *RedisSink) Store(ctx context.Context, device, config string) (string, error) {
	key := fmt.Sprintf("vyops:backup:%s", device)
	entry := fmt.Sprintf("# %s\n%s", time.Now().UTC().Format(time.RFC3339), config)

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, entry)
	pipe.Set(ctx, key+":latest", entry, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("redis backup for %s: %w", device, err)
	}
	return key, nil
}

// Latest returns the most recent dump for a device.
func (s *RedisSink) Latest(ctx context.Context, device string) (string, error) {
	return s.client.Get(ctx, fmt.Sprintf("vyops:backup:%s:latest", device)).Result()
}

// Close releases the Redis connection.
func (s *RedisSink) Close() error {
	return s.client.Close()
}
