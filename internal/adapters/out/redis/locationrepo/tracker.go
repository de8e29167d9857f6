// Package locationrepo stores ephemeral position samples in Redis lists.
// Each user gets one list capped to the newest samples; the data has no
// durability requirement, so Redis is the whole store.
package locationrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// maxSamples caps the per-user trail length.
const maxSamples = 100

// RedisLocationTracker implements LocationTracker on a Redis list per user.
type RedisLocationTracker struct {
	client *redis.Client
}

// NewRedisLocationTracker creates a tracker writing through the given client.
func NewRedisLocationTracker(client *redis.Client) *RedisLocationTracker {
	return &RedisLocationTracker{client: client}
}

// Append pushes the sample to the end of the user's trail and trims the
// trail to the newest maxSamples entries in the same pipeline.
func (t *RedisLocationTracker) Append(ctx context.Context, point ports.LocationPoint) error {
	if point.UserID == "" {
		return errs.NewValueIsRequiredError("userId")
	}

	payload, err := json.Marshal(point)
	if err != nil {
		return err
	}

	key := trailKey(point.UserID)
	pipe := t.client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.LTrim(ctx, key, -maxSamples, -1)
	_, err = pipe.Exec(ctx)
	return err
}

// Latest returns the most recent sample for the user.
func (t *RedisLocationTracker) Latest(ctx context.Context, userID string) (ports.LocationPoint, error) {
	if userID == "" {
		return ports.LocationPoint{}, errs.NewValueIsRequiredError("userId")
	}

	values, err := t.client.LRange(ctx, trailKey(userID), -1, -1).Result()
	if err != nil {
		return ports.LocationPoint{}, err
	}
	if len(values) == 0 {
		return ports.LocationPoint{}, errs.NewObjectNotFoundError("location", userID)
	}

	var point ports.LocationPoint
	if err := json.Unmarshal([]byte(values[0]), &point); err != nil {
		return ports.LocationPoint{}, err
	}

	return point, nil
}

func trailKey(userID string) string {
	return fmt.Sprintf("locations:%s", userID)
}
