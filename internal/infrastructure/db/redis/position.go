package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

// Live positions expire if a vehicle goes dark; the fleet map treats a
// missing key as "stale, last seen unknown".
const positionTTL = 24 * time.Hour

// PositionCache keeps the single live "last known position" record per driver
// for fleet-map consumption. Key format: lastpos:<driver_id>
type PositionCache struct {
	client *redis.Client
}

// NewPositionCache creates a PositionCache wrapping the given Redis client.
func NewPositionCache(client *redis.Client) *PositionCache {
	return &PositionCache{client: client}
}

// SetLastPosition overwrites the driver's live position.
func (c *PositionCache) SetLastPosition(ctx context.Context, pos domain.LastPosition) error {
	payload, err := json.Marshal(pos)
	if err != nil {
		return fmt.Errorf("last position marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(pos.DriverID), payload, positionTTL).Err()
}

// GetLastPosition returns the driver's live position, or (nil, nil) when the
// driver has no fresh record.
func (c *PositionCache) GetLastPosition(ctx context.Context, driverID string) (*domain.LastPosition, error) {
	raw, err := c.client.Get(ctx, c.key(driverID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("last position get: %w", err)
	}

	var pos domain.LastPosition
	if err := json.Unmarshal(raw, &pos); err != nil {
		return nil, fmt.Errorf("last position unmarshal: %w", err)
	}
	return &pos, nil
}

func (c *PositionCache) key(driverID string) string {
	return "lastpos:" + driverID
}
