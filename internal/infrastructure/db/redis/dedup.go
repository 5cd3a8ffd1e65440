package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

const dedupTTL = time.Hour

// DedupChecker provides exactly-once geofence event processing backed by
// Redis. Key format: geodedup:<driver>:<geofence>:<action>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact crossing has already been processed.
func (d *DedupChecker) IsDuplicate(ctx context.Context, driverID, geofenceID string, action domain.GeofenceAction, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(driverID, geofenceID, action, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this crossing has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, driverID, geofenceID string, action domain.GeofenceAction, ts time.Time) error {
	return d.client.Set(ctx, d.key(driverID, geofenceID, action, ts), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(driverID, geofenceID string, action domain.GeofenceAction, ts time.Time) string {
	return fmt.Sprintf("geodedup:%s:%s:%s:%d", driverID, geofenceID, action, ts.Unix())
}
