package telemetry

import (
	"time"

	"github.com/funbit/ets2telemetry/record"
)

// Navigation describes the route advisor.
type Navigation struct {
	rec *record.Record
}

// EstimatedTime is the estimated driving time to the destination, as an
// offset from the zero epoch.
func (n Navigation) EstimatedTime() time.Time { return SecondsToTime(int64(n.rec.NavigationTime)) }

// EstimatedDistance is the remaining route length in meters.
func (n Navigation) EstimatedDistance() int { return int(n.rec.NavigationDistance) }

// SpeedLimit is the current speed limit in whole km/h, or 0 when the road
// has none.
func (n Navigation) SpeedLimit() int { return speedLimitKmh(n.rec.NavigationSpeedLimit) }
