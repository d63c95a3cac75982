package snapshot

import (
	"time"

	"github.com/funbit/ets2telemetry/record"
)

// IFace provides one telemetry tick. A snapshot never changes once it has
// been handed out; a newer tick is a different snapshot.
type IFace interface {
	// Record returns the raw record of this tick. The record is shared by
	// every reader of the snapshot and must not be modified.
	Record() *record.Record

	// Modified returns the wall clock time the snapshot was installed. The
	// zero value for time.Time is returned when no tick has been observed.
	Modified() time.Time
}
