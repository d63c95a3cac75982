package snapshot

import (
	"time"

	"github.com/funbit/ets2telemetry/record"
)

// Nil is the snapshot seen before the first tick arrives. Every field of
// its record is zero, so the Game view reports it as disconnected.
type Nil struct{}

func NewNil() (s *Nil) {
	s = &Nil{}

	return
}

func (n *Nil) Record() *record.Record { return new(record.Record) }

func (n *Nil) Modified() time.Time { return time.Time{} }
