package snapshot

import (
	"time"

	"github.com/funbit/ets2telemetry/record"
)

// Snapshot is an immutable copy of one record.
type Snapshot struct {
	rec      record.Record
	modified time.Time
}

// New copies rec into a new Snapshot. A nil rec yields an empty record.
func New(rec *record.Record, modified time.Time) (s *Snapshot) {
	s = &Snapshot{
		modified: modified,
	}
	if rec != nil {
		s.rec = *rec
	}

	return
}

func (s *Snapshot) Record() *record.Record { return &s.rec }

func (s *Snapshot) Modified() time.Time { return s.modified }
