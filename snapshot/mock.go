package snapshot

import (
	"time"

	"github.com/funbit/ets2telemetry/record"
)

// Mock provides a Snapshot implementation for testing. Unlike Snapshot it
// may be changed after construction.
type Mock struct {
	*Snapshot
}

// NewMock initializes a new Mock holding an empty record.
func NewMock() (s *Mock) {
	s = &Mock{
		Snapshot: New(nil, time.Time{}),
	}

	return
}

// Set applies fn to the record held by the mock.
func (m *Mock) Set(fn func(rec *record.Record)) *Mock {
	fn(&m.Snapshot.rec)

	return m
}

// SetTrailer applies fn to the trailer group at index.
func (m *Mock) SetTrailer(index int, fn func(tr *record.Trailer)) *Mock {
	fn(&m.Snapshot.rec.Trailers[index])

	return m
}

// SetModified overrides the install time reported by the mock.
func (m *Mock) SetModified(t time.Time) *Mock {
	m.Snapshot.modified = t

	return m
}
