package snapshot

import (
	"sync/atomic"
	"time"

	"github.com/funbit/ets2telemetry/record"
)

// Holder owns the current snapshot. Update replaces it with a single
// reference swap, so Snapshot never observes a partially written record and
// never waits for a writer. The zero value is ready to use.
//
// Holder expects a single writer; any number of goroutines may call Snapshot.
type Holder struct {
	current atomic.Value
	now     func() time.Time
}

// NewHolder returns an empty Holder whose Snapshot is the Nil snapshot.
func NewHolder() *Holder {
	return &Holder{}
}

// Update installs a copy of rec as the current snapshot. Later changes to
// rec by the caller are not visible to readers.
func (h *Holder) Update(rec *record.Record) {
	now := time.Now
	if h.now != nil {
		now = h.now
	}
	h.current.Store(New(rec, now().UTC()))
}

// Snapshot returns the snapshot installed at call time. The reference stays
// valid forever but grows stale, so callers should not keep it beyond the
// work at hand.
func (h *Holder) Snapshot() IFace {
	if s, _ := h.current.Load().(*Snapshot); s != nil {
		return s
	}
	return NewNil()
}
