package snapshot

import (
	"testing"
	"time"

	"github.com/funbit/ets2telemetry/record"
	"github.com/stretchr/testify/assert"
)

func TestMock_Set(t *testing.T) {
	m := NewMock().Set(func(rec *record.Record) {
		rec.PluginRevision = 4
	})
	assert.Equal(t, uint32(4), m.Record().PluginRevision)

	m.SetTrailer(2, func(tr *record.Trailer) {
		tr.Attached = 1
	})
	assert.Equal(t, uint8(1), m.Record().Trailers[2].Attached)

	now := time.Now()
	m.SetModified(now)
	assert.Equal(t, now, m.Modified())
}
