package loader

import (
	"testing"

	"github.com/funbit/ets2telemetry/record"
	"github.com/lyft/gostats/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockWithRecord(t *testing.T) {
	rec := &record.Record{PluginRevision: 10, TimeAbsolute: 60}
	ld := NewMock(MockWithRecord(rec))

	rec.TimeAbsolute = 61
	assert.Equal(t, uint32(60), ld.Snapshot().Record().TimeAbsolute)
}

func TestMockWithFile(t *testing.T) {
	raw, err := (&record.Record{VersionMajor: 1}).MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), NewMock(MockWithFile(raw)).Snapshot().Record().VersionMajor)

	assert.Panics(t, func() { MockWithFile([]byte("short")) })
}

func TestMockWithUpdateChannel(t *testing.T) {
	sink := mock.NewSink()
	changes := make(chan *record.Record)
	ld := NewMock(MockWithSink(sink), MockWithUpdateChannel(changes))
	assert.Equal(t, record.Record{}, *ld.Snapshot().Record())

	update := make(chan int, 1)
	ld.AddUpdateCallback(update)

	changes <- &record.Record{PluginRevision: 12}
	<-update
	assert.Equal(t, uint32(12), ld.Snapshot().Record().PluginRevision)
	close(changes)
}

func TestAddUpdateCallback_Nil(t *testing.T) {
	assert.Panics(t, func() { NewMock().AddUpdateCallback(nil) })
}
