package telemetry

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/funbit/ets2telemetry/record"
	"github.com/funbit/ets2telemetry/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tickRecord(n uint32) *record.Record {
	rec := &record.Record{
		PluginRevision: 1,
		TimeAbsolute:   n,
		JobIncome:      n,
		Speed:          float32(n),
	}
	rec.Trailers[0].WorldX = float64(n)
	rec.Trailers[0].Attached = 1
	return rec
}

func TestData_EmptySource(t *testing.T) {
	d := NewData(snapshot.NewHolder(), running)

	assert.False(t, d.Game().Connected())
	assert.True(t, d.Game().Time().IsZero())
	assert.Equal(t, float32(0), d.Truck().Speed())
	assert.Equal(t, "", d.Cargo().Cargo())
	assert.Len(t, d.Trailers(), record.TrailerSlots)

	_, err := d.Trailer(record.TrailerSlots)
	assert.Error(t, err)
}

func TestData_FollowsUpdates(t *testing.T) {
	h := snapshot.NewHolder()
	d := NewData(h, running)

	h.Update(tickRecord(60))
	assert.True(t, d.Game().Connected())
	assert.Equal(t, 60, d.Job().Income())

	h.Update(tickRecord(120))
	assert.Equal(t, 120, d.Job().Income())
	assert.Equal(t, time.Time{}.Add(2*time.Hour), d.Game().Time())

	tr, err := d.Trailer(0)
	require.NoError(t, err)
	assert.True(t, tr.Attached())
	assert.Equal(t, float64(120), tr.Placement().X)
}

func TestFrame_StableAcrossUpdates(t *testing.T) {
	h := snapshot.NewHolder()
	d := NewData(h, running)

	h.Update(tickRecord(60))
	f := d.Frame()
	h.Update(tickRecord(120))

	assert.Equal(t, 60, f.Job().Income())
	assert.Equal(t, time.Time{}.Add(time.Hour), f.Game().Time())
	assert.Equal(t, uint32(60), f.Snapshot().Record().TimeAbsolute)
}

func TestFrame_ConcurrentReaders(t *testing.T) {
	const ticks = 1000

	h := snapshot.NewHolder()
	d := NewData(h, running)
	h.Update(tickRecord(1))

	var (
		wg    sync.WaitGroup
		done  int32
		mixed int32
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for atomic.LoadInt32(&done) == 0 {
				f := d.Frame()
				n := f.Job().Income()
				minutes := int(f.Game().Time().Sub(time.Time{}) / time.Minute)
				tr, _ := f.Trailer(0)
				if minutes != n || tr.Placement().X != float64(n) || f.Truck().Speed() != float32(n)*3.6 {
					atomic.AddInt32(&mixed, 1)
					return
				}
			}
		}()
	}

	for n := uint32(2); n <= ticks; n++ {
		h.Update(tickRecord(n))
	}
	atomic.StoreInt32(&done, 1)
	wg.Wait()

	assert.Equal(t, int32(0), atomic.LoadInt32(&mixed))
}

func BenchmarkData_Truck(b *testing.B) {
	h := snapshot.NewHolder()
	h.Update(tickRecord(60))
	d := NewData(h, running)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = d.Truck().Speed()
		}
	})
}
