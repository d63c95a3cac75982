package loader

import (
	"github.com/funbit/ets2telemetry/record"
	stats "github.com/lyft/gostats"
	"github.com/lyft/gostats/mock"
)

type MockOption interface {
	apply(*Loader)
}

type optionFunc func(*Loader)

func (f optionFunc) apply(ld *Loader) {
	f(ld)
}

// MockWithRecord installs a copy of rec as the initial snapshot.
func MockWithRecord(rec *record.Record) MockOption {
	return optionFunc(func(ld *Loader) {
		cp := *rec
		ld.nextRecord = &cp
	})
}

// MockWithFile decodes raw as the initial snapshot. It panics if raw does
// not hold a record.
func MockWithFile(raw []byte) MockOption {
	rec, err := record.Decode(raw)
	if err != nil {
		panic(err)
	}
	return MockWithRecord(rec)
}

func MockWithScope(scope stats.Scope) MockOption {
	return optionFunc(func(ld *Loader) {
		ld.stats = newLoaderStats(scope)
	})
}

func MockWithSink(sink stats.Sink) MockOption {
	return MockWithScope(stats.NewStore(sink, false))
}

// MockWithUpdateChannel installs every record received on changes and
// signals the update callbacks, as if the plugin had written a new tick.
func MockWithUpdateChannel(changes <-chan *record.Record) MockOption {
	return optionFunc(func(ld *Loader) {
		if changes != nil {
			go func() {
				for rec := range changes {
					ld.mu.Lock()
					ld.nextRecord = rec
					ld.updateSnapshot()
					ld.mu.Unlock()
				}
			}()
		}
	})
}

// NewMock returns a Loader that never touches the filesystem.
func NewMock(opts ...MockOption) *Loader {
	ld := new(Loader)
	for _, o := range opts {
		o.apply(ld)
	}
	var null loaderStats
	if ld.stats == null {
		ld.stats = newLoaderStats(stats.NewStore(mock.NewSink(), false))
	}
	ld.mu.Lock()
	ld.updateSnapshot()
	ld.mu.Unlock()
	return ld
}
