package loader

import (
	"errors"
	"fmt"
	"io/ioutil"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/funbit/ets2telemetry/record"
	"github.com/funbit/ets2telemetry/snapshot"
	stats "github.com/lyft/gostats"

	logger "github.com/sirupsen/logrus"
)

type loaderStats struct {
	loadAttempts     stats.Counter
	loadFailures     stats.Counter
	layoutMismatches stats.Counter
	pluginRevision   stats.Gauge
}

func newLoaderStats(scope stats.Scope) loaderStats {
	ret := loaderStats{}
	ret.loadAttempts = scope.NewCounter("load_attempts")
	ret.loadFailures = scope.NewCounter("load_failures")
	ret.layoutMismatches = scope.NewCounter("layout_mismatches")
	ret.pluginRevision = scope.NewGauge("plugin_revision")
	return ret
}

type callbacks struct {
	mu  sync.Mutex
	cbs []chan<- struct{}
}

func notifyCallback(notify <-chan struct{}, callback chan<- int) {
	for range notify {
		callback <- 1 // potentially blocking send
	}
}

func (c *callbacks) Add(callback chan<- int) {
	//
	// The loader installs a record on every poll tick and must never wait
	// on a consumer. Each callback gets its own buffered channel drained by
	// a separate goroutine: a slow callback may miss intermediate ticks but
	// is signaled at least once after the latest one.
	//
	notify := make(chan struct{}, 1)
	c.mu.Lock()
	c.cbs = append(c.cbs, notify)
	c.mu.Unlock()
	go notifyCallback(notify, callback)
}

// Signal all callback channels without blocking.
func (c *callbacks) Signal() {
	c.mu.Lock()
	for _, ch := range c.cbs {
		select {
		case ch <- struct{}{}:
			// The callback will be signaled (at some point).
		default:
			// We're still waiting for a previous signal to be sent, dropping
			// this signal.
		}
	}
	c.mu.Unlock()
}

// Implementation of Loader that polls the shared memory file written by the
// telemetry plugin and re-reads it on filesystem events.
type Loader struct {
	holder       snapshot.Holder
	watcher      *fsnotify.Watcher
	recordPath   string
	interval     time.Duration
	nextRecord   *record.Record
	lastRevision uint32
	callbacks    callbacks
	mu           sync.Mutex
	stats        loaderStats
	done         chan struct{}
	stopOnce     sync.Once
}

func (l *Loader) Snapshot() snapshot.IFace {
	return l.holder.Snapshot()
}

func (l *Loader) AddUpdateCallback(callback chan<- int) {
	if callback == nil {
		panic("ets2telemetry/loader: nil callback")
	}
	l.callbacks.Add(callback)
}

func (l *Loader) Stop() {
	l.stopOnce.Do(func() {
		if l.done != nil {
			close(l.done)
		}
		if l.watcher != nil {
			l.watcher.Close()
		}
	})
}

// onRecordChanged reads and installs the record. On failure the previous
// snapshot stays current.
func (l *Loader) onRecordChanged() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stats.loadAttempts.Inc()

	contents, err := ioutil.ReadFile(l.recordPath)
	if err != nil {
		l.stats.loadFailures.Inc()
		logger.Debugf("telemetry: error reading %s: %s", l.recordPath, err)

		return
	}

	rec, err := record.Decode(contents)
	if err != nil {
		l.stats.loadFailures.Inc()
		if errors.Is(err, record.ErrLayoutMismatch) {
			l.stats.layoutMismatches.Inc()
		}
		logger.Warnf("telemetry: error decoding %s: %s", l.recordPath, err)

		return
	}

	l.nextRecord = rec
	l.updateSnapshot()
}

// updateSnapshot installs nextRecord and signals the callbacks.
func (l *Loader) updateSnapshot() {
	rec := l.nextRecord
	if rec == nil {
		rec = new(record.Record)
	}

	if rec.PluginRevision != l.lastRevision {
		logger.Infof("telemetry: plugin revision changed from %d to %d", l.lastRevision, rec.PluginRevision)
		l.lastRevision = rec.PluginRevision
	}
	l.stats.pluginRevision.Set(uint64(rec.PluginRevision))
	l.holder.Update(rec)

	l.nextRecord = nil
	l.callbacks.Signal()
}

func getFileSystemOp(ev fsnotify.Event) FileSystemOp {
	switch {
	case ev.Has(fsnotify.Write):
		return Write
	case ev.Has(fsnotify.Create):
		return Create
	case ev.Has(fsnotify.Chmod):
		return Chmod
	case ev.Has(fsnotify.Remove):
		return Remove
	case ev.Has(fsnotify.Rename):
		return Rename
	}
	return -1
}

func (l *Loader) run(refresher Refresher) {
	var tick <-chan time.Time
	if l.interval > 0 {
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-l.done:
			return
		case <-tick:
			l.onRecordChanged()
		case ev, ok := <-l.watcher.Events:
			if !ok {
				return
			}
			if refresher.ShouldRefresh(ev.Name, getFileSystemOp(ev)) {
				l.onRecordChanged()
			}
		case err, ok := <-l.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnf("telemetry watch error: %s", err)
		}
	}
}

type Option func(l *Loader)

// PollInterval sets how often the record is re-read regardless of
// filesystem events. Shared memory written through a mapping does not
// produce events, so hosts reading a live plugin need a non-zero interval.
func PollInterval(d time.Duration) Option {
	return func(l *Loader) { l.interval = d }
}

func New2(recordPath string, scope stats.Scope, refresher Refresher, opts ...Option) (IFace, error) {
	if recordPath == "" {
		logger.Warn("no telemetry record path. using nil loader.")
		return NewNil(), nil
	}
	if refresher == nil {
		refresher = &FileRefresher{}
	}
	watchedPath := refresher.WatchDirectory(recordPath)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		// If this fails with EMFILE (0x18) it is likely due to
		// inotify_init1() and fs.inotify.max_user_instances.
		//
		// Include the error message, type and value - this is
		// particularly useful if the error is a syscall.Errno.
		return nil, fmt.Errorf("unable to create telemetry watcher: %[1]s (%[1]T %#[1]v)", err)
	}

	err = watcher.Add(watchedPath)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("unable to watch directory (%[1]s): %[2]s (%[2]T %#[2]v)", watchedPath, err)
	}

	newLoader := &Loader{
		watcher:    watcher,
		recordPath: recordPath,
		stats:      newLoaderStats(scope),
		done:       make(chan struct{}),
	}

	for _, opt := range opts {
		opt(newLoader)
	}

	newLoader.onRecordChanged()

	go newLoader.run(refresher)

	return newLoader, nil
}

// Deprecated: use New2 instead
func New(recordPath string, scope stats.Scope, refresher Refresher, opts ...Option) IFace {
	loader, err := New2(recordPath, scope, refresher, opts...)
	if err != nil {
		logger.Panic(err)
	}
	return loader
}
