package loader

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/funbit/ets2telemetry/record"
	stats "github.com/lyft/gostats"
	"github.com/lyft/gostats/mock"
	"github.com/stretchr/testify/require"
)

var nullScope = stats.NewStore(stats.NewNullSink(), false)

func recordBytes(assert *require.Assertions, revision, minutes uint32) []byte {
	rec := &record.Record{PluginRevision: revision, TimeAbsolute: minutes}
	b, err := rec.MarshalBinary()
	assert.NoError(err)
	return b
}

// writeRecord replaces path atomically so readers never see a partial file.
func writeRecord(assert *require.Assertions, path string, contents []byte) {
	tmp := path + ".tmp"
	err := ioutil.WriteFile(tmp, contents, os.ModePerm)
	assert.NoError(err)

	err = os.Rename(tmp, path)
	assert.NoError(err)
}

func TestNilLoader(t *testing.T) {
	assert := require.New(t)

	loader := New("", nullScope, nil)
	snapshot := loader.Snapshot()
	assert.Equal(record.Record{}, *snapshot.Record())
	assert.True(snapshot.Modified().IsZero())
	loader.Stop()
}

func TestLoader(t *testing.T) {
	assert := require.New(t)

	tempDir, err := ioutil.TempDir("", "telemetry_test")
	assert.NoError(err)
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "Ets2TelemetryServer")
	writeRecord(assert, path, recordBytes(assert, 10, 60))

	loader := New(path, nullScope, &FileRefresher{})
	defer loader.Stop()

	update := make(chan int)
	loader.AddUpdateCallback(update)

	snapshot := loader.Snapshot()
	assert.Equal(uint32(10), snapshot.Record().PluginRevision)
	assert.Equal(uint32(60), snapshot.Record().TimeAbsolute)
	assert.False(snapshot.Modified().IsZero())

	writeRecord(assert, path, recordBytes(assert, 10, 61))

	<-update

	assert.Eventually(func() bool {
		return loader.Snapshot().Record().TimeAbsolute == 61
	}, time.Second, 10*time.Millisecond)

	// The earlier snapshot is unaffected.
	assert.Equal(uint32(60), snapshot.Record().TimeAbsolute)
}

func TestLoader_PollInterval(t *testing.T) {
	assert := require.New(t)

	tempDir, err := ioutil.TempDir("", "telemetry_test")
	assert.NoError(err)
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "Ets2TelemetryServer")
	writeRecord(assert, path, recordBytes(assert, 10, 60))

	refresher := &FileRefresher{}
	refresher.WatchFileSystemOps(Remove)

	loader := New(path, nullScope, refresher, PollInterval(10*time.Millisecond))
	defer loader.Stop()

	writeRecord(assert, path, recordBytes(assert, 10, 90))

	assert.Eventually(func() bool {
		return loader.Snapshot().Record().TimeAbsolute == 90
	}, time.Second, 10*time.Millisecond)
}

func TestLoader_KeepsSnapshotOnBadRecord(t *testing.T) {
	assert := require.New(t)

	tempDir, err := ioutil.TempDir("", "telemetry_test")
	assert.NoError(err)
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "Ets2TelemetryServer")
	writeRecord(assert, path, recordBytes(assert, 10, 60))

	sink := mock.NewSink()
	store := stats.NewStore(sink, false)

	ld, err := New2(path, store.Scope("telemetry"), nil)
	assert.NoError(err)
	defer ld.Stop()
	loader := ld.(*Loader)

	// Truncated by a plugin built against another layout.
	loader.watcher.Remove(tempDir)
	writeRecord(assert, path, []byte("short"))
	loader.onRecordChanged()

	assert.NoError(os.Remove(path))
	loader.onRecordChanged()

	assert.Equal(uint32(60), loader.Snapshot().Record().TimeAbsolute)

	store.Flush()
	assert.Equal(uint64(3), sink.Counter("telemetry.load_attempts"))
	assert.Equal(uint64(2), sink.Counter("telemetry.load_failures"))
	assert.Equal(uint64(1), sink.Counter("telemetry.layout_mismatches"))
	assert.Equal(uint64(10), sink.Gauge("telemetry.plugin_revision"))
}

func TestLoader_MissingDirectory(t *testing.T) {
	_, err := New2("/nonexistent/telemetry/record", nullScope, nil)
	require.Error(t, err)
}

func TestFileRefresher(t *testing.T) {
	assert := require.New(t)

	r := &FileRefresher{}
	assert.Equal("/dev/shm", r.WatchDirectory("/dev/shm/Ets2TelemetryServer"))
	assert.True(r.ShouldRefresh("/dev/shm/Ets2TelemetryServer", Write))
	assert.True(r.ShouldRefresh("/dev/shm/Ets2TelemetryServer", Create))
	assert.False(r.ShouldRefresh("/dev/shm/Ets2TelemetryServer", Remove))
	assert.False(r.ShouldRefresh("/dev/shm/other", Write))

	r.WatchFileSystemOps(Chmod)
	assert.True(r.ShouldRefresh("/dev/shm/Ets2TelemetryServer", Chmod))
	assert.False(r.ShouldRefresh("/dev/shm/Ets2TelemetryServer", Write))
}
