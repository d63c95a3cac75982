package telemetry

import (
	"strconv"
	"time"

	"github.com/funbit/ets2telemetry/record"
)

// Game describes the simulator session.
type Game struct {
	rec     *record.Record
	running bool
	name    string
}

// Connected reports whether the snapshot carries live data: the plugin has
// identified itself, the simulator process is running and the plugin has
// written at least one real tick. Any one of these alone can be stale.
func (g Game) Connected() bool {
	return g.rec.PluginRevision != 0 &&
		g.running &&
		g.rec.TimeAbsolute != 0
}

func (g Game) GameName() string { return g.name }
func (g Game) Paused() bool     { return flag(g.rec.Paused) }

// Time is the in-game clock.
func (g Game) Time() time.Time { return MinutesToTime(int64(g.rec.TimeAbsolute)) }

func (g Game) TimeScale() float32 { return g.rec.LocalScale }

func (g Game) NextRestStopTime() time.Time { return MinutesToTime(int64(g.rec.NextRestStop)) }

// Version is the simulator's telemetry SDK version as "major.minor".
func (g Game) Version() string {
	return strconv.FormatUint(uint64(g.rec.VersionMajor), 10) + "." +
		strconv.FormatUint(uint64(g.rec.VersionMinor), 10)
}

func (g Game) TelemetryPluginVersion() string {
	return strconv.FormatUint(uint64(g.rec.PluginRevision), 10)
}

func (g Game) MaxTrailerCount() int { return int(g.rec.MaxTrailerCount) }
