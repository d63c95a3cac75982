// Package settings loads process configuration from the environment.
package settings

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Settings struct {
	// Shared memory file the telemetry plugin writes its record into.
	RecordPath   string        `envconfig:"RECORD_PATH" default:"/dev/shm/Ets2TelemetryServer"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"100ms"`

	// Where to look for the simulator process.
	ProcRoot            string        `envconfig:"PROC_ROOT" default:"/proc"`
	ProcessPollInterval time.Duration `envconfig:"PROCESS_POLL_INTERVAL" default:"1s"`

	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	StatsPrefix     string        `envconfig:"STATS_PREFIX" default:"ets2telemetry"`
	StatsFlushEvery time.Duration `envconfig:"STATS_FLUSH_INTERVAL" default:"10s"`
}

// Prefix namespaces every variable, e.g. ETS2_TELEMETRY_RECORD_PATH.
const Prefix = "ETS2_TELEMETRY"

// NewSettings reads Settings from the environment, applying defaults for
// unset variables.
func NewSettings() (Settings, error) {
	var s Settings
	if err := envconfig.Process(Prefix, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
