package process

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	stats "github.com/lyft/gostats"

	logger "github.com/sirupsen/logrus"
)

// DefaultRoot is where process entries are read from.
const DefaultRoot = "/proc"

// executables maps lower case executable names, without any .exe suffix, to
// the game they belong to.
var executables = map[string]string{
	"eurotrucks2": "ETS2",
	"amtrucks":    "ATS",
}

type pollerStats struct {
	polls        stats.Counter
	pollFailures stats.Counter
	running      stats.Gauge
}

func newPollerStats(scope stats.Scope) pollerStats {
	ret := pollerStats{}
	ret.polls = scope.NewCounter("polls")
	ret.pollFailures = scope.NewCounter("poll_failures")
	ret.running = scope.NewGauge("running")
	return ret
}

type state struct {
	running bool
	name    string
}

// Poller is a Monitor that periodically scans a procfs style directory for
// a simulator executable.
type Poller struct {
	root     string
	interval time.Duration
	current  atomic.Value
	stats    pollerStats
}

// NewPoller returns a Poller scanning root every interval. An empty root
// means DefaultRoot. Nothing is scanned until Poll or Run is called.
func NewPoller(root string, interval time.Duration, scope stats.Scope) *Poller {
	if root == "" {
		root = DefaultRoot
	}
	p := &Poller{
		root:     root,
		interval: interval,
		stats:    newPollerStats(scope),
	}
	p.current.Store(state{})
	return p
}

func (p *Poller) load() state {
	s, _ := p.current.Load().(state)
	return s
}

func (p *Poller) Running() bool { return p.load().running }

func (p *Poller) GameName() string { return p.load().name }

// Poll scans the process table once and updates the reported state.
func (p *Poller) Poll() error {
	p.stats.polls.Inc()

	entries, err := os.ReadDir(p.root)
	if err != nil {
		p.stats.pollFailures.Inc()
		return err
	}

	prev := p.load()
	next := state{name: prev.name}
	for _, e := range entries {
		if !e.IsDir() || !isPID(e.Name()) {
			continue
		}
		// Processes come and go while we scan; a missing comm is not an error.
		comm, err := os.ReadFile(filepath.Join(p.root, e.Name(), "comm"))
		if err != nil {
			continue
		}
		if game, ok := gameFor(string(comm)); ok {
			next = state{running: true, name: game}
			break
		}
	}

	if next.running != prev.running {
		if next.running {
			logger.Infof("process: %s is running", next.name)
		} else {
			logger.Infof("process: %s is no longer running", prev.name)
		}
	}
	if next.running {
		p.stats.running.Set(1)
	} else {
		p.stats.running.Set(0)
	}
	p.current.Store(next)

	return nil
}

// Run polls immediately and then every interval until ctx is done.
func (p *Poller) Run(ctx context.Context) error {
	if err := p.Poll(); err != nil {
		logger.Warnf("process: error scanning %s: %s", p.root, err)
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := p.Poll(); err != nil {
				logger.Warnf("process: error scanning %s: %s", p.root, err)
			}
		}
	}
}

func isPID(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func gameFor(comm string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(comm))
	name = strings.TrimSuffix(name, ".exe")
	game, ok := executables[name]
	return game, ok
}
