// Command ets2telemetry follows the telemetry plugin's shared memory and
// logs what it sees. It is a minimal host for the telemetry packages.
package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/funbit/ets2telemetry/loader"
	"github.com/funbit/ets2telemetry/process"
	"github.com/funbit/ets2telemetry/settings"
	"github.com/funbit/ets2telemetry/telemetry"
	stats "github.com/lyft/gostats"
	"golang.org/x/sync/errgroup"

	logger "github.com/sirupsen/logrus"
)

func main() {
	s, err := settings.NewSettings()
	if err != nil {
		logger.Fatalf("settings: %s", err)
	}

	level, err := logger.ParseLevel(s.LogLevel)
	if err != nil {
		logger.Fatalf("settings: %s", err)
	}
	logger.SetLevel(level)

	store := stats.NewDefaultStore()
	store.Start(time.NewTicker(s.StatsFlushEvery))
	defer store.Flush()
	scope := store.Scope(s.StatsPrefix)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	monitor := process.NewPoller(s.ProcRoot, s.ProcessPollInterval, scope.Scope("process"))

	ld, err := loader.New2(s.RecordPath, scope.Scope("loader"), &loader.FileRefresher{},
		loader.PollInterval(s.PollInterval))
	if err != nil {
		logger.Fatalf("loader: %s", err)
	}
	defer ld.Stop()

	data := telemetry.NewData(ld, monitor)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return monitor.Run(ctx) })
	g.Go(func() error { return report(ctx, ld, data) })

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf("ets2telemetry: %s", err)
	}
}

// report logs connection changes and gameplay events on every new tick, and
// a summary of the truck at debug level.
func report(ctx context.Context, ld loader.IFace, data *telemetry.Data) error {
	updates := make(chan int, 1)
	ld.AddUpdateCallback(updates)

	var (
		connected bool
		last      events
	)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-updates:
		}

		f := data.Frame()
		game := f.Game()
		if game.Connected() != connected {
			connected = game.Connected()
			logger.WithFields(logger.Fields{
				"game":           game.GameName(),
				"version":        game.Version(),
				"plugin_version": game.TelemetryPluginVersion(),
				"connected":      connected,
			}).Info("telemetry connection changed")
		}
		if !connected {
			continue
		}

		// The plugin keeps event flags raised for several ticks; log each
		// event once, on its rising edge.
		cur := eventsOf(f)
		if cur.fined && !last.fined {
			e := f.FinedEvent()
			logger.WithFields(logger.Fields{"offense": e.FineOffense(), "amount": e.FineAmount()}).Info("fined")
		}
		if cur.delivered && !last.delivered {
			e := f.JobEvent()
			logger.WithFields(logger.Fields{"revenue": e.Revenue(), "xp": e.EarnedXP()}).Info("job delivered")
		}
		if cur.cancelled && !last.cancelled {
			logger.WithField("penalty", f.JobEvent().CancelPenalty()).Info("job cancelled")
		}
		if cur.tollgate && !last.tollgate {
			logger.WithField("amount", f.TollgateEvent().PayAmount()).Info("tollgate")
		}
		if cur.ferry && !last.ferry {
			e := f.FerryEvent()
			logger.WithFields(logger.Fields{"from": e.SourceName(), "to": e.TargetName()}).Info("ferry")
		}
		if cur.train && !last.train {
			e := f.TrainEvent()
			logger.WithFields(logger.Fields{"from": e.SourceName(), "to": e.TargetName()}).Info("train")
		}
		last = cur

		if logger.IsLevelEnabled(logger.DebugLevel) {
			truck := f.Truck()
			attached := 0
			for _, tr := range f.Trailers() {
				if tr.Attached() {
					attached++
				}
			}
			logger.WithFields(logger.Fields{
				"time":        game.Time().Format("Mon 15:04"),
				"speed":       truck.Speed(),
				"gear":        truck.DisplayedGear(),
				"speed_limit": f.Navigation().SpeedLimit(),
				"fuel":        truck.Fuel(),
				"trailers":    attached,
				"job":         f.Job().DestinationCity(),
			}).Debug("tick")
		}
	}
}

type events struct {
	fined     bool
	delivered bool
	cancelled bool
	tollgate  bool
	ferry     bool
	train     bool
}

func eventsOf(f telemetry.Frame) events {
	return events{
		fined:     f.FinedEvent().Fined(),
		delivered: f.JobEvent().JobDelivered(),
		cancelled: f.JobEvent().JobCancelled(),
		tollgate:  f.TollgateEvent().TollgateUsed(),
		ferry:     f.FerryEvent().FerryUsed(),
		train:     f.TrainEvent().TrainUsed(),
	}
}
