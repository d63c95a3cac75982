// Package telemetry derives typed, read-only views from telemetry snapshots.
//
// Every view captures one snapshot when it is built and computes all of its
// properties from that snapshot, so properties read from the same view never
// mix two ticks. Views are cheap; build a new one per request instead of
// keeping them around.
package telemetry

import (
	"github.com/funbit/ets2telemetry/process"
	"github.com/funbit/ets2telemetry/record"
	"github.com/funbit/ets2telemetry/snapshot"
)

// Source provides the current snapshot. snapshot.Holder and the loaders
// implement it.
type Source interface {
	Snapshot() snapshot.IFace
}

// Data builds views over the current snapshot of a Source.
type Data struct {
	source  Source
	monitor process.Monitor
}

// NewData returns a Data reading from source. A nil monitor reports the
// simulator as not running, which keeps Game.Connected false.
func NewData(source Source, monitor process.Monitor) *Data {
	if monitor == nil {
		monitor = process.Static{}
	}
	return &Data{
		source:  source,
		monitor: monitor,
	}
}

// Frame captures the current snapshot once. Use it when several views must
// describe the same tick.
func (d *Data) Frame() Frame {
	return NewFrame(d.source.Snapshot(), d.monitor)
}

func (d *Data) Game() Game                   { return d.Frame().Game() }
func (d *Data) Truck() Truck                 { return d.Frame().Truck() }
func (d *Data) Trailers() []Trailer          { return d.Frame().Trailers() }
func (d *Data) Job() Job                     { return d.Frame().Job() }
func (d *Data) Cargo() Cargo                 { return d.Frame().Cargo() }
func (d *Data) Navigation() Navigation       { return d.Frame().Navigation() }
func (d *Data) FinedEvent() FinedEvent       { return d.Frame().FinedEvent() }
func (d *Data) JobEvent() JobEvent           { return d.Frame().JobEvent() }
func (d *Data) TollgateEvent() TollgateEvent { return d.Frame().TollgateEvent() }
func (d *Data) FerryEvent() FerryEvent       { return d.Frame().FerryEvent() }
func (d *Data) TrainEvent() TrainEvent       { return d.Frame().TrainEvent() }

// Trailer returns the view of the trailer at the zero based index.
func (d *Data) Trailer(index int) (Trailer, error) { return d.Frame().Trailer(index) }

// Frame is a set of views over one snapshot.
type Frame struct {
	snap    snapshot.IFace
	rec     *record.Record
	running bool
	game    string
}

// NewFrame binds a Frame to snap. The monitor is consulted once, here.
func NewFrame(snap snapshot.IFace, monitor process.Monitor) Frame {
	if monitor == nil {
		monitor = process.Static{}
	}
	return Frame{
		snap:    snap,
		rec:     snap.Record(),
		running: monitor.Running(),
		game:    monitor.GameName(),
	}
}

// Snapshot returns the snapshot the frame was built from.
func (f Frame) Snapshot() snapshot.IFace { return f.snap }

func (f Frame) Game() Game {
	return Game{rec: f.rec, running: f.running, name: f.game}
}

func (f Frame) Truck() Truck           { return Truck{rec: f.rec} }
func (f Frame) Job() Job               { return Job{rec: f.rec} }
func (f Frame) Cargo() Cargo           { return Cargo{rec: f.rec} }
func (f Frame) Navigation() Navigation { return Navigation{rec: f.rec} }

func (f Frame) Trailer(index int) (Trailer, error) { return newTrailer(f.rec, index) }

// Trailers returns a view of every trailer slot, attached or not, ordered
// by trailer number.
func (f Frame) Trailers() []Trailer {
	ret := make([]Trailer, 0, record.TrailerSlots)
	for i := 0; i < record.TrailerSlots; i++ {
		ret = append(ret, Trailer{rec: f.rec, tr: &f.rec.Trailers[i], index: i})
	}
	return ret
}

func (f Frame) FinedEvent() FinedEvent       { return FinedEvent{rec: f.rec} }
func (f Frame) JobEvent() JobEvent           { return JobEvent{rec: f.rec} }
func (f Frame) TollgateEvent() TollgateEvent { return TollgateEvent{rec: f.rec} }
func (f Frame) FerryEvent() FerryEvent       { return FerryEvent{rec: f.rec} }
func (f Frame) TrainEvent() TrainEvent       { return TrainEvent{rec: f.rec} }
