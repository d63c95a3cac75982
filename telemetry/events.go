package telemetry

import (
	"time"

	"github.com/funbit/ets2telemetry/record"
)

// Gameplay events are raised by the plugin for the tick in which they
// happen. They are reported for every tick the plugin keeps the flag set;
// consumers needing exactly-once delivery must detect the edge themselves.

type FinedEvent struct {
	rec *record.Record
}

func (e FinedEvent) Fined() bool         { return flag(e.rec.Fined) }
func (e FinedEvent) FineOffense() string { return BytesToString(e.rec.FineOffence[:]) }
func (e FinedEvent) FineAmount() int     { return int(e.rec.FineAmount) }

type JobEvent struct {
	rec *record.Record
}

func (e JobEvent) JobFinished() bool    { return flag(e.rec.JobFinished) }
func (e JobEvent) JobCancelled() bool   { return flag(e.rec.JobCancelled) }
func (e JobEvent) JobDelivered() bool   { return flag(e.rec.JobDelivered) }
func (e JobEvent) CancelPenalty() int   { return int(e.rec.JobCancelledPenalty) }
func (e JobEvent) Revenue() int         { return int(e.rec.JobDeliveredRevenue) }
func (e JobEvent) EarnedXP() int        { return int(e.rec.JobDeliveredEarnedXP) }
func (e JobEvent) CargoDamage() float32 { return e.rec.CargoDamage }
func (e JobEvent) Distance() int        { return int(e.rec.NavigationDistance) }
func (e JobEvent) AutoparkUsed() bool   { return flag(e.rec.JobDeliveredAutoparkUsed) }
func (e JobEvent) AutoloadUsed() bool   { return flag(e.rec.JobDeliveredAutoloadUsed) }

func (e JobEvent) DeliveryTime() time.Time {
	return MinutesToTime(int64(e.rec.JobDeliveredDeliveryTime))
}

type TollgateEvent struct {
	rec *record.Record
}

func (e TollgateEvent) TollgateUsed() bool { return flag(e.rec.Tollgate) }
func (e TollgateEvent) PayAmount() int     { return int(e.rec.TollgatePayAmount) }

type FerryEvent struct {
	rec *record.Record
}

func (e FerryEvent) FerryUsed() bool    { return flag(e.rec.Ferry) }
func (e FerryEvent) SourceName() string { return BytesToString(e.rec.FerrySourceName[:]) }
func (e FerryEvent) TargetName() string { return BytesToString(e.rec.FerryTargetName[:]) }
func (e FerryEvent) SourceID() string   { return BytesToString(e.rec.FerrySourceID[:]) }
func (e FerryEvent) TargetID() string   { return BytesToString(e.rec.FerryTargetID[:]) }
func (e FerryEvent) PayAmount() int     { return int(e.rec.FerryPayAmount) }

type TrainEvent struct {
	rec *record.Record
}

func (e TrainEvent) TrainUsed() bool    { return flag(e.rec.Train) }
func (e TrainEvent) SourceName() string { return BytesToString(e.rec.TrainSourceName[:]) }
func (e TrainEvent) TargetName() string { return BytesToString(e.rec.TrainTargetName[:]) }
func (e TrainEvent) SourceID() string   { return BytesToString(e.rec.TrainSourceID[:]) }
func (e TrainEvent) TargetID() string   { return BytesToString(e.rec.TrainTargetID[:]) }
func (e TrainEvent) PayAmount() int     { return int(e.rec.TrainPayAmount) }
