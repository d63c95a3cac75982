package telemetry

import (
	"time"

	"github.com/funbit/ets2telemetry/record"
)

// Job describes the current delivery contract.
type Job struct {
	rec *record.Record
}

func (j Job) Income() int { return int(j.rec.JobIncome) }

func (j Job) DeadlineTime() time.Time { return MinutesToTime(int64(j.rec.JobDeadline)) }

// RemainingTime is the time left until the deadline, expressed as an offset
// from the zero epoch. Without a deadline, or past it, it is the zero epoch.
func (j Job) RemainingTime() time.Time {
	if j.rec.JobDeadline == 0 {
		return MinutesToTime(0)
	}
	return MinutesToTime(int64(j.rec.JobDeadline) - int64(j.rec.TimeAbsolute))
}

func (j Job) SourceCity() string         { return BytesToString(j.rec.JobCitySource[:]) }
func (j Job) SourceCompany() string      { return BytesToString(j.rec.JobCompanySource[:]) }
func (j Job) DestinationCity() string    { return BytesToString(j.rec.JobCityDestination[:]) }
func (j Job) DestinationCompany() string { return BytesToString(j.rec.JobCompanyDestination[:]) }
func (j Job) SpecialTransport() bool     { return flag(j.rec.SpecialJob) }
func (j Job) JobMarket() string          { return BytesToString(j.rec.JobMarket[:]) }

// Cargo describes the load of the current job.
type Cargo struct {
	rec *record.Record
}

func (c Cargo) CargoLoaded() bool { return flag(c.rec.IsCargoLoaded) }
func (c Cargo) CargoID() string   { return BytesToString(c.rec.CargoID[:]) }
func (c Cargo) Cargo() string     { return BytesToString(c.rec.Cargo[:]) }
func (c Cargo) Mass() float32     { return c.rec.CargoMass }
func (c Cargo) UnitMass() float32 { return c.rec.UnitMass }
func (c Cargo) UnitCount() int    { return int(c.rec.UnitCount) }
func (c Cargo) Damage() float32   { return c.rec.CargoDamage }
