package telemetry

import (
	"github.com/funbit/ets2telemetry/record"
	"github.com/funbit/ets2telemetry/snapshot"
)

// Trailer describes one of the trailer slots. Slots are addressed by a zero
// based index and reported with a one based TrailerNumber.
type Trailer struct {
	rec   *record.Record
	tr    *record.Trailer
	index int
}

// NewTrailer binds a Trailer view to the slot at index in snap. An index
// outside [0, 9] fails with record.ErrInvalidTrailerIndex.
func NewTrailer(snap snapshot.IFace, index int) (Trailer, error) {
	return newTrailer(snap.Record(), index)
}

func newTrailer(rec *record.Record, index int) (Trailer, error) {
	tr, err := rec.Trailer(index)
	if err != nil {
		return Trailer{}, err
	}
	return Trailer{rec: rec, tr: tr, index: index}, nil
}

func (t Trailer) TrailerNumber() int { return t.index + 1 }

// Attached reports whether this trailer is coupled. No trailer chain exists
// unless the first trailer is attached, so every slot reports false while
// slot 0 is detached.
func (t Trailer) Attached() bool {
	return flag(t.rec.Trailers[0].Attached) && flag(t.tr.Attached)
}

// Present reports whether the slot describes a trailer at all, coupled or
// not.
func (t Trailer) Present() bool { return t.ID() != "" }

func (t Trailer) ID() string   { return BytesToString(t.tr.ID[:]) }
func (t Trailer) Name() string { return BytesToString(t.tr.Name[:]) }

func (t Trailer) WearWheels() float32  { return t.tr.WearWheels }
func (t Trailer) WearChassis() float32 { return t.tr.WearChassis }
func (t Trailer) CargoDamage() float32 { return t.tr.CargoDamage }

func (t Trailer) CargoAccessoryID() string { return BytesToString(t.tr.CargoAccessoryID[:]) }
func (t Trailer) BrandID() string          { return BytesToString(t.tr.BrandID[:]) }
func (t Trailer) Brand() string            { return BytesToString(t.tr.Brand[:]) }
func (t Trailer) BodyType() string         { return BytesToString(t.tr.BodyType[:]) }
func (t Trailer) ChainType() string        { return BytesToString(t.tr.ChainType[:]) }
func (t Trailer) LicensePlate() string     { return BytesToString(t.tr.LicensePlate[:]) }

func (t Trailer) LicensePlateCountry() string {
	return BytesToString(t.tr.LicensePlateCountry[:])
}

func (t Trailer) LicensePlateCountryID() string {
	return BytesToString(t.tr.LicensePlateCountryID[:])
}

// Placement returns the world placement of the first trailer for every
// slot. Slots other than 0 do not report their own coupling point yet; this
// matches what existing dashboards consume.
func (t Trailer) Placement() Placement {
	head := &t.rec.Trailers[0]
	return Placement{
		X:       head.WorldX,
		Y:       head.WorldY,
		Z:       head.WorldZ,
		Heading: head.RotationX,
		Pitch:   head.RotationY,
		Roll:    head.RotationZ,
	}
}
