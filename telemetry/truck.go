package telemetry

import "github.com/funbit/ets2telemetry/record"

// Truck describes the player's truck. Speeds are in km/h.
type Truck struct {
	rec *record.Record
}

func (t Truck) ID() string    { return BytesToString(t.rec.TruckMakeID[:]) }
func (t Truck) Make() string  { return BytesToString(t.rec.TruckMake[:]) }
func (t Truck) Model() string { return BytesToString(t.rec.TruckModel[:]) }

func (t Truck) Speed() float32              { return MetersPerSecondToKmh(t.rec.Speed) }
func (t Truck) CruiseControlSpeed() float32 { return MetersPerSecondToKmh(t.rec.CruiseControlSpeed) }
func (t Truck) CruiseControlOn() bool       { return flag(t.rec.CruiseControl) }
func (t Truck) Odometer() float32           { return t.rec.TruckOdometer }

func (t Truck) Gear() int           { return int(t.rec.Gear) }
func (t Truck) DisplayedGear() int  { return int(t.rec.DisplayedGear) }
func (t Truck) ForwardGears() int   { return int(t.rec.GearsForward) }
func (t Truck) ReverseGears() int   { return int(t.rec.GearsReverse) }
func (t Truck) ShifterType() string { return BytesToString(t.rec.ShifterType[:]) }
func (t Truck) ShifterSlot() int    { return int(t.rec.ShifterSlot) }

func (t Truck) EngineRPM() float32    { return t.rec.EngineRPM }
func (t Truck) EngineRPMMax() float32 { return t.rec.EngineRPMMax }
func (t Truck) EngineOn() bool        { return flag(t.rec.EngineEnabled) }
func (t Truck) ElectricOn() bool      { return flag(t.rec.ElectricEnabled) }
func (t Truck) WipersOn() bool        { return flag(t.rec.Wipers) }

func (t Truck) Fuel() float32                   { return t.rec.Fuel }
func (t Truck) FuelCapacity() float32           { return t.rec.FuelCapacity }
func (t Truck) FuelAverageConsumption() float32 { return t.rec.FuelAvgConsumption }
func (t Truck) FuelWarningFactor() float32      { return t.rec.FuelWarningFactor }
func (t Truck) FuelWarningOn() bool             { return flag(t.rec.FuelWarning) }

func (t Truck) Adblue() float32         { return t.rec.Adblue }
func (t Truck) AdblueCapacity() float32 { return t.rec.AdblueCapacity }
func (t Truck) AdblueWarningOn() bool   { return flag(t.rec.AdblueWarning) }

// AdblueAverageConsumption is no longer published by the plugin and is
// always 0.
func (t Truck) AdblueAverageConsumption() float32 { return 0 }

func (t Truck) WearEngine() float32       { return t.rec.WearEngine }
func (t Truck) WearTransmission() float32 { return t.rec.WearTransmission }
func (t Truck) WearCabin() float32        { return t.rec.WearCabin }
func (t Truck) WearChassis() float32      { return t.rec.WearChassis }
func (t Truck) WearWheels() float32       { return t.rec.WearWheels }

func (t Truck) UserSteer() float32    { return t.rec.UserSteer }
func (t Truck) UserThrottle() float32 { return t.rec.UserThrottle }
func (t Truck) UserBrake() float32    { return t.rec.UserBrake }
func (t Truck) UserClutch() float32   { return t.rec.UserClutch }
func (t Truck) GameSteer() float32    { return t.rec.GameSteer }
func (t Truck) GameThrottle() float32 { return t.rec.GameThrottle }
func (t Truck) GameBrake() float32    { return t.rec.GameBrake }
func (t Truck) GameClutch() float32   { return t.rec.GameClutch }

func (t Truck) RetarderBrake() int         { return int(t.rec.RetarderBrake) }
func (t Truck) RetarderStepCount() int     { return int(t.rec.RetarderStepCount) }
func (t Truck) ParkBrakeOn() bool          { return flag(t.rec.ParkBrake) }
func (t Truck) MotorBrakeOn() bool         { return flag(t.rec.MotorBrake) }
func (t Truck) BrakeTemperature() float32  { return t.rec.BrakeTemperature }
func (t Truck) AirPressure() float32       { return t.rec.AirPressure }
func (t Truck) AirPressureWarningOn() bool { return flag(t.rec.AirPressureWarning) }

func (t Truck) AirPressureWarningValue() float32   { return t.rec.AirPressureWarningValue }
func (t Truck) AirPressureEmergencyOn() bool       { return flag(t.rec.AirPressureEmergency) }
func (t Truck) AirPressureEmergencyValue() float32 { return t.rec.AirPressureEmergencyValue }

func (t Truck) OilTemperature() float32          { return t.rec.OilTemperature }
func (t Truck) OilPressure() float32             { return t.rec.OilPressure }
func (t Truck) OilPressureWarningOn() bool       { return flag(t.rec.OilPressureWarning) }
func (t Truck) OilPressureWarningValue() float32 { return t.rec.OilPressureWarningValue }

func (t Truck) WaterTemperature() float32             { return t.rec.WaterTemperature }
func (t Truck) WaterTemperatureWarningOn() bool       { return flag(t.rec.WaterTemperatureWarning) }
func (t Truck) WaterTemperatureWarningValue() float32 { return t.rec.WaterTemperatureWarningValue }

func (t Truck) BatteryVoltage() float32             { return t.rec.BatteryVoltage }
func (t Truck) BatteryVoltageWarningOn() bool       { return flag(t.rec.BatteryVoltageWarning) }
func (t Truck) BatteryVoltageWarningValue() float32 { return t.rec.BatteryVoltageWarningValue }

func (t Truck) LightsDashboardValue() float32 { return t.rec.LightsDashboard }
func (t Truck) LightsDashboardOn() bool       { return t.rec.LightsDashboard > 0 }
func (t Truck) BlinkerLeftActive() bool       { return flag(t.rec.BlinkerLeftActive) }
func (t Truck) BlinkerRightActive() bool      { return flag(t.rec.BlinkerRightActive) }
func (t Truck) BlinkerLeftOn() bool           { return flag(t.rec.BlinkerLeftOn) }
func (t Truck) BlinkerRightOn() bool          { return flag(t.rec.BlinkerRightOn) }
func (t Truck) LightsParkingOn() bool         { return flag(t.rec.LightsParking) }
func (t Truck) LightsBeamLowOn() bool         { return flag(t.rec.LightsBeamLow) }
func (t Truck) LightsBeamHighOn() bool        { return flag(t.rec.LightsBeamHigh) }
func (t Truck) LightsAuxFrontOn() bool        { return t.rec.LightsAuxFront != 0 }
func (t Truck) LightsAuxRoofOn() bool         { return t.rec.LightsAuxRoof != 0 }
func (t Truck) LightsBeaconOn() bool          { return flag(t.rec.LightsBeacon) }
func (t Truck) LightsBrakeOn() bool           { return flag(t.rec.LightsBrake) }
func (t Truck) LightsReverseOn() bool         { return flag(t.rec.LightsReverse) }

// Placement is the truck's position and orientation in the world.
func (t Truck) Placement() Placement {
	return Placement{
		X:       t.rec.CoordinateX,
		Y:       t.rec.CoordinateY,
		Z:       t.rec.CoordinateZ,
		Heading: t.rec.RotationX,
		Pitch:   t.rec.RotationY,
		Roll:    t.rec.RotationZ,
	}
}

func (t Truck) Acceleration() Vector {
	return Vector{X: t.rec.AccelerationX, Y: t.rec.AccelerationY, Z: t.rec.AccelerationZ}
}

// Head is the driver's head position relative to the cabin.
func (t Truck) Head() Vector {
	return Vector{X: t.rec.HeadPositionX, Y: t.rec.HeadPositionY, Z: t.rec.HeadPositionZ}
}

func (t Truck) Cabin() Vector {
	return Vector{X: t.rec.CabinPositionX, Y: t.rec.CabinPositionY, Z: t.rec.CabinPositionZ}
}

// Hook is where the trailer couples, in truck space.
func (t Truck) Hook() Vector {
	return Vector{X: t.rec.HookPositionX, Y: t.rec.HookPositionY, Z: t.rec.HookPositionZ}
}

func (t Truck) LicensePlate() string { return BytesToString(t.rec.TruckLicensePlate[:]) }

func (t Truck) LicensePlateCountryID() string {
	return BytesToString(t.rec.TruckLicensePlateCountryID[:])
}

func (t Truck) LicensePlateCountry() string {
	return BytesToString(t.rec.TruckLicensePlateCountry[:])
}
