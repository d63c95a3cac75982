// Package record mirrors the binary layout the telemetry plugin writes into
// shared memory.
//
// The layout is owned by the plugin and versioned by its revision number.
// Every field is fixed-size and the record is packed little-endian, so a
// Record can be decoded with a single binary.Read. Blank fields are reserved
// bytes and carry no meaning.
package record

import "encoding/binary"

const (
	// StringSize is the length of the long text buffers (ids, names, plates).
	StringSize = 64
	// ShortStringSize is the length of the short text buffers.
	ShortStringSize = 32
	// TrailerSlots is the number of trailer groups in the layout.
	TrailerSlots = 10
)

// Trailer is one of the structurally identical trailer groups. The plugin
// writes them as trailer0..trailer9; here they are an array so that one
// accessor serves every slot.
type Trailer struct {
	Attached uint8
	_        [3]byte

	WearWheels  float32
	WearChassis float32
	CargoDamage float32

	WorldX    float64
	WorldY    float64
	WorldZ    float64
	RotationX float64
	RotationY float64
	RotationZ float64

	ID                    [StringSize]byte
	Name                  [StringSize]byte
	CargoAccessoryID      [StringSize]byte
	BrandID               [StringSize]byte
	Brand                 [StringSize]byte
	BodyType              [StringSize]byte
	LicensePlate          [StringSize]byte
	LicensePlateCountry   [StringSize]byte
	LicensePlateCountryID [StringSize]byte
	ChainType             [StringSize]byte
}

// Record is one telemetry tick as written by the plugin.
type Record struct {
	// header
	PluginRevision  uint32
	VersionMajor    uint32
	VersionMinor    uint32
	Paused          uint8
	_               [3]byte
	TimeAbsolute    uint32 // game minutes
	NextRestStop    int32  // game minutes from now
	LocalScale      float32
	MaxTrailerCount uint32

	// truck identification
	TruckMakeID                [StringSize]byte
	TruckMake                  [StringSize]byte
	TruckModel                 [StringSize]byte
	TruckLicensePlate          [StringSize]byte
	TruckLicensePlateCountryID [StringSize]byte
	TruckLicensePlateCountry   [StringSize]byte
	ShifterType                [ShortStringSize]byte

	// drivetrain, meters per second where applicable
	Speed              float32
	CruiseControlSpeed float32
	TruckOdometer      float32
	EngineRPM          float32
	EngineRPMMax       float32
	Gear               int32
	DisplayedGear      int32
	GearsForward       uint32
	GearsReverse       uint32
	ShifterSlot        uint32
	RetarderBrake      uint32
	RetarderStepCount  uint32

	// consumables
	Fuel               float32
	FuelCapacity       float32
	FuelAvgConsumption float32
	FuelWarningFactor  float32
	Adblue             float32
	AdblueCapacity     float32

	// wear
	WearEngine       float32
	WearTransmission float32
	WearCabin        float32
	WearChassis      float32
	WearWheels       float32

	// driver and game input
	UserSteer    float32
	UserThrottle float32
	UserBrake    float32
	UserClutch   float32
	GameSteer    float32
	GameThrottle float32
	GameBrake    float32
	GameClutch   float32

	// gauges
	BrakeTemperature             float32
	AirPressure                  float32
	AirPressureWarningValue      float32
	AirPressureEmergencyValue    float32
	OilTemperature               float32
	OilPressure                  float32
	OilPressureWarningValue      float32
	WaterTemperature             float32
	WaterTemperatureWarningValue float32
	BatteryVoltage               float32
	BatteryVoltageWarningValue   float32
	LightsDashboard              float32
	LightsAuxFront               uint32
	LightsAuxRoof                uint32

	// truck flags
	CruiseControl           uint8
	FuelWarning             uint8
	AdblueWarning           uint8
	EngineEnabled           uint8
	ElectricEnabled         uint8
	Wipers                  uint8
	ParkBrake               uint8
	MotorBrake              uint8
	AirPressureWarning      uint8
	AirPressureEmergency    uint8
	OilPressureWarning      uint8
	WaterTemperatureWarning uint8
	BatteryVoltageWarning   uint8
	BlinkerLeftActive       uint8
	BlinkerRightActive      uint8
	BlinkerLeftOn           uint8
	BlinkerRightOn          uint8
	LightsParking           uint8
	LightsBeamLow           uint8
	LightsBeamHigh          uint8
	LightsBeacon            uint8
	LightsBrake             uint8
	LightsReverse           uint8
	_                       [1]byte

	// truck placement
	CoordinateX float64
	CoordinateY float64
	CoordinateZ float64
	RotationX   float64
	RotationY   float64
	RotationZ   float64

	AccelerationX  float32
	AccelerationY  float32
	AccelerationZ  float32
	HeadPositionX  float32
	HeadPositionY  float32
	HeadPositionZ  float32
	CabinPositionX float32
	CabinPositionY float32
	CabinPositionZ float32
	HookPositionX  float32
	HookPositionY  float32
	HookPositionZ  float32

	// job
	JobIncome             uint32
	JobDeadline           uint32 // absolute game minutes, 0 when unset
	JobCitySource         [StringSize]byte
	JobCompanySource      [StringSize]byte
	JobCityDestination    [StringSize]byte
	JobCompanyDestination [StringSize]byte
	JobMarket             [ShortStringSize]byte
	SpecialJob            uint8
	IsCargoLoaded         uint8
	_                     [2]byte

	// cargo
	CargoID     [StringSize]byte
	Cargo       [StringSize]byte
	CargoMass   float32
	UnitMass    float32
	UnitCount   uint32
	CargoDamage float32

	// navigation
	NavigationDistance   float32 // meters
	NavigationTime       float32 // seconds
	NavigationSpeedLimit float32 // meters per second, 0 when unset

	// gameplay events, valid for the tick that raised them
	Fined                    uint8
	JobFinished              uint8
	JobCancelled             uint8
	JobDelivered             uint8
	JobDeliveredAutoparkUsed uint8
	JobDeliveredAutoloadUsed uint8
	Tollgate                 uint8
	Ferry                    uint8
	Train                    uint8
	_                        [7]byte

	FineOffence              [ShortStringSize]byte
	FineAmount               int64
	JobCancelledPenalty      int64
	JobDeliveredRevenue      int64
	JobDeliveredEarnedXP     int32
	JobDeliveredDeliveryTime uint32 // game minutes
	TollgatePayAmount        int64

	FerryPayAmount  int64
	FerrySourceName [StringSize]byte
	FerryTargetName [StringSize]byte
	FerrySourceID   [StringSize]byte
	FerryTargetID   [StringSize]byte

	TrainPayAmount  int64
	TrainSourceName [StringSize]byte
	TrainTargetName [StringSize]byte
	TrainSourceID   [StringSize]byte
	TrainTargetID   [StringSize]byte

	Trailers [TrailerSlots]Trailer
}

// Size is the number of bytes one Record occupies in shared memory.
var Size = binary.Size(Record{})
