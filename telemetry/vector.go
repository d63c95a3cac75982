package telemetry

// Vector is a position or acceleration in the truck's local space.
type Vector struct {
	X float32
	Y float32
	Z float32
}

// Placement is a position in world space together with its orientation.
// Heading, Pitch and Roll are fractions of a full turn as reported by the
// plugin.
type Placement struct {
	X       float64
	Y       float64
	Z       float64
	Heading float64
	Pitch   float64
	Roll    float64
}
