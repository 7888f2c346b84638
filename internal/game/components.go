package game

// BodyKind identifies a body in the scene.
type BodyKind uint8

const (
	BodyEarth BodyKind = iota
	BodyMoon
)

// Orbit is a body's circular path around its parent.
type Orbit struct {
	AngleDeg       float64 // [0, 360)
	Radius         float64
	SpeedDegPerSec float64
}

// Body is the drawn disc of an orbiting body.
type Body struct {
	Kind   BodyKind
	Radius float64
}
