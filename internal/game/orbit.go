package game

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"github.com/orbits-viz/orbits/internal/world"
)

// PlanetSystem is the Earth-Moon model. The Earth orbits the Sun at a
// player-controlled radius; the Moon orbits the Earth at a fixed radius.
type PlanetSystem struct {
	ECS    *ecs.World
	Layout *world.Layout

	earth  ecs.Entity
	moon   ecs.Entity
	orbits *ecs.Map[Orbit]
	bodies *ecs.Map[Body]
}

// NewPlanetSystem places the Earth at the layout's start radius with both
// angles at zero.
func NewPlanetSystem(layout *world.Layout) *PlanetSystem {
	w := ecs.NewWorld(16)

	spawn := ecs.NewMap2[Orbit, Body](w)
	earth := spawn.NewEntity(
		&Orbit{
			Radius:         layout.Orbit.Start,
			SpeedDegPerSec: KeplerSpeed(layout.Orbit.Start, layout.Orbit.SpeedScale),
		},
		&Body{Kind: BodyEarth, Radius: layout.Bodies.EarthRadius},
	)
	moon := spawn.NewEntity(
		&Orbit{
			Radius:         layout.Moon.OrbitRadius,
			SpeedDegPerSec: layout.Moon.DegPerFrame * layout.Moon.FrameRate,
		},
		&Body{Kind: BodyMoon, Radius: layout.Bodies.MoonRadius},
	)

	return &PlanetSystem{
		ECS:    w,
		Layout: layout,
		earth:  earth,
		moon:   moon,
		orbits: ecs.NewMap[Orbit](w),
		bodies: ecs.NewMap[Body](w),
	}
}

// KeplerSpeed is the Earth's angular speed in degrees per second at the given
// orbit radius. It falls off with the inverse square root of the radius.
func KeplerSpeed(radius, scale float64) float64 {
	return math.Sqrt(1/radius) * scale
}

// Update advances both orbits by dt seconds of real time.
// Negative dt is treated as zero.
func (p *PlanetSystem) Update(dt float64) {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	earth := p.orbits.Get(p.earth)
	moon := p.orbits.Get(p.moon)

	speed := KeplerSpeed(earth.Radius, p.Layout.Orbit.SpeedScale)
	earth.AngleDeg = wrapDegrees(earth.AngleDeg + speed*dt)
	moon.AngleDeg = wrapDegrees(moon.AngleDeg + moon.SpeedDegPerSec*dt)
	earth.SpeedDegPerSec = speed
}

// wrapDegrees maps a to [0, 360).
func wrapDegrees(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

// MoveInward pulls the Earth one step toward the Sun, stopping at the
// minimum radius. It reports whether the radius changed.
func (p *PlanetSystem) MoveInward() bool {
	o := p.Layout.Orbit
	return p.SetOrbitRadius(max(o.Min, p.OrbitRadius()-o.Step))
}

// MoveOutward pushes the Earth one step away from the Sun, stopping at the
// maximum radius. It reports whether the radius changed.
func (p *PlanetSystem) MoveOutward() bool {
	o := p.Layout.Orbit
	return p.SetOrbitRadius(min(o.Max, p.OrbitRadius()+o.Step))
}

// SetOrbitRadius clamps r to the layout bounds and applies it.
// It reports whether the radius changed.
func (p *PlanetSystem) SetOrbitRadius(r float64) bool {
	o := p.Layout.Orbit
	if math.IsNaN(r) {
		return false
	}
	r = max(o.Min, min(o.Max, r))
	earth := p.orbits.Get(p.earth)
	if earth.Radius == r {
		return false
	}
	earth.Radius = r
	return true
}

// OrbitRadius returns the Earth's distance from the Sun.
func (p *PlanetSystem) OrbitRadius() float64 { return p.orbits.Get(p.earth).Radius }

// EarthAngle returns the Earth's position around the Sun in degrees.
func (p *PlanetSystem) EarthAngle() float64 { return p.orbits.Get(p.earth).AngleDeg }

// MoonAngle returns the Moon's position around the Earth in degrees.
func (p *PlanetSystem) MoonAngle() float64 { return p.orbits.Get(p.moon).AngleDeg }

// OrbitalSpeed returns the Earth's speed as of the last Update.
func (p *PlanetSystem) OrbitalSpeed() float64 { return p.orbits.Get(p.earth).SpeedDegPerSec }

// MoonOrbitRadius returns the Moon's distance from the Earth.
func (p *PlanetSystem) MoonOrbitRadius() float64 { return p.orbits.Get(p.moon).Radius }

// EarthBody returns the Earth's drawn disc.
func (p *PlanetSystem) EarthBody() Body { return *p.bodies.Get(p.earth) }

// MoonBody returns the Moon's drawn disc.
func (p *PlanetSystem) MoonBody() Body { return *p.bodies.Get(p.moon) }

// setAngles restores both angles, wrapping them into [0, 360).
func (p *PlanetSystem) setAngles(earthDeg, moonDeg float64) {
	p.orbits.Get(p.earth).AngleDeg = wrapDegrees(earthDeg)
	p.orbits.Get(p.moon).AngleDeg = wrapDegrees(moonDeg)
}

// EarthPosition returns the Earth's center for a Sun at (cx, cy).
// Angles grow counterclockwise with y pointing up.
func (p *PlanetSystem) EarthPosition(cx, cy float64) (x, y float64) {
	return polar(cx, cy, p.OrbitRadius(), p.EarthAngle())
}

// MoonPosition returns the Moon's center for a Sun at (cx, cy).
func (p *PlanetSystem) MoonPosition(cx, cy float64) (x, y float64) {
	ex, ey := p.EarthPosition(cx, cy)
	return polar(ex, ey, p.MoonOrbitRadius(), p.MoonAngle())
}

func polar(cx, cy, r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + r*math.Cos(rad), cy + r*math.Sin(rad)
}
