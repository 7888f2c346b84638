package game

import (
	"github.com/orbits-viz/orbits/internal/palette"
	"github.com/orbits-viz/orbits/internal/world"
)

// PlanetState is the Earth's climate band, derived from its orbit radius.
type PlanetState uint8

const (
	StateNormal PlanetState = iota
	StateBurning
	StateFrozen
)

func (s PlanetState) String() string {
	switch s {
	case StateBurning:
		return "Burning"
	case StateFrozen:
		return "Frozen"
	default:
		return "Normal"
	}
}

// Climate is a planet state plus how far into its band the Earth has moved.
// T is 0 at the band's threshold and 1 at the orbit limit; it is always 0
// for StateNormal.
type Climate struct {
	State PlanetState
	T     float64
}

// Classify derives the climate for an orbit radius.
func Classify(radius float64, o world.OrbitDef) Climate {
	switch {
	case radius < o.RedThreshold:
		return Climate{StateBurning, min((o.RedThreshold-radius)/(o.RedThreshold-o.Min), 1.0)}
	case radius > o.BlueThreshold:
		return Climate{StateFrozen, min((radius-o.BlueThreshold)/(o.Max-o.BlueThreshold), 1.0)}
	default:
		return Climate{State: StateNormal}
	}
}

// OceanColor returns the Earth's disc color at radius.
// The override radius keeps the ocean blue even inside a gradient band.
func OceanColor(radius float64, o world.OrbitDef) palette.RGB {
	if o.OceanOverride != 0 && radius == o.OceanOverride {
		return palette.Ocean
	}
	c := Classify(radius, o)
	switch c.State {
	case StateBurning:
		return palette.Lerp(palette.BurningOcean, palette.ScorchedOcean, c.T)
	case StateFrozen:
		return palette.Lerp(palette.Ocean, palette.IceSheet, c.T)
	default:
		return palette.Ocean
	}
}

// MoonColor returns the Moon's disc color at the Earth's orbit radius.
func MoonColor(radius float64, o world.OrbitDef) palette.RGB {
	c := Classify(radius, o)
	switch c.State {
	case StateBurning:
		return palette.Lerp(palette.MoonGray, palette.MoonBurnt, c.T)
	case StateFrozen:
		return palette.Lerp(palette.MoonGray, palette.MoonFrost, c.T)
	default:
		return palette.MoonGray
	}
}

// HasLand reports whether land masses show on the Earth. The thresholds
// themselves are excluded.
func HasLand(radius float64, o world.OrbitDef) bool {
	return o.RedThreshold < radius && radius < o.BlueThreshold
}

// Gravity is the Sun's synthetic gravitational influence on the Earth in m/s².
// It equals the surface value at the reference radius.
func Gravity(radius float64, g world.GravityDef) float64 {
	return g.Surface * (g.ReferenceRadius / radius)
}
