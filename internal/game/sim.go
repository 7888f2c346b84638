package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/orbits-viz/orbits/internal/world"
)

// Sim is the application state. It owns the planet system, the star field,
// the clock and the pause flag, and is driven by Tick, HandleChar and Resize.
type Sim struct {
	Layout *world.Layout
	System *PlanetSystem
	Stars  []Star
	Log    *MessageLog
	Paused bool

	// Window size, changed only by Resize.
	Width, Height int

	lastTick time.Time // zero until the first tick after start or resume
	climate  PlanetState
}

// Star is a fixed background point in window coordinates (origin bottom-left).
type Star struct {
	X, Y float64
}

// NewSim builds the scene. The star field is generated once from seed and
// never changes.
func NewSim(layout *world.Layout, seed uint64) *Sim {
	rng := rand.New(rand.NewPCG(seed, seed>>16|1))
	sys := NewPlanetSystem(layout)

	log := NewMessageLog(20)
	log.Add("[A]/[D] move the Earth, [P] pauses.", MsgInfo)

	return &Sim{
		Layout:  layout,
		System:  sys,
		Stars:   GenerateStars(rng, layout.Stars.Count, layout.Window.Width, layout.Window.Height),
		Log:     log,
		Width:   layout.Window.Width,
		Height:  layout.Window.Height,
		climate: Classify(sys.OrbitRadius(), layout.Orbit).State,
	}
}

// GenerateStars scatters n stars over a w x h window, edges included.
func GenerateStars(rng *rand.Rand, n, w, h int) []Star {
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{X: float64(rng.IntN(w + 1)), Y: float64(rng.IntN(h + 1))}
	}
	return stars
}

// Tick advances the simulation by the wall-clock time since the previous
// tick. Nothing moves while paused.
func (s *Sim) Tick(now time.Time) {
	if s.Paused {
		return
	}
	dt := 0.0
	if !s.lastTick.IsZero() {
		dt = now.Sub(s.lastTick).Seconds()
	}
	s.lastTick = now
	s.System.Update(dt)
}

// HandleChar applies a typed character. Only lowercase a, d and p do anything.
func (s *Sim) HandleChar(r rune) {
	switch r {
	case 'a':
		if !s.System.MoveInward() {
			s.Log.Add("The Earth can't get any closer to the Sun.", MsgWarning)
		}
		s.checkClimate()
	case 'd':
		if !s.System.MoveOutward() {
			s.Log.Add("The Earth can't drift any farther out.", MsgWarning)
		}
		s.checkClimate()
	case 'p':
		s.TogglePause()
	}
}

// TogglePause flips the pause flag. Resuming restarts the clock so the paused
// interval is never simulated.
func (s *Sim) TogglePause() {
	s.Paused = !s.Paused
	if s.Paused {
		s.Log.Add("Simulation paused.", MsgInfo)
		return
	}
	s.lastTick = time.Time{}
	s.Log.Add("Simulation resumed.", MsgInfo)
}

// Resize records the new window size.
func (s *Sim) Resize(w, h int) {
	s.Width, s.Height = w, h
}

// Center returns the Sun's position: the middle of the window, on whole pixels.
func (s *Sim) Center() (x, y float64) {
	return float64(s.Width / 2), float64(s.Height / 2)
}

// Climate returns the Earth's current climate.
func (s *Sim) Climate() Climate {
	return Classify(s.System.OrbitRadius(), s.Layout.Orbit)
}

func (s *Sim) checkClimate() {
	state := s.Climate().State
	if state == s.climate {
		return
	}
	s.climate = state
	switch state {
	case StateBurning:
		s.Log.Add("The oceans are boiling. The Earth is burning.", MsgCritical)
	case StateFrozen:
		s.Log.Add("The oceans are freezing over.", MsgWarning)
	default:
		s.Log.Add("The Earth is back in the habitable zone.", MsgDiscovery)
	}
}

// HUDLines returns the readout shown in the top-left corner, top line first.
func (s *Sim) HUDLines() []string {
	p := s.System
	r := p.OrbitRadius()
	return []string{
		fmt.Sprintf("Distance from Sun: %.0f km", r*1000),
		fmt.Sprintf("Orbit Radius: %.0f", r),
		fmt.Sprintf("Earth Angle: %.1f", p.EarthAngle()),
		fmt.Sprintf("Moon Angle: %.1f", p.MoonAngle()),
		fmt.Sprintf("Orbital Speed: %.2f units/s", p.OrbitalSpeed()),
		fmt.Sprintf("Planet State: %s", s.Climate().State),
		"Sun's Gravitational Influence on the Earth:",
		fmt.Sprintf("%.2f m/s^2", Gravity(r, s.Layout.Gravity)),
		"[A]/[D] to move Earth | [P]ause",
	}
}
