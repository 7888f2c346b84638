package game

import (
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/orbits-viz/orbits/internal/world"
)

func newTestSim(t *testing.T) *Sim {
	t.Helper()
	return NewSim(world.DefaultLayout(), 1)
}

func TestTickUsesWallClock(t *testing.T) {
	s := newTestSim(t)
	t0 := time.Unix(1_700_000_000, 0)

	s.Tick(t0) // first tick only starts the clock
	if s.System.EarthAngle() != 0 || s.System.MoonAngle() != 0 {
		t.Fatalf("first tick moved the scene: (%v, %v)", s.System.EarthAngle(), s.System.MoonAngle())
	}

	s.Tick(t0.Add(500 * time.Millisecond))
	if got := s.System.MoonAngle(); math.Abs(got-60) > eps {
		t.Errorf("MoonAngle after 0.5s = %v, want 60", got)
	}
	wantEarth := math.Sqrt(1.0/200) * 150 * 0.5
	if got := s.System.EarthAngle(); math.Abs(got-wantEarth) > eps {
		t.Errorf("EarthAngle after 0.5s = %v, want %v", got, wantEarth)
	}
}

func TestPauseFreezesPhysics(t *testing.T) {
	s := newTestSim(t)
	t0 := time.Unix(1_700_000_000, 0)
	s.Tick(t0)
	s.Tick(t0.Add(100 * time.Millisecond))
	earth, moon := s.System.EarthAngle(), s.System.MoonAngle()

	s.HandleChar('p')
	if !s.Paused {
		t.Fatal("'p' did not pause")
	}
	for i := 1; i <= 10; i++ {
		s.Tick(t0.Add(time.Duration(i) * time.Minute))
	}
	if s.System.EarthAngle() != earth || s.System.MoonAngle() != moon {
		t.Fatalf("physics advanced while paused")
	}

	s.HandleChar('p')
	if s.Paused {
		t.Fatal("second 'p' did not resume")
	}
	// The paused hour is not replayed on resume.
	s.Tick(t0.Add(time.Hour))
	if s.System.EarthAngle() != earth || s.System.MoonAngle() != moon {
		t.Fatalf("resume replayed the paused interval")
	}
	s.Tick(t0.Add(time.Hour + 250*time.Millisecond))
	if got := s.System.MoonAngle(); math.Abs(got-(moon+30)) > eps {
		t.Errorf("MoonAngle after resume = %v, want %v", got, moon+30)
	}
}

func TestTogglePauseTwiceRestoresState(t *testing.T) {
	s := newTestSim(t)
	for _, start := range []bool{false, true} {
		s.Paused = start
		s.TogglePause()
		s.TogglePause()
		if s.Paused != start {
			t.Errorf("Paused = %v after two toggles from %v", s.Paused, start)
		}
	}
}

func TestHandleCharKeys(t *testing.T) {
	s := newTestSim(t)

	s.HandleChar('a')
	if got := s.System.OrbitRadius(); got != 190 {
		t.Errorf("after 'a' radius = %v, want 190", got)
	}
	s.HandleChar('d')
	s.HandleChar('d')
	if got := s.System.OrbitRadius(); got != 210 {
		t.Errorf("after 'd' 'd' radius = %v, want 210", got)
	}

	// Uppercase and other keys are ignored.
	for _, r := range "ADPxq 1\n" {
		s.HandleChar(r)
	}
	if got := s.System.OrbitRadius(); got != 210 {
		t.Errorf("ignored keys changed radius to %v", got)
	}
	if s.Paused {
		t.Error("ignored keys paused the simulation")
	}
}

func TestHandleCharClampsAtLimits(t *testing.T) {
	s := newTestSim(t)

	for i := 0; i < 40; i++ {
		s.HandleChar('a')
		if r := s.System.OrbitRadius(); r < 95 {
			t.Fatalf("radius %v below minimum", r)
		}
	}
	if r := s.System.OrbitRadius(); r != 95 {
		t.Errorf("radius = %v, want 95", r)
	}
	if !logContains(s.Log, "can't get any closer") {
		t.Error("no warning logged at the inner limit")
	}

	for i := 0; i < 40; i++ {
		s.HandleChar('d')
		if r := s.System.OrbitRadius(); r > 350 {
			t.Fatalf("radius %v above maximum", r)
		}
	}
	if r := s.System.OrbitRadius(); r != 350 {
		t.Errorf("radius = %v, want 350", r)
	}
	if !logContains(s.Log, "can't drift any farther") {
		t.Error("no warning logged at the outer limit")
	}
}

func TestClimateTransitionsAreLogged(t *testing.T) {
	s := newTestSim(t)

	for s.System.OrbitRadius() >= 120 {
		s.HandleChar('a')
	}
	last := s.Log.Recent(1)[0]
	if last.Priority != MsgCritical || !strings.Contains(last.Text, "burning") {
		t.Errorf("last message = %+v, want a critical burning notice", last)
	}

	for s.System.OrbitRadius() <= 280 {
		s.HandleChar('d')
	}
	if !logContains(s.Log, "habitable zone") {
		t.Error("return to the normal band was not logged")
	}
	if !logContains(s.Log, "freezing") {
		t.Error("entering the frozen band was not logged")
	}
}

func TestResizeMovesCenter(t *testing.T) {
	s := newTestSim(t)
	if x, y := s.Center(); x != 500 || y != 400 {
		t.Errorf("Center = (%v, %v), want (500, 400)", x, y)
	}
	s.Resize(801, 599)
	if x, y := s.Center(); x != 400 || y != 299 {
		t.Errorf("Center after resize = (%v, %v), want (400, 299)", x, y)
	}
}

func TestStarsAreFixedAndInBounds(t *testing.T) {
	a := NewSim(world.DefaultLayout(), 99)
	b := NewSim(world.DefaultLayout(), 99)

	if len(a.Stars) != 100 {
		t.Fatalf("star count = %d, want 100", len(a.Stars))
	}
	if !reflect.DeepEqual(a.Stars, b.Stars) {
		t.Error("same seed produced different star fields")
	}
	for _, st := range a.Stars {
		if st.X < 0 || st.X > 1000 || st.Y < 0 || st.Y > 800 {
			t.Errorf("star %+v outside the 1000x800 window", st)
		}
	}

	before := append([]Star(nil), a.Stars...)
	a.Resize(300, 200)
	a.Tick(time.Now())
	if !reflect.DeepEqual(a.Stars, before) {
		t.Error("star field changed after resize")
	}
}

func TestHUDLines(t *testing.T) {
	s := newTestSim(t)
	s.System.Update(0)

	want := []string{
		"Distance from Sun: 200000 km",
		"Orbit Radius: 200",
		"Earth Angle: 0.0",
		"Moon Angle: 0.0",
		"Orbital Speed: 10.61 units/s",
		"Planet State: Normal",
		"Sun's Gravitational Influence on the Earth:",
		"9.80 m/s^2",
		"[A]/[D] to move Earth | [P]ause",
	}
	if got := s.HUDLines(); !reflect.DeepEqual(got, want) {
		t.Errorf("HUDLines =\n%q\nwant\n%q", got, want)
	}

	s.System.SetOrbitRadius(95)
	lines := s.HUDLines()
	if lines[5] != "Planet State: Burning" {
		t.Errorf("state line = %q", lines[5])
	}
	if lines[7] != "20.63 m/s^2" {
		t.Errorf("gravity line = %q", lines[7])
	}
	if lines[0] != "Distance from Sun: 95000 km" {
		t.Errorf("distance line = %q", lines[0])
	}
}

func logContains(l *MessageLog, substr string) bool {
	for _, m := range l.Messages {
		if strings.Contains(m.Text, substr) {
			return true
		}
	}
	return false
}
