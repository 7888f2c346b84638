package world

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Layout is the YAML-serializable definition of the Sun-Earth-Moon scene.
type Layout struct {
	Window  WindowDef  `yaml:"window"`
	Orbit   OrbitDef   `yaml:"orbit"`
	Moon    MoonDef    `yaml:"moon"`
	Bodies  BodiesDef  `yaml:"bodies"`
	Stars   StarsDef   `yaml:"stars"`
	Gravity GravityDef `yaml:"gravity"`
}

// WindowDef is the initial window and tick rate.
type WindowDef struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// OrbitDef bounds the Earth's orbit radius and sets the climate thresholds.
type OrbitDef struct {
	Min           float64 `yaml:"min"`
	Max           float64 `yaml:"max"`
	Start         float64 `yaml:"start"`
	Step          float64 `yaml:"step"`
	RedThreshold  float64 `yaml:"redThreshold"`
	BlueThreshold float64 `yaml:"blueThreshold"`
	OceanOverride float64 `yaml:"oceanOverride"` // 0 = off
	SpeedScale    float64 `yaml:"speedScale"`
}

// MoonDef describes the Moon's orbit around the Earth.
// DegPerFrame is the angular step at the nominal FrameRate.
type MoonDef struct {
	OrbitRadius float64 `yaml:"orbitRadius"`
	DegPerFrame float64 `yaml:"degPerFrame"`
	FrameRate   float64 `yaml:"frameRate"`
}

// BodiesDef holds drawn body sizes.
type BodiesDef struct {
	SunRadius   float64      `yaml:"sunRadius"`
	SunGlow     float64      `yaml:"sunGlow"`
	EarthRadius float64      `yaml:"earthRadius"`
	MoonRadius  float64      `yaml:"moonRadius"`
	LandRadius  float64      `yaml:"landRadius"`
	LandOffsets [][2]float64 `yaml:"landOffsets"`
}

// StarsDef configures the background star field.
type StarsDef struct {
	Count int     `yaml:"count"`
	Size  float64 `yaml:"size"`
}

// GravityDef configures the gravitational influence readout.
type GravityDef struct {
	Surface         float64 `yaml:"surface"`
	ReferenceRadius float64 `yaml:"referenceRadius"`
}

// DefaultLayout returns the built-in scene.
func DefaultLayout() *Layout {
	return &Layout{
		Window: WindowDef{Width: 1000, Height: 800, Title: "Orbits", TPS: 60},
		Orbit: OrbitDef{
			Min:           95,
			Max:           350,
			Start:         200,
			Step:          10,
			RedThreshold:  120,
			BlueThreshold: 280,
			OceanOverride: 115,
			SpeedScale:    150,
		},
		Moon: MoonDef{OrbitRadius: 40, DegPerFrame: 2.0, FrameRate: 60},
		Bodies: BodiesDef{
			SunRadius:   40,
			SunGlow:     15,
			EarthRadius: 20,
			MoonRadius:  8,
			LandRadius:  5,
			LandOffsets: [][2]float64{{-5, 5}, {6, 4}, {-3, -6}},
		},
		Stars:   StarsDef{Count: 100, Size: 2},
		Gravity: GravityDef{Surface: 9.8, ReferenceRadius: 200},
	}
}

// LoadLayout overlays each YAML document, in order, onto the default layout.
// Keys missing from a document keep their previous value.
func LoadLayout(docs ...[]byte) (*Layout, error) {
	layout := DefaultLayout()
	for i, data := range docs {
		if len(data) == 0 {
			continue
		}
		if err := yaml.Unmarshal(data, layout); err != nil {
			return nil, fmt.Errorf("parse scene layout %d: %w", i, err)
		}
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene layout: %w", err)
	}
	return layout, nil
}

// Validate reports layouts the simulation cannot run.
func (l *Layout) Validate() error {
	o := l.Orbit
	var errs []error
	if l.Window.Width <= 0 || l.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", l.Window.Width, l.Window.Height))
	}
	if l.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", l.Window.TPS))
	}
	if o.Min <= 0 {
		errs = append(errs, fmt.Errorf("orbit min %v must be positive", o.Min))
	}
	if !(o.Min < o.RedThreshold && o.RedThreshold < o.BlueThreshold && o.BlueThreshold < o.Max) {
		errs = append(errs, fmt.Errorf("orbit bounds must satisfy min < redThreshold < blueThreshold < max, got %v < %v < %v < %v",
			o.Min, o.RedThreshold, o.BlueThreshold, o.Max))
	}
	if o.Start < o.Min || o.Start > o.Max {
		errs = append(errs, fmt.Errorf("orbit start %v outside [%v, %v]", o.Start, o.Min, o.Max))
	}
	if o.Step <= 0 {
		errs = append(errs, fmt.Errorf("orbit step %v must be positive", o.Step))
	}
	if o.SpeedScale <= 0 {
		errs = append(errs, fmt.Errorf("orbit speedScale %v must be positive", o.SpeedScale))
	}
	if l.Moon.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("moon frameRate %v must be positive", l.Moon.FrameRate))
	}
	if l.Stars.Count < 0 {
		errs = append(errs, fmt.Errorf("star count %d must not be negative", l.Stars.Count))
	}
	if l.Gravity.ReferenceRadius <= 0 {
		errs = append(errs, fmt.Errorf("gravity referenceRadius %v must be positive", l.Gravity.ReferenceRadius))
	}
	return errors.Join(errs...)
}
