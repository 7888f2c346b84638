package palette

import (
	"image/color"
	"math"
)

// RGB is a color with float channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// Scene colors.
var (
	White = RGB{1.0, 1.0, 1.0}
	Red   = RGB{1.0, 0.0, 0.0}
	Blue  = RGB{0.0, 0.0, 1.0}
	Space = RGB{0.0, 0.0, 0.05} // frame clear color

	SunCore = RGB{1.0, 1.0, 0.0}
	SunRim  = RGB{1.0, 0.5, 0.0}
	SunGlow = RGB{1.0, 0.8, 0.0}

	Ocean         = RGB{0.0, 0.4, 1.0}
	BurningOcean  = RGB{1.0, 0.2, 0.2}
	ScorchedOcean = RGB{0.4, 0.0, 0.0}
	IceSheet      = White
	Land          = RGB{0.0, 0.8, 0.0}

	MoonGray  = RGB{0.5, 0.5, 0.5}
	MoonBurnt = Red
	MoonFrost = RGB{0.9, 0.9, 0.9}

	DimGray = RGB{0.33, 0.33, 0.33}
	Yellow  = RGB{1.0, 1.0, 0.33}
	Salmon  = RGB{1.0, 0.33, 0.33}
	Mint    = RGB{0.33, 1.0, 0.33}
	Cyan    = RGB{0.33, 1.0, 1.0}
)

// Lerp blends c1 toward c2 by t. t <= 0 yields c1 and t >= 1 yields c2 exactly.
func Lerp(c1, c2 RGB, t float64) RGB {
	if t <= 0 {
		return c1
	}
	if t >= 1 {
		return c2
	}
	return RGB{
		R: c1.R + (c2.R-c1.R)*t,
		G: c1.G + (c2.G-c1.G)*t,
		B: c1.B + (c2.B-c1.B)*t,
	}
}

// NRGBA converts to an 8-bit color with the given alpha in [0, 1].
func (c RGB) NRGBA(alpha float64) color.NRGBA {
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(alpha),
	}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
