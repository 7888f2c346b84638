package palette

import (
	"image/color"
	"testing"
)

func TestLerpEndpoints(t *testing.T) {
	pairs := []struct {
		name   string
		c1, c2 RGB
	}{
		{"burning ocean", BurningOcean, ScorchedOcean},
		{"ice sheet", Ocean, IceSheet},
		{"burnt moon", MoonGray, MoonBurnt},
		{"frosted moon", MoonGray, MoonFrost},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			if got := Lerp(p.c1, p.c2, 0); got != p.c1 {
				t.Errorf("Lerp(t=0) = %+v, want %+v", got, p.c1)
			}
			if got := Lerp(p.c1, p.c2, 1); got != p.c2 {
				t.Errorf("Lerp(t=1) = %+v, want %+v", got, p.c2)
			}
			if got := Lerp(p.c1, p.c2, 3.5); got != p.c2 {
				t.Errorf("Lerp(t=3.5) = %+v, want %+v", got, p.c2)
			}
			if got := Lerp(p.c1, p.c2, -1); got != p.c1 {
				t.Errorf("Lerp(t=-1) = %+v, want %+v", got, p.c1)
			}
		})
	}
}

func TestLerpMidpoint(t *testing.T) {
	got := Lerp(RGB{0, 0, 0}, RGB{1, 0.5, 0.25}, 0.5)
	want := RGB{0.5, 0.25, 0.125}
	if got != want {
		t.Fatalf("Lerp midpoint = %+v, want %+v", got, want)
	}
}

func TestNRGBA(t *testing.T) {
	tests := []struct {
		c     RGB
		alpha float64
		want  color.NRGBA
	}{
		{White, 1, color.NRGBA{255, 255, 255, 255}},
		{Ocean, 1, color.NRGBA{0, 102, 255, 255}},
		{SunGlow, 0.5, color.NRGBA{255, 204, 0, 128}},
		{RGB{-0.5, 2, 0.5}, 1, color.NRGBA{0, 255, 128, 255}},
	}

	for _, tt := range tests {
		if got := tt.c.NRGBA(tt.alpha); got != tt.want {
			t.Errorf("%+v.NRGBA(%v) = %v, want %v", tt.c, tt.alpha, got, tt.want)
		}
	}
}
