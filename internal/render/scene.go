package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/orbits-viz/orbits/internal/game"
	"github.com/orbits-viz/orbits/internal/palette"
)

// HUD placement, in scene coordinates.
const (
	hudX          = 10
	hudTopMargin  = 20
	hudLineHeight = 20
	commsMax      = 4 // max visible messages
)

// DrawScene renders one frame: star field, Sun, guide rings, Earth, Moon,
// land masses, HUD and comms.
func DrawScene(screen *ebiten.Image, p *Painter, sim *game.Sim) {
	screen.Fill(palette.Space.NRGBA(1))
	p.Stars(screen, sim.Stars, sim.Layout.Stars.Size)

	drawSystem(screen, p, sim)
	drawHUD(screen, p, sim)
	drawComms(screen, p, sim.Log)
}

func drawSystem(screen *ebiten.Image, p *Painter, sim *game.Sim) {
	layout := sim.Layout
	sys := sim.System
	cx, cy := sim.Center()
	radius := sys.OrbitRadius()

	p.Sun(screen, cx, cy, layout.Bodies.SunRadius, layout.Bodies.SunGlow)
	p.Ring(screen, cx, cy, layout.Orbit.RedThreshold, palette.Red)
	p.Ring(screen, cx, cy, layout.Orbit.BlueThreshold, palette.Blue)

	ex, ey := sys.EarthPosition(cx, cy)
	p.Disc(screen, ex, ey, sys.EarthBody().Radius, game.OceanColor(radius, layout.Orbit))

	mx, my := sys.MoonPosition(cx, cy)
	p.Disc(screen, mx, my, sys.MoonBody().Radius, game.MoonColor(radius, layout.Orbit))

	if game.HasLand(radius, layout.Orbit) {
		for _, off := range layout.Bodies.LandOffsets {
			p.Disc(screen, ex+off[0], ey+off[1], layout.Bodies.LandRadius, palette.Land)
		}
	}
}

func drawHUD(screen *ebiten.Image, p *Painter, sim *game.Sim) {
	y := float64(sim.Height - hudTopMargin)
	for _, line := range sim.HUDLines() {
		p.Text(screen, hudX, y, line, palette.White)
		y -= hudLineHeight
	}
}

// drawComms lists the most recent messages upward from the bottom-left corner.
func drawComms(screen *ebiten.Image, p *Painter, log *game.MessageLog) {
	msgs := log.Recent(commsMax)
	y := float64(hudTopMargin)
	for i := len(msgs) - 1; i >= 0; i-- {
		p.Text(screen, hudX, y, msgs[i].Text, msgColor(msgs[i].Priority))
		y += hudLineHeight
	}
}

func msgColor(pr game.MsgPriority) palette.RGB {
	switch pr {
	case game.MsgCritical:
		return palette.Salmon
	case game.MsgWarning:
		return palette.Yellow
	case game.MsgDiscovery:
		return palette.Mint
	default:
		return palette.Cyan
	}
}
