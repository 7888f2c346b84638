package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/orbits-viz/orbits/assets"
	"github.com/orbits-viz/orbits/internal/game"
	"github.com/orbits-viz/orbits/internal/palette"
	"github.com/orbits-viz/orbits/internal/render"
	"github.com/orbits-viz/orbits/internal/world"
	"github.com/quasilyte/gdata/v2"
)

const appName = "orbits"

var (
	configFlag   = flag.String("config", "", "YAML scene layout overlaid on the built-in one")
	seedFlag     = flag.Uint64("seed", 0, "star field seed (0 = clock)")
	rememberFlag = flag.Bool("remember", false, "restore the last orbit on start and save it on exit")
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All simulation state lives in sim.
type Game struct {
	painter *render.Painter
	sim     *game.Sim
	chars   []rune
}

func NewGame(layout *world.Layout, seed uint64) *Game {
	return &Game{
		painter: render.NewPainter(),
		sim:     game.NewSim(layout, seed),
	}
}

func (g *Game) Update() error {
	// Typed characters, so only lowercase a/d/p match.
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		g.sim.HandleChar(r)
	}

	g.sim.Tick(time.Now())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	render.DrawScene(screen, g.painter, g.sim)

	tps := fmt.Sprintf("TPS: %.0f", ebiten.ActualTPS())
	x := float64(g.sim.Width) - g.painter.TextWidth(tps) - 10
	g.painter.Text(screen, x, 20, tps, palette.DimGray)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.sim.Width, g.sim.Height
	}
	g.sim.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// loadLayout reads the embedded scene and overlays the optional config file.
func loadLayout(path string) (*world.Layout, error) {
	docs := [][]byte{assets.Scene}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		docs = append(docs, data)
	}
	return world.LoadLayout(docs...)
}

// openSessionStore returns a gdata-backed store when remembering is on, and a
// memory-only store otherwise or when storage is unavailable.
func openSessionStore(remember bool) *game.SessionStore {
	if !remember {
		return game.NewSessionStore(nil)
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Session] Warning: storage unavailable: %v (session will not be remembered)", err)
		return game.NewSessionStore(nil)
	}
	return game.NewSessionStore(manager)
}

func main() {
	flag.Parse()

	layout, err := loadLayout(*configFlag)
	if err != nil {
		log.Fatalf("load layout: %v", err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := NewGame(layout, seed)

	store := openSessionStore(*rememberFlag)
	if state, ok, err := store.Load(); err != nil {
		log.Printf("[Session] Warning: %v (starting fresh)", err)
	} else if ok {
		g.sim.Restore(state)
	}

	ebiten.SetWindowSize(layout.Window.Width, layout.Window.Height)
	ebiten.SetWindowTitle(layout.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(layout.Window.TPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}

	if err := store.Save(g.sim.Snapshot()); err != nil {
		log.Printf("[Session] Warning: %v", err)
	}
}
