// Package ebiten provides the Ebiten-based 2D graphical frontend.
// Ebiten is a 2D game library for Go: https://ebiten.org/
package ebiten

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"gridsnake/pkg/engine/clock"
	"gridsnake/pkg/game/config"
	"gridsnake/pkg/game/gameplay"
	"gridsnake/pkg/game/renderer"
)

// EbitenRenderer draws the field in a window and runs game ticks from Update.
type EbitenRenderer struct {
	cfg config.Config

	// Window dimensions, equal to the field size
	windowWidth  int
	windowHeight int

	ctx    context.Context
	driver *gameplay.Driver
	step   *clock.FixedStep

	// Directory F8 field dumps are written to
	dumpDir string

	windowOpenedLogged bool
}

// New creates a new Ebiten renderer for cfg
func New(cfg config.Config) *EbitenRenderer {
	return &EbitenRenderer{
		cfg:          cfg,
		windowWidth:  int(cfg.Field.Width),
		windowHeight: int(cfg.Field.Height),
		step:         clock.NewFixedStep(cfg.TickPeriod),
		dumpDir:      ".",
	}
}

// Name returns "ebiten"
func (e *EbitenRenderer) Name() string {
	return config.RendererEbiten
}

// Init sets up the window
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(renderer.Title(e.cfg.Title))
}

// Layout returns the game's logical screen size
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.windowWidth, e.windowHeight
}

// Run starts the Ebiten game loop. It blocks until the window closes, the
// quit key is held or ctx ends.
func (e *EbitenRenderer) Run(ctx context.Context, d *gameplay.Driver) error {
	e.ctx = ctx
	e.driver = d
	err := ebiten.RunGame(e)
	log.Printf("window closed after %d ticks", d.Game.Tick)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// frameTime is the wall time of one Update call.
func frameTime() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}
