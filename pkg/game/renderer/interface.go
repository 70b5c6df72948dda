package renderer

import (
	"context"

	"gridsnake/pkg/game/gameplay"
)

// Renderer defines the interface for game frontends.
// A frontend owns the window or terminal, the fixed-rate tick source and the
// input query; the driver owns the game.
type Renderer interface {
	// Name returns the frontend name used in config and logs
	Name() string

	// Init prepares the window or terminal (title, size, colors)
	Init()

	// Run ticks d at the configured period until the player quits or ctx ends.
	// It returns nil on a normal quit.
	Run(ctx context.Context, d *gameplay.Driver) error
}
