// Package entities contains the game's entity types: the snake head that the
// player steers and the food placed on the field every tick.
package entities

import (
	"image/color"

	"gridsnake/pkg/engine/world"
)

// Head is the single moving entity. It is owned by the game state and
// mutated only by the per-tick movement sequence.
type Head struct {
	Position world.Position
	Heading  world.Heading
	Speed    int // added to Step every tick
	Step     int // accumulator, in [0, threshold) between ticks
}

// NewHead creates a head at pos heading Up with an empty accumulator.
func NewHead(pos world.Position, speed int) *Head {
	return &Head{
		Position: pos,
		Heading:  world.Up,
		Speed:    speed,
		Step:     0,
	}
}

// HeadColor is the head's fill color (0.25, 0.75, 0.75).
var HeadColor = color.RGBA{64, 191, 191, 255}
