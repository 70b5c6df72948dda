package entities

import (
	"image/color"

	"gridsnake/pkg/engine/world"
)

// FoodColor is the fill color of every food.
var FoodColor = color.RGBA{255, 0, 0, 255}

// Food is a secondary entity. It has no identity beyond its position and is
// never removed; two foods may share a cell.
type Food struct {
	Position world.Position
	Color    color.RGBA
	Scale    float64 // edge length in world units
}

// NewFood creates a food visual at pos with a cell-sized square.
func NewFood(pos world.Position, cellSize float64) *Food {
	return &Food{
		Position: pos,
		Color:    FoodColor,
		Scale:    cellSize,
	}
}
