package state

import (
	"gridsnake/pkg/engine/world"
	"gridsnake/pkg/game/entities"
)

// Game represents the game state: the head, every food placed so far and
// the number of ticks run.
type Game struct {
	Head *entities.Head

	Food []*entities.Food

	Field world.Field

	Tick uint64

	Messages []string
}

// NewGame creates a game with the head at start.
func NewGame(field world.Field, start world.Position, speed int) *Game {
	return &Game{
		Head:     entities.NewHead(start, speed),
		Food:     make([]*entities.Food, 0),
		Field:    field,
		Messages: make([]string, 0),
	}
}

// Place creates one food at pos. It never checks for overlap with the head or
// other food, and nothing removes food once placed.
func (g *Game) Place(pos world.Position) {
	g.Food = append(g.Food, entities.NewFood(pos, g.Field.CellSize))
}

// FoodCount returns how many foods have been placed
func (g *Game) FoodCount() int {
	return len(g.Food)
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}
