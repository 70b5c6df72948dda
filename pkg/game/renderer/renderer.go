// Package renderer holds what every frontend shares: the renderer interface,
// translated HUD text and the field-to-screen projection.
package renderer

import (
	"log"
	"math"
	"strings"

	"github.com/leonelquinteros/gotext"

	engineinput "gridsnake/pkg/engine/input"
	"gridsnake/pkg/engine/world"
	"gridsnake/pkg/game/state"
)

// Version is shown in the window title and the terminal header.
// Release builds set it with -ldflags "-X gridsnake/pkg/game/renderer.Version=...".
var Version = "dev"

// Title returns the configured title followed by the version.
func Title(title string) string {
	return title + " " + Version
}

// InitLocale loads translations from dir/<lang>/default.po.
// Untranslated strings fall back to the English msgid.
func InitLocale(dir, lang string) {
	gotext.Configure(dir, lang, "default")
	log.Printf("locale %s (translations from %s)", lang, dir)
}

// StatusLines returns the HUD lines for g.
func StatusLines(g *state.Game) []string {
	h := g.Head
	return []string{
		gotext.Get("Tick %d", g.Tick),
		gotext.Get("Head (%g, %g) heading %s", h.Position.X, h.Position.Y, headingLabel(h.Heading)),
		gotext.Get("Step %d", h.Step),
		gotext.Get("Food %d", len(g.Food)),
	}
}

// headingLabel returns the translated name of h.
func headingLabel(h world.Heading) string {
	switch h {
	case world.Up:
		return gotext.Get("Up")
	case world.Down:
		return gotext.Get("Down")
	case world.Left:
		return gotext.Get("Left")
	case world.Right:
		return gotext.Get("Right")
	}
	return h.String()
}

// HelpLine describes the movement and quit keys with the current bindings.
func HelpLine() string {
	keys := func(a engineinput.Action) string {
		return strings.Join(engineinput.CodesFor(a), "/")
	}
	return gotext.Get("Move: %s %s %s %s  Quit: %s",
		keys(engineinput.ActionMoveUp), keys(engineinput.ActionMoveLeft),
		keys(engineinput.ActionMoveDown), keys(engineinput.ActionMoveRight),
		keys(engineinput.ActionQuit))
}

// Viewport projects world positions onto a grid of screen cells. The field
// center maps to the middle cell and +Y is up.
type Viewport struct {
	Field world.Field
	Cols  int
	Rows  int
}

// NewViewport sizes a viewport to show the whole field.
func NewViewport(field world.Field) Viewport {
	return Viewport{
		Field: field,
		Cols:  2*field.Horizontal().Cells() + 1,
		Rows:  2*field.Vertical().Cells() + 1,
	}
}

// Cell returns the screen column and row of p, and false if p is off screen.
func (v Viewport) Cell(p world.Position) (col, row int, ok bool) {
	col = int(math.Round(p.X/v.Field.CellSize)) + v.Cols/2
	row = v.Rows/2 - int(math.Round(p.Y/v.Field.CellSize))
	if col < 0 || col >= v.Cols || row < 0 || row >= v.Rows {
		return col, row, false
	}
	return col, row, true
}
