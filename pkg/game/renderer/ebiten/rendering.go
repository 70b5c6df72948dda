package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gridsnake/pkg/engine/world"
	"gridsnake/pkg/game/entities"
	"gridsnake/pkg/game/renderer"
)

// Draw renders the field, every food, the head and the HUD (Ebiten interface).
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.driver == nil {
		return
	}
	g := e.driver.Game

	vector.StrokeRect(screen, 0, 0, float32(e.windowWidth), float32(e.windowHeight), 1, colorBorder, false)

	// Food first so the head stays visible on a shared cell
	for _, f := range g.Food {
		e.drawSquare(screen, f.Position, f.Scale, f.Color)
	}
	e.drawSquare(screen, g.Head.Position, g.Field.CellSize, entities.HeadColor)

	e.drawHUD(screen)
}

// drawSquare draws a square of edge scale centered on the world position p.
// World origin is the screen center and +Y is up.
func (e *EbitenRenderer) drawSquare(screen *ebiten.Image, p world.Position, scale float64, col color.Color) {
	x := float64(e.windowWidth)/2 + p.X - scale/2
	y := float64(e.windowHeight)/2 - p.Y - scale/2
	if x+scale < 0 || y+scale < 0 || x > float64(e.windowWidth) || y > float64(e.windowHeight) {
		return
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(scale), float32(scale), col, false)
}

// drawHUD draws the status lines top-left and recent messages bottom-left.
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image) {
	g := e.driver.Game
	lines := renderer.StatusLines(g)

	vector.DrawFilledRect(screen, 0, 0, float32(e.windowWidth), float32(len(lines)*hudLineHeight+hudMargin*2), colorPanel, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, hudMargin, hudMargin+i*hudLineHeight)
	}

	bottom := e.windowHeight - hudMargin - hudLineHeight
	ebitenutil.DebugPrintAt(screen, renderer.HelpLine(), hudMargin, bottom)
	for i := len(g.Messages) - 1; i >= 0; i-- {
		bottom -= hudLineHeight
		ebitenutil.DebugPrintAt(screen, g.Messages[i], hudMargin, bottom)
	}
}
