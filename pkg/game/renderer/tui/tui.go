// Package tui provides the terminal frontend: a colored cell grid redrawn
// every tick, with keys read from stdin in raw mode.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"

	"gridsnake/pkg/engine/clock"
	"gridsnake/pkg/engine/input"
	"gridsnake/pkg/engine/terminal"
	"gridsnake/pkg/game/config"
	"gridsnake/pkg/game/gameplay"
	"gridsnake/pkg/game/renderer"
	"gridsnake/pkg/game/state"
)

// Cell glyphs. Each lattice cell is two columns wide so the grid looks square.
const (
	cellWidth  = 2
	glyphEmpty = " ."
	glyphHead  = "[]"
	glyphFood  = "<>"
)

// hudRows is the number of terminal rows used outside the grid
const hudRows = 7

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	cfg      config.Config
	out      io.Writer
	viewport renderer.Viewport
	tracker  *input.KeyTracker

	colorHead   color.Style
	colorFood   color.Style
	colorEmpty  color.Style
	colorSubtle color.Style
	colorText   color.Style
}

// New creates a new TUI renderer writing to stdout
func New(cfg config.Config) *TUIRenderer {
	return &TUIRenderer{
		cfg:      cfg,
		out:      os.Stdout,
		viewport: renderer.NewViewport(cfg.WorldField()),
		tracker:  input.NewKeyTracker(holdWindow(cfg.TickPeriod)),
	}
}

// holdWindow keeps a key held across at least two ticks of auto-repeat gap.
func holdWindow(period time.Duration) time.Duration {
	if w := 2 * period; w > input.DefaultHoldWindow {
		return w
	}
	return input.DefaultHoldWindow
}

// Name returns "tui"
func (t *TUIRenderer) Name() string {
	return config.RendererTUI
}

// Init initializes the colors and fits the grid to the terminal
func (t *TUIRenderer) Init() {
	t.colorHead = color.Style{color.FgCyan, color.BgCyan, color.OpBold}
	t.colorFood = color.Style{color.FgRed, color.BgRed}
	t.colorEmpty = color.Style{color.FgGray}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorText = color.Style{color.FgMagenta}

	width, height := terminal.GetSize()
	t.fit(width, height)
}

// fit shrinks the viewport to the terminal, keeping the field center in the middle.
func (t *TUIRenderer) fit(width, height int) {
	full := renderer.NewViewport(t.cfg.WorldField())
	cols, rows := full.Cols, full.Rows
	if maxCols := width / cellWidth; cols > maxCols {
		cols = maxCols - (maxCols+1)%2 // keep odd so the center cell stays centered
	}
	if maxRows := height - hudRows; rows > maxRows {
		rows = maxRows - (maxRows+1)%2
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols != full.Cols || rows != full.Rows {
		log.Printf("terminal %dx%d too small for the field, showing %dx%d of %dx%d cells",
			width, height, cols, rows, full.Cols, full.Rows)
	}
	t.viewport = renderer.Viewport{Field: full.Field, Cols: cols, Rows: rows}
}

// Run reads keys in raw mode and ticks d once per period until quit.
func (t *TUIRenderer) Run(ctx context.Context, d *gameplay.Driver) error {
	if !terminal.IsInteractive() {
		return errors.New("tui renderer needs an interactive terminal, try -renderer ebiten")
	}
	raw, err := input.OpenRawTerminal(t.tracker)
	if err != nil {
		return err
	}
	defer func() { t.shutdown(raw.Restore, d.Game.Tick) }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	quit := make(chan struct{}, 1)
	go raw.Listen(quit)
	go func() {
		select {
		case <-quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	fmt.Fprint(t.out, terminal.Clear+terminal.Home)
	err = clock.Run(ctx, t.cfg.TickPeriod, func() {
		d.Tick(t.tracker.Snapshot(time.Now()))
		fmt.Fprint(t.out, t.Frame(d.Game))
	})
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// shutdown restores the terminal before logging; raw mode writes no carriage return.
func (t *TUIRenderer) shutdown(restore func() error, ticks uint64) {
	if err := restore(); err != nil {
		log.Printf("restore terminal: %v", err)
	}
	fmt.Fprint(t.out, terminal.NewLine)
	log.Printf("terminal closed after %d ticks", ticks)
}

// Frame renders one full frame of g, starting from the cursor home position.
func (t *TUIRenderer) Frame(g *state.Game) string {
	v := t.viewport
	grid := make([][]string, v.Rows)
	for row := range grid {
		grid[row] = make([]string, v.Cols)
		for col := range grid[row] {
			grid[row][col] = t.colorEmpty.Sprint(glyphEmpty)
		}
	}
	for _, f := range g.Food {
		if col, row, ok := v.Cell(f.Position); ok {
			grid[row][col] = t.colorFood.Sprint(glyphFood)
		}
	}
	if col, row, ok := v.Cell(g.Head.Position); ok {
		grid[row][col] = t.colorHead.Sprint(glyphHead)
	}

	var b strings.Builder
	b.WriteString(terminal.Home)
	b.WriteString(t.colorText.Sprint(renderer.Title(t.cfg.Title)))
	b.WriteString(terminal.ClearLine + terminal.NewLine)
	for _, line := range grid {
		b.WriteString(strings.Join(line, ""))
		b.WriteString(terminal.ClearLine + terminal.NewLine)
	}
	for _, line := range renderer.StatusLines(g) {
		b.WriteString(line)
		b.WriteString(terminal.ClearLine + terminal.NewLine)
	}
	b.WriteString(t.colorSubtle.Sprint(renderer.HelpLine()))
	b.WriteString(terminal.ClearLine)
	return b.String()
}
