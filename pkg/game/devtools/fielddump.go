// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"gridsnake/pkg/engine/world"
	"gridsnake/pkg/game/state"
)

const fieldDumpFilename = "field.txt"

// cellIndex converts a world coordinate to a column/row index from the
// field's top-left cell.
func cellIndex(v float64, l world.Lattice) int {
	return int(math.Round(v/l.CellSize)) + l.Cells()
}

// DumpField writes metadata, a legend and the lattice view of g to w.
// Rows run top (+Y) to bottom. '@' is the head, '*' a cell holding at least
// one food, '.' an empty cell. A head outside the field is listed but not drawn.
func DumpField(w io.Writer, g *state.Game) error {
	h := g.Head
	if _, err := fmt.Fprintf(w, "=== FIELD ===\ntick: %d\nhead: (%g, %g)\nheading: %s\nstep: %d\nfood: %d\ninside: %t\n\n",
		g.Tick, h.Position.X, h.Position.Y, h.Heading, h.Step, len(g.Food), g.Field.Contains(h.Position)); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "=== LEGEND ===\n@ head\n* food\n. empty\n\n=== MAP ===\n"); err != nil {
		return err
	}
	return writeMap(w, g)
}

// writeMap writes one line per lattice row, top (+Y) first.
func writeMap(w io.Writer, g *state.Game) error {
	h := g.Head
	hx, hy := g.Field.Horizontal(), g.Field.Vertical()
	cols := 2*hx.Cells() + 1
	rows := 2*hy.Cells() + 1

	food := make(map[[2]int]int)
	for _, f := range g.Food {
		food[[2]int{cellIndex(f.Position.X, hx), cellIndex(f.Position.Y, hy)}]++
	}

	headCol, headRow := cellIndex(h.Position.X, hx), cellIndex(h.Position.Y, hy)
	line := make([]byte, cols+1)
	for row := rows - 1; row >= 0; row-- {
		for col := 0; col < cols; col++ {
			switch {
			case col == headCol && row == headRow:
				line[col] = '@'
			case food[[2]int{col, row}] > 0:
				line[col] = '*'
			default:
				line[col] = '.'
			}
		}
		line[cols] = '\n'
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// DumpFieldToFile writes DumpField output to field.txt in dir and returns the path.
func DumpFieldToFile(dir string, g *state.Game) (string, error) {
	path := filepath.Join(dir, fieldDumpFilename)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := DumpField(f, g); err != nil {
		_ = f.Close()
		return "", err
	}
	return path, f.Close()
}
