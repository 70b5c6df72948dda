package devtools

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"gridsnake/pkg/engine/world"
	"gridsnake/pkg/game/state"
)

// smallGame builds a 5x5-cell field (half-extent two cells) with the head at the origin.
func smallGame() *state.Game {
	field := world.Field{Width: 100, Height: 100, CellSize: 20}
	return state.NewGame(field, world.Position{}, 1)
}

func mapLines(t *testing.T, out string) []string {
	t.Helper()
	_, body, ok := strings.Cut(out, "=== MAP ===\n")
	if !ok {
		t.Fatalf("output has no map section:\n%s", out)
	}
	return strings.Split(strings.TrimRight(body, "\n"), "\n")
}

func TestDumpField_Layout(t *testing.T) {
	g := smallGame()
	g.Place(world.Position{X: 40, Y: 40})   // top-right
	g.Place(world.Position{X: -40, Y: -40}) // bottom-left
	g.Place(world.Position{X: -40, Y: -40})

	var buf bytes.Buffer
	if err := DumpField(&buf, g); err != nil {
		t.Fatalf("DumpField() error = %v", err)
	}
	want := []string{
		"....*",
		".....",
		"..@..",
		".....",
		"*....",
	}
	got := mapLines(t, buf.String())
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("map =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
	if !strings.Contains(buf.String(), "food: 3") {
		t.Errorf("metadata missing food count:\n%s", buf.String())
	}
}

func TestDumpField_HeadOutsideField(t *testing.T) {
	g := smallGame()
	g.Head.Position = world.Position{X: 0, Y: 200}
	var buf bytes.Buffer
	if err := DumpField(&buf, g); err != nil {
		t.Fatalf("DumpField() error = %v", err)
	}
	if strings.Contains(strings.Join(mapLines(t, buf.String()), ""), "@") {
		t.Error("head outside the field was drawn")
	}
	if !strings.Contains(buf.String(), "inside: false") {
		t.Errorf("metadata = %q, want inside: false", buf.String())
	}
}

func TestDumpFieldToFile(t *testing.T) {
	dir := t.TempDir()
	path, err := DumpFieldToFile(dir, smallGame())
	if err != nil {
		t.Fatalf("DumpFieldToFile() error = %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read dump: %v", err)
	}
	if !strings.HasPrefix(string(b), "=== FIELD ===") {
		t.Errorf("dump starts with %q, want field header", string(b[:20]))
	}
}

func TestWriteScreenshotHTML(t *testing.T) {
	g := smallGame()
	g.Place(world.Position{X: -40, Y: 40})
	g.AddMessage("a <b> message")

	var buf bytes.Buffer
	if err := WriteScreenshotHTML(&buf, g, "Snake!"); err != nil {
		t.Fatalf("WriteScreenshotHTML: %v", err)
	}
	out := buf.String()

	if got := strings.Count(out, `<div class="map-row">`); got != 5 {
		t.Errorf("map rows = %d, want 5", got)
	}
	if got := strings.Count(out, `class="head"`); got != 1 {
		t.Errorf("head spans = %d, want 1", got)
	}
	if got := strings.Count(out, `class="food"`); got != 1 {
		t.Errorf("food spans = %d, want 1", got)
	}
	if !strings.Contains(out, "a &lt;b&gt; message") {
		t.Error("message was not escaped")
	}
}

func TestSaveScreenshotHTML(t *testing.T) {
	dir := t.TempDir()
	path, err := SaveScreenshotHTML(dir, smallGame(), "Snake!")
	if err != nil {
		t.Fatalf("SaveScreenshotHTML: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(raw), "<!DOCTYPE html>") {
		t.Errorf("%s does not start with a doctype", path)
	}
}
