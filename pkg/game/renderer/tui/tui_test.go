package tui

import (
	"bytes"
	"log"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"gridsnake/pkg/engine/input"
	"gridsnake/pkg/engine/terminal"
	"gridsnake/pkg/engine/world"
	"gridsnake/pkg/game/config"
	"gridsnake/pkg/game/state"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.Field = config.FieldConfig{Width: 100, Height: 100, CellSize: 20}
	return cfg
}

// gridLines returns the plain-text grid rows of a frame.
func gridLines(t *testing.T, frame string, rows int) []string {
	t.Helper()
	lines := strings.Split(ansi.ReplaceAllString(frame, ""), terminal.NewLine)
	if len(lines) < rows+1 {
		t.Fatalf("frame has %d lines, want at least %d", len(lines), rows+1)
	}
	return lines[1 : rows+1]
}

func TestFrame_DrawsHeadAndFood(t *testing.T) {
	r := New(smallConfig())
	r.Init()
	r.fit(80, 40)

	g := state.NewGame(smallConfig().WorldField(), world.Position{}, 1)
	g.Place(world.Position{X: -40, Y: 40})
	g.Place(world.Position{X: 0, Y: 0})

	got := gridLines(t, r.Frame(g), 5)
	want := []string{
		"<> . . . .",
		" . . . . .",
		" . .[] . .",
		" . . . . .",
		" . . . . .",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("grid =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
	if !strings.Contains(ansi.ReplaceAllString(r.Frame(g), ""), "Food 2") {
		t.Error("frame missing food count")
	}
}

func TestFit_CropsToTerminal(t *testing.T) {
	r := New(config.Default())
	r.fit(20, 12)
	if r.viewport.Cols != 9 || r.viewport.Rows != 5 {
		t.Errorf("viewport = %dx%d, want 9x5", r.viewport.Cols, r.viewport.Rows)
	}
	if r.viewport.Cols%2 != 1 || r.viewport.Rows%2 != 1 {
		t.Error("viewport dimensions must stay odd")
	}
	r.fit(200, 100)
	if r.viewport.Cols != 25 || r.viewport.Rows != 25 {
		t.Errorf("viewport = %dx%d, want the full 25x25", r.viewport.Cols, r.viewport.Rows)
	}
}

func TestHoldWindow(t *testing.T) {
	if got := holdWindow(100 * time.Millisecond); got != input.DefaultHoldWindow {
		t.Errorf("holdWindow(100ms) = %v, want %v", got, input.DefaultHoldWindow)
	}
	if got := holdWindow(time.Second); got != 2*time.Second {
		t.Errorf("holdWindow(1s) = %v, want 2s", got)
	}
}

func TestShutdown_RestoresBeforeLogging(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	var out bytes.Buffer
	r := New(smallConfig())
	r.out = &out

	restored := false
	r.shutdown(func() error {
		if logs.Len() != 0 {
			t.Errorf("logged %q while the terminal was still raw", logs.String())
		}
		restored = true
		return nil
	}, 42)

	if !restored {
		t.Fatal("terminal was not restored")
	}
	if !strings.Contains(logs.String(), "terminal closed after 42 ticks") {
		t.Errorf("log = %q, want the closing line", logs.String())
	}
	if out.String() != terminal.NewLine {
		t.Errorf("output = %q, want %q", out.String(), terminal.NewLine)
	}
}
