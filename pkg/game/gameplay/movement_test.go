package gameplay

import (
	"testing"

	"gridsnake/pkg/engine/world"
	"gridsnake/pkg/game/entities"
)

var referenceStepper = StepAccumulator{Threshold: 10, CellSize: 20}

func TestAdvance_TenthTickMovesUp(t *testing.T) {
	start := world.Position{X: 40, Y: 60}
	h := entities.NewHead(start, 1)

	for i := 1; i <= 9; i++ {
		if referenceStepper.Advance(h) {
			t.Fatalf("Advance #%d moved the head, want no move before the threshold", i)
		}
	}
	if h.Position != start {
		t.Errorf("after 9 advances Position = %+v, want %+v", h.Position, start)
	}
	if h.Step != 9 {
		t.Errorf("after 9 advances Step = %d, want 9", h.Step)
	}

	if !referenceStepper.Advance(h) {
		t.Fatal("Advance #10 did not move the head")
	}
	want := world.Position{X: 40, Y: 80}
	if h.Position != want {
		t.Errorf("after 10 advances Position = %+v, want %+v", h.Position, want)
	}
	if h.Step != 0 {
		t.Errorf("after 10 advances Step = %d, want 0", h.Step)
	}
}

func TestAdvance_FifteenTicks(t *testing.T) {
	h := entities.NewHead(world.Position{}, 1)
	moves := 0
	for i := 0; i < 15; i++ {
		if referenceStepper.Advance(h) {
			moves++
		}
	}
	if moves != 1 {
		t.Errorf("moves after 15 ticks = %d, want 1", moves)
	}
	if h.Step != 5 {
		t.Errorf("Step after 15 ticks = %d, want 5", h.Step)
	}
	if h.Position != (world.Position{X: 0, Y: 20}) {
		t.Errorf("Position after 15 ticks = %+v, want {0 20}", h.Position)
	}
}

func TestAdvance_EachHeading(t *testing.T) {
	cases := []struct {
		heading world.Heading
		want    world.Position
	}{
		{world.Up, world.Position{X: 0, Y: 20}},
		{world.Down, world.Position{X: 0, Y: -20}},
		{world.Left, world.Position{X: -20, Y: 0}},
		{world.Right, world.Position{X: 20, Y: 0}},
	}
	for _, c := range cases {
		t.Run(c.heading.String(), func(t *testing.T) {
			h := entities.NewHead(world.Position{}, 1)
			h.Heading = c.heading
			h.Step = 9
			referenceStepper.Advance(h)
			if h.Position != c.want {
				t.Errorf("Position = %+v, want %+v", h.Position, c.want)
			}
		})
	}
}

func TestAdvance_KeepsRemainder(t *testing.T) {
	// speed 3 against threshold 10: moves on ticks 4, 7, 10 and leaves remainders 2, 1, 0
	h := entities.NewHead(world.Position{}, 3)
	var moveTicks []int
	for i := 1; i <= 10; i++ {
		if referenceStepper.Advance(h) {
			moveTicks = append(moveTicks, i)
		}
		if h.Step < 0 || h.Step >= referenceStepper.Threshold {
			t.Fatalf("tick %d: Step = %d, want in [0, 10)", i, h.Step)
		}
	}
	want := []int{4, 7, 10}
	if len(moveTicks) != len(want) {
		t.Fatalf("move ticks = %v, want %v", moveTicks, want)
	}
	for i := range want {
		if moveTicks[i] != want[i] {
			t.Errorf("move ticks = %v, want %v", moveTicks, want)
			break
		}
	}
	if h.Step != 0 {
		t.Errorf("Step = %d, want 0", h.Step)
	}
}

func TestAdvance_StaysAligned(t *testing.T) {
	h := entities.NewHead(world.Position{X: -240, Y: 100}, 1)
	headings := world.AllHeadings()
	for i := 0; i < 500; i++ {
		h.Heading = headings[(i/37)%len(headings)]
		referenceStepper.Advance(h)
		if !h.Position.Aligned(20) {
			t.Fatalf("tick %d: Position = %+v, want lattice aligned", i, h.Position)
		}
	}
}
