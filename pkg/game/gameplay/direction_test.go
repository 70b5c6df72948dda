package gameplay

import (
	"testing"

	engineinput "gridsnake/pkg/engine/input"
	"gridsnake/pkg/engine/world"
)

// allKeySets returns every subset of one key per movement action.
func allKeySets() [][]string {
	keys := []string{"a", "d", "w", "s"}
	var sets [][]string
	for mask := 0; mask < 1<<len(keys); mask++ {
		var set []string
		for i, k := range keys {
			if mask&(1<<i) != 0 {
				set = append(set, k)
			}
		}
		sets = append(sets, set)
	}
	return sets
}

func TestResolveHeading_NeverReverses(t *testing.T) {
	engineinput.ResetBindings()
	for _, current := range world.AllHeadings() {
		for _, keys := range allKeySets() {
			got := ResolveHeading(engineinput.NewSnapshot(keys...), current)
			if got == current.Opposite() {
				t.Errorf("ResolveHeading(%v, %v) = %v, want anything but the opposite", keys, current, got)
			}
			if !got.IsValid() {
				t.Errorf("ResolveHeading(%v, %v) = %v, want a valid heading", keys, current, got)
			}
		}
	}
}

func TestResolveHeading_NoInputKeepsHeading(t *testing.T) {
	for _, current := range world.AllHeadings() {
		if got := ResolveHeading(engineinput.NewSnapshot(), current); got != current {
			t.Errorf("ResolveHeading({}, %v) = %v, want %v", current, got, current)
		}
		var zero engineinput.Snapshot
		if got := ResolveHeading(zero, current); got != current {
			t.Errorf("ResolveHeading(zero snapshot, %v) = %v, want %v", current, got, current)
		}
	}
}

func TestResolveHeading_Priority(t *testing.T) {
	engineinput.ResetBindings()
	cases := []struct {
		name    string
		keys    []string
		current world.Heading
		want    world.Heading
	}{
		{"left beats right", []string{"a", "d"}, world.Up, world.Left},
		{"up beats down", []string{"w", "s"}, world.Left, world.Up},
		{"horizontal beats vertical", []string{"w", "d"}, world.Up, world.Right},
		{"reverse ignored, next wins", []string{"d", "w"}, world.Left, world.Up},
		{"only reverse held", []string{"s"}, world.Up, world.Up},
		{"arrow keys bound", []string{"arrow_right"}, world.Down, world.Right},
		{"left and right while heading right", []string{"a", "d"}, world.Right, world.Right},
		{"all four heading down", []string{"a", "d", "w", "s"}, world.Down, world.Left},
		{"all four heading right", []string{"a", "d", "w", "s"}, world.Right, world.Right},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ResolveHeading(engineinput.NewSnapshot(c.keys...), c.current)
			if got != c.want {
				t.Errorf("ResolveHeading(%v, %v) = %v, want %v", c.keys, c.current, got, c.want)
			}
		})
	}
}

func TestResolveHeading_UnboundKeysIgnored(t *testing.T) {
	engineinput.ResetBindings()
	got := ResolveHeading(engineinput.NewSnapshot("x", "f8", "q"), world.Left)
	if got != world.Left {
		t.Errorf("ResolveHeading(unbound keys, Left) = %v, want Left", got)
	}
}

func TestResolveHeading_FollowsRebinding(t *testing.T) {
	engineinput.ResetBindings()
	defer engineinput.ResetBindings()

	engineinput.SetBindings(engineinput.ActionMoveLeft, "h")
	if got := ResolveHeading(engineinput.NewSnapshot("h"), world.Up); got != world.Left {
		t.Errorf("ResolveHeading({h}, Up) = %v, want Left", got)
	}
	if got := ResolveHeading(engineinput.NewSnapshot("a"), world.Up); got != world.Up {
		t.Errorf("ResolveHeading({a}, Up) after rebinding = %v, want Up", got)
	}
}
