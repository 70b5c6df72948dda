// Package gameplay provides the per-tick game logic: heading arbitration,
// step accumulation and food spawning.
package gameplay

import (
	"gridsnake/pkg/game/entities"
)

// StepAccumulator turns the head's per-tick speed into whole-cell moves.
type StepAccumulator struct {
	Threshold int
	CellSize  float64
}

// Advance adds the head's speed to its accumulator and, once the threshold is
// reached, moves the head one cell along its heading. It reports whether the
// head moved. At most one cell is moved per call, so speed must not exceed
// the threshold.
func (s StepAccumulator) Advance(h *entities.Head) bool {
	h.Step += h.Speed
	if h.Step < s.Threshold {
		return false
	}
	dx, dy := h.Heading.Delta()
	h.Position = h.Position.Offset(dx, dy, s.CellSize)
	// keep the remainder; Step stays in [0, Threshold)
	h.Step -= s.Threshold
	return true
}
