package gameplay

import (
	"gridsnake/pkg/engine/world"
)

// Placer creates a visual entity at a position.
type Placer interface {
	Place(pos world.Position)
}

// SpawnDriver places one food per tick at a freshly sampled lattice position.
// It performs no collision or duplicate checks and has no cap.
type SpawnDriver struct {
	sampler *world.Sampler
	placer  Placer
}

// NewSpawnDriver creates a spawner drawing from sampler and placing through placer.
func NewSpawnDriver(sampler *world.Sampler, placer Placer) *SpawnDriver {
	return &SpawnDriver{sampler: sampler, placer: placer}
}

// OnTick places one food and returns where it went.
func (s *SpawnDriver) OnTick() world.Position {
	pos := s.sampler.Position()
	s.placer.Place(pos)
	return pos
}
