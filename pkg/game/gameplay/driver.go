package gameplay

import (
	"log"

	engineinput "gridsnake/pkg/engine/input"
	"gridsnake/pkg/engine/world"
	"gridsnake/pkg/game/config"
	"gridsnake/pkg/game/state"
)

// TickRecord describes what one tick did.
type TickRecord struct {
	Tick    uint64         `json:"tick"`
	Held    []string       `json:"held,omitempty"`
	Heading string         `json:"heading"`
	Head    world.Position `json:"head"`
	Step    int            `json:"step"`
	Moved   bool           `json:"moved"`
	Food    world.Position `json:"food"`
}

// Observer receives every tick record. Returning an error detaches it.
type Observer func(TickRecord) error

// Driver runs the tick sequence against one game.
type Driver struct {
	Game *state.Game

	stepper   StepAccumulator
	spawner   *SpawnDriver
	observers []Observer
}

// NewDriver builds a game from cfg. The head's start position takes the
// first two draws from rng; every tick after that takes two more for food.
func NewDriver(cfg config.Config, rng world.RandSource) *Driver {
	field := cfg.WorldField()
	sampler := world.NewSampler(field, rng)
	g := state.NewGame(field, sampler.Position(), cfg.Movement.Speed)
	return &Driver{
		Game: g,
		stepper: StepAccumulator{
			Threshold: cfg.Movement.Threshold,
			CellSize:  field.CellSize,
		},
		spawner: NewSpawnDriver(sampler, g),
	}
}

// Observe registers an observer for subsequent ticks.
func (d *Driver) Observe(o Observer) {
	d.observers = append(d.observers, o)
}

// Tick runs one fixed tick: heading arbitration, step accumulation, then one
// spawn. Movement and spawning do not depend on each other.
func (d *Driver) Tick(held engineinput.Snapshot) TickRecord {
	g := d.Game
	g.Head.Heading = ResolveHeading(held, g.Head.Heading)
	moved := d.stepper.Advance(g.Head)
	food := d.spawner.OnTick()
	g.Tick++

	rec := TickRecord{
		Tick:    g.Tick,
		Held:    held.Codes(),
		Heading: g.Head.Heading.String(),
		Head:    g.Head.Position,
		Step:    g.Head.Step,
		Moved:   moved,
		Food:    food,
	}
	d.notify(rec)
	return rec
}

func (d *Driver) notify(rec TickRecord) {
	if len(d.observers) == 0 {
		return
	}
	kept := d.observers[:0]
	for _, o := range d.observers {
		if err := o(rec); err != nil {
			log.Printf("tick %d: observer detached: %v", rec.Tick, err)
			continue
		}
		kept = append(kept, o)
	}
	d.observers = kept
}
