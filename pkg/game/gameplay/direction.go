package gameplay

import (
	engineinput "gridsnake/pkg/engine/input"
	"gridsnake/pkg/engine/world"
)

// headingAction pairs a heading with the action whose keys select it.
type headingAction struct {
	heading world.Heading
	action  engineinput.Action
}

// arbitrationOrder is the order candidates are tried in. Held Left+Right
// resolves to Left and held Up+Down resolves to Up because of this order.
var arbitrationOrder = []headingAction{
	{world.Left, engineinput.ActionMoveLeft},
	{world.Right, engineinput.ActionMoveRight},
	{world.Up, engineinput.ActionMoveUp},
	{world.Down, engineinput.ActionMoveDown},
}

// ResolveHeading returns the heading for the next tick. The first candidate
// whose keys are held and that does not reverse current wins; with no such
// candidate current is kept.
func ResolveHeading(held engineinput.Snapshot, current world.Heading) world.Heading {
	forbidden := current.Opposite()
	for _, c := range arbitrationOrder {
		if c.heading == forbidden {
			continue
		}
		if held.ActionHeld(c.action) {
			return c.heading
		}
	}
	return current
}
