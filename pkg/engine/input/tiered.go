package input

import (
	"sort"
	"strings"
	"sync"

	"github.com/zyedidia/generic/mapset"
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	// Meta / UI
	ActionQuit
	ActionDumpField // Write a text dump of the field (F8)
)

// AllActions lists every bindable action in menu order.
func AllActions() []Action {
	return []Action{ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight, ActionQuit, ActionDumpField}
}

// defaultBindings maps raw codes to actions. A raw code is the device-specific
// identifier a frontend reports (e.g. "a", "arrow_up", "gamepad_dpad_up").
// Multiple codes may point to the same Action.
var defaultBindings = map[string]Action{
	// Movement (arrows, WASD)
	"arrow_up":    ActionMoveUp,
	"w":           ActionMoveUp,
	"arrow_down":  ActionMoveDown,
	"s":           ActionMoveDown,
	"arrow_left":  ActionMoveLeft,
	"a":           ActionMoveLeft,
	"arrow_right": ActionMoveRight,
	"d":           ActionMoveRight,

	// Controller/gamepad specific bindings
	"gamepad_dpad_up":    ActionMoveUp,
	"gamepad_dpad_down":  ActionMoveDown,
	"gamepad_dpad_left":  ActionMoveLeft,
	"gamepad_dpad_right": ActionMoveRight,

	// Quit
	"q":         ActionQuit,
	"escape":    ActionQuit,
	"ctrl_c":    ActionQuit,
	"gamepad_b": ActionQuit,

	"f8": ActionDumpField,
}

var (
	bindingsMu sync.RWMutex
	bindings   = copyBindings(defaultBindings)
)

func copyBindings(src map[string]Action) map[string]Action {
	dst := make(map[string]Action, len(src))
	for code, act := range src {
		dst[code] = act
	}
	return dst
}

// ResetBindings restores the default binding table.
func ResetBindings() {
	bindingsMu.Lock()
	defer bindingsMu.Unlock()
	bindings = copyBindings(defaultBindings)
}

// MapToIntent returns the action bound to a raw code, or ActionNone.
func MapToIntent(code string) Action {
	bindingsMu.RLock()
	defer bindingsMu.RUnlock()
	if act, ok := bindings[code]; ok {
		return act
	}
	return ActionNone
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveUp:
		return "Move Up"
	case ActionMoveDown:
		return "Move Down"
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionQuit:
		return "Quit"
	case ActionDumpField:
		return "Dump Field"
	default:
		return "None"
	}
}

// ActionByName resolves a config key such as "move_left" or "Move Left".
func ActionByName(name string) (Action, bool) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
	for _, a := range AllActions() {
		if strings.ReplaceAll(strings.ToLower(ActionName(a)), " ", "_") == norm {
			return a, true
		}
	}
	return ActionNone, false
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	bindingsMu.RLock()
	defer bindingsMu.RUnlock()
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so the HUD and tests don't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// CodesFor returns the codes currently bound to action, sorted.
func CodesFor(action Action) []string {
	return GetBindingsByAction()[action]
}

// SetBindings replaces all codes bound to action with codes.
// The arrow keys stay bound to their movement actions and cannot be taken over.
func SetBindings(action Action, codes ...string) {
	bindingsMu.Lock()
	defer bindingsMu.Unlock()
	for c, a := range bindings {
		if isReserved(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	for _, code := range codes {
		if code != "" && !isReserved(code) {
			bindings[code] = action
		}
	}
}

func isReserved(code string) bool {
	return code == "arrow_up" || code == "arrow_down" || code == "arrow_left" || code == "arrow_right"
}

// Snapshot is the set of raw codes held at one instant. It is read-only once built.
type Snapshot struct {
	held mapset.Set[string]
}

// NewSnapshot builds a snapshot holding codes.
func NewSnapshot(codes ...string) Snapshot {
	held := mapset.New[string]()
	for _, c := range codes {
		held.Put(c)
	}
	return Snapshot{held: held}
}

// Held reports whether code is held.
func (s Snapshot) Held(code string) bool {
	return s.held.Has(code)
}

// ActionHeld reports whether any code bound to action is held.
func (s Snapshot) ActionHeld(action Action) bool {
	held := false
	s.Each(func(code string) {
		if MapToIntent(code) == action {
			held = true
		}
	})
	return held
}

// Each calls fn for every held code.
func (s Snapshot) Each(fn func(code string)) {
	if s.held.Size() == 0 {
		return
	}
	s.held.Each(fn)
}

// Codes returns the held codes sorted.
func (s Snapshot) Codes() []string {
	codes := make([]string, 0, s.Len())
	s.Each(func(code string) {
		codes = append(codes, code)
	})
	sort.Strings(codes)
	return codes
}

// Len returns the number of held codes
func (s Snapshot) Len() int {
	return s.held.Size()
}
