package spectator

import (
	"strings"

	"github.com/Carmen-Shannon/oxy-spectator/common"
)

// Action is a bitmask of movement intents. A single Action value names one intent;
// combinations describe the set of intents currently held.
type Action uint8

const (
	ActionForward Action = 1 << iota
	ActionLeft
	ActionRight
	ActionBack
	ActionUp
	ActionDown
	ActionSprint
)

var actionNames = []struct {
	action Action
	name   string
}{
	{ActionForward, "FORWARD"},
	{ActionBack, "BACK"},
	{ActionLeft, "LEFT"},
	{ActionRight, "RIGHT"},
	{ActionUp, "UP"},
	{ActionDown, "DOWN"},
	{ActionSprint, "SPRINT"},
}

// Has reports whether every bit of other is set in a.
//
// Parameters:
//   - other: the action(s) to test for
//
// Returns:
//   - bool: true if all bits of other are set
func (a Action) Has(other Action) bool {
	return other != 0 && a&other == other
}

// String renders the action set as "FORWARD|SPRINT", or "NONE" for the empty set.
func (a Action) String() string {
	if a == 0 {
		return "NONE"
	}
	var parts []string
	for _, n := range actionNames {
		if a.Has(n.action) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseAction resolves an action name (FORWARD, BACK, LEFT, RIGHT, UP, DOWN, SPRINT),
// case-insensitively.
//
// Parameters:
//   - name: the action name
//
// Returns:
//   - Action: the parsed action
//   - bool: false if the name is unknown
func ParseAction(name string) (Action, bool) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for _, an := range actionNames {
		if an.name == n {
			return an.action, true
		}
	}
	return 0, false
}

// KeyMapping maps a raw key code to the single action it triggers.
// Several keys may map to the same action and unmapped keys are ignored.
type KeyMapping map[uint32]Action

// DefaultKeyMapping returns a fresh copy of the default scheme:
// W/S/A/D move, Space rises, C sinks and either Shift sprints.
//
// Returns:
//   - KeyMapping: the default key mapping
func DefaultKeyMapping() KeyMapping {
	return KeyMapping{
		common.KeyW:          ActionForward,
		common.KeyS:          ActionBack,
		common.KeyA:          ActionLeft,
		common.KeyD:          ActionRight,
		common.KeySpace:      ActionUp,
		common.KeyC:          ActionDown,
		common.KeyLeftShift:  ActionSprint,
		common.KeyRightShift: ActionSprint,
	}
}

// Clone returns an independent copy of the mapping.
func (km KeyMapping) Clone() KeyMapping {
	out := make(KeyMapping, len(km))
	for k, v := range km {
		out[k] = v
	}
	return out
}
