package action

import (
	"fmt"
)

// Action represents an action a poker player can take
type Action string

// action constants
const (
	Fold  Action = "fold"
	Call  Action = "call"
	Raise Action = "raise"
)

var allowedActions = map[Action]bool{
	Fold:  true,
	Call:  true,
	Raise: true,
}

// FromString returns an action for the given string
func FromString(s string) (Action, error) {
	if _, ok := allowedActions[Action(s)]; ok {
		return Action(s), nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (a Action) String() string {
	return string(a)
}

// IsValid returns true if the action is permitted
func (a Action) IsValid() bool {
	_, ok := allowedActions[a]
	return ok
}

// LogMessage returns a message formatted for the log
// amount is what the player moved into the pot
func (a Action) LogMessage(amount int) string {
	switch a {
	case Fold:
		return "folded"
	case Call:
		return fmt.Sprintf("called %d", amount)
	case Raise:
		return fmt.Sprintf("raised by %d", amount)
	}

	return ""
}
