package blackjack

import "fmt"

// Action is an action a blackjack player can take on their current hand
type Action string

// action constants
const (
	Hit    Action = "hit"
	Stand  Action = "stand"
	Double Action = "double"
	Split  Action = "split"
)

var allowedActions = map[Action]bool{
	Hit:    true,
	Stand:  true,
	Double: true,
	Split:  true,
}

// ActionFromString returns an action for the given string
func ActionFromString(s string) (Action, error) {
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
func (a Action) LogMessage() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stood"
	case Double:
		return "doubled down"
	case Split:
		return "split"
	}

	return ""
}
