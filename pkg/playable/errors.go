package playable

import (
	"errors"
	"fmt"
)

// ErrPlayerNotFound is returned when an action references a player who isn't seated
var ErrPlayerNotFound = errors.New("player not found")

// ErrGameAlreadyFinished is returned when an action is attempted on a finished game
var ErrGameAlreadyFinished = errors.New("game is already finished")

// ErrMissingPlayerID is returned when a seat has no player ID
var ErrMissingPlayerID = errors.New("player ID is required")

// IllegalActionError is returned when a move fails validation
type IllegalActionError struct {
	Action string
	Reason string
}

func (i *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action %s: %s", i.Action, i.Reason)
}

// NewIllegalActionError returns a new *IllegalActionError
func NewIllegalActionError(action fmt.Stringer, reason string) *IllegalActionError {
	return &IllegalActionError{
		Action: action.String(),
		Reason: reason,
	}
}

// PlayerCountError is an error on the number of players in the game
type PlayerCountError struct {
	Min int
	Max int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected between %d and %d players, got %d", p.Min, p.Max, p.Got)
}

// DuplicatePlayerError is returned when the same player is seated twice
type DuplicatePlayerError string

func (d DuplicatePlayerError) Error() string {
	return fmt.Sprintf("player %s is seated more than once", string(d))
}
