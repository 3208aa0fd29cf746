package texasholdem

import (
	"casino-engine/pkg/playable"
	"casino-engine/pkg/playable/poker/action"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_ValidateMove(t *testing.T) {
	a := assert.New(t)
	e := newTestEngine()

	s, err := e.NewHand(setupSeats(1000, 1000, 100), DefaultOptions())
	a.NoError(err)

	a.True(s.IsLegalMove("p1", action.Fold, 0))
	a.True(s.IsLegalMove("p1", action.Call, 0))
	a.True(s.IsLegalMove("p1", action.Raise, 0))
	a.True(s.IsLegalMove("p1", action.Raise, 11))
	a.True(s.IsLegalMove("p1", action.Raise, 1000))
	a.False(s.IsLegalMove("p1", action.Raise, 10))
	a.False(s.IsLegalMove("p1", action.Raise, -5))
	a.False(s.IsLegalMove("p1", action.Raise, 1001))
	a.False(s.IsLegalMove("p1", action.Action("bet"), 0))
	a.False(s.IsLegalMove("p4", action.Call, 0))

	// chips plus the current bet
	a.True(s.IsLegalMove("p3", action.Raise, 100))
	a.False(s.IsLegalMove("p3", action.Raise, 101))

	a.Equal(playable.ErrPlayerNotFound, s.ValidateMove("p4", action.Call, 0))

	s = assertApply(t, e, s, "p1", action.Fold, 0)
	err = s.ValidateMove("p1", action.Call, 0)
	var illegal *playable.IllegalActionError
	a.True(errors.As(err, &illegal))
	a.Equal("player has folded", illegal.Reason)

	s = assertApply(t, e, s, "p2", action.Call, 0)
	err = s.ValidateMove("p2", action.Fold, 0)
	a.True(errors.As(err, &illegal))
	a.Equal("player has already acted this betting round", illegal.Reason)

	s.Phase = PhaseFinished
	a.Equal(playable.ErrGameAlreadyFinished, s.ValidateMove("p3", action.Call, 0))
	a.False(s.IsLegalMove("p3", action.Call, 0))
}

func TestState_ValidateMove_allIn(t *testing.T) {
	a := assert.New(t)
	e, s := setupStackedHand(t, "2c,3d,14c,7h,8s,14d,14h,14s,10c,11d,4h", DefaultOptions(), 1000, 1000, 20)

	s = assertApply(t, e, s, "p1", action.Raise, 100)
	s = assertApply(t, e, s, "p2", action.Call, 0)
	s = assertApply(t, e, s, "p3", action.Call, 0)
	a.True(s.Players[2].IsAllIn)
	a.Equal(PhaseFlop, s.Phase)

	var illegal *playable.IllegalActionError
	for _, act := range []action.Action{action.Fold, action.Call, action.Raise} {
		err := s.ValidateMove("p3", act, 0)
		a.True(errors.As(err, &illegal), "%s", act)
		a.Equal("player is all-in", illegal.Reason)
	}

	a.True(s.IsLegalMove("p1", action.Call, 0))
	a.True(s.IsLegalMove("p2", action.Fold, 0))
}
