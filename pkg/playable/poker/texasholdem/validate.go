package texasholdem

import (
	"casino-engine/pkg/playable"
	"casino-engine/pkg/playable/poker/action"
	"fmt"
)

// ValidateMove returns an error if the player cannot perform the action
// It does not check whose turn it is, that's left to the host
func (s *State) ValidateMove(playerID string, act action.Action, amount int) error {
	if !s.Phase.IsBettingRound() {
		return playable.ErrGameAlreadyFinished
	}

	p, ok := s.PlayerByID(playerID)
	if !ok {
		return playable.ErrPlayerNotFound
	}

	if !act.IsValid() {
		return playable.NewIllegalActionError(act, "unknown action")
	}

	if p.HasFolded {
		return playable.NewIllegalActionError(act, "player has folded")
	}

	if p.IsAllIn {
		return playable.NewIllegalActionError(act, "player is all-in")
	}

	if p.HasActed {
		return playable.NewIllegalActionError(act, "player has already acted this betting round")
	}

	// a raise without an amount is accepted and doesn't move any chips
	if act == action.Raise && amount != 0 {
		if amount <= s.CurrentBet {
			return playable.NewIllegalActionError(act, fmt.Sprintf("raise must be more than the current bet of %d", s.CurrentBet))
		}

		if amount > p.ChipCount+p.CurrentBet {
			return playable.NewIllegalActionError(act, fmt.Sprintf("raise cannot be more than %d", p.ChipCount+p.CurrentBet))
		}
	}

	return nil
}

// IsLegalMove returns true if the player can perform the action
func (s *State) IsLegalMove(playerID string, act action.Action, amount int) bool {
	return s.ValidateMove(playerID, act, amount) == nil
}
