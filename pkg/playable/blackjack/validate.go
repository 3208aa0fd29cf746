package blackjack

import "casino-engine/pkg/playable"

// ValidateMove returns an error if the player cannot perform the action
// Like poker, turn order is not checked here
func (s *State) ValidateMove(playerID string, act Action) error {
	switch s.Phase {
	case PhasePlaying:
	case PhaseBetting, PhaseDealing:
		return playable.NewIllegalActionError(act, "cards have not been dealt")
	default:
		return playable.ErrGameAlreadyFinished
	}

	p, ok := s.PlayerByID(playerID)
	if !ok {
		return playable.ErrPlayerNotFound
	}

	if !act.IsValid() {
		return playable.NewIllegalActionError(act, "unknown action")
	}

	if p.HasActed {
		return playable.NewIllegalActionError(act, "player has already acted")
	}

	return nil
}

// IsLegalMove returns true if the player can perform the action
func (s *State) IsLegalMove(playerID string, act Action) bool {
	return s.ValidateMove(playerID, act) == nil
}
