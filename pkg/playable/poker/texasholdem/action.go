package texasholdem

import (
	"casino-engine/pkg/playable"
	"casino-engine/pkg/playable/poker/action"

	"github.com/sirupsen/logrus"
)

// Apply performs the action on a copy of state and returns the copy
// The state passed in is never modified, even when an error is returned
func (e *Engine) Apply(state *State, playerID string, act action.Action, amount int) (*State, error) {
	if err := state.ValidateMove(playerID, act, amount); err != nil {
		return nil, err
	}

	s := state.Clone()
	p, _ := s.PlayerByID(playerID)

	moved := 0
	switch act {
	case action.Fold:
		p.HasFolded = true
	case action.Call:
		moved = p.bet(s.CurrentBet - p.CurrentBet)
	case action.Raise:
		if amount > s.CurrentBet {
			moved = p.bet(amount - p.CurrentBet)
			if p.CurrentBet > s.CurrentBet {
				s.CurrentBet = p.CurrentBet
				s.reopenBetting(p)
			}
		}
	}

	s.Pot += moved
	p.HasActed = true
	s.log(playable.SimpleLogMessage(p.PlayerID, "%s", act.LogMessage(moved)))

	prevPhase := s.Phase
	if err := s.advance(); err != nil {
		return nil, err
	}

	log := e.logger.WithFields(logrus.Fields{
		"playerID": playerID,
		"action":   act,
		"amount":   moved,
		"phase":    s.Phase,
	})
	if s.Phase != prevPhase {
		log.WithField("from", prevPhase).Debug("phase changed")
	} else {
		log.Debug("applied action")
	}

	return s, nil
}

// advance resolves what happens after an action
func (s *State) advance() error {
	active := s.ActivePlayers()
	if len(active) <= 1 {
		if len(active) == 1 {
			winner := active[0]
			winner.win(s.Pot)
			s.log(playable.SimpleLogMessage(winner.PlayerID, "won %d, everyone else folded", s.Pot))
		}

		s.Phase = PhaseFinished
		return nil
	}

	if s.isBettingRoundComplete(active) {
		return s.nextStreet()
	}

	s.CurrentPlayerIndex = s.nextActor(s.CurrentPlayerIndex)
	return nil
}

// reopenBetting gives everyone who can still bet a chance to respond to a raise
func (s *State) reopenBetting(raiser *Player) {
	for _, p := range s.Players {
		if p != raiser && p.canBet() {
			p.HasActed = false
		}
	}
}

// isBettingRoundComplete is true when everyone left has acted and matched the bet
// Players who are all-in can't do either, so they are always done
func (s *State) isBettingRoundComplete(active []*Player) bool {
	for _, p := range active {
		if !p.HasActed && !p.IsAllIn {
			return false
		}

		if p.CurrentBet != s.CurrentBet && p.ChipCount > 0 {
			return false
		}
	}

	return true
}

// nextStreet resets the betting round and deals the next community cards
// If fewer than two players can still bet, the board is run out to the showdown
func (s *State) nextStreet() error {
	for _, p := range s.Players {
		p.HasActed = false
		p.CurrentBet = 0
	}
	s.CurrentBet = 0

	next, nCards := s.Phase.next()
	if nCards > 0 {
		cards, remaining, err := s.Deck.Deal(nCards)
		if err != nil {
			return err
		}

		s.Deck = remaining
		s.CommunityCards = append(s.CommunityCards, cards...)
		s.log(playable.CardsLogMessage("", cards, "dealt the %s", next))
	}

	s.Phase = next
	if s.Phase == PhaseShowdown {
		return s.showdown()
	}

	s.CurrentPlayerIndex = s.nextActor(s.DealerPosition)
	if s.bettors() < 2 {
		return s.nextStreet()
	}

	return nil
}
