package blackjack

import (
	"casino-engine/pkg/deck"
	"casino-engine/pkg/playable"

	"github.com/sirupsen/logrus"
)

// Apply performs the action on the player's current hand of a copy of state and returns the copy
// The state passed in is never modified, even when an error is returned
func (e *Engine) Apply(state *State, playerID string, act Action) (*State, error) {
	if err := state.ValidateMove(playerID, act); err != nil {
		return nil, err
	}

	s := state.Clone()
	p, _ := s.PlayerByID(playerID)
	hand := p.CurrentHand()
	if hand.Status != StatusPlaying {
		return nil, playable.NewIllegalActionError(act, "hand is not in play")
	}

	switch act {
	case Hit:
		if err := s.hit(hand); err != nil {
			return nil, err
		}
	case Stand:
		hand.Status = StatusStand
	case Double:
		p.TotalBet += hand.Bet
		hand.Bet *= 2
		if err := s.hit(hand); err != nil {
			return nil, err
		}

		if hand.Status == StatusPlaying {
			hand.Status = StatusStand
		}
	case Split:
		if !hand.CanSplit() {
			return nil, playable.NewIllegalActionError(act, "only a pair of the same rank can be split")
		}

		if err := s.split(p); err != nil {
			return nil, err
		}
	}

	s.log(playable.CardsLogMessage(p.PlayerID, hand.Cards, "%s on %d", act.LogMessage(), hand.Value))

	prevPhase := s.Phase
	if err := s.advance(p); err != nil {
		return nil, err
	}

	log := e.logger.WithFields(logrus.Fields{
		"playerID": playerID,
		"action":   act,
		"value":    hand.Value,
		"phase":    s.Phase,
	})
	if s.Phase != prevPhase {
		log.WithField("from", prevPhase).Debug("phase changed")
	} else {
		log.Debug("applied action")
	}

	return s, nil
}

func (s *State) hit(hand *Hand) error {
	card, err := s.Deck.Draw()
	if err != nil {
		return err
	}

	hand.addCard(card)
	return nil
}

// split moves the second card of the current hand into a new hand with the same bet
// and gives each of the two hands one more card
func (s *State) split(p *Player) error {
	hand := p.CurrentHand()
	second := hand.Cards.PopLast()

	newHand := &Hand{
		Cards:  make(deck.Hand, 0, 2),
		Bet:    hand.Bet,
		Status: StatusPlaying,
	}
	newHand.addCard(second)
	p.Hands = append(p.Hands, newHand)
	p.TotalBet += hand.Bet

	if err := s.hit(hand); err != nil {
		return err
	}

	return s.hit(newHand)
}

// advance moves play on after p has acted
func (s *State) advance(p *Player) error {
	if idx := p.nextPlayingHand(); idx >= 0 {
		p.CurrentHandIndex = idx
	} else {
		p.HasActed = true
	}

	next, ok := s.nextPlayer(s.CurrentPlayerIndex)
	if !ok {
		return s.playDealer()
	}

	s.CurrentPlayerIndex = next
	return nil
}

// nextPlayer returns the first player, starting at from and wrapping around, with a hand in play
func (s *State) nextPlayer(from int) (int, bool) {
	n := len(s.Players)
	for i := 0; i < n; i++ {
		idx := (from + i) % n
		if s.Players[idx].nextPlayingHand() >= 0 {
			return idx, true
		}
	}

	return 0, false
}
