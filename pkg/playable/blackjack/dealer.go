package blackjack

import (
	"casino-engine/pkg/deck"
	"casino-engine/pkg/handeval"
	"casino-engine/pkg/playable"
)

// playDealer reveals the hole card, draws to 17 (hitting soft 17) and settles every hand
func (s *State) playDealer() error {
	s.Phase = PhaseDealerTurn
	s.DealerVisibleCards = s.DealerCards.Clone()
	s.log(playable.CardsLogMessage("", s.DealerCards, "dealer reveals %s", s.DealerCards))

	for {
		value, soft := handeval.BlackjackValue(s.DealerCards)
		if value > 17 || (value == 17 && !soft) {
			break
		}

		card, err := s.Deck.Draw()
		if err != nil {
			return err
		}

		s.DealerCards.AddCard(card)
		s.DealerVisibleCards.AddCard(card)
		s.log(playable.CardsLogMessage("", deck.Hand{card}, "dealer draws %s", card))
	}

	s.settle()
	s.Phase = PhaseFinished
	return nil
}

// settle compares every hand that didn't bust against the dealer
func (s *State) settle() {
	dealerValue, _ := handeval.BlackjackValue(s.DealerCards)
	dealerBlackjack := len(s.DealerCards) == 2 && dealerValue == 21
	dealerBust := dealerValue > 21

	for _, p := range s.Players {
		for _, h := range p.Hands {
			if h.Status == StatusBust {
				h.Outcome = OutcomeBust
				continue
			}

			switch {
			case h.IsBlackjack() && !dealerBlackjack:
				h.Status = StatusBlackjack
				h.Outcome = OutcomeBlackjack
			case dealerBust || h.Value > dealerValue:
				h.Status = StatusFinished
				h.Outcome = OutcomeWin
			case h.Value == dealerValue:
				h.Status = StatusFinished
				h.Outcome = OutcomePush
			default:
				h.Status = StatusFinished
				h.Outcome = OutcomeLoss
			}

			s.log(playable.SimpleLogMessage(p.PlayerID, "%s with %d against %d", h.Outcome, h.Value, dealerValue))
		}
	}
}

// Payout returns what the hand wins (or loses when negative) against its bet
// Blackjack pays 3:2, rounded down
func (h *Hand) Payout() int {
	switch h.Outcome {
	case OutcomeBlackjack:
		return h.Bet * 3 / 2
	case OutcomeWin:
		return h.Bet
	case OutcomeLoss, OutcomeBust:
		return -h.Bet
	}

	return 0
}

type gameLog struct {
	Players     []*Player `json:"players"`
	DealerCards deck.Hand `json:"dealerCards"`
}

// GameOverDetails returns the result of every player's hands once the round is settled
// The second return value is false while the round is still in progress
func (s *State) GameOverDetails() (*playable.GameOverDetails, bool) {
	if !s.IsFinished() {
		return nil, false
	}

	adjustments := make(map[string]int, len(s.Players))
	for _, p := range s.Players {
		total := 0
		for _, h := range p.Hands {
			total += h.Payout()
		}

		adjustments[p.PlayerID] = total
	}

	return &playable.GameOverDetails{
		BalanceAdjustments: adjustments,
		Log: &gameLog{
			Players:     s.Players,
			DealerCards: s.DealerCards,
		},
	}, true
}
