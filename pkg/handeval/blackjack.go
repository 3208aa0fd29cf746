package handeval

import "casino-engine/pkg/deck"

// BlackjackValue returns the blackjack total of the cards
// Aces count as 11 until the total goes over 21, then they are demoted to 1 one at a time.
// isSoft is true if an ace is still being counted as 11
func BlackjackValue(cards []*deck.Card) (value int, isSoft bool) {
	highAces := 0
	for _, card := range cards {
		if card.Rank == deck.Ace {
			highAces++
		}

		value += card.BlackjackValue()
	}

	for value > 21 && highAces > 0 {
		value -= 10
		highAces--
	}

	return value, highAces > 0
}
