package handeval

import (
	"casino-engine/pkg/deck"

	"github.com/paulhankin/poker"
)

var librarySuits = map[deck.Suit]poker.Suit{
	deck.Clubs:    poker.Club,
	deck.Diamonds: poker.Diamond,
	deck.Hearts:   poker.Heart,
	deck.Spades:   poker.Spade,
}

// Describe returns a human readable description of the best hand, i.e., "ace-high straight"
// It falls back to the category name when the cards can't be described.
// A royal flush is always described by its category
func Describe(cards []*deck.Card) string {
	rank, err := RankPokerHand(cards)
	if err != nil {
		return ""
	}

	if rank.Category == RoyalFlush {
		return rank.Description
	}

	converted := make([]poker.Card, len(cards))
	for i, card := range cards {
		// the library ranks aces as 1
		c, err := poker.MakeCard(librarySuits[card.Suit], poker.Rank(card.AceLowRank()))
		if err != nil {
			return rank.Description
		}

		converted[i] = c
	}

	desc, err := poker.Describe(converted)
	if err != nil || desc == "" {
		return rank.Description
	}

	return desc
}
