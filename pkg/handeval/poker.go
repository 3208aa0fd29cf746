package handeval

import (
	"casino-engine/pkg/deck"
	"errors"
)

// ErrInvalidHandSize is returned when a poker hand is not between five and seven cards
var ErrInvalidHandSize = errors.New("a poker hand must have between 5 and 7 cards")

// PokerRank is the result of ranking a poker hand
type PokerRank struct {
	Category    Category `json:"category"`
	Description string   `json:"description"`
}

// RankPokerHand finds the best category any five of the cards can make.
// Only the category is reported, two hands of the same category are considered equal
func RankPokerHand(cards []*deck.Card) (PokerRank, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return PokerRank{}, ErrInvalidHandSize
	}

	c := category(cards)
	return PokerRank{
		Category:    c,
		Description: c.String(),
	}, nil
}

func category(cards []*deck.Card) Category {
	rankCounts := make(map[int]int)
	suitRanks := make(map[deck.Suit][]int)
	ranks := make([]int, 0, len(cards))

	for _, card := range cards {
		rankCounts[card.Rank]++
		suitRanks[card.Suit] = append(suitRanks[card.Suit], card.Rank)
		ranks = append(ranks, card.Rank)
	}

	var flush []int
	for _, suit := range deck.Suits {
		if len(suitRanks[suit]) >= 5 {
			flush = suitRanks[suit]
			break
		}
	}

	if flush != nil {
		switch high := straightHigh(flush); {
		case high == deck.Ace:
			return RoyalFlush
		case high > 0:
			return StraightFlush
		}
	}

	var quads, trips, pairs int
	for _, n := range rankCounts {
		switch {
		case n >= 4:
			quads++
		case n == 3:
			trips++
		case n == 2:
			pairs++
		}
	}

	switch {
	case quads > 0:
		return FourOfAKind
	case trips >= 2, trips == 1 && pairs >= 1:
		return FullHouse
	case flush != nil:
		return Flush
	case straightHigh(ranks) > 0:
		return Straight
	case trips == 1:
		return ThreeOfAKind
	case pairs >= 2:
		return TwoPair
	case pairs == 1:
		return OnePair
	}

	return HighCard
}

// straightHigh returns the high card of the best straight in ranks, or 0 if there isn't one
// An ace counts low for the wheel (A-2-3-4-5), which returns 5
func straightHigh(ranks []int) int {
	present := make(map[int]bool, len(ranks)+1)
	for _, r := range ranks {
		present[r] = true
		if r == deck.Ace {
			present[deck.LowAce] = true
		}
	}

	for high := deck.Ace; high >= 5; high-- {
		found := true
		for r := high; r > high-5; r-- {
			if !present[r] {
				found = false
				break
			}
		}

		if found {
			return high
		}
	}

	return 0
}
