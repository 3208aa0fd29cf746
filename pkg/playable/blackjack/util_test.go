package blackjack

import (
	"casino-engine/internal/rng"
	"casino-engine/pkg/deck"
	"casino-engine/pkg/playable"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(logrus.StandardLogger(), rng.Seeded(1))
}

// setupSeats returns seats for players p1, p2, ... with the bets given
func setupSeats(bets ...int) []playable.Seat {
	seats := make([]playable.Seat, len(bets))
	for i, b := range bets {
		seats[i] = playable.Seat{
			PlayerID: fmt.Sprintf("p%d", i+1),
			Chips:    1000,
			Bet:      b,
		}
	}

	return seats
}

// setupStackedRound deals from the cards in the order given:
// one card per player per pass, two dealer cards, then whatever gets drawn
func setupStackedRound(t *testing.T, cards string, bets ...int) (*Engine, *State) {
	t.Helper()

	e := newTestEngine()
	s, err := e.newRound(setupSeats(bets...), DefaultOptions(), deck.FromCards(deck.CardsFromString(cards)))
	require.NoError(t, err)

	return e, s
}

func assertApply(t *testing.T, e *Engine, s *State, playerID string, act Action) *State {
	t.Helper()

	next, err := e.Apply(s, playerID, act)
	require.NoError(t, err, "%s %s", playerID, act)
	require.NotNil(t, next)

	return next
}

func assertAdjustments(t *testing.T, s *State, adjustments map[string]int) {
	t.Helper()

	details, ok := s.GameOverDetails()
	require.True(t, ok)
	require.Equal(t, adjustments, details.BalanceAdjustments)
}
