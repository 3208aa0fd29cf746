package texasholdem

import (
	"casino-engine/internal/rng"
	"casino-engine/pkg/deck"
	"casino-engine/pkg/playable"
	"casino-engine/pkg/playable/poker/action"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(logrus.StandardLogger(), rng.Seeded(1))
}

// setupSeats returns seats for players p1, p2, ... with the chip counts given
func setupSeats(chips ...int) []playable.Seat {
	seats := make([]playable.Seat, len(chips))
	for i, c := range chips {
		seats[i] = playable.Seat{
			PlayerID: fmt.Sprintf("p%d", i+1),
			Chips:    c,
		}
	}

	return seats
}

// setupStackedHand deals from the cards in the order given
// hole cards go one per player per pass, followed by the board
func setupStackedHand(t *testing.T, cards string, opts Options, chips ...int) (*Engine, *State) {
	t.Helper()

	e := newTestEngine()
	s, err := e.newHand(setupSeats(chips...), opts, deck.FromCards(deck.CardsFromString(cards)))
	require.NoError(t, err)

	return e, s
}

func assertApply(t *testing.T, e *Engine, s *State, playerID string, act action.Action, amount int) *State {
	t.Helper()

	next, err := e.Apply(s, playerID, act, amount)
	require.NoError(t, err, "%s %s %d", playerID, act, amount)
	require.NotNil(t, next)

	return next
}

func assertChips(t *testing.T, s *State, chips ...int) {
	t.Helper()

	for i, c := range chips {
		assert.Equal(t, c, s.Players[i].ChipCount, "chips of %s", s.Players[i].PlayerID)
	}
}

// callAround has every player still in call until the phase changes
func callAround(t *testing.T, e *Engine, s *State) *State {
	t.Helper()

	phase := s.Phase
	for _, p := range s.ActivePlayers() {
		if s.Phase != phase {
			break
		}

		if p.IsAllIn {
			continue
		}

		s = assertApply(t, e, s, p.PlayerID, action.Call, 0)
	}

	require.NotEqual(t, phase, s.Phase, "expected the betting round to be over")
	return s
}
