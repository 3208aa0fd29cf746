package texasholdem

import (
	"casino-engine/internal/rng"
	"casino-engine/pkg/playable/poker/action"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type move struct {
	playerID string
	action   action.Action
	amount   int
}

func legalMoves(s *State, gen rng.Generator) []move {
	moves := make([]move, 0)
	for _, p := range s.Players {
		for _, act := range []action.Action{action.Fold, action.Call} {
			if s.IsLegalMove(p.PlayerID, act, 0) {
				moves = append(moves, move{p.PlayerID, act, 0})
			}
		}

		if limit := p.ChipCount + p.CurrentBet; limit > s.CurrentBet {
			amount := s.CurrentBet + 1 + gen.Intn(limit-s.CurrentBet)
			if s.IsLegalMove(p.PlayerID, action.Raise, amount) {
				moves = append(moves, move{p.PlayerID, action.Raise, amount})
			}
		}
	}

	return moves
}

func TestEngine_Apply_potConservation(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		gen := rng.Seeded(seed)
		e := NewEngine(logrus.StandardLogger(), gen)

		chips := []int{500, 1000, 250, 40, 1000}[:2+gen.Intn(4)]
		s, err := e.NewHand(setupSeats(chips...), DefaultOptions())
		require.NoError(t, err)

		for i := 0; !s.IsFinished(); i++ {
			require.Less(t, i, 500, "seed %d: hand did not finish", seed)

			moves := legalMoves(s, gen)
			require.NotEmpty(t, moves, "seed %d: no legal moves in phase %s", seed, s.Phase)

			m := moves[gen.Intn(len(moves))]
			s, err = e.Apply(s, m.playerID, m.action, m.amount)
			require.NoError(t, err)
		}

		start, end, moved, won := 0, 0, 0, 0
		for _, p := range s.Players {
			assert.GreaterOrEqual(t, p.ChipCount, 0)
			start += p.StartingChips
			end += p.ChipCount
			won += p.Winnings
			moved += p.StartingChips - p.ChipCount + p.Winnings
		}

		assert.Equal(t, moved, s.Pot, "seed %d: pot is what the players put in", seed)
		assert.LessOrEqual(t, won, s.Pot, "seed %d", seed)
		assert.Equal(t, start, end+s.Pot-won, "seed %d: chips were created or destroyed", seed)
	}
}
