package texasholdem

import (
	"casino-engine/pkg/deck"
	"casino-engine/pkg/handeval"
	"casino-engine/pkg/playable"
)

// showdown ranks every hand still in and splits the pot between the best categories
// Kickers are not compared and the odd chips of a split are not paid out
func (s *State) showdown() error {
	var best handeval.Category
	winners := make([]*Player, 0, 1)

	for _, p := range s.ActivePlayers() {
		cards := append(p.HoleCards.Clone(), s.CommunityCards...)
		rank, err := handeval.RankPokerHand(cards)
		if err != nil {
			return err
		}

		p.Hand = rank.Description
		s.log(playable.CardsLogMessage(p.PlayerID, p.HoleCards, "showed %s", handeval.Describe(cards)))

		switch {
		case rank.Category > best:
			best = rank.Category
			winners = []*Player{p}
		case rank.Category == best:
			winners = append(winners, p)
		}
	}

	share := s.Pot / len(winners)
	for _, p := range winners {
		p.win(share)
		s.log(playable.SimpleLogMessage(p.PlayerID, "won %d with %s", share, p.Hand))
	}

	s.Phase = PhaseFinished
	return nil
}

type gameLog struct {
	Players   []*Player `json:"players"`
	Community deck.Hand `json:"community"`
	Pot       int       `json:"pot"`
}

// GameOverDetails returns the chip movement of the hand once it's finished
// The second return value is false while the hand is still in progress
func (s *State) GameOverDetails() (*playable.GameOverDetails, bool) {
	if !s.IsFinished() {
		return nil, false
	}

	adjustments := make(map[string]int, len(s.Players))
	for _, p := range s.Players {
		adjustments[p.PlayerID] = p.ChipCount - p.StartingChips
	}

	return &playable.GameOverDetails{
		BalanceAdjustments: adjustments,
		Log: &gameLog{
			Players:   s.Players,
			Community: s.CommunityCards,
			Pot:       s.Pot,
		},
	}, true
}
