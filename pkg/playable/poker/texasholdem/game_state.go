package texasholdem

import (
	"casino-engine/pkg/deck"
	"casino-engine/pkg/playable"
)

// State is a single hand of Texas Hold'em
// It holds everything needed to continue the hand, so it can be stored between actions
type State struct {
	Phase              Phase                  `json:"phase"`
	Deck               *deck.Deck             `json:"deck"`
	CommunityCards     deck.Hand              `json:"communityCards"`
	Pot                int                    `json:"pot"`
	CurrentBet         int                    `json:"currentBet"`
	DealerPosition     int                    `json:"dealerPosition"`
	CurrentPlayerIndex int                    `json:"currentPlayerIndex"`
	SmallBlind         int                    `json:"smallBlind"`
	BigBlind           int                    `json:"bigBlind"`
	Players            []*Player              `json:"players"`
	Log                []*playable.LogMessage `json:"log"`
}

// Clone returns a deep copy of the state
func (s *State) Clone() *State {
	cp := *s
	cp.Deck = s.Deck.Clone()
	cp.CommunityCards = s.CommunityCards.Clone()

	cp.Players = make([]*Player, len(s.Players))
	for i, p := range s.Players {
		cp.Players[i] = p.clone()
	}

	cp.Log = make([]*playable.LogMessage, len(s.Log))
	copy(cp.Log, s.Log)

	return &cp
}

// IsFinished returns true if the hand is over
func (s *State) IsFinished() bool {
	return s.Phase == PhaseFinished
}

// CurrentPlayer returns the player whose turn it is, or nil if the hand is over
func (s *State) CurrentPlayer() *Player {
	if !s.Phase.IsBettingRound() || len(s.Players) == 0 {
		return nil
	}

	return s.Players[s.CurrentPlayerIndex]
}

// PlayerByID returns the player with the given ID
func (s *State) PlayerByID(playerID string) (*Player, bool) {
	for _, p := range s.Players {
		if p.PlayerID == playerID {
			return p, true
		}
	}

	return nil, false
}

// ActivePlayers returns the players who have not folded
func (s *State) ActivePlayers() []*Player {
	active := make([]*Player, 0, len(s.Players))
	for _, p := range s.Players {
		if !p.HasFolded {
			active = append(active, p)
		}
	}

	return active
}

// nextActor returns the seat after from of the next player who can still bet
// If nobody can bet, from is returned
func (s *State) nextActor(from int) int {
	n := len(s.Players)
	for i := 1; i <= n; i++ {
		index := (from + i) % n
		if s.Players[index].canBet() {
			return index
		}
	}

	return from
}

func (s *State) bettors() int {
	count := 0
	for _, p := range s.Players {
		if p.canBet() {
			count++
		}
	}

	return count
}

func (s *State) log(msg *playable.LogMessage) {
	s.Log = append(s.Log, msg)
}
