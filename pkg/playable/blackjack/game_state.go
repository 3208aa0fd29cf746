package blackjack

import (
	"casino-engine/pkg/deck"
	"casino-engine/pkg/handeval"
	"casino-engine/pkg/playable"
)

// Phase is the phase of the round
type Phase string

// constants for Phase
const (
	PhaseBetting    Phase = "betting"
	PhaseDealing    Phase = "dealing"
	PhasePlaying    Phase = "playing"
	PhaseDealerTurn Phase = "dealer_turn"
	PhaseFinished   Phase = "finished"
)

// HandStatus is the status of a single hand
type HandStatus string

// constants for HandStatus
const (
	StatusPlaying   HandStatus = "playing"
	StatusStand     HandStatus = "stand"
	StatusBust      HandStatus = "bust"
	StatusBlackjack HandStatus = "blackjack"
	StatusFinished  HandStatus = "finished"
)

// Outcome is how a hand was settled against the dealer
type Outcome string

// constants for Outcome
const (
	OutcomePending   Outcome = ""
	OutcomeWin       Outcome = "win"
	OutcomePush      Outcome = "push"
	OutcomeLoss      Outcome = "loss"
	OutcomeBlackjack Outcome = "blackjack"
	OutcomeBust      Outcome = "bust"
)

// Hand is one of a player's hands. A player has more than one only after a split
type Hand struct {
	Cards      deck.Hand  `json:"cards"`
	Bet        int        `json:"bet"`
	Status     HandStatus `json:"status"`
	Value      int        `json:"value"`
	HasSoftAce bool       `json:"hasSoftAce"`
	Outcome    Outcome    `json:"outcome,omitempty"`
}

// Player is a player in a round of blackjack
type Player struct {
	PlayerID         string  `json:"playerId"`
	Hands            []*Hand `json:"hands"`
	CurrentHandIndex int     `json:"currentHandIndex"`
	TotalBet         int     `json:"totalBet"`

	// HasActed becomes true once every one of the player's hands is resolved
	HasActed bool `json:"hasActed"`
}

// State is a single round of blackjack
type State struct {
	Phase              Phase                  `json:"phase"`
	Deck               *deck.Deck             `json:"deck"`
	DealerCards        deck.Hand              `json:"dealerCards"`
	DealerVisibleCards deck.Hand              `json:"dealerVisibleCards"`
	Players            []*Player              `json:"players"`
	CurrentPlayerIndex int                    `json:"currentPlayerIndex"`
	MinBet             int                    `json:"minBet"`
	Log                []*playable.LogMessage `json:"log"`
}

func (h *Hand) addCard(card *deck.Card) {
	h.Cards.AddCard(card)
	h.Value, h.HasSoftAce = handeval.BlackjackValue(h.Cards)
	if h.Value > 21 {
		h.Status = StatusBust
	}
}

// IsBlackjack returns true if the hand is a two-card 21
func (h *Hand) IsBlackjack() bool {
	return len(h.Cards) == 2 && h.Value == 21
}

// CanSplit returns true if the hand is two cards of the same rank
func (h *Hand) CanSplit() bool {
	return len(h.Cards) == 2 && h.Cards[0].Rank == h.Cards[1].Rank
}

func (h *Hand) clone() *Hand {
	cp := *h
	cp.Cards = h.Cards.Clone()
	return &cp
}

// CurrentHand returns the hand the player is acting on
func (p *Player) CurrentHand() *Hand {
	return p.Hands[p.CurrentHandIndex]
}

// nextPlayingHand returns the index of the first hand still in play, or -1
func (p *Player) nextPlayingHand() int {
	for i, h := range p.Hands {
		if h.Status == StatusPlaying {
			return i
		}
	}

	return -1
}

func (p *Player) clone() *Player {
	cp := *p
	cp.Hands = make([]*Hand, len(p.Hands))
	for i, h := range p.Hands {
		cp.Hands[i] = h.clone()
	}

	return &cp
}

// Clone returns a deep copy of the state
func (s *State) Clone() *State {
	cp := *s
	cp.Deck = s.Deck.Clone()
	cp.DealerCards = s.DealerCards.Clone()
	cp.DealerVisibleCards = s.DealerVisibleCards.Clone()

	cp.Players = make([]*Player, len(s.Players))
	for i, p := range s.Players {
		cp.Players[i] = p.clone()
	}

	cp.Log = make([]*playable.LogMessage, len(s.Log))
	copy(cp.Log, s.Log)

	return &cp
}

// IsFinished returns true if the round has been settled
func (s *State) IsFinished() bool {
	return s.Phase == PhaseFinished
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

// CurrentPlayer returns the player whose turn it is, or nil outside of the playing phase
func (s *State) CurrentPlayer() *Player {
	if s.Phase != PhasePlaying || len(s.Players) == 0 {
		return nil
	}

	return s.Players[s.CurrentPlayerIndex]
}

func (s *State) log(msg *playable.LogMessage) {
	s.Log = append(s.Log, msg)
}
