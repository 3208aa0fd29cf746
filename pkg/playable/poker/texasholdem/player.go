package texasholdem

import (
	"casino-engine/pkg/deck"
	"casino-engine/pkg/playable"
)

// Player represents an individual player in a hand of Texas Hold'em
type Player struct {
	PlayerID   string    `json:"playerId"`
	SeatIndex  int       `json:"seatIndex"`
	HoleCards  deck.Hand `json:"holeCards"`
	ChipCount  int       `json:"chipCount"`
	CurrentBet int       `json:"currentBet"`
	HasActed   bool      `json:"hasActed"`
	HasFolded  bool      `json:"hasFolded"`
	IsAllIn    bool      `json:"isAllIn"`

	// StartingChips is the chip count before the blinds were posted
	StartingChips int `json:"startingChips"`
	// Winnings is what the player took from the pot
	Winnings int `json:"winnings"`
	// Hand is the category the player showed down with
	Hand string `json:"hand,omitempty"`
}

func newPlayer(seat playable.Seat, seatIndex int) *Player {
	return &Player{
		PlayerID:      seat.PlayerID,
		SeatIndex:     seatIndex,
		HoleCards:     make(deck.Hand, 0, 2),
		ChipCount:     seat.Chips,
		StartingChips: seat.Chips,
	}
}

// bet moves up to amount from the player's stack into their current bet
// The value returned is what actually left the stack. A short stack goes all-in
func (p *Player) bet(amount int) int {
	if amount < 0 {
		amount = 0
	}

	if amount > p.ChipCount {
		amount = p.ChipCount
	}

	p.ChipCount -= amount
	p.CurrentBet += amount
	if amount > 0 && p.ChipCount == 0 {
		p.IsAllIn = true
	}

	return amount
}

// canBet returns true if the player can still put chips in
func (p *Player) canBet() bool {
	return !p.HasFolded && !p.IsAllIn
}

func (p *Player) win(amount int) {
	p.ChipCount += amount
	p.Winnings += amount
}

func (p *Player) clone() *Player {
	cp := *p
	cp.HoleCards = p.HoleCards.Clone()
	return &cp
}
