package playable

import (
	"casino-engine/pkg/deck"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Seat is a player the host seats at the start of a hand
type Seat struct {
	PlayerID string `json:"playerId"`
	Chips    int    `json:"chips"`

	// Bet is the stake for games where it's placed before the deal (blackjack)
	Bet int `json:"bet"`
}

// LogMessage is an audit entry recorded in the game state
// If PlayerIDs is empty, assume it's a general statement, otherwise the message will be read like "{player} did X, Y, Z"
type LogMessage struct {
	UUID      string       `json:"uuid"`
	PlayerIDs []string     `json:"playerIds"`
	Cards     []*deck.Card `json:"cards"`
	Message   string       `json:"message"`
	Time      time.Time    `json:"time"`
}

// GameOverDetails provides details on how the game ended
// BalanceAdjustments is keyed by player ID and is what an external ledger should credit (or debit)
type GameOverDetails struct {
	BalanceAdjustments map[string]int `json:"balanceAdjustments"`
	Log                interface{}    `json:"log"`
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(playerID string, format string, a ...interface{}) *LogMessage {
	var playerIDs []string
	if playerID != "" {
		playerIDs = []string{playerID}
	}

	return &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

// CardsLogMessage returns a new LogMessage that reveals cards
func CardsLogMessage(playerID string, cards []*deck.Card, format string, a ...interface{}) *LogMessage {
	msg := SimpleLogMessage(playerID, format, a...)
	msg.Cards = cards
	return msg
}

// ValidateSeats ensures the seat count is within [min, max] and every player ID is unique
func ValidateSeats(seats []Seat, min, max int) error {
	if len(seats) < min || len(seats) > max {
		return PlayerCountError{Min: min, Max: max, Got: len(seats)}
	}

	seen := make(map[string]bool, len(seats))
	for _, seat := range seats {
		if seat.PlayerID == "" {
			return ErrMissingPlayerID
		}

		if seen[seat.PlayerID] {
			return DuplicatePlayerError(seat.PlayerID)
		}

		if seat.Chips < 0 {
			return fmt.Errorf("player %s cannot have a negative chip count", seat.PlayerID)
		}

		seen[seat.PlayerID] = true
	}

	return nil
}
