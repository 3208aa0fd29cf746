// Package store persists game documents between moves
package store

import (
	"casino-engine/pkg/gamestate"
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no game has the requested ID
var ErrNotFound = errors.New("game not found")

// ErrVersionConflict is returned when a game was updated by someone else since it was read
var ErrVersionConflict = errors.New("game has been modified by another move")

// Game is a stored game document
type Game struct {
	ID         string              `json:"id"`
	RoomID     string              `json:"roomId"`
	Document   *gamestate.Document `json:"state"`
	StartedAt  time.Time           `json:"startedAt"`
	FinishedAt *time.Time          `json:"finishedAt,omitempty"`
}

// MoveRecord is an accepted move
type MoveRecord struct {
	GameID   string         `json:"gameId"`
	PlayerID string         `json:"playerId"`
	Move     gamestate.Move `json:"move"`
	// Version is the document version the move produced
	Version int       `json:"version"`
	Created time.Time `json:"created"`
}

// Store loads and saves games
type Store interface {
	// Create saves a new game, assigning its ID and start time
	Create(ctx context.Context, g *Game) error
	Get(ctx context.Context, id string) (*Game, error)
	// Update saves the game only if the stored version still equals expectedVersion.
	// A non-nil move is appended to the history in the same write, stamped with the game ID
	// and the new version. Either both are saved or neither is.
	// The finish time is set once the document is finished
	Update(ctx context.Context, g *Game, expectedVersion int, move *MoveRecord) error
	Moves(ctx context.Context, gameID string) ([]*MoveRecord, error)
}
