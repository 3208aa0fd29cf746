package store

import (
	"casino-engine/pkg/db"
	"casino-engine/pkg/gamestate"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const (
	pqUniqueViolation           pq.ErrorCode = "23505"
	pqInvalidTextRepresentation pq.ErrorCode = "22P02"
)

const gamesColumns = `id, room_id, state, started_at, finished_at`

// Postgres is a Store backed by the games and moves tables
type Postgres struct {
	db *sql.DB
}

var _ Store = (*Postgres)(nil)

// NewPostgres returns a store using the database handle
func NewPostgres(dbh *sql.DB) *Postgres {
	return &Postgres{db: dbh}
}

// Create inserts a new game
func (p *Postgres) Create(ctx context.Context, g *Game) error {
	state, err := json.Marshal(g.Document)
	if err != nil {
		return err
	}

	const query = `
INSERT INTO games (id, room_id, game_type, state, version)
VALUES ($1, $2, $3, $4, $5)
RETURNING started_at`

	id := uuid.New().String()
	row := p.db.QueryRowContext(ctx, query, id, g.RoomID, g.Document.Type, state, g.Document.Version)
	if err := row.Scan(&g.StartedAt); err != nil {
		return err
	}

	g.ID = id
	return nil
}

// Get returns the game with the given ID
func (p *Postgres) Get(ctx context.Context, id string) (*Game, error) {
	const query = `
SELECT ` + gamesColumns + `
FROM games
WHERE id = $1`

	g, err := gameByRow(p.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		// a malformed id can't match any game
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqInvalidTextRepresentation {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return g, nil
}

func gameByRow(row db.Scanner) (*Game, error) {
	var g Game
	var state []byte
	var finished sql.NullTime

	if err := row.Scan(&g.ID, &g.RoomID, &state, &g.StartedAt, &finished); err != nil {
		return nil, err
	}

	var doc gamestate.Document
	if err := json.Unmarshal(state, &doc); err != nil {
		return nil, err
	}

	g.Document = &doc
	if finished.Valid {
		g.FinishedAt = &finished.Time
	}

	return &g, nil
}

// Update saves the game and inserts the move in one transaction
// if the stored version still equals expectedVersion
func (p *Postgres) Update(ctx context.Context, g *Game, expectedVersion int, move *MoveRecord) error {
	state, err := json.Marshal(g.Document)
	if err != nil {
		return err
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if committed {
			return
		}

		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			logrus.WithError(err).Error("could not rollback transaction")
		}
	}()

	const query = `
UPDATE games
SET state = $1,
    version = $2,
    finished_at = CASE WHEN $3 THEN COALESCE(finished_at, NOW()) ELSE finished_at END
WHERE id = $4
  AND version = $5
RETURNING finished_at`

	var finished sql.NullTime
	row := tx.QueryRowContext(ctx, query, state, g.Document.Version, g.Document.IsFinished(), g.ID, expectedVersion)
	if err := row.Scan(&finished); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p.missingOrConflict(ctx, g.ID)
		}

		return err
	}

	var created time.Time
	if move != nil {
		if created, err = insertMove(ctx, tx, g.ID, g.Document.Version, move); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true

	if finished.Valid {
		g.FinishedAt = &finished.Time
	}

	if move != nil {
		move.GameID = g.ID
		move.Version = g.Document.Version
		move.Created = created
	}

	return nil
}

func insertMove(ctx context.Context, tx *sql.Tx, gameID string, version int, m *MoveRecord) (time.Time, error) {
	const query = `
INSERT INTO moves (game_id, player_id, action, amount, version)
VALUES ($1, $2, $3, $4, $5)
RETURNING created`

	var created time.Time
	row := tx.QueryRowContext(ctx, query, gameID, m.PlayerID, m.Move.Action, m.Move.Amount, version)
	if err := row.Scan(&created); err != nil {
		// the history already has a move for this version
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return time.Time{}, ErrVersionConflict
		}

		return time.Time{}, err
	}

	return created, nil
}

func (p *Postgres) missingOrConflict(ctx context.Context, id string) error {
	var exists bool
	if err := p.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM games WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}

	if !exists {
		return ErrNotFound
	}

	return ErrVersionConflict
}

// Moves returns the moves of the game, oldest first
func (p *Postgres) Moves(ctx context.Context, gameID string) ([]*MoveRecord, error) {
	if _, err := p.Get(ctx, gameID); err != nil {
		return nil, err
	}

	const query = `
SELECT game_id, player_id, action, amount, version, created
FROM moves
WHERE game_id = $1
ORDER BY version`

	rows, err := p.db.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	moves := make([]*MoveRecord, 0)
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.GameID, &m.PlayerID, &m.Move.Action, &m.Move.Amount, &m.Version, &m.Created); err != nil {
			return nil, err
		}

		moves = append(moves, &m)
	}

	return moves, rows.Err()
}
