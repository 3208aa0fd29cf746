package store

import (
	"casino-engine/pkg/gamestate"
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryGame struct {
	roomID     string
	state      []byte
	version    int
	startedAt  time.Time
	finishedAt *time.Time
}

// Memory is a Store that keeps games in memory
// Documents are kept serialized so callers never share state with the store
type Memory struct {
	mu    sync.Mutex
	games map[string]*memoryGame
	moves map[string][]*MoveRecord
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		games: make(map[string]*memoryGame),
		moves: make(map[string][]*MoveRecord),
	}
}

// Create saves a new game
func (m *Memory) Create(ctx context.Context, g *Game) error {
	state, err := json.Marshal(g.Document)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	g.ID = uuid.New().String()
	g.StartedAt = time.Now().UTC()
	m.games[g.ID] = &memoryGame{
		roomID:    g.RoomID,
		state:     state,
		version:   g.Document.Version,
		startedAt: g.StartedAt,
	}

	return nil
}

// Get returns the game with the given ID
func (m *Memory) Get(ctx context.Context, id string) (*Game, error) {
	m.mu.Lock()
	mg, ok := m.games[id]
	var cp memoryGame
	if ok {
		cp = *mg
	}
	m.mu.Unlock()

	if !ok {
		return nil, ErrNotFound
	}

	var doc gamestate.Document
	if err := json.Unmarshal(cp.state, &doc); err != nil {
		return nil, err
	}

	return &Game{
		ID:         id,
		RoomID:     cp.roomID,
		Document:   &doc,
		StartedAt:  cp.startedAt,
		FinishedAt: cp.finishedAt,
	}, nil
}

// Update saves the game and records the move if nobody else has saved since
func (m *Memory) Update(ctx context.Context, g *Game, expectedVersion int, move *MoveRecord) error {
	state, err := json.Marshal(g.Document)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	mg, ok := m.games[g.ID]
	if !ok {
		return ErrNotFound
	}

	if mg.version != expectedVersion {
		return ErrVersionConflict
	}

	// the history holds one move per version
	if move != nil {
		for _, recorded := range m.moves[g.ID] {
			if recorded.Version == g.Document.Version {
				return ErrVersionConflict
			}
		}
	}

	now := time.Now().UTC()
	mg.state = state
	mg.version = g.Document.Version
	if g.Document.IsFinished() && mg.finishedAt == nil {
		finished := now
		mg.finishedAt = &finished
	}

	g.FinishedAt = mg.finishedAt
	if move != nil {
		move.GameID = g.ID
		move.Version = g.Document.Version
		move.Created = now

		cp := *move
		m.moves[g.ID] = append(m.moves[g.ID], &cp)
	}

	return nil
}

// Moves returns the moves of the game, oldest first
func (m *Memory) Moves(ctx context.Context, gameID string) ([]*MoveRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.games[gameID]; !ok {
		return nil, ErrNotFound
	}

	moves := make([]*MoveRecord, len(m.moves[gameID]))
	for i, move := range m.moves[gameID] {
		cp := *move
		moves[i] = &cp
	}

	return moves, nil
}
