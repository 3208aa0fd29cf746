// Package gamestate wraps the poker and blackjack states in one document
// that can be stored and passed around without knowing which game it holds
package gamestate

import (
	"casino-engine/internal/rng"
	"casino-engine/pkg/playable"
	"casino-engine/pkg/playable/blackjack"
	"casino-engine/pkg/playable/poker/action"
	"casino-engine/pkg/playable/poker/texasholdem"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Type is the kind of game a document holds
type Type string

// constants for Type
const (
	TypePoker     Type = "poker"
	TypeBlackjack Type = "blackjack"
)

// ErrUnknownType is returned for a game type other than poker or blackjack
var ErrUnknownType = errors.New("unknown game type")

// TypeFromString returns the game type for the given string
func TypeFromString(s string) (Type, error) {
	switch Type(s) {
	case TypePoker, TypeBlackjack:
		return Type(s), nil
	}

	return "", ErrUnknownType
}

// Document is a game state tagged with its type
// Exactly one of Poker or Blackjack is set, matching Type
type Document struct {
	Type      Type               `json:"type"`
	Version   int                `json:"version"`
	Poker     *texasholdem.State `json:"poker,omitempty"`
	Blackjack *blackjack.State   `json:"blackjack,omitempty"`
}

// Move is an action requested by a player
// Amount is only used by a poker raise
type Move struct {
	Action string `json:"action"`
	Amount int    `json:"amount"`
}

// Options holds the options for each game type
type Options struct {
	Poker     texasholdem.Options `json:"poker"`
	Blackjack blackjack.Options   `json:"blackjack"`
}

// DefaultOptions returns the default options of every game
func DefaultOptions() Options {
	return Options{
		Poker:     texasholdem.DefaultOptions(),
		Blackjack: blackjack.DefaultOptions(),
	}
}

// Engine dispatches documents to the engine of their game type
type Engine struct {
	poker     *texasholdem.Engine
	blackjack *blackjack.Engine
}

// NewEngine returns a new Engine
func NewEngine(logger logrus.FieldLogger, gen rng.Generator) *Engine {
	return &Engine{
		poker:     texasholdem.NewEngine(logger.WithField("game", TypePoker), gen),
		blackjack: blackjack.NewEngine(logger.WithField("game", TypeBlackjack), gen),
	}
}

// New deals a new game of the given type
func (e *Engine) New(gameType Type, seats []playable.Seat, opts Options) (*Document, error) {
	switch gameType {
	case TypePoker:
		s, err := e.poker.NewHand(seats, opts.Poker)
		if err != nil {
			return nil, err
		}

		return &Document{Type: TypePoker, Poker: s}, nil
	case TypeBlackjack:
		s, err := e.blackjack.NewRound(seats, opts.Blackjack)
		if err != nil {
			return nil, err
		}

		return &Document{Type: TypeBlackjack, Blackjack: s}, nil
	}

	return nil, ErrUnknownType
}

// Apply performs the move and returns a new document with the version incremented
// The document passed in is never modified
func (e *Engine) Apply(d *Document, playerID string, m Move) (*Document, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	next := &Document{
		Type:    d.Type,
		Version: d.Version + 1,
	}

	var err error
	if d.Type == TypePoker {
		next.Poker, err = e.poker.Apply(d.Poker, playerID, action.Action(m.Action), m.Amount)
	} else {
		next.Blackjack, err = e.blackjack.Apply(d.Blackjack, playerID, blackjack.Action(m.Action))
	}

	if err != nil {
		return nil, err
	}

	return next, nil
}

// ValidateMove returns an error if the player cannot perform the move
func (d *Document) ValidateMove(playerID string, m Move) error {
	if err := d.Validate(); err != nil {
		return err
	}

	if d.Type == TypePoker {
		return d.Poker.ValidateMove(playerID, action.Action(m.Action), m.Amount)
	}

	return d.Blackjack.ValidateMove(playerID, blackjack.Action(m.Action))
}

// IsLegalMove returns true if the player can perform the move
func (d *Document) IsLegalMove(playerID string, m Move) bool {
	return d.ValidateMove(playerID, m) == nil
}

// IsFinished returns true once the game has been settled
func (d *Document) IsFinished() bool {
	switch d.Type {
	case TypePoker:
		return d.Poker.IsFinished()
	case TypeBlackjack:
		return d.Blackjack.IsFinished()
	}

	return false
}

// GameOverDetails returns the balance adjustments of a finished game
func (d *Document) GameOverDetails() (*playable.GameOverDetails, bool) {
	switch d.Type {
	case TypePoker:
		return d.Poker.GameOverDetails()
	case TypeBlackjack:
		return d.Blackjack.GameOverDetails()
	}

	return nil, false
}

// Validate returns an error if the payload of the document doesn't match its type
func (d *Document) Validate() error {
	switch d.Type {
	case TypePoker:
		if d.Poker == nil || d.Blackjack != nil {
			return fmt.Errorf("%s document must only contain a %s state", d.Type, d.Type)
		}
	case TypeBlackjack:
		if d.Blackjack == nil || d.Poker != nil {
			return fmt.Errorf("%s document must only contain a %s state", d.Type, d.Type)
		}
	default:
		return ErrUnknownType
	}

	return nil
}

// UnmarshalJSON rejects documents whose payload does not match the type
func (d *Document) UnmarshalJSON(b []byte) error {
	type document Document

	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}

	if err := (*Document)(&doc).Validate(); err != nil {
		return err
	}

	*d = Document(doc)
	return nil
}
