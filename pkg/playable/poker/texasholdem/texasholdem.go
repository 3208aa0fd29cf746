package texasholdem

import (
	"casino-engine/internal/rng"
	"casino-engine/pkg/deck"
	"casino-engine/pkg/playable"
	"errors"

	"github.com/sirupsen/logrus"
)

const (
	minPlayers = 2
	maxPlayers = 10
)

// Options configures the blinds of a hand
type Options struct {
	SmallBlind int `json:"smallBlind"`
	// BigBlind defaults to twice the small blind
	BigBlind       int `json:"bigBlind"`
	DealerPosition int `json:"dealerPosition"`
}

// DefaultOptions returns the default options for Texas Hold'em
func DefaultOptions() Options {
	return Options{
		SmallBlind: 5,
		BigBlind:   10,
	}
}

// Engine creates hands of Texas Hold'em and applies actions to them
// It holds no game state, every call takes a State and returns a new one
type Engine struct {
	logger logrus.FieldLogger
	gen    rng.Generator
}

// NewEngine returns a new Engine. gen is used to shuffle the deck for every new hand
func NewEngine(logger logrus.FieldLogger, gen rng.Generator) *Engine {
	return &Engine{
		logger: logger,
		gen:    gen,
	}
}

// NewHand shuffles a deck, posts the blinds and deals the hole cards
func (e *Engine) NewHand(seats []playable.Seat, opts Options) (*State, error) {
	return e.newHand(seats, opts, deck.New().Shuffle(e.gen))
}

func (e *Engine) newHand(seats []playable.Seat, opts Options, d *deck.Deck) (*State, error) {
	if err := playable.ValidateSeats(seats, minPlayers, maxPlayers); err != nil {
		return nil, err
	}

	if opts.BigBlind == 0 {
		opts.BigBlind = opts.SmallBlind * 2
	}

	if err := validateOptions(opts, len(seats)); err != nil {
		return nil, err
	}

	players := make([]*Player, len(seats))
	for i, seat := range seats {
		players[i] = newPlayer(seat, i)
	}

	s := &State{
		Phase:          PhasePreFlop,
		Deck:           d,
		CommunityCards: make(deck.Hand, 0, 5),
		DealerPosition: opts.DealerPosition,
		SmallBlind:     opts.SmallBlind,
		BigBlind:       opts.BigBlind,
		Players:        players,
		Log:            make([]*playable.LogMessage, 0),
	}

	s.log(playable.SimpleLogMessage("", "new hand, deck %s", d.HashCode()))
	s.postBlinds()
	if err := s.dealHoleCards(); err != nil {
		return nil, err
	}

	if s.blindsClosedAction() {
		if err := s.nextStreet(); err != nil {
			return nil, err
		}
	}

	e.logger.WithFields(logrus.Fields{
		"players":    len(players),
		"smallBlind": s.SmallBlind,
		"bigBlind":   s.BigBlind,
		"phase":      s.Phase,
	}).Debug("new texas hold'em hand")

	return s, nil
}

func validateOptions(opts Options, nPlayers int) error {
	if opts.SmallBlind < 0 {
		return errors.New("small blind must be >= 0")
	}

	if opts.BigBlind < opts.SmallBlind {
		return errors.New("big blind must be >= the small blind")
	}

	if opts.DealerPosition < 0 || opts.DealerPosition >= nPlayers {
		return errors.New("dealer position must be a seat at the table")
	}

	return nil
}

func (s *State) postBlinds() {
	n := len(s.Players)
	smallBlind := s.Players[(s.DealerPosition+1)%n]
	bigBlind := s.Players[(s.DealerPosition+2)%n]

	sb := smallBlind.bet(s.SmallBlind)
	s.log(playable.SimpleLogMessage(smallBlind.PlayerID, "posted the small blind of %d", sb))

	bb := bigBlind.bet(s.BigBlind)
	s.log(playable.SimpleLogMessage(bigBlind.PlayerID, "posted the big blind of %d", bb))

	s.Pot = sb + bb
	s.CurrentBet = s.BigBlind
	s.CurrentPlayerIndex = s.nextActor((s.DealerPosition + 2) % n)
}

// blindsClosedAction is true when the blinds left nobody with a decision to make
// A lone player who can still bet only has one if they are facing a bigger blind
func (s *State) blindsClosedAction() bool {
	switch s.bettors() {
	case 0:
		return true
	case 1:
		p := s.Players[s.nextActor(s.DealerPosition)]
		return p.CurrentBet >= s.CurrentBet
	}

	return false
}

// dealHoleCards deals one card to each player per pass, twice
func (s *State) dealHoleCards() error {
	if want := 2 * len(s.Players); !s.Deck.CanDraw(want) {
		return &deck.InsufficientCardsError{Want: want, Have: s.Deck.CardsLeft()}
	}

	for i := 0; i < 2; i++ {
		for _, p := range s.Players {
			card, err := s.Deck.Draw()
			if err != nil {
				return err
			}

			p.HoleCards.AddCard(card)
		}
	}

	return nil
}
