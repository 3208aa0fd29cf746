package blackjack

import (
	"casino-engine/internal/rng"
	"casino-engine/pkg/deck"
	"casino-engine/pkg/playable"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	minPlayers = 1
	maxPlayers = 7
)

// Options configures a round of blackjack
type Options struct {
	MinBet int `json:"minBet"`
}

// DefaultOptions returns the default options for blackjack
func DefaultOptions() Options {
	return Options{
		MinBet: 10,
	}
}

// Engine deals rounds of blackjack and applies actions to them
// It holds no game state, every call takes a State and returns a new one
type Engine struct {
	logger logrus.FieldLogger
	gen    rng.Generator
}

// NewEngine returns a new Engine. gen is used to shuffle the deck for every round
func NewEngine(logger logrus.FieldLogger, gen rng.Generator) *Engine {
	return &Engine{
		logger: logger,
		gen:    gen,
	}
}

// NewRound takes the bets from the seats and deals the initial cards
// A seat without a bet plays the minimum bet
func (e *Engine) NewRound(seats []playable.Seat, opts Options) (*State, error) {
	return e.newRound(seats, opts, deck.New().Shuffle(e.gen))
}

func (e *Engine) newRound(seats []playable.Seat, opts Options, d *deck.Deck) (*State, error) {
	if err := playable.ValidateSeats(seats, minPlayers, maxPlayers); err != nil {
		return nil, err
	}

	if opts.MinBet < 0 {
		return nil, errors.New("minimum bet must be >= 0")
	}

	players := make([]*Player, len(seats))
	for i, seat := range seats {
		bet := seat.Bet
		if bet == 0 {
			bet = opts.MinBet
		}

		if bet < opts.MinBet {
			return nil, fmt.Errorf("bet of %d from %s is below the minimum of %d", bet, seat.PlayerID, opts.MinBet)
		}

		players[i] = &Player{
			PlayerID: seat.PlayerID,
			Hands: []*Hand{{
				Cards:  make(deck.Hand, 0, 2),
				Bet:    bet,
				Status: StatusPlaying,
			}},
			TotalBet: bet,
		}
	}

	s := &State{
		Phase:   PhaseBetting,
		Deck:    d,
		Players: players,
		MinBet:  opts.MinBet,
		Log:     make([]*playable.LogMessage, 0),
	}

	s.log(playable.SimpleLogMessage("", "new round, deck %s", d.HashCode()))
	if err := s.dealInitialCards(); err != nil {
		return nil, err
	}

	e.logger.WithFields(logrus.Fields{
		"players": len(players),
		"minBet":  opts.MinBet,
	}).Debug("new blackjack round")

	return s, nil
}

// dealInitialCards gives two cards to every player, one per pass, then two to the dealer
// Only the dealer's first card is shown
func (s *State) dealInitialCards() error {
	s.Phase = PhaseDealing

	for i := 0; i < 2; i++ {
		for _, p := range s.Players {
			card, err := s.Deck.Draw()
			if err != nil {
				return err
			}

			p.Hands[0].addCard(card)
		}
	}

	cards, remaining, err := s.Deck.Deal(2)
	if err != nil {
		return err
	}

	s.Deck = remaining
	s.DealerCards = cards
	up := cards.FirstCard()
	s.DealerVisibleCards = deck.Hand{up}
	s.log(playable.CardsLogMessage("", s.DealerVisibleCards, "dealer shows %s", up))

	s.Phase = PhasePlaying
	return nil
}
