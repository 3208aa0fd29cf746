package mux

import (
	"casino-engine/internal/config"
	"casino-engine/pkg/gamestate"
	"casino-engine/pkg/store"
	"net/http"

	gmux "github.com/gorilla/mux"
)

// playerIDHeader carries the acting player, as authenticated by the gateway in front of the host
const playerIDHeader = "X-Player-ID"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config  muxConfig
	version string
	store   store.Store
	engine  *gamestate.Engine
}

type muxConfig struct {
	options gamestate.Options

	// startingChips is given to seats that don't bring a chip count
	startingChips map[gamestate.Type]int
}

// NewMux returns a new HTTP mux
func NewMux(version string, s store.Store, engine *gamestate.Engine) *Mux {
	cfg := config.Instance()

	opts := gamestate.DefaultOptions()
	opts.Poker.SmallBlind = cfg.Poker.SmallBlind
	opts.Poker.BigBlind = cfg.Poker.BigBlind
	opts.Blackjack.MinBet = cfg.Blackjack.MinBet

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		store:   s,
		engine:  engine,
		config: muxConfig{
			options: opts,
			startingChips: map[gamestate.Type]int{
				gamestate.TypePoker:     cfg.Poker.StartingChips,
				gamestate.TypeBlackjack: cfg.Blackjack.StartingChips,
			},
		},
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/game").Handler(this.postGame())

	gr := r.PathPrefix("/game/{id}").Subrouter()
	gr.Methods(http.MethodGet).Path("").Handler(this.getGameID())
	gr.Methods(http.MethodGet).Path("/moves").Handler(this.getGameIDMoves())
	gr.Methods(http.MethodPost).Path("/move").Handler(this.postGameIDMove())

	return this
}
