package mux

import (
	"casino-engine/pkg/gamestate"
	"casino-engine/pkg/playable"
	"casino-engine/pkg/store"
	"errors"
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// a game needs at least two players to start, whatever the engine allows
const minGamePlayers = 2

type postGamePayload struct {
	RoomID   string          `json:"roomId"`
	GameType string          `json:"gameType"`
	Players  []playable.Seat `json:"players"`
}

type postGameResponse struct {
	GameID string `json:"gameId"`
}

func (m *Mux) postGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postGamePayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		if payload.RoomID == "" {
			writeJSONError(w, http.StatusBadRequest, errors.New("roomId is required"))
			return
		}

		gameType, err := gamestate.TypeFromString(payload.GameType)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		if len(payload.Players) < minGamePlayers {
			writeJSONError(w, http.StatusBadRequest, errors.New("at least 2 players are required"))
			return
		}

		seats := make([]playable.Seat, len(payload.Players))
		for i, seat := range payload.Players {
			if seat.Chips == 0 {
				seat.Chips = m.config.startingChips[gameType]
			}

			seats[i] = seat
		}

		doc, err := m.engine.New(gameType, seats, m.config.options)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		game := &store.Game{
			RoomID:   payload.RoomID,
			Document: doc,
		}

		if err := m.store.Create(r.Context(), game); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		logrus.WithFields(logrus.Fields{
			"gameID":   game.ID,
			"roomID":   game.RoomID,
			"gameType": gameType,
			"players":  len(seats),
		}).Info("game started")

		writeJSON(w, http.StatusCreated, postGameResponse{GameID: game.ID})
	}
}

func (m *Mux) getGameID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game, err := m.store.Get(r.Context(), gmux.Vars(r)["id"])
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, game)
	}
}

func (m *Mux) getGameIDMoves() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		moves, err := m.store.Moves(r.Context(), gmux.Vars(r)["id"])
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, moves)
	}
}

func (m *Mux) postGameIDMove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.Header.Get(playerIDHeader)
		if playerID == "" {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		var move gamestate.Move
		if !decodeRequest(w, r, &move) {
			return
		}

		game, err := m.store.Get(r.Context(), gmux.Vars(r)["id"])
		if err != nil {
			writeGameError(w, err)
			return
		}

		if err := game.Document.ValidateMove(playerID, move); err != nil {
			writeGameError(w, err)
			return
		}

		expectedVersion := game.Document.Version
		next, err := m.engine.Apply(game.Document, playerID, move)
		if err != nil {
			writeGameError(w, err)
			return
		}

		game.Document = next
		record := &store.MoveRecord{
			PlayerID: playerID,
			Move:     move,
		}
		if err := m.store.Update(r.Context(), game, expectedVersion, record); err != nil {
			writeGameError(w, err)
			return
		}

		log := logrus.WithFields(logrus.Fields{
			"gameID":   game.ID,
			"playerID": playerID,
			"action":   move.Action,
			"version":  next.Version,
		})

		if details, ok := next.GameOverDetails(); ok {
			log.WithField("adjustments", details.BalanceAdjustments).Info("game finished")
		} else {
			log.Debug("move applied")
		}

		writeJSON(w, http.StatusOK, game)
	}
}
