package mux

import (
	"casino-engine/pkg/gamestate"
	"casino-engine/pkg/playable"
	"casino-engine/pkg/store"
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func twoSeats() []playable.Seat {
	return []playable.Seat{{PlayerID: "p1"}, {PlayerID: "p2"}}
}

func TestMux_postGame(t *testing.T) {
	a := assert.New(t)
	ts, s := newTestServer("")
	defer ts.Close()

	var resp postGameResponse
	assertPost(t, ts, "/game", postGamePayload{
		RoomID:   "room-1",
		GameType: "poker",
		Players:  twoSeats(),
	}, &resp, http.StatusCreated)
	a.NotEmpty(resp.GameID)

	game, err := s.Get(context.Background(), resp.GameID)
	a.NoError(err)
	a.Equal("room-1", game.RoomID)
	a.Equal(gamestate.TypePoker, game.Document.Type)
	a.Equal(1000, game.Document.Poker.Players[0].StartingChips)

	var got store.Game
	assertGet(t, ts, "/game/"+resp.GameID, &got, http.StatusOK)
	a.Equal(resp.GameID, got.ID)
	a.Equal(0, got.Document.Version)
}

func TestMux_postGame_errors(t *testing.T) {
	ts, _ := newTestServer("")
	defer ts.Close()

	tests := []struct {
		name    string
		payload interface{}
		message string
	}{
		{"missing room", postGamePayload{GameType: "poker", Players: twoSeats()}, "roomId is required"},
		{"unknown type", postGamePayload{RoomID: "r", GameType: "roulette", Players: twoSeats()}, "unknown game type"},
		{"one player", postGamePayload{RoomID: "r", GameType: "blackjack", Players: twoSeats()[:1]}, "at least 2 players are required"},
		{"duplicate player", postGamePayload{RoomID: "r", GameType: "poker", Players: []playable.Seat{{PlayerID: "p1"}, {PlayerID: "p1"}}}, "player p1 is seated more than once"},
		{"invalid json", `{"roomId":`, "unexpected EOF"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var resp errorResponse
			assertPost(t, ts, "/game", test.payload, &resp, http.StatusBadRequest)
			assert.Equal(t, test.message, resp.Message)
		})
	}
}

func TestMux_postGameIDMove_blackjack(t *testing.T) {
	a := assert.New(t)
	ts, s := newTestServer("")
	defer ts.Close()

	var created postGameResponse
	assertPost(t, ts, "/game", postGamePayload{
		RoomID:   "room-1",
		GameType: "blackjack",
		Players:  twoSeats(),
	}, &created, http.StatusCreated)

	path := "/game/" + created.GameID + "/move"

	var game store.Game
	assertPost(t, ts, path, gamestate.Move{Action: "stand"}, &game, http.StatusOK, "p1")
	a.Equal(1, game.Document.Version)
	a.True(game.Document.Blackjack.Players[0].HasActed)
	a.Nil(game.FinishedAt)

	var errResp errorResponse
	assertPost(t, ts, path, gamestate.Move{Action: "hit"}, &errResp, http.StatusBadRequest, "p1")
	a.Equal("invalid move: illegal action hit: player has already acted", errResp.Message)

	assertPost(t, ts, path, gamestate.Move{Action: "hit"}, &errResp, http.StatusNotFound, "p9")
	a.Equal("player not found", errResp.Message)

	assertPost(t, ts, path, gamestate.Move{Action: "stand"}, &game, http.StatusOK, "p2")
	a.Equal(2, game.Document.Version)
	a.True(game.Document.IsFinished())
	a.NotNil(game.FinishedAt)

	assertPost(t, ts, path, gamestate.Move{Action: "stand"}, &errResp, http.StatusBadRequest, "p2")
	a.Equal("game is already finished", errResp.Message)

	var moves []*store.MoveRecord
	assertGet(t, ts, "/game/"+created.GameID+"/moves", &moves, http.StatusOK)
	if a.Equal(2, len(moves)) {
		a.Equal("p1", moves[0].PlayerID)
		a.Equal("stand", moves[0].Move.Action)
		a.Equal(2, moves[1].Version)
	}

	stored, err := s.Get(context.Background(), created.GameID)
	a.NoError(err)
	a.Equal(2, stored.Document.Version)
}

func TestMux_postGameIDMove_poker(t *testing.T) {
	a := assert.New(t)
	ts, _ := newTestServer("")
	defer ts.Close()

	var created postGameResponse
	assertPost(t, ts, "/game", postGamePayload{
		RoomID:   "room-1",
		GameType: "poker",
		Players:  []playable.Seat{{PlayerID: "p1", Chips: 500}, {PlayerID: "p2", Chips: 500}},
	}, &created, http.StatusCreated)

	path := "/game/" + created.GameID + "/move"

	var errResp errorResponse
	assertPost(t, ts, path, gamestate.Move{Action: "raise", Amount: 5}, &errResp, http.StatusBadRequest, "p2")
	a.Equal("invalid move: illegal action raise: raise must be more than the current bet of 10", errResp.Message)

	var game store.Game
	assertPost(t, ts, path, gamestate.Move{Action: "raise", Amount: 40}, &game, http.StatusOK, "p2")
	a.Equal(40, game.Document.Poker.CurrentBet)
	a.Equal(50, game.Document.Poker.Pot)

	assertPost(t, ts, path, gamestate.Move{Action: "fold"}, &game, http.StatusOK, "p1")
	a.True(game.Document.IsFinished())
	a.Equal(510, game.Document.Poker.Players[1].ChipCount)
}

func TestMux_postGameIDMove_errors(t *testing.T) {
	ts, _ := newTestServer("")
	defer ts.Close()

	var errResp errorResponse
	path := "/game/" + uuid.New().String() + "/move"

	assertPost(t, ts, path, gamestate.Move{Action: "fold"}, &errResp, http.StatusUnauthorized)
	assert.Equal(t, "Unauthorized", errResp.Message)

	assertPost(t, ts, path, gamestate.Move{Action: "fold"}, &errResp, http.StatusNotFound, "p1")
	assert.Equal(t, "game not found", errResp.Message)

	assertGet(t, ts, "/game/"+uuid.New().String(), &errResp, http.StatusNotFound)
	assertGet(t, ts, "/game/"+uuid.New().String()+"/moves", &errResp, http.StatusNotFound)
}
