package mux

import (
	"casino-engine/pkg/playable"
	"casino-engine/pkg/store"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// writeGameError maps store and engine errors to a status code
func writeGameError(w http.ResponseWriter, err error) {
	var illegal *playable.IllegalActionError

	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, playable.ErrPlayerNotFound):
		writeJSONError(w, http.StatusNotFound, err)
	case errors.Is(err, store.ErrVersionConflict):
		writeJSONError(w, http.StatusConflict, err)
	case errors.Is(err, playable.ErrGameAlreadyFinished):
		writeJSONError(w, http.StatusBadRequest, err)
	case errors.As(err, &illegal):
		writeJSONError(w, http.StatusBadRequest, fmt.Errorf("invalid move: %w", err))
	default:
		writeJSONError(w, http.StatusInternalServerError, err)
	}
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).WithError(err).Error("request failed")
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}
