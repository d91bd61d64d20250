package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ad-altun/PerTiTrack-sub000/internal/core"
	"github.com/rs/zerolog/log"
)

// Wire formats for the JSON surface: dates as yyyy-MM-dd, date-times as
// yyyy-MM-dd'T'HH:mm:ss, times of day as HH:mm.
const (
	dateFormat     = "2006-01-02"
	dateTimeFormat = "2006-01-02T15:04:05"
	clockFormat    = "15:04"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeError maps domain errors onto HTTP status codes. Punch conflicts are
// 409 with the gate's reason as the body, per the write-gating contract.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, core.ErrAlreadyClockedIn),
		errors.Is(err, core.ErrNotClockedIn),
		errors.Is(err, core.ErrAlreadyOnBreak),
		errors.Is(err, core.ErrNotOnBreak),
		errors.Is(err, core.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrRecordNotOwned):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	default:
		log.Ctx(r.Context()).Error().Err(err).Msg("Request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
