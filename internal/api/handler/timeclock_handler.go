package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ad-altun/PerTiTrack-sub000/internal/core"
	"github.com/ad-altun/PerTiTrack-sub000/internal/core/model"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type TimeClockHandler struct {
	Service  *core.TimeClockService
	Clock    core.Clock
	Validate *validator.Validate
}

type punchRequest struct {
	Location string `json:"location" validate:"omitempty,oneof=OFFICE HOME BUSINESS_TRIP OTHER"`
	Notes    string `json:"notes" validate:"max=500"`
}

type notesRequest struct {
	Notes string `json:"notes" validate:"max=500"`
}

func (h *TimeClockHandler) decodePunch(w http.ResponseWriter, r *http.Request) (*punchRequest, bool) {
	var req punchRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return nil, false
		}
	}
	if err := h.Validate.Struct(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return nil, false
	}
	return &req, true
}

func (h *TimeClockHandler) ClockIn(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePunch(w, r)
	if !ok {
		return
	}

	rec, err := h.Service.ClockIn(r.Context(), EmployeeID(r), model.LocationType(req.Location), req.Notes)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRecordDTO(rec))
}

func (h *TimeClockHandler) ClockOut(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePunch(w, r)
	if !ok {
		return
	}

	rec, err := h.Service.ClockOut(r.Context(), EmployeeID(r), req.Notes)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRecordDTO(rec))
}

func (h *TimeClockHandler) StartBreak(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePunch(w, r)
	if !ok {
		return
	}

	rec, err := h.Service.StartBreak(r.Context(), EmployeeID(r), req.Notes)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRecordDTO(rec))
}

func (h *TimeClockHandler) EndBreak(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePunch(w, r)
	if !ok {
		return
	}

	rec, err := h.Service.EndBreak(r.Context(), EmployeeID(r), req.Notes)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRecordDTO(rec))
}

func (h *TimeClockHandler) TodayStatus(w http.ResponseWriter, r *http.Request) {
	st, err := h.Service.TodayStatus(r.Context(), EmployeeID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatusDTO(st))
}

func (h *TimeClockHandler) TodaySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.TodaySummary(r.Context(), EmployeeID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryDTO(h.Clock.Now().Format(dateFormat), summary))
}

func (h *TimeClockHandler) TodayRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.TodayRecords(r.Context(), EmployeeID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordDTOs(records))
}

func (h *TimeClockHandler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	recordID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid record id"})
		return
	}

	var req notesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := h.Validate.Struct(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	rec, err := h.Service.UpdateRecordNotes(r.Context(), EmployeeID(r), recordID, req.Notes)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordDTO(rec))
}
