package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ad-altun/PerTiTrack-sub000/internal/core"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type EmployeeHandler struct {
	Service  *core.EmployeeService
	Validate *validator.Validate
}

type employeeRequest struct {
	UserID         string `json:"userId" validate:"omitempty,uuid4"`
	EmployeeNumber string `json:"employeeNumber" validate:"required,max=20"`
	FirstName      string `json:"firstName" validate:"required,max=100"`
	LastName       string `json:"lastName" validate:"required,max=100"`
	IsActive       *bool  `json:"isActive"`
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]EmployeeDTO, 0, len(employees))
	for i := range employees {
		out = append(out, toEmployeeDTO(&employees[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid employee id"})
		return
	}

	e, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(e))
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	userID := uuid.Nil
	if req.UserID != "" {
		userID, _ = uuid.Parse(req.UserID)
	}

	e, err := h.Service.Create(r.Context(), userID, req.EmployeeNumber, req.FirstName, req.LastName)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEmployeeDTO(e))
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid employee id"})
		return
	}

	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	e, err := h.Service.Update(r.Context(), id, req.EmployeeNumber, req.FirstName, req.LastName, isActive)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(e))
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid employee id"})
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EmployeeHandler) decode(w http.ResponseWriter, r *http.Request) (*employeeRequest, bool) {
	var req employeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return nil, false
	}
	if err := h.Validate.Struct(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return nil, false
	}
	return &req, true
}
