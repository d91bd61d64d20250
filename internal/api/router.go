package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/ad-altun/PerTiTrack-sub000/internal/api/handler"
	"github.com/ad-altun/PerTiTrack-sub000/internal/auth"
	"github.com/ad-altun/PerTiTrack-sub000/internal/core"
)

// Services groups the application services the router exposes.
type Services struct {
	Auth      *core.AuthService
	Employees *core.EmployeeService
	TimeClock *core.TimeClockService
	Clock     core.Clock
	Tokens    *auth.TokenManager
}

// NewRouter sets up the gorilla/mux router and defines all API routes.
func NewRouter(s Services) *mux.Router {
	validate := validator.New()

	authHandler := handler.AuthHandler{Service: s.Auth, Validate: validate}
	employeeHandler := handler.EmployeeHandler{Service: s.Employees, Validate: validate}
	timeClockHandler := handler.TimeClockHandler{Service: s.TimeClock, Clock: s.Clock, Validate: validate}

	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Service is operational."))
	}).Methods(http.MethodGet)

	protected := api.NewRoute().Subrouter()
	protected.Use(Authentication(s.Tokens))

	protected.HandleFunc("/employees", employeeHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/employees", employeeHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/employees/{id}", employeeHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/employees/{id}", employeeHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/employees/{id}", employeeHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/timetrack/clock-in", timeClockHandler.ClockIn).Methods(http.MethodPost)
	protected.HandleFunc("/timetrack/clock-out", timeClockHandler.ClockOut).Methods(http.MethodPost)
	protected.HandleFunc("/timetrack/break/start", timeClockHandler.StartBreak).Methods(http.MethodPost)
	protected.HandleFunc("/timetrack/break/end", timeClockHandler.EndBreak).Methods(http.MethodPost)
	protected.HandleFunc("/timetrack/status/today", timeClockHandler.TodayStatus).Methods(http.MethodGet)
	protected.HandleFunc("/timetrack/summary/today", timeClockHandler.TodaySummary).Methods(http.MethodGet)
	protected.HandleFunc("/timetrack/records/today", timeClockHandler.TodayRecords).Methods(http.MethodGet)
	protected.HandleFunc("/timetrack/records/{id}/notes", timeClockHandler.UpdateNotes).Methods(http.MethodPut)

	return r
}
