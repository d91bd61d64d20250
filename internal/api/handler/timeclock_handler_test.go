package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ad-altun/PerTiTrack-sub000/internal/core"
	"github.com/ad-altun/PerTiTrack-sub000/internal/core/model"
	"github.com/ad-altun/PerTiTrack-sub000/internal/ports/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRecordRepo struct {
	records []model.TimeRecord
}

func (m *memRecordRepo) Create(_ context.Context, rec *model.TimeRecord) error {
	rec.CreatedAt = rec.RecordTime
	m.records = append(m.records, *rec)
	return nil
}

func (m *memRecordRepo) ListForEmployeeOnDate(_ context.Context, employeeID uuid.UUID, _ time.Time) ([]model.TimeRecord, error) {
	var out []model.TimeRecord
	for _, r := range m.records {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRecordRepo) GetByID(_ context.Context, id uuid.UUID) (*model.TimeRecord, error) {
	for i := range m.records {
		if m.records[i].ID == id {
			rec := m.records[i]
			return &rec, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memRecordRepo) UpdateNotes(_ context.Context, id uuid.UUID, notes string) error {
	for i := range m.records {
		if m.records[i].ID == id {
			m.records[i].Notes = notes
			return nil
		}
	}
	return repository.ErrNotFound
}

type noopSummaryRepo struct{}

func (noopSummaryRepo) Upsert(_ context.Context, s *model.WorkDaySummary) (int64, error) { return 1, nil }
func (noopSummaryRepo) GetByID(_ context.Context, _ int64) (*model.WorkDaySummary, error) {
	return nil, repository.ErrNotFound
}
func (noopSummaryRepo) UpdateNotifyStatus(_ context.Context, _ int64, _ model.NotifyStatus, _ int) error {
	return nil
}
func (noopSummaryRepo) UpdateExportStatus(_ context.Context, _ int64, _ model.ExportStatus, _ int) error {
	return nil
}

type noopProducer struct{}

func (noopProducer) PublishNotify(_ context.Context, _ interface{}) error { return nil }
func (noopProducer) PublishExport(_ context.Context, _ interface{}) error { return nil }

type stubClock struct{ now time.Time }

func (c *stubClock) Now() time.Time { return c.now }

func newHandler(now time.Time) (*TimeClockHandler, *stubClock) {
	clock := &stubClock{now: now}
	svc := core.NewTimeClockService(&memRecordRepo{}, noopSummaryRepo{}, noopProducer{}, clock, model.LocationOffice)
	return &TimeClockHandler{Service: svc, Clock: clock, Validate: validator.New()}, clock
}

func authedRequest(method, target, body string, employeeID uuid.UUID) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return r.WithContext(WithEmployeeID(r.Context(), employeeID))
}

func TestTodayStatusEmptyDay(t *testing.T) {
	h, _ := newHandler(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))

	w := httptest.NewRecorder()
	h.TodayStatus(w, authedRequest(http.MethodGet, "/timetrack/status/today", "", uuid.New()))

	require.Equal(t, http.StatusOK, w.Code)
	var resp TodayStatusDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsWorking)
	assert.False(t, resp.IsOnBreak)
	assert.Equal(t, "OFFICE", resp.CurrentLocation)
	assert.Nil(t, resp.LastEntry)
}

func TestClockInThenConflict(t *testing.T) {
	h, _ := newHandler(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	employeeID := uuid.New()

	w := httptest.NewRecorder()
	h.ClockIn(w, authedRequest(http.MethodPost, "/timetrack/clock-in", `{"location": "HOME"}`, employeeID))
	require.Equal(t, http.StatusCreated, w.Code)

	var rec TimeRecordDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "CLOCK_IN", rec.RecordType)
	assert.Equal(t, "HOME", rec.LocationType)
	assert.Equal(t, "2025-06-02T09:00:00", rec.RecordTime)

	w = httptest.NewRecorder()
	h.ClockIn(w, authedRequest(http.MethodPost, "/timetrack/clock-in", "", employeeID))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already clocked in")
}

func TestClockInRejectsUnknownLocation(t *testing.T) {
	h, _ := newHandler(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))

	w := httptest.NewRecorder()
	h.ClockIn(w, authedRequest(http.MethodPost, "/timetrack/clock-in", `{"location": "MOON"}`, uuid.New()))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTodaySummaryWireFormat(t *testing.T) {
	h, clock := newHandler(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	employeeID := uuid.New()

	w := httptest.NewRecorder()
	h.ClockIn(w, authedRequest(http.MethodPost, "/timetrack/clock-in", "", employeeID))
	require.Equal(t, http.StatusCreated, w.Code)

	clock.now = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	w = httptest.NewRecorder()
	h.StartBreak(w, authedRequest(http.MethodPost, "/timetrack/break/start", "", employeeID))
	require.Equal(t, http.StatusCreated, w.Code)

	clock.now = time.Date(2025, 6, 2, 12, 30, 0, 0, time.UTC)
	w = httptest.NewRecorder()
	h.TodaySummary(w, authedRequest(http.MethodGet, "/timetrack/summary/today", "", employeeID))
	require.Equal(t, http.StatusOK, w.Code)

	var resp DailySummaryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2025-06-02", resp.Date)
	require.NotNil(t, resp.ArrivalTime)
	assert.Equal(t, "09:00", *resp.ArrivalTime)
	assert.Nil(t, resp.DepartureTime)
	assert.Equal(t, "03:00", resp.WorkingTime)
	assert.Equal(t, "00:30", resp.BreakTime)
	assert.Equal(t, "-05:00", resp.FlexTime)
	assert.Equal(t, "Break", resp.Status)
	assert.True(t, resp.IsOnBreak)
}

func TestSummaryEmptyDayDefaults(t *testing.T) {
	h, _ := newHandler(time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC))

	w := httptest.NewRecorder()
	h.TodaySummary(w, authedRequest(http.MethodGet, "/timetrack/summary/today", "", uuid.New()))
	require.Equal(t, http.StatusOK, w.Code)

	var resp DailySummaryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.ArrivalTime)
	assert.Nil(t, resp.DepartureTime)
	assert.Equal(t, "00:00", resp.WorkingTime)
	assert.Equal(t, "00:00", resp.BreakTime)
	assert.Equal(t, "-08:00", resp.FlexTime)
	assert.Equal(t, "Not Started", resp.Status)
}

func TestUpdateNotesOwnership(t *testing.T) {
	h, _ := newHandler(time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC))
	owner := uuid.New()

	w := httptest.NewRecorder()
	h.ClockIn(w, authedRequest(http.MethodPost, "/timetrack/clock-in", "", owner))
	require.Equal(t, http.StatusCreated, w.Code)

	var rec TimeRecordDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))

	req := authedRequest(http.MethodPut, "/timetrack/records/"+rec.ID+"/notes", `{"notes": "stolen"}`, uuid.New())
	req = mux.SetURLVars(req, map[string]string{"id": rec.ID})
	w = httptest.NewRecorder()
	h.UpdateNotes(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
