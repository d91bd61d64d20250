package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/ad-altun/PerTiTrack-sub000/internal/core/model"
	"github.com/ad-altun/PerTiTrack-sub000/internal/core/timeclock"
	"github.com/ad-altun/PerTiTrack-sub000/internal/ports/messaging"
	"github.com/ad-altun/PerTiTrack-sub000/internal/ports/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// TodayStatus is the quick-status projection served by the status endpoint.
type TodayStatus struct {
	IsWorking       bool               `json:"isWorking"`
	IsOnBreak       bool               `json:"isOnBreak"`
	CurrentLocation model.LocationType `json:"currentLocation"`
	LastEntry       *model.TimeRecord  `json:"lastEntry"`
}

// TimeClockService owns the punch write path and the today read path. Every
// write is gated on the same classification the read path serves, so a state
// the engine cannot attribute time to is rejected before it is stored.
type TimeClockService struct {
	records   repository.TimeRecordRepository
	summaries repository.SummaryRepository
	producer  messaging.Producer
	clock     Clock

	// fallbackLocation is reported when the day has no entries yet.
	fallbackLocation model.LocationType
}

// NewTimeClockService wires the punch service with its event store, the
// closed-day snapshot store and the queue producer.
func NewTimeClockService(
	records repository.TimeRecordRepository,
	summaries repository.SummaryRepository,
	producer messaging.Producer,
	clock Clock,
	fallbackLocation model.LocationType,
) *TimeClockService {
	if fallbackLocation == "" {
		fallbackLocation = model.LocationOffice
	}
	return &TimeClockService{
		records:          records,
		summaries:        summaries,
		producer:         producer,
		clock:            clock,
		fallbackLocation: fallbackLocation,
	}
}

// todayRecords loads and orders the employee's punches for the current day.
func (s *TimeClockService) todayRecords(ctx context.Context, employeeID uuid.UUID) ([]model.TimeRecord, error) {
	records, err := s.records.ListForEmployeeOnDate(ctx, employeeID, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to load today's records: %w", err)
	}
	timeclock.SortChronological(records)
	return records, nil
}

// ClockIn starts a new work day segment for the employee.
func (s *TimeClockService) ClockIn(ctx context.Context, employeeID uuid.UUID, location model.LocationType, notes string) (*model.TimeRecord, error) {
	records, err := s.todayRecords(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	status := timeclock.ClassifyStatus(records)
	if status.IsWorking || status.IsOnBreak {
		return nil, ErrAlreadyClockedIn
	}

	if location == "" {
		location = s.fallbackLocation
	}
	return s.append(ctx, employeeID, model.RecordClockIn, location, notes)
}

// ClockOut closes the employee's day, snapshots the summary and fans it out
// to the notify and payroll-export queues.
func (s *TimeClockService) ClockOut(ctx context.Context, employeeID uuid.UUID, notes string) (*model.TimeRecord, error) {
	records, err := s.todayRecords(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	status := timeclock.ClassifyStatus(records)
	if !status.IsWorking && !status.IsOnBreak {
		return nil, ErrNotClockedIn
	}

	rec, err := s.append(ctx, employeeID, model.RecordClockOut, s.currentLocation(records), notes)
	if err != nil {
		return nil, err
	}

	records = append(records, *rec)
	summary := timeclock.Summarize(records, rec.RecordTime)

	snapshot := &model.WorkDaySummary{
		EmployeeID:     employeeID,
		WorkDate:       dateOnly(rec.RecordTime),
		WorkingMinutes: int(summary.WorkingTime.Minutes()),
		BreakMinutes:   int(summary.BreakTime.Minutes()),
		FlexMinutes:    int(summary.FlexTime.Minutes()),
	}
	summaryID, err := s.summaries.Upsert(ctx, snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot closed day: %w", err)
	}

	event := messaging.DayClosedEvent{
		SummaryID:      summaryID,
		EmployeeID:     employeeID.String(),
		WorkDate:       snapshot.WorkDate.Format("2006-01-02"),
		WorkingMinutes: snapshot.WorkingMinutes,
		BreakMinutes:   snapshot.BreakMinutes,
		FlexMinutes:    snapshot.FlexMinutes,
		ClockOutTime:   rec.RecordTime,
	}

	if err := s.producer.PublishNotify(ctx, event); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("Failed to publish day-closed event to notify queue")
	}
	if err := s.producer.PublishExport(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to publish day-closed event to export queue: %w", err)
	}

	return rec, nil
}

// StartBreak pauses the current work session.
func (s *TimeClockService) StartBreak(ctx context.Context, employeeID uuid.UUID, notes string) (*model.TimeRecord, error) {
	records, err := s.todayRecords(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	status := timeclock.ClassifyStatus(records)
	if status.IsOnBreak {
		return nil, ErrAlreadyOnBreak
	}
	if !status.IsWorking {
		return nil, ErrNotClockedIn
	}

	return s.append(ctx, employeeID, model.RecordBreakStart, s.currentLocation(records), notes)
}

// EndBreak resumes work after a break.
func (s *TimeClockService) EndBreak(ctx context.Context, employeeID uuid.UUID, notes string) (*model.TimeRecord, error) {
	records, err := s.todayRecords(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if !timeclock.ClassifyStatus(records).IsOnBreak {
		return nil, ErrNotOnBreak
	}

	return s.append(ctx, employeeID, model.RecordBreakEnd, s.currentLocation(records), notes)
}

// TodayStatus reports the employee's live state plus the chronologically last
// punch of the day.
func (s *TimeClockService) TodayStatus(ctx context.Context, employeeID uuid.UUID) (*TodayStatus, error) {
	records, err := s.todayRecords(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	status := timeclock.ClassifyStatus(records)

	var lastEntry *model.TimeRecord
	if len(records) > 0 {
		lastEntry = &records[len(records)-1]
	}

	return &TodayStatus{
		IsWorking:       status.IsWorking,
		IsOnBreak:       status.IsOnBreak,
		CurrentLocation: s.currentLocation(records),
		LastEntry:       lastEntry,
	}, nil
}

// TodaySummary derives the live daily summary from the full event list.
func (s *TimeClockService) TodaySummary(ctx context.Context, employeeID uuid.UUID) (*timeclock.DailySummary, error) {
	records, err := s.todayRecords(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	summary := timeclock.Summarize(records, s.clock.Now())
	return &summary, nil
}

// TodayRecords returns the raw, ordered punch list for the current day.
func (s *TimeClockService) TodayRecords(ctx context.Context, employeeID uuid.UUID) ([]model.TimeRecord, error) {
	return s.todayRecords(ctx, employeeID)
}

// UpdateRecordNotes edits the free text of one of the employee's own punches.
func (s *TimeClockService) UpdateRecordNotes(ctx context.Context, employeeID, recordID uuid.UUID, notes string) (*model.TimeRecord, error) {
	rec, err := s.records.GetByID(ctx, recordID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load record: %w", err)
	}
	if rec.EmployeeID != employeeID {
		return nil, ErrRecordNotOwned
	}

	if err := s.records.UpdateNotes(ctx, recordID, notes); err != nil {
		return nil, fmt.Errorf("failed to update notes: %w", err)
	}
	rec.Notes = notes
	return rec, nil
}

// append stores a new punch stamped with the injected clock.
func (s *TimeClockService) append(ctx context.Context, employeeID uuid.UUID, recordType model.RecordType, location model.LocationType, notes string) (*model.TimeRecord, error) {
	rec := &model.TimeRecord{
		ID:           uuid.New(),
		EmployeeID:   employeeID,
		RecordType:   recordType,
		RecordTime:   s.clock.Now(),
		LocationType: location,
		Notes:        notes,
	}
	if err := s.records.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to store %s record: %w", recordType, err)
	}
	return rec, nil
}

// currentLocation is the location of the last punch, or the fallback when
// the day has none.
func (s *TimeClockService) currentLocation(records []model.TimeRecord) model.LocationType {
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].LocationType != "" {
			return records[i].LocationType
		}
	}
	return s.fallbackLocation
}
