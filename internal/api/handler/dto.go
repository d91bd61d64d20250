package handler

import (
	"github.com/ad-altun/PerTiTrack-sub000/internal/core"
	"github.com/ad-altun/PerTiTrack-sub000/internal/core/model"
	"github.com/ad-altun/PerTiTrack-sub000/internal/core/timeclock"
)

// TimeRecordDTO is the wire form of a punch.
type TimeRecordDTO struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	RecordType   string `json:"recordType"`
	RecordTime   string `json:"recordTime"`
	LocationType string `json:"locationType,omitempty"`
	Notes        string `json:"notes,omitempty"`
	IsManual     bool   `json:"isManual"`
	Approved     bool   `json:"approved"`
}

func toRecordDTO(rec *model.TimeRecord) *TimeRecordDTO {
	if rec == nil {
		return nil
	}
	return &TimeRecordDTO{
		ID:           rec.ID.String(),
		EmployeeID:   rec.EmployeeID.String(),
		RecordType:   string(rec.RecordType),
		RecordTime:   rec.RecordTime.Format(dateTimeFormat),
		LocationType: string(rec.LocationType),
		Notes:        rec.Notes,
		IsManual:     rec.IsManual,
		Approved:     rec.Approved,
	}
}

func toRecordDTOs(records []model.TimeRecord) []TimeRecordDTO {
	out := make([]TimeRecordDTO, 0, len(records))
	for i := range records {
		out = append(out, *toRecordDTO(&records[i]))
	}
	return out
}

// TodayStatusDTO is the quick-status wire form.
type TodayStatusDTO struct {
	IsWorking       bool           `json:"isWorking"`
	IsOnBreak       bool           `json:"isOnBreak"`
	CurrentLocation string         `json:"currentLocation"`
	LastEntry       *TimeRecordDTO `json:"lastEntry"`
}

func toStatusDTO(st *core.TodayStatus) TodayStatusDTO {
	return TodayStatusDTO{
		IsWorking:       st.IsWorking,
		IsOnBreak:       st.IsOnBreak,
		CurrentLocation: string(st.CurrentLocation),
		LastEntry:       toRecordDTO(st.LastEntry),
	}
}

// DailySummaryDTO is the summary wire form; durations are zero-padded HH:MM,
// flex time carries an explicit sign.
type DailySummaryDTO struct {
	Date          string  `json:"date"`
	ArrivalTime   *string `json:"arrivalTime"`
	DepartureTime *string `json:"departureTime"`
	WorkingTime   string  `json:"workingTime"`
	BreakTime     string  `json:"breakTime"`
	FlexTime      string  `json:"flexTime"`
	Status        string  `json:"status"`
	IsWorking     bool    `json:"isWorking"`
	IsOnBreak     bool    `json:"isOnBreak"`
}

func toSummaryDTO(date string, s *timeclock.DailySummary) DailySummaryDTO {
	dto := DailySummaryDTO{
		Date:        date,
		WorkingTime: timeclock.FormatDuration(s.WorkingTime),
		BreakTime:   timeclock.FormatDuration(s.BreakTime),
		FlexTime:    timeclock.FormatFlexTime(s.FlexTime),
		Status:      string(s.Status),
		IsWorking:   s.IsWorking,
		IsOnBreak:   s.IsOnBreak,
	}
	if s.ArrivalTime != nil {
		v := s.ArrivalTime.Format(clockFormat)
		dto.ArrivalTime = &v
	}
	if s.DepartureTime != nil {
		v := s.DepartureTime.Format(clockFormat)
		dto.DepartureTime = &v
	}
	return dto
}

// EmployeeDTO is the wire form of a personnel record.
type EmployeeDTO struct {
	ID             string `json:"id"`
	UserID         string `json:"userId"`
	EmployeeNumber string `json:"employeeNumber"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	IsActive       bool   `json:"isActive"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

func toEmployeeDTO(e *model.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:             e.ID.String(),
		UserID:         e.UserID.String(),
		EmployeeNumber: e.EmployeeNumber,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		IsActive:       e.IsActive,
		CreatedAt:      e.CreatedAt.Format(dateTimeFormat),
		UpdatedAt:      e.UpdatedAt.Format(dateTimeFormat),
	}
}
