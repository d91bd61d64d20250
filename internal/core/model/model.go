package model

import (
	"time"

	"github.com/google/uuid"
)

// RecordType is the closed set of punch kinds an employee can register.
type RecordType string

const (
	RecordClockIn    RecordType = "CLOCK_IN"
	RecordClockOut   RecordType = "CLOCK_OUT"
	RecordBreakStart RecordType = "BREAK_START"
	RecordBreakEnd   RecordType = "BREAK_END"
)

// Valid reports whether t is one of the four known punch kinds.
func (t RecordType) Valid() bool {
	switch t {
	case RecordClockIn, RecordClockOut, RecordBreakStart, RecordBreakEnd:
		return true
	}
	return false
}

// LocationType describes where a punch was registered from.
type LocationType string

const (
	LocationOffice   LocationType = "OFFICE"
	LocationHome     LocationType = "HOME"
	LocationBusiness LocationType = "BUSINESS_TRIP"
	LocationOther    LocationType = "OTHER"
)

// TimeRecord is a single immutable punch. Records are only ever appended;
// the free-text notes are the one field that may be edited afterwards.
type TimeRecord struct {
	ID           uuid.UUID    `json:"id"`
	EmployeeID   uuid.UUID    `json:"employeeId"`
	RecordType   RecordType   `json:"recordType"`
	RecordTime   time.Time    `json:"recordTime"`
	LocationType LocationType `json:"locationType,omitempty"`
	Notes        string       `json:"notes,omitempty"`
	IsManual     bool         `json:"isManual"`
	Approved     bool         `json:"approved"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// User is an authentication account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Employee is the personnel record a user account is linked to.
type Employee struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	EmployeeNumber string    `json:"employeeNumber"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NotifyStatus tracks the asynchronous summary-email job for a closed day.
type NotifyStatus string

const (
	StatusNotifyPending    NotifyStatus = "PENDING"
	StatusNotifyProcessing NotifyStatus = "PROCESSING"
	StatusNotifyCompleted  NotifyStatus = "COMPLETED"
	StatusNotifyFailed     NotifyStatus = "FAILED"
)

// ExportStatus tracks the asynchronous payroll-export job for a closed day.
type ExportStatus string

const (
	StatusExportPending    ExportStatus = "PENDING"
	StatusExportProcessing ExportStatus = "PROCESSING"
	StatusExportCompleted  ExportStatus = "COMPLETED"
	StatusExportFailed     ExportStatus = "FAILED"
)

// WorkDaySummary is the persisted snapshot of a day that was closed with a
// clock-out. It exists so the async notify/export jobs have a stable record
// to mark progress and retries on; the live summary endpoints always derive
// from the time records instead.
type WorkDaySummary struct {
	ID               int64        `json:"id"`
	EmployeeID       uuid.UUID    `json:"employeeId"`
	WorkDate         time.Time    `json:"workDate"`
	WorkingMinutes   int          `json:"workingMinutes"`
	BreakMinutes     int          `json:"breakMinutes"`
	FlexMinutes      int          `json:"flexMinutes"`
	NotifyStatus     NotifyStatus `json:"notifyStatus"`
	NotifyRetryCount int          `json:"notifyRetryCount"`
	ExportStatus     ExportStatus `json:"exportStatus"`
	ExportRetryCount int          `json:"exportRetryCount"`
}
