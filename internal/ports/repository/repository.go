package repository

import (
	"context"
	"time"

	"github.com/ad-altun/PerTiTrack-sub000/internal/core/model"
	"github.com/google/uuid"
)

// TimeRecordRepository is the event source for the time-clock engine.
type TimeRecordRepository interface {
	Create(ctx context.Context, rec *model.TimeRecord) error
	// ListForEmployeeOnDate returns all punches for one employee on one
	// calendar day, ordered by record_time, created_at, id. The secondary
	// keys keep the ordering of equal timestamps stable.
	ListForEmployeeOnDate(ctx context.Context, employeeID uuid.UUID, day time.Time) ([]model.TimeRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.TimeRecord, error)
	UpdateNotes(ctx context.Context, id uuid.UUID, notes string) error
}

// EmployeeRepository stores personnel records.
type EmployeeRepository interface {
	Create(ctx context.Context, e *model.Employee) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Employee, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	Update(ctx context.Context, e *model.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository stores authentication accounts.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// SummaryRepository stores the closed-day snapshots the async notify and
// payroll-export jobs track their progress on.
type SummaryRepository interface {
	Upsert(ctx context.Context, s *model.WorkDaySummary) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.WorkDaySummary, error)
	UpdateNotifyStatus(ctx context.Context, id int64, status model.NotifyStatus, retryCount int) error
	UpdateExportStatus(ctx context.Context, id int64, status model.ExportStatus, retryCount int) error
}
