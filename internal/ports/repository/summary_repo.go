package repository

import (
	"context"
	"database/sql"

	"github.com/ad-altun/PerTiTrack-sub000/internal/core/model"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SummaryRepo is the concrete implementation for a PostgreSQL database.
type SummaryRepo struct {
	DB *sql.DB
}

// NewSummaryRepo create new instance
func NewSummaryRepo(db *sql.DB) SummaryRepository {
	return &SummaryRepo{DB: db}
}

// Upsert writes the closed-day snapshot. A later clock-out on the same day
// overwrites the totals and resets both jobs to pending so they run again
// with the final numbers.
func (r *SummaryRepo) Upsert(ctx context.Context, s *model.WorkDaySummary) (int64, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.employee_id", s.EmployeeID.String()))

	query := `INSERT INTO work_day_summaries
                (employee_id, work_date, working_minutes, break_minutes, flex_minutes,
                 notify_status, notify_retry_count, export_status, export_retry_count)
              VALUES ($1, $2, $3, $4, $5, $6, 0, $7, 0)
              ON CONFLICT (employee_id, work_date) DO UPDATE
              SET working_minutes = EXCLUDED.working_minutes,
                  break_minutes = EXCLUDED.break_minutes,
                  flex_minutes = EXCLUDED.flex_minutes,
                  notify_status = EXCLUDED.notify_status,
                  notify_retry_count = 0,
                  export_status = EXCLUDED.export_status,
                  export_retry_count = 0
              RETURNING id`

	var id int64
	err := r.DB.QueryRowContext(ctx, query,
		s.EmployeeID, s.WorkDate, s.WorkingMinutes, s.BreakMinutes, s.FlexMinutes,
		model.StatusNotifyPending, model.StatusExportPending,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	s.ID = id
	return id, nil
}

// GetByID fetches a complete closed-day snapshot.
func (r *SummaryRepo) GetByID(ctx context.Context, id int64) (*model.WorkDaySummary, error) {
	query := `SELECT id, employee_id, work_date, working_minutes, break_minutes, flex_minutes,
                     notify_status, notify_retry_count, export_status, export_retry_count
              FROM work_day_summaries WHERE id = $1`

	s := &model.WorkDaySummary{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.EmployeeID, &s.WorkDate, &s.WorkingMinutes, &s.BreakMinutes, &s.FlexMinutes,
		&s.NotifyStatus, &s.NotifyRetryCount, &s.ExportStatus, &s.ExportRetryCount,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// UpdateNotifyStatus updates the status and retry count of the email job.
func (r *SummaryRepo) UpdateNotifyStatus(ctx context.Context, id int64, status model.NotifyStatus, retryCount int) error {
	query := `UPDATE work_day_summaries SET notify_status = $1, notify_retry_count = $2 WHERE id = $3`
	_, err := r.DB.ExecContext(ctx, query, status, retryCount, id)
	return err
}

// UpdateExportStatus updates the status and retry count of the payroll-export job.
func (r *SummaryRepo) UpdateExportStatus(ctx context.Context, id int64, status model.ExportStatus, retryCount int) error {
	query := `UPDATE work_day_summaries SET export_status = $1, export_retry_count = $2 WHERE id = $3`
	_, err := r.DB.ExecContext(ctx, query, status, retryCount, id)
	return err
}
