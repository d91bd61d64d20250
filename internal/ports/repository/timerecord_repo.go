package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ad-altun/PerTiTrack-sub000/internal/core/model"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// TimeRecordRepo is the concrete implementation for a PostgreSQL database.
type TimeRecordRepo struct {
	DB *sql.DB
}

// NewTimeRecordRepo create new instance
func NewTimeRecordRepo(db *sql.DB) TimeRecordRepository {
	return &TimeRecordRepo{DB: db}
}

// Create inserts a new punch row.
func (r *TimeRecordRepo) Create(ctx context.Context, rec *model.TimeRecord) error {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.employee_id", rec.EmployeeID.String()))

	query := `INSERT INTO time_records (id, employee_id, record_type, record_time, location_type, notes, is_manual, approved)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
              RETURNING created_at`

	return r.DB.QueryRowContext(ctx, query,
		rec.ID, rec.EmployeeID, rec.RecordType, rec.RecordTime,
		rec.LocationType, rec.Notes, rec.IsManual, rec.Approved,
	).Scan(&rec.CreatedAt)
}

// ListForEmployeeOnDate fetches one employee's punches for one calendar day.
// The created_at and id columns break ties between equal record times, so
// the engine sees a stable insertion order.
func (r *TimeRecordRepo) ListForEmployeeOnDate(ctx context.Context, employeeID uuid.UUID, day time.Time) ([]model.TimeRecord, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("app.employee_id", employeeID.String()))

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	query := `SELECT id, employee_id, record_type, record_time, location_type, notes, is_manual, approved, created_at
              FROM time_records
              WHERE employee_id = $1 AND record_time >= $2 AND record_time < $3
              ORDER BY record_time, created_at, id`

	rows, err := r.DB.QueryContext(ctx, query, employeeID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.TimeRecord
	for rows.Next() {
		var rec model.TimeRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.RecordType, &rec.RecordTime,
			&rec.LocationType, &rec.Notes, &rec.IsManual, &rec.Approved, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetByID fetches a single punch row.
func (r *TimeRecordRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.TimeRecord, error) {
	query := `SELECT id, employee_id, record_type, record_time, location_type, notes, is_manual, approved, created_at
              FROM time_records WHERE id = $1`

	rec := &model.TimeRecord{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.RecordType, &rec.RecordTime,
		&rec.LocationType, &rec.Notes, &rec.IsManual, &rec.Approved, &rec.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// UpdateNotes changes the free text of an existing punch. Everything else on
// a punch row is immutable.
func (r *TimeRecordRepo) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) error {
	query := `UPDATE time_records SET notes = $1 WHERE id = $2`

	res, err := r.DB.ExecContext(ctx, query, notes, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
