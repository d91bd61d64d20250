package repository

import (
	"context"
	"database/sql"

	"github.com/ad-altun/PerTiTrack-sub000/internal/core/model"
	"github.com/google/uuid"
)

// UserRepo is the concrete implementation for a PostgreSQL database.
type UserRepo struct {
	DB *sql.DB
}

// NewUserRepo create new instance
func NewUserRepo(db *sql.DB) UserRepository {
	return &UserRepo{DB: db}
}

func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	query := `INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)
              RETURNING created_at`

	return r.DB.QueryRowContext(ctx, query, u.ID, u.Email, u.PasswordHash).Scan(&u.CreatedAt)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, email, password_hash, created_at FROM users WHERE email = $1`

	u := &model.User{}
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `SELECT id, email, password_hash, created_at FROM users WHERE id = $1`

	u := &model.User{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
