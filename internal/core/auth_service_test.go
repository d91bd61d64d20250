package core

import (
	"context"
	"testing"
	"time"

	"github.com/ad-altun/PerTiTrack-sub000/internal/auth"
	"github.com/ad-altun/PerTiTrack-sub000/internal/core/model"
	"github.com/ad-altun/PerTiTrack-sub000/internal/ports/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users []model.User
}

func (f *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	u.CreatedAt = time.Now()
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeEmployeeRepo struct {
	employees []model.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e *model.Employee) error {
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	f.employees = append(f.employees, *e)
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Employee, error) {
	for i := range f.employees {
		if f.employees[i].ID == id {
			e := f.employees[i]
			return &e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*model.Employee, error) {
	for i := range f.employees {
		if f.employees[i].UserID == userID {
			e := f.employees[i]
			return &e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e *model.Employee) error {
	for i := range f.employees {
		if f.employees[i].ID == e.ID {
			f.employees[i] = *e
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range f.employees {
		if f.employees[i].ID == id {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func newAuthService() *AuthService {
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	return NewAuthService(&fakeUserRepo{}, &fakeEmployeeRepo{}, tokens)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	result, err := svc.Register(ctx, "Jane.Doe@Example.com", "s3cret-pass", "Jane", "Doe")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "Jane", result.Employee.FirstName)
	assert.True(t, result.Employee.IsActive)
	assert.NotEmpty(t, result.Employee.EmployeeNumber)

	// Email lookup is case-insensitive because registration lowercases.
	login, err := svc.Login(ctx, "jane.doe@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, result.Employee.ID, login.Employee.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "jane@example.com", "s3cret-pass", "Jane", "Doe")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "jane@example.com", "other-pass", "Janet", "Doe")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Login(ctx, "unknown@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Register(ctx, "jane@example.com", "s3cret-pass", "Jane", "Doe")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "jane@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
