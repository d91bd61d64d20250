package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/ad-altun/PerTiTrack-sub000/internal/core/model"
	"github.com/ad-altun/PerTiTrack-sub000/internal/ports/repository"
	"github.com/google/uuid"
)

// EmployeeService wraps the personnel-record CRUD for the API layer.
type EmployeeService struct {
	employees repository.EmployeeRepository
}

func NewEmployeeService(employees repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employees: employees}
}

func (s *EmployeeService) List(ctx context.Context) ([]model.Employee, error) {
	return s.employees.List(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	e, err := s.employees.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return e, err
}

func (s *EmployeeService) Create(ctx context.Context, userID uuid.UUID, employeeNumber, firstName, lastName string) (*model.Employee, error) {
	e := &model.Employee{
		ID:             uuid.New(),
		UserID:         userID,
		EmployeeNumber: employeeNumber,
		FirstName:      firstName,
		LastName:       lastName,
		IsActive:       true,
	}
	if err := s.employees.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return e, nil
}

func (s *EmployeeService) Update(ctx context.Context, id uuid.UUID, employeeNumber, firstName, lastName string, isActive bool) (*model.Employee, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	e.EmployeeNumber = employeeNumber
	e.FirstName = firstName
	e.LastName = lastName
	e.IsActive = isActive

	if err := s.employees.Update(ctx, e); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return e, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.employees.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
