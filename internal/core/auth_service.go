package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ad-altun/PerTiTrack-sub000/internal/auth"
	"github.com/ad-altun/PerTiTrack-sub000/internal/core/model"
	"github.com/ad-altun/PerTiTrack-sub000/internal/ports/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles account registration and login.
type AuthService struct {
	users     repository.UserRepository
	employees repository.EmployeeRepository
	tokens    *auth.TokenManager
}

func NewAuthService(users repository.UserRepository, employees repository.EmployeeRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, employees: employees, tokens: tokens}
}

// LoginResult is what a successful register/login hands back to the API.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Employee  *model.Employee
}

// Register creates a user account and its linked employee record, then logs
// the new account in.
func (s *AuthService) Register(ctx context.Context, email, password, firstName, lastName string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	employee := &model.Employee{
		ID:             uuid.New(),
		UserID:         user.ID,
		EmployeeNumber: employeeNumber(user.ID),
		FirstName:      firstName,
		LastName:       lastName,
		IsActive:       true,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee record: %w", err)
	}

	return s.issue(user, employee)
}

// Login verifies credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	employee, err := s.employees.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee record: %w", err)
	}

	return s.issue(user, employee)
}

func (s *AuthService) issue(user *model.User, employee *model.Employee) (*LoginResult, error) {
	token, expiresAt, err := s.tokens.Issue(user.ID, employee.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Employee: employee}, nil
}

// employeeNumber derives a stable short personnel number from the account ID.
func employeeNumber(userID uuid.UUID) string {
	return "EMP-" + strings.ToUpper(userID.String()[:8])
}
