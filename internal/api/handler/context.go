package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const employeeIDKey contextKey = "employeeID"

// WithEmployeeID stores the authenticated employee on the request context.
// The auth middleware is the only writer.
func WithEmployeeID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, employeeIDKey, id)
}

// EmployeeID reads the authenticated employee from the request context. A
// zero UUID means the middleware never ran; routes behind it never see that.
func EmployeeID(r *http.Request) uuid.UUID {
	if id, ok := r.Context().Value(employeeIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
