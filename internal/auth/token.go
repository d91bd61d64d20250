// Package auth issues and validates the HS256 bearer tokens the API uses.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the authenticated identity inside a signed token.
type Claims struct {
	UserID     string `json:"uid"`
	EmployeeID string `json:"eid"`
	Email      string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager signs and parses identity tokens with a shared HMAC secret.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret []byte, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: secret, ttl: ttl}
}

// Issue creates a signed token for the given user/employee pair and returns
// it together with its expiry.
func (m *TokenManager) Issue(userID, employeeID uuid.UUID, email string) (string, time.Time, error) {
	expiresAt := time.Now().Add(m.ttl)
	claims := Claims{
		UserID:     userID.String(),
		EmployeeID: employeeID.String(),
		Email:      email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "pertitrack",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse validates a token string and returns its claims.
func (m *TokenManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the signing method is HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// EmployeeUUID decodes the employee ID claim.
func (c *Claims) EmployeeUUID() (uuid.UUID, error) {
	return uuid.Parse(c.EmployeeID)
}
