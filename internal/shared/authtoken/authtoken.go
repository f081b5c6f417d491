// Package authtoken signs and verifies the HS256 tokens issued at login.
package authtoken

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var ErrMissingIdentity = errors.New("token does not carry a user, employee and company")

// Claims identify the caller. Type tells access and refresh tokens apart.
type Claims struct {
	UserID     string `json:"user_id"`
	EmployeeID string `json:"employee_id"`
	CompanyID  string `json:"company_id"`
	Role       string `json:"role,omitempty"`
	Type       string `json:"typ,omitempty"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// Sign issues a token valid for ttl from now.
func Sign(claims Claims, now time.Time, ttl time.Duration) (string, error) {
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// Parse verifies raw and returns its claims. Expired tokens fail with an
// error wrapping jwt.ErrTokenExpired.
func Parse(raw string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return secret(), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, err
	}
	if claims.UserID == "" || claims.EmployeeID == "" || claims.CompanyID == "" {
		return nil, ErrMissingIdentity
	}
	return &claims, nil
}
