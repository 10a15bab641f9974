// Package token issues and verifies stateless session tokens.
//
// A token is a signed HS256 JWT asserting an account's email and an expiry.
// There is no server-side revocation: validity is determined purely by
// signature and expiry at verification time.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failure kinds. Callers must be able to tell a malformed or
// tampered token apart from a genuinely expired one.
var (
	// ErrTokenInvalid covers malformed input, signature mismatch and
	// missing claims.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrTokenExpired covers tokens that are structurally and
	// cryptographically valid but past their expiry.
	ErrTokenExpired = errors.New("token has expired")
)

// Default session lifetimes.
const (
	DefaultLifetime  = 24 * time.Hour
	ExtendedLifetime = 7 * 24 * time.Hour // "remember me"
)

// Manager issues and verifies session tokens with a shared secret.
// It is immutable after construction and safe for concurrent use.
type Manager struct {
	secret           []byte
	lifetime         time.Duration
	extendedLifetime time.Duration
}

// NewManager creates a Manager with the provided secret.
// Zero lifetimes fall back to DefaultLifetime and ExtendedLifetime.
func NewManager(secret string, lifetime, extendedLifetime time.Duration) *Manager {
	if lifetime == 0 {
		lifetime = DefaultLifetime
	}
	if extendedLifetime == 0 {
		extendedLifetime = ExtendedLifetime
	}
	return &Manager{
		secret:           []byte(secret),
		lifetime:         lifetime,
		extendedLifetime: extendedLifetime,
	}
}

// Issue creates a signed token embedding email, the issue time and an expiry
// of now plus the extended lifetime when extended is set, the regular
// lifetime otherwise.
func (m *Manager) Issue(email string, extended bool) (string, error) {
	lifetime := m.lifetime
	if extended {
		lifetime = m.extendedLifetime
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   jwt.NewNumericDate(now),
		"exp":   jwt.NewNumericDate(now.Add(lifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token and returns the embedded email.
// It fails with ErrTokenExpired only when the token is otherwise sound;
// malformed or badly signed tokens always report ErrTokenInvalid even if
// their expiry has also passed.
func (m *Manager) Verify(tokenStr string) (string, error) {
	if tokenStr == "" {
		return "", ErrTokenInvalid
	}

	parsed, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is ever issued; reject anything else including "none".
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrTokenSignatureInvalid),
			errors.Is(err, jwt.ErrTokenUnverifiable):
			return "", ErrTokenInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		default:
			return "", ErrTokenInvalid
		}
	}
	if !parsed.Valid {
		return "", ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrTokenInvalid
	}
	return email, nil
}
