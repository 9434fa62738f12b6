package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired is returned by CheckTokenFreshness for a token whose exp
// claim lies in the past.
var ErrTokenExpired = errors.New("token is expired")

// CheckTokenFreshness inspects the exp claim of a cached backend bearer
// token without verifying its signature — only the backend holds the
// signing key, and the goal here is merely to avoid replaying a session
// the backend is guaranteed to reject.
//
// Returns the expiry instant, or [ErrTokenExpired] when it has passed, or
// a parse error for malformed tokens. A token without an exp claim is
// treated as malformed.
func CheckTokenFreshness(token string, now time.Time) (time.Time, error) {
	parser := jwt.NewParser()

	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, errors.New("token has no expiry claim")
	}

	if !claims.ExpiresAt.Time.After(now) {
		return claims.ExpiresAt.Time, ErrTokenExpired
	}

	return claims.ExpiresAt.Time, nil
}
