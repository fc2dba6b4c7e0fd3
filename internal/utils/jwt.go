package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned when a bearer token is not a parseable JWT.
// Opaque tokens are legal; callers treat this as "expiry unknown".
var ErrNotJWT = errors.New("token is not a jwt")

// TokenExpiry reads the "exp" claim of a bearer token WITHOUT verifying its
// signature. The result is informational only and must never be used to
// grant or deny access. A token without an "exp" claim yields (nil, nil).
func TokenExpiry(tokenString string) (*time.Time, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, ErrNotJWT
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotJWT, err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("error reading exp claim: %w", err)
	}
	if exp == nil {
		return nil, nil
	}

	t := exp.Time.UTC()
	return &t, nil
}
