// Package common defines shared sentinel errors and small helpers used across
// Launchpad components. Callers should use errors.Is to match these values.
package common

import "errors"

// Token errors (malformed or expired session token).
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
