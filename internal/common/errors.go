// Package common defines shared constants and sentinel errors used across
// WomShop components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")

	// Token lifecycle errors (logged only, never acted on automatically).
	ErrTokenExpired = errors.New("token expired")
)
