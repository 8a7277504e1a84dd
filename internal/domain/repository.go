package domain

import (
	"context"
	"errors"
)

// Store level sentinel errors. The service layer translates these into
// API errors or retries; they never reach the transport boundary as is.
var (
	ErrBoxNotFound = errors.New("box not found")
	ErrCodeTaken   = errors.New("box code already taken")
)

// BoxRepository persists boxes keyed by their public code.
type BoxRepository interface {
	// Insert stores box under its code. Returns ErrCodeTaken when the
	// code is already in use.
	Insert(ctx context.Context, box *Box) error
	// FindByCode returns the box stored under code, or ErrBoxNotFound.
	FindByCode(ctx context.Context, code string) (*Box, error)
}
