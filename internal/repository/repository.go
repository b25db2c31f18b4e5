// Package repository provides in-memory data access for the dashboard.
// Storage is process-lifetime only: identifiers increase monotonically and
// are never reused, and nothing survives a restart.
package repository

import "github.com/pkg/errors"

// Sentinel errors shared by the repositories.
var (
	ErrNotFound         = errors.New("record not found")
	ErrAlreadyExists    = errors.New("record already exists")
	ErrAlreadyNotified  = errors.New("signal already notified")
	ErrInvalidReference = errors.New("invalid record reference")
)
