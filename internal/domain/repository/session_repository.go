// Package repository defines the persistence contracts the domain depends
// on. Implementations live under internal/infra.
package repository

import (
	"errors"

	model "github.com/planvet/planvet/internal/domain/model/session"
)

// ErrNotFound is returned when no readable session exists under an
// identifier. Implementations must not distinguish malformed identifiers
// and corrupt records from absence on the read path.
var ErrNotFound = errors.New("session not found")

// SessionRepository persists session records.
//
// Save and Remove are the only write paths and must fail loudly on I/O
// errors. Load and List degrade corrupt or tampered records to absence and
// report them through a diagnostic channel instead.
type SessionRepository interface {
	// Save re-stamps updatedAt and atomically replaces the stored record.
	Save(s *model.Session) error
	// Load returns the session for a case-insensitive identifier, or
	// ErrNotFound.
	Load(id string) (*model.Session, error)
	// Remove deletes the record if present and reports whether it did.
	Remove(id string) (bool, error)
	// List returns every valid session record, skipping corrupt ones.
	List() ([]*model.Session, error)
}
