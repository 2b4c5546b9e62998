package session

import (
	"strings"

	"github.com/google/uuid"
)

// SessionID is a value object wrapping the canonical (lowercase) form of a
// session identifier. Every identifier that reaches the storage layer must
// have passed through this type first; it is the single gate against
// path-traversal and malformed-ID input.
type SessionID struct {
	value string
}

// NewSessionID generates a fresh random (version 4) session ID.
func NewSessionID() SessionID {
	return SessionID{value: uuid.New().String()}
}

// NormalizeID lower-cases a raw identifier without validating it.
// Normalization is idempotent.
func NormalizeID(raw string) string {
	return strings.ToLower(raw)
}

// ParseSessionID normalizes raw input and validates it as a UUID v4.
// Input is case-insensitive; the stored value is always lowercase.
func ParseSessionID(raw string) (SessionID, bool) {
	canonical := NormalizeID(raw)
	if !IsValidID(canonical) {
		return SessionID{}, false
	}
	return SessionID{value: canonical}, true
}

// IsValidID reports whether canonical is a well-formed lowercase UUID v4.
// Anything containing a path separator, a parent-directory reference, or
// deviating from the 8-4-4-4-12 hex shape is rejected. uuid.Parse alone is
// not enough: it also accepts braced, URN-prefixed, and 32-digit forms, and
// any version nibble.
func IsValidID(canonical string) bool {
	if len(canonical) != 36 {
		return false
	}
	if strings.ContainsAny(canonical, "/\\") || strings.Contains(canonical, "..") {
		return false
	}
	u, err := uuid.Parse(canonical)
	if err != nil {
		return false
	}
	if u.Version() != 4 {
		return false
	}
	if u.Variant() != uuid.RFC4122 {
		return false
	}
	// uuid.Parse is case-insensitive; canonical form must already be lower.
	return canonical == u.String()
}

// String returns the canonical string representation.
func (id SessionID) String() string {
	return id.value
}

// Equals checks if two session IDs are equal.
func (id SessionID) Equals(other SessionID) bool {
	return id.value == other.value
}
