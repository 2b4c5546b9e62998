package review

import "fmt"

// ValidationError reports a bad or missing input field. It is raised
// before any storage access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NotFoundError reports an unknown session identifier. Kept distinct from
// ValidationError so callers can tell malformed input from a session that
// simply does not exist.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("session %s not found", e.ID)
}

// VersionMismatchError reports a stale optimistic plan-version check:
// Expected is the version currently on record, Provided is what the caller
// targeted. A mismatch means a newer plan was submitted concurrently; the
// caller should reload and retry.
type VersionMismatchError struct {
	Expected int
	Provided int
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("plan version mismatch: expected=%d, provided=%d (a newer plan was submitted; reload and retry)",
		e.Expected, e.Provided)
}
