// Package file implements durable, crash-safe persistence of session
// records: one JSON document per session under a configurable root
// directory, written atomically and schema-validated on every read.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/afero"

	model "github.com/planvet/planvet/internal/domain/model/session"
	"github.com/planvet/planvet/internal/domain/repository"
	validator "github.com/planvet/planvet/internal/validator/session"
)

const (
	recordExt       = ".json"
	tmpPrefix       = ".tmp-"
	diagnosticsName = "diagnostics.log"
)

// ErrNotFound aliases the domain-level sentinel so callers of this package
// can match on either.
var ErrNotFound = repository.ErrNotFound

// Logger is the diagnostic channel for the read path. Corrupt records are
// skipped, not surfaced, so the log is the only place an operator learns of
// them.
type Logger interface {
	Warnf(format string, args ...interface{})
}

// SessionRepository stores one session record per file under root.
// It exclusively owns the on-disk representation; sessions handed to
// callers are independent copies.
type SessionRepository struct {
	fs     afero.Fs
	root   string
	logger Logger
}

var _ repository.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository creates a repository rooted at root. logger may be
// nil to drop read-path diagnostics.
func NewSessionRepository(fs afero.Fs, root string, logger Logger) *SessionRepository {
	return &SessionRepository{fs: fs, root: root, logger: logger}
}

// Root returns the storage root directory.
func (r *SessionRepository) Root() string {
	return r.root
}

// Save re-stamps updatedAt, serializes the full record, and replaces the
// session file atomically. An invalid session ID is a programming error and
// fails hard; so do filesystem write failures, which must never be mistaken
// for success.
func (r *SessionRepository) Save(s *model.Session) error {
	id, ok := model.ParseSessionID(s.ID)
	if !ok {
		return fmt.Errorf("invalid session id %q", s.ID)
	}
	s.ID = id.String()
	s.UpdatedAt = time.Now().UTC()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", s.ID, err)
	}
	data = append(data, '\n')

	path, err := r.recordPath(id.String())
	if err != nil {
		return err
	}
	if err := WriteFileAtomic(r.fs, path, data); err != nil {
		return fmt.Errorf("failed to write session %s: %w", s.ID, err)
	}
	return nil
}

// Load reads, parses, and validates the record for the given identifier.
// The identifier is case-insensitive. Every failure on this path (invalid
// id, missing file, unparseable JSON, schema violation, id/filename
// mismatch) degrades to ErrNotFound; corruption is reported through the
// diagnostic channel, never as a crash.
func (r *SessionRepository) Load(rawID string) (*model.Session, error) {
	id, ok := model.ParseSessionID(rawID)
	if !ok {
		return nil, ErrNotFound
	}
	path, err := r.recordPath(id.String())
	if err != nil {
		return nil, ErrNotFound
	}

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.diagnose(id.String(), fmt.Sprintf("read failed: %v", err))
		}
		return nil, ErrNotFound
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		r.diagnose(id.String(), fmt.Sprintf("invalid JSON: %v", err))
		return nil, ErrNotFound
	}

	if issues := validator.Validate(raw, id.String()); len(issues) > 0 {
		reasons := make([]string, len(issues))
		for i, issue := range issues {
			reasons[i] = issue.String()
		}
		r.diagnose(id.String(), "schema violation: "+strings.Join(reasons, "; "))
		return nil, ErrNotFound
	}

	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		r.diagnose(id.String(), fmt.Sprintf("decode failed: %v", err))
		return nil, ErrNotFound
	}
	return &sess, nil
}

// Remove deletes the session file if present and reports whether a deletion
// occurred. An invalid or unknown identifier is not an error.
func (r *SessionRepository) Remove(rawID string) (bool, error) {
	id, ok := model.ParseSessionID(rawID)
	if !ok {
		return false, nil
	}
	path, err := r.recordPath(id.String())
	if err != nil {
		return false, nil
	}
	if _, err := r.fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat session %s: %w", id, err)
	}
	if err := r.fs.Remove(path); err != nil {
		return false, fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return true, nil
}

// List loads every valid session record under the root. Temp files and the
// diagnostics log are skipped by name; records that fail to load are
// skipped individually so one corrupt file never poisons the listing.
func (r *SessionRepository) List() ([]*model.Session, error) {
	entries, err := afero.ReadDir(r.fs, r.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session directory %s: %w", r.root, err)
	}

	var sessions []*model.Session
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, tmpPrefix) || !strings.HasSuffix(name, recordExt) {
			continue
		}
		sess, err := r.Load(strings.TrimSuffix(name, recordExt))
		if err != nil {
			// Load already logged the reason.
			continue
		}
		sessions = append(sessions, sess)
	}
	return sessions, nil
}

// recordPath builds the file path for a canonical id and confirms it stays
// inside the storage root. The id shape check already forbids separators;
// this is defense in depth against anything that slips past it.
func (r *SessionRepository) recordPath(id string) (string, error) {
	root := filepath.Clean(r.root)
	path := filepath.Clean(filepath.Join(root, id+recordExt))
	if filepath.Dir(path) != root {
		return "", fmt.Errorf("session path %s escapes storage root %s", path, root)
	}
	return path, nil
}

// diagnose records a read-path failure for operators: a warning on the
// logger plus a ULID-stamped line in diagnostics.log inside the root.
// Failures to append are swallowed; the read path must never fail loudly.
func (r *SessionRepository) diagnose(id, reason string) {
	if r.logger != nil {
		r.logger.Warnf("skipping session record %s: %s", id, reason)
	}
	line := fmt.Sprintf("%s %s %s %s\n",
		ulid.Make(), time.Now().UTC().Format(time.RFC3339Nano), id, reason)
	f, err := r.fs.OpenFile(filepath.Join(r.root, diagnosticsName),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.WriteString(line)
}
