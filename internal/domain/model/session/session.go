// Package session defines the plan-review session aggregate: the sole
// persisted entity of the system, its value objects, and the legal state
// transitions triggered by plan submission, feedback, and forced approval.
package session

import (
	"fmt"
	"strings"
	"time"
)

// Status represents the current review status of a session.
type Status string

const (
	StatusDrafting        Status = "drafting"
	StatusPendingReview   Status = "pending_review"
	StatusPendingRevision Status = "pending_revision"
	StatusApproved        Status = "approved"
	StatusExhausted       Status = "exhausted"
)

// DefaultMaxIterations is the iteration cap applied when the caller does
// not choose one at creation.
const DefaultMaxIterations = 5

// String returns the string representation.
func (s Status) String() string {
	return string(s)
}

// IsValid validates the status.
func (s Status) IsValid() bool {
	switch s {
	case StatusDrafting, StatusPendingReview, StatusPendingRevision, StatusApproved, StatusExhausted:
		return true
	default:
		return false
	}
}

// Terminal reports whether the session has reached a state from which
// deletion is allowed without a force flag.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusExhausted
}

// StateError is returned when an operation is attempted from a status it is
// not legal in. It carries the current status and the statuses that would
// have been accepted so callers can implement retry/backoff logic.
type StateError struct {
	Op      string
	Current Status
	Allowed []Status
}

func (e *StateError) Error() string {
	names := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		names[i] = s.String()
	}
	return fmt.Sprintf("cannot %s in status %q (allowed: %s)", e.Op, e.Current, strings.Join(names, ", "))
}

// Plan is one versioned submission of proposed work. Immutable once
// appended.
type Plan struct {
	Version     int       `json:"version"`
	Content     string    `json:"content"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Feedback is one reviewer response to a specific plan version. Immutable
// once appended. Override marks the synthetic approval appended by a forced
// approval.
type Feedback struct {
	PlanVersion int       `json:"planVersion"`
	Rating      Rating    `json:"rating"`
	Content     string    `json:"content"`
	Override    bool      `json:"override,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Session tracks one goal through plan submission and review cycles.
// Plans and Feedbacks are append-only; Version equals the version of the
// most recently submitted plan; Iteration counts non-approving feedback
// rounds and is capped by MaxIterations.
type Session struct {
	ID            string     `json:"id"`
	Goal          string     `json:"goal"`
	Status        Status     `json:"status"`
	Version       int        `json:"version"`
	Iteration     int        `json:"iteration"`
	MaxIterations int        `json:"maxIterations"`
	Plans         []Plan     `json:"plans"`
	Feedbacks     []Feedback `json:"feedbacks"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// New creates a session in drafting state with no plans or feedback.
// maxIterations must be positive; callers validate before constructing.
func New(goal string, maxIterations int) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:            NewSessionID().String(),
		Goal:          goal,
		Status:        StatusDrafting,
		Version:       0,
		Iteration:     0,
		MaxIterations: maxIterations,
		Plans:         []Plan{},
		Feedbacks:     []Feedback{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

var (
	submitPlanSources     = []Status{StatusDrafting, StatusPendingRevision}
	submitFeedbackSources = []Status{StatusPendingReview}
	forceApproveSources   = []Status{StatusExhausted}
)

// SubmitPlan appends a new plan with the next version number and moves the
// session to pending_review. Legal only from drafting or pending_revision.
func (s *Session) SubmitPlan(content string) (Plan, error) {
	if s.Status != StatusDrafting && s.Status != StatusPendingRevision {
		return Plan{}, &StateError{Op: "submit a plan", Current: s.Status, Allowed: submitPlanSources}
	}
	plan := Plan{
		Version:     s.Version + 1,
		Content:     content,
		SubmittedAt: time.Now().UTC(),
	}
	s.Plans = append(s.Plans, plan)
	s.Version = plan.Version
	s.Status = StatusPendingReview
	return plan, nil
}

// SubmitFeedback appends feedback against the latest plan. Legal only from
// pending_review. An approving rating moves the session to approved without
// touching the iteration counter; major and minor increment it and move to
// pending_revision, or to exhausted once the cap is reached.
func (s *Session) SubmitFeedback(rating Rating, content string) (Feedback, error) {
	if s.Status != StatusPendingReview {
		return Feedback{}, &StateError{Op: "submit feedback", Current: s.Status, Allowed: submitFeedbackSources}
	}
	fb := Feedback{
		PlanVersion: s.Version,
		Rating:      rating,
		Content:     content,
		SubmittedAt: time.Now().UTC(),
	}
	s.Feedbacks = append(s.Feedbacks, fb)
	if rating.IsApproval() {
		s.Status = StatusApproved
		return fb, nil
	}
	s.Iteration++
	if s.Iteration >= s.MaxIterations {
		s.Status = StatusExhausted
	} else {
		s.Status = StatusPendingRevision
	}
	return fb, nil
}

// ForceApprove overrides an exhausted session into approved, recording a
// synthetic approval feedback that carries the caller's justification.
func (s *Session) ForceApprove(reason string) (Feedback, error) {
	if s.Status != StatusExhausted {
		return Feedback{}, &StateError{Op: "force-approve", Current: s.Status, Allowed: forceApproveSources}
	}
	fb := Feedback{
		PlanVersion: s.Version,
		Rating:      RatingApprove,
		Content:     "[forced approval] " + reason,
		Override:    true,
		SubmittedAt: time.Now().UTC(),
	}
	s.Feedbacks = append(s.Feedbacks, fb)
	s.Status = StatusApproved
	return fb, nil
}

// LatestPlan returns the most recently submitted plan, or nil if no plan
// has been submitted yet.
func (s *Session) LatestPlan() *Plan {
	if len(s.Plans) == 0 {
		return nil
	}
	p := s.Plans[len(s.Plans)-1]
	return &p
}

// LatestFeedback returns the most recent feedback, or nil if none exists.
func (s *Session) LatestFeedback() *Feedback {
	if len(s.Feedbacks) == 0 {
		return nil
	}
	f := s.Feedbacks[len(s.Feedbacks)-1]
	return &f
}

// Clone returns an independent deep copy. The store hands out clones so
// that mutating a returned session has no effect until it is saved back.
func (s *Session) Clone() *Session {
	out := *s
	out.Plans = make([]Plan, len(s.Plans))
	copy(out.Plans, s.Plans)
	out.Feedbacks = make([]Feedback, len(s.Feedbacks))
	copy(out.Feedbacks, s.Feedbacks)
	return &out
}
