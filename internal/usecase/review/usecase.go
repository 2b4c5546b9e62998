// Package review implements the plan-review operations: the state machine
// over persisted sessions that two agent processes drive from opposite
// sides, one submitting plans and the other feedback. Each operation is a
// load-check-mutate-save cycle against the session repository; only
// feedback submission carries an optimistic version guard (see
// SubmitFeedbackInput.ExpectedPlanVersion).
package review

import (
	"errors"
	"fmt"
	"strings"

	model "github.com/planvet/planvet/internal/domain/model/session"
	"github.com/planvet/planvet/internal/domain/repository"
)

// UseCase executes review operations against a session repository.
type UseCase struct {
	repo repository.SessionRepository
}

// NewUseCase creates a review use case.
func NewUseCase(repo repository.SessionRepository) *UseCase {
	return &UseCase{repo: repo}
}

// CreateInput holds the inputs for session creation. MaxIterations zero
// means the default cap of 5; a negative value is rejected.
type CreateInput struct {
	Goal          string
	MaxIterations int
}

// Create starts a new session in drafting state and persists it.
func (u *UseCase) Create(in CreateInput) (*model.Session, error) {
	goal := strings.TrimSpace(in.Goal)
	if goal == "" {
		return nil, &ValidationError{Field: "goal", Message: "must not be empty"}
	}
	maxIterations := in.MaxIterations
	if maxIterations == 0 {
		maxIterations = model.DefaultMaxIterations
	}
	if maxIterations < 1 {
		return nil, &ValidationError{Field: "maxIterations", Message: "must be a positive integer"}
	}

	sess := model.New(goal, maxIterations)
	if err := u.repo.Save(sess); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return sess, nil
}

// SubmitPlanInput holds the inputs for a plan submission.
type SubmitPlanInput struct {
	SessionID string
	Content   string
}

// SubmitPlanResult reports the version assigned to the new plan.
type SubmitPlanResult struct {
	Version int
	Status  model.Status
}

// SubmitPlan appends the next plan version and moves the session to
// pending_review. Legal from drafting and pending_revision only.
func (u *UseCase) SubmitPlan(in SubmitPlanInput) (SubmitPlanResult, error) {
	if strings.TrimSpace(in.Content) == "" {
		return SubmitPlanResult{}, &ValidationError{Field: "content", Message: "must not be empty"}
	}
	sess, err := u.loadSession(in.SessionID)
	if err != nil {
		return SubmitPlanResult{}, err
	}
	plan, err := sess.SubmitPlan(in.Content)
	if err != nil {
		return SubmitPlanResult{}, err
	}
	if err := u.repo.Save(sess); err != nil {
		return SubmitPlanResult{}, fmt.Errorf("failed to save session: %w", err)
	}
	return SubmitPlanResult{Version: plan.Version, Status: sess.Status}, nil
}

// SubmitFeedbackInput holds the inputs for a feedback submission.
//
// ExpectedPlanVersion, when non-nil, must equal the latest plan's version
// or the submission is rejected with a VersionMismatchError. When nil the
// feedback applies to whichever plan is latest, racing against concurrent
// submissions the way the original workflow always has. Plan submission
// and force-approval deliberately carry no equivalent guard; the roles are
// separated by convention, with one agent planning and one reviewing.
type SubmitFeedbackInput struct {
	SessionID           string
	Rating              string
	Content             string
	ExpectedPlanVersion *int
}

// SubmitFeedbackResult reports the resulting status and iteration count.
type SubmitFeedbackResult struct {
	Status    model.Status
	Iteration int
}

// SubmitFeedback records a reviewer verdict on the latest plan. Legal from
// pending_review only. An approving rating ends the cycle in approved;
// major and minor consume an iteration and land in pending_revision, or in
// exhausted once the cap is reached.
func (u *UseCase) SubmitFeedback(in SubmitFeedbackInput) (SubmitFeedbackResult, error) {
	rating := model.Rating(in.Rating)
	if !rating.IsValid() {
		return SubmitFeedbackResult{}, &ValidationError{
			Field:   "rating",
			Message: fmt.Sprintf("must be one of %q, %q, %q", model.RatingMajor, model.RatingMinor, model.RatingApprove),
		}
	}
	if strings.TrimSpace(in.Content) == "" {
		return SubmitFeedbackResult{}, &ValidationError{Field: "content", Message: "must not be empty"}
	}
	sess, err := u.loadSession(in.SessionID)
	if err != nil {
		return SubmitFeedbackResult{}, err
	}
	// The stale-version check only applies where feedback is legal at all;
	// an illegal source state stays a state error.
	if sess.Status == model.StatusPendingReview && in.ExpectedPlanVersion != nil && *in.ExpectedPlanVersion != sess.Version {
		return SubmitFeedbackResult{}, &VersionMismatchError{Expected: sess.Version, Provided: *in.ExpectedPlanVersion}
	}
	if _, err := sess.SubmitFeedback(rating, in.Content); err != nil {
		return SubmitFeedbackResult{}, err
	}
	if err := u.repo.Save(sess); err != nil {
		return SubmitFeedbackResult{}, fmt.Errorf("failed to save session: %w", err)
	}
	return SubmitFeedbackResult{Status: sess.Status, Iteration: sess.Iteration}, nil
}

// ForceApproveInput holds the inputs for a forced approval.
type ForceApproveInput struct {
	SessionID string
	Reason    string
}

// ForceApproveResult reports the resulting status.
type ForceApproveResult struct {
	Status model.Status
}

// ForceApprove overrides an exhausted session into approved, recording the
// justification as a synthetic approval feedback tagged as an override.
func (u *UseCase) ForceApprove(in ForceApproveInput) (ForceApproveResult, error) {
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return ForceApproveResult{}, &ValidationError{Field: "reason", Message: "must not be empty"}
	}
	sess, err := u.loadSession(in.SessionID)
	if err != nil {
		return ForceApproveResult{}, err
	}
	if _, err := sess.ForceApprove(reason); err != nil {
		return ForceApproveResult{}, err
	}
	if err := u.repo.Save(sess); err != nil {
		return ForceApproveResult{}, fmt.Errorf("failed to save session: %w", err)
	}
	return ForceApproveResult{Status: sess.Status}, nil
}

// DeleteInput holds the inputs for session deletion.
type DeleteInput struct {
	SessionID string
	Force     bool
}

// Delete removes a session permanently. Without force it is refused unless
// the session is approved or exhausted.
func (u *UseCase) Delete(in DeleteInput) (bool, error) {
	sess, err := u.loadSession(in.SessionID)
	if err != nil {
		return false, err
	}
	if !sess.Status.Terminal() && !in.Force {
		return false, &model.StateError{
			Op:      "delete without force",
			Current: sess.Status,
			Allowed: []model.Status{model.StatusApproved, model.StatusExhausted},
		}
	}
	deleted, err := u.repo.Remove(sess.ID)
	if err != nil {
		return false, fmt.Errorf("failed to delete session: %w", err)
	}
	return deleted, nil
}

// Get returns the full session record.
func (u *UseCase) Get(id string) (*model.Session, error) {
	return u.loadSession(id)
}

// loadSession validates the identifier and loads the record, mapping an
// empty or malformed id to a ValidationError and absence to NotFoundError.
func (u *UseCase) loadSession(rawID string) (*model.Session, error) {
	id := strings.TrimSpace(rawID)
	if id == "" {
		return nil, &ValidationError{Field: "sessionId", Message: "must not be empty"}
	}
	canonical, ok := model.ParseSessionID(id)
	if !ok {
		return nil, &ValidationError{Field: "sessionId", Message: "must be a UUID v4"}
	}
	sess, err := u.repo.Load(canonical.String())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{ID: canonical.String()}
		}
		return nil, fmt.Errorf("failed to load session %s: %w", canonical, err)
	}
	return sess, nil
}
