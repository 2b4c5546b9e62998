package review

import (
	model "github.com/planvet/planvet/internal/domain/model/session"
)

// Outcome tags a query result as carrying data or as not ready yet. Hard
// errors (unknown session, malformed id) travel on the error return
// instead, so a caller has exactly three cases to handle.
type Outcome string

const (
	OutcomeReady   Outcome = "ready"
	OutcomePending Outcome = "pending"
)

// Pending reasons for the latest-plan and latest-feedback queries.
const (
	ReasonNoPlan           = "no plan submitted"
	ReasonAwaitingFeedback = "awaiting feedback"
	ReasonNoFeedback       = "no feedback yet"
)

// PlanQuery is the result of LatestPlan. Plan is set when Outcome is
// OutcomeReady; Reason when it is OutcomePending.
type PlanQuery struct {
	Outcome Outcome
	Plan    *model.Plan
	Reason  string
}

// FeedbackQuery is the result of LatestFeedback.
type FeedbackQuery struct {
	Outcome  Outcome
	Feedback *model.Feedback
	Reason   string
}

// LatestPlan returns the most recently submitted plan, or a pending result
// when no plan exists yet.
func (u *UseCase) LatestPlan(id string) (PlanQuery, error) {
	sess, err := u.loadSession(id)
	if err != nil {
		return PlanQuery{}, err
	}
	plan := sess.LatestPlan()
	if plan == nil {
		return PlanQuery{Outcome: OutcomePending, Reason: ReasonNoPlan}, nil
	}
	return PlanQuery{Outcome: OutcomeReady, Plan: plan}, nil
}

// LatestFeedback returns the most recent feedback answering the current
// plan. The pending reasons are differentiated: no plan was ever
// submitted; the current plan is awaiting its review; or no feedback has
// answered the current plan outside of review.
func (u *UseCase) LatestFeedback(id string) (FeedbackQuery, error) {
	sess, err := u.loadSession(id)
	if err != nil {
		return FeedbackQuery{}, err
	}
	if sess.LatestPlan() == nil {
		return FeedbackQuery{Outcome: OutcomePending, Reason: ReasonNoPlan}, nil
	}
	fb := sess.LatestFeedback()
	if fb == nil || fb.PlanVersion < sess.Version {
		reason := ReasonNoFeedback
		if sess.Status == model.StatusPendingReview {
			reason = ReasonAwaitingFeedback
		}
		return FeedbackQuery{Outcome: OutcomePending, Reason: reason}, nil
	}
	return FeedbackQuery{Outcome: OutcomeReady, Feedback: fb}, nil
}
