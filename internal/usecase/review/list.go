package review

import (
	"fmt"
	"sort"
	"time"

	model "github.com/planvet/planvet/internal/domain/model/session"
)

// SortKey selects the timestamp field sessions are ordered by.
type SortKey string

const (
	SortByCreatedAt SortKey = "createdAt"
	SortByUpdatedAt SortKey = "updatedAt"
)

// SortOrder selects the listing direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// goalPreviewLimit is the rune budget for the goal column in listings.
const goalPreviewLimit = 30

// ListInput holds listing options. Statuses empty means no filter; SortKey
// and Order default to updatedAt descending.
type ListInput struct {
	Statuses []model.Status
	SortKey  SortKey
	Order    SortOrder
}

// Summary is the listing view of one session. Goal is truncated to a fixed
// preview budget.
type Summary struct {
	ID            string       `json:"id"`
	Goal          string       `json:"goal"`
	Status        model.Status `json:"status"`
	Version       int          `json:"version"`
	Iteration     int          `json:"iteration"`
	MaxIterations int          `json:"maxIterations"`
	PlanCount     int          `json:"planCount"`
	FeedbackCount int          `json:"feedbackCount"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// List returns summaries of every valid session, filtered and sorted.
// Corrupt records have already been skipped by the repository.
func (u *UseCase) List(in ListInput) ([]Summary, error) {
	sortKey := in.SortKey
	if sortKey == "" {
		sortKey = SortByUpdatedAt
	}
	if sortKey != SortByCreatedAt && sortKey != SortByUpdatedAt {
		return nil, &ValidationError{Field: "sortKey", Message: fmt.Sprintf("must be %q or %q", SortByCreatedAt, SortByUpdatedAt)}
	}
	order := in.Order
	if order == "" {
		order = OrderDesc
	}
	if order != OrderAsc && order != OrderDesc {
		return nil, &ValidationError{Field: "order", Message: fmt.Sprintf("must be %q or %q", OrderAsc, OrderDesc)}
	}
	for _, status := range in.Statuses {
		if !status.IsValid() {
			return nil, &ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", status)}
		}
	}

	sessions, err := u.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	summaries := make([]Summary, 0, len(sessions))
	for _, sess := range sessions {
		if !matchesStatus(sess.Status, in.Statuses) {
			continue
		}
		summaries = append(summaries, Summary{
			ID:            sess.ID,
			Goal:          truncateGoal(sess.Goal),
			Status:        sess.Status,
			Version:       sess.Version,
			Iteration:     sess.Iteration,
			MaxIterations: sess.MaxIterations,
			PlanCount:     len(sess.Plans),
			FeedbackCount: len(sess.Feedbacks),
			CreatedAt:     sess.CreatedAt,
			UpdatedAt:     sess.UpdatedAt,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		var ta, tb time.Time
		if sortKey == SortByCreatedAt {
			ta, tb = a.CreatedAt, b.CreatedAt
		} else {
			ta, tb = a.UpdatedAt, b.UpdatedAt
		}
		if order == OrderAsc {
			return ta.Before(tb)
		}
		return tb.Before(ta)
	})

	return summaries, nil
}

func matchesStatus(status model.Status, filter []model.Status) bool {
	if len(filter) == 0 {
		return true
	}
	for _, s := range filter {
		if s == status {
			return true
		}
	}
	return false
}

func truncateGoal(goal string) string {
	runes := []rune(goal)
	if len(runes) <= goalPreviewLimit {
		return goal
	}
	return string(runes[:goalPreviewLimit]) + "..."
}
