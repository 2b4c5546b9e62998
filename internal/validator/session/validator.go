// Package session validates raw parsed session records before they are
// accepted by the store. Validation is a pure function over the decoded
// JSON map: it collects every violation instead of stopping at the first,
// so a diagnostic log line can name all of them.
package session

import (
	"fmt"
	"time"

	model "github.com/planvet/planvet/internal/domain/model/session"
)

// Issue represents a single validation issue in a record.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}

var requiredKeys = []string{
	"id", "goal", "status", "version", "iteration", "maxIterations",
	"plans", "feedbacks", "createdAt", "updatedAt",
}

// Validate checks a decoded session record against the persisted schema.
// wantID is the canonical identifier derived from the file name; a record
// whose own id field differs is treated as tampered. An empty result means
// the record is well-formed.
func Validate(raw map[string]interface{}, wantID string) []Issue {
	var issues []Issue

	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			issues = append(issues, Issue{Field: key, Message: "missing required key"})
		}
	}

	id, ok := stringField(raw, "id", &issues)
	if ok {
		if !model.IsValidID(id) {
			issues = append(issues, Issue{Field: "id", Message: "not a canonical UUID v4"})
		} else if wantID != "" && id != wantID {
			issues = append(issues, Issue{Field: "id", Message: fmt.Sprintf("record id %q does not match file id %q", id, wantID)})
		}
	}

	if goal, ok := stringField(raw, "goal", &issues); ok && goal == "" {
		issues = append(issues, Issue{Field: "goal", Message: "must not be empty"})
	}

	if status, ok := stringField(raw, "status", &issues); ok {
		if !model.Status(status).IsValid() {
			issues = append(issues, Issue{Field: "status", Message: fmt.Sprintf("unknown status %q", status)})
		}
	}

	version, versionOK := intField(raw, "version", &issues)
	if versionOK && version < 0 {
		issues = append(issues, Issue{Field: "version", Message: "must not be negative"})
	}
	if iteration, ok := intField(raw, "iteration", &issues); ok && iteration < 0 {
		issues = append(issues, Issue{Field: "iteration", Message: "must not be negative"})
	}
	if maxIter, ok := intField(raw, "maxIterations", &issues); ok && maxIter < 1 {
		issues = append(issues, Issue{Field: "maxIterations", Message: "must be a positive integer"})
	}

	timestampField(raw, "createdAt", &issues)
	timestampField(raw, "updatedAt", &issues)

	validatePlans(raw, version, versionOK, &issues)
	validateFeedbacks(raw, version, versionOK, &issues)

	return issues
}

func validatePlans(raw map[string]interface{}, version int, versionOK bool, issues *[]Issue) {
	plans, ok := arrayField(raw, "plans", issues)
	if !ok {
		return
	}
	if versionOK && len(plans) != version {
		*issues = append(*issues, Issue{
			Field:   "plans",
			Message: fmt.Sprintf("plan count %d does not match version %d", len(plans), version),
		})
	}
	for i, entry := range plans {
		field := fmt.Sprintf("plans[%d]", i)
		plan, ok := entry.(map[string]interface{})
		if !ok {
			*issues = append(*issues, Issue{Field: field, Message: "not an object"})
			continue
		}
		requireKeys(plan, field, []string{"version", "content", "submittedAt"}, issues)
		if v, ok := intField(plan, "version", issues); ok && v != i+1 {
			*issues = append(*issues, Issue{
				Field:   field + ".version",
				Message: fmt.Sprintf("expected %d, got %d", i+1, v),
			})
		}
		stringField(plan, "content", issues)
		timestampField(plan, "submittedAt", issues)
	}
}

func validateFeedbacks(raw map[string]interface{}, version int, versionOK bool, issues *[]Issue) {
	feedbacks, ok := arrayField(raw, "feedbacks", issues)
	if !ok {
		return
	}
	for i, entry := range feedbacks {
		field := fmt.Sprintf("feedbacks[%d]", i)
		fb, ok := entry.(map[string]interface{})
		if !ok {
			*issues = append(*issues, Issue{Field: field, Message: "not an object"})
			continue
		}
		requireKeys(fb, field, []string{"planVersion", "rating", "content", "submittedAt"}, issues)
		if pv, ok := intField(fb, "planVersion", issues); ok {
			if pv < 1 {
				*issues = append(*issues, Issue{Field: field + ".planVersion", Message: "must be at least 1"})
			} else if versionOK && pv > version {
				*issues = append(*issues, Issue{
					Field:   field + ".planVersion",
					Message: fmt.Sprintf("references plan %d beyond version %d", pv, version),
				})
			}
		}
		if rating, ok := stringField(fb, "rating", issues); ok {
			if !model.Rating(rating).IsValid() {
				*issues = append(*issues, Issue{Field: field + ".rating", Message: fmt.Sprintf("unknown rating %q", rating)})
			}
		}
		stringField(fb, "content", issues)
		timestampField(fb, "submittedAt", issues)
		if v, ok := fb["override"]; ok {
			if _, isBool := v.(bool); !isBool {
				*issues = append(*issues, Issue{Field: field + ".override", Message: "not a boolean"})
			}
		}
	}
}

func requireKeys(data map[string]interface{}, prefix string, keys []string, issues *[]Issue) {
	for _, key := range keys {
		if _, ok := data[key]; !ok {
			*issues = append(*issues, Issue{Field: prefix + "." + key, Message: "missing required key"})
		}
	}
}

func stringField(data map[string]interface{}, key string, issues *[]Issue) (string, bool) {
	v, ok := data[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		*issues = append(*issues, Issue{Field: key, Message: "not a string"})
		return "", false
	}
	return s, true
}

// intField extracts an integer-valued number. encoding/json decodes all
// numbers to float64, so integrality has to be checked explicitly.
func intField(data map[string]interface{}, key string, issues *[]Issue) (int, bool) {
	v, ok := data[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok {
		*issues = append(*issues, Issue{Field: key, Message: "not a number"})
		return 0, false
	}
	if f != float64(int(f)) {
		*issues = append(*issues, Issue{Field: key, Message: "not an integer"})
		return 0, false
	}
	return int(f), true
}

func arrayField(data map[string]interface{}, key string, issues *[]Issue) ([]interface{}, bool) {
	v, ok := data[key]
	if !ok {
		return nil, false
	}
	arr, ok := v.([]interface{})
	if !ok {
		*issues = append(*issues, Issue{Field: key, Message: "not an array"})
		return nil, false
	}
	return arr, true
}

func timestampField(data map[string]interface{}, key string, issues *[]Issue) {
	s, ok := stringField(data, key, issues)
	if !ok {
		return
	}
	if _, err := time.Parse(time.RFC3339Nano, s); err != nil {
		*issues = append(*issues, Issue{Field: key, Message: fmt.Sprintf("invalid RFC3339 timestamp: %v", err)})
	}
}
