package session

// Rating represents a reviewer's verdict on a submitted plan.
// The three levels are ordinal: major means the plan is rejected outright,
// minor requests a revision, approve accepts the plan as-is.
type Rating string

const (
	RatingMajor   Rating = "major"
	RatingMinor   Rating = "minor"
	RatingApprove Rating = "approve"
)

// String returns the string representation.
func (r Rating) String() string {
	return string(r)
}

// IsValid validates the rating.
func (r Rating) IsValid() bool {
	switch r {
	case RatingMajor, RatingMinor, RatingApprove:
		return true
	default:
		return false
	}
}

// IsApproval reports whether this rating accepts the plan. Approval leaves
// the iteration counter untouched; the other two ratings consume an
// iteration.
func (r Rating) IsApproval() bool {
	return r == RatingApprove
}
