package reports

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/rakibhasan-dev/findback/pkg/errors"
)

// ValidateTarget enforces that a report points at exactly one of a user or a
// post.
func ValidateTarget(r *Report) error {
	if (r.ReportedUserID == nil) == (r.ReportedPostID == nil) {
		return apperrors.ErrInvalidTarget
	}
	return nil
}

// ValidReason reports whether the reason is one we accept.
func ValidReason(reason string) bool {
	return validReasons[reason]
}

// Legal transitions:
//
//	pending   -> reviewing | resolved | dismissed
//	reviewing -> resolved | dismissed
//
// resolved and dismissed are terminal.
var legalTransitions = map[string]map[string]bool{
	StatusPending:   {StatusReviewing: true, StatusResolved: true, StatusDismissed: true},
	StatusReviewing: {StatusResolved: true, StatusDismissed: true},
}

// ApplyReview applies an admin update to the report in place. Every update
// stamps the reviewing admin and time, even a plain move to reviewing.
// Recording actionTaken=user_banned does not ban anyone; the ban endpoint is
// a separate deliberate act.
func ApplyReview(r *Report, adminID primitive.ObjectID, req ReviewRequest, now time.Time) error {
	if req.Status != r.Status && !legalTransitions[r.Status][req.Status] {
		return apperrors.ErrInvalidState
	}
	if req.ActionTaken != "" && !validActions[req.ActionTaken] {
		return apperrors.ErrValidation
	}

	r.Status = req.Status
	r.ReviewedBy = &adminID
	r.ReviewedAt = &now
	if req.AdminNote != "" {
		r.AdminNote = req.AdminNote
	}
	if req.ActionTaken != "" {
		r.ActionTaken = req.ActionTaken
	}
	return nil
}
