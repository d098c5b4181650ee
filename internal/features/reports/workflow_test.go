package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "github.com/rakibhasan-dev/findback/pkg/errors"
)

func TestValidateTarget(t *testing.T) {
	userID := primitive.NewObjectID()
	postID := primitive.NewObjectID()

	cases := []struct {
		name    string
		report  Report
		wantErr bool
	}{
		{"user only", Report{ReportedUserID: &userID}, false},
		{"post only", Report{ReportedPostID: &postID}, false},
		{"both", Report{ReportedUserID: &userID, ReportedPostID: &postID}, true},
		{"neither", Report{}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTarget(&tc.report)
			if tc.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidTarget)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyReviewStampsReviewer(t *testing.T) {
	adminID := primitive.NewObjectID()
	now := time.Now()
	r := &Report{Status: StatusPending}

	err := ApplyReview(r, adminID, ReviewRequest{Status: StatusReviewing}, now)

	require.NoError(t, err)
	assert.Equal(t, StatusReviewing, r.Status)
	require.NotNil(t, r.ReviewedBy)
	assert.Equal(t, adminID, *r.ReviewedBy)
	require.NotNil(t, r.ReviewedAt)
	assert.Equal(t, now, *r.ReviewedAt)
}

func TestApplyReviewSkipsReviewing(t *testing.T) {
	r := &Report{Status: StatusPending}

	err := ApplyReview(r, primitive.NewObjectID(), ReviewRequest{
		Status:      StatusResolved,
		AdminNote:   "duplicate of an earlier report",
		ActionTaken: ActionNone,
	}, time.Now())

	require.NoError(t, err)
	assert.Equal(t, StatusResolved, r.Status)
	assert.Equal(t, "duplicate of an earlier report", r.AdminNote)
	assert.Equal(t, ActionNone, r.ActionTaken)
}

func TestApplyReviewTerminalStates(t *testing.T) {
	for _, status := range []string{StatusResolved, StatusDismissed} {
		t.Run(status, func(t *testing.T) {
			r := &Report{Status: status}

			err := ApplyReview(r, primitive.NewObjectID(), ReviewRequest{Status: StatusPending}, time.Now())

			assert.ErrorIs(t, err, apperrors.ErrInvalidState)
			assert.Equal(t, status, r.Status)
		})
	}
}

func TestApplyReviewRejectsUnknownAction(t *testing.T) {
	r := &Report{Status: StatusPending}

	err := ApplyReview(r, primitive.NewObjectID(), ReviewRequest{
		Status:      StatusResolved,
		ActionTaken: "deleted_everything",
	}, time.Now())

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestApplyReviewSameStatusRestampsReviewer(t *testing.T) {
	firstAdmin := primitive.NewObjectID()
	secondAdmin := primitive.NewObjectID()
	earlier := time.Now().Add(-time.Hour)
	now := time.Now()

	r := &Report{Status: StatusReviewing, ReviewedBy: &firstAdmin, ReviewedAt: &earlier}

	err := ApplyReview(r, secondAdmin, ReviewRequest{Status: StatusReviewing, AdminNote: "still looking"}, now)

	require.NoError(t, err)
	assert.Equal(t, secondAdmin, *r.ReviewedBy)
	assert.Equal(t, now, *r.ReviewedAt)
}
