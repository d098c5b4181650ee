package verification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rakibhasan-dev/findback/internal/features/auth"
	apperrors "github.com/rakibhasan-dev/findback/pkg/errors"
)

func completeDocs() Documents {
	return Documents{
		NIDFront: "verification/nid-front.jpg",
		NIDBack:  "verification/nid-back.jpg",
		Selfie:   "verification/selfie.jpg",
	}
}

func TestSubmitFromUnverified(t *testing.T) {
	u := &auth.User{VerificationStatus: auth.StatusUnverified}

	err := Submit(u, completeDocs())

	require.NoError(t, err)
	assert.Equal(t, auth.StatusPending, u.VerificationStatus)
	assert.Equal(t, "verification/nid-front.jpg", u.NIDFrontImage)
	assert.Equal(t, "verification/nid-back.jpg", u.NIDBackImage)
	assert.Equal(t, "verification/selfie.jpg", u.SelfieImage)
}

func TestSubmitIncompleteDocuments(t *testing.T) {
	cases := []struct {
		name string
		docs Documents
	}{
		{"missing front", Documents{NIDBack: "b.jpg", Selfie: "s.jpg"}},
		{"missing back", Documents{NIDFront: "f.jpg", Selfie: "s.jpg"}},
		{"missing selfie", Documents{NIDFront: "f.jpg", NIDBack: "b.jpg"}},
		{"empty", Documents{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := &auth.User{VerificationStatus: auth.StatusUnverified}

			err := Submit(u, tc.docs)

			require.ErrorIs(t, err, apperrors.ErrMissingDocuments)
			assert.Equal(t, auth.StatusUnverified, u.VerificationStatus)
		})
	}
}

func TestSubmitIllegalStates(t *testing.T) {
	for _, status := range []string{auth.StatusPending, auth.StatusVerified} {
		t.Run(status, func(t *testing.T) {
			u := &auth.User{VerificationStatus: status}

			err := Submit(u, completeDocs())

			require.ErrorIs(t, err, apperrors.ErrInvalidState)
			assert.Equal(t, status, u.VerificationStatus)
		})
	}
}

func TestResubmitClearsRejectionReason(t *testing.T) {
	u := &auth.User{
		VerificationStatus: auth.StatusRejected,
		RejectionReason:    "blurry photo",
	}

	err := Submit(u, completeDocs())

	require.NoError(t, err)
	assert.Equal(t, auth.StatusPending, u.VerificationStatus)
	assert.Empty(t, u.RejectionReason)
}

func TestApprove(t *testing.T) {
	adminID := primitive.NewObjectID()
	now := time.Now()
	u := &auth.User{VerificationStatus: auth.StatusPending}

	err := Approve(u, adminID, "documents look good", now)

	require.NoError(t, err)
	assert.Equal(t, auth.StatusVerified, u.VerificationStatus)
	require.NotNil(t, u.VerifiedAt)
	assert.Equal(t, now, *u.VerifiedAt)
	require.NotNil(t, u.VerifiedBy)
	assert.Equal(t, adminID, *u.VerifiedBy)
	assert.Equal(t, "documents look good", u.VerificationNote)
}

func TestApproveOnlyFromPending(t *testing.T) {
	for _, status := range []string{auth.StatusUnverified, auth.StatusVerified, auth.StatusRejected} {
		t.Run(status, func(t *testing.T) {
			u := &auth.User{VerificationStatus: status}

			err := Approve(u, primitive.NewObjectID(), "", time.Now())

			require.ErrorIs(t, err, apperrors.ErrInvalidState)
			assert.Equal(t, status, u.VerificationStatus)
		})
	}
}

func TestReject(t *testing.T) {
	adminID := primitive.NewObjectID()
	u := &auth.User{VerificationStatus: auth.StatusPending}

	err := Reject(u, adminID, "blurry photo")

	require.NoError(t, err)
	assert.Equal(t, auth.StatusRejected, u.VerificationStatus)
	assert.Equal(t, "blurry photo", u.RejectionReason)
}

func TestRejectRequiresReason(t *testing.T) {
	for _, reason := range []string{"", "   "} {
		u := &auth.User{VerificationStatus: auth.StatusPending}

		err := Reject(u, primitive.NewObjectID(), reason)

		require.ErrorIs(t, err, apperrors.ErrMissingReason)
		assert.Equal(t, auth.StatusPending, u.VerificationStatus)
	}
}

func TestVerifiedIsTerminal(t *testing.T) {
	u := &auth.User{VerificationStatus: auth.StatusVerified}

	assert.ErrorIs(t, Submit(u, completeDocs()), apperrors.ErrInvalidState)
	assert.ErrorIs(t, Approve(u, primitive.NewObjectID(), "", time.Now()), apperrors.ErrInvalidState)
	assert.ErrorIs(t, Reject(u, primitive.NewObjectID(), "reason"), apperrors.ErrInvalidState)
	assert.Equal(t, auth.StatusVerified, u.VerificationStatus)
}
