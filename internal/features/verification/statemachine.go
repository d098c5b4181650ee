package verification

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rakibhasan-dev/findback/internal/features/auth"
	apperrors "github.com/rakibhasan-dev/findback/pkg/errors"
)

// Documents holds the three blob references required for a submission.
// They are all-or-nothing: a submission with any of them missing is rejected
// before touching the store.
type Documents struct {
	NIDFront string
	NIDBack  string
	Selfie   string
}

// Complete reports whether all three documents are present.
func (d Documents) Complete() bool {
	return d.NIDFront != "" && d.NIDBack != "" && d.Selfie != ""
}

// Legal transitions:
//
//	unverified -> pending          (submit)
//	rejected   -> pending          (resubmit)
//	pending    -> verified         (admin approve)
//	pending    -> rejected         (admin reject)
//
// verified is terminal; there is no revocation path.

// Submit applies a document submission to the user in place. Only legal from
// unverified or rejected. Resubmission always clears the previous rejection
// reason.
func Submit(u *auth.User, docs Documents) error {
	if !docs.Complete() {
		return apperrors.ErrMissingDocuments
	}

	switch u.VerificationStatus {
	case auth.StatusUnverified, auth.StatusRejected:
	default:
		return apperrors.ErrInvalidState
	}

	u.VerificationStatus = auth.StatusPending
	u.NIDFrontImage = docs.NIDFront
	u.NIDBackImage = docs.NIDBack
	u.SelfieImage = docs.Selfie
	u.RejectionReason = ""
	return nil
}

// Approve marks a pending user as verified, stamping the reviewing admin and
// time. Only legal from pending.
func Approve(u *auth.User, adminID primitive.ObjectID, note string, now time.Time) error {
	if u.VerificationStatus != auth.StatusPending {
		return apperrors.ErrInvalidState
	}

	u.VerificationStatus = auth.StatusVerified
	u.VerifiedAt = &now
	u.VerifiedBy = &adminID
	u.VerificationNote = note
	u.RejectionReason = ""
	return nil
}

// Reject marks a pending user as rejected with a mandatory reason. Only legal
// from pending.
func Reject(u *auth.User, adminID primitive.ObjectID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return apperrors.ErrMissingReason
	}
	if u.VerificationStatus != auth.StatusPending {
		return apperrors.ErrInvalidState
	}

	u.VerificationStatus = auth.StatusRejected
	u.RejectionReason = reason
	u.VerifiedBy = &adminID
	return nil
}
