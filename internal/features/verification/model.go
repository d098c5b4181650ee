package verification

import (
	"time"
)

// SubmitRequest is the payload for a user submitting verification documents.
// The fields are Cloudinary references produced by the media upload endpoint.
type SubmitRequest struct {
	NIDFrontImage string `json:"nidFrontImage" binding:"required"`
	NIDBackImage  string `json:"nidBackImage" binding:"required"`
	SelfieImage   string `json:"selfieImage" binding:"required"`
}

type ApproveRequest struct {
	Note string `json:"note"`
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// StatusResponse is returned to the user asking about their own verification.
type StatusResponse struct {
	VerificationStatus string     `json:"verificationStatus"`
	RejectionReason    string     `json:"rejectionReason,omitempty"`
	VerifiedAt         *time.Time `json:"verifiedAt,omitempty"`
}
