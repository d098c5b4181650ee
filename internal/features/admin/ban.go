package admin

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rakibhasan-dev/findback/internal/features/auth"
	apperrors "github.com/rakibhasan-dev/findback/pkg/errors"
)

// ApplyBan bans the user in place. A reason is mandatory and admins cannot be
// banned. Banning an already-banned user overwrites the reason and audit
// trail rather than failing. Exactly the four ban fields change.
func ApplyBan(u *auth.User, adminID primitive.ObjectID, reason string, now time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return apperrors.ErrMissingReason
	}
	if u.IsAdmin() {
		return apperrors.ErrForbidden
	}

	u.IsBanned = true
	u.BanReason = reason
	u.BannedAt = &now
	u.BannedBy = &adminID
	return nil
}

// ClearBan lifts a ban in place, clearing exactly the four ban fields.
// Unbanning a user who is not banned is a no-op.
func ClearBan(u *auth.User) {
	u.IsBanned = false
	u.BanReason = ""
	u.BannedAt = nil
	u.BannedBy = nil
}
