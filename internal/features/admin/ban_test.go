package admin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rakibhasan-dev/findback/internal/features/auth"
	apperrors "github.com/rakibhasan-dev/findback/pkg/errors"
)

func TestApplyBan(t *testing.T) {
	adminID := primitive.NewObjectID()
	now := time.Now()
	u := &auth.User{Role: auth.RoleUser, Username: "spammer"}

	err := ApplyBan(u, adminID, "repeated scam posts", now)

	require.NoError(t, err)
	assert.True(t, u.IsBanned)
	assert.Equal(t, "repeated scam posts", u.BanReason)
	require.NotNil(t, u.BannedAt)
	assert.Equal(t, now, *u.BannedAt)
	require.NotNil(t, u.BannedBy)
	assert.Equal(t, adminID, *u.BannedBy)
}

func TestApplyBanRequiresReason(t *testing.T) {
	for _, reason := range []string{"", "  "} {
		u := &auth.User{Role: auth.RoleUser}

		err := ApplyBan(u, primitive.NewObjectID(), reason, time.Now())

		require.ErrorIs(t, err, apperrors.ErrMissingReason)
		assert.False(t, u.IsBanned)
	}
}

func TestApplyBanRefusesAdminTarget(t *testing.T) {
	u := &auth.User{Role: auth.RoleAdmin}

	err := ApplyBan(u, primitive.NewObjectID(), "power struggle", time.Now())

	require.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.False(t, u.IsBanned)
}

func TestApplyBanOverwritesExistingBan(t *testing.T) {
	firstAdmin := primitive.NewObjectID()
	secondAdmin := primitive.NewObjectID()
	earlier := time.Now().Add(-24 * time.Hour)
	now := time.Now()

	u := &auth.User{
		Role:      auth.RoleUser,
		IsBanned:  true,
		BanReason: "spam",
		BannedAt:  &earlier,
		BannedBy:  &firstAdmin,
	}

	err := ApplyBan(u, secondAdmin, "harassment", now)

	require.NoError(t, err)
	assert.True(t, u.IsBanned)
	assert.Equal(t, "harassment", u.BanReason)
	assert.Equal(t, now, *u.BannedAt)
	assert.Equal(t, secondAdmin, *u.BannedBy)
}

func TestClearBan(t *testing.T) {
	adminID := primitive.NewObjectID()
	bannedAt := time.Now()
	u := &auth.User{
		Role:      auth.RoleUser,
		IsBanned:  true,
		BanReason: "spam",
		BannedAt:  &bannedAt,
		BannedBy:  &adminID,
	}

	ClearBan(u)

	assert.False(t, u.IsBanned)
	assert.Empty(t, u.BanReason)
	assert.Nil(t, u.BannedAt)
	assert.Nil(t, u.BannedBy)
}

func TestClearBanNotBannedIsNoop(t *testing.T) {
	u := &auth.User{Role: auth.RoleUser, Username: "clean"}

	ClearBan(u)

	assert.False(t, u.IsBanned)
	assert.Equal(t, "clean", u.Username)
}
