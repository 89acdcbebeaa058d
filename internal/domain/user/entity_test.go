//go:build unit

package user_test

import (
	"testing"
	"time"

	"couponbid/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	email, err := user.NewEmail("  Alice@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email.String())

	_, err = user.NewEmail("")
	assert.ErrorIs(t, err, user.ErrInvalidEmail)
	_, err = user.NewEmail("not-an-email")
	assert.ErrorIs(t, err, user.ErrInvalidEmail)
}

func TestNewRole(t *testing.T) {
	role, err := user.NewRole("member")
	require.NoError(t, err)
	assert.Equal(t, user.RoleMember, role)

	_, err = user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestHasClaimedRewardOn(t *testing.T) {
	email, err := user.NewEmail("bob@example.com")
	require.NoError(t, err)

	day := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	t.Run("never claimed", func(t *testing.T) {
		u := user.NewUser(email, "Bob", "hash", user.RoleMember)
		assert.False(t, u.HasClaimedRewardOn(day))
	})

	t.Run("claimed earlier the same UTC day", func(t *testing.T) {
		claimed := time.Date(2026, 3, 1, 0, 5, 0, 0, time.UTC)
		u := user.ReconstructUser(
			uuid.New(), email, "Bob", "hash", user.RoleMember,
			0, &claimed, day, day,
		)
		assert.True(t, u.HasClaimedRewardOn(day))
		assert.True(t, u.HasClaimedRewardOn(time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC)))
	})

	t.Run("claimed the day before", func(t *testing.T) {
		claimed := time.Date(2026, 2, 28, 23, 59, 0, 0, time.UTC)
		u := user.ReconstructUser(
			uuid.New(), email, "Bob", "hash", user.RoleMember,
			0, &claimed, day, day,
		)
		assert.False(t, u.HasClaimedRewardOn(day))
	})

	t.Run("timezone offsets compare on UTC dates", func(t *testing.T) {
		// 23:00 UTC on Feb 28 expressed as 01:00 local March 1 (+02:00).
		local := time.Date(2026, 3, 1, 1, 0, 0, 0, time.FixedZone("EET", 2*60*60))
		u := user.ReconstructUser(
			uuid.New(), email, "Bob", "hash", user.RoleMember,
			0, &local, day, day,
		)
		assert.False(t, u.HasClaimedRewardOn(day))
	})
}
