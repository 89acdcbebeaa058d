//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"couponbid/internal/domain/user"
	"couponbid/internal/pkg/jwt"
	"couponbid/internal/pkg/password"
	"couponbid/internal/usecase/commands"
	"couponbid/internal/usecase/queries"
	"couponbid/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeUserReads serves FindByEmail straight from the fake store. The other
// read methods are not reachable from AuthCommands.
type storeUserReads struct {
	queries.UserReadStore
	store *fake.Store
}

func (r *storeUserReads) FindByEmail(_ context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	for _, u := range r.store.Users {
		if u.Email == email {
			view := &queries.AuthorizedUserView{
				ID:      u.ID,
				Email:   u.Email,
				Name:    u.Name,
				Role:    u.Role,
				Balance: u.Balance,
			}
			return view, u.PasswordHash, nil
		}
	}
	return nil, "", assert.AnError
}

func newAuthFixture(t *testing.T) (*fake.Store, commands.AuthCommands) {
	t.Helper()
	store := fake.NewStore()
	jwtService := jwt.NewService("test-secret", 15*time.Minute)
	reads := &storeUserReads{store: store}
	return store, commands.NewAuthCommands(fake.NewUoW(store), reads, jwtService)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a member with a hashed password", func(t *testing.T) {
		store, uc := newAuthFixture(t)

		id, err := uc.Register(ctx, "Carol@Example.com", "carol", "hunter2pass")
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, id)

		row := store.Users[id]
		require.NotNil(t, row)
		assert.Equal(t, "carol@example.com", row.Email)
		assert.Equal(t, string(user.RoleMember), row.Role)
		assert.Zero(t, row.Balance)
		assert.NoError(t, password.ComparePassword(row.PasswordHash, "hunter2pass"))
	})

	t.Run("duplicate email", func(t *testing.T) {
		store, uc := newAuthFixture(t)
		store.SeedUser("carol", 0)

		_, err := uc.Register(ctx, "carol@example.com", "carol two", "hunter2pass")
		assert.ErrorIs(t, err, commands.ErrEmailAlreadyUsed)
		assert.Len(t, store.Users, 1)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, uc := newAuthFixture(t)

		_, err := uc.Register(ctx, "not-an-email", "carol", "hunter2pass")
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		_, uc := newAuthFixture(t)
		id, err := uc.Register(ctx, "carol@example.com", "carol", "hunter2pass")
		require.NoError(t, err)

		result, err := uc.Login(ctx, "carol@example.com", "hunter2pass")
		require.NoError(t, err)
		assert.Equal(t, id, result.UserID)
		assert.NotEmpty(t, result.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, uc := newAuthFixture(t)
		_, err := uc.Register(ctx, "carol@example.com", "carol", "hunter2pass")
		require.NoError(t, err)

		_, err = uc.Login(ctx, "carol@example.com", "wrong-password")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown email reports the same error as a bad password", func(t *testing.T) {
		_, uc := newAuthFixture(t)

		_, err := uc.Login(ctx, "nobody@example.com", "whatever123")
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}
