package service_test

import (
	"testing"

	"github.com/evandanowitz/movie-api/internal/service"
	"github.com/evandanowitz/movie-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	repo := testutil.NewFakeUserRepository()
	userService := service.NewUserService(repo, testutil.TestConfig())
	ctx := t.Context()

	t.Run("successful registration hashes the password", func(t *testing.T) {
		user, err := userService.Register(ctx, service.RegisterInput{
			Username: "alice01",
			Password: "Secr3t!",
			Email:    "a@example.com",
		})
		require.NoError(t, err)

		assert.Equal(t, "alice01", user.Username)
		assert.NotEqual(t, "Secr3t!", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Secr3t!")))
		assert.Empty(t, user.FavoriteMovies)
		assert.False(t, user.ID.IsZero())
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := userService.Register(ctx, service.RegisterInput{
			Username: "alice01",
			Password: "another",
			Email:    "b@example.com",
		})
		assert.ErrorIs(t, err, service.ErrUsernameExists)
	})
}

func TestUserService_Update(t *testing.T) {
	repo := testutil.NewFakeUserRepository()
	userService := service.NewUserService(repo, testutil.TestConfig())
	ctx := t.Context()

	user, _ := testutil.NewUserBuilder().
		WithUsername("updateuser").
		WithPassword("oldpassword").
		Build(t, repo)

	t.Run("update rehashes the password", func(t *testing.T) {
		updated, err := userService.Update(ctx, user.Username, service.UpdateInput{
			Username: "updateuser",
			Password: "newpassword",
			Email:    "new@example.com",
		})
		require.NoError(t, err)

		assert.Equal(t, "new@example.com", updated.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpassword")))
		assert.Error(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("oldpassword")))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := userService.Update(ctx, "nosuchuser", service.UpdateInput{
			Username: "nosuchuser",
			Password: "whatever",
			Email:    "x@example.com",
		})
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}

func TestUserService_Favorites(t *testing.T) {
	repo := testutil.NewFakeUserRepository()
	userService := service.NewUserService(repo, testutil.TestConfig())
	ctx := t.Context()

	user, _ := testutil.NewUserBuilder().WithUsername("favuser").Build(t, repo)

	first := bson.NewObjectID()
	second := bson.NewObjectID()

	t.Run("favorites keep insertion order", func(t *testing.T) {
		_, err := userService.AddFavorite(ctx, user.Username, first.Hex())
		require.NoError(t, err)

		updated, err := userService.AddFavorite(ctx, user.Username, second.Hex())
		require.NoError(t, err)

		assert.Equal(t, []bson.ObjectID{first, second}, updated.FavoriteMovies)
	})

	t.Run("remove favorite", func(t *testing.T) {
		updated, err := userService.RemoveFavorite(ctx, user.Username, first.Hex())
		require.NoError(t, err)
		assert.Equal(t, []bson.ObjectID{second}, updated.FavoriteMovies)
	})

	t.Run("invalid movie id", func(t *testing.T) {
		_, err := userService.AddFavorite(ctx, user.Username, "not-a-hex-id")
		assert.ErrorIs(t, err, service.ErrInvalidMovieID)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := userService.AddFavorite(ctx, "nosuchuser", first.Hex())
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}

func TestUserService_Delete(t *testing.T) {
	repo := testutil.NewFakeUserRepository()
	userService := service.NewUserService(repo, testutil.TestConfig())
	ctx := t.Context()

	user, _ := testutil.NewUserBuilder().WithUsername("deleteuser").Build(t, repo)

	require.NoError(t, userService.Delete(ctx, user.Username))
	assert.ErrorIs(t, userService.Delete(ctx, user.Username), service.ErrUserNotFound)
}
