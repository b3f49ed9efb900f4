package services

import (
	"context"
	"testing"

	"github.com/Dosada05/sports-league-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register_HashesPasswordAndDefaultsRole(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepository()
	svc := NewAuthService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RolePlayer, user.Role)
	// Хеш не возвращается наружу.
	assert.Empty(t, user.PasswordHash)

	stored, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, stored.PasswordHash)
	// В хранилище не открытый текст, а валидный bcrypt-хеш пароля.
	assert.NotEqual(t, "secret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret")))
}

func TestAuthService_Register_UsernameConflict(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepository()
	svc := NewAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Username: "alice", Email: "other@x.com", Password: "secret"})
	assert.ErrorIs(t, err, ErrUserUsernameConflict)

	// Частичная запись не появляется.
	users, listErr := repo.List(ctx)
	require.NoError(t, listErr)
	assert.Len(t, users, 1)
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepository()
	svc := NewAuthService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)

	user, err := svc.Login(ctx, LoginInput{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.PasswordHash)

	_, err = svc.Login(ctx, LoginInput{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)

	_, err = svc.Login(ctx, LoginInput{Username: "nobody", Password: "secret"})
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
}
