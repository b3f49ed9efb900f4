package services

import (
	"context"
	"testing"

	"github.com/Dosada05/sports-league-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_UpdateRole_Success(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepository()
	ctx := context.Background()
	user := &models.User{Username: "guest1", Email: "guest1@example.com", Role: models.RoleGuest, PasswordHash: "x"}
	require.NoError(t, repo.Create(ctx, user))

	svc := NewUserService(repo)
	updated, err := svc.UpdateRole(ctx, user.ID, "coach")
	require.NoError(t, err)

	assert.Equal(t, models.RoleCoach, updated.Role)
	assert.Empty(t, updated.PasswordHash)

	// Повторное чтение отражает новую роль.
	stored, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleCoach, stored.Role)
}

func TestUserService_UpdateRole_InvalidRole(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepository()
	ctx := context.Background()
	user := &models.User{Username: "guest2", Email: "guest2@example.com", Role: models.RoleGuest, PasswordHash: "x"}
	require.NoError(t, repo.Create(ctx, user))

	svc := NewUserService(repo)
	_, err := svc.UpdateRole(ctx, user.ID, "superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)

	// Неудачная попытка ничего не меняет.
	stored, getErr := repo.GetByID(ctx, user.ID)
	require.NoError(t, getErr)
	assert.Equal(t, models.RoleGuest, stored.Role)
}

func TestUserService_UpdateRole_CaseSensitive(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepository()
	ctx := context.Background()
	user := &models.User{Username: "guest3", Email: "guest3@example.com", Role: models.RoleGuest, PasswordHash: "x"}
	require.NoError(t, repo.Create(ctx, user))

	svc := NewUserService(repo)
	_, err := svc.UpdateRole(ctx, user.ID, "Coach")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestUserService_UpdateRole_UserNotFound(t *testing.T) {
	t.Parallel()

	svc := NewUserService(newStubUserRepository())
	_, err := svc.UpdateRole(context.Background(), 9999999, "admin")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_ListUsers_StripsPasswordHash(t *testing.T) {
	t.Parallel()

	repo := newStubUserRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &models.User{Username: "a", Email: "a@example.com", Role: models.RolePlayer, PasswordHash: "hash-a"}))
	require.NoError(t, repo.Create(ctx, &models.User{Username: "b", Email: "b@example.com", Role: models.RoleAdmin, PasswordHash: "hash-b"}))

	svc := NewUserService(repo)
	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	for _, user := range users {
		assert.Empty(t, user.PasswordHash)
	}
}
