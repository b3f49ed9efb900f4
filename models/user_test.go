package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRole_Valid(t *testing.T) {
	t.Parallel()

	valid := []UserRole{RolePlayer, RoleCoach, RoleAdmin, RoleGuest}
	for _, role := range valid {
		assert.True(t, role.Valid(), "role %q must be valid", role)
	}

	// Роли сравниваются с учётом регистра, никакой нормализации.
	invalid := []UserRole{"", "Player", "COACH", "superuser", "referee", " admin"}
	for _, role := range invalid {
		assert.False(t, role.Valid(), "role %q must be invalid", role)
	}
}

func TestUser_JSONHidesPasswordHash(t *testing.T) {
	t.Parallel()

	user := User{
		ID:           1,
		Username:     "alice",
		Email:        "alice@example.com",
		Role:         RolePlayer,
		PasswordHash: "bcrypt-hash",
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "bcrypt-hash")
	assert.NotContains(t, string(data), "password")
	assert.Contains(t, string(data), `"username":"alice"`)
}
