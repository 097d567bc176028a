package user

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJSONNeverContainsPasswordHash(t *testing.T) {
	u := User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$secret-hash",
		Role:         RoleUser,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	// Both the entity and its DTO must redact the hash on serialization.
	for _, v := range []interface{}{u, u.ToDTO()} {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "password")
		assert.NotContains(t, string(raw), "secret-hash")
	}
}

func TestToDTO(t *testing.T) {
	u := User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
		Role:     RoleAdmin,
		IsActive: false,
	}

	dto := u.ToDTO()

	assert.Equal(t, u.ID, dto.ID)
	assert.Equal(t, u.Username, dto.Username)
	assert.Equal(t, u.Email, dto.Email)
	assert.Equal(t, RoleAdmin, dto.Role)
	assert.False(t, dto.IsActive)
}

func TestListUsersRequestSetDefaults(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"zero values", 0, 0, 1, 10},
		{"negative values", -5, -1, 1, 10},
		{"limit above cap", 2, 500, 2, 100},
		{"valid values kept", 3, 25, 3, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ListUsersRequest{Page: tt.page, Limit: tt.limit}
			req.SetDefaults()
			assert.Equal(t, tt.wantPage, req.Page)
			assert.Equal(t, tt.wantLimit, req.Limit)
		})
	}
}

func TestUpdateRoleRequestValidate(t *testing.T) {
	assert.NoError(t, UpdateRoleRequest{Role: RoleUser}.Validate())
	assert.NoError(t, UpdateRoleRequest{Role: RoleAdmin}.Validate())
	assert.Error(t, UpdateRoleRequest{}.Validate())
	assert.Error(t, UpdateRoleRequest{Role: "superadmin"}.Validate())
}

func TestUpdateStatusRequestValidate(t *testing.T) {
	active := true
	assert.NoError(t, UpdateStatusRequest{IsActive: &active}.Validate())
	assert.Error(t, UpdateStatusRequest{}.Validate())
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("ghost").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "hunter2hunter2"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, RegisterRequest{Username: "al", Email: "alice@example.com", Password: "hunter2hunter2"}.Validate())
	assert.Error(t, RegisterRequest{Username: "alice", Email: "nope", Password: "hunter2hunter2"}.Validate())
	assert.Error(t, RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "short"}.Validate())
}
