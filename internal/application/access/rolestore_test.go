package access

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aula/internal/domain/user"
	vo "aula/internal/domain/user/valueobjects"
)

func reconstructedUser(t *testing.T, id uint, role user.Role) *user.User {
	t.Helper()
	email, err := vo.NewEmail(fmt.Sprintf("user%d@example.com", id))
	require.NoError(t, err)
	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, fmt.Sprintf("uuid-%d", id), email, "Test User", role, vo.StatusActive, nil, nil, now, now, 1)
	require.NoError(t, err)
	return u
}

func TestResolveRoleAdminTokenFastPath(t *testing.T) {
	dbCalled := false
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			dbCalled = true
			return nil, nil
		},
	}
	store := NewRoleStore(repo, 0, newNopLogger())

	res := store.ResolveRole(context.Background(), 1, TokenClaims{Role: "admin"})

	assert.Equal(t, user.RoleAdmin, res.Role)
	assert.True(t, res.AdminOverride)
	assert.False(t, dbCalled, "admin claim must not trigger a database lookup")
}

func TestResolveRoleAdminInRolesList(t *testing.T) {
	store := NewRoleStore(&mockUserRepository{}, 0, newNopLogger())

	res := store.ResolveRole(context.Background(), 1, TokenClaims{Roles: []string{"student", "admin"}})

	assert.Equal(t, user.RoleAdmin, res.Role)
	assert.True(t, res.AdminOverride)
}

func TestResolveRoleFromDatabase(t *testing.T) {
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return reconstructedUser(t, id, user.RoleAcademy), nil
		},
	}
	store := NewRoleStore(repo, 0, newNopLogger())

	res := store.ResolveRole(context.Background(), 7, TokenClaims{})

	assert.Equal(t, user.RoleAcademy, res.Role)
	assert.False(t, res.AdminOverride)
}

func TestResolveRoleFailsClosed(t *testing.T) {
	tests := []struct {
		name string
		repo *mockUserRepository
	}{
		{
			name: "database error",
			repo: &mockUserRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
					return nil, fmt.Errorf("connection refused")
				},
			},
		},
		{
			name: "no record",
			repo: &mockUserRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
					return nil, nil
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewRoleStore(tt.repo, 0, newNopLogger())
			res := store.ResolveRole(context.Background(), 7, TokenClaims{})
			assert.Equal(t, user.RoleGuest, res.Role)
			assert.False(t, res.AdminOverride)
		})
	}
}

func TestResolveRoleMalformedClaimFallsThrough(t *testing.T) {
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return reconstructedUser(t, id, user.RoleStudent), nil
		},
	}
	store := NewRoleStore(repo, 0, newNopLogger())

	res := store.ResolveRole(context.Background(), 7, TokenClaims{Role: "superuser"})

	assert.Equal(t, user.RoleStudent, res.Role, "unknown claim values must fall through to the stored record")
}

func TestResolveRoleAnonymous(t *testing.T) {
	store := NewRoleStore(&mockUserRepository{}, 0, newNopLogger())

	res := store.ResolveRole(context.Background(), 0, TokenClaims{})

	assert.Equal(t, user.RoleGuest, res.Role)
}

func TestResolveRoleBoundedTimeout(t *testing.T) {
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(5 * time.Second):
				return reconstructedUser(t, id, user.RoleStudent), nil
			}
		},
	}
	store := NewRoleStore(repo, 10*time.Millisecond, newNopLogger())

	start := time.Now()
	res := store.ResolveRole(context.Background(), 7, TokenClaims{})

	assert.Equal(t, user.RoleGuest, res.Role, "a slow lookup must time out to guest")
	assert.Less(t, time.Since(start), time.Second)
}
