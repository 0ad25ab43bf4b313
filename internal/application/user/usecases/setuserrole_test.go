package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aula/internal/domain/shared/events"
	"aula/internal/domain/user"
	vo "aula/internal/domain/user/valueobjects"
	"aula/internal/shared/errors"
)

func storedUser(t *testing.T, id uint, role user.Role) *user.User {
	t.Helper()
	email, err := vo.NewEmail(fmt.Sprintf("user%d@example.com", id))
	require.NoError(t, err)
	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, fmt.Sprintf("uuid-%d", id), email, "Test User", role, vo.StatusActive, nil, nil, now, now, 1)
	require.NoError(t, err)
	return u
}

type capturingPublisher struct {
	published []events.DomainEvent
}

func (p *capturingPublisher) Publish(event events.DomainEvent) error {
	p.published = append(p.published, event)
	return nil
}

func (p *capturingPublisher) PublishAll(evts []events.DomainEvent) error {
	p.published = append(p.published, evts...)
	return nil
}

func TestSetUserRole(t *testing.T) {
	u := storedUser(t, 7, user.RoleStudent)
	var updated bool
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return u, nil
		},
		UpdateFunc: func(ctx context.Context, updatedUser *user.User) error {
			updated = true
			return nil
		},
	}
	syncer := &mockRoleSyncer{}
	publisher := &capturingPublisher{}
	uc := NewSetUserRoleUseCase(repo, syncer, publisher, newNopLogger())

	err := uc.Execute(context.Background(), SetUserRoleCommand{UserID: 7, Role: "academy"})

	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, user.RoleAcademy, u.Role())
	require.Len(t, syncer.Synced, 1)
	assert.Equal(t, user.RoleAcademy, syncer.Synced[0].Role)
	require.Len(t, publisher.published, 1)
	assert.Equal(t, user.EventTypeUserRoleChanged, publisher.published[0].GetEventType())
}

func TestSetUserRoleSameRoleIsNoOp(t *testing.T) {
	u := storedUser(t, 7, user.RoleAcademy)
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return u, nil
		},
		UpdateFunc: func(ctx context.Context, updatedUser *user.User) error {
			t.Fatal("no update expected for an unchanged role")
			return nil
		},
	}
	publisher := &capturingPublisher{}
	uc := NewSetUserRoleUseCase(repo, nil, publisher, newNopLogger())

	err := uc.Execute(context.Background(), SetUserRoleCommand{UserID: 7, Role: "academy"})

	require.NoError(t, err)
	assert.Empty(t, publisher.published)
}

func TestSetUserRoleRejectsInvalidRole(t *testing.T) {
	uc := NewSetUserRoleUseCase(&mockUserRepository{}, nil, nil, newNopLogger())

	for _, role := range []string{"guest", "superuser", ""} {
		err := uc.Execute(context.Background(), SetUserRoleCommand{UserID: 7, Role: role})
		assert.True(t, errors.IsValidationError(err), "role %q must be rejected", role)
	}
}

func TestSetUserRoleUserNotFound(t *testing.T) {
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
	}
	uc := NewSetUserRoleUseCase(repo, nil, nil, newNopLogger())

	err := uc.Execute(context.Background(), SetUserRoleCommand{UserID: 99, Role: "admin"})

	assert.True(t, errors.IsNotFoundError(err))
}
