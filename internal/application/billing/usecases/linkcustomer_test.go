package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aula/internal/domain/user"
	uvo "aula/internal/domain/user/valueobjects"
	"aula/internal/shared/errors"
)

func unlinkedUser(t *testing.T, id uint) *user.User {
	t.Helper()
	email, err := uvo.NewEmail(fmt.Sprintf("user%d@example.com", id))
	require.NoError(t, err)
	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, fmt.Sprintf("uuid-%d", id), email, "Test User", user.RoleStudent, uvo.StatusActive, nil, nil, now, now, 1)
	require.NoError(t, err)
	return u
}

func TestLinkCustomerByClientReference(t *testing.T) {
	u := unlinkedUser(t, 42)
	var updated bool
	users := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			assert.Equal(t, uint(42), id)
			return u, nil
		},
		UpdateFunc: func(ctx context.Context, updatedUser *user.User) error {
			updated = true
			return nil
		},
	}
	uc := NewLinkCustomerUseCase(users, newNopLogger())

	err := uc.Execute(context.Background(), LinkCustomerCommand{
		ProviderCustomerID: "cus_new",
		ClientReferenceID:  "42",
	})

	require.NoError(t, err)
	assert.True(t, updated)
	require.NotNil(t, u.ProviderCustomerID())
	assert.Equal(t, "cus_new", *u.ProviderCustomerID())
}

func TestLinkCustomerFallsBackToEmail(t *testing.T) {
	u := unlinkedUser(t, 7)
	users := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			assert.Equal(t, "alice@example.com", email)
			return u, nil
		},
	}
	uc := NewLinkCustomerUseCase(users, newNopLogger())

	err := uc.Execute(context.Background(), LinkCustomerCommand{
		ProviderCustomerID: "cus_new",
		ClientReferenceID:  "999",
		CustomerEmail:      "alice@example.com",
	})

	require.NoError(t, err)
	require.NotNil(t, u.ProviderCustomerID())
}

func TestLinkCustomerReplayIsIdempotent(t *testing.T) {
	u := testUser(t, 42, user.RoleStudent) // already linked to cus_abc
	users := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return u, nil
		},
		UpdateFunc: func(ctx context.Context, updatedUser *user.User) error {
			t.Fatal("replay must not write")
			return nil
		},
	}
	uc := NewLinkCustomerUseCase(users, newNopLogger())

	err := uc.Execute(context.Background(), LinkCustomerCommand{
		ProviderCustomerID: "cus_abc",
		ClientReferenceID:  "42",
	})

	assert.NoError(t, err)
}

func TestLinkCustomerRejectsRelink(t *testing.T) {
	u := testUser(t, 42, user.RoleStudent) // linked to cus_abc
	users := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return u, nil
		},
	}
	uc := NewLinkCustomerUseCase(users, newNopLogger())

	err := uc.Execute(context.Background(), LinkCustomerCommand{
		ProviderCustomerID: "cus_other",
		ClientReferenceID:  "42",
	})

	assert.True(t, errors.IsConflictError(err))
}

func TestLinkCustomerNoResolvableUser(t *testing.T) {
	users := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
	}
	uc := NewLinkCustomerUseCase(users, newNopLogger())

	err := uc.Execute(context.Background(), LinkCustomerCommand{
		ProviderCustomerID: "cus_new",
		ClientReferenceID:  "1",
		CustomerEmail:      "ghost@example.com",
	})

	assert.Error(t, err)
}
