package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "aula/internal/domain/user/valueobjects"
)

func newTestUser(t *testing.T) *User {
	t.Helper()
	email, err := vo.NewEmail("maria@example.com")
	require.NoError(t, err)
	u, err := NewUser("usr-1234", email, "Maria")
	require.NoError(t, err)
	u.Events() // drain creation event
	return u
}

func TestNewUser(t *testing.T) {
	email, err := vo.NewEmail("maria@example.com")
	require.NoError(t, err)

	u, err := NewUser("usr-1234", email, "Maria")
	require.NoError(t, err)

	assert.Equal(t, RoleStudent, u.Role())
	assert.True(t, u.IsActive())
	assert.Nil(t, u.ProviderCustomerID())

	evts := u.Events()
	require.Len(t, evts, 1)
	assert.Equal(t, EventTypeUserCreated, evts[0].GetEventType())
	assert.Empty(t, u.Events(), "events should be drained")
}

func TestNewUserValidation(t *testing.T) {
	email, _ := vo.NewEmail("x@example.com")

	_, err := NewUser("", email, "X")
	assert.Error(t, err)

	_, err = NewUser("usr-1", nil, "X")
	assert.Error(t, err)

	_, err = NewUser("usr-1", email, "")
	assert.Error(t, err)
}

func TestChangeRole(t *testing.T) {
	u := newTestUser(t)

	err := u.ChangeRole(RoleAcademy)
	require.NoError(t, err)
	assert.Equal(t, RoleAcademy, u.Role())

	evts := u.Events()
	require.Len(t, evts, 1)
	changed, ok := evts[0].(*UserRoleChangedEvent)
	require.True(t, ok)
	assert.Equal(t, RoleStudent, changed.PreviousRole)
	assert.Equal(t, RoleAcademy, changed.NewRole)
}

func TestChangeRoleRejectsGuestAndInvalid(t *testing.T) {
	u := newTestUser(t)

	assert.Error(t, u.ChangeRole(RoleGuest))
	assert.Error(t, u.ChangeRole(Role("owner")))
	assert.Equal(t, RoleStudent, u.Role())
}

func TestChangeRoleSameRoleIsNoop(t *testing.T) {
	u := newTestUser(t)

	require.NoError(t, u.ChangeRole(RoleStudent))
	assert.Empty(t, u.Events())
}

func TestLinkProviderCustomer(t *testing.T) {
	u := newTestUser(t)

	require.NoError(t, u.LinkProviderCustomer("cus_abc"))
	require.NotNil(t, u.ProviderCustomerID())
	assert.Equal(t, "cus_abc", *u.ProviderCustomerID())

	// Relinking the same customer is idempotent.
	require.NoError(t, u.LinkProviderCustomer("cus_abc"))

	// Relinking a different customer is rejected.
	err := u.LinkProviderCustomer("cus_other")
	assert.Error(t, err)
	assert.Equal(t, "cus_abc", *u.ProviderCustomerID())
}
