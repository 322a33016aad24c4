package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billmate/billmate-go/models"
	"github.com/billmate/billmate-go/session"
)

func newStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.Open(session.NewMemoryStorage())
	require.NoError(t, err)
	return store
}

func TestChecker_EmptySessionHasNothing(t *testing.T) {
	checker := NewChecker(newStore(t))

	assert.False(t, checker.HasModuleAccess("billing"))
	assert.False(t, checker.HasPermission("invoices:read"))
}

func TestChecker_IdentityCapabilities(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.SetIdentity(&models.Identity{
		ID:          "user-1",
		Modules:     []string{"billing", "settings"},
		Permissions: []string{"invoices:read", "users:invite"},
	}, ""))
	checker := NewChecker(store)

	assert.True(t, checker.HasModuleAccess("billing"))
	assert.False(t, checker.HasModuleAccess("reports"))
	assert.True(t, checker.HasPermission("users:invite"))
	assert.False(t, checker.HasPermission("users:delete"))
}

func TestChecker_GuestCapabilities(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.SetGuest(&models.GuestAccess{
		Modules:     []string{"signup"},
		Permissions: []string{"invitations:accept"},
	}))
	checker := NewChecker(store)

	assert.True(t, checker.HasModuleAccess("signup"))
	assert.True(t, checker.HasPermission("invitations:accept"))
	assert.False(t, checker.HasModuleAccess("billing"))
}

func TestChecker_ClearRevokesCapabilities(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.SetIdentity(&models.Identity{
		ID:      "user-1",
		Modules: []string{"billing"},
	}, ""))
	checker := NewChecker(store)
	require.True(t, checker.HasModuleAccess("billing"))

	store.Clear()

	assert.False(t, checker.HasModuleAccess("billing"))
}
