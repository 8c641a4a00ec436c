package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/econopapi/terraza-zocalo-hosts/internal/domain"
)

func TestAccessService_Resolve(t *testing.T) {
	staff := newStaffStore()
	staff.addTeam(1, "Ana García", "lead-key-0001")
	staff.addHost(10, 1, "Laura", "host-key-0010")
	staff.addWaiter(20, "Mesero 1", "waiter-key-0020")

	svc := NewAccessService(staff)
	ctx := context.Background()

	t.Run("resolves a host with its owning team", func(t *testing.T) {
		identity, err := svc.Resolve(ctx, domain.RoleHost, "host-key-0010")

		require.NoError(t, err)
		assert.Equal(t, domain.RoleHost, identity.Role)
		assert.Equal(t, uint(10), identity.ID)
		assert.Equal(t, uint(1), identity.TeamID)
		assert.Equal(t, "Laura", identity.Name)
	})

	t.Run("resolves a waiter", func(t *testing.T) {
		identity, err := svc.Resolve(ctx, domain.RoleWaiter, "waiter-key-0020")

		require.NoError(t, err)
		assert.Equal(t, domain.RoleWaiter, identity.Role)
		assert.Equal(t, uint(20), identity.ID)
		assert.Zero(t, identity.TeamID)
	})

	t.Run("resolves a lead to its team", func(t *testing.T) {
		identity, err := svc.Resolve(ctx, domain.RoleLead, "lead-key-0001")

		require.NoError(t, err)
		assert.Equal(t, domain.RoleLead, identity.Role)
		assert.Equal(t, uint(1), identity.ID)
		assert.Equal(t, uint(1), identity.TeamID)
	})

	t.Run("trims the presented key", func(t *testing.T) {
		identity, err := svc.Resolve(ctx, domain.RoleWaiter, "  waiter-key-0020 ")

		require.NoError(t, err)
		assert.Equal(t, uint(20), identity.ID)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := svc.Resolve(ctx, domain.RoleHost, "no-such-key")

		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("key of a different role does not resolve", func(t *testing.T) {
		_, err := svc.Resolve(ctx, domain.RoleWaiter, "host-key-0010")

		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := svc.Resolve(ctx, domain.Role("manager"), "host-key-0010")

		assert.ErrorIs(t, err, ErrUnknownRole)
	})
}
