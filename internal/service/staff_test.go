package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/econopapi/terraza-zocalo-hosts/internal/domain"
	"github.com/econopapi/terraza-zocalo-hosts/internal/pkg/keygen"
	"github.com/econopapi/terraza-zocalo-hosts/internal/pkg/timezone"
)

func staffFixture() (*StaffService, *staffStore, *seatingStore) {
	staff := newStaffStore()
	events := newSeatingStore(staff)

	return NewStaffService(staff, events), staff, events
}

func TestStaffService_CreateTeam(t *testing.T) {
	ctx := context.Background()

	t.Run("generates a key when none is supplied", func(t *testing.T) {
		svc, staff, _ := staffFixture()

		team, key, err := svc.CreateTeam(ctx, domain.Team{LeadName: "Ana García"}, "")

		require.NoError(t, err)
		assert.NotZero(t, team.ID)
		assert.NotEmpty(t, key)

		// The key round-trips through the access path.
		resolved, err := NewAccessService(staff).Resolve(ctx, domain.RoleLead, key)
		require.NoError(t, err)
		assert.Equal(t, team.ID, resolved.ID)
	})

	t.Run("honors a custom key", func(t *testing.T) {
		svc, staff, _ := staffFixture()

		team, key, err := svc.CreateTeam(ctx, domain.Team{LeadName: "Ana García"}, "custom-key-123")

		require.NoError(t, err)
		assert.Equal(t, "custom-key-123", key)
		assert.Equal(t, team.ID, staff.teamKeys[keygen.Digest("custom-key-123")])
	})

	t.Run("rejects the reserved control id", func(t *testing.T) {
		svc, _, _ := staffFixture()

		_, _, err := svc.CreateTeam(ctx, domain.Team{ID: domain.ControlTeamID, LeadName: "Nope"}, "")

		assert.ErrorIs(t, err, ErrControlTeamReserved)
	})

	t.Run("rejects a key already in use", func(t *testing.T) {
		svc, _, _ := staffFixture()

		_, _, err := svc.CreateTeam(ctx, domain.Team{LeadName: "Ana García"}, "shared-key-001")
		require.NoError(t, err)

		_, _, err = svc.CreateTeam(ctx, domain.Team{LeadName: "Carlos Ruiz"}, "shared-key-001")
		assert.ErrorIs(t, err, ErrKeyInUse)
	})
}

func TestStaffService_CreateHost(t *testing.T) {
	ctx := context.Background()

	t.Run("requires an existing team", func(t *testing.T) {
		svc, _, _ := staffFixture()

		_, _, err := svc.CreateHost(ctx, domain.Host{TeamID: 99, Name: "Laura"}, "")
		assert.ErrorIs(t, err, ErrTeamNotFound)
	})

	t.Run("rejects the control team", func(t *testing.T) {
		svc, _, _ := staffFixture()

		_, _, err := svc.CreateHost(ctx, domain.Host{TeamID: domain.ControlTeamID, Name: "Laura"}, "")
		assert.ErrorIs(t, err, ErrControlTeamReserved)
	})

	t.Run("creates under an existing team", func(t *testing.T) {
		svc, staff, _ := staffFixture()
		staff.addTeam(1, "Ana García", "lead-1")

		host, key, err := svc.CreateHost(ctx, domain.Host{TeamID: 1, Name: "Laura"}, "")

		require.NoError(t, err)
		assert.Equal(t, uint(1), host.TeamID)
		assert.NotEmpty(t, key)
	})
}

func TestStaffService_TeamBoard(t *testing.T) {
	ctx := context.Background()

	svc, staff, events := staffFixture()
	staff.addTeam(1, "Ana García", "lead-1")
	staff.addHost(10, 1, "Laura", "host-10")
	staff.addWaiter(20, "Mesero 1", "waiter-20")
	staff.addWaiter(21, "Mesero 2", "waiter-21")

	// One event today, one on an older date that must not show up.
	_, err := events.Create(ctx, domain.SeatingEvent{
		HostID: 10, WaiterID: 20, Date: timezone.Today(), TimeOfDay: "13:00:00", PartySize: 4,
	})
	require.NoError(t, err)
	_, err = events.Create(ctx, domain.SeatingEvent{
		HostID: 10, WaiterID: 20, Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), TimeOfDay: "13:00:00", PartySize: 2,
	})
	require.NoError(t, err)

	team, waiters, todays, err := svc.TeamBoard(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, "Ana García", team.LeadName)
	assert.Len(t, waiters, 2)
	require.Len(t, todays, 1)
	assert.Equal(t, 4, todays[0].PartySize)

	_, _, _, err = svc.TeamBoard(ctx, 99)
	assert.ErrorIs(t, err, ErrTeamNotFound)
}
