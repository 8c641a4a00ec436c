package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/econopapi/terraza-zocalo-hosts/internal/domain"
	"github.com/econopapi/terraza-zocalo-hosts/internal/pkg/timezone"
	"github.com/econopapi/terraza-zocalo-hosts/internal/repository"
)

var (
	ErrTeamNotFound   = repository.ErrTeamNotFound
	ErrHostNotFound   = repository.ErrHostNotFound
	ErrWaiterNotFound = repository.ErrWaiterNotFound
	ErrEventNotFound  = repository.ErrEventNotFound

	ErrTeamMismatch      = errors.New("host does not belong to the requested team")
	ErrNotAssignedWaiter = errors.New("only the assigned waiter may confirm a seating")
	ErrInvalidPartySize  = errors.New("party size must be at least 1")
)

type SeatingEventRepository interface {
	Create(ctx context.Context, event domain.SeatingEvent) (domain.SeatingEvent, error)
	FindByID(ctx context.Context, id uint) (domain.SeatingEvent, error)
	SetConfirmed(ctx context.Context, id uint, confirmed bool) (domain.SeatingEvent, error)
}

type SeatingStaffRepository interface {
	FindTeamByID(ctx context.Context, id uint) (domain.Team, error)
	FindHostByID(ctx context.Context, id uint) (domain.Host, error)
	FindWaiterByID(ctx context.Context, id uint) (domain.Waiter, error)
}

// SeatingService records hosteos and gates the confirmed flag, the only
// mutation allowed after creation.
type SeatingService struct {
	repo  SeatingEventRepository
	staff SeatingStaffRepository
}

func NewSeatingService(repo SeatingEventRepository, staff SeatingStaffRepository) *SeatingService {
	return &SeatingService{
		repo:  repo,
		staff: staff,
	}
}

// Record creates a seating event for the given team. When caller is a
// host identity, the event is locked to that host no matter what host id
// the request carried. The host's team must match teamID.
func (s *SeatingService) Record(ctx context.Context, teamID uint, event domain.SeatingEvent, caller *domain.Identity) (domain.SeatingEvent, error) {
	if event.PartySize < 1 {
		return domain.SeatingEvent{}, ErrInvalidPartySize
	}

	if teamID == domain.ControlTeamID {
		return domain.SeatingEvent{}, ErrTeamMismatch
	}

	if _, err := s.staff.FindTeamByID(ctx, teamID); err != nil {
		return domain.SeatingEvent{}, s.passThrough("s.staff.FindTeamByID", err, ErrTeamNotFound)
	}

	if caller != nil && caller.Role == domain.RoleHost {
		event.HostID = caller.ID
	}

	host, err := s.staff.FindHostByID(ctx, event.HostID)
	if err != nil {
		return domain.SeatingEvent{}, s.passThrough("s.staff.FindHostByID", err, ErrHostNotFound)
	}

	if host.TeamID != teamID {
		return domain.SeatingEvent{}, ErrTeamMismatch
	}

	if _, err = s.staff.FindWaiterByID(ctx, event.WaiterID); err != nil {
		return domain.SeatingEvent{}, s.passThrough("s.staff.FindWaiterByID", err, ErrWaiterNotFound)
	}

	if event.Date.IsZero() || event.TimeOfDay == "" {
		now := timezone.Now()
		event.Date = timezone.DateOf(now)
		event.TimeOfDay = now.Format(timezone.TimeLayout)
	}
	event.Confirmed = false

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.SeatingEvent{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Confirm sets the confirmed flag of an event. Only the waiter recorded
// on the event may do so; the update is idempotent.
func (s *SeatingService) Confirm(ctx context.Context, eventID uint, confirmed bool, caller domain.Identity) (domain.SeatingEvent, error) {
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return domain.SeatingEvent{}, s.passThrough("s.repo.FindByID", err, ErrEventNotFound)
	}

	if caller.Role != domain.RoleWaiter || caller.ID != event.WaiterID {
		return domain.SeatingEvent{}, ErrNotAssignedWaiter
	}

	updated, err := s.repo.SetConfirmed(ctx, eventID, confirmed)
	if err != nil {
		return domain.SeatingEvent{}, fmt.Errorf("s.repo.SetConfirmed -> %w", err)
	}

	return updated, nil
}

// passThrough keeps sentinel errors unwrapped for the handlers while
// wrapping everything else with the failing call site.
func (s *SeatingService) passThrough(op string, err error, sentinel error) error {
	if errors.Is(err, sentinel) {
		return sentinel
	}

	return fmt.Errorf("%v -> %w", op, err)
}
