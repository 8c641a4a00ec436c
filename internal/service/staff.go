package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/econopapi/terraza-zocalo-hosts/internal/domain"
	"github.com/econopapi/terraza-zocalo-hosts/internal/pkg/keygen"
	"github.com/econopapi/terraza-zocalo-hosts/internal/pkg/timezone"
	"github.com/econopapi/terraza-zocalo-hosts/internal/repository"
)

var (
	ErrKeyInUse = repository.ErrKeyInUse

	ErrControlTeamReserved = errors.New("team id 777 is reserved for the global report view")
)

type StaffProvisionRepository interface {
	CreateTeam(ctx context.Context, team domain.Team, leadKeyDigest string) (domain.Team, error)
	CreateHost(ctx context.Context, host domain.Host, keyDigest string) (domain.Host, error)
	CreateWaiter(ctx context.Context, waiter domain.Waiter, keyDigest string) (domain.Waiter, error)
	FindTeamByID(ctx context.Context, id uint) (domain.Team, error)
	FindAllWaiters(ctx context.Context) ([]domain.Waiter, error)
}

// StaffService provisions the static reference data (teams, hosts,
// waiters) and serves the per-team board view. Each Create returns the
// generated plaintext key exactly once; only its digest is persisted.
type StaffService struct {
	repo    StaffProvisionRepository
	seating ReportSeatingRepository
}

func NewStaffService(repo StaffProvisionRepository, seating ReportSeatingRepository) *StaffService {
	return &StaffService{
		repo:    repo,
		seating: seating,
	}
}

func (s *StaffService) CreateTeam(ctx context.Context, team domain.Team, customKey string) (domain.Team, string, error) {
	if team.ID == domain.ControlTeamID {
		return domain.Team{}, "", ErrControlTeamReserved
	}

	key := customKey
	if key == "" {
		key = keygen.NewKey()
	}

	created, err := s.repo.CreateTeam(ctx, team, keygen.Digest(key))
	if err != nil {
		return domain.Team{}, "", s.passThrough("s.repo.CreateTeam", err, ErrKeyInUse)
	}

	return created, key, nil
}

func (s *StaffService) CreateHost(ctx context.Context, host domain.Host, customKey string) (domain.Host, string, error) {
	if host.TeamID == domain.ControlTeamID {
		return domain.Host{}, "", ErrControlTeamReserved
	}

	if _, err := s.repo.FindTeamByID(ctx, host.TeamID); err != nil {
		return domain.Host{}, "", s.passThrough("s.repo.FindTeamByID", err, ErrTeamNotFound)
	}

	key := customKey
	if key == "" {
		key = keygen.NewKey()
	}

	created, err := s.repo.CreateHost(ctx, host, keygen.Digest(key))
	if err != nil {
		return domain.Host{}, "", s.passThrough("s.repo.CreateHost", err, ErrKeyInUse)
	}

	return created, key, nil
}

func (s *StaffService) CreateWaiter(ctx context.Context, waiter domain.Waiter, customKey string) (domain.Waiter, string, error) {
	key := customKey
	if key == "" {
		key = keygen.NewKey()
	}

	created, err := s.repo.CreateWaiter(ctx, waiter, keygen.Digest(key))
	if err != nil {
		return domain.Waiter{}, "", s.passThrough("s.repo.CreateWaiter", err, ErrKeyInUse)
	}

	return created, key, nil
}

// TeamBoard returns the data backing the per-team entry form: the team
// with its hosts, the waiter roster, and today's events for the team.
func (s *StaffService) TeamBoard(ctx context.Context, teamID uint) (domain.Team, []domain.Waiter, []domain.SeatingEvent, error) {
	team, err := s.repo.FindTeamByID(ctx, teamID)
	if err != nil {
		return domain.Team{}, nil, nil, s.passThrough("s.repo.FindTeamByID", err, ErrTeamNotFound)
	}

	waiters, err := s.repo.FindAllWaiters(ctx)
	if err != nil {
		return domain.Team{}, nil, nil, fmt.Errorf("s.repo.FindAllWaiters -> %w", err)
	}

	events, err := s.seating.FindByScope(ctx, domain.EventFilter{TeamID: teamID}, timezone.Today())
	if err != nil {
		return domain.Team{}, nil, nil, fmt.Errorf("s.seating.FindByScope -> %w", err)
	}

	return team, waiters, events, nil
}

func (s *StaffService) passThrough(op string, err error, sentinel error) error {
	if errors.Is(err, sentinel) {
		return sentinel
	}

	return fmt.Errorf("%v -> %w", op, err)
}
