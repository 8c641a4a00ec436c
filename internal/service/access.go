package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/econopapi/terraza-zocalo-hosts/internal/domain"
	"github.com/econopapi/terraza-zocalo-hosts/internal/pkg/keygen"
	"github.com/econopapi/terraza-zocalo-hosts/internal/repository"
)

var (
	ErrKeyNotFound = errors.New("no identity matches the presented key")
	ErrUnknownRole = errors.New("unknown role")
)

type AccessStaffRepository interface {
	FindTeamByLeadKeyDigest(ctx context.Context, digest string) (domain.Team, error)
	FindHostByKeyDigest(ctx context.Context, digest string) (domain.Host, error)
	FindWaiterByKeyDigest(ctx context.Context, digest string) (domain.Waiter, error)
}

// AccessService maps a presented secret key to a staff identity. Keys are
// never stored raw: the lookup is by SHA-256 digest, so no comparison
// touches the secret itself.
type AccessService struct {
	repo AccessStaffRepository
}

func NewAccessService(repo AccessStaffRepository) *AccessService {
	return &AccessService{
		repo: repo,
	}
}

func (s *AccessService) Resolve(ctx context.Context, role domain.Role, key string) (domain.Identity, error) {
	digest := keygen.Digest(key)

	switch role {
	case domain.RoleHost:
		host, err := s.repo.FindHostByKeyDigest(ctx, digest)
		if err != nil {
			return domain.Identity{}, s.mapLookupErr("s.repo.FindHostByKeyDigest", err)
		}

		return domain.Identity{Role: domain.RoleHost, ID: host.ID, Name: host.Name, TeamID: host.TeamID}, nil

	case domain.RoleWaiter:
		waiter, err := s.repo.FindWaiterByKeyDigest(ctx, digest)
		if err != nil {
			return domain.Identity{}, s.mapLookupErr("s.repo.FindWaiterByKeyDigest", err)
		}

		return domain.Identity{Role: domain.RoleWaiter, ID: waiter.ID, Name: waiter.Name}, nil

	case domain.RoleLead:
		team, err := s.repo.FindTeamByLeadKeyDigest(ctx, digest)
		if err != nil {
			return domain.Identity{}, s.mapLookupErr("s.repo.FindTeamByLeadKeyDigest", err)
		}

		return domain.Identity{Role: domain.RoleLead, ID: team.ID, Name: team.LeadName, TeamID: team.ID}, nil

	default:
		return domain.Identity{}, ErrUnknownRole
	}
}

func (s *AccessService) mapLookupErr(op string, err error) error {
	if errors.Is(err, repository.ErrTeamNotFound) ||
		errors.Is(err, repository.ErrHostNotFound) ||
		errors.Is(err, repository.ErrWaiterNotFound) {
		return ErrKeyNotFound
	}

	return fmt.Errorf("%v -> %w", op, err)
}
