package repository

import (
	"context"
	"fmt"

	"github.com/econopapi/terraza-zocalo-hosts/internal/domain"
	"github.com/econopapi/terraza-zocalo-hosts/internal/repository/dao"
)

var (
	ErrTeamNotFound   = dao.ErrTeamNotFound
	ErrHostNotFound   = dao.ErrHostNotFound
	ErrWaiterNotFound = dao.ErrWaiterNotFound
	ErrKeyInUse       = dao.ErrKeyDigestTaken
)

type TeamDAO interface {
	Insert(ctx context.Context, team dao.Team) (dao.Team, error)
	FindByID(ctx context.Context, id uint) (dao.Team, error)
	FindByLeadKeyDigest(ctx context.Context, digest string) (dao.Team, error)
}

type HostDAO interface {
	Insert(ctx context.Context, host dao.Host) (dao.Host, error)
	FindByID(ctx context.Context, id uint) (dao.Host, error)
	FindByKeyDigest(ctx context.Context, digest string) (dao.Host, error)
	FindByTeamID(ctx context.Context, teamID uint) ([]dao.Host, error)
}

type WaiterDAO interface {
	Insert(ctx context.Context, waiter dao.Waiter) (dao.Waiter, error)
	FindByID(ctx context.Context, id uint) (dao.Waiter, error)
	FindByKeyDigest(ctx context.Context, digest string) (dao.Waiter, error)
	FindAll(ctx context.Context) ([]dao.Waiter, error)
}

// StaffRepository is the read/provision surface for the static reference
// data: teams, their hosts and the waiter roster.
type StaffRepository struct {
	teams   TeamDAO
	hosts   HostDAO
	waiters WaiterDAO
}

func NewStaffRepository(teams TeamDAO, hosts HostDAO, waiters WaiterDAO) *StaffRepository {
	return &StaffRepository{
		teams:   teams,
		hosts:   hosts,
		waiters: waiters,
	}
}

func (r *StaffRepository) CreateTeam(ctx context.Context, team domain.Team, leadKeyDigest string) (domain.Team, error) {
	created, err := r.teams.Insert(ctx, dao.Team{
		ID:            team.ID,
		LeadName:      team.LeadName,
		LeadKeyDigest: leadKeyDigest,
	})
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.teams.Insert -> %w", err)
	}

	return r.teamDAOToDomain(created), nil
}

func (r *StaffRepository) CreateHost(ctx context.Context, host domain.Host, keyDigest string) (domain.Host, error) {
	created, err := r.hosts.Insert(ctx, dao.Host{
		TeamID:    host.TeamID,
		Name:      host.Name,
		KeyDigest: keyDigest,
	})
	if err != nil {
		return domain.Host{}, fmt.Errorf("r.hosts.Insert -> %w", err)
	}

	return r.hostDAOToDomain(created), nil
}

func (r *StaffRepository) CreateWaiter(ctx context.Context, waiter domain.Waiter, keyDigest string) (domain.Waiter, error) {
	created, err := r.waiters.Insert(ctx, dao.Waiter{
		Name:      waiter.Name,
		KeyDigest: keyDigest,
	})
	if err != nil {
		return domain.Waiter{}, fmt.Errorf("r.waiters.Insert -> %w", err)
	}

	return r.waiterDAOToDomain(created), nil
}

func (r *StaffRepository) FindTeamByID(ctx context.Context, id uint) (domain.Team, error) {
	found, err := r.teams.FindByID(ctx, id)
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.teams.FindByID -> %w", err)
	}

	return r.teamDAOToDomain(found), nil
}

func (r *StaffRepository) FindHostByID(ctx context.Context, id uint) (domain.Host, error) {
	found, err := r.hosts.FindByID(ctx, id)
	if err != nil {
		return domain.Host{}, fmt.Errorf("r.hosts.FindByID -> %w", err)
	}

	return r.hostDAOToDomain(found), nil
}

func (r *StaffRepository) FindWaiterByID(ctx context.Context, id uint) (domain.Waiter, error) {
	found, err := r.waiters.FindByID(ctx, id)
	if err != nil {
		return domain.Waiter{}, fmt.Errorf("r.waiters.FindByID -> %w", err)
	}

	return r.waiterDAOToDomain(found), nil
}

func (r *StaffRepository) FindAllWaiters(ctx context.Context) ([]domain.Waiter, error) {
	found, err := r.waiters.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.waiters.FindAll -> %w", err)
	}

	waiters := make([]domain.Waiter, 0, len(found))
	for _, w := range found {
		waiters = append(waiters, r.waiterDAOToDomain(w))
	}

	return waiters, nil
}

func (r *StaffRepository) FindTeamByLeadKeyDigest(ctx context.Context, digest string) (domain.Team, error) {
	found, err := r.teams.FindByLeadKeyDigest(ctx, digest)
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.teams.FindByLeadKeyDigest -> %w", err)
	}

	return r.teamDAOToDomain(found), nil
}

func (r *StaffRepository) FindHostByKeyDigest(ctx context.Context, digest string) (domain.Host, error) {
	found, err := r.hosts.FindByKeyDigest(ctx, digest)
	if err != nil {
		return domain.Host{}, fmt.Errorf("r.hosts.FindByKeyDigest -> %w", err)
	}

	return r.hostDAOToDomain(found), nil
}

func (r *StaffRepository) FindWaiterByKeyDigest(ctx context.Context, digest string) (domain.Waiter, error) {
	found, err := r.waiters.FindByKeyDigest(ctx, digest)
	if err != nil {
		return domain.Waiter{}, fmt.Errorf("r.waiters.FindByKeyDigest -> %w", err)
	}

	return r.waiterDAOToDomain(found), nil
}

func (r *StaffRepository) teamDAOToDomain(t dao.Team) domain.Team {
	hosts := make([]domain.Host, 0, len(t.Hosts))
	for _, h := range t.Hosts {
		hosts = append(hosts, r.hostDAOToDomain(h))
	}

	return domain.Team{
		ID:        t.ID,
		LeadName:  t.LeadName,
		Hosts:     hosts,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (r *StaffRepository) hostDAOToDomain(h dao.Host) domain.Host {
	return domain.Host{
		ID:        h.ID,
		TeamID:    h.TeamID,
		Name:      h.Name,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

func (r *StaffRepository) waiterDAOToDomain(w dao.Waiter) domain.Waiter {
	return domain.Waiter{
		ID:        w.ID,
		Name:      w.Name,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
