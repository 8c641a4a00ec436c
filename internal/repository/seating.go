package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/econopapi/terraza-zocalo-hosts/internal/domain"
	"github.com/econopapi/terraza-zocalo-hosts/internal/repository/dao"
)

var (
	ErrEventNotFound = dao.ErrEventNotFound
	ErrNoEvents      = dao.ErrNoEvents
)

type SeatingDAO interface {
	Insert(ctx context.Context, event dao.SeatingEvent) (dao.SeatingEvent, error)
	FindByID(ctx context.Context, id uint) (dao.SeatingEvent, error)
	UpdateConfirmed(ctx context.Context, id uint, confirmed bool) (dao.SeatingEvent, error)
	FindByFilterAndDate(ctx context.Context, filter dao.EventFilter, date time.Time) ([]dao.SeatingEvent, error)
	MaxDate(ctx context.Context, filter dao.EventFilter) (time.Time, error)
	GroupByHost(ctx context.Context, filter dao.EventFilter, date time.Time) ([]dao.HostTally, error)
}

type SeatingRepository struct {
	dao SeatingDAO
}

func NewSeatingRepository(dao SeatingDAO) *SeatingRepository {
	return &SeatingRepository{
		dao: dao,
	}
}

func (r *SeatingRepository) Create(ctx context.Context, event domain.SeatingEvent) (domain.SeatingEvent, error) {
	created, err := r.dao.Insert(ctx, dao.SeatingEvent{
		HostID:    event.HostID,
		WaiterID:  event.WaiterID,
		EventDate: event.Date,
		EventTime: event.TimeOfDay,
		PartySize: event.PartySize,
		Confirmed: event.Confirmed,
	})
	if err != nil {
		return domain.SeatingEvent{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SeatingRepository) FindByID(ctx context.Context, id uint) (domain.SeatingEvent, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.SeatingEvent{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SeatingRepository) SetConfirmed(ctx context.Context, id uint, confirmed bool) (domain.SeatingEvent, error) {
	updated, err := r.dao.UpdateConfirmed(ctx, id, confirmed)
	if err != nil {
		return domain.SeatingEvent{}, fmt.Errorf("r.dao.UpdateConfirmed -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *SeatingRepository) FindByScope(ctx context.Context, filter domain.EventFilter, date time.Time) ([]domain.SeatingEvent, error) {
	found, err := r.dao.FindByFilterAndDate(ctx, r.filterToDAO(filter), date)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByFilterAndDate -> %w", err)
	}

	events := make([]domain.SeatingEvent, 0, len(found))
	for _, ev := range found {
		events = append(events, r.daoToDomain(ev))
	}

	return events, nil
}

func (r *SeatingRepository) LatestDate(ctx context.Context, filter domain.EventFilter) (time.Time, error) {
	latest, err := r.dao.MaxDate(ctx, r.filterToDAO(filter))
	if err != nil {
		return time.Time{}, fmt.Errorf("r.dao.MaxDate -> %w", err)
	}

	return latest, nil
}

func (r *SeatingRepository) RankHosts(ctx context.Context, filter domain.EventFilter, date time.Time) ([]domain.HostRank, error) {
	tallies, err := r.dao.GroupByHost(ctx, r.filterToDAO(filter), date)
	if err != nil {
		return nil, fmt.Errorf("r.dao.GroupByHost -> %w", err)
	}

	ranking := make([]domain.HostRank, 0, len(tallies))
	for _, t := range tallies {
		ranking = append(ranking, domain.HostRank{
			HostID:   t.HostID,
			HostName: t.HostName,
			TeamID:   t.TeamID,
			Events:   t.Events,
			People:   t.People,
		})
	}

	return ranking, nil
}

func (r *SeatingRepository) filterToDAO(filter domain.EventFilter) dao.EventFilter {
	return dao.EventFilter{
		TeamID:   filter.TeamID,
		HostID:   filter.HostID,
		WaiterID: filter.WaiterID,
	}
}

func (r *SeatingRepository) daoToDomain(ev dao.SeatingEvent) domain.SeatingEvent {
	return domain.SeatingEvent{
		ID:        ev.ID,
		HostID:    ev.HostID,
		WaiterID:  ev.WaiterID,
		Date:      ev.EventDate,
		TimeOfDay: ev.EventTime,
		PartySize: ev.PartySize,
		Confirmed: ev.Confirmed,
		CreatedAt: ev.CreatedAt,
	}
}
