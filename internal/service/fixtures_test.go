package service

import (
	"context"
	"sort"
	"time"

	"github.com/econopapi/terraza-zocalo-hosts/internal/domain"
	"github.com/econopapi/terraza-zocalo-hosts/internal/pkg/keygen"
	"github.com/econopapi/terraza-zocalo-hosts/internal/repository"
)

// staffStore is an in-memory stand-in for the staff repository.
type staffStore struct {
	teams   map[uint]domain.Team
	hosts   map[uint]domain.Host
	waiters map[uint]domain.Waiter

	teamKeys   map[string]uint // digest -> team id
	hostKeys   map[string]uint
	waiterKeys map[string]uint

	nextID uint
}

func newStaffStore() *staffStore {
	return &staffStore{
		teams:      map[uint]domain.Team{},
		hosts:      map[uint]domain.Host{},
		waiters:    map[uint]domain.Waiter{},
		teamKeys:   map[string]uint{},
		hostKeys:   map[string]uint{},
		waiterKeys: map[string]uint{},
		nextID:     100,
	}
}

func (s *staffStore) addTeam(id uint, leadName, key string) domain.Team {
	team := domain.Team{ID: id, LeadName: leadName}
	s.teams[id] = team
	s.teamKeys[keygen.Digest(key)] = id

	return team
}

func (s *staffStore) addHost(id, teamID uint, name, key string) domain.Host {
	host := domain.Host{ID: id, TeamID: teamID, Name: name}
	s.hosts[id] = host
	s.hostKeys[keygen.Digest(key)] = id

	return host
}

func (s *staffStore) addWaiter(id uint, name, key string) domain.Waiter {
	waiter := domain.Waiter{ID: id, Name: name}
	s.waiters[id] = waiter
	s.waiterKeys[keygen.Digest(key)] = id

	return waiter
}

func (s *staffStore) FindTeamByID(_ context.Context, id uint) (domain.Team, error) {
	team, ok := s.teams[id]
	if !ok {
		return domain.Team{}, repository.ErrTeamNotFound
	}

	return team, nil
}

func (s *staffStore) FindHostByID(_ context.Context, id uint) (domain.Host, error) {
	host, ok := s.hosts[id]
	if !ok {
		return domain.Host{}, repository.ErrHostNotFound
	}

	return host, nil
}

func (s *staffStore) FindWaiterByID(_ context.Context, id uint) (domain.Waiter, error) {
	waiter, ok := s.waiters[id]
	if !ok {
		return domain.Waiter{}, repository.ErrWaiterNotFound
	}

	return waiter, nil
}

func (s *staffStore) FindTeamByLeadKeyDigest(ctx context.Context, digest string) (domain.Team, error) {
	id, ok := s.teamKeys[digest]
	if !ok {
		return domain.Team{}, repository.ErrTeamNotFound
	}

	return s.FindTeamByID(ctx, id)
}

func (s *staffStore) FindHostByKeyDigest(ctx context.Context, digest string) (domain.Host, error) {
	id, ok := s.hostKeys[digest]
	if !ok {
		return domain.Host{}, repository.ErrHostNotFound
	}

	return s.FindHostByID(ctx, id)
}

func (s *staffStore) FindWaiterByKeyDigest(ctx context.Context, digest string) (domain.Waiter, error) {
	id, ok := s.waiterKeys[digest]
	if !ok {
		return domain.Waiter{}, repository.ErrWaiterNotFound
	}

	return s.FindWaiterByID(ctx, id)
}

func (s *staffStore) FindAllWaiters(_ context.Context) ([]domain.Waiter, error) {
	waiters := make([]domain.Waiter, 0, len(s.waiters))
	for _, w := range s.waiters {
		waiters = append(waiters, w)
	}
	sort.Slice(waiters, func(i, j int) bool { return waiters[i].ID < waiters[j].ID })

	return waiters, nil
}

func (s *staffStore) CreateTeam(_ context.Context, team domain.Team, leadKeyDigest string) (domain.Team, error) {
	if _, taken := s.teamKeys[leadKeyDigest]; taken {
		return domain.Team{}, repository.ErrKeyInUse
	}
	if team.ID == 0 {
		s.nextID++
		team.ID = s.nextID
	}
	s.teams[team.ID] = team
	s.teamKeys[leadKeyDigest] = team.ID

	return team, nil
}

func (s *staffStore) CreateHost(_ context.Context, host domain.Host, keyDigest string) (domain.Host, error) {
	if _, taken := s.hostKeys[keyDigest]; taken {
		return domain.Host{}, repository.ErrKeyInUse
	}
	s.nextID++
	host.ID = s.nextID
	s.hosts[host.ID] = host
	s.hostKeys[keyDigest] = host.ID

	return host, nil
}

func (s *staffStore) CreateWaiter(_ context.Context, waiter domain.Waiter, keyDigest string) (domain.Waiter, error) {
	if _, taken := s.waiterKeys[keyDigest]; taken {
		return domain.Waiter{}, repository.ErrKeyInUse
	}
	s.nextID++
	waiter.ID = s.nextID
	s.waiters[waiter.ID] = waiter
	s.waiterKeys[keyDigest] = waiter.ID

	return waiter, nil
}

// seatingStore is an in-memory stand-in for the seating repository. It
// mirrors the SQL contracts: scope filtering, time-of-day descending
// order, max date and the per-host ranking with the host-id tie-break.
type seatingStore struct {
	staff  *staffStore
	events []domain.SeatingEvent
	nextID uint
}

func newSeatingStore(staff *staffStore) *seatingStore {
	return &seatingStore{staff: staff}
}

func (s *seatingStore) Create(_ context.Context, event domain.SeatingEvent) (domain.SeatingEvent, error) {
	s.nextID++
	event.ID = s.nextID
	s.events = append(s.events, event)

	return event, nil
}

func (s *seatingStore) FindByID(_ context.Context, id uint) (domain.SeatingEvent, error) {
	for _, ev := range s.events {
		if ev.ID == id {
			return ev, nil
		}
	}

	return domain.SeatingEvent{}, repository.ErrEventNotFound
}

func (s *seatingStore) SetConfirmed(_ context.Context, id uint, confirmed bool) (domain.SeatingEvent, error) {
	for i := range s.events {
		if s.events[i].ID == id {
			s.events[i].Confirmed = confirmed

			return s.events[i], nil
		}
	}

	return domain.SeatingEvent{}, repository.ErrEventNotFound
}

func (s *seatingStore) FindByScope(_ context.Context, filter domain.EventFilter, date time.Time) ([]domain.SeatingEvent, error) {
	var matched []domain.SeatingEvent
	for _, ev := range s.events {
		if s.matches(ev, filter) && sameDate(ev.Date, date) {
			matched = append(matched, ev)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].TimeOfDay > matched[j].TimeOfDay })

	return matched, nil
}

func (s *seatingStore) LatestDate(_ context.Context, filter domain.EventFilter) (time.Time, error) {
	var latest time.Time
	found := false
	for _, ev := range s.events {
		if s.matches(ev, filter) && ev.Date.After(latest) {
			latest = ev.Date
			found = true
		}
	}
	if !found {
		return time.Time{}, repository.ErrNoEvents
	}

	return latest, nil
}

func (s *seatingStore) RankHosts(_ context.Context, filter domain.EventFilter, date time.Time) ([]domain.HostRank, error) {
	byHost := map[uint]*domain.HostRank{}
	for _, ev := range s.events {
		if !s.matches(ev, filter) || !sameDate(ev.Date, date) {
			continue
		}

		rank, ok := byHost[ev.HostID]
		if !ok {
			host := s.staff.hosts[ev.HostID]
			rank = &domain.HostRank{HostID: host.ID, HostName: host.Name, TeamID: host.TeamID}
			byHost[ev.HostID] = rank
		}
		rank.Events++
		rank.People += ev.PartySize
	}

	ranking := make([]domain.HostRank, 0, len(byHost))
	for _, rank := range byHost {
		ranking = append(ranking, *rank)
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Events != ranking[j].Events {
			return ranking[i].Events > ranking[j].Events
		}

		return ranking[i].HostID < ranking[j].HostID
	})

	return ranking, nil
}

func (s *seatingStore) matches(ev domain.SeatingEvent, filter domain.EventFilter) bool {
	if filter.TeamID != 0 && s.staff.hosts[ev.HostID].TeamID != filter.TeamID {
		return false
	}
	if filter.HostID != 0 && ev.HostID != filter.HostID {
		return false
	}
	if filter.WaiterID != 0 && ev.WaiterID != filter.WaiterID {
		return false
	}

	return true
}

func sameDate(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}
