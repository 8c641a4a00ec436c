package dao

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/econopapi/terraza-zocalo-hosts/internal/pkg/timezone"
)

var (
	ErrEventNotFound = errors.New("seating event not found")
	ErrNoEvents      = errors.New("no events recorded for scope")
)

type SeatingEvent struct {
	ID uint `gorm:"primaryKey"`

	HostID uint `gorm:"not null;index"`
	Host   Host `gorm:"foreignKey:HostID"`

	WaiterID uint   `gorm:"not null;index"`
	Waiter   Waiter `gorm:"foreignKey:WaiterID"`

	EventDate time.Time `gorm:"type:date;not null;index"`
	EventTime string    `gorm:"type:time;not null"`
	PartySize int       `gorm:"not null;check:party_size >= 1"`
	Confirmed bool      `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
}

type DailyCutoff struct {
	ID uint `gorm:"primaryKey"`

	TeamID uint      `gorm:"not null;index"`
	Date   time.Time `gorm:"type:date;not null"`

	PeopleTotal  int `gorm:"not null;default:0"`
	PeopleDown   int `gorm:"not null;default:0"`
	PeopleStayed int `gorm:"not null;default:0"`
	TablesTotal  int `gorm:"not null;default:0"`
	TablesDown   int `gorm:"not null;default:0"`
	TablesStayed int `gorm:"not null;default:0"`

	TotalMXN float64 `gorm:"not null;default:0"`
}

// EventFilter narrows queries to one scope. Zero fields apply no filter.
type EventFilter struct {
	TeamID   uint
	HostID   uint
	WaiterID uint
}

// HostTally is one aggregated ranking row produced by GroupByHost.
type HostTally struct {
	HostID   uint
	HostName string
	TeamID   uint
	Events   int
	People   int
}

type SeatingDAO struct {
	db *gorm.DB
}

func NewSeatingDAO(db *gorm.DB) *SeatingDAO {
	return &SeatingDAO{
		db: db,
	}
}

func (d *SeatingDAO) Insert(ctx context.Context, event SeatingEvent) (SeatingEvent, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return SeatingEvent{}, result.Error
	}

	return event, nil
}

func (d *SeatingDAO) FindByID(ctx context.Context, id uint) (SeatingEvent, error) {
	var event SeatingEvent

	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return SeatingEvent{}, ErrEventNotFound
		}

		return SeatingEvent{}, result.Error
	}

	return event, nil
}

func (d *SeatingDAO) UpdateConfirmed(ctx context.Context, id uint, confirmed bool) (SeatingEvent, error) {
	result := d.db.WithContext(ctx).
		Model(&SeatingEvent{}).
		Where("id = ?", id).
		Update("confirmed", confirmed)
	if result.Error != nil {
		return SeatingEvent{}, result.Error
	}
	if result.RowsAffected == 0 {
		return SeatingEvent{}, ErrEventNotFound
	}

	return d.FindByID(ctx, id)
}

// FindByFilterAndDate returns the events of one scope on one date,
// ordered by time-of-day descending (most recent seating first).
func (d *SeatingDAO) FindByFilterAndDate(ctx context.Context, filter EventFilter, date time.Time) ([]SeatingEvent, error) {
	var events []SeatingEvent

	query := d.filtered(ctx, filter).
		Where("seating_events.event_date = ?", date.Format(timezone.DateLayout)).
		Order("seating_events.event_time DESC")

	result := query.Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// MaxDate returns the most recent date with recorded events within the
// scope, or ErrNoEvents when the scope has none.
func (d *SeatingDAO) MaxDate(ctx context.Context, filter EventFilter) (time.Time, error) {
	var latest sql.NullTime

	result := d.filtered(ctx, filter).
		Select("MAX(seating_events.event_date)").
		Scan(&latest)
	if result.Error != nil {
		return time.Time{}, result.Error
	}
	if !latest.Valid {
		return time.Time{}, ErrNoEvents
	}

	// The column is a plain date, so the scanned value is already a
	// calendar date at UTC midnight. Truncate without a zone shift.
	y, m, day := latest.Time.UTC().Date()

	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC), nil
}

// GroupByHost computes the per-host ranking for one scope and date,
// ordered by event count descending with host id as the tie-break.
func (d *SeatingDAO) GroupByHost(ctx context.Context, filter EventFilter, date time.Time) ([]HostTally, error) {
	var tallies []HostTally

	query := d.db.WithContext(ctx).
		Table("seating_events").
		Select("hosts.id AS host_id, hosts.name AS host_name, hosts.team_id AS team_id, " +
			"COUNT(seating_events.id) AS events, COALESCE(SUM(seating_events.party_size), 0) AS people").
		Joins("JOIN hosts ON hosts.id = seating_events.host_id").
		Where("seating_events.event_date = ?", date.Format(timezone.DateLayout))

	if filter.TeamID != 0 {
		query = query.Where("hosts.team_id = ?", filter.TeamID)
	}
	if filter.HostID != 0 {
		query = query.Where("seating_events.host_id = ?", filter.HostID)
	}
	if filter.WaiterID != 0 {
		query = query.Where("seating_events.waiter_id = ?", filter.WaiterID)
	}

	result := query.
		Group("hosts.id, hosts.name, hosts.team_id").
		Order("events DESC, hosts.id ASC").
		Scan(&tallies)
	if result.Error != nil {
		return nil, result.Error
	}

	return tallies, nil
}

func (d *SeatingDAO) filtered(ctx context.Context, filter EventFilter) *gorm.DB {
	query := d.db.WithContext(ctx).Model(&SeatingEvent{})

	// The team scope reaches the team through the owning host.
	if filter.TeamID != 0 {
		query = query.
			Joins("JOIN hosts ON hosts.id = seating_events.host_id").
			Where("hosts.team_id = ?", filter.TeamID)
	}
	if filter.HostID != 0 {
		query = query.Where("seating_events.host_id = ?", filter.HostID)
	}
	if filter.WaiterID != 0 {
		query = query.Where("seating_events.waiter_id = ?", filter.WaiterID)
	}

	return query
}
