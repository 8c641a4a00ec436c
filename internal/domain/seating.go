package domain

import "time"

// SeatingEvent is a single hosteo: a host seating a party of guests,
// later confirmed by the assigned waiter. Date and time-of-day are
// stamped once at creation; only the confirmed flag may change afterward.
type SeatingEvent struct {
	ID        uint      `json:"id"`
	HostID    uint      `json:"host_id"`
	WaiterID  uint      `json:"waiter_id"`
	Date      time.Time `json:"date"`
	TimeOfDay string    `json:"time_of_day"`
	PartySize int       `json:"party_size"`
	Confirmed bool      `json:"confirmed"`
	CreatedAt time.Time `json:"created_at"`
}

// DailyCutoff is the end-of-day settlement record per team. The schema is
// migrated for the upcoming settlement feature but nothing populates or
// reads it yet.
type DailyCutoff struct {
	ID           uint      `json:"id"`
	TeamID       uint      `json:"team_id"`
	Date         time.Time `json:"date"`
	PeopleTotal  int       `json:"people_total"`
	PeopleDown   int       `json:"people_down"`
	PeopleStayed int       `json:"people_stayed"`
	TablesTotal  int       `json:"tables_total"`
	TablesDown   int       `json:"tables_down"`
	TablesStayed int       `json:"tables_stayed"`
	TotalMXN     float64   `json:"total_mxn"`
}
