package domain

// EventFilter narrows event queries to one scope. Zero fields mean no
// filter, so the zero value is the global scope. At most one field is
// set by the services.
type EventFilter struct {
	TeamID   uint
	HostID   uint
	WaiterID uint
}

// HostRank is one row of the daily host ranking. TeamID tags the host's
// owning team so the global view can group rows for display.
type HostRank struct {
	HostID   uint   `json:"host_id"`
	HostName string `json:"host_name"`
	TeamID   uint   `json:"team_id"`
	Events   int    `json:"events"`
	People   int    `json:"people"`
}

// DailyReport is the aggregate payload for one scope and one date.
// TotalEvents always equals ConfirmedCount + UnconfirmedCount, and the
// ranking's event counts sum to TotalEvents.
type DailyReport struct {
	Date             string         `json:"date"`
	TotalEvents      int            `json:"total_events"`
	ConfirmedCount   int            `json:"confirmed_count"`
	UnconfirmedCount int            `json:"unconfirmed_count"`
	TotalPeople      int            `json:"total_people"`
	ConfirmedPeople  int            `json:"confirmed_people"`
	Ranking          []HostRank     `json:"ranking"`
	Events           []SeatingEvent `json:"events"`
}
