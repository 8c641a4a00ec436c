package domain

import "time"

// ControlTeamID is the virtual scope identifier for the global report
// view spanning every team. It is never an operational team: no host may
// belong to it and no events can be recorded against it.
const ControlTeamID uint = 777

type Team struct {
	ID        uint      `json:"id"`
	LeadName  string    `json:"lead_name"`
	Hosts     []Host    `json:"hosts,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Host struct {
	ID        uint      `json:"id"`
	TeamID    uint      `json:"team_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Waiter struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
