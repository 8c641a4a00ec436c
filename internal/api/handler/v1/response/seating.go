package response

import "github.com/econopapi/terraza-zocalo-hosts/internal/domain"

type ConfirmResponse struct {
	EventID   uint `json:"event_id"`
	Confirmed bool `json:"confirmed"`
}

// TeamBoardResponse backs the per-team entry form: the team with its
// hosts, the waiter roster and today's events.
type TeamBoardResponse struct {
	Team    domain.Team           `json:"team"`
	Waiters []domain.Waiter       `json:"waiters"`
	Events  []domain.SeatingEvent `json:"events"`
}
