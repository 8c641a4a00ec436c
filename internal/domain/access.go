package domain

type Role string

const (
	RoleHost   Role = "host"
	RoleWaiter Role = "waiter"
	RoleLead   Role = "lead"
)

// Identity is the entity resolved from a presented secret key or token.
// TeamID is set for hosts (their owning team) and leads (their own team).
type Identity struct {
	Role   Role   `json:"role"`
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	TeamID uint   `json:"team_id,omitempty"`
}
