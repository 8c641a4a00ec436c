package response

// StaffCreatedResponse is returned by the provisioning endpoints. Key
// carries the plaintext secret exactly once; it cannot be recovered
// later because only its digest is stored.
type StaffCreatedResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	TeamID uint   `json:"team_id,omitempty"`
	Key    string `json:"key"`
}
