package response

import "github.com/econopapi/terraza-zocalo-hosts/internal/domain"

type AccessResponse struct {
	Identity domain.Identity `json:"identity"`
	Token    string          `json:"token"`
}
