package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

// Custom keys must mix letters and digits; the lookahead needs regexp2
// since the standard library engine rejects it.
const keyPatternLookahead = `^(?=.*[A-Za-z])(?=.*\d).{12,}$`

var (
	keyPattern = regexp2.MustCompile(keyPatternLookahead, regexp2.None)

	errWeakKey = errors.New("custom keys must be at least 12 characters and mix letters and digits")
)

type CreateTeamRequest struct {
	// ID is optional; the store assigns one when zero.
	ID       uint   `json:"id"`
	LeadName string `json:"lead_name"`
	Key      string `json:"key"`
}

func (req *CreateTeamRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.LeadName, validation.Required, validation.Length(2, 100)),
	)
	if err != nil {
		return err
	}

	return validateCustomKey(req.Key)
}

type CreateHostRequest struct {
	TeamID uint   `json:"team_id"`
	Name   string `json:"name"`
	Key    string `json:"key"`
}

func (req *CreateHostRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.TeamID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
	)
	if err != nil {
		return err
	}

	return validateCustomKey(req.Key)
}

type CreateWaiterRequest struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}

func (req *CreateWaiterRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
	)
	if err != nil {
		return err
	}

	return validateCustomKey(req.Key)
}

// validateCustomKey accepts an empty key (one is generated server-side)
// and otherwise enforces the strength pattern.
func validateCustomKey(key string) error {
	if key == "" {
		return nil
	}

	ok, err := keyPattern.MatchString(key)
	if err != nil || !ok {
		return errWeakKey
	}

	return nil
}
