package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type RecordSeatingRequest struct {
	// HostID may be omitted when the caller is authenticated as a host;
	// the recorder locks the event to that host regardless.
	HostID    uint `json:"host_id"`
	WaiterID  uint `json:"waiter_id"`
	PartySize int  `json:"party_size"`
}

func (req *RecordSeatingRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.WaiterID, validation.Required),
		validation.Field(&req.PartySize, validation.Required, validation.Min(1)),
	)
}

type ConfirmSeatingRequest struct {
	Confirmed *bool `json:"confirmed"`
	// WaiterKey authenticates the confirming waiter when no Bearer token
	// is presented.
	WaiterKey string `json:"waiter_key"`
}

func (req *ConfirmSeatingRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Confirmed, validation.NotNil),
	)
}
