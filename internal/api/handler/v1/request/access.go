package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type AccessRequest struct {
	Role string `json:"role"`
	Key  string `json:"key"`
}

func (req *AccessRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Role, validation.Required, validation.In("host", "waiter", "lead")),
		validation.Field(&req.Key, validation.Required),
	)
}
