package signup

import (
	"usersignup/internal/modules/registration"
	"usersignup/internal/pkg/validator"
)

// Draft is the uncommitted form input.
type Draft struct {
	FirstName string `json:"firstName" validate:"trimmed_min=3"`
	LastName  string `json:"lastName" validate:"trimmed_min=3"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"min=6"`
}

var violationMessages = map[string]string{
	"firstName": MsgFirstNameTooShort,
	"lastName":  MsgLastNameTooShort,
	"email":     MsgEmailRequired,
	"password":  MsgPasswordTooShort,
}

// Validate returns the message of the first failing field, in form order.
func (d Draft) Validate() (string, bool) {
	violations := validator.Check(d)
	if len(violations) == 0 {
		return "", true
	}
	if msg, ok := violationMessages[violations[0].Field]; ok {
		return msg, false
	}
	return MsgValidationError, false
}

// Request builds the registration payload. Names are sent as typed.
func (d Draft) Request() registration.RegisterRequest {
	return registration.RegisterRequest{
		FullName: registration.FullName{
			FirstName: d.FirstName,
			LastName:  d.LastName,
		},
		Email:    d.Email,
		Password: d.Password,
	}
}
