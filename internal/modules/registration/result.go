package registration

import (
	"fmt"

	"usersignup/internal/domain"
)

// Result is the outcome of one registration call. It is one of
// Registered, Unexpected, ValidationFailed, Rejected or TransportFailure.
type Result interface {
	isResult()
}

// Registered is a 201 Created answer.
type Registered struct {
	Session domain.Session
}

// Unexpected is a successful answer other than 201. No session was issued.
type Unexpected struct {
	Status int
}

// ValidationFailed carries the backend's per-field validation errors.
type ValidationFailed struct {
	Status int
	Errors []FieldError
}

// Rejected is an error answer with a single message.
type Rejected struct {
	Status  int
	Message string
}

// TransportFailure covers network errors and error answers of unknown shape.
type TransportFailure struct {
	Err error
}

func (Registered) isResult()       {}
func (Unexpected) isResult()       {}
func (ValidationFailed) isResult() {}
func (Rejected) isResult()         {}
func (TransportFailure) isResult() {}

func (r Unexpected) String() string {
	return fmt.Sprintf("unexpected status %d", r.Status)
}
