package registration

import "fmt"

// StatusError is an error answer that carried neither validation errors
// nor a message.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Request failed with status code %d", e.Status)
}
