package registration

import "usersignup/internal/domain"

type FullName struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

// RegisterRequest is the body of POST /users/register.
type RegisterRequest struct {
	FullName FullName `json:"fullname"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
}

// FieldError is one backend validation error. Message is empty when the
// backend sent no usable "msg".
type FieldError struct {
	Message string
	Field   string
}

type registerResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// errorBody keeps both fields loosely typed: their shape is only trusted
// after inspection.
type errorBody struct {
	Errors  []map[string]any
	Message any
}
