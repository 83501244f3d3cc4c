package signup

import (
	"context"

	"usersignup/internal/domain"
	"usersignup/internal/modules/registration"
)

// Registrar performs the registration call.
type Registrar interface {
	Register(ctx context.Context, req registration.RegisterRequest) registration.Result
}

// SessionStore is the shared signed-in user.
type SessionStore interface {
	GetUser() domain.User
	SetUser(user domain.User)
}

// Storage is durable client key/value storage.
type Storage interface {
	Set(ctx context.Context, key, value string) error
}

// Navigator moves the client to another view.
type Navigator interface {
	GoTo(path string)
}
