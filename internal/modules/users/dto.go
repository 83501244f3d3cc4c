package users

type FullNameRequest struct {
	FirstName string `json:"firstname" validate:"trimmed_min=3"`
	LastName  string `json:"lastname"`
}

type RegisterRequest struct {
	FullName FullNameRequest `json:"fullname"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"min=6"`
}

type FullName struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname,omitempty"`
}

type UserPublic struct {
	ID       int64    `json:"id"`
	FullName FullName `json:"fullname"`
	Email    string   `json:"email"`
}

// FieldError mirrors the validation error items the client expects.
type FieldError struct {
	Msg      string `json:"msg"`
	Path     string `json:"path"`
	Location string `json:"location"`
}
