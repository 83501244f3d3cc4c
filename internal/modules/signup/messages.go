package signup

const (
	MsgFirstNameTooShort = "First name must be at least 3 characters long"
	MsgLastNameTooShort  = "Last name must be at least 3 characters long"
	MsgEmailRequired     = "Email is required"
	MsgPasswordTooShort  = "Password must be at least 6 characters long"
	MsgValidationError   = "Validation error"
	MsgUnknownError      = "Something went wrong. Please try again."
)

// HomePath is where a successful signup navigates to.
const HomePath = "/home"
