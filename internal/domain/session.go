package domain

// Session is what a successful registration hands over to the client:
// the user goes to the session store, the token to durable storage.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
