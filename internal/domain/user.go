package domain

import "strings"

// User is the account object returned by the registration endpoint.
// The client does not own its schema, so it is kept as decoded JSON.
type User map[string]any

// Email returns the "email" attribute, or "" when it is missing.
func (u User) Email() string {
	v, _ := u["email"].(string)
	return v
}

// DisplayName joins fullname.firstname and fullname.lastname, falling back
// to the email when the backend did not echo a name.
func (u User) DisplayName() string {
	if fullname, ok := u["fullname"].(map[string]any); ok {
		first, _ := fullname["firstname"].(string)
		last, _ := fullname["lastname"].(string)
		if name := strings.TrimSpace(first + " " + last); name != "" {
			return name
		}
	}
	return u.Email()
}
