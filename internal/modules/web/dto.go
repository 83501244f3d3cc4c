package web

import "usersignup/internal/modules/signup"

// SignupFormRequest is the posted signup form.
type SignupFormRequest struct {
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
	Email     string `form:"email"`
	Password  string `form:"password"`
}

type signupPage struct {
	Draft      signup.Draft
	Error      string
	Submitting bool
}

type homePage struct {
	Name      string
	HasToken  bool
	ExpiresIn string
}
