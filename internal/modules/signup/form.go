package signup

import (
	"context"
	"log"
	"sync"

	"usersignup/internal/domain"
	"usersignup/internal/modules/registration"
)

type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateError
	StateNavigating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateError:
		return "error"
	case StateNavigating:
		return "navigating"
	default:
		return "unknown"
	}
}

// Form is the signup form: a draft, one error message at a time, and a
// submit that registers the user and hands the session over.
type Form struct {
	registrar Registrar
	sessions  SessionStore
	storage   Storage
	navigator Navigator

	mu           sync.Mutex
	draft        Draft
	errorMessage string
	submitting   bool
	state        State
}

func NewForm(registrar Registrar, sessions SessionStore, storage Storage, navigator Navigator) *Form {
	return &Form{
		registrar: registrar,
		sessions:  sessions,
		storage:   storage,
		navigator: navigator,
	}
}

func (f *Form) SetFirstName(v string) { f.update(func(d *Draft) { d.FirstName = v }) }
func (f *Form) SetLastName(v string)  { f.update(func(d *Draft) { d.LastName = v }) }
func (f *Form) SetEmail(v string)     { f.update(func(d *Draft) { d.Email = v }) }
func (f *Form) SetPassword(v string)  { f.update(func(d *Draft) { d.Password = v }) }

func (f *Form) update(fn func(*Draft)) {
	f.mu.Lock()
	fn(&f.draft)
	f.mu.Unlock()
}

func (f *Form) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *Form) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errorMessage
}

func (f *Form) IsSubmitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Reset puts the form back to its freshly mounted state. It is a no-op
// while a submission is in flight.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return
	}
	f.draft = Draft{}
	f.errorMessage = ""
	f.state = StateIdle
}

// Submit validates the draft and, when it is valid, registers it. Every
// failure ends up as the form's error message; Submit itself never fails.
// A call made while another submission is in flight returns StateSubmitting
// without side effects.
func (f *Form) Submit(ctx context.Context) State {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return StateSubmitting
	}

	f.errorMessage = ""
	if msg, ok := f.draft.Validate(); !ok {
		f.errorMessage = msg
		f.state = StateError
		f.mu.Unlock()
		return StateError
	}

	req := f.draft.Request()
	f.submitting = true
	f.state = StateSubmitting
	f.mu.Unlock()

	result := f.registrar.Register(ctx, req)

	// Side effects run before the draft is cleared.
	if r, ok := result.(registration.Registered); ok {
		f.establish(ctx, r.Session)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	switch r := result.(type) {
	case registration.Registered:
		f.draft = Draft{}
		f.state = StateNavigating
	case registration.Unexpected:
		// A non-201 success still discards the draft.
		log.Printf("signup_submit result=unexpected status=%d", r.Status)
		f.draft = Draft{}
		f.state = StateIdle
	default:
		f.errorMessage = errorMessage(result)
		f.state = StateError
		log.Printf("signup_submit result=error kind=%T message=%q", result, f.errorMessage)
	}
	return f.state
}

func (f *Form) establish(ctx context.Context, s domain.Session) {
	f.sessions.SetUser(s.User)
	if err := f.storage.Set(ctx, domain.TokenStorageKey, s.Token); err != nil {
		// the in-memory session is live, so navigation still proceeds
		log.Printf("signup_submit token_persist_failed error=%q", err.Error())
	}
	log.Printf("signup_submit result=registered")
	f.navigator.GoTo(HomePath)
}

// errorMessage reduces a failed registration to the one string shown above
// the form.
func errorMessage(result registration.Result) string {
	switch r := result.(type) {
	case registration.ValidationFailed:
		if len(r.Errors) > 0 && r.Errors[0].Message != "" {
			return r.Errors[0].Message
		}
		return MsgValidationError
	case registration.Rejected:
		return r.Message
	case registration.TransportFailure:
		if r.Err != nil && r.Err.Error() != "" {
			return r.Err.Error()
		}
	}
	return MsgUnknownError
}
