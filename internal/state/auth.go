package state

import (
	"context"
	"sync"

	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/model"
	"github.com/SandeepaMuthukumari/Recipe-Sharing-Platform/internal/service"
)

// AuthState is a point-in-time snapshot of the auth container.
type AuthState struct {
	User            *model.UserResponse
	IsAuthenticated bool
	Loading         bool
	Error           string
}

// Auth is the observable authentication container. Every action sets
// Loading, calls the auth service, merges the result into the state and
// emits a notification.
type Auth struct {
	mu     sync.Mutex
	svc    *service.AuthService
	notify NotifyFunc
	state  AuthState
}

// NewAuth creates an auth container bound to the given service. notify
// may be nil.
func NewAuth(svc *service.AuthService, notify NotifyFunc) *Auth {
	return &Auth{svc: svc, notify: notify}
}

// Snapshot returns a copy of the current state.
func (a *Auth) Snapshot() AuthState {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := a.state
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

func (a *Auth) begin() {
	a.mu.Lock()
	a.state.Loading = true
	a.state.Error = ""
	a.mu.Unlock()
}

func (a *Auth) fail(err error) {
	a.mu.Lock()
	a.state.Loading = false
	a.state.Error = err.Error()
	a.mu.Unlock()
}

func (a *Auth) succeed(user model.UserResponse) {
	a.mu.Lock()
	a.state.User = &user
	a.state.IsAuthenticated = true
	a.state.Loading = false
	a.mu.Unlock()
}

// Login authenticates with the given credentials and persists the
// session on success.
func (a *Auth) Login(ctx context.Context, email, password string) {
	a.begin()

	resp, err := a.svc.Login(ctx, model.LoginRequest{Email: email, Password: password})
	if err != nil {
		a.fail(err)
		a.notify.error("Login failed. Please check your credentials.")
		return
	}

	if err := a.svc.SetSession(ctx, &resp.User); err != nil {
		a.fail(err)
		a.notify.error("Login failed. Please check your credentials.")
		return
	}

	a.succeed(resp.User)
	a.notify.success("Welcome back, " + resp.User.Username + "!")
}

// Register creates a new account, logs it in and persists the session.
func (a *Auth) Register(ctx context.Context, username, email, password string) {
	a.begin()

	resp, err := a.svc.Register(ctx, model.CreateUserRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		a.fail(err)
		a.notify.error(err.Error())
		return
	}

	if err := a.svc.SetSession(ctx, &resp.User); err != nil {
		a.fail(err)
		a.notify.error(err.Error())
		return
	}

	a.succeed(resp.User)
	a.notify.success("Account created successfully!")
}

// Logout clears the persisted session and the in-memory state.
func (a *Auth) Logout(ctx context.Context) {
	if err := a.svc.SetSession(ctx, nil); err != nil {
		a.fail(err)
		a.notify.error("Logout failed")
		return
	}

	a.mu.Lock()
	a.state = AuthState{}
	a.mu.Unlock()
	a.notify.info("You have been logged out")
}

// CheckSession restores a previously persisted session, if any. Meant
// to run once at startup; a missing session is not an error.
func (a *Auth) CheckSession(ctx context.Context) {
	user, err := a.svc.CurrentSession(ctx)
	if err != nil {
		a.fail(err)
		return
	}
	if user == nil {
		return
	}
	a.succeed(*user)
}
