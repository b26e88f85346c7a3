// client/auth.go
package client

import "sync"

// AuthState is the client-side authentication lifecycle state.
type AuthState string

const (
	AuthStateAnonymous      AuthState = "anonymous"
	AuthStateAuthenticating AuthState = "authenticating"
	AuthStateAuthenticated  AuthState = "authenticated"
	AuthStateError          AuthState = "error"
)

// AuthManager tracks who the client is signed in as. It owns the
// session token and exposes it to the API client, so authenticated
// requests pick up the current token automatically.
type AuthManager struct {
	mu           sync.Mutex
	api          *Client
	session      *SessionStore
	state        AuthState
	user         *User
	bootstrapped bool
}

func NewAuthManager(api *Client, session *SessionStore) *AuthManager {
	m := &AuthManager{
		api:     api,
		session: session,
		state:   AuthStateAnonymous,
	}
	api.SetTokenSource(session.Token)
	return m
}

// State returns the current authentication state.
func (m *AuthManager) State() AuthState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// CurrentUser returns the signed-in user, or nil when not authenticated.
func (m *AuthManager) CurrentUser() *User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// Bootstrap restores a persisted session at startup. A stored token is
// verified against the profile endpoint; if the server rejects it, the
// token is discarded and the client stays anonymous. Bootstrap runs at
// most once.
func (m *AuthManager) Bootstrap() error {
	m.mu.Lock()
	if m.bootstrapped {
		m.mu.Unlock()
		return nil
	}
	m.bootstrapped = true
	m.mu.Unlock()

	if m.session.Token() == "" {
		return nil
	}

	user, err := m.api.GetProfile()
	if err != nil {
		m.session.Clear()
		m.setState(AuthStateAnonymous, nil)
		return err
	}

	m.setState(AuthStateAuthenticated, user)
	return nil
}

// Login authenticates with email and password. On failure the state
// moves to error and the previous session, if any, is left untouched.
func (m *AuthManager) Login(email, password string) (*User, error) {
	m.setState(AuthStateAuthenticating, nil)

	resp, err := m.api.Login(email, password)
	if err != nil {
		m.setState(AuthStateError, nil)
		return nil, err
	}

	return m.finishAuth(resp)
}

// Register creates an account and signs in as it.
func (m *AuthManager) Register(in RegisterInput) (*User, error) {
	m.setState(AuthStateAuthenticating, nil)

	resp, err := m.api.Register(in)
	if err != nil {
		m.setState(AuthStateError, nil)
		return nil, err
	}

	return m.finishAuth(resp)
}

func (m *AuthManager) finishAuth(resp *AuthResponse) (*User, error) {
	// Persist failures keep the token in memory, so the signed-in
	// session works for this process even if it won't survive a restart.
	m.session.SetToken(resp.Token)

	user := resp.User
	m.setState(AuthStateAuthenticated, &user)
	return &user, nil
}

// Logout drops the session unconditionally. It never fails from the
// caller's point of view.
func (m *AuthManager) Logout() {
	m.session.Clear()
	m.setState(AuthStateAnonymous, nil)
}

func (m *AuthManager) setState(state AuthState, user *User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	m.user = user
}
