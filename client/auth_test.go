// client/auth_test.go
package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthManagerTestSuite struct {
	suite.Suite
	sessionPath string
}

func (suite *AuthManagerTestSuite) SetupTest() {
	suite.sessionPath = filepath.Join(suite.T().TempDir(), "session.json")
}

func (suite *AuthManagerTestSuite) newManager(serverURL string) (*AuthManager, *SessionStore) {
	api := NewClient(serverURL)
	session := NewSessionStore(suite.sessionPath)
	return NewAuthManager(api, session), session
}

func (suite *AuthManagerTestSuite) TestStartsAnonymous() {
	manager, _ := suite.newManager("http://localhost:0")
	assert.Equal(suite.T(), AuthStateAnonymous, manager.State())
	assert.Nil(suite.T(), manager.CurrentUser())
}

func (suite *AuthManagerTestSuite) TestLoginSuccess() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(suite.T(), "/api/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(AuthResponse{
			Token: "fresh-token",
			User:  User{ID: "u1", Name: "John Doe", Email: "john@example.com"},
		})
	}))
	defer server.Close()

	manager, session := suite.newManager(server.URL)

	user, err := manager.Login("john@example.com", "password123")
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), AuthStateAuthenticated, manager.State())
	assert.Equal(suite.T(), "John Doe", user.Name)
	assert.Equal(suite.T(), "fresh-token", session.Token())
}

func (suite *AuthManagerTestSuite) TestLoginFailure() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid email or password"})
	}))
	defer server.Close()

	manager, session := suite.newManager(server.URL)

	_, err := manager.Login("john@example.com", "wrong")
	require.Error(suite.T(), err)
	assert.Equal(suite.T(), "Invalid email or password", err.Error())

	assert.Equal(suite.T(), AuthStateError, manager.State())
	assert.Nil(suite.T(), manager.CurrentUser())
	assert.Empty(suite.T(), session.Token())
}

func (suite *AuthManagerTestSuite) TestRegisterSignsIn() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(suite.T(), "/api/auth/register", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(AuthResponse{
			Token: "new-user-token",
			User:  User{ID: "u2", Name: "Jane Smith"},
		})
	}))
	defer server.Close()

	manager, session := suite.newManager(server.URL)

	user, err := manager.Register(RegisterInput{Name: "Jane Smith", Email: "jane@example.com", Password: "password123"})
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), AuthStateAuthenticated, manager.State())
	assert.Equal(suite.T(), "Jane Smith", user.Name)
	assert.Equal(suite.T(), "new-user-token", session.Token())
}

func (suite *AuthManagerTestSuite) TestBootstrapRestoresSession() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(suite.T(), "/api/users/profile", r.URL.Path)
		require.Equal(suite.T(), "Bearer stored-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(User{ID: "u1", Name: "John Doe"})
	}))
	defer server.Close()

	data, _ := json.Marshal(sessionFile{Token: "stored-token"})
	require.NoError(suite.T(), os.WriteFile(suite.sessionPath, data, 0o600))

	manager, _ := suite.newManager(server.URL)

	require.NoError(suite.T(), manager.Bootstrap())
	assert.Equal(suite.T(), AuthStateAuthenticated, manager.State())
	require.NotNil(suite.T(), manager.CurrentUser())
	assert.Equal(suite.T(), "John Doe", manager.CurrentUser().Name)
}

func (suite *AuthManagerTestSuite) TestBootstrapDiscardsRejectedToken() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Not authorized, token failed"})
	}))
	defer server.Close()

	data, _ := json.Marshal(sessionFile{Token: "expired-token"})
	require.NoError(suite.T(), os.WriteFile(suite.sessionPath, data, 0o600))

	manager, session := suite.newManager(server.URL)

	err := manager.Bootstrap()
	require.Error(suite.T(), err)

	assert.Equal(suite.T(), AuthStateAnonymous, manager.State())
	assert.Empty(suite.T(), session.Token())
	_, statErr := os.Stat(suite.sessionPath)
	assert.True(suite.T(), os.IsNotExist(statErr))
}

func (suite *AuthManagerTestSuite) TestBootstrapWithoutTokenStaysAnonymous() {
	manager, _ := suite.newManager("http://localhost:0")

	require.NoError(suite.T(), manager.Bootstrap())
	assert.Equal(suite.T(), AuthStateAnonymous, manager.State())
}

func (suite *AuthManagerTestSuite) TestBootstrapRunsOnce() {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(User{ID: "u1", Name: "John Doe"})
	}))
	defer server.Close()

	data, _ := json.Marshal(sessionFile{Token: "stored-token"})
	require.NoError(suite.T(), os.WriteFile(suite.sessionPath, data, 0o600))

	manager, _ := suite.newManager(server.URL)

	require.NoError(suite.T(), manager.Bootstrap())
	require.NoError(suite.T(), manager.Bootstrap())
	assert.Equal(suite.T(), 1, calls)
}

func (suite *AuthManagerTestSuite) TestLogoutClearsSession() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(AuthResponse{Token: "fresh-token", User: User{ID: "u1"}})
	}))
	defer server.Close()

	manager, session := suite.newManager(server.URL)

	_, err := manager.Login("john@example.com", "password123")
	require.NoError(suite.T(), err)

	manager.Logout()

	assert.Equal(suite.T(), AuthStateAnonymous, manager.State())
	assert.Nil(suite.T(), manager.CurrentUser())
	assert.Empty(suite.T(), session.Token())
}

func TestAuthManagerSuite(t *testing.T) {
	suite.Run(t, new(AuthManagerTestSuite))
}

func TestSessionStorePersistsToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store := NewSessionStore(path)
	assert.Empty(t, store.Token())

	require.NoError(t, store.SetToken("abc"))
	assert.Equal(t, "abc", NewSessionStore(path).Token())

	require.NoError(t, store.Clear())
	assert.Empty(t, NewSessionStore(path).Token())
}

func TestSessionStoreIgnoresCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	store := NewSessionStore(path)
	assert.Empty(t, store.Token())
}
