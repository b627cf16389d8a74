package auth_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/flatcms/pkg/auth"
	"github.com/aretw0/flatcms/pkg/core"
)

func newTestGate(t *testing.T) *auth.Gate {
	t.Helper()
	creds, err := auth.DefaultCredentials()
	require.NoError(t, err)

	gate, err := auth.NewGate(auth.Config{
		Store:   auth.NewCookieStore([]byte("0123456789abcdef0123456789abcdef")),
		Checker: creds,
	})
	require.NoError(t, err)
	return gate
}

// replay copies cookies set on rec onto a new request.
func replay(rec *httptest.ResponseRecorder, method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestNewGate_RequiresDependencies(t *testing.T) {
	_, err := auth.NewGate(auth.Config{Checker: auth.CredentialFunc(func(string, string) bool { return true })})
	assert.Error(t, err)

	_, err = auth.NewGate(auth.Config{Store: auth.NewCookieStore([]byte("k"))})
	assert.Error(t, err)
}

func TestRequireAuthenticated_Anonymous(t *testing.T) {
	gate := newTestGate(t)
	called := false
	guarded := gate.RequireAuthenticated(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/create", nil))

	assert.False(t, called, "guarded handler must not run")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, auth.DefaultSignInPath, rec.Header().Get("Location"))

	// The notice is delivered exactly once on the next request.
	next := replay(rec, http.MethodGet, "/users/signin")
	rec2 := httptest.NewRecorder()
	s := gate.Load(rec2, next)
	assert.Equal(t, []string{auth.MsgSignInRequired}, s.Flashes())
	require.NoError(t, s.Save())

	third := replay(rec2, http.MethodGet, "/")
	s = gate.Load(httptest.NewRecorder(), third)
	assert.Empty(t, s.Flashes())
}

func TestAuthenticated(t *testing.T) {
	gate := newTestGate(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	s, err := gate.Authenticated(rec, req)
	assert.ErrorIs(t, err, core.ErrUnauthenticated)
	require.NotNil(t, s)

	require.NoError(t, gate.SignIn(s, "admin", "secret"))
	require.NoError(t, s.Save())

	s, err = gate.Authenticated(httptest.NewRecorder(), replay(rec, http.MethodGet, "/"))
	require.NoError(t, err)
	assert.Equal(t, "admin", s.Username())
}

func TestSignInSignOut(t *testing.T) {
	gate := newTestGate(t)

	// Bad credentials leave the session anonymous.
	rec := httptest.NewRecorder()
	s := gate.Load(rec, httptest.NewRequest(http.MethodPost, "/users/signin", nil))
	err := gate.SignIn(s, "guest", "shhhh")
	assert.True(t, errors.Is(err, core.ErrInvalidCredentials))
	assert.False(t, s.IsAuthenticated())

	// Valid credentials authenticate.
	require.NoError(t, gate.SignIn(s, "admin", "secret"))
	require.NoError(t, s.Save())
	assert.Equal(t, "admin", s.Username())

	var ran bool
	guarded := gate.RequireAuthenticated(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
		w.WriteHeader(http.StatusOK)
	}))
	rec2 := httptest.NewRecorder()
	guarded.ServeHTTP(rec2, replay(rec, http.MethodGet, "/about.md/edit"))
	assert.True(t, ran)
	assert.Equal(t, http.StatusOK, rec2.Code)

	// Sign out returns to anonymous.
	rec3 := httptest.NewRecorder()
	s = gate.Load(rec3, replay(rec, http.MethodPost, "/users/signout"))
	s.SignOut()
	require.NoError(t, s.Save())

	s = gate.Load(httptest.NewRecorder(), replay(rec3, http.MethodGet, "/"))
	assert.False(t, s.IsAuthenticated())
}

func TestLoad_TamperedCookieIsAnonymous(t *testing.T) {
	gate := newTestGate(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: auth.DefaultCookieName, Value: strings.Repeat("x", 40)})

	s := gate.Load(httptest.NewRecorder(), req)
	assert.False(t, s.IsAuthenticated())
}

func TestGateState(t *testing.T) {
	gate := newTestGate(t)

	state, ok := gate.State().(auth.GateState)
	require.True(t, ok)
	assert.Equal(t, auth.DefaultCookieName, state.CookieName)
	assert.Equal(t, "*auth.StaticCredentials", state.CheckerType)
}
