package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/idgateway/internal/common"
	"github.com/dmitrijs2005/idgateway/internal/logging"
	"github.com/dmitrijs2005/idgateway/internal/server/auth"
	"github.com/dmitrijs2005/idgateway/internal/server/external"
	"github.com/dmitrijs2005/idgateway/internal/server/interaction"
	"github.com/dmitrijs2005/idgateway/internal/server/models"
	"github.com/dmitrijs2005/idgateway/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeLogin struct {
	decision   *models.LoginDecision
	resolveErr error
	validRefs  map[string]bool
	user       *models.User
	result     models.ValidationResult
	authErr    error
}

func (f *fakeLogin) Resolve(_ context.Context, ref string) (*models.LoginDecision, error) {
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	d := *f.decision
	d.ReturnRef = ref
	return &d, nil
}

func (f *fakeLogin) IsValidReturnRef(_ context.Context, ref string) (bool, error) {
	return f.validRefs[ref], nil
}

func (f *fakeLogin) Authenticate(context.Context, string, string) (*models.User, models.ValidationResult, error) {
	return f.user, f.result, f.authErr
}

type fakeRegistrar struct {
	user   *models.User
	result models.ValidationResult
	err    error
	got    services.RegisterInput
}

func (f *fakeRegistrar) Register(_ context.Context, in services.RegisterInput) (*models.User, models.ValidationResult, error) {
	f.got = in
	return f.user, f.result, f.err
}

type fakeExternal struct {
	user *models.User
	err  error
	got  external.Identity
}

func (f *fakeExternal) SignIn(_ context.Context, _ string, id external.Identity) (*models.User, error) {
	f.got = id
	return f.user, f.err
}

type fakeProvider struct {
	identity external.Identity
	err      error
}

func (p *fakeProvider) LoginURL(state string) string {
	return "https://provider.example/auth?state=" + state
}

func (p *fakeProvider) Exchange(context.Context, string) (external.Identity, error) {
	return p.identity, p.err
}

type fakeProviders map[string]external.Provider

func (f fakeProviders) Provider(name string) (external.Provider, error) {
	if p, ok := f[name]; ok {
		return p, nil
	}
	return nil, common.ErrUnknownScheme
}

type fakeInteractions struct {
	states  map[string]interaction.ExternalState
	logouts map[string]interaction.LogoutContext
	err     error
}

func (f *fakeInteractions) PutExternalState(_ context.Context, st interaction.ExternalState) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.states == nil {
		f.states = map[string]interaction.ExternalState{}
	}
	state := fmt.Sprintf("state-%d", len(f.states)+1)
	f.states[state] = st
	return state, nil
}

func (f *fakeInteractions) RedeemExternalState(_ context.Context, state string) (*interaction.ExternalState, error) {
	if f.err != nil {
		return nil, f.err
	}
	st, ok := f.states[state]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(f.states, state)
	return &st, nil
}

func (f *fakeInteractions) RedeemLogout(_ context.Context, id string) (*interaction.LogoutContext, error) {
	if f.err != nil {
		return nil, f.err
	}
	lc, ok := f.logouts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &lc, nil
}

// ---- helpers ----

var testSecret = []byte("session-secret")

type testEnv struct {
	login        *fakeLogin
	registrar    *fakeRegistrar
	external     *fakeExternal
	provider     *fakeProvider
	interactions *fakeInteractions
	health       map[string]HealthCheck
}

func newTestEnv() *testEnv {
	return &testEnv{
		login: &fakeLogin{
			decision: &models.LoginDecision{
				AllowLocal:        true,
				AllowRemember:     true,
				ExternalProviders: []models.ExternalProvider{{DisplayName: "Google", AuthenticationScheme: "Google"}},
			},
			validRefs: map[string]bool{"/connect/authorize/callback?x=1": true},
		},
		registrar:    &fakeRegistrar{},
		external:     &fakeExternal{},
		provider:     &fakeProvider{},
		interactions: &fakeInteractions{},
		health:       map[string]HealthCheck{},
	}
}

func (e *testEnv) handler() http.Handler {
	s := NewServer("", Deps{
		Login:        e.login,
		Registration: e.registrar,
		External:     e.external,
		Providers:    fakeProviders{"Google": e.provider},
		Interactions: e.interactions,
		Health:       e.health,
	}, SessionConfig{Secret: testSecret, TTL: time.Hour}, logging.Nop())
	return s.Handler()
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == common.SessionCookieName {
			return c
		}
	}
	return nil
}

// ---- tests ----

func TestLoginPage_ReturnsDecision(t *testing.T) {
	e := newTestEnv()

	rec := do(t, e.handler(), http.MethodGet, "/auth/login?returnUrl=abc", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, true, got["enableLocalLogin"])
	assert.Equal(t, true, got["allowRememberLogin"])
	assert.Equal(t, "abc", got["returnUrl"])
	assert.Len(t, got["externalProviders"], 1)
}

func TestLoginPage_ExternalOnlyRedirects(t *testing.T) {
	e := newTestEnv()
	e.login.decision = &models.LoginDecision{
		ExternalProviders: []models.ExternalProvider{{AuthenticationScheme: "Google"}},
	}

	rec := do(t, e.handler(), http.MethodGet, "/auth/login?returnUrl=ref-1", nil)
	require.Equal(t, http.StatusFound, rec.Code)

	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/external/challenge", loc.Path)
	assert.Equal(t, "Google", loc.Query().Get("scheme"))
	assert.Equal(t, "ref-1", loc.Query().Get("returnUrl"))
}

func TestLoginPage_StoreFailure(t *testing.T) {
	e := newTestEnv()
	e.login.resolveErr = errors.New("redis down")

	rec := do(t, e.handler(), http.MethodGet, "/auth/login", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLogin(t *testing.T) {
	const ret = "/connect/authorize/callback?x=1"

	tests := []struct {
		name        string
		setup       func(e *testEnv)
		body        any
		wantStatus  int
		wantCookie  bool
		wantPersist bool
	}{
		{
			name:       "success redirects to return url",
			setup:      func(e *testEnv) { e.login.user = &models.User{ID: "u1"} },
			body:       loginRequest{Email: "a@x", Password: "p", ReturnURL: ret},
			wantStatus: http.StatusFound,
			wantCookie: true,
		},
		{
			name:        "remember me persists the cookie",
			setup:       func(e *testEnv) { e.login.user = &models.User{ID: "u1"} },
			body:        loginRequest{Email: "a@x", Password: "p", RememberLogin: true},
			wantStatus:  http.StatusOK,
			wantCookie:  true,
			wantPersist: true,
		},
		{
			name: "remember me ignored when not allowed",
			setup: func(e *testEnv) {
				e.login.user = &models.User{ID: "u1"}
				e.login.decision.AllowRemember = false
			},
			body:       loginRequest{Email: "a@x", Password: "p", RememberLogin: true},
			wantStatus: http.StatusOK,
			wantCookie: true,
		},
		{
			name: "bad credentials",
			setup: func(e *testEnv) {
				e.login.result.Add("Email", "Invalid email or password")
			},
			body:       loginRequest{Email: "a@x", Password: "bad"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "foreign return url",
			setup:      func(e *testEnv) { e.login.user = &models.User{ID: "u1"} },
			body:       loginRequest{Email: "a@x", Password: "p", ReturnURL: "https://evil.example"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "local login disabled",
			setup:      func(e *testEnv) { e.login.decision.AllowLocal = false },
			body:       loginRequest{Email: "a@x", Password: "p"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "store failure",
			setup:      func(e *testEnv) { e.login.authErr = errors.New("db gone") },
			body:       loginRequest{Email: "a@x", Password: "p"},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "malformed body",
			setup:      func(e *testEnv) {},
			body:       "not an object",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv()
			tt.setup(e)

			rec := do(t, e.handler(), http.MethodPost, "/auth/login", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			c := sessionCookie(t, rec)
			if !tt.wantCookie {
				assert.Nil(t, c)
				return
			}
			require.NotNil(t, c)
			assert.True(t, c.HttpOnly)
			assert.Equal(t, tt.wantPersist, !c.Expires.IsZero())

			sub, err := auth.GetSubjectFromToken(c.Value, auth.AudienceSession, testSecret)
			require.NoError(t, err)
			assert.Equal(t, "u1", sub)

			if tt.wantStatus == http.StatusFound {
				assert.Equal(t, ret, rec.Header().Get("Location"))
			}
		})
	}
}

func TestLogin_FieldErrorsBody(t *testing.T) {
	e := newTestEnv()
	e.login.result.Add("Email", "Email is required")
	e.login.result.Add("Password", "Password is required")

	rec := do(t, e.handler(), http.MethodPost, "/auth/login", loginRequest{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"errors":[
		{"field":"Email","message":"Email is required"},
		{"field":"Password","message":"Password is required"}
	]}`, rec.Body.String())
}

func TestLogout(t *testing.T) {
	e := newTestEnv()
	e.interactions.logouts = map[string]interaction.LogoutContext{
		"lo-1": {ClientID: "webapp", PostLogoutRedirectURI: "http://localhost:3000/"},
		"lo-2": {ClientID: "webapp"},
	}
	h := e.handler()

	tests := []struct {
		target string
		want   string
	}{
		{"/auth/logout?logoutId=lo-1", "http://localhost:3000/"},
		{"/auth/logout?logoutId=lo-2", "/"},
		{"/auth/logout?logoutId=unknown", "/"},
		{"/auth/logout", "/"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.target, nil)
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tt.want, rec.Header().Get("Location"))

			c := sessionCookie(t, rec)
			require.NotNil(t, c)
			assert.Empty(t, c.Value)
			assert.Less(t, c.MaxAge, 0)
		})
	}
}

func TestRegister(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		e := newTestEnv()
		e.registrar.user = &models.User{ID: "u7"}

		rec := do(t, e.handler(), http.MethodPost, "/auth/register", map[string]string{
			"email": "n@x.io", "password": "Abc12!", "confirmPassword": "Abc12!",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"isSuccessfulRegistration":true}`, rec.Body.String())
		assert.Equal(t, services.RegisterInput{Email: "n@x.io", Password: "Abc12!", ConfirmPassword: "Abc12!"}, e.registrar.got)
		assert.NotNil(t, sessionCookie(t, rec))
	})

	t.Run("validation errors", func(t *testing.T) {
		e := newTestEnv()
		e.registrar.result.Add("Email", "Email already in use")

		rec := do(t, e.handler(), http.MethodPost, "/auth/register", map[string]string{"email": "a@x.io"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"isSuccessfulRegistration":false,"errors":["Email already in use"]}`, rec.Body.String())
		assert.Nil(t, sessionCookie(t, rec))
	})

	t.Run("store failure", func(t *testing.T) {
		e := newTestEnv()
		e.registrar.err = errors.New("db gone")

		rec := do(t, e.handler(), http.MethodPost, "/auth/register", map[string]string{"email": "a@x.io"})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		e := newTestEnv()
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		e.handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestExternalChallengeAndCallback(t *testing.T) {
	e := newTestEnv()
	e.provider.identity = external.Identity{Subject: "g-1", Email: "g@x.io", EmailVerified: true}
	e.external.user = &models.User{ID: "u9"}
	h := e.handler()

	rec := do(t, h, http.MethodGet, "/external/challenge?scheme=Google&returnUrl="+url.QueryEscape("/connect/authorize/callback?x=1"), nil)
	require.Equal(t, http.StatusFound, rec.Code)

	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "provider.example", loc.Host)
	state := loc.Query().Get("state")
	require.NotEmpty(t, state)

	rec = do(t, h, http.MethodGet, "/external/callback/Google?code=c0de&state="+state, nil)
	require.Equal(t, http.StatusFound, rec.Code, rec.Body.String())
	assert.Equal(t, "/connect/authorize/callback?x=1", rec.Header().Get("Location"))
	assert.Equal(t, "g@x.io", e.external.got.Email)

	c := sessionCookie(t, rec)
	require.NotNil(t, c)
	sub, err := auth.GetSubjectFromToken(c.Value, auth.AudienceSession, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "u9", sub)

	// state is single use
	rec = do(t, h, http.MethodGet, "/external/callback/Google?code=c0de&state="+state, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExternalChallenge_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		setup  func(e *testEnv)
		want   int
	}{
		{"unknown scheme", "/external/challenge?scheme=Twitter", func(*testEnv) {}, http.StatusNotFound},
		{"local scheme", "/external/challenge?scheme=local", func(*testEnv) {}, http.StatusNotFound},
		{"foreign return url", "/external/challenge?scheme=Google&returnUrl=https://evil.example", func(*testEnv) {}, http.StatusBadRequest},
		{"store failure", "/external/challenge?scheme=Google", func(e *testEnv) { e.interactions.err = errors.New("redis down") }, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv()
			tt.setup(e)
			rec := do(t, e.handler(), http.MethodGet, tt.target, nil)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestExternalCallback_Errors(t *testing.T) {
	tests := []struct {
		name  string
		state interaction.ExternalState
		query string
		setup func(e *testEnv)
		want  int
	}{
		{
			name:  "scheme mismatch",
			state: interaction.ExternalState{Scheme: "Facebook"},
			query: "code=c",
			setup: func(*testEnv) {},
			want:  http.StatusBadRequest,
		},
		{
			name:  "missing code",
			state: interaction.ExternalState{Scheme: "Google"},
			setup: func(*testEnv) {},
			want:  http.StatusBadRequest,
		},
		{
			name:  "provider error",
			state: interaction.ExternalState{Scheme: "Google"},
			query: "error=access_denied",
			setup: func(*testEnv) {},
			want:  http.StatusUnauthorized,
		},
		{
			name:  "exchange failed",
			state: interaction.ExternalState{Scheme: "Google"},
			query: "code=c",
			setup: func(e *testEnv) { e.provider.err = common.ErrAuthFailed },
			want:  http.StatusUnauthorized,
		},
		{
			name:  "unverified email refused",
			state: interaction.ExternalState{Scheme: "Google"},
			query: "code=c",
			setup: func(e *testEnv) { e.external.err = fmt.Errorf("%w: no email", common.ErrAuthFailed) },
			want:  http.StatusUnauthorized,
		},
		{
			name:  "sign-in store failure",
			state: interaction.ExternalState{Scheme: "Google"},
			query: "code=c",
			setup: func(e *testEnv) { e.external.err = errors.New("db gone") },
			want:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv()
			e.external.user = &models.User{ID: "u1"}
			tt.setup(e)
			e.interactions.states = map[string]interaction.ExternalState{"s1": tt.state}

			rec := do(t, e.handler(), http.MethodGet, "/external/callback/Google?state=s1&"+tt.query, nil)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
			assert.Nil(t, sessionCookie(t, rec))
		})
	}
}

func TestHealth(t *testing.T) {
	e := newTestEnv()
	e.health["database"] = func(context.Context) error { return nil }
	e.health["redis"] = func(context.Context) error { return nil }

	rec := do(t, e.handler(), http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","checks":{"database":"ok","redis":"ok"}}`, rec.Body.String())

	e.health["redis"] = func(context.Context) error { return errors.New("dial tcp: refused") }
	rec = do(t, e.handler(), http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unavailable","checks":{"database":"ok","redis":"dial tcp: refused"}}`, rec.Body.String())
}

func TestRecoverer(t *testing.T) {
	s := NewServer("", Deps{}, SessionConfig{}, logging.Nop())
	h := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }), s.recoverer)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	s := NewServer("127.0.0.1:0", Deps{}, SessionConfig{}, logging.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}
