// Package http serves the browser-facing login API: local and external
// sign-in, logout, registration and a health probe. Responses are JSON view
// models or redirects; page rendering is left to the front end.
package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/idgateway/internal/logging"
	"github.com/dmitrijs2005/idgateway/internal/server/external"
	"github.com/dmitrijs2005/idgateway/internal/server/interaction"
	"github.com/dmitrijs2005/idgateway/internal/server/models"
	"github.com/dmitrijs2005/idgateway/internal/server/services"
)

type LoginResolver interface {
	Resolve(ctx context.Context, returnRef string) (*models.LoginDecision, error)
	IsValidReturnRef(ctx context.Context, returnRef string) (bool, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, models.ValidationResult, error)
}

type Registrar interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.User, models.ValidationResult, error)
}

type ExternalSignIn interface {
	SignIn(ctx context.Context, scheme string, id external.Identity) (*models.User, error)
}

type ProviderLookup interface {
	Provider(name string) (external.Provider, error)
}

// InteractionStore is the part of the interaction store the handlers write to.
type InteractionStore interface {
	PutExternalState(ctx context.Context, st interaction.ExternalState) (string, error)
	RedeemExternalState(ctx context.Context, state string) (*interaction.ExternalState, error)
	RedeemLogout(ctx context.Context, logoutID string) (*interaction.LogoutContext, error)
}

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

// SessionConfig controls the session cookie.
type SessionConfig struct {
	Secret []byte
	TTL    time.Duration
	Secure bool
}

type Deps struct {
	Login        LoginResolver
	Registration Registrar
	External     ExternalSignIn
	Providers    ProviderLookup
	Interactions InteractionStore
	Health       map[string]HealthCheck
}

type Server struct {
	address string
	deps    Deps
	session SessionConfig
	logger  logging.Logger
}

func NewServer(address string, deps Deps, session SessionConfig, logger logging.Logger) *Server {
	return &Server{
		address: address,
		deps:    deps,
		session: session,
		logger:  logger.With("module", "http_server"),
	}
}

// Handler returns the routed handler wrapped in the access log and panic
// recovery middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /auth/login", s.handleLoginPage)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("GET /auth/logout", s.handleLogout)
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("GET /external/challenge", s.handleChallenge)
	mux.HandleFunc("GET /external/callback/{scheme}", s.handleCallback)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	return chain(mux, s.recoverer, s.accessLog)
}

func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *Server) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "http shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
