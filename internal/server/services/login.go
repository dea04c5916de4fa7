// Package services contains the gateway's business logic: login routing and
// local credential checks, claims issuance, membership updates, registration,
// external sign-in and the startup bootstrap sequencer.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/idgateway/internal/common"
	"github.com/dmitrijs2005/idgateway/internal/logging"
	"github.com/dmitrijs2005/idgateway/internal/server/auth"
	"github.com/dmitrijs2005/idgateway/internal/server/models"
	"github.com/dmitrijs2005/idgateway/internal/server/repositories/repomanager"
)

// Message of the single error reported for any failed local sign-in.
const invalidCredentialsMessage = "Invalid email or password"

// PendingRequests resolves a return reference to the authorization request
// the protocol engine is waiting to resume.
type PendingRequests interface {
	Resolve(ctx context.Context, returnRef string) (*models.PendingRequestContext, error)
}

// SchemeProvider enumerates the registered authentication schemes.
type SchemeProvider interface {
	Scheme(ctx context.Context, name string) (models.IdentityProviderScheme, bool)
	Schemes(ctx context.Context) []models.IdentityProviderScheme
}

// LoginPolicy is the global login configuration.
type LoginPolicy struct {
	AllowLocalLogin    bool
	AllowRememberLogin bool
}

// LoginResolver decides which authentication paths a login attempt gets
// and checks local credentials.
type LoginResolver struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	pending     PendingRequests
	schemes     SchemeProvider
	policy      LoginPolicy
	logger      logging.Logger
}

func NewLoginResolver(db *sql.DB, m repomanager.RepositoryManager, pending PendingRequests,
	schemes SchemeProvider, policy LoginPolicy, logger logging.Logger) *LoginResolver {
	return &LoginResolver{
		db:          db,
		repomanager: m,
		pending:     pending,
		schemes:     schemes,
		policy:      policy,
		logger:      logger.With("module", "login"),
	}
}

// Resolve computes the login decision for returnRef without mutating anything.
func (s *LoginResolver) Resolve(ctx context.Context, returnRef string) (*models.LoginDecision, error) {
	pc, err := s.pendingContext(ctx, returnRef)
	if err != nil {
		return nil, err
	}

	// the request pins one scheme: offer exactly that and nothing else
	if pc != nil && pc.IdP != "" {
		if _, ok := s.schemes.Scheme(ctx, pc.IdP); ok {
			local := pc.IdP == common.LocalIdentityProvider
			d := &models.LoginDecision{
				AllowLocal:        local,
				ReturnRef:         returnRef,
				EmailHint:         pc.LoginHint,
				ExternalProviders: []models.ExternalProvider{},
			}
			if !local {
				d.ExternalProviders = []models.ExternalProvider{{AuthenticationScheme: pc.IdP}}
			}
			return d, nil
		}
	}

	providers := []models.ExternalProvider{}
	for _, sc := range s.schemes.Schemes(ctx) {
		if sc.DisplayName == "" {
			continue
		}
		providers = append(providers, models.ExternalProvider{
			DisplayName:          sc.DisplayName,
			AuthenticationScheme: sc.Name,
		})
	}

	allowLocal := true
	if pc != nil && pc.ClientID != "" {
		client, err := s.repomanager.Clients(s.db).FindEnabledClientByID(ctx, pc.ClientID)
		switch {
		case err == nil:
			allowLocal = client.EnableLocalLogin
			if len(client.IdentityProviderRestrictions) > 0 {
				providers = slices.DeleteFunc(providers, func(p models.ExternalProvider) bool {
					return !slices.Contains(client.IdentityProviderRestrictions, p.AuthenticationScheme)
				})
			}
		case errors.Is(err, common.ErrorNotFound):
			s.logger.Debug(ctx, "client of pending request not found", "client_id", pc.ClientID)
		default:
			return nil, fmt.Errorf("find client %s: %w", pc.ClientID, err)
		}
	}

	d := &models.LoginDecision{
		AllowRemember:     s.policy.AllowRememberLogin,
		AllowLocal:        allowLocal && s.policy.AllowLocalLogin,
		ReturnRef:         returnRef,
		ExternalProviders: providers,
	}
	if pc != nil {
		d.EmailHint = pc.LoginHint
	}
	return d, nil
}

// IsValidReturnRef reports whether returnRef names a live pending request,
// so callers only ever redirect to references the engine issued.
func (s *LoginResolver) IsValidReturnRef(ctx context.Context, returnRef string) (bool, error) {
	pc, err := s.pendingContext(ctx, returnRef)
	if err != nil {
		return false, err
	}
	return pc != nil, nil
}

func (s *LoginResolver) pendingContext(ctx context.Context, returnRef string) (*models.PendingRequestContext, error) {
	if returnRef == "" {
		return nil, nil
	}
	pc, err := s.pending.Resolve(ctx, returnRef)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve pending request: %w", err)
	}
	return pc, nil
}

// Authenticate checks local credentials. Unknown email and wrong password
// produce the same field error; only store failures are returned as errors.
func (s *LoginResolver) Authenticate(ctx context.Context, email, password string) (*models.User, models.ValidationResult, error) {
	var v models.ValidationResult

	email = strings.TrimSpace(email)
	if email == "" {
		v.Add("Email", "Email is required")
	}
	if password == "" {
		v.Add("Password", "Password is required")
	}
	if !v.OK() {
		return nil, v, nil
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "sign-in with unknown email")
			v.Add("Email", invalidCredentialsMessage)
			return nil, v, nil
		}
		return nil, v, fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		s.logger.Warn(ctx, "sign-in with wrong password", "user_id", user.ID)
		v.Add("Email", invalidCredentialsMessage)
		return nil, v, nil
	}

	return user, v, nil
}
