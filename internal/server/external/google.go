package external

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/dmitrijs2005/idgateway/internal/common"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

// GoogleScheme is the scheme name of the Google provider.
const GoogleScheme = "Google"

const googleIssuer = "https://accounts.google.com"

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Google implements Provider with Google's OpenID Connect endpoints.
type Google struct {
	cfg      *oauth2.Config
	verifier *oidc.IDTokenVerifier
}

type googleClaims struct {
	Sub      string `json:"sub"`
	Email    string `json:"email"`
	Verified bool   `json:"email_verified"`
	Name     string `json:"name"`
}

// newOIDCProvider is a seam for tests; discovery hits the network.
var newOIDCProvider = oidc.NewProvider

func NewGoogle(ctx context.Context, google GoogleConfig) (*Google, error) {
	p, err := newOIDCProvider(ctx, googleIssuer)
	if err != nil {
		return nil, fmt.Errorf("new oidc provider: %w", err)
	}

	return newGoogle(&oauth2.Config{
		ClientID:     google.ClientID,
		ClientSecret: google.ClientSecret,
		RedirectURL:  google.RedirectURL,
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		Endpoint:     endpoints.Google,
	}, p.Verifier(&oidc.Config{ClientID: google.ClientID})), nil
}

func newGoogle(cfg *oauth2.Config, verifier *oidc.IDTokenVerifier) *Google {
	return &Google{cfg: cfg, verifier: verifier}
}

func (g *Google) LoginURL(state string) string {
	return g.cfg.AuthCodeURL(state)
}

// Exchange redeems code and verifies the returned ID token. A code the
// provider rejects yields common.ErrAuthFailed.
func (g *Google) Exchange(ctx context.Context, code string) (Identity, error) {
	tok, err := g.cfg.Exchange(ctx, code)
	if err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) && rerr.Response != nil {
			if rerr.Response.StatusCode == http.StatusBadRequest || rerr.Response.StatusCode == http.StatusUnauthorized {
				return Identity{}, common.ErrAuthFailed
			}
		}
		return Identity{}, fmt.Errorf("exchange: %w", err)
	}

	raw, ok := tok.Extra("id_token").(string)
	if !ok || raw == "" {
		return Identity{}, fmt.Errorf("%w: no id_token in token response", common.ErrAuthFailed)
	}

	idTok, err := g.verifier.Verify(ctx, raw)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: verify id token: %v", common.ErrAuthFailed, err)
	}

	var c googleClaims
	if err := idTok.Claims(&c); err != nil {
		return Identity{}, fmt.Errorf("read claims: %w", err)
	}

	return Identity{
		Subject:       c.Sub,
		Email:         c.Email,
		EmailVerified: c.Verified,
		Name:          c.Name,
	}, nil
}
