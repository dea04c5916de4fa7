// Package external holds the identity-provider scheme registry and the
// external OIDC providers the gateway can delegate a login to.
package external

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/idgateway/internal/common"
	"github.com/dmitrijs2005/idgateway/internal/server/models"
)

var ErrSchemeConflict = errors.New("scheme already registered")

// Identity is what an external provider asserts about the user.
type Identity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
}

// Provider is an external login provider.
type Provider interface {
	LoginURL(state string) string
	Exchange(ctx context.Context, code string) (Identity, error)
}

type entry struct {
	scheme   models.IdentityProviderScheme
	provider Provider
}

// Registry lists the authentication schemes in registration order.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]entry
}

// NewRegistry returns a registry holding only the local scheme, which has
// no display name and therefore never shows up as an external option.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]entry)}
	r.order = append(r.order, common.LocalIdentityProvider)
	r.entries[common.LocalIdentityProvider] = entry{
		scheme: models.IdentityProviderScheme{Name: common.LocalIdentityProvider},
	}
	return r
}

// Use registers p under name. An empty displayName hides the scheme from
// the login page while keeping it addressable by name.
func (r *Registry) Use(name, displayName string, p Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[name]; ok {
		return ErrSchemeConflict
	}

	r.order = append(r.order, name)
	r.entries[name] = entry{
		scheme:   models.IdentityProviderScheme{Name: name, DisplayName: displayName},
		provider: p,
	}
	return nil
}

// Scheme looks a scheme up by name.
func (r *Registry) Scheme(_ context.Context, name string) (models.IdentityProviderScheme, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	return e.scheme, ok
}

// Schemes returns every registered scheme in registration order.
func (r *Registry) Schemes(_ context.Context) []models.IdentityProviderScheme {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.IdentityProviderScheme, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name].scheme)
	}
	return out
}

// Provider returns the external provider behind name. The local scheme has
// none and yields common.ErrUnknownScheme like any unregistered name.
func (r *Registry) Provider(name string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok || e.provider == nil {
		return nil, common.ErrUnknownScheme
	}
	return e.provider, nil
}
