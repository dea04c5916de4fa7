package resources

import (
	"context"

	"github.com/dmitrijs2005/idgateway/internal/server/models"
)

// Repository stores the identity resources, API scopes and API resources
// of the authorization server.
type Repository interface {
	CountIdentityResources(ctx context.Context) (int, error)
	InsertIdentityResource(ctx context.Context, r *models.IdentityResource) error
	DeleteAllIdentityResources(ctx context.Context) error

	CountAPIScopes(ctx context.Context) (int, error)
	InsertAPIScope(ctx context.Context, s *models.APIScope) error
	DeleteAllAPIScopes(ctx context.Context) error

	CountAPIResources(ctx context.Context) (int, error)
	InsertAPIResource(ctx context.Context, r *models.APIResource) error
	DeleteAllAPIResources(ctx context.Context) error
}
