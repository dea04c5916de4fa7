package clients

import (
	"context"

	"github.com/dmitrijs2005/idgateway/internal/server/models"
)

// Repository reads registered clients at runtime and lets the bootstrap
// sequencer rewrite them.
type Repository interface {
	FindEnabledClientByID(ctx context.Context, clientID string) (*models.Client, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, c *models.Client) error
	DeleteAll(ctx context.Context) error
}
