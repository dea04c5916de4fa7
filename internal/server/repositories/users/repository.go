package users

import (
	"context"

	"github.com/dmitrijs2005/idgateway/internal/server/models"
)

// Repository is the account side of the credential store.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUserName(ctx context.Context, userName string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	AddClaims(ctx context.Context, userID string, claims []models.Claim) error
	GetClaims(ctx context.Context, userID string) ([]models.Claim, error)
}
