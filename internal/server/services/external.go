package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/idgateway/internal/common"
	"github.com/dmitrijs2005/idgateway/internal/dbx"
	"github.com/dmitrijs2005/idgateway/internal/logging"
	"github.com/dmitrijs2005/idgateway/internal/server/external"
	"github.com/dmitrijs2005/idgateway/internal/server/models"
	"github.com/dmitrijs2005/idgateway/internal/server/repositories/repomanager"
)

// ExternalLoginService maps an external identity to a local account.
type ExternalLoginService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewExternalLoginService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *ExternalLoginService {
	return &ExternalLoginService{db: db, repomanager: m, logger: logger.With("module", "external")}
}

// SignIn returns the account owning the identity's email, creating it with
// models.DefaultRole on first sight. Identities without a verified email
// are refused with common.ErrAuthFailed.
func (s *ExternalLoginService) SignIn(ctx context.Context, scheme string, id external.Identity) (*models.User, error) {
	email := strings.TrimSpace(id.Email)
	if email == "" || !id.EmailVerified {
		return nil, fmt.Errorf("%w: %s identity has no verified email", common.ErrAuthFailed, scheme)
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	user = &models.User{UserName: email, Email: email, EmailConfirmed: true}
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Users(tx).Create(ctx, user); err != nil {
			return err
		}
		if id.Name != "" {
			if err := s.repomanager.Users(tx).AddClaims(ctx, user.ID, []models.Claim{{Type: models.ClaimName, Value: id.Name}}); err != nil {
				return err
			}
		}
		return s.repomanager.Roles(tx).AddUserToRole(ctx, user.ID, models.DefaultRole)
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			// provisioned concurrently by another callback
			return s.repomanager.Users(s.db).GetByEmail(ctx, email)
		}
		return nil, fmt.Errorf("provision external user: %w", err)
	}

	s.logger.Info(ctx, "external user provisioned", "user_id", user.ID, "scheme", scheme)
	return user, nil
}
