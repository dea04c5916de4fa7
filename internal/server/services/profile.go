package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/idgateway/internal/common"
	"github.com/dmitrijs2005/idgateway/internal/dbx"
	"github.com/dmitrijs2005/idgateway/internal/logging"
	"github.com/dmitrijs2005/idgateway/internal/server/models"
	"github.com/dmitrijs2005/idgateway/internal/server/repositories/repomanager"
)

// ProfileService supplies the token pipeline with claims and liveness.
type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewProfileService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *ProfileService {
	return &ProfileService{db: db, repomanager: m, logger: logger.With("module", "profile")}
}

// ClaimsFor returns sub, name, email, one role claim per assigned role and
// then the stored user claims in stored order. Each of sub, name and email
// appears exactly once: a stored name replaces the username, stored sub and
// email claims are dropped. An unknown subject yields
// common.ErrSubjectNotFound; a store outage common.ErrStoreUnavailable.
func (s *ProfileService) ClaimsFor(ctx context.Context, subjectID string) ([]models.Claim, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "claims requested for unknown subject", "subject", subjectID)
			return nil, fmt.Errorf("%w: %s", common.ErrSubjectNotFound, subjectID)
		}
		return nil, storeError(err)
	}

	roles, err := s.repomanager.Roles(s.db).GetUserRoles(ctx, user.ID)
	if err != nil {
		return nil, storeError(err)
	}

	stored, err := s.repomanager.Users(s.db).GetClaims(ctx, user.ID)
	if err != nil {
		return nil, storeError(err)
	}

	name := user.UserName
	extra := make([]models.Claim, 0, len(stored))
	for _, c := range stored {
		switch c.Type {
		case models.ClaimSubject, models.ClaimEmail:
		case models.ClaimName:
			name = c.Value
		default:
			extra = append(extra, c)
		}
	}

	claims := make([]models.Claim, 0, 3+len(roles)+len(extra))
	claims = append(claims,
		models.Claim{Type: models.ClaimSubject, Value: user.ID},
		models.Claim{Type: models.ClaimName, Value: name},
		models.Claim{Type: models.ClaimEmail, Value: user.Email},
	)
	for _, r := range roles {
		claims = append(claims, models.Claim{Type: models.ClaimRole, Value: r})
	}
	claims = append(claims, extra...)

	return claims, nil
}

// IsActive reports whether the subject still exists. A store failure is an
// error, never "inactive".
func (s *ProfileService) IsActive(ctx context.Context, subjectID string) (bool, error) {
	_, err := s.repomanager.Users(s.db).GetByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, storeError(err)
	}
	return true, nil
}

// storeError classifies a repository failure. Connection-level
// failures become common.ErrStoreUnavailable, anything else
// common.ErrorInternal.
func storeError(err error) error {
	if dbx.IsTransient(err) {
		return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%w: %v", common.ErrorInternal, err)
}
