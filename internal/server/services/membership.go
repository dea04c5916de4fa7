package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/idgateway/internal/common"
	"github.com/dmitrijs2005/idgateway/internal/logging"
	"github.com/dmitrijs2005/idgateway/internal/server/models"
	"github.com/dmitrijs2005/idgateway/internal/server/repositories/repomanager"
)

const (
	membershipUserNotFound = "User not found"
	membershipUpdated      = "User updated"
	membershipFailedPrefix = "User can not be updated due to "
)

// MembershipService grants or revokes the paying role on behalf of billing.
type MembershipService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewMembershipService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *MembershipService {
	return &MembershipService{db: db, repomanager: m, logger: logger.With("module", "membership")}
}

// UpdateMembership grants models.RolePayingUser when success is true and
// revokes it otherwise. Both directions are idempotent. Every outcome,
// failures included, is reported in the result.
func (s *MembershipService) UpdateMembership(ctx context.Context, userID string, success bool) models.MembershipResult {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "membership update for unknown user", "user_id", userID)
			return models.MembershipResult{Success: false, Message: membershipUserNotFound}
		}
		return s.failed(ctx, userID, err)
	}

	roles := s.repomanager.Roles(s.db)
	if success {
		err = roles.AddUserToRole(ctx, user.ID, models.RolePayingUser)
	} else {
		err = roles.RemoveUserFromRole(ctx, user.ID, models.RolePayingUser)
	}
	if err != nil {
		return s.failed(ctx, userID, err)
	}

	s.logger.Info(ctx, "membership updated", "user_id", user.ID, "paying", success)
	return models.MembershipResult{Success: true, Message: membershipUpdated}
}

func (s *MembershipService) failed(ctx context.Context, userID string, err error) models.MembershipResult {
	s.logger.Error(ctx, "membership update failed", "user_id", userID, "error", err)
	return models.MembershipResult{Success: false, Message: membershipFailedPrefix + err.Error()}
}
