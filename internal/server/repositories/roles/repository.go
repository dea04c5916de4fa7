package roles

import "context"

// Repository manages the role catalogue and role assignments.
type Repository interface {
	EnsureRole(ctx context.Context, name string) error
	AddUserToRole(ctx context.Context, userID, role string) error
	RemoveUserFromRole(ctx context.Context, userID, role string) error
	GetUserRoles(ctx context.Context, userID string) ([]string, error)
}
