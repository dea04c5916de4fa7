package roles

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/idgateway/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureRole creates the role if it does not exist yet.
func (r *PostgresRepository) EnsureRole(ctx context.Context, name string) error {
	query :=
		`INSERT INTO roles (name) VALUES ($1)
		 ON CONFLICT (name) DO NOTHING
		 `

	if _, err := r.db.ExecContext(ctx, query, name); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// AddUserToRole assigns role to the user. Assigning a held role is a no-op.
func (r *PostgresRepository) AddUserToRole(ctx context.Context, userID, role string) error {
	query :=
		`INSERT INTO user_roles (user_id, role_name) VALUES ($1, $2)
		 ON CONFLICT (user_id, role_name) DO NOTHING
		 `

	if _, err := r.db.ExecContext(ctx, query, userID, role); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// RemoveUserFromRole drops the assignment. Removing a role the user does not
// hold is a no-op.
func (r *PostgresRepository) RemoveUserFromRole(ctx context.Context, userID, role string) error {
	query :=
		`DELETE FROM user_roles
		 WHERE user_id = $1 AND role_name = $2
		 `

	if _, err := r.db.ExecContext(ctx, query, userID, role); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetUserRoles(ctx context.Context, userID string) ([]string, error) {
	query :=
		`SELECT role_name FROM user_roles
		 WHERE user_id = $1
		 ORDER BY role_name
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	roles := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		roles = append(roles, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return roles, nil
}
