package resources

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/idgateway/internal/dbx"
	"github.com/dmitrijs2005/idgateway/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) count(ctx context.Context, table string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM "+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) error {
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) CountIdentityResources(ctx context.Context) (int, error) {
	return r.count(ctx, "identity_resources")
}

func (r *PostgresRepository) InsertIdentityResource(ctx context.Context, res *models.IdentityResource) error {
	return r.exec(ctx,
		`INSERT INTO identity_resources (name, display_name, user_claims)
		 VALUES ($1, $2, $3)`,
		res.Name, res.DisplayName, dbx.StringList(res.UserClaims))
}

func (r *PostgresRepository) DeleteAllIdentityResources(ctx context.Context) error {
	return r.exec(ctx, "DELETE FROM identity_resources")
}

func (r *PostgresRepository) CountAPIScopes(ctx context.Context) (int, error) {
	return r.count(ctx, "api_scopes")
}

func (r *PostgresRepository) InsertAPIScope(ctx context.Context, s *models.APIScope) error {
	return r.exec(ctx,
		`INSERT INTO api_scopes (name, display_name)
		 VALUES ($1, $2)`,
		s.Name, s.DisplayName)
}

func (r *PostgresRepository) DeleteAllAPIScopes(ctx context.Context) error {
	return r.exec(ctx, "DELETE FROM api_scopes")
}

func (r *PostgresRepository) CountAPIResources(ctx context.Context) (int, error) {
	return r.count(ctx, "api_resources")
}

func (r *PostgresRepository) InsertAPIResource(ctx context.Context, res *models.APIResource) error {
	return r.exec(ctx,
		`INSERT INTO api_resources (name, display_name, scopes, user_claims)
		 VALUES ($1, $2, $3, $4)`,
		res.Name, res.DisplayName, dbx.StringList(res.Scopes), dbx.StringList(res.UserClaims))
}

func (r *PostgresRepository) DeleteAllAPIResources(ctx context.Context) error {
	return r.exec(ctx, "DELETE FROM api_resources")
}
