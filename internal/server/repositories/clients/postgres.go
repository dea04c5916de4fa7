package clients

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/idgateway/internal/common"
	"github.com/dmitrijs2005/idgateway/internal/dbx"
	"github.com/dmitrijs2005/idgateway/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// FindEnabledClientByID returns common.ErrorNotFound for unknown and
// disabled clients alike.
func (r *PostgresRepository) FindEnabledClientByID(ctx context.Context, clientID string) (*models.Client, error) {
	query :=
		`SELECT client_id, client_name, enabled, enable_local_login, identity_provider_restrictions,
		        allowed_grant_types, redirect_uris, post_logout_redirect_uris, allowed_scopes,
		        require_pkce, allow_offline_access
		 FROM clients
		 WHERE client_id = $1 AND enabled
		 `

	var c models.Client
	var restrictions, grants, redirects, postLogout, scopes dbx.StringList
	err := r.db.QueryRowContext(ctx, query, clientID).Scan(
		&c.ClientID, &c.ClientName, &c.Enabled, &c.EnableLocalLogin, &restrictions,
		&grants, &redirects, &postLogout, &scopes,
		&c.RequirePKCE, &c.AllowOfflineAccess)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	c.IdentityProviderRestrictions = restrictions
	c.AllowedGrantTypes = grants
	c.RedirectURIs = redirects
	c.PostLogoutRedirectURIs = postLogout
	c.AllowedScopes = scopes

	return &c, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM clients`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, c *models.Client) error {
	query :=
		`INSERT INTO clients (client_id, client_name, enabled, enable_local_login, identity_provider_restrictions,
		                      allowed_grant_types, redirect_uris, post_logout_redirect_uris, allowed_scopes,
		                      require_pkce, allow_offline_access)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 `

	_, err := r.db.ExecContext(ctx, query,
		c.ClientID, c.ClientName, c.Enabled, c.EnableLocalLogin, dbx.StringList(c.IdentityProviderRestrictions),
		dbx.StringList(c.AllowedGrantTypes), dbx.StringList(c.RedirectURIs), dbx.StringList(c.PostLogoutRedirectURIs),
		dbx.StringList(c.AllowedScopes), c.RequirePKCE, c.AllowOfflineAccess)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM clients`); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
