package clients

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/idgateway/internal/common"
	"github.com/dmitrijs2005/idgateway/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clientColumns = []string{
	"client_id", "client_name", "enabled", "enable_local_login", "identity_provider_restrictions",
	"allowed_grant_types", "redirect_uris", "post_logout_redirect_uris", "allowed_scopes",
	"require_pkce", "allow_offline_access",
}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestFindEnabledClientByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+client_id,.+FROM\s+clients\s+WHERE\s+client_id\s*=\s*\$1\s+AND\s+enabled\s*$`
	mock.ExpectQuery(q).WithArgs("spa").
		WillReturnRows(sqlmock.NewRows(clientColumns).AddRow(
			"spa", "Web App", true, false, `["google"]`,
			`["authorization_code"]`, `["https://app/callback"]`, `["https://app/"]`, `["openid","profile"]`,
			true, true))

	got, err := repo.FindEnabledClientByID(context.Background(), "spa")
	require.NoError(t, err)
	assert.Equal(t, &models.Client{
		ClientID:                     "spa",
		ClientName:                   "Web App",
		Enabled:                      true,
		EnableLocalLogin:             false,
		IdentityProviderRestrictions: []string{"google"},
		AllowedGrantTypes:            []string{"authorization_code"},
		RedirectURIs:                 []string{"https://app/callback"},
		PostLogoutRedirectURIs:       []string{"https://app/"},
		AllowedScopes:                []string{"openid", "profile"},
		RequirePKCE:                  true,
		AllowOfflineAccess:           true,
	}, got)
}

func TestFindEnabledClientByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+clients`).WithArgs("nope").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindEnabledClientByID(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFindEnabledClientByID_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+clients`).WillReturnError(errors.New("conn reset"))

	_, err := repo.FindEnabledClientByID(context.Background(), "spa")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestCount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`^SELECT\s+count\(\*\)\s+FROM\s+clients$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestInsert(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+clients\s*\(.+\)\s*VALUES\s*\(\$1,.+\$11\)\s*$`).
		WithArgs("cli", "CLI", true, true, "[]",
			`["client_credentials"]`, "[]", "[]", `["billing"]`,
			false, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), &models.Client{
		ClientID:          "cli",
		ClientName:        "CLI",
		Enabled:           true,
		EnableLocalLogin:  true,
		AllowedGrantTypes: []string{"client_credentials"},
		AllowedScopes:     []string{"billing"},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAll(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`^DELETE\s+FROM\s+clients$`).WillReturnResult(sqlmock.NewResult(0, 4))
	require.NoError(t, repo.DeleteAll(context.Background()))

	mock.ExpectExec(`^DELETE\s+FROM\s+clients$`).WillReturnError(errors.New("locked"))
	require.Error(t, repo.DeleteAll(context.Background()))
}
