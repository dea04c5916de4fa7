package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/idgateway/internal/common"
	"github.com/dmitrijs2005/idgateway/internal/dbx"
	"github.com/dmitrijs2005/idgateway/internal/logging"
	"github.com/dmitrijs2005/idgateway/internal/server/external"
	"github.com/dmitrijs2005/idgateway/internal/server/models"
	"github.com/dmitrijs2005/idgateway/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExternalLoginService_SignIn_ProvisionsOnce(t *testing.T) {
	db, mock := newSQLMockDB(t)
	store := newMemStore()
	svc := NewExternalLoginService(db, &fakeRepoManager{store: store}, logging.Nop())
	id := external.Identity{Subject: "g-1", Email: "g@x.io", EmailVerified: true, Name: "Gee"}

	mock.ExpectBegin()
	mock.ExpectCommit()

	u, err := svc.SignIn(context.Background(), "Google", id)
	require.NoError(t, err)
	assert.Equal(t, "g@x.io", u.Email)
	assert.True(t, u.EmailConfirmed)
	assert.Empty(t, u.PasswordHash)
	assert.True(t, store.hasRole(u.ID, models.DefaultRole))
	assert.Equal(t, []models.Claim{{Type: models.ClaimName, Value: "Gee"}}, store.claims[u.ID])

	again, err := svc.SignIn(context.Background(), "Google", id)
	require.NoError(t, err)
	assert.Equal(t, u.ID, again.ID)
	assert.Len(t, store.users, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExternalLoginService_SignIn_WithoutName(t *testing.T) {
	db, mock := newSQLMockDB(t)
	store := newMemStore()
	svc := NewExternalLoginService(db, &fakeRepoManager{store: store}, logging.Nop())

	mock.ExpectBegin()
	mock.ExpectCommit()

	u, err := svc.SignIn(context.Background(), "Google", external.Identity{Email: "n@x.io", EmailVerified: true})
	require.NoError(t, err)
	assert.Empty(t, store.claims[u.ID])
	assert.Equal(t, 0, store.calls["Users.AddClaims"])
}

func TestExternalLoginService_SignIn_Refused(t *testing.T) {
	svc := NewExternalLoginService(nil, &fakeRepoManager{store: newMemStore()}, logging.Nop())

	for name, id := range map[string]external.Identity{
		"no email":   {Subject: "s", EmailVerified: true},
		"unverified": {Subject: "s", Email: "u@x.io"},
	} {
		t.Run(name, func(t *testing.T) {
			u, err := svc.SignIn(context.Background(), "Google", id)
			assert.ErrorIs(t, err, common.ErrAuthFailed)
			assert.Nil(t, u)
		})
	}
}

// racingUsers creates the account behind the caller's back before
// reporting the unique-key conflict the store would raise.
type racingUsers struct {
	memUsers
}

func (r *racingUsers) Create(ctx context.Context, u *models.User) (*models.User, error) {
	_, _ = r.memUsers.Create(ctx, &models.User{ID: "winner", UserName: u.UserName, Email: u.Email})
	return nil, common.ErrorAlreadyExists
}

type racingRepoManager struct {
	*fakeRepoManager
}

func (m *racingRepoManager) Users(dbx.DBTX) users.Repository {
	return &racingUsers{memUsers{m.store}}
}

func TestExternalLoginService_SignIn_RaceRereads(t *testing.T) {
	db, mock := newSQLMockDB(t)
	store := newMemStore()
	svc := NewExternalLoginService(db, &racingRepoManager{&fakeRepoManager{store: store}}, logging.Nop())

	mock.ExpectBegin()
	mock.ExpectRollback()

	u, err := svc.SignIn(context.Background(), "Google", external.Identity{Email: "r@x.io", EmailVerified: true})
	require.NoError(t, err)
	assert.Equal(t, "winner", u.ID)
	assert.Len(t, store.users, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExternalLoginService_SignIn_StoreFailure(t *testing.T) {
	store := newMemStore()
	boom := errors.New("db gone")
	store.failOn["Users.GetByEmail"] = boom
	svc := NewExternalLoginService(nil, &fakeRepoManager{store: store}, logging.Nop())

	_, err := svc.SignIn(context.Background(), "Google", external.Identity{Email: "a@x.io", EmailVerified: true})
	assert.ErrorIs(t, err, boom)
}
