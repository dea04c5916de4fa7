package services

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/idgateway/internal/common"
	"github.com/dmitrijs2005/idgateway/internal/dbx"
	"github.com/dmitrijs2005/idgateway/internal/server/auth"
	"github.com/dmitrijs2005/idgateway/internal/server/models"
	"github.com/dmitrijs2005/idgateway/internal/server/repositories/clients"
	"github.com/dmitrijs2005/idgateway/internal/server/repositories/resources"
	"github.com/dmitrijs2005/idgateway/internal/server/repositories/roles"
	"github.com/dmitrijs2005/idgateway/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	auth.BcryptCost = bcrypt.MinCost
	os.Exit(m.Run())
}

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// memStore is an in-memory credential and configuration store. Every
// repository method can be made to fail through failOn.
type memStore struct {
	mu sync.Mutex

	users     map[string]*models.User
	userOrder []string
	roles     map[string]bool
	userRoles map[string]map[string]bool
	claims    map[string][]models.Claim

	clients           []models.Client
	identityResources []models.IdentityResource
	apiScopes         []models.APIScope
	apiResources      []models.APIResource

	nextID int
	failOn map[string]error
	calls  map[string]int
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[string]*models.User{},
		roles:     map[string]bool{},
		userRoles: map[string]map[string]bool{},
		claims:    map[string][]models.Claim{},
		failOn:    map[string]error{},
		calls:     map[string]int{},
	}
}

func (s *memStore) enter(op string) error {
	s.calls[op]++
	return s.failOn[op]
}

func (s *memStore) addUser(u models.User, roleNames ...string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := u
	s.users[cp.ID] = &cp
	s.userOrder = append(s.userOrder, cp.ID)
	s.userRoles[cp.ID] = map[string]bool{}
	for _, r := range roleNames {
		s.userRoles[cp.ID][r] = true
	}
	return &cp
}

func (s *memStore) userByEmail(email string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.userOrder {
		if s.users[id].Email == email {
			return s.users[id]
		}
	}
	return nil
}

func (s *memStore) hasRole(userID, role string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userRoles[userID][role]
}

// fakeRepoManager hands out memStore-backed repositories whatever DBTX it gets.
type fakeRepoManager struct {
	store      *memStore
	migrateErr func() error
	migrations int
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error {
	m.migrations++
	if m.migrateErr != nil {
		return m.migrateErr()
	}
	return nil
}
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository         { return &memUsers{m.store} }
func (m *fakeRepoManager) Roles(dbx.DBTX) roles.Repository         { return &memRoles{m.store} }
func (m *fakeRepoManager) Clients(dbx.DBTX) clients.Repository     { return &memClients{m.store} }
func (m *fakeRepoManager) Resources(dbx.DBTX) resources.Repository { return &memResources{m.store} }

type memUsers struct{ s *memStore }

func (r *memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("Users.Create"); err != nil {
		return nil, err
	}
	for _, id := range s.userOrder {
		if s.users[id].UserName == u.UserName || s.users[id].Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	if u.ID == "" {
		s.nextID++
		u.ID = fmt.Sprintf("user-%d", s.nextID)
	}
	cp := *u
	s.users[u.ID] = &cp
	s.userOrder = append(s.userOrder, u.ID)
	s.userRoles[u.ID] = map[string]bool{}
	return u, nil
}

func (r *memUsers) find(op string, match func(*models.User) bool) (*models.User, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(op); err != nil {
		return nil, err
	}
	for _, id := range s.userOrder {
		if match(s.users[id]) {
			cp := *s.users[id]
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	return r.find("Users.GetByID", func(u *models.User) bool { return u.ID == id })
}

func (r *memUsers) GetByUserName(_ context.Context, name string) (*models.User, error) {
	return r.find("Users.GetByUserName", func(u *models.User) bool { return u.UserName == name })
}

func (r *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find("Users.GetByEmail", func(u *models.User) bool { return u.Email == email })
}

func (r *memUsers) AddClaims(_ context.Context, userID string, claims []models.Claim) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("Users.AddClaims"); err != nil {
		return err
	}
	s.claims[userID] = append(s.claims[userID], claims...)
	return nil
}

func (r *memUsers) GetClaims(_ context.Context, userID string) ([]models.Claim, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("Users.GetClaims"); err != nil {
		return nil, err
	}
	return append([]models.Claim{}, s.claims[userID]...), nil
}

type memRoles struct{ s *memStore }

func (r *memRoles) EnsureRole(_ context.Context, name string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("Roles.EnsureRole"); err != nil {
		return err
	}
	s.roles[name] = true
	return nil
}

func (r *memRoles) AddUserToRole(_ context.Context, userID, role string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("Roles.AddUserToRole"); err != nil {
		return err
	}
	if s.userRoles[userID] == nil {
		s.userRoles[userID] = map[string]bool{}
	}
	s.userRoles[userID][role] = true
	return nil
}

func (r *memRoles) RemoveUserFromRole(_ context.Context, userID, role string) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("Roles.RemoveUserFromRole"); err != nil {
		return err
	}
	delete(s.userRoles[userID], role)
	return nil
}

func (r *memRoles) GetUserRoles(_ context.Context, userID string) ([]string, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("Roles.GetUserRoles"); err != nil {
		return nil, err
	}
	out := []string{}
	for _, name := range models.CanonicalRoles {
		if s.userRoles[userID][name] {
			out = append(out, name)
		}
	}
	return out, nil
}

type memClients struct{ s *memStore }

func (r *memClients) FindEnabledClientByID(_ context.Context, id string) (*models.Client, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("Clients.FindEnabledClientByID"); err != nil {
		return nil, err
	}
	for _, c := range s.clients {
		if c.ClientID == id && c.Enabled {
			cp := c
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *memClients) Count(context.Context) (int, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("Clients.Count"); err != nil {
		return 0, err
	}
	return len(s.clients), nil
}

func (r *memClients) Insert(_ context.Context, c *models.Client) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("Clients.Insert"); err != nil {
		return err
	}
	s.clients = append(s.clients, *c)
	return nil
}

func (r *memClients) DeleteAll(context.Context) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("Clients.DeleteAll"); err != nil {
		return err
	}
	s.clients = nil
	return nil
}

type memResources struct{ s *memStore }

func (r *memResources) op(name string, fn func()) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(name); err != nil {
		return err
	}
	fn()
	return nil
}

func (r *memResources) CountIdentityResources(context.Context) (int, error) {
	var n int
	err := r.op("Resources.CountIdentityResources", func() { n = len(r.s.identityResources) })
	return n, err
}

func (r *memResources) InsertIdentityResource(_ context.Context, res *models.IdentityResource) error {
	return r.op("Resources.InsertIdentityResource", func() { r.s.identityResources = append(r.s.identityResources, *res) })
}

func (r *memResources) DeleteAllIdentityResources(context.Context) error {
	return r.op("Resources.DeleteAllIdentityResources", func() { r.s.identityResources = nil })
}

func (r *memResources) CountAPIScopes(context.Context) (int, error) {
	var n int
	err := r.op("Resources.CountAPIScopes", func() { n = len(r.s.apiScopes) })
	return n, err
}

func (r *memResources) InsertAPIScope(_ context.Context, sc *models.APIScope) error {
	return r.op("Resources.InsertAPIScope", func() { r.s.apiScopes = append(r.s.apiScopes, *sc) })
}

func (r *memResources) DeleteAllAPIScopes(context.Context) error {
	return r.op("Resources.DeleteAllAPIScopes", func() { r.s.apiScopes = nil })
}

func (r *memResources) CountAPIResources(context.Context) (int, error) {
	var n int
	err := r.op("Resources.CountAPIResources", func() { n = len(r.s.apiResources) })
	return n, err
}

func (r *memResources) InsertAPIResource(_ context.Context, res *models.APIResource) error {
	return r.op("Resources.InsertAPIResource", func() { r.s.apiResources = append(r.s.apiResources, *res) })
}

func (r *memResources) DeleteAllAPIResources(context.Context) error {
	return r.op("Resources.DeleteAllAPIResources", func() { r.s.apiResources = nil })
}
