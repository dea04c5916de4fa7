package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/idgateway/internal/common"
	"github.com/dmitrijs2005/idgateway/internal/dbx"
	"github.com/dmitrijs2005/idgateway/internal/logging"
	"github.com/dmitrijs2005/idgateway/internal/server/auth"
	"github.com/dmitrijs2005/idgateway/internal/server/config"
	"github.com/dmitrijs2005/idgateway/internal/server/models"
	"github.com/dmitrijs2005/idgateway/internal/server/refdata"
	"github.com/dmitrijs2005/idgateway/internal/server/repositories/repomanager"
)

// Bootstrap account created on an empty store.
const (
	bootstrapUserName = "test"
	bootstrapEmail    = "test@local"
	bootstrapPassword = "Pass@word1"
)

var bootstrapClaims = []models.Claim{
	{Type: models.ClaimName, Value: "Test User"},
	{Type: models.ClaimGivenName, Value: "Test"},
	{Type: models.ClaimFamilyName, Value: "User"},
	{Type: models.ClaimWebSite, Value: "http://test.com"},
}

// RetryPolicy controls how Bootstrap reacts to a failed attempt. Disabled
// means a single attempt. Enabled retries forever, Delay apart, calling
// OnRetry before each wait.
type RetryPolicy struct {
	Enabled bool
	Delay   time.Duration
	OnRetry func(attempt int, err error)
}

// ReferenceDataLoader fetches the canonical reference data set. It is called
// inside each bootstrap attempt until it succeeds, so a source that is down
// at startup is retried with the rest of the sequence.
type ReferenceDataLoader func(ctx context.Context) (*models.ReferenceData, error)

// StaticReferenceData returns a loader for an already loaded set.
func StaticReferenceData(rd *models.ReferenceData) ReferenceDataLoader {
	return func(context.Context) (*models.ReferenceData, error) { return rd, nil }
}

// Bootstrap converges the store to the identity baseline and the canonical
// reference data before any listener starts.
type Bootstrap struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	loadData      ReferenceDataLoader
	referenceData *models.ReferenceData
	mode          string
	retry         RetryPolicy
	logger        logging.Logger
}

func NewBootstrap(db *sql.DB, m repomanager.RepositoryManager, load ReferenceDataLoader, mode string,
	retry RetryPolicy, logger logging.Logger) *Bootstrap {
	b := &Bootstrap{
		db:          db,
		repomanager: m,
		loadData:    load,
		mode:        mode,
		retry:       retry,
		logger:      logger.With("module", "bootstrap"),
	}
	if b.retry.OnRetry == nil {
		b.retry.OnRetry = func(attempt int, err error) {
			b.logger.Warn(context.Background(), "error migrating database", "attempt", attempt, "error", err)
		}
	}
	return b
}

// Run executes the whole sequence until it succeeds, the retry policy gives
// up, or ctx is cancelled. Invalid reference data is never retried.
func (b *Bootstrap) Run(ctx context.Context) error {
	for attempt := 1; ; attempt++ {
		err := b.attempt(ctx)
		if err == nil {
			b.logger.Info(ctx, "bootstrap finished", "attempts", attempt, "mode", b.mode)
			return nil
		}
		if !b.retry.Enabled || errors.Is(err, refdata.ErrInvalid) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		b.retry.OnRetry(attempt, err)

		t := time.NewTimer(b.retry.Delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}

func (b *Bootstrap) attempt(ctx context.Context) error {
	if err := b.repomanager.RunMigrations(ctx, b.db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	if err := b.convergeIdentity(ctx); err != nil {
		return err
	}
	return b.convergeReferenceData(ctx)
}

func (b *Bootstrap) convergeIdentity(ctx context.Context) error {
	roles := b.repomanager.Roles(b.db)
	for _, r := range models.CanonicalRoles {
		if err := roles.EnsureRole(ctx, r); err != nil {
			return fmt.Errorf("ensure role %s: %w", r, err)
		}
	}

	_, err := b.repomanager.Users(b.db).GetByUserName(ctx, bootstrapUserName)
	if err == nil {
		b.logger.Debug(ctx, "bootstrap account already exists", "username", bootstrapUserName)
		return nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("find bootstrap account: %w", err)
	}

	hash, err := auth.HashPassword(bootstrapPassword)
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}

	err = dbx.WithTx(ctx, b.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		users := b.repomanager.Users(tx)
		u, err := users.Create(ctx, &models.User{
			UserName:       bootstrapUserName,
			Email:          bootstrapEmail,
			EmailConfirmed: true,
			PasswordHash:   hash,
		})
		if err != nil {
			return err
		}
		return users.AddClaims(ctx, u.ID, bootstrapClaims)
	})
	if err != nil {
		return fmt.Errorf("create bootstrap account: %w", err)
	}

	b.logger.Debug(ctx, "bootstrap account created", "email", bootstrapEmail)
	return nil
}

func (b *Bootstrap) convergeReferenceData(ctx context.Context) error {
	if b.mode == config.ReferenceDataNone {
		return nil
	}
	if b.referenceData == nil {
		rd, err := b.loadData(ctx)
		if err != nil {
			return fmt.Errorf("load reference data: %w", err)
		}
		b.referenceData = rd
	}

	switch b.mode {
	case config.ReferenceDataReplace:
		return b.replaceReferenceData(ctx)
	case config.ReferenceDataAdditive:
		return b.addReferenceData(ctx)
	default:
		return fmt.Errorf("unknown reference data mode %q", b.mode)
	}
}

// replaceReferenceData rewrites every configuration kind in one transaction,
// so readers never see a partially converged set.
func (b *Bootstrap) replaceReferenceData(ctx context.Context) error {
	rd := b.referenceData
	err := dbx.WithTx(ctx, b.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		clients := b.repomanager.Clients(tx)
		resources := b.repomanager.Resources(tx)

		if err := clients.DeleteAll(ctx); err != nil {
			return err
		}
		if err := resources.DeleteAllIdentityResources(ctx); err != nil {
			return err
		}
		if err := resources.DeleteAllAPIScopes(ctx); err != nil {
			return err
		}
		if err := resources.DeleteAllAPIResources(ctx); err != nil {
			return err
		}

		if err := insertClients(ctx, clients, rd.Clients); err != nil {
			return err
		}
		if err := insertIdentityResources(ctx, resources, rd.IdentityResources); err != nil {
			return err
		}
		if err := insertAPIScopes(ctx, resources, rd.APIScopes); err != nil {
			return err
		}
		return insertAPIResources(ctx, resources, rd.APIResources)
	})
	if err != nil {
		return fmt.Errorf("replace reference data: %w", err)
	}
	return nil
}

// addReferenceData seeds each kind only while it has no rows at all.
func (b *Bootstrap) addReferenceData(ctx context.Context) error {
	rd := b.referenceData
	resources := b.repomanager.Resources(b.db)

	kinds := []struct {
		name   string
		count  func(context.Context) (int, error)
		insert func(ctx context.Context, tx dbx.DBTX) error
	}{
		{
			name:  "clients",
			count: b.repomanager.Clients(b.db).Count,
			insert: func(ctx context.Context, tx dbx.DBTX) error {
				return insertClients(ctx, b.repomanager.Clients(tx), rd.Clients)
			},
		},
		{
			name:  "identity resources",
			count: resources.CountIdentityResources,
			insert: func(ctx context.Context, tx dbx.DBTX) error {
				return insertIdentityResources(ctx, b.repomanager.Resources(tx), rd.IdentityResources)
			},
		},
		{
			name:  "api scopes",
			count: resources.CountAPIScopes,
			insert: func(ctx context.Context, tx dbx.DBTX) error {
				return insertAPIScopes(ctx, b.repomanager.Resources(tx), rd.APIScopes)
			},
		},
		{
			name:  "api resources",
			count: resources.CountAPIResources,
			insert: func(ctx context.Context, tx dbx.DBTX) error {
				return insertAPIResources(ctx, b.repomanager.Resources(tx), rd.APIResources)
			},
		},
	}

	for _, k := range kinds {
		n, err := k.count(ctx)
		if err != nil {
			return fmt.Errorf("count %s: %w", k.name, err)
		}
		if n > 0 {
			continue
		}
		if err := dbx.WithTx(ctx, b.db, nil, k.insert); err != nil {
			return fmt.Errorf("seed %s: %w", k.name, err)
		}
	}
	return nil
}

type clientInserter interface {
	Insert(ctx context.Context, c *models.Client) error
}

type resourceInserter interface {
	InsertIdentityResource(ctx context.Context, r *models.IdentityResource) error
	InsertAPIScope(ctx context.Context, s *models.APIScope) error
	InsertAPIResource(ctx context.Context, r *models.APIResource) error
}

func insertClients(ctx context.Context, repo clientInserter, items []models.Client) error {
	for i := range items {
		if err := repo.Insert(ctx, &items[i]); err != nil {
			return err
		}
	}
	return nil
}

func insertIdentityResources(ctx context.Context, repo resourceInserter, items []models.IdentityResource) error {
	for i := range items {
		if err := repo.InsertIdentityResource(ctx, &items[i]); err != nil {
			return err
		}
	}
	return nil
}

func insertAPIScopes(ctx context.Context, repo resourceInserter, items []models.APIScope) error {
	for i := range items {
		if err := repo.InsertAPIScope(ctx, &items[i]); err != nil {
			return err
		}
	}
	return nil
}

func insertAPIResources(ctx context.Context, repo resourceInserter, items []models.APIResource) error {
	for i := range items {
		if err := repo.InsertAPIResource(ctx, &items[i]); err != nil {
			return err
		}
	}
	return nil
}
