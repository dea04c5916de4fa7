// Package server wires the gateway together: it opens the stores, runs the
// bootstrap sequencer, then serves the internal gRPC API and the login HTTP
// API until a termination signal arrives.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/idgateway/internal/logging"
	"github.com/dmitrijs2005/idgateway/internal/server/config"
	"github.com/dmitrijs2005/idgateway/internal/server/external"
	"github.com/dmitrijs2005/idgateway/internal/server/interaction"
	"github.com/dmitrijs2005/idgateway/internal/server/models"
	"github.com/dmitrijs2005/idgateway/internal/server/refdata"
	"github.com/dmitrijs2005/idgateway/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/idgateway/internal/server/services"
	"github.com/dmitrijs2005/idgateway/internal/telemetry"
	_ "github.com/jackc/pgx/v5/stdlib"

	gs "github.com/dmitrijs2005/idgateway/internal/server/grpc"
	hs "github.com/dmitrijs2005/idgateway/internal/server/http"
)

const serviceName = "idgateway"

// newGoogle is replaced in tests; discovery needs the network.
var newGoogle = func(ctx context.Context, cfg external.GoogleConfig) (external.Provider, error) {
	return external.NewGoogle(ctx, cfg)
}

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	interactions *interaction.Store
	registry     *external.Registry

	bootstrap    *services.Bootstrap
	login        *services.LoginResolver
	profile      *services.ProfileService
	membership   *services.MembershipService
	registration *services.RegistrationService
	externals    *services.ExternalLoginService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	registry := external.NewRegistry()
	if c.GoogleClientID != "" {
		g, err := newGoogle(ctx, external.GoogleConfig{
			ClientID:     c.GoogleClientID,
			ClientSecret: c.GoogleClientSecret,
			RedirectURL:  c.GoogleRedirectURL,
		})
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("google provider: %w", err)
		}
		if err := registry.Use(external.GoogleScheme, "Google", g); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	rdb := interaction.NewRedisClient(interaction.RedisConfig{
		Addr:     c.RedisAddr,
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	})
	interactions := interaction.NewStore(rdb, c.PendingRequestTTL)

	m := repomanager.NewPostgresRepositoryManager()

	app := &App{
		config:       c,
		logger:       logger,
		db:           db,
		interactions: interactions,
		registry:     registry,
	}

	app.bootstrap = services.NewBootstrap(db, m, app.loadReferenceData, c.ReferenceDataMode, services.RetryPolicy{
		Enabled: c.RetryMigrations,
		Delay:   c.RetryDelay,
	}, logger)
	app.login = services.NewLoginResolver(db, m, interactions, registry, services.LoginPolicy{
		AllowLocalLogin:    c.AllowLocalLogin,
		AllowRememberLogin: c.AllowRememberLogin,
	}, logger)
	app.profile = services.NewProfileService(db, m, logger)
	app.membership = services.NewMembershipService(db, m, logger)
	app.registration = services.NewRegistrationService(db, m, services.PasswordPolicy{
		MinLength:              c.PasswordMinLength,
		RequireDigit:           c.PasswordRequireDigit,
		RequireUppercase:       c.PasswordRequireUppercase,
		RequireNonAlphanumeric: c.PasswordRequireNonAlphanumeric,
	}, logger)
	app.externals = services.NewExternalLoginService(db, m, logger)

	return app, nil
}

// loadReferenceData reads the configured reference data source. Bootstrap
// calls it inside each attempt so an unreachable S3 endpoint is retried.
func (app *App) loadReferenceData(ctx context.Context) (*models.ReferenceData, error) {
	c := app.config
	return refdata.Load(ctx, c.ReferenceDataSource, refdata.S3Options{
		Region:       c.S3Region,
		AccessKey:    c.S3RootUser,
		SecretKey:    c.S3RootPassword,
		BaseEndpoint: c.S3BaseEndpoint,
	})
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) grpcServer() *gs.GRPCServer {
	return gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.membership, app.profile, app.config.ServiceTokenSecret)
}

func (app *App) httpServer() *hs.Server {
	return hs.NewServer(app.config.EndpointAddrHTTP, hs.Deps{
		Login:        app.login,
		Registration: app.registration,
		External:     app.externals,
		Providers:    app.registry,
		Interactions: app.interactions,
		Health: map[string]hs.HealthCheck{
			"database": app.db.PingContext,
			"redis":    app.interactions.Ping,
		},
	}, hs.SessionConfig{
		Secret: []byte(app.config.SessionSecret),
		TTL:    app.config.SessionTTL,
	}, app.logger)
}

// Run blocks until ctx is cancelled or a termination signal arrives. It
// returns the bootstrap error, or the first listener error.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	shutdown, err := telemetry.Setup(ctx, serviceName, app.config.OTLPEndpoint)
	if err != nil {
		app.logger.Warn(ctx, "tracing disabled", "error", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			app.logger.Warn(ctx, "tracer shutdown", "error", err)
		}
	}()

	defer app.close(ctx)

	if err := app.bootstrap.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("bootstrap: %w", err)
	}

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		app.logger.Error(ctx, err.Error())
		errOnce.Do(func() { firstErr = err })
		cancelFunc()
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := app.grpcServer().Run(ctx); err != nil {
			fail(fmt.Errorf("grpc server: %w", err))
		}
	}()
	go func() {
		defer wg.Done()
		if err := app.httpServer().Run(ctx); err != nil {
			fail(fmt.Errorf("http server: %w", err))
		}
	}()

	wg.Wait()
	app.logger.Info(context.Background(), "App stopped")
	return firstErr
}

func (app *App) close(ctx context.Context) {
	if err := app.interactions.Close(); err != nil {
		app.logger.Warn(ctx, "close interaction store", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Warn(ctx, "close database", "error", err)
	}
}
