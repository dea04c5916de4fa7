package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrijs2005/idgateway/internal/client/client"
	"github.com/dmitrijs2005/idgateway/internal/client/config"
	"github.com/dmitrijs2005/idgateway/internal/logging"
)

type App struct {
	config    *config.Config
	admin     client.Admin
	registrar client.Registrar
	reader    *bufio.Reader
	out       io.Writer
	logger    logging.Logger
}

func NewApp(c *config.Config) (*App, error) {
	admin, err := client.NewGRPCClient(c.GRPCAddr, c.CallerName, c.ServiceTokenSecret)
	if err != nil {
		return nil, err
	}

	return &App{
		config:    c,
		admin:     admin,
		registrar: client.NewHTTPClient(c.HTTPBaseURL, nil),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		logger:    logging.NewJSONLogger(os.Stderr, slog.LevelWarn).With("module", "cli"),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.admin.Close(); err != nil {
			a.logger.Warn(ctx, "close client", "error", err)
		}
	}()
	a.Root(ctx)
}

// callCtx bounds a single remote call by the configured timeout.
func (a *App) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := a.config.RequestTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}
