// Package server initializes and runs the main application server.
// It configures storage, wires the authentication service, and starts the
// HTTP server with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/loginbox/loginbox/internal/logging"
	"github.com/loginbox/loginbox/internal/server/accounts"
	"github.com/loginbox/loginbox/internal/server/config"
	"github.com/loginbox/loginbox/internal/server/hashing"
	"github.com/loginbox/loginbox/internal/server/httpapi"
	"github.com/loginbox/loginbox/internal/server/sessions"
	"github.com/loginbox/loginbox/internal/server/shared/db"
)

// janitorInterval is how often expired sessions are swept from the store.
const janitorInterval = 5 * time.Minute

type App struct {
	config     *config.Config
	logger     logging.Logger
	sessions   *sessions.Manager
	httpServer *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	m, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	sessionManager := sessions.NewManager(sessions.NewMemoryStore(), cfg.SessionValidityDuration)
	service := accounts.NewService(m.Accounts(), hashing.NewBcryptHasher(), sessionManager)
	httpServer := httpapi.NewServer(cfg, logger, service)

	return &App{
		config:     cfg,
		logger:     logger,
		sessions:   sessionManager,
		httpServer: httpServer,
	}, nil
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	go app.sessions.Janitor(ctx, janitorInterval)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
