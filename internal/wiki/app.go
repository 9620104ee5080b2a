// Package wiki initializes and runs the wiki service: storage and
// migrations (including the author-column upgrade), the remote token
// verifier, article and catalog services, and the HTTP endpoint, with
// graceful shutdown on OS signals.
package wiki

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/AaronBlvde/wiki-platform/internal/dbconn"
	"github.com/AaronBlvde/wiki-platform/internal/logging"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/authz"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/config"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/httpapi"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/identity"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/metrics"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/repositories/repomanager"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/services"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	resolver *identity.Verifier
	pages    *services.PageService
	catalogs *services.CatalogService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, driver, err := dbconn.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewSQLRepositoryManager(driver)
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	resolver := identity.NewVerifier(
		cfg.IdentityAddr, cfg.VerifyTimeout, cfg.VerifyMaxAttempts, cfg.VerifyRetryDelay, logger)

	policy := authz.Policy{RestrictEditsToAuthor: cfg.RestrictEditsToAuthor}

	return &App{
		config:   cfg,
		logger:   logger,
		resolver: resolver,
		pages:    services.NewPageService(db, rm, policy),
		catalogs: services.NewCatalogService(db, rm),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// startUpGauge keeps the liveness gauge at 1 while the service runs.
func (app *App) startUpGauge(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	metrics.Up.Set(1)
	for {
		select {
		case <-ticker.C:
			metrics.Up.Set(1)
		case <-ctx.Done():
			metrics.Up.Set(0)
			return
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting wiki service...")

	app.initSignalHandler(cancelFunc)

	go app.startUpGauge(ctx)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		s := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.resolver, app.pages, app.catalogs)
		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()
}
