// Package server initializes and runs the melodia API server.
// It selects the storage backend, applies migrations, serves HTTP and
// handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/melodia/internal/logging"
	"github.com/dmitrijs2005/melodia/internal/server/config"
	"github.com/dmitrijs2005/melodia/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/melodia/internal/server/rest"
	"github.com/dmitrijs2005/melodia/internal/server/services"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	logCloser       io.Closer
	db              *sql.DB
	userService     *services.UserService
	favoriteService *services.FavoriteService
}

// openPostgres is a seam for tests.
var openPostgres = repomanager.OpenPostgres

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger, logCloser := logging.NewJSONLogger(logging.Options{
		Level:      c.LogLevel,
		File:       c.LogFile,
		MaxSizeMB:  100,
		MaxBackups: 3,
	})

	var (
		db *sql.DB
		rm repomanager.RepositoryManager
	)

	if c.DatabaseDSN == config.MemoryDSN {
		logger.Warn(ctx, "using in-memory storage, data will not survive a restart")
		rm = repomanager.NewMemoryRepositoryManager()
	} else {
		var err error
		db, err = openPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			_ = logCloser.Close()
			return nil, fmt.Errorf("db init error: %w", err)
		}
		rm = repomanager.NewPostgresRepositoryManager()
	}

	if c.RunMigrations {
		if err := rm.RunMigrations(ctx, db); err != nil {
			if db != nil {
				_ = db.Close()
			}
			_ = logCloser.Close()
			return nil, fmt.Errorf("migrations error: %w", err)
		}
	}

	us := services.NewUserService(db, rm, c)
	fs := services.NewFavoriteService(db, rm, c)

	return &App{
		config:          c,
		logger:          logger,
		logCloser:       logCloser,
		db:              db,
		userService:     us,
		favoriteService: fs,
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) error {

	s := rest.NewServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.favoriteService,
		app.config.ShutdownTimeout, app.config.ReadHeaderTimeout)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return err
	}
	return nil
}

// Run serves until ctx is cancelled or a termination signal arrives,
// then releases the database pool and the log file. It returns the HTTP
// server error, if any, e.g. when the address cannot be bound.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var (
		wg     sync.WaitGroup
		runErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.close(ctx)

	if runErr != nil {
		return fmt.Errorf("http server: %w", runErr)
	}
	return nil
}

func (app *App) close(ctx context.Context) {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "closing db", "error", err)
		}
	}
	app.logger.Info(ctx, "App stopped")
	_ = app.logCloser.Close()
}
