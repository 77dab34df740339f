package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"corona-stats/internal/cache"
	"corona-stats/internal/config"
	"corona-stats/internal/israel"
	"corona-stats/internal/messages"
	"corona-stats/internal/providers/coronaapi"
	"corona-stats/internal/providers/moh"
	"corona-stats/internal/worldwide"
	"corona-stats/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	_ "corona-stats/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router           *gin.Engine
	logger           *slog.Logger
	cfg              *config.Config
	worldwideService worldwide.Service
	israelService    israel.Service
	messages         *messages.Catalog
	cacheBackend     string
}

// NewApp creates a new application wired to the real upstream APIs
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, backend := newStore(cfg, logger)

	worldwideSvc, err := worldwide.NewWorldwideService(
		coronaapi.NewClient(cfg.Upstream.WorldwideURL, cfg.Upstream.Timeout, logger),
		logger,
	)
	if err != nil {
		return nil, err
	}

	israelSvc := israel.NewIsraelService(
		moh.NewClient(cfg.Upstream.MohURL, cfg.Upstream.Timeout, logger),
		store,
		cfg.Cache.TTL,
		logger,
	)

	app, err := NewAppWithServices(cfg, logger, worldwideSvc, israelSvc)
	if err != nil {
		return nil, err
	}
	app.cacheBackend = backend
	return app, nil
}

// NewAppWithServices creates an application with custom services.
// This is useful for testing with mock services.
func NewAppWithServices(
	cfg *config.Config,
	logger *slog.Logger,
	worldwideSvc worldwide.Service,
	israelSvc israel.Service,
) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	catalog, err := messages.New(cfg.App.Locale)
	if err != nil {
		return nil, err
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	if len(cfg.Server.CorsOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: cfg.Server.CorsOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodHead},
			AllowHeaders: []string{"Origin", "Accept", "Accept-Language", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}

	app := &App{
		router:           router,
		logger:           logger,
		cfg:              cfg,
		worldwideService: worldwideSvc,
		israelService:    israelSvc,
		messages:         catalog,
		cacheBackend:     "memory",
	}

	// Register routes
	if err := app.registerRoutes(); err != nil {
		return nil, err
	}

	logger.Info("application initialized", "locale", cfg.App.Locale)

	return app, nil
}

// newStore picks Redis when configured and reachable, process memory otherwise.
func newStore(cfg *config.Config, logger *slog.Logger) (cache.Store, string) {
	if cfg.Cache.Redis.Addr == "" {
		return cache.NewMemoryStore(), "memory"
	}

	client, err := cache.DialRedis(context.Background(), cfg.Cache.Redis.Addr, cfg.Cache.Redis.Password, cfg.Cache.Redis.DB)
	if err != nil {
		logger.Warn("redis unavailable, caching in memory",
			"addr", cfg.Cache.Redis.Addr,
			"error", err,
		)
		return cache.NewMemoryStore(), "memory"
	}

	logger.Info("caching datasets in redis", "addr", cfg.Cache.Redis.Addr)
	return cache.NewRedisStore(client), "redis"
}

// Run starts the HTTP server and shuts it down when ctx is cancelled
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
