package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apihttp "github.com/thekoushikdurgas/durgasos/backend/internal/api/http"
	"github.com/thekoushikdurgas/durgasos/backend/internal/api/middleware"
	"github.com/thekoushikdurgas/durgasos/backend/internal/api/ws"
	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/desktop"
	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/geometry"
	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/registry"
	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/session"
	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/shell"
	"github.com/thekoushikdurgas/durgasos/backend/internal/domain/window"
	"github.com/thekoushikdurgas/durgasos/backend/internal/infrastructure/config"
	"github.com/thekoushikdurgas/durgasos/backend/internal/infrastructure/logging"
	"github.com/thekoushikdurgas/durgasos/backend/internal/infrastructure/monitoring"
	"github.com/thekoushikdurgas/durgasos/backend/internal/infrastructure/tracing"
	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	http    *http.Server
	shell   *shell.Shell
	hub     *session.Hub
	tracer  *tracing.Tracer
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	logger := logging.FromSettings(cfg.Logging.Level, cfg.Logging.Development)

	logger.Info("Initializing window manager",
		zap.String("port", cfg.Server.Port),
		zap.String("catalogue_dir", cfg.Catalogue.Dir),
	)

	// Metrics first (needed by other components)
	metrics := monitoring.NewMetrics()
	tracer := tracing.New("wm", logger.Component("trace"))

	catalogue, err := buildCatalogue(cfg.Catalogue, logger)
	if err != nil {
		tracer.Close()
		return nil, err
	}
	catalogue.WithMetrics(metrics)

	windows := window.NewManager(windowConfig(cfg.Window)).
		WithLogger(logger.Component("window")).
		WithMetrics(metrics)
	desktops := desktop.NewManager().
		WithLogger(logger.Component("desktop")).
		WithMetrics(metrics)

	sh := shell.New(windows, desktops, catalogue, shell.Config{
		Viewport:      defaultViewport(cfg.Window),
		SnapThreshold: cfg.Window.SnapThreshold,
	}).WithLogger(logger.Component("shell")).WithMetrics(metrics)

	hub := session.NewHub(sh, logger.Component("session"), metrics)

	s := &Server{
		shell:   sh,
		hub:     hub,
		tracer:  tracer,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}
	s.router = s.buildRouter()
	s.http = &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Server initialized successfully",
		zap.Int("apps", catalogue.Stats().TotalApps),
	)
	return s, nil
}

func (s *Server) buildRouter() *gin.Engine {
	cfg := s.config
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(s.tracer))
	router.Use(monitoring.Middleware(s.metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		s.logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		limits := middleware.DefaultRateLimitConfig()
		limits.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		limits.Burst = cfg.RateLimit.Burst
		router.Use(middleware.RateLimit(limits))
	}

	handlers := apihttp.NewHandlers(s.shell, s.hub, s.metrics, s.logger.Component("http"))
	handlers.Register(router)

	wsHandler := ws.NewHandler(s.hub, s.logger.Component("ws"), s.metrics)
	router.GET("/stream", wsHandler.HandleConnection)
	router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	return router
}

// buildCatalogue registers the built-in apps and seeds definitions from disk
func buildCatalogue(cfg config.CatalogueConfig, logger *logging.Logger) (*registry.Manager, error) {
	catalogue := registry.NewManager()
	if cfg.Builtins {
		for _, app := range registry.Builtins() {
			if err := catalogue.Register(app); err != nil {
				return nil, fmt.Errorf("failed to register built-in app %s: %w", app.ID, err)
			}
		}
	}

	if cfg.Dir == "" {
		return catalogue, nil
	}
	seeder := registry.NewSeeder(catalogue, cfg.Dir, cfg.Pattern, logger.Component("registry"))
	res, err := seeder.SeedApps()
	if err != nil {
		logger.Warn("Failed to seed app catalogue", zap.Error(err))
		return catalogue, nil
	}
	logger.Info("App catalogue seeded",
		zap.Int("files", res.Files),
		zap.Int("loaded", res.Loaded),
		zap.Int("failed", res.Failed),
	)
	return catalogue, nil
}

func windowConfig(cfg config.WindowConfig) window.Config {
	wc := window.DefaultConfig()
	if cfg.MinWidth > 0 && cfg.MinHeight > 0 {
		wc.MinSize = types.WindowSize{Width: cfg.MinWidth, Height: cfg.MinHeight}
		wc.DefaultSize = wc.MinSize
	}
	wc.Cascade = geometry.CascadeConfig{
		OriginX: cfg.CascadeOriginX,
		OriginY: cfg.CascadeOriginY,
		Step:    cfg.CascadeStep,
		WrapX:   cfg.CascadeWrapX,
		WrapY:   cfg.CascadeWrapY,
	}
	if cfg.AnimationDuration >= 0 {
		wc.AnimationDuration = cfg.AnimationDuration
	}
	return wc
}

func defaultViewport(cfg config.WindowConfig) types.Viewport {
	return types.Viewport{
		Width:         cfg.ViewportWidth,
		Height:        cfg.ViewportHeight,
		TaskbarHeight: cfg.TaskbarHeight,
	}
}

// Router exposes the handler tree
func (s *Server) Router() http.Handler {
	return s.router
}

// Shell returns the window manager the server drives
func (s *Server) Shell() *shell.Shell {
	return s.shell
}

// Run starts the HTTP server and blocks until it stops
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Close gracefully shuts down the server
func (s *Server) Close(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	// Drop sessions first so their gestures release capture
	s.hub.Close()

	err := s.http.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Failed to shut down HTTP server", zap.Error(err))
		err = fmt.Errorf("failed to shut down http server: %w", err)
	}

	s.tracer.Close()
	_ = s.logger.Sync()
	return err
}
