package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Depado/ginprom"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pathfinder/app/api/routes"
	"github.com/pathfinder/docs"
	"github.com/pathfinder/pkg/cache"
	"github.com/pathfinder/pkg/config"
	"github.com/pathfinder/pkg/domains/auth"
	"github.com/pathfinder/pkg/domains/journal"
	"github.com/pathfinder/pkg/domains/media"
	"github.com/pathfinder/pkg/domains/mentor"
	"github.com/pathfinder/pkg/domains/story"
	"github.com/pathfinder/pkg/domains/user"
	"github.com/pathfinder/pkg/jobs"
	"github.com/pathfinder/pkg/middleware"
	"github.com/pathfinder/pkg/utils"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

// Dependencies are the external clients built at startup.
type Dependencies struct {
	DB        *gorm.DB
	Notifier  auth.Notifier
	Cache     cache.Cache
	Generator media.Generator
	Log       zerolog.Logger
}

type Server struct {
	config    config.Config
	engine    *gin.Engine
	auth      auth.Service
	scheduler *jobs.Scheduler
	log       zerolog.Logger
}

func New(cfg config.Config, deps Dependencies) (*Server, error) {
	switch cfg.App.Mode {
	case gin.ReleaseMode, gin.TestMode, gin.DebugMode:
		gin.SetMode(cfg.App.Mode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	utils.RegisterBindingValidators()

	log := deps.Log
	if deps.Generator == nil {
		deps.Generator = media.Disabled{}
	}

	app := gin.New()
	if err := app.SetTrustedProxies(cfg.App.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	docs.SwaggerInfo.Host = net.JoinHostPort(cfg.App.Host, cfg.App.Port)
	app.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	app.Use(gin.Recovery())
	app.Use(otelgin.Middleware(cfg.App.Name))
	app.Use(middleware.ClaimIp())
	app.Use(cors.New(corsConfig(cfg.Allows)))

	p := ginprom.New(
		ginprom.Engine(app),
		ginprom.Subsystem("gin"),
		ginprom.Path("/metrics"),
		ginprom.Ignore("/docs/*any"),
	)
	app.Use(p.Instrument())

	api := app.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Auth Routes
	auth_repo := auth.NewRepo(deps.DB)
	auth_service := auth.NewService(auth_repo, deps.Notifier, log, cfg.JWT)
	email_limiter := middleware.NewIPLimiter(cfg.Limits.AuthEmailRPS, cfg.Limits.AuthEmailBurst)
	routes.AuthRoutes(api.Group("/auth"), auth_service,
		middleware.RateLimit(email_limiter, log),
		middleware.CheckAuth(cfg.JWT.Secret),
		log)

	// User and Reputation Routes
	user_service := user.NewService(user.NewRepo(deps.DB), deps.Cache, cfg.Redis.ReputationTTL, log)
	routes.UserRoutes(api.Group("/users"), user_service, log)
	var reputation_guards []gin.HandlerFunc
	if cfg.App.AdminKey != "" {
		reputation_guards = append(reputation_guards, middleware.Admin(cfg.App.AdminKey))
	}
	routes.ReputationRoutes(api.Group("/reputation"), user_service, log, reputation_guards...)

	// Mentor Routes
	mentor_service := mentor.NewService(mentor.NewRepo(deps.DB))
	routes.MentorRoutes(api.Group("/mentors"), mentor_service, log)

	// Story and Journal Routes
	routes.StoryRoutes(api.Group("/stories"), story.NewService(story.NewRepo(deps.DB)), log)
	routes.JournalRoutes(api.Group("/journals"), journal.NewService(journal.NewRepo(deps.DB)), log)

	// Media Routes
	media_service := media.NewService(deps.Generator, cfg.Media, log)
	routes.MediaRoutes(api, media_service, log)

	scheduler := jobs.NewScheduler(auth_repo, log)
	if err := scheduler.ScheduleTokenCleanup(cfg.Jobs.TokenCleanupSchedule); err != nil {
		return nil, err
	}

	return &Server{
		config:    cfg,
		engine:    app,
		auth:      auth_service,
		scheduler: scheduler,
		log:       log,
	}, nil
}

func corsConfig(allows config.Allows) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With", "Origin", "Accept", middleware.RequestIDHeader, "admin_key"},
		AllowOrigins:     []string{"*"},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(allows.Methods) > 0 {
		c.AllowMethods = allows.Methods
	}
	if len(allows.Headers) > 0 {
		c.AllowHeaders = allows.Headers
	}
	if len(allows.Origins) > 0 {
		c.AllowOrigins = allows.Origins
	}
	return c
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is canceled, then drains in-flight requests,
// background jobs and pending verification emails.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort(s.config.App.Host, s.config.App.Port),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.scheduler.Start()
	defer s.scheduler.Stop()
	defer s.auth.Wait()

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", srv.Addr).Msg("server is running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func LaunchHttpServer(cfg config.Config, deps Dependencies) {
	deps.Log.Info().Msg("Starting HTTP Server...")

	s, err := New(cfg, deps)
	if err != nil {
		deps.Log.Fatal().Err(err).Msg("failed to build server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := s.Run(ctx); err != nil {
		deps.Log.Fatal().Err(err).Msg("server failed")
	}
}
