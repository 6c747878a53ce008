// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/clubhq/membership/internal/admin"
	"github.com/clubhq/membership/internal/ajax"
	appConfig "github.com/clubhq/membership/internal/config"
	"github.com/clubhq/membership/internal/database"
	"github.com/clubhq/membership/internal/database/migrate"
	"github.com/clubhq/membership/internal/health"
	memberRouter "github.com/clubhq/membership/internal/member/router"
	"github.com/clubhq/membership/internal/middleware"
	"github.com/clubhq/membership/internal/render"
	teamRouter "github.com/clubhq/membership/internal/team/router"
	tmRouter "github.com/clubhq/membership/internal/teammember/router"
	"github.com/clubhq/membership/pkg/logger"
)

func main() {
	// A local .env is a development convenience; absence is fine.
	_ = godotenv.Load()

	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx)
	if err != nil {
		zapLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			zapLogger.Warnw("error closing database", "error", err)
		}
	}()

	if err := migrate.Up(db); err != nil {
		zapLogger.Fatalw("failed to run migrations", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()

	r.Use(middleware.StaticCache("/static", cfg.IsProduction()))
	r.Use(middleware.Logger(zapLogger))
	r.Use(middleware.Recovery(zapLogger, cfg.IsProduction()))
	r.Use(middleware.SecureHeaders(cfg.Security))
	r.Use(middleware.ForceSSL(cfg.Security))

	r.Static("/static", "web/static")
	r.LoadHTMLGlob("web/templates/*.html")

	api := r.Group("/api")
	memberRouter.RegisterRoutes(api, db, zapLogger, cfg.Auth.Secret)
	teamRouter.RegisterRoutes(api, db, zapLogger, cfg.Auth.Secret)
	tmRouter.RegisterRoutes(api, db, zapLogger, cfg.Auth.Secret)

	admin.RegisterRoutes(r, db, zapLogger)
	ajax.RegisterRoutes(r, cfg.Security, zapLogger)

	healthHandler := health.New(db, zapLogger)
	r.GET("/health", healthHandler.Check)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/admin")
	})

	r.NoRoute(func(c *gin.Context) {
		render.NotFound(c, "resource not found")
	})

	server := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zapLogger.Infow("server starting", "address", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	zapLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Errorw("graceful shutdown failed", "error", err)
	}
}
