package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/beheryahmed1991/subscription-tracker/docs"
	"github.com/beheryahmed1991/subscription-tracker/internal/category"
	"github.com/beheryahmed1991/subscription-tracker/internal/config"
	"github.com/beheryahmed1991/subscription-tracker/internal/db"
	"github.com/beheryahmed1991/subscription-tracker/internal/exchange"
	"github.com/beheryahmed1991/subscription-tracker/internal/logger"
	"github.com/beheryahmed1991/subscription-tracker/internal/middleware"
	"github.com/beheryahmed1991/subscription-tracker/internal/migrate"
	"github.com/beheryahmed1991/subscription-tracker/internal/seed"
	"github.com/beheryahmed1991/subscription-tracker/internal/stats"
	"github.com/beheryahmed1991/subscription-tracker/internal/subscription"
	"github.com/beheryahmed1991/subscription-tracker/internal/user"
	"github.com/beheryahmed1991/subscription-tracker/internal/validation"
)

// @title Subscription Tracker
// @version 1.0
// @description REST API for tracking subscriptions and what they cost per period
// @host localhost:8080
func main() {
	_ = godotenv.Load("../.env", ".env")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level)
	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.New(ctx, db.Config{
		URL:             cfg.DB.DSN(),
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
		ConnectAttempts: cfg.DB.ConnectAttempts,
		RetryDelay:      cfg.DB.RetryDelay,
	}, log)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer database.Close()

	if err := migrate.Up(ctx, database, log); err != nil {
		return err
	}
	if err := validation.Register(); err != nil {
		return err
	}

	demo, err := user.NewRepository(database).EnsureDemo(ctx, cfg.Demo.Username, cfg.Demo.DefaultCurrency)
	if err != nil {
		return err
	}
	log.Info("running as demo user", "user", demo.Username, "currency", demo.DefaultCurrency)

	fixture, err := seed.Defaults()
	if err != nil {
		return err
	}

	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(log))

	api := router.Group("/api", middleware.Identity(demo))
	api.GET("/health", health(database))

	categories := category.NewRepository(database)
	rates := exchange.NewRepository(database)
	subs := subscription.NewService(subscription.NewRepository(database), time.Now)

	subscription.NewHandler(subs, log).RegisterRoutes(api)
	exchange.NewHandler(rates, log).RegisterRoutes(api)
	stats.NewHandler(stats.NewService(subs, rates, categories), log).RegisterRoutes(api)
	seed.NewHandler(seed.NewSeeder(fixture, seed.NewSQLTransactor(database, time.Now)), log).RegisterRoutes(api)

	docs.SwaggerInfo.Host = cfg.Swagger.Host
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", srv.Addr, "env", cfg.App.Env)
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

	log.Info("shutting down", "timeout", cfg.App.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// @Summary Liveness and database check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func health(database *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(c.Request.Context(), database); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
