package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/aisb-selection/aisb/internal/auth"
	"github.com/aisb-selection/aisb/internal/database"
	"github.com/aisb-selection/aisb/internal/handlers"
	"github.com/aisb-selection/aisb/internal/middleware"
	"github.com/aisb-selection/aisb/internal/navigation"
)

var serveOpts struct {
	staticDir string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	rootCmd.PersistentFlags().StringVar(&serveOpts.staticDir, "static", "static",
		"Directory served under /static/")
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	if err := navigation.Validate(navigation.AdminGroups()); err != nil {
		return fmt.Errorf("invalid admin navigation: %w", err)
	}

	ctx := cmd.Context()

	// Database (optional)
	var db *database.DB
	var accounts auth.AccountStore
	if cfg.HasDatabase() {
		var err error
		db, err = database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		accounts = database.NewAccounts(db)
	} else if cfg.AdminEmail != "" {
		accounts = auth.NewStaticAccounts(auth.Account{
			Email:        cfg.AdminEmail,
			Name:         cfg.AdminName,
			PasswordHash: cfg.AdminPasswordHash,
		})
	} else {
		logger.Warn("no admin accounts configured; password sign-in is disabled")
	}

	// Session store
	sessions := auth.NewSessionStore(
		cfg.SessionSecret,
		cfg.SessionMaxAge,
		cfg.IsProduction(),
	)

	// GitHub OAuth (optional)
	var github *auth.GitHubOAuth
	if cfg.GitHubEnabled() {
		github = auth.NewGitHubOAuth(
			cfg.GitHubClientID,
			cfg.GitHubClientSecret,
			cfg.GitHubCallbackURL,
			cfg.GitHubAdminLogins,
		)
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry, "aisb")

	h := handlers.New(cfg, sessions, auth.NewAuthenticator(accounts), github, metrics, logger)

	// Router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(metrics.Handler)
	r.Use(middleware.Session(sessions))

	// Static files
	fileServer := http.FileServer(http.Dir(serveOpts.staticDir))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.Health(r.Context()); err != nil {
				http.Error(w, "unhealthy", http.StatusServiceUnavailable)
				return
			}
		}
		w.Write([]byte("ok"))
	})

	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	h.Mount(r)

	// Server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"port", cfg.Port,
			"environment", cfg.Environment,
			"database", cfg.HasDatabase(),
			"github", github != nil,
		)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-shutdown:
	}
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
