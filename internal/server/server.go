// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/urfave/cli/v3"

	"goaltracker/internal/config"
	"goaltracker/internal/database"
	"goaltracker/internal/handlers"
	"goaltracker/internal/i18n"
	"goaltracker/internal/repository"
	"goaltracker/internal/services/authgate"
	"goaltracker/internal/services/email"
	"goaltracker/internal/services/session"
)

// Run starts the server with the given CLI command.
func Run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.NewFromCLI(cmd)
	setupLogger(cfg.Log.Level, cfg.Log.Format)

	slog.Info("starting server",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"base_url", cfg.Server.BaseURL,
	)

	// Database
	db, err := database.Open(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("failed to close database", "error", closeErr)
		}
	}()

	// i18n
	if initErr := i18n.Init(); initErr != nil {
		return fmt.Errorf("failed to init i18n: %w", initErr)
	}

	// Repository and services
	repo := repository.New(db)
	gate := authgate.NewService(repo, time.Duration(cfg.Auth.ResetCodeTTL)*time.Minute)

	secure := strings.HasPrefix(cfg.Server.BaseURL, "https://")
	sessions, err := session.NewManager(&cfg.Session, secure)
	if err != nil {
		return fmt.Errorf("failed to create session manager: %w", err)
	}

	// Reset codes go out by mail only when SMTP is configured. Without it
	// the reset endpoint hands the code back in the response instead.
	var mailer *email.Service
	if cfg.SMTP.Host != "" {
		mailer, err = email.NewService(&cfg.SMTP)
		if err != nil {
			return fmt.Errorf("failed to create email service: %w", err)
		}
	} else {
		slog.Warn("SMTP not configured, reset codes are returned in the API response")
	}

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	setupMiddleware(e, cfg)

	// Routes
	setupRoutes(e, repo, gate, sessions, mailer)

	// Start server
	return startWithGracefulShutdown(e, cfg)
}

func setupRoutes(
	e *echo.Echo,
	repo *repository.Repository,
	gate *authgate.Service,
	sessions *session.Manager,
	mailer *email.Service,
) {
	h := handlers.New(repo)
	ah := handlers.NewAuth(gate, sessions, mailer)

	// App shell and static files
	e.Static("/static", "static")
	e.File("/", "static/index.html")
	e.File("/manifest.webmanifest", "static/manifest.webmanifest")

	e.GET("/health", h.Health)

	// Auth endpoints stay outside the protected group
	e.GET("/api/auth/state", ah.State)
	e.POST("/api/auth/signup", ah.Signup)
	e.POST("/api/auth/login", ah.Login)
	e.POST("/api/auth/logout", ah.Logout)
	e.POST("/api/auth/reset/request", ah.RequestReset)
	e.POST("/api/auth/reset/confirm", ah.ConfirmReset)

	// Everything below requires a valid session
	api := e.Group("/api", requireAuth(sessions, repo))

	api.GET("/goals", h.ListGoals)
	api.POST("/goals", h.CreateGoal)
	api.GET("/goals/:id", h.GetGoal)
	api.PUT("/goals/:id", h.UpdateGoal)
	api.DELETE("/goals/:id", h.DeleteGoal)

	api.GET("/todos", h.ListTodos)
	api.POST("/todos", h.CreateTodo)
	api.PUT("/todos/:id", h.UpdateTodo)
	api.DELETE("/todos/:id", h.DeleteTodo)

	api.GET("/projects", h.ListProjects)
	api.POST("/projects", h.CreateProject)
	api.GET("/projects/:id", h.GetProject)
	api.PUT("/projects/:id", h.UpdateProject)
	api.DELETE("/projects/:id", h.DeleteProject)
	api.POST("/projects/:id/tasks", h.CreateTask)
	api.PUT("/projects/:id/tasks/:taskID", h.UpdateTask)
	api.DELETE("/projects/:id/tasks/:taskID", h.DeleteTask)

	api.GET("/courses", h.ListCourses)
	api.POST("/courses", h.CreateCourse)
	api.PUT("/courses/:id", h.UpdateCourse)
	api.DELETE("/courses/:id", h.DeleteCourse)

	api.GET("/study-sessions", h.ListSessions)
	api.POST("/study-sessions", h.CreateSession)
	api.PUT("/study-sessions/:id", h.UpdateSession)
	api.DELETE("/study-sessions/:id", h.DeleteSession)
	api.POST("/study-sessions/:id/topics", h.CreateTopic)
	api.PUT("/study-sessions/:id/topics/:topicID", h.ToggleTopic)
	api.DELETE("/study-sessions/:id/topics/:topicID", h.DeleteTopic)

	api.GET("/milestones", h.ListMilestones)
}

func startWithGracefulShutdown(e *echo.Echo, cfg *config.Config) error {
	tlsResult, err := SetupTLS(cfg)
	if err != nil {
		return fmt.Errorf("TLS setup failed: %w", err)
	}

	errChan := make(chan error, 1)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	switch tlsResult.Mode {
	case TLSModeOff:
		go func() {
			slog.Info("Server running", "url", cfg.Server.BaseURL)
			if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- err
			}
		}()

	case TLSModeSelfSigned, TLSModeManual:
		go func() {
			slog.Info("Server running", "url", cfg.Server.BaseURL)
			if err := startTLSServer(e, addr, tlsResult.TLSConfig); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- err
			}
		}()
	}

	// Wait for interrupt signal or error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		slog.Info("shutting down server")
	case err := <-errChan:
		slog.Error("server error", "error", err)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown server", "error", err)
	}

	slog.Info("server stopped")
	return nil
}

// startTLSServer starts the Echo server with a custom TLS configuration.
func startTLSServer(e *echo.Echo, addr string, tlsConfig *tls.Config) error {
	lc := &net.ListenConfig{}
	ln, err := lc.Listen(context.Background(), "tcp", addr)
	if err != nil {
		return err
	}
	e.TLSListener = tls.NewListener(ln, tlsConfig)
	e.TLSServer.TLSConfig = tlsConfig
	return e.Server.Serve(e.TLSListener)
}
