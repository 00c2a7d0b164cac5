package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "assessoria_licitacoes/docs"
	"assessoria_licitacoes/internal/adapter/http/middleware"
	"assessoria_licitacoes/internal/adapter/http/routes"
	"assessoria_licitacoes/internal/domain/entities"
	"assessoria_licitacoes/internal/infrastructure/config"
	"assessoria_licitacoes/pkg/logger"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
)

// @title           Licitações Dispute API
// @version         1.0
// @description     Dispute room (sala de disputa), proposal items, homologation and advisory-fee debits.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	// "api token -id <id> -name <name>" issues an operator token signed with JWT_SECRET.
	if len(os.Args) > 1 && os.Args[1] == "token" {
		if err := issueToken(cfg, os.Args[2:]); err != nil {
			slog.Error("failed to issue token", "error", err)
			os.Exit(1)
		}
		return
	}

	ctx := context.Background()
	h, stores, err := routes.Build(ctx, cfg)
	if err != nil {
		slog.Error("failed to wire application", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := stores.Close(); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()

	gin.SetMode(gin.ReleaseMode)
	router := routes.NewRouter(cfg, h)

	// no WriteTimeout: the elapsed-time stream stays open for the whole dispute
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Server.Port, "store", cfg.Store.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		return
	}
	slog.Info("server exited gracefully")
}

func issueToken(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	id := fs.String("id", "", "operator id (token subject)")
	name := fs.String("name", "", "operator display name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("-id is required")
	}

	token, expires, err := middleware.GenerateToken(entities.Operator{ID: *id, DisplayName: *name}, cfg.Auth, time.Now())
	if err != nil {
		return err
	}
	fmt.Println(token)
	slog.Info("token issued", "operator_id", *id, "expires_at", expires.Format(time.RFC3339))
	return nil
}
