package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	httpadapter "github.com/fluffhead-tim/awesome-yoga-app/internal/adapters/http"
	"github.com/fluffhead-tim/awesome-yoga-app/internal/config"
	"github.com/fluffhead-tim/awesome-yoga-app/web"
)

func newServeCmd() *cobra.Command {
	var (
		host string
		port int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				slog.Error("failed to load config", "error", err)
				return err
			}
			if host != "" {
				cfg.Host = host
			}
			if port != 0 {
				if _, err := config.ParsePort(strconv.Itoa(port)); err != nil {
					return err
				}
				cfg.Port = port
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "bind address (overrides HOST)")
	cmd.Flags().IntVar(&port, "port", 0, "listening port (overrides PORT)")
	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	logger := newLogger(os.Stdout, cfg.LogLevel, true)
	slog.SetDefault(logger)

	svc, err := buildService(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to build service", "error", err)
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("64K"))
	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc, web.Assets())
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.Addr(), "ai_enabled", cfg.AIEnabled(), "model", cfg.LLMModel)
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		return err
	}
	return nil
}
