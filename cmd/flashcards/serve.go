package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/youruser/flashcards/internal/api"
	"github.com/youruser/flashcards/internal/config"
	"github.com/youruser/flashcards/internal/fonts"
	"github.com/youruser/flashcards/internal/platform/sqlite"
	"github.com/youruser/flashcards/internal/session"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, appLogger)
	},
}

func init() {
	serveCmd.Flags().Int("port", 8080, "listen port")
	serveCmd.Flags().String("base-url", "", "public origin used in QR codes")
	serveCmd.Flags().String("store", "memory", "session store: memory or sqlite")
	serveCmd.Flags().String("db", "data/sessions.db", "sqlite database path")
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	catalog, err := catalogFor(cfg)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(ctx, cfg.Store, log)
	if err != nil {
		return err
	}
	defer closeStore()

	sessions := session.NewManager(store, catalog, log)
	handler := api.NewHandler(sessions, api.Options{
		BaseURL:        cfg.Server.BaseURL,
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
		DecodeTimeout:  cfg.Server.DecodeTimeout,
		AutoPrint:      cfg.Render.AutoPrint,
		PreviewScale:   cfg.Render.PreviewScale,
		MarginMM:       cfg.Render.MarginMM,
	}, log)

	if cfg.Server.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           api.NewRouter(handler, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if cfg.Store.TTL > 0 && cfg.Store.SweepInterval > 0 {
		go sweep(ctx, sessions, cfg.Store.TTL, cfg.Store.SweepInterval, log)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", slog.String("addr", "http://localhost"+srv.Addr), slog.String("store", cfg.Store.Driver))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func catalogFor(cfg *config.Config) (*fonts.Catalog, error) {
	catalog := fonts.Builtin()
	if cfg.Render.DefaultFont == "" {
		return catalog, nil
	}
	return catalog.WithDefault(cfg.Render.DefaultFont)
}

func openStore(ctx context.Context, sc config.StoreConfig, log *slog.Logger) (session.Store, func(), error) {
	switch sc.Driver {
	case "sqlite":
		s, err := sqlite.Open(ctx, sc.Path, log)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {
			if err := s.Close(); err != nil {
				log.Error("closing session store", slog.String("error", err.Error()))
			}
		}, nil
	default:
		return session.NewMemoryStore(), func() {}, nil
	}
}

// sweep evicts idle sessions until ctx is done.
func sweep(ctx context.Context, sessions *session.Manager, ttl, every time.Duration, log *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := sessions.Sweep(ctx, ttl); err != nil && ctx.Err() == nil {
				log.Warn("session sweep failed", slog.String("error", err.Error()))
			}
		}
	}
}
