package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/jobtracker/internal/config"
	"github.com/msomdec/jobtracker/internal/domain"
	"github.com/msomdec/jobtracker/internal/handler"
	"github.com/msomdec/jobtracker/internal/persist"
	"github.com/msomdec/jobtracker/internal/repository/memory"
	"github.com/msomdec/jobtracker/internal/repository/sqlite"
	"github.com/msomdec/jobtracker/internal/service"
	"github.com/msomdec/jobtracker/internal/store"
	"github.com/msomdec/jobtracker/internal/transfer"
)

func main() {
	cfg, err := config.Load(".env", os.Args[1:])
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logOpts := &slog.HandlerOptions{Level: cfg.LogLevel}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		kv     domain.KVStore
		health handler.HealthCheck
	)
	if cfg.Memory {
		kv = memory.NewKV()
		slog.Warn("running with in-memory storage; nothing survives a restart")
	} else {
		db, err := sqlite.New(cfg.DatabasePath)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := db.Migrate(ctx); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("database migrations applied", "path", cfg.DatabasePath)
		kv = db.KV()
		health = db.Ping
	}

	st := store.New()
	toaster := store.NewToaster(st, cfg.ToastTimeout)
	bridge := persist.NewBridge(kv)

	syncer := persist.NewSync(bridge, st,
		persist.WithNotifier(toaster),
		persist.WithThemeHook(func(t domain.Theme) { slog.Debug("theme applied", "theme", t) }),
	)
	syncer.Start(ctx)
	defer syncer.Stop()

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, handler.Deps{
		Store:        st,
		Toaster:      toaster,
		Auth:         service.NewAuthService(persist.NewAccounts(bridge), st, toaster, cfg.JWTSecret, cfg.BcryptCost),
		Applications: service.NewApplicationService(st, toaster),
		Jobs:         service.NewJobService(st, toaster),
		Preferences:  service.NewPreferencesService(st),
		Transfer:     transfer.NewReconciler(st, toaster),
		Limiter:      service.NewRateLimiter(ctx, 0.2, 5),
		Health:       health,
		CookieSecure: cfg.CookieSecure,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.SecurityHeaders(mux),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
		// Toast streams end when the shutdown signal arrives.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
