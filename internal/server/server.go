package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shouni/canon-forge-kit/internal/builder"
	"github.com/shouni/canon-forge-kit/internal/server/handlers"
)

// デフォルトのシャットダウン猶予時間
const defaultShutdownTimeout = 10 * time.Second

// Run は組み立て済みの AppContext で API サーバーを起動し、シグナルかコンテキスト終了で停止します。
func Run(ctx context.Context, appCtx *builder.AppContext) error {
	h, err := handlers.NewHandler(appCtx.Workspace)
	if err != nil {
		return fmt.Errorf("failed to build handlers: %w", err)
	}

	cfg := appCtx.Config
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// --- サーバー起動とシグナル待機 ---
	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("🚀 Server starting...", "port", cfg.Port, "provider", appCtx.Dispatcher.ProviderName())
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-shutdown:
	case <-ctx.Done():
	}

	slog.Info("⚠️ Starting graceful shutdown...")

	timeout := cfg.ShutdownTimeout
	if timeout == 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed, forcing close", "error", err)
		if closeErr := srv.Close(); closeErr != nil {
			return fmt.Errorf("could not stop server: shutdown error: %v, close error: %v", err, closeErr)
		}
		return fmt.Errorf("could not stop server gracefully: %w", err)
	}

	slog.Info("✅ Server stopped cleanly")
	return nil
}
