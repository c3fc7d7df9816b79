package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mindhaven/mindhaven/internal/analysis"
	"github.com/mindhaven/mindhaven/internal/api"
	"github.com/mindhaven/mindhaven/internal/config"
	"github.com/mindhaven/mindhaven/internal/journal"
	"github.com/mindhaven/mindhaven/internal/profile"
	"github.com/mindhaven/mindhaven/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the mindhaven server (foreground)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running mindhaven server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return stopServer()
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show mindhaven server status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showStatus()
	},
}

func pidFilePath(dataDir string) string {
	return filepath.Join(dataDir, "mindhaven.pid")
}

func writePIDFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644)
}

func readPIDFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

func removePIDFile(path string) {
	os.Remove(path)
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return cfg.Build()
}

func runServer() error {
	fmt.Fprintf(os.Stderr, "mindhaven version %s\n", version)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	// Check if server is already running via health endpoint before taking
	// the PID file.
	pidPath := pidFilePath(cfg.Storage.DataDir)
	healthURL := fmt.Sprintf("http://127.0.0.1:%d/health", cfg.Server.Port)
	healthClient := &http.Client{Timeout: 2 * time.Second}
	if resp, err := healthClient.Get(healthURL); err == nil {
		resp.Body.Close()
		if pid, pidErr := readPIDFile(pidPath); pidErr == nil {
			printWarning("mindhaven is already running (PID %d)", pid)
			return fmt.Errorf("server already running (PID %d)", pid)
		}
		printWarning("mindhaven is already running on port %d", cfg.Server.Port)
		return fmt.Errorf("server already running on port %d", cfg.Server.Port)
	}
	if err := writePIDFile(pidPath); err != nil {
		return fmt.Errorf("writing PID file: %w", err)
	}
	defer removePIDFile(pidPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Open storage.
	store, err := storage.Open(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing storage", zap.Error(err))
		}
	}()

	// Build the analyzer: real-model path when a credential is configured,
	// demo fallback otherwise.
	var provider analysis.Provider
	if cfg.HasAPIKey() {
		provider = analysis.NewOpenAIProvider(
			cfg.OpenAI.APIKey,
			cfg.OpenAI.Model,
			cfg.OpenAI.MaxTokens,
			cfg.OpenAI.Temperature,
			cfg.OpenAI.Timeout,
			logger,
		)
		logger.Info("AI analysis enabled", zap.String("model", cfg.OpenAI.Model))
	} else {
		logger.Info("no API key configured, running in demo mode")
	}
	analyzer := analysis.NewService(provider, logger)

	profileMgr := profile.NewManager(store)
	journalSvc := journal.NewService(store, analyzer, logger)

	// Derived views are stateless and recomputed per request; the observer
	// hook keeps a debug trail of mutations.
	journalSvc.Subscribe(func(ev journal.Event) {
		logger.Debug("store mutated", zap.String("event", string(ev.Kind)), zap.String("entry_id", ev.EntryID))
	})

	handler := api.NewHandler(api.Deps{
		Journal:  journalSvc,
		Analyzer: analyzer,
		Profile:  profileMgr,
		Logger:   logger,
	})

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	// Start server in a goroutine.
	errCh := make(chan error, 1)
	go func() {
		logger.Info("mindhaven listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for signal or server error.
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	// Graceful shutdown with timeout.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func stopServer() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	pidPath := pidFilePath(cfg.Storage.DataDir)
	pid, err := readPIDFile(pidPath)
	if err != nil {
		printWarning("mindhaven does not appear to be running")
		return nil
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		removePIDFile(pidPath)
		printWarning("stale PID file removed")
		return nil
	}
	if err := proc.Signal(syscall.SIGTERM); err != nil {
		removePIDFile(pidPath)
		printWarning("process %d not running, stale PID file removed", pid)
		return nil
	}

	printSuccess("sent shutdown signal to mindhaven (PID %d)", pid)
	return nil
}

func showStatus() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	healthURL := fmt.Sprintf("http://127.0.0.1:%d/health", cfg.Server.Port)
	healthClient := &http.Client{Timeout: 2 * time.Second}
	resp, err := healthClient.Get(healthURL)
	if err != nil {
		printWarning("server: not running")
		return nil
	}
	resp.Body.Close()

	printSuccess("server: running on port %d", cfg.Server.Port)
	if pid, err := readPIDFile(pidFilePath(cfg.Storage.DataDir)); err == nil {
		printStatus("pid", "%d", pid)
	}
	printStatus("data dir", "%s", cfg.Storage.DataDir)
	if cfg.HasAPIKey() {
		printStatus("mode", "AI analysis (%s)", cfg.OpenAI.Model)
	} else {
		printStatus("mode", "demo (no API key)")
	}
	return nil
}
