package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	httpadapter "github.com/shubhs27/Snap-n-Solve/internal/adapters/http"
	"github.com/shubhs27/Snap-n-Solve/internal/config"
	"github.com/shubhs27/Snap-n-Solve/internal/difficulty"
	"github.com/shubhs27/Snap-n-Solve/internal/infrastructure/storage"
	"github.com/shubhs27/Snap-n-Solve/internal/usecase"
	"github.com/shubhs27/Snap-n-Solve/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newServeCommand() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP/websocket API for the capture pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			fl := cmd.Flags()
			if fl.Changed("addr") {
				cfg.Addr, _ = fl.GetString("addr")
			}
			if fl.Changed("persist-path") {
				cfg.PersistPath, _ = fl.GetString("persist-path")
			}
			if fl.Changed("solver") {
				cfg.Solver, _ = fl.GetString("solver")
			}
			if fl.Changed("log-level") {
				cfg.LogLevel, _ = fl.GetString("log-level")
			}
			return runServe(cfg)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().String("persist-path", "./data", "save directory")
	cmd.Flags().String("solver", "bestfirst", "solver to use: bestfirst|backtrack")
	cmd.Flags().String("log-level", "info", "debug|info|warn|error")
	return cmd
}

func runServe(cfg config.Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	if err := os.MkdirAll(cfg.PersistPath, 0o755); err != nil {
		return err
	}

	// Wire providers -> use cases -> HTTP adapter
	s := pickSolver(strings.ToLower(strings.TrimSpace(cfg.Solver)))
	v := validator.New()
	a := difficulty.New()
	st := storage.NewFS(cfg.PersistPath)
	uc := usecase.NewService(s, v, a, st)
	h := httpadapter.New(uc)
	h.SolveTimeout = cfg.SolveTimeout.Std()

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", cfg.Addr, "persist", cfg.PersistPath, "solver", cfg.Solver)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
		return err
	}
	return nil
}
