package cli

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpadapter "svw.info/skyscraper/internal/adapters/http"
	"svw.info/skyscraper/internal/generator"
	"svw.info/skyscraper/internal/infrastructure/config"
	"svw.info/skyscraper/internal/infrastructure/logging"
	"svw.info/skyscraper/internal/infrastructure/storage"
	"svw.info/skyscraper/internal/ports"
	"svw.info/skyscraper/internal/solver"
	"svw.info/skyscraper/internal/usecase"
	"svw.info/skyscraper/internal/validator"
)

func newServeCmd() *cobra.Command {
	var cfgPath string
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the puzzle operations as a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			logger := logging.New(cfg.Dev, cfg.LogFile)
			defer logger.Sync()

			var store ports.Storage
			switch cfg.Storage {
			case "sqlite":
				db, err := storage.NewSQLite(cfg.DBPath)
				if err != nil {
					return err
				}
				defer db.Close()
				store = db
			case "", "fs":
				store = storage.NewFS(cfg.DataDir)
			default:
				return fmt.Errorf("unknown storage backend %q", cfg.Storage)
			}

			s := solver.NewBacktrackingSolver()
			uc := usecase.NewService(s, generator.NewUniqueGenerator(s), validator.New(), store)
			h := httpadapter.New(uc)

			mux := http.NewServeMux()
			h.Register(mux)

			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           requestLogger(logger, mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			logger.Info("listening",
				zap.String("addr", cfg.Addr),
				zap.String("storage", cfg.Storage),
			)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (overrides config)")
	return cmd
}

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
func requestLogger(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sw.status),
			zap.Int("bytes", sw.bytes),
			zap.Duration("dur", time.Since(start).Round(time.Millisecond)),
		)
	})
}
