package main

import (
	auth "Airlift/internal/auth"
	airlift "Airlift/internal/calc/airlift"
	batch "Airlift/internal/calc/premium/batch"
	importer "Airlift/internal/calc/premium/importer"
	report "Airlift/internal/calc/report"
	config "Airlift/internal/config"
	logging "Airlift/internal/logging"
	repo "Airlift/internal/repo"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// NewHandler wraps the router with CORS and request logging.
func NewHandler(router *mux.Router, logger *slog.Logger) http.Handler {
	return CORS(logging.Middleware(logger)(router))
}

// HandleList mounts every route. users may be nil, in which case register and
// login are not served; tokens issued elsewhere with the same key still work.
func HandleList(mux *mux.Router, cfg config.Config, users repo.Repository, logger *slog.Logger) {
	authEnv := &auth.Authenv{
		JWTkey:       []byte(cfg.TokenKey),
		Repo:         users,
		Logger:       logger,
		SecureCookie: cfg.TLS(),
	}

	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	if users != nil {
		api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
		api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")
	}

	airliftH := &airlift.Handler{}
	api.HandleFunc("/tools/airlift/defaults", airliftH.Defaults).Methods("GET")
	api.HandleFunc("/tools/airlift/total", airliftH.Total).Methods("POST")
	api.HandleFunc("/tools/airlift/calc", airliftH.Calc).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	reportH := &report.Handler{}
	importerH := &importer.Handler{}
	batchH := &batch.Handler{}

	secureApi.HandleFunc("/tools/airlift/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/airlift/import", importerH.Import).Methods("POST")
	secureApi.HandleFunc("/tools/airlift/export", importerH.Export).Methods("POST")
	secureApi.HandleFunc("/tools/airlift/batch", batchH.Calc).Methods("POST")
}

func openUsers(ctx context.Context, dsn string, logger *slog.Logger) (repo.Repository, func(), error) {
	if dsn == "" {
		logger.Warn("DATABASE_URL not set, account routes disabled")
		return nil, func() {}, nil
	}
	db, err := repo.Open(ctx, dsn)
	if err != nil {
		return nil, nil, err
	}
	users := repo.NewPostgresUserDB(db)
	if err := users.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return users, func() { db.Close() }, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration", "error", err)
		os.Exit(1)
	}
	logger := logging.NewJSON(os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)

	users, closeDB, err := openUsers(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Error("database", "error", err)
		os.Exit(1)
	}
	defer closeDB()

	router := mux.NewRouter()
	HandleList(router, cfg, users, logger)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: NewHandler(router, logger),
	}

	logger.Info("starting server", "addr", cfg.Addr, "tls", cfg.TLS())
	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	wg.Wait()
	logger.Info("server stopped")
}
