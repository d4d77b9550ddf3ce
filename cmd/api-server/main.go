package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/medcore/front-desk-backend/internal/api"
	"github.com/medcore/front-desk-backend/internal/audit"
	"github.com/medcore/front-desk-backend/internal/clinic"
	"github.com/medcore/front-desk-backend/internal/config"
	"github.com/medcore/front-desk-backend/internal/kv"
	"github.com/medcore/front-desk-backend/internal/store"
)

const version = "0.3.0"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("api-server starting up")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	log.Printf("running in env=%s http_port=%s storage=%s", cfg.Env, cfg.HTTPPort, cfg.StorageBackend)

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend, err := openBackend(rootCtx, cfg)
	if err != nil {
		log.Fatalf("storage backend error: %v", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Printf("error closing storage backend: %v", err)
		}
	}()
	log.Printf("connected to %s storage", cfg.StorageBackend)

	db := store.New(backend)

	initCtx, cancelInit := context.WithTimeout(rootCtx, 10*time.Second)
	err = clinic.Initialize(initCtx, db)
	cancelInit()
	if err != nil {
		log.Fatalf("store initialize error: %v", err)
	}
	log.Println("store initialized")

	svc := clinic.NewService(
		db,
		audit.NewLogger(db),
		clinic.NewTokenIssuer(cfg.JWTSecret),
		clinic.Latency{Base: cfg.LatencyBase, Jitter: cfg.LatencyJitter},
	)

	router := api.NewRouter(api.RouterConfig{
		Service: svc,
		DB:      db,
		Env:     cfg.Env,
		Version: version,
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", server.Addr)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	case <-rootCtx.Done():
		log.Println("shutting down api-server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("graceful shutdown error: %v", err)
		}
	}
}

func openBackend(ctx context.Context, cfg config.Config) (kv.Store, error) {
	switch cfg.StorageBackend {
	case config.BackendRedis:
		return kv.NewRedisStore(cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword)
	case config.BackendPostgres:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return kv.NewPostgresStore(connectCtx, cfg.PostgresDSN)
	default:
		return kv.NewMemoryStore(), nil
	}
}
