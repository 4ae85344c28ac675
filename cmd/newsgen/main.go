package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/novina/Novina/internal/config"
	"github.com/novina/Novina/internal/gateway"
	"github.com/novina/Novina/internal/metrics"
	"github.com/novina/Novina/internal/pkg/redact"
	"github.com/novina/Novina/internal/seed"
	"github.com/novina/Novina/internal/service"
	"github.com/novina/Novina/internal/storage/postgres"
	httpapi "github.com/novina/Novina/internal/transport/http"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	// .env необязателен: в проде переменные приходят из окружения.
	_ = godotenv.Load()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting newsgen",
		slog.String("env", cfg.Env),
		slog.String("gateway", cfg.Gateway.BaseURL),
		slog.String("gateway_key", redact.Secret(cfg.Gateway.APIKey)),
	)

	if cfg.Gateway.APIKey == "" {
		log.Warn("gateway_key_missing")
	}
	if cfg.Auth.JWTSecret == "" {
		log.Warn("jwt_secret_missing")
	}

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	store, err := postgres.New(dbCtx, cfg.DB.URL)
	dbCancel()
	if err != nil {
		log.Error("postgres_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer store.Close()
	log.Info("postgres_connected")

	m := metrics.New(nil)
	svc := service.New(store, *cfg, newGeneratorFactory(cfg.Gateway), m)
	log.Info("service_initialized")

	if cfg.Seed.Path != "" {
		if err := applySeed(rootCtx, svc, cfg.Seed.Path); err != nil {
			log.Error("seed_failed", slog.String("path", cfg.Seed.Path), slog.String("err", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.Schedule.Enabled {
		go func() {
			if err := svc.StartSchedule(rootCtx); err != nil {
				log.Error("schedule_start_failed", slog.String("err", err.Error()))
			}
		}()
	}

	apiHandler := httpapi.NewRouter(svc, httpapi.Options{
		Logger:   log,
		Timeout:  cfg.Timeouts.Service,
		BasePath: "/api",
		Auth:     cfg.Auth,
	})

	var ready int32 // 0: not ready; 1: ready

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&ready) != 1 {
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}

		pingCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.Handle("/", apiHandler)

	httpAddr := cfg.HTTP.Addr()
	httpSrv := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", httpAddr)
	if err != nil {
		log.Error("http_listen_failed", slog.String("addr", httpAddr), slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("http_listen_start", slog.String("addr", httpAddr))

	serveErrCh := make(chan error, 1)
	go func() {
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	atomic.StoreInt32(&ready, 1)
	log.Info("newsgen_ready")

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	atomic.StoreInt32(&ready, 0)

	// Ручная генерация может идти до таймаута шлюза; даём ей завершиться.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Gateway.Timeout+10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_shutdown_incomplete", slog.String("err", err.Error()))
	} else {
		log.Info("http_stopped")
	}

	log.Info("service_stopped")
}

// newGeneratorFactory строит клиентов шлюза для моделей провайдеров.
func newGeneratorFactory(gw config.GatewayConfig) service.GeneratorFactory {
	opts := gateway.Options{
		APIKey:    gw.APIKey,
		BaseURL:   gw.BaseURL,
		Timeout:   gw.Timeout,
		MaxTokens: gw.MaxTokens,
		SiteURL:   gw.SiteURL,
		SiteName:  gw.SiteName,
	}

	return func(modelID string) (service.Generator, error) {
		c, err := gateway.New(opts, modelID)
		if err != nil {
			// nil *Client в интерфейсе не равен nil.
			return nil, err
		}
		return c, nil
	}
}

func applySeed(ctx context.Context, svc *service.Service, path string) error {
	f, err := seed.Load(path)
	if err != nil {
		return err
	}

	seedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err = seed.Apply(seedCtx, svc, f)
	return err
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return log
}
