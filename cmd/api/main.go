package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore/internal/author"
	"bookstore/internal/book"
	"bookstore/internal/config"
	"bookstore/internal/httpx"
	"bookstore/internal/logger"
	"bookstore/internal/mapper"
	"bookstore/internal/store"
)

// @title Bookstore API
// @version 1.0
// @description CRUD API for authors and books.
// @BasePath /
func main() {
	cfg, cfgErr := config.Load()
	log := logger.New(cfg.Env, cfg.LogLevel)
	if cfgErr != nil {
		log.Error("invalid configuration", "error", cfgErr)
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := openDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer dbPool.Close()
	log.Info("database connection OK", "db", dbTarget(dbPool.Config()))

	entityStore := store.New(dbPool, store.WithLogger(log), store.WithQueryTimeout(cfg.QueryTimeout))
	objectMapper := mapper.New()
	validator := httpx.NewValidator()

	authorHandler := author.NewHTTPHandler(entityStore, objectMapper, validator, log)
	bookHandler := book.NewHTTPHandler(entityStore, objectMapper, validator, log)

	limiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst).
		WithTrustedProxies(cfg.TrustedProxies)
	router := newRouter(authorHandler, bookHandler, entityStore, cfg.IsDevelopment())
	handler := withMiddleware(router, cfg, log, limiter)

	servers := []*http.Server{newServer(cfg.Addr, handler)}
	if cfg.TLSEnabled() {
		servers = append(servers, newServer(cfg.TLSAddr, handler))
	}

	errCh := make(chan error, len(servers))
	for i, srv := range servers {
		tls := i == 1
		go func() {
			log.Info("starting server", "addr", srv.Addr, "tls", tls, "env", cfg.Env)
			var err error
			if tls {
				err = srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
			} else {
				err = srv.ListenAndServe()
			}
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("serve %s: %w", srv.Addr, err)
			}
		}()
	}

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("graceful shutdown failed", "addr", srv.Addr, "error", err)
		}
	}
	return serveErr
}

func newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func openDB(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse db dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database (%s): %w", dbTarget(poolCfg), err)
	}
	return pool, nil
}

// dbTarget names the server and database without any credentials.
func dbTarget(cfg *pgxpool.Config) string {
	cc := cfg.ConnConfig
	return net.JoinHostPort(cc.Host, strconv.Itoa(int(cc.Port))) + "/" + cc.Database
}
