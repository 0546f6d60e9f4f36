package main

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "bookstore/docs"
	"bookstore/internal/author"
	"bookstore/internal/book"
	"bookstore/internal/config"
	"bookstore/internal/httpx"
)

const (
	healthPath = "/healthz"
	readyPath  = "/readyz"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type resource interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// newRouter registers both resources under their canonical and lower-case
// paths. The swagger UI is only mounted when withSwagger is set.
func newRouter(authors *author.HTTPHandler, books *book.HTTPHandler, db pinger, withSwagger bool) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET "+healthPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET "+readyPath, func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	mount(router, author.BasePath, authors)
	mount(router, book.BasePath, books)

	if withSwagger {
		router.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	return router
}

func mount(router *http.ServeMux, base string, h resource) {
	for _, path := range []string{base, strings.ToLower(base)} {
		router.HandleFunc("GET "+path, h.List)
		router.HandleFunc("POST "+path, h.Create)
		router.HandleFunc("GET "+path+"/{id}", h.Get)
		router.HandleFunc("PUT "+path+"/{id}", h.Update)
		router.HandleFunc("DELETE "+path+"/{id}", h.Delete)
	}
}

// withMiddleware wraps the router; the first middleware listed runs first.
func withMiddleware(next http.Handler, cfg config.Config, logger *slog.Logger, limiter *httpx.RateLimitMiddleware) http.Handler {
	chain := []func(http.Handler) http.Handler{
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(logger),
		httpx.RecoveryMiddleware(logger),
	}
	// Preflights are answered before any redirect.
	chain = append(chain, httpx.CORSMiddleware())
	if cfg.TLSEnabled() {
		chain = append(chain, httpx.HTTPSRedirectMiddleware(cfg.TLSPort(), healthPath, readyPath))
	}
	chain = append(chain,
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		limiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	)

	h := next
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}
	return h
}
