// Package rest provides functionality for initializing a server for the link shortening service.
package rest

import (
	"context"
	"expvar"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/acme/autocert"

	"github.com/akarpov/linkcut/internal/api/rest/handlers"
	"github.com/akarpov/linkcut/internal/api/rest/middleware"
	"github.com/akarpov/linkcut/internal/config"
	directoryV1 "github.com/akarpov/linkcut/internal/service/directory/v1"
	registryV1 "github.com/akarpov/linkcut/internal/service/registry/v1"
	secretaryV1 "github.com/akarpov/linkcut/internal/service/secretary/v1"
	slugV1 "github.com/akarpov/linkcut/internal/service/slug/v1"
	"github.com/akarpov/linkcut/internal/storage"
)

var (
	serverStart = time.Now()
	uptimeOnce  sync.Once
)

// uptime returns time in seconds since the server start-up.
func uptime() interface{} {
	return int64(time.Since(serverStart).Seconds())
}

// InitServer returns a http.Server object ready to be listening and serving.
func InitServer(ctx context.Context, cfg *config.Config, log zerolog.Logger, st storage.Storage) (server *http.Server, err error) {
	codec, err := slugV1.InitCodec(cfg.SlugSalt, cfg.SlugMinLength)
	if err != nil {
		return nil, err
	}
	registryService, err := registryV1.InitRegistry(codec, st)
	if err != nil {
		return nil, err
	}
	directoryService, err := directoryV1.InitDirectory(st)
	if err != nil {
		return nil, err
	}
	secretaryService, err := secretaryV1.NewSecretaryService(cfg)
	if err != nil {
		return nil, err
	}
	cookieHandler, err := middleware.NewCookieHandler(secretaryService)
	if err != nil {
		return nil, err
	}
	urlHandler, err := handlers.InitURLHandler(registryService, directoryService, cookieHandler, cfg, log)
	if err != nil {
		return nil, err
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(log))
	r.Use(cookieHandler.CookieHandle)
	r.Use(middleware.CompressHandle)
	r.Use(middleware.DecompressHandle)
	r.Post("/api/login", urlHandler.HandleLogin())
	r.Get("/api/user", urlHandler.HandleGetUser())
	r.Post("/", urlHandler.HandlePostURL())
	r.Post("/api/shorten", urlHandler.JSONHandlePostURL())
	r.Get("/api/user/urls", urlHandler.HandleGetURLsByUserID())
	r.Delete("/api/user/urls/{slug}", urlHandler.HandleDeleteURL())
	r.Get("/ping", urlHandler.HandlePingDB())
	r.Get("/{slug}", urlHandler.HandleGetURL())
	r.Mount("/debug", chiMiddleware.Profiler()) // see https://github.com/go-chi/chi/blob/master/middleware/profiler.go
	uptimeOnce.Do(func() {
		expvar.Publish("system.uptime", expvar.Func(uptime))
	})

	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      r,
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}
	if cfg.EnableHTTPS {
		manager, err := autocertManager(cfg)
		if err != nil {
			return nil, err
		}
		srv.TLSConfig = manager.TLSConfig()
	}
	return srv, nil
}

// autocertManager builds an ACME manager restricted to the public host of the
// configured base URL, certificate issuance is never attempted for any other
// SNI name a client presents.
func autocertManager(cfg *config.Config) (*autocert.Manager, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	if base.Hostname() == "" {
		return nil, fmt.Errorf("base URL %q carries no host for certificate issuance", cfg.BaseURL)
	}
	return &autocert.Manager{
		Cache:      autocert.DirCache("cache-dir"),
		Prompt:     autocert.AcceptTOS,
		HostPolicy: autocert.HostWhitelist(base.Hostname()),
	}, nil
}
