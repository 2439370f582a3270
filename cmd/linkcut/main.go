package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/akarpov/linkcut/internal/api/rest"
	"github.com/akarpov/linkcut/internal/config"
	"github.com/akarpov/linkcut/internal/logging"
	"github.com/akarpov/linkcut/internal/storage"
	"github.com/akarpov/linkcut/internal/storage/inmemory"
	"github.com/akarpov/linkcut/internal/storage/inpsql"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// get configuration
	cfg, err := config.NewDefaultConfiguration()
	if err != nil {
		panic(err)
	}
	cfg.ParseFlags()
	log := logging.NewLogger(cfg.LogLevel)
	log.Info().
		Str("build_version", orNA(buildVersion)).
		Str("build_date", orNA(buildDate)).
		Str("build_commit", orNA(buildCommit)).
		Msg("starting linkcut")
	// add a waiting group for the storage disconnection listener
	wg := &sync.WaitGroup{}
	// initialize storage, switch between "inmemory" and "inpsql" modules
	var st storage.Storage
	switch cfg.DatabaseDSN {
	case "":
		st = inmemory.InitStorage(log)
	default:
		wg.Add(1)
		st, err = inpsql.InitStorage(ctx, wg, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("storage initialization failed")
		}
	}
	// initialize server
	server, err := rest.InitServer(ctx, cfg, log, st)
	if err != nil {
		log.Fatal().Err(err).Msg("server initialization failed")
	}
	// set a listener for os.Signal
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-done
		log.Info().Msg("server shutdown attempted")
		ctxTO, cancelTO := context.WithTimeout(ctx, 5*time.Second)
		defer cancelTO()
		if err := server.Shutdown(ctxTO); err != nil {
			log.Fatal().Err(err).Msg("server shutdown failed")
		}
		cancel()
	}()
	// start up the server
	log.Info().Str("address", cfg.ServerAddress).Bool("https", cfg.EnableHTTPS).Msg("server start attempted")
	if cfg.EnableHTTPS {
		err = server.ListenAndServeTLS("", "")
	} else {
		err = server.ListenAndServe()
	}
	if err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server failed")
	}
	// wait for the goroutine in InitStorage to finish before exiting
	wg.Wait()
	log.Info().Msg("server shutdown succeeded")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
