package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/natevvv/osm-campus-routing/internal/config"
	"github.com/natevvv/osm-campus-routing/internal/logs"
	"github.com/natevvv/osm-campus-routing/internal/osmmap"
	"github.com/natevvv/osm-campus-routing/pkg/routing"
	server "github.com/natevvv/osm-campus-routing/pkg/server/openapi_server"
)

func main() {
	mapFile := flag.String("map", "", "OSM map file (.osm or .pbf), overrides map.file")
	configFile := flag.String("config", "", "YAML config file")
	addr := flag.String("addr", "", "listen address, overrides server.addr")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if *mapFile != "" {
		cfg.Map.File = *mapFile
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	logger, err := logs.New(cfg.Log, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	m, err := osmmap.Load(ctx, cfg.Map.File, logger)
	if err != nil {
		logger.Error("loading map failed", slog.Any("error", err))
		os.Exit(1)
	}
	router := routing.NewRouter(m, routing.WithLogger(logger), routing.WithMaxSettled(cfg.Map.MaxSettled))
	logger.Info("import finished", slog.Duration("elapsed", time.Since(start)))

	service, err := server.NewDefaultApiService(router, cfg.Server.RouteCacheSize, logger)
	if err != nil {
		logger.Error("creating service failed", slog.Any("error", err))
		os.Exit(1)
	}
	controller := server.NewDefaultApiController(service)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server.NewRouter(logger, controller),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.WriteTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", slog.Any("error", err))
		}
	}()

	logger.Info("server started", slog.String("addr", cfg.Server.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
