// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/valyan/clinic-manager/internal/config"
	"github.com/valyan/clinic-manager/internal/handler"
	"github.com/valyan/clinic-manager/internal/logger"
	"github.com/valyan/clinic-manager/internal/server"
	"github.com/valyan/clinic-manager/internal/service"
	"github.com/valyan/clinic-manager/internal/store"
	"github.com/valyan/clinic-manager/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("clinic-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("clinic-server", cfg.App.LogLevel)
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Dur("token_duration", cfg.App.TokenDuration).
		Bool("redis_enabled", cfg.Storage.Redis.Address != "").
		Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	var denylist store.TokenDenylist
	if cfg.Storage.Redis.Address != "" {
		redisClient, err := store.NewRedisClient(ctx, cfg.Storage.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to redis")
		}
		defer redisClient.Close()
		denylist = store.NewRedisTokenDenylist(redisClient, log)
	} else {
		log.Warn().Msg("redis is not configured, logout will not revoke tokens")
	}

	storages := store.NewStorages(db, denylist, log)

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
