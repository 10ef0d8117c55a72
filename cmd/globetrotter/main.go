// Package main is the entry point for the GlobeTrotter CLI.
// Its sole responsibility is wiring dependencies together and dispatching
// to the command tree. No business logic belongs here.
package main

import (
	"log/slog"
	"os"

	"github.com/globetrotter-studio/globetrotter/internal/config"
	"github.com/globetrotter-studio/globetrotter/internal/repo"
	"github.com/globetrotter-studio/globetrotter/internal/service"
	"github.com/globetrotter-studio/globetrotter/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// log/slog is the stdlib structured logger. Text handler on stderr so
	// warnings never interleave with command output on stdout.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Storage backend per config. Construction never fails: an unusable
	// medium degrades to ephemeral in-memory mode with a logged warning.
	var store storage.Store
	switch cfg.Storage {
	case config.BackendFile:
		store = storage.NewFile(cfg.DataDir, logger)
	case config.BackendMemory:
		store = storage.NewMemory()
	default:
		db := storage.NewSQLite(cfg.DatabasePath(), logger)
		defer db.Close()
		store = db
	}

	trips := repo.New(store, logger)

	app := &app{
		repo:      trips,
		auth:      service.NewAuth(trips, logger),
		community: service.NewCommunity(trips),
		cloner:    service.NewCloner(trips, logger, service.DefaultCloneDelay),
		out:       os.Stdout,
	}

	if err := newRootCmd(app).Execute(); err != nil {
		os.Exit(1)
	}
}
