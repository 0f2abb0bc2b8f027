package root

import (
	"log/slog"
	"os"

	"forestlog/internal/config"
	"forestlog/internal/engine"
	"forestlog/internal/storage"
)

func openService() (*engine.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	store := storage.NewProfileStore(cfg.ProfilePath)
	return engine.NewService(store, engine.WithLogger(logger))
}
