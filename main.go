package main

import (
	"go.uber.org/zap"

	"github.com/ryan-syed/URLShortener/config"
	"github.com/ryan-syed/URLShortener/server"
)

var logger *zap.Logger

func init() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		panic("Failed to initialize zap logger: " + err.Error())
	}
}

func main() {
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Starting URL Shortener application...",
		zap.String("address", cfg.Addr()),
		zap.String("base_url", cfg.BaseURL),
	)
	if err := server.Run(logger, cfg); err != nil {
		logger.Fatal("Application error", zap.Error(err))
	}
	logger.Info("URL Shortener application stopped.")
}
