package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ryan-syed/URLShortener/config"
	"github.com/ryan-syed/URLShortener/handlers"
	"github.com/ryan-syed/URLShortener/services"
	"github.com/ryan-syed/URLShortener/urlgen"
)

func Run(logger *zap.Logger, cfg *config.Config) error {
	urlHandler, err := setupURLHandler(cfg, logger)
	if err != nil {
		return err
	}

	router := setupRouter(urlHandler, logger)
	server := setupServer(cfg, router)

	go startServer(server, logger)

	return waitForShutdown(server, cfg.ShutdownTimeout, logger)
}

func setupURLHandler(cfg *config.Config, logger *zap.Logger) (handlers.URLHandlerInterface, error) {
	generator := urlgen.New(urlgen.DefaultSource())
	urlService := services.NewURLService(generator, cfg.BaseURL, logger)

	handler, err := handlers.NewURLHandler(urlService, logger)
	if err != nil {
		logger.Error("Failed to create URL handler", zap.Error(err))
		return nil, err
	}

	logger.Debug("URL handler created successfully")
	return handler, nil
}

func setupRouter(urlHandler handlers.URLHandlerInterface, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handlers.RequestIDMiddleware())
	router.Use(handlers.RequestLogger(logger))
	router.Use(handlers.MetricsMiddleware())
	handlers.RegisterRoutes(router, urlHandler)
	return router
}

func setupServer(cfg *config.Config, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

func startServer(srv *http.Server, logger *zap.Logger) {
	logger.Info("Starting server", zap.String("address", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", zap.Error(err))
	}
	logger.Debug("Server stopped")
}

func waitForShutdown(srv *http.Server, timeout time.Duration, logger *zap.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	logger.Info("Received interrupt signal. Initiating server shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Info("Server gracefully stopped")
	return nil
}
