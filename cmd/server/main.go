//go:generate swag init -g cmd/server/main.go -d ../../ -o ../../docs

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"institute-portal-backend/internal/api/routes"
	"institute-portal-backend/internal/authz"
	"institute-portal-backend/internal/cache"
	"institute-portal-backend/internal/config"
	"institute-portal-backend/internal/database"
	"institute-portal-backend/internal/logger"
	"institute-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "institute-portal-backend/docs" // This is needed for swag
)

//	@title			Institute Portal Backend API
//	@version		1.0
//	@description	Back office and public portal API of the institute: HR, payroll, procurement, governance, communications, transparency, assets and credentialing.

//	@contact.name	Coordenação de Tecnologia da Informação
//	@contact.email	cti@instituto.gov.br

//	@host		localhost:7008
//	@BasePath	/api

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel, os.Stdout)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	store := newCache(cfg)
	defer store.Close()

	files, err := storage.NewOSFileStore(cfg.StorageRoot, cfg.StorageMaxUploadMB)
	if err != nil {
		logrus.Fatal("Failed to initialize file storage: ", err)
	}

	authorizer, err := authz.NewAuthorizer(cfg.AuthzModelPath, cfg.AuthzPolicyPath)
	if err != nil {
		logrus.Fatal("Failed to load authorization policy: ", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(routes.Dependencies{
		DB:         db,
		Config:     cfg,
		Cache:      store,
		Files:      files,
		Authorizer: authorizer,
	})
	if err != nil {
		logrus.Fatal("Failed to set up routes: ", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logrus.WithField("signal", sig.String()).Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server shutdown failed")
	}
}

// newCache returns the Redis store when configured and reachable, and the
// in-process store otherwise.
func newCache(cfg *config.Config) cache.Store {
	if !cfg.RedisEnabled() {
		logrus.Info("REDIS_ADDR not set, using in-memory cache")
		return cache.NewMemoryStore()
	}
	store, err := cache.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logrus.WithError(err).Warn("Redis unreachable, using in-memory cache")
		return cache.NewMemoryStore()
	}
	return store
}
