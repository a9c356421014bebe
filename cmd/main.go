package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"warehouse_api/config"
	"warehouse_api/internal/delivery"
	healthgrpc "warehouse_api/internal/delivery/grpc"
	"warehouse_api/internal/repository"
	"warehouse_api/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// --- Configuration ---
	cfg, err := config.LoadConfig(logger)
	if err != nil {
		logger.Fatalf("Failed to process configuration from environment variables: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	gin.SetMode(gin.ReleaseMode)

	logger.Info("Starting Warehouse API...")

	// --- Database Connection ---
	client, err := db.Connect(cfg.MongoURI, cfg.DBTimeout)
	if err != nil {
		logger.Fatalf("FATAL: Failed to create database client: %v", err)
	}
	storeReachable := true
	if err := db.Ping(context.Background(), client, cfg.DBTimeout); err != nil {
		storeReachable = false
		logger.Errorf("Connection error: %v", err)
	} else {
		logger.Info("MongoDB connected")
	}
	database := client.Database(cfg.MongoDatabase)

	// --- Dependency Injection ---
	categoryRepo := repository.NewMongoCategoryRepository(database, logger)
	productRepo := repository.NewMongoProductRepository(database, logger)
	logger.Info("Repositories initialized.")

	categoryHandler := delivery.NewCategoryHandler(categoryRepo, logger)
	productHandler := delivery.NewProductHandler(productRepo, logger)
	logger.Info("Handlers initialized.")

	router := delivery.NewRouter(logger, productHandler, categoryHandler)

	// --- gRPC health ---
	var health *healthgrpc.HealthServer
	if cfg.GrpcPort != "" {
		lis, err := net.Listen("tcp", cfg.GrpcPort)
		if err != nil {
			logger.Fatalf("Failed to listen for gRPC on %s: %v", cfg.GrpcPort, err)
		}
		health = healthgrpc.NewHealthServer(logger)
		health.SetServing(storeReachable)
		go func() {
			if err := health.Serve(lis); err != nil {
				logger.Errorf("gRPC health server stopped: %v", err)
			}
		}()
	}

	// --- Start Server ---
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Infof("Server running on port %s", cfg.Port)
		logger.Infof("Swagger docs available at http://localhost:%s/api-docs", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}
	if health != nil {
		health.Stop()
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.Errorf("Failed to disconnect from MongoDB: %v", err)
	}
	logger.Info("Server exited")
}
