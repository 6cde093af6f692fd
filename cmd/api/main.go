package main

import (
	"context"

	"go.uber.org/zap"

	"callsheet/internal/config"
	"callsheet/internal/db"
	"callsheet/internal/export"
	"callsheet/internal/handler"
	"callsheet/internal/httpserver"
	"callsheet/internal/mq"
	redisclient "callsheet/internal/redis"
	"callsheet/internal/repository"
	"callsheet/internal/service"
	"callsheet/internal/store"
	applog "callsheet/pkg/logger"
)

func main() {
	// Load config
	cfg := config.Load()

	logger := applog.NewLogger()
	defer logger.Sync()

	// Init DB
	dbConn, err := db.NewConnection(cfg.DB, logger)
	if err != nil {
		logger.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	// Init Redis
	rdb := redisclient.NewRedisClient(cfg.Redis)
	defer rdb.Close()

	// Init RabbitMQ Publisher
	publisher, err := mq.NewPublisher(cfg.MQ.URL)
	if err != nil {
		logger.Fatal("failed to init publisher", zap.Error(err))
	}
	defer publisher.Close()

	// Init Repositories
	userRepo := repository.NewUserRepository(dbConn)
	projectRepo := repository.NewProjectRepository(dbConn)
	notificationRepo := repository.NewNotificationRepository(dbConn)

	// Hydrate the in-memory store from persisted snapshots
	projectStore := store.NewProjectStore()
	snapshots, err := projectRepo.ListAll(context.Background())
	if err != nil {
		logger.Fatal("Failed to hydrate project store", zap.Error(err))
	}
	for _, p := range snapshots {
		projectStore.Put(p)
	}
	logger.Info("Project store hydrated", zap.Int("projects", len(snapshots)))

	// Init Services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret)
	projectService := service.NewProjectService(projectStore, projectRepo, publisher, logger)
	statsService := service.NewStatsService(projectStore, rdb, logger)

	// Init Handlers
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	statsHandler := handler.NewStatsHandler(statsService)
	exportHandler := handler.NewExportHandler(projectService, export.FileSink{Dir: cfg.Export.Dir}, logger)
	notificationHandler := handler.NewNotificationHandler(notificationRepo)

	// Router
	router := httpserver.NewRouter(
		authHandler,
		projectHandler,
		statsHandler,
		exportHandler,
		notificationHandler,
		projectService,
		cfg.JWT.Secret,
		dbConn,
	)

	// Start API server
	if err := router.Run(cfg.Server.Port); err != nil {
		logger.Fatal("server start failed", zap.Error(err))
	}
}
