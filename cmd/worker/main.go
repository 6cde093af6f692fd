package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"callsheet/internal/config"
	"callsheet/internal/db"
	"callsheet/internal/mq"
	"callsheet/internal/mqhandler"
	redisclient "callsheet/internal/redis"
	"callsheet/internal/repository"
	"callsheet/internal/service"
	"callsheet/internal/store"
	"callsheet/internal/util"
	applog "callsheet/pkg/logger"
)

const scanInterval = 15 * time.Minute

func main() {
	// Load config
	cfg := config.Load()

	logger := applog.NewLogger()
	defer logger.Sync()

	logger.Info("Starting worker...")

	// Init Redis
	rdb := redisclient.NewRedisClient(cfg.Redis)
	defer rdb.Close()

	deduper := util.NewDeduper(rdb, 24*time.Hour, logger)

	// Init DB
	dbConn, err := db.NewConnection(cfg.DB, logger)
	if err != nil {
		logger.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	// Init Repositories
	projectRepo := repository.NewProjectRepository(dbConn)
	notificationRepo := repository.NewNotificationRepository(dbConn)

	// Hydrate the worker's local project set
	projectStore := store.NewProjectStore()
	snapshots, err := projectRepo.ListAll(context.Background())
	if err != nil {
		logger.Fatal("Failed to hydrate project store", zap.Error(err))
	}
	for _, p := range snapshots {
		projectStore.Put(p)
	}
	logger.Info("Project store hydrated", zap.Int("projects", len(snapshots)))

	statsService := service.NewStatsService(projectStore, rdb, logger)

	// Init MQ publisher for the scanner
	publisher, err := mq.NewPublisher(cfg.MQ.URL)
	if err != nil {
		logger.Fatal("failed to init publisher", zap.Error(err))
	}
	defer publisher.Close()

	// Init Handlers
	updatedHandler := mqhandler.NewProjectUpdatedHandler(projectRepo, projectStore, statsService, logger)
	overdueHandler := mqhandler.NewMilestoneOverdueHandler(notificationRepo, deduper, logger)

	// (1) Consumer for project updates
	consumerUpdated, err := mq.NewConsumer(cfg.MQ.URL, "project.updated.stats.q", mq.RoutingProjectUpdated, logger)
	if err != nil {
		logger.Fatal("failed to init project.updated consumer", zap.Error(err))
	}
	consumerUpdated.SetHandler(updatedHandler.HandleProjectUpdated)
	go func() {
		logger.Info("Starting project.updated consumer")
		if err := consumerUpdated.StartConsuming(); err != nil {
			logger.Fatal("project.updated consumer failed", zap.Error(err))
		}
	}()
	defer consumerUpdated.Close()

	// (2) Consumer for overdue milestones
	consumerOverdue, err := mq.NewConsumer(cfg.MQ.URL, "milestone.overdue.notify.q", mq.RoutingMilestoneOverdue, logger)
	if err != nil {
		logger.Fatal("failed to init milestone.overdue consumer", zap.Error(err))
	}
	consumerOverdue.SetHandler(overdueHandler.HandleMilestoneOverdue)
	go func() {
		logger.Info("Starting milestone.overdue consumer")
		if err := consumerOverdue.StartConsuming(); err != nil {
			logger.Fatal("milestone.overdue consumer failed", zap.Error(err))
		}
	}()
	defer consumerOverdue.Close()

	// (3) Overdue milestone scanner
	scanner := service.NewOverdueScanner(projectStore, publisher, scanInterval, logger)
	logger.Info("Starting overdue scanner", zap.Duration("interval", scanInterval))
	scanner.Run(context.Background())
}
