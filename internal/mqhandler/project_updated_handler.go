package mqhandler

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"callsheet/internal/mq"
	"callsheet/internal/repository"
	"callsheet/internal/service"
	"callsheet/internal/store"
)

// ProjectUpdatedHandler keeps the worker's local project set and the redis
// stats cache in step with the API's writes.
type ProjectUpdatedHandler struct {
	projectRepo  *repository.ProjectRepository
	store        *store.ProjectStore
	statsService *service.StatsService
	logger       *zap.Logger
}

func NewProjectUpdatedHandler(projectRepo *repository.ProjectRepository, st *store.ProjectStore, statsService *service.StatsService, logger *zap.Logger) *ProjectUpdatedHandler {
	return &ProjectUpdatedHandler{
		projectRepo:  projectRepo,
		store:        st,
		statsService: statsService,
		logger:       logger,
	}
}

// HandleProjectUpdated reloads the snapshot from Postgres and refreshes
// the cached stats.
func (h *ProjectUpdatedHandler) HandleProjectUpdated(ctx context.Context, raw json.RawMessage) error {
	var p mq.ProjectUpdatedPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("Failed to unmarshal project updated payload", zap.Error(err))
		return err
	}

	project, err := h.projectRepo.FindByID(ctx, p.ProjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Deleted since the event was published.
			h.store.Delete(p.ProjectID)
			return nil
		}
		return err
	}

	h.store.Put(project)

	if _, err := h.statsService.RefreshCache(ctx, p.ProjectID); err != nil {
		h.logger.Error("Failed to refresh stats cache",
			zap.String("project_id", p.ProjectID),
			zap.Error(err),
		)
		return err
	}

	h.logger.Info("Stats cache refreshed",
		zap.String("project_id", p.ProjectID),
		zap.String("section", p.Section),
		zap.String("op", p.Op),
	)

	return nil
}
