package mqhandler

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"callsheet/internal/model"
	"callsheet/internal/mq"
	"callsheet/internal/repository"
	"callsheet/internal/util"
)

// MilestoneOverdueHandler writes one in-app notification per overdue
// milestone. The deduper keeps repeated scanner passes from piling up
// duplicate rows.
type MilestoneOverdueHandler struct {
	repo    *repository.NotificationRepository
	deduper *util.Deduper
	logger  *zap.Logger
}

func NewMilestoneOverdueHandler(repo *repository.NotificationRepository, deduper *util.Deduper, logger *zap.Logger) *MilestoneOverdueHandler {
	return &MilestoneOverdueHandler{
		repo:    repo,
		deduper: deduper,
		logger:  logger,
	}
}

func (h *MilestoneOverdueHandler) HandleMilestoneOverdue(ctx context.Context, raw json.RawMessage) error {
	var p mq.MilestoneOverduePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("Failed to unmarshal milestone overdue payload", zap.Error(err))
		return err
	}

	if !h.deduper.AcquireOnce(ctx, "milestone_overdue", p.MilestoneID) {
		return nil
	}

	notif := &model.Notification{
		ProjectID:   p.ProjectID,
		MilestoneID: p.MilestoneID,
		Type:        "milestone_overdue",
		Content:     fmt.Sprintf("Milestone %q was due on %s", p.Title, p.DueDate.Format("2006-01-02")),
	}

	if err := h.repo.Insert(ctx, notif); err != nil {
		h.logger.Error("Failed to insert notification",
			zap.String("project_id", p.ProjectID),
			zap.String("milestone_id", p.MilestoneID),
			zap.Error(err),
		)
		return err
	}

	h.logger.Info("Overdue milestone notification created",
		zap.String("project_id", p.ProjectID),
		zap.String("milestone_id", p.MilestoneID),
	)

	return nil
}
