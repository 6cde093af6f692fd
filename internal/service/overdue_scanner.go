package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"callsheet/internal/model"
	"callsheet/internal/mq"
	"callsheet/internal/store"
	"callsheet/pkg/metrics"
)

// OverdueScanner periodically walks every project and publishes a
// milestone.overdue event for each milestone past its due date and not
// completed. Runs in the worker against its locally hydrated store.
type OverdueScanner struct {
	store     *store.ProjectStore
	publisher EventPublisher
	logger    *zap.Logger
	interval  time.Duration
	now       func() time.Time
}

func NewOverdueScanner(st *store.ProjectStore, publisher EventPublisher, interval time.Duration, logger *zap.Logger) *OverdueScanner {
	return &OverdueScanner{
		store:     st,
		publisher: publisher,
		logger:    logger,
		interval:  interval,
		now:       time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (s *OverdueScanner) WithClock(now func() time.Time) *OverdueScanner {
	s.now = now
	return s
}

// Run blocks until ctx is done, scanning once per interval.
func (s *OverdueScanner) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.ScanOnce()
		}
	}
}

// ScanOnce performs a single pass over every stored project.
func (s *OverdueScanner) ScanOnce() {
	now := s.now()
	for _, p := range s.store.List() {
		overdue := overdueMilestones(p, now)
		metrics.OverdueMilestones.WithLabelValues(p.ID).Set(float64(len(overdue)))

		for _, m := range overdue {
			payload := mq.MilestoneOverduePayload{
				ProjectID:   p.ID,
				MilestoneID: m.ID,
				Title:       m.Title,
				DueDate:     m.DueDate,
				DetectedAt:  now,
			}
			if err := s.publisher.Publish(mq.RoutingMilestoneOverdue, payload); err != nil {
				s.logger.Error("Failed to publish milestone.overdue",
					zap.String("project_id", p.ID),
					zap.String("milestone_id", m.ID),
					zap.Error(err),
				)
			}
		}
	}
}

func overdueMilestones(p *model.ProductionProject, now time.Time) []model.Milestone {
	var out []model.Milestone
	for _, m := range p.Milestones {
		if m.Status != model.MilestoneStatusCompleted && m.DueDate.Before(now) {
			out = append(out, m)
		}
	}
	return out
}
