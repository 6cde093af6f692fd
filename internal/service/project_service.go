package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"callsheet/internal/model"
	"callsheet/internal/mq"
	"callsheet/internal/store"
	"callsheet/pkg/metrics"
)

// ErrRecordNotFound is returned when a nested record id does not exist in
// its owning collection.
var ErrRecordNotFound = errors.New("record not found")

// SnapshotStore persists whole project snapshots for boot hydration.
type SnapshotStore interface {
	Save(ctx context.Context, p *model.ProductionProject) error
	Delete(ctx context.Context, id string) error
}

// EventPublisher publishes domain events after mutations.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// ProjectService owns all project mutations. Every edit is a pure
// transform over a snapshot: read a copy, change it, swap it back in
// wholesale, then persist and publish.
type ProjectService struct {
	store     *store.ProjectStore
	snapshots SnapshotStore
	publisher EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewProjectService(st *store.ProjectStore, snapshots SnapshotStore, publisher EventPublisher, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		store:     st,
		snapshots: snapshots,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (s *ProjectService) WithClock(now func() time.Time) *ProjectService {
	s.now = now
	return s
}

// CreateProject creates an empty project owned by ownerID.
func (s *ProjectService) CreateProject(ctx context.Context, ownerID int, title, description string) (*model.ProductionProject, error) {
	now := s.now()
	p := &model.ProductionProject{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Status:      "development",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.store.Put(p)

	if err := s.snapshots.Save(ctx, p); err != nil {
		s.logger.Error("Failed to persist project snapshot",
			zap.String("project_id", p.ID),
			zap.Error(err),
		)
		return nil, err
	}

	s.publish(p, "project", "create")
	metrics.ProjectMutationCount.WithLabelValues("project", "create").Inc()

	return p, nil
}

// GetProject returns a snapshot of the project.
func (s *ProjectService) GetProject(id string) (*model.ProductionProject, error) {
	return s.store.Get(id)
}

// ListProjects returns snapshots of the owner's projects.
func (s *ProjectService) ListProjects(ownerID int) []*model.ProductionProject {
	return s.store.ListByOwner(ownerID)
}

// DeleteProject removes the project from the store and its snapshot row.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	if _, err := s.store.Get(id); err != nil {
		return err
	}
	s.store.Delete(id)

	if err := s.snapshots.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete project snapshot",
			zap.String("project_id", id),
			zap.Error(err),
		)
		return err
	}

	metrics.ProjectMutationCount.WithLabelValues("project", "delete").Inc()
	return nil
}

// mutate applies fn to a snapshot of the project and swaps in the result.
// The stored value is only replaced when fn succeeds.
func (s *ProjectService) mutate(ctx context.Context, projectID, section, op string, fn func(*model.ProductionProject) error) (*model.ProductionProject, error) {
	p, err := s.store.Get(projectID)
	if err != nil {
		return nil, err
	}

	if err := fn(p); err != nil {
		return nil, err
	}
	p.UpdatedAt = s.now()

	s.store.Put(p)

	if err := s.snapshots.Save(ctx, p); err != nil {
		s.logger.Error("Failed to persist project snapshot",
			zap.String("project_id", projectID),
			zap.String("section", section),
			zap.Error(err),
		)
		return nil, err
	}

	s.publish(p, section, op)
	metrics.ProjectMutationCount.WithLabelValues(section, op).Inc()

	return p, nil
}

func (s *ProjectService) publish(p *model.ProductionProject, section, op string) {
	payload := mq.ProjectUpdatedPayload{
		ProjectID: p.ID,
		OwnerID:   p.OwnerID,
		Section:   section,
		Op:        op,
		UpdatedAt: p.UpdatedAt,
	}
	if err := s.publisher.Publish(mq.RoutingProjectUpdated, payload); err != nil {
		// The in-memory state and snapshot are already updated; a lost
		// event only delays the worker-side cache refresh.
		s.logger.Warn("Failed to publish project.updated",
			zap.String("project_id", p.ID),
			zap.String("section", section),
			zap.Error(err),
		)
	}
}

// replaceByID swaps the element whose id matches, returning false when absent.
func replaceByID[T any](items []T, id string, idOf func(T) string, repl T) bool {
	for i := range items {
		if idOf(items[i]) == id {
			items[i] = repl
			return true
		}
	}
	return false
}

// removeByID filters out the element whose id matches.
func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	for i := range items {
		if idOf(items[i]) == id {
			return append(items[:i:i], items[i+1:]...), true
		}
	}
	return items, false
}
