package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"callsheet/internal/model"
	"callsheet/internal/stats"
	"callsheet/internal/store"
	"callsheet/pkg/metrics"
)

const statsCacheTTL = 5 * time.Minute

// StatsService computes the dashboard read model. Compute always derives
// from the current project value; the redis entry is a worker-maintained
// convenience cache for dashboard polling, never an input to Compute.
type StatsService struct {
	store  *store.ProjectStore
	rdb    *redis.Client
	logger *zap.Logger
	now    func() time.Time
}

func NewStatsService(st *store.ProjectStore, rdb *redis.Client, logger *zap.Logger) *StatsService {
	return &StatsService{
		store:  st,
		rdb:    rdb,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (s *StatsService) WithClock(now func() time.Time) *StatsService {
	s.now = now
	return s
}

// Compute aggregates the project's dashboard statistics.
func (s *StatsService) Compute(projectID string) (*model.ProductionStats, error) {
	p, err := s.store.Get(projectID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	st := stats.Compute(p, s.now())
	metrics.StatsComputeDuration.Observe(time.Since(start).Seconds())

	return st, nil
}

// RefreshCache recomputes stats and writes them to redis. Called by the
// worker on project.updated events.
func (s *StatsService) RefreshCache(ctx context.Context, projectID string) (*model.ProductionStats, error) {
	st, err := s.Compute(projectID)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(st)
	if err != nil {
		return nil, err
	}

	if err := s.rdb.Set(ctx, statsCacheKey(projectID), data, statsCacheTTL).Err(); err != nil {
		s.logger.Warn("Failed to cache stats",
			zap.String("project_id", projectID),
			zap.Error(err),
		)
	}

	return st, nil
}

// CachedStats returns the last worker-cached stats, or nil when absent.
func (s *StatsService) CachedStats(ctx context.Context, projectID string) (*model.ProductionStats, error) {
	data, err := s.rdb.Get(ctx, statsCacheKey(projectID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var st model.ProductionStats
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("corrupt stats cache for %s: %w", projectID, err)
	}
	return &st, nil
}

func statsCacheKey(projectID string) string {
	return fmt.Sprintf("stats:%s", projectID)
}

// ResolveAssignee maps a team member id to a display name. Missing ids
// resolve to the sentinel "unknown:<id>" instead of the raw id.
func ResolveAssignee(p *model.ProductionProject, id string) string {
	for _, m := range p.Team {
		if m.ID == id {
			return m.Name
		}
	}
	return "unknown:" + id
}
