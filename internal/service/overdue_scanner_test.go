package service

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"callsheet/internal/model"
	"callsheet/internal/store"
)

func TestScanOnce_PublishesOverdueOnly(t *testing.T) {
	st := store.NewProjectStore()
	st.Put(&model.ProductionProject{
		ID: "p1",
		Milestones: []model.Milestone{
			{ID: "m1", Title: "Rough cut", DueDate: fixedNow.AddDate(0, 0, -2), Status: model.MilestoneStatusPending},
			{ID: "m2", Title: "Fine cut", DueDate: fixedNow.AddDate(0, 0, 2), Status: model.MilestoneStatusPending},
			{ID: "m3", Title: "Teaser", DueDate: fixedNow.AddDate(0, 0, -5), Status: model.MilestoneStatusCompleted},
		},
	})

	pub := &fakePublisher{}
	scanner := NewOverdueScanner(st, pub, time.Minute, zap.NewNop()).
		WithClock(func() time.Time { return fixedNow })

	scanner.ScanOnce()

	if len(pub.events) != 1 || pub.events[0] != "milestone.overdue" {
		t.Errorf("events = %v, want one milestone.overdue", pub.events)
	}

	// A second pass publishes again; dedup happens on the consumer side.
	scanner.ScanOnce()
	if len(pub.events) != 2 {
		t.Errorf("events after second scan = %v", pub.events)
	}
}
