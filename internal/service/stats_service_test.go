package service

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"callsheet/internal/model"
	"callsheet/internal/store"
)

func TestStatsService_Compute(t *testing.T) {
	st := store.NewProjectStore()
	st.Put(&model.ProductionProject{
		ID: "p1",
		Budget: model.Budget{
			TotalBudget: 1000,
			Expenses:    []model.Expense{{Amount: 400, Status: model.ExpenseStatusApproved}},
		},
	})

	svc := NewStatsService(st, nil, zap.NewNop()).
		WithClock(func() time.Time { return fixedNow })

	got, err := svc.Compute("p1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Budget.PercentageUsed != 40 {
		t.Errorf("PercentageUsed = %v, want 40", got.Budget.PercentageUsed)
	}

	if _, err := svc.Compute("missing"); err == nil {
		t.Error("expected error for missing project")
	}
}

func TestResolveAssignee(t *testing.T) {
	p := &model.ProductionProject{
		Team: []model.TeamMember{{ID: "m1", Name: "Ana"}},
	}
	if got := ResolveAssignee(p, "m1"); got != "Ana" {
		t.Errorf("ResolveAssignee(m1) = %q, want Ana", got)
	}
	if got := ResolveAssignee(p, "ghost"); got != "unknown:ghost" {
		t.Errorf("ResolveAssignee(ghost) = %q, want unknown:ghost", got)
	}
}
