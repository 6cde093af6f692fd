package stats

import (
	"math"
	"reflect"
	"testing"
	"time"

	"callsheet/internal/model"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return now.Add(time.Duration(offset) * 24 * time.Hour)
}

func TestBudget_SpentCountsOnlyApprovedAndReimbursed(t *testing.T) {
	p := &model.ProductionProject{
		Budget: model.Budget{
			TotalBudget: 1000,
			Expenses: []model.Expense{
				{Amount: 100, Status: model.ExpenseStatusApproved},
				{Amount: 50, Status: model.ExpenseStatusReimbursed},
				{Amount: 400, Status: model.ExpenseStatusPending},
				{Amount: 300, Status: model.ExpenseStatusRejected},
			},
		},
	}
	got := Compute(p, now).Budget
	if got.Spent != 150 {
		t.Errorf("Spent = %v, want 150", got.Spent)
	}
	if got.Remaining != 850 {
		t.Errorf("Remaining = %v, want 850", got.Remaining)
	}
	if got.PercentageUsed != 15 {
		t.Errorf("PercentageUsed = %v, want 15", got.PercentageUsed)
	}
}

func TestBudget_ZeroTotalYieldsZeroPercent(t *testing.T) {
	p := &model.ProductionProject{
		Budget: model.Budget{
			TotalBudget: 0,
			Expenses:    []model.Expense{{Amount: 100, Status: model.ExpenseStatusApproved}},
		},
	}
	got := Compute(p, now).Budget
	if math.IsNaN(got.PercentageUsed) || math.IsInf(got.PercentageUsed, 0) {
		t.Fatalf("PercentageUsed = %v, want a finite number", got.PercentageUsed)
	}
	if got.PercentageUsed != 0 {
		t.Errorf("PercentageUsed = %v, want 0", got.PercentageUsed)
	}
}

func TestSchedule_EmptyShootingDays(t *testing.T) {
	p := &model.ProductionProject{}
	got := Compute(p, now).Schedule
	if got.PercentageComplete != 0 {
		t.Errorf("PercentageComplete = %v, want 0", got.PercentageComplete)
	}
	if got.RemainingDays != 0 {
		t.Errorf("RemainingDays = %d, want 0", got.RemainingDays)
	}
}

func TestSchedule_ConfirmedPastDaysCountAsCompleted(t *testing.T) {
	p := &model.ProductionProject{
		Schedule: model.Schedule{
			StartDate: day(-10),
			EndDate:   day(10),
			ShootingDays: []model.ShootingDay{
				{Date: day(-5), Status: model.ShootingDayCompleted},
				{Date: day(-3), Status: model.ShootingDayConfirmed}, // past, counts
				{Date: day(3), Status: model.ShootingDayConfirmed},  // future, does not
				{Date: day(5), Status: model.ShootingDayPlanned},
			},
		},
	}
	got := Compute(p, now).Schedule
	if got.CompletedDays != 2 {
		t.Errorf("CompletedDays = %d, want 2", got.CompletedDays)
	}
	if got.RemainingDays != 2 {
		t.Errorf("RemainingDays = %d, want 2", got.RemainingDays)
	}
	if got.PercentageComplete != 50 {
		t.Errorf("PercentageComplete = %v, want 50", got.PercentageComplete)
	}
	// Halfway through the window with half the days done.
	if !got.OnSchedule {
		t.Error("OnSchedule = false, want true")
	}
}

func TestSchedule_BehindTheBenchmark(t *testing.T) {
	p := &model.ProductionProject{
		Schedule: model.Schedule{
			StartDate: day(-9),
			EndDate:   day(1),
			ShootingDays: []model.ShootingDay{
				{Date: day(-8), Status: model.ShootingDayCompleted},
				{Date: day(-6), Status: model.ShootingDayPlanned},
				{Date: day(-4), Status: model.ShootingDayPlanned},
				{Date: day(-2), Status: model.ShootingDayPlanned},
			},
		},
	}
	got := Compute(p, now).Schedule
	// 90% of the window elapsed but only 25% of days shot.
	if got.OnSchedule {
		t.Error("OnSchedule = true, want false")
	}
}

func TestTasks_FlattenedAcrossPhases(t *testing.T) {
	p := &model.ProductionProject{
		Schedule: model.Schedule{
			Phases: []model.Phase{
				{Tasks: []model.Task{
					{Status: model.TaskStatusCompleted},
					{Status: model.TaskStatusInProgress},
				}},
				{Tasks: []model.Task{
					{Status: model.TaskStatusNotStarted},
					{Status: model.TaskStatusBlocked},
					{Status: model.TaskStatusCompleted},
				}},
			},
		},
	}
	got := Compute(p, now).Tasks
	want := model.TaskStats{Total: 5, Completed: 2, InProgress: 1, NotStarted: 1, Blocked: 1}
	if got != want {
		t.Errorf("Tasks = %+v, want %+v", got, want)
	}
}

func TestMilestones_WindowBoundaries(t *testing.T) {
	p := &model.ProductionProject{
		Milestones: []model.Milestone{
			{DueDate: day(14), Status: model.MilestoneStatusPending},    // exactly 14d: upcoming
			{DueDate: day(-1), Status: model.MilestoneStatusInProgress}, // overdue
			{DueDate: day(-1), Status: model.MilestoneStatusCompleted},  // completed, never overdue
			{DueDate: day(30), Status: model.MilestoneStatusPending},    // beyond window
		},
	}
	got := Compute(p, now).Milestones
	want := model.MilestoneStats{Total: 4, Completed: 1, Upcoming: 1, Overdue: 1}
	if got != want {
		t.Errorf("Milestones = %+v, want %+v", got, want)
	}
}

func TestTeam_ByDepartment(t *testing.T) {
	p := &model.ProductionProject{
		Team: []model.TeamMember{
			{Department: "Camera"},
			{Department: "Camera"},
			{Department: "Sound"},
		},
	}
	got := Compute(p, now).Team
	if got.Total != 3 {
		t.Errorf("Total = %d, want 3", got.Total)
	}
	want := map[string]int{"Camera": 2, "Sound": 1}
	if !reflect.DeepEqual(got.ByDepartment, want) {
		t.Errorf("ByDepartment = %v, want %v", got.ByDepartment, want)
	}
}

func TestEquipment_StatusCounts(t *testing.T) {
	p := &model.ProductionProject{
		Equipment: model.Equipment{
			Items: []model.EquipmentItem{
				{Status: model.EquipmentAvailable},
				{Status: model.EquipmentInUse},
				{Status: model.EquipmentInUse},
			},
		},
	}
	got := Compute(p, now).Equipment
	want := model.EquipmentStats{Total: 3, Available: 1, InUse: 2, Maintenance: 0}
	if got != want {
		t.Errorf("Equipment = %+v, want %+v", got, want)
	}
}

func TestCompliance_ZeroGuard(t *testing.T) {
	p := &model.ProductionProject{}
	got := Compute(p, now).Compliance
	if got.PercentageComplete != 0 {
		t.Errorf("PercentageComplete = %v, want 0", got.PercentageComplete)
	}

	p.Legal.Checklist = []model.ChecklistItem{
		{Completed: true},
		{Completed: true},
		{Completed: false},
		{Completed: false},
	}
	got = Compute(p, now).Compliance
	if got.Completed != 2 || got.Total != 4 {
		t.Errorf("Completed/Total = %d/%d, want 2/4", got.Completed, got.Total)
	}
	if got.PercentageComplete != 50 {
		t.Errorf("PercentageComplete = %v, want 50", got.PercentageComplete)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	p := &model.ProductionProject{
		Budget: model.Budget{
			TotalBudget: 500,
			Expenses:    []model.Expense{{Amount: 100, Status: model.ExpenseStatusApproved}},
		},
		Milestones: []model.Milestone{{DueDate: day(3), Status: model.MilestoneStatusPending}},
		Team:       []model.TeamMember{{Department: "Camera"}},
	}
	first := Compute(p, now)
	second := Compute(p, now)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Compute differs:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}

func TestSafeRatio(t *testing.T) {
	if got := safeRatio(1, 0); got != 0 {
		t.Errorf("safeRatio(1, 0) = %v, want 0", got)
	}
	if got := safeRatio(1, 4); got != 0.25 {
		t.Errorf("safeRatio(1, 4) = %v, want 0.25", got)
	}
}
