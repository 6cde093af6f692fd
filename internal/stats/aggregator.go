// Package stats derives the dashboard read model from a project snapshot.
// Compute is a pure function: same project and clock in, same stats out.
package stats

import (
	"time"

	"callsheet/internal/model"
)

// upcomingWindow is how far ahead a milestone due date may lie and still
// count as upcoming.
const upcomingWindow = 14 * 24 * time.Hour

// Compute aggregates a ProductionProject into its dashboard statistics.
// now is injected so time-dependent buckets (overdue, upcoming, onSchedule)
// are deterministic under test.
func Compute(p *model.ProductionProject, now time.Time) *model.ProductionStats {
	return &model.ProductionStats{
		Budget:     budgetStats(p.Budget),
		Schedule:   scheduleStats(p.Schedule, now),
		Tasks:      taskStats(p.Schedule.Phases),
		Milestones: milestoneStats(p.Milestones, now),
		Team:       teamStats(p.Team),
		Equipment:  equipmentStats(p.Equipment.Items),
		Compliance: complianceStats(p.Legal.Checklist),
	}
}

// safeRatio returns num/den, or 0 when den is 0. Every percentage field
// goes through it so empty collections yield 0 instead of NaN.
func safeRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func budgetStats(b model.Budget) model.BudgetStats {
	var spent float64
	for _, e := range b.Expenses {
		if e.Status == model.ExpenseStatusApproved || e.Status == model.ExpenseStatusReimbursed {
			spent += e.Amount
		}
	}
	return model.BudgetStats{
		Total:          b.TotalBudget,
		Spent:          spent,
		Remaining:      b.TotalBudget - spent,
		PercentageUsed: safeRatio(spent, b.TotalBudget) * 100,
	}
}

func scheduleStats(s model.Schedule, now time.Time) model.ScheduleStats {
	total := len(s.ShootingDays)
	completed := 0
	for _, d := range s.ShootingDays {
		if d.Status == model.ShootingDayCompleted {
			completed++
			continue
		}
		if d.Status == model.ShootingDayConfirmed && d.Date.Before(now) {
			completed++
		}
	}

	completedRatio := safeRatio(float64(completed), float64(total))

	// Elapsed-fraction benchmark: the project is on schedule when the share
	// of completed shooting days keeps up with the share of elapsed time
	// between schedule start and end.
	elapsed := now.Sub(s.StartDate).Seconds()
	duration := s.EndDate.Sub(s.StartDate).Seconds()
	expected := safeRatio(elapsed, duration)
	if expected < 0 {
		expected = 0
	}
	if expected > 1 {
		expected = 1
	}

	return model.ScheduleStats{
		TotalDays:          total,
		CompletedDays:      completed,
		RemainingDays:      total - completed,
		PercentageComplete: completedRatio * 100,
		OnSchedule:         completedRatio >= expected,
	}
}

func taskStats(phases []model.Phase) model.TaskStats {
	var ts model.TaskStats
	for _, ph := range phases {
		for _, t := range ph.Tasks {
			ts.Total++
			switch t.Status {
			case model.TaskStatusCompleted:
				ts.Completed++
			case model.TaskStatusInProgress:
				ts.InProgress++
			case model.TaskStatusBlocked:
				ts.Blocked++
			default:
				ts.NotStarted++
			}
		}
	}
	return ts
}

func milestoneStats(ms []model.Milestone, now time.Time) model.MilestoneStats {
	stats := model.MilestoneStats{Total: len(ms)}
	horizon := now.Add(upcomingWindow)
	for _, m := range ms {
		if m.Status == model.MilestoneStatusCompleted {
			stats.Completed++
			continue
		}
		if m.DueDate.Before(now) {
			stats.Overdue++
			continue
		}
		// Due inside the window, boundary inclusive: exactly 14 days out
		// still counts as upcoming.
		if !m.DueDate.After(horizon) {
			stats.Upcoming++
		}
	}
	return stats
}

func teamStats(team []model.TeamMember) model.TeamStats {
	ts := model.TeamStats{
		Total:        len(team),
		ByDepartment: make(map[string]int),
	}
	for _, m := range team {
		ts.ByDepartment[m.Department]++
	}
	return ts
}

func equipmentStats(items []model.EquipmentItem) model.EquipmentStats {
	es := model.EquipmentStats{Total: len(items)}
	for _, it := range items {
		switch it.Status {
		case model.EquipmentAvailable:
			es.Available++
		case model.EquipmentInUse:
			es.InUse++
		case model.EquipmentMaintenance:
			es.Maintenance++
		}
	}
	return es
}

func complianceStats(checklist []model.ChecklistItem) model.ComplianceStats {
	cs := model.ComplianceStats{Total: len(checklist)}
	for _, item := range checklist {
		if item.Completed {
			cs.Completed++
		}
	}
	cs.PercentageComplete = safeRatio(float64(cs.Completed), float64(cs.Total)) * 100
	return cs
}
