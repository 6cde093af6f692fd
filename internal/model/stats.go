package model

// ProductionStats is the derived dashboard read model. It is recomputed
// from the current project value on every request and never persisted.
type ProductionStats struct {
	Budget     BudgetStats     `json:"budget"`
	Schedule   ScheduleStats   `json:"schedule"`
	Tasks      TaskStats       `json:"tasks"`
	Milestones MilestoneStats  `json:"milestones"`
	Team       TeamStats       `json:"team"`
	Equipment  EquipmentStats  `json:"equipment"`
	Compliance ComplianceStats `json:"compliance"`
}

type BudgetStats struct {
	Total          float64 `json:"total"`
	Spent          float64 `json:"spent"`
	Remaining      float64 `json:"remaining"`
	PercentageUsed float64 `json:"percentage_used"`
}

type ScheduleStats struct {
	TotalDays          int     `json:"total_days"`
	CompletedDays      int     `json:"completed_days"`
	RemainingDays      int     `json:"remaining_days"`
	PercentageComplete float64 `json:"percentage_complete"`
	OnSchedule         bool    `json:"on_schedule"`
}

type TaskStats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	NotStarted int `json:"not_started"`
	Blocked    int `json:"blocked"`
}

type MilestoneStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Upcoming  int `json:"upcoming"`
	Overdue   int `json:"overdue"`
}

type TeamStats struct {
	Total        int            `json:"total"`
	ByDepartment map[string]int `json:"by_department"`
}

type EquipmentStats struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	InUse       int `json:"in_use"`
	Maintenance int `json:"maintenance"`
}

type ComplianceStats struct {
	Total              int     `json:"total"`
	Completed          int     `json:"completed"`
	PercentageComplete float64 `json:"percentage_complete"`
}
