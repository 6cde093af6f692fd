package model

import "time"

// Milestone statuses.
const (
	MilestoneStatusPending    = "pending"
	MilestoneStatusInProgress = "in-progress"
	MilestoneStatusCompleted  = "completed"
)

type Milestone struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	DueDate       time.Time `json:"due_date"`
	Status        string    `json:"status"` // pending / in-progress / completed
	AssigneeIDs   []string  `json:"assignee_ids"`
	DependsOn     []string  `json:"depends_on"`
	CompletedBy   string    `json:"completed_by,omitempty"`
	CompletedDate time.Time `json:"completed_date,omitempty"`
}

func cloneMilestones(ms []Milestone) []Milestone {
	cp := make([]Milestone, len(ms))
	for i, m := range ms {
		cp[i] = m
		cp[i].AssigneeIDs = append([]string(nil), m.AssigneeIDs...)
		cp[i].DependsOn = append([]string(nil), m.DependsOn...)
	}
	return cp
}
