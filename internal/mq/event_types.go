package mq

import "time"

// Routing keys.
const (
	RoutingProjectUpdated   = "project.updated"
	RoutingMilestoneOverdue = "milestone.overdue"
)

// ProjectUpdatedPayload is published after every project mutation.
type ProjectUpdatedPayload struct {
	ProjectID string    `json:"project_id"`
	OwnerID   int       `json:"owner_id"`
	Section   string    `json:"section"` // budget, schedule, milestones, ...
	Op        string    `json:"op"`      // create, update, delete
	UpdatedAt time.Time `json:"updated_at"`
}

// MilestoneOverduePayload is published by the worker scanner for each
// milestone past its due date and not completed.
type MilestoneOverduePayload struct {
	ProjectID   string    `json:"project_id"`
	MilestoneID string    `json:"milestone_id"`
	Title       string    `json:"title"`
	DueDate     time.Time `json:"due_date"`
	DetectedAt  time.Time `json:"detected_at"`
}
