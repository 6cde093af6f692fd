package model

import "time"

// Notification is an in-app alert produced by the worker, currently only
// for overdue milestones.
type Notification struct {
	ID          int       `json:"id"`
	ProjectID   string    `json:"project_id"`
	MilestoneID string    `json:"milestone_id"`
	Type        string    `json:"type"` // milestone_overdue
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}
