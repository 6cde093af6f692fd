package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"callsheet/internal/model"
)

type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Insert(ctx context.Context, n *model.Notification) error {
	query := `
        INSERT INTO notifications (project_id, milestone_id, type, content, created_at)
        VALUES ($1, $2, $3, $4, NOW())
        RETURNING id
    `
	return r.db.QueryRow(ctx, query, n.ProjectID, n.MilestoneID, n.Type, n.Content).Scan(&n.ID)
}

// ListByProject returns notifications for a project, newest first.
func (r *NotificationRepository) ListByProject(ctx context.Context, projectID string) ([]model.Notification, error) {
	query := `
        SELECT id, project_id, milestone_id, type, content, created_at
        FROM notifications
        WHERE project_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.ProjectID, &n.MilestoneID, &n.Type, &n.Content, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}
