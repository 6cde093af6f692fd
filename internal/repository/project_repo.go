package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"callsheet/internal/model"
)

// ProjectRepository persists whole project snapshots as JSONB rows. The
// in-memory store stays authoritative; rows exist so the service can
// rehydrate on boot.
type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Save upserts the snapshot for p.ID.
func (r *ProjectRepository) Save(ctx context.Context, p *model.ProductionProject) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	query := `
        INSERT INTO projects (id, owner_id, title, data, updated_at)
        VALUES ($1, $2, $3, $4, NOW())
        ON CONFLICT (id) DO UPDATE
        SET owner_id = EXCLUDED.owner_id,
            title = EXCLUDED.title,
            data = EXCLUDED.data,
            updated_at = NOW()
    `
	_, err = r.db.Exec(ctx, query, p.ID, p.OwnerID, p.Title, data)
	return err
}

// FindByID returns the stored snapshot, or pgx.ErrNoRows.
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*model.ProductionProject, error) {
	query := `SELECT data FROM projects WHERE id = $1`

	var data []byte
	if err := r.db.QueryRow(ctx, query, id).Scan(&data); err != nil {
		return nil, err
	}

	var p model.ProductionProject
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project %s: %w", id, err)
	}
	return &p, nil
}

// ListAll returns every stored snapshot, used to hydrate the in-memory
// store at startup.
func (r *ProjectRepository) ListAll(ctx context.Context) ([]*model.ProductionProject, error) {
	query := `SELECT data FROM projects ORDER BY updated_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.ProductionProject
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var p model.ProductionProject
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal project row: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Delete removes the snapshot row.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return err
}
