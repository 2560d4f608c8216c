package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/buildtrack/buildtrack-api/internal/domain"
	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
	"github.com/buildtrack/buildtrack-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo lectura de proyectos sobre PostgreSQL.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

// GetByID obtiene un proyecto por ID.
func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	var p entity.Project
	err := r.q.QueryRow(ctx, `
		SELECT id, job_number, name, description, status, created_at, updated_at
		FROM projects WHERE id = $1`, id,
	).Scan(&p.ID, &p.JobNumber, &p.Name, &p.Description, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// Search búsqueda seccionada de proyectos para la barra global.
func (r *ProjectRepo) Search(ctx context.Context, term string, limit int) ([]*entity.Project, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, job_number, name, description, status, created_at, updated_at
		FROM projects
		WHERE name ILIKE $1 OR job_number ILIKE $1 OR description ILIKE $1
		ORDER BY name ASC LIMIT $2`, "%"+term+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search projects: %w", err)
	}
	defer rows.Close()

	var list []*entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.JobNumber, &p.Name, &p.Description, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
