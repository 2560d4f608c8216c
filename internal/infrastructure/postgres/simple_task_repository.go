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

var _ repository.SimpleTaskRepository = (*SimpleTaskRepo)(nil)

// SimpleTaskRepo persistencia de tareas simples (checklist) sobre PostgreSQL.
type SimpleTaskRepo struct {
	q Querier
}

// NewSimpleTaskRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSimpleTaskRepository(q Querier) *SimpleTaskRepo {
	return &SimpleTaskRepo{q: q}
}

// ListByProject tareas simples del proyecto, las más recientes primero.
func (r *SimpleTaskRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.SimpleTask, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, project_id, task, created_by, deadline, completed, created_at
		FROM simple_tasks WHERE project_id = $1 ORDER BY created_at DESC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list simple tasks: %w", err)
	}
	defer rows.Close()

	var list []*entity.SimpleTask
	for rows.Next() {
		var t entity.SimpleTask
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Task, &t.CreatedBy, &t.Deadline, &t.Completed, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan simple task: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Create inserta una tarea simple.
func (r *SimpleTaskRepo) Create(ctx context.Context, t *entity.SimpleTask) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO simple_tasks (id, project_id, task, created_by, deadline, completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.ProjectID, t.Task, t.CreatedBy, t.Deadline, t.Completed, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert simple task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea simple por ID.
func (r *SimpleTaskRepo) GetByID(ctx context.Context, id string) (*entity.SimpleTask, error) {
	var t entity.SimpleTask
	err := r.q.QueryRow(ctx, `
		SELECT id, project_id, task, created_by, deadline, completed, created_at
		FROM simple_tasks WHERE id = $1`, id,
	).Scan(&t.ID, &t.ProjectID, &t.Task, &t.CreatedBy, &t.Deadline, &t.Completed, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get simple task: %w", err)
	}
	return &t, nil
}

// Update actualiza texto, deadline y completitud.
func (r *SimpleTaskRepo) Update(ctx context.Context, t *entity.SimpleTask) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE simple_tasks SET task = $2, deadline = $3, completed = $4 WHERE id = $1`,
		t.ID, t.Task, t.Deadline, t.Completed,
	)
	if err != nil {
		return fmt.Errorf("update simple task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una tarea simple.
func (r *SimpleTaskRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM simple_tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete simple task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
