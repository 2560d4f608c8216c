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

var _ repository.TaskRepository = (*TaskRepo)(nil)

const taskColumns = `id, project_id, task_number, name, description, status, priority,
	assigned_to, start_date, due_date, completed_date, estimated_hours, actual_hours,
	notes, created_at, updated_at`

// TaskRepo persistencia de tareas numeradas de proyecto sobre PostgreSQL.
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

func scanTask(row pgx.Row) (*entity.ProjectTask, error) {
	var t entity.ProjectTask
	err := row.Scan(
		&t.ID, &t.ProjectID, &t.TaskNumber, &t.Name, &t.Description, &t.Status,
		&t.Priority, &t.AssignedTo, &t.StartDate, &t.DueDate, &t.CompletedDate,
		&t.EstimatedHours, &t.ActualHours, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	return &t, nil
}

// ListByProject tareas del proyecto ordenadas por consecutivo.
func (r *TaskRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.ProjectTask, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+taskColumns+` FROM project_tasks WHERE project_id = $1 ORDER BY task_number ASC`,
		projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProjectTask
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Create inserta una tarea.
func (r *TaskRepo) Create(ctx context.Context, t *entity.ProjectTask) error {
	query := `
		INSERT INTO project_tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.ProjectID, t.TaskNumber, t.Name, t.Description, t.Status,
		t.Priority, t.AssignedTo, t.StartDate, t.DueDate, t.CompletedDate,
		t.EstimatedHours, t.ActualHours, t.Notes, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID.
func (r *TaskRepo) GetByID(ctx context.Context, id string) (*entity.ProjectTask, error) {
	return scanTask(r.q.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM project_tasks WHERE id = $1`, id))
}

// Update actualiza una tarea.
func (r *TaskRepo) Update(ctx context.Context, t *entity.ProjectTask) error {
	query := `
		UPDATE project_tasks
		SET name = $2, description = $3, status = $4, priority = $5, assigned_to = $6,
			start_date = $7, due_date = $8, completed_date = $9, estimated_hours = $10,
			actual_hours = $11, notes = $12, updated_at = $13
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		t.ID, t.Name, t.Description, t.Status, t.Priority, t.AssignedTo,
		t.StartDate, t.DueDate, t.CompletedDate, t.EstimatedHours,
		t.ActualHours, t.Notes, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una tarea.
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM project_tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// NextTaskNumber siguiente consecutivo dentro del proyecto.
func (r *TaskRepo) NextTaskNumber(ctx context.Context, projectID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(MAX(task_number), 0) + 1 FROM project_tasks WHERE project_id = $1`,
		projectID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next task number: %w", err)
	}
	return n, nil
}

// Search búsqueda seccionada de tareas para la barra global.
func (r *TaskRepo) Search(ctx context.Context, term string, limit int) ([]*entity.ProjectTask, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+taskColumns+` FROM project_tasks
		WHERE name ILIKE $1 OR description ILIKE $1
		ORDER BY created_at DESC LIMIT $2`, "%"+term+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search tasks: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProjectTask
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
