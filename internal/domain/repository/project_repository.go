package repository

import (
	"context"

	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
)

// ProjectRepository puerto de lectura de proyectos (las obras se administran
// desde otro módulo; aquí solo se consultan para asociar y buscar).
type ProjectRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	Search(ctx context.Context, term string, limit int) ([]*entity.Project, error)
}

// TaskRepository puerto de persistencia de tareas numeradas de proyecto.
type TaskRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]*entity.ProjectTask, error)
	Create(ctx context.Context, t *entity.ProjectTask) error
	GetByID(ctx context.Context, id string) (*entity.ProjectTask, error)
	Update(ctx context.Context, t *entity.ProjectTask) error
	Delete(ctx context.Context, id string) error
	// NextTaskNumber siguiente consecutivo dentro del proyecto.
	NextTaskNumber(ctx context.Context, projectID string) (int, error)
	Search(ctx context.Context, term string, limit int) ([]*entity.ProjectTask, error)
}

// SimpleTaskRepository puerto de persistencia de tareas simples (sin numeración).
type SimpleTaskRepository interface {
	ListByProject(ctx context.Context, projectID string) ([]*entity.SimpleTask, error)
	Create(ctx context.Context, t *entity.SimpleTask) error
	GetByID(ctx context.Context, id string) (*entity.SimpleTask, error)
	Update(ctx context.Context, t *entity.SimpleTask) error
	Delete(ctx context.Context, id string) error
}
