package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/buildtrack/buildtrack-api/internal/application/dto"
	"github.com/buildtrack/buildtrack-api/internal/domain"
	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
	"github.com/buildtrack/buildtrack-api/internal/domain/repository"
)

// SimpleTaskUseCase CRUD de tareas simples de proyecto (checklist sin numeración).
type SimpleTaskUseCase struct {
	repo        repository.SimpleTaskRepository
	projectRepo repository.ProjectRepository
}

// NewSimpleTaskUseCase construye el caso de uso.
func NewSimpleTaskUseCase(repo repository.SimpleTaskRepository, projectRepo repository.ProjectRepository) *SimpleTaskUseCase {
	return &SimpleTaskUseCase{repo: repo, projectRepo: projectRepo}
}

// ListByProject tareas simples de un proyecto.
func (uc *SimpleTaskUseCase) ListByProject(ctx context.Context, projectID string) ([]dto.SimpleTaskDTO, error) {
	if _, err := uc.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	tasks, err := uc.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SimpleTaskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toSimpleTaskDTO(t))
	}
	return out, nil
}

// Create crea una tarea simple.
func (uc *SimpleTaskUseCase) Create(ctx context.Context, projectID, createdBy string, in dto.SimpleTaskRequest) (*dto.SimpleTaskDTO, error) {
	if in.Task == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	task := &entity.SimpleTask{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Task:      in.Task,
		CreatedBy: createdBy,
		Deadline:  in.Deadline,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	d := toSimpleTaskDTO(task)
	return &d, nil
}

// Update actualiza texto, deadline o el estado de completitud.
func (uc *SimpleTaskUseCase) Update(ctx context.Context, id string, in dto.SimpleTaskRequest) (*dto.SimpleTaskDTO, error) {
	task, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Task != "" {
		task.Task = in.Task
	}
	if in.Deadline != nil {
		task.Deadline = in.Deadline
	}
	if in.Completed != nil {
		task.Completed = *in.Completed
	}
	if err := uc.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	d := toSimpleTaskDTO(task)
	return &d, nil
}

// Delete elimina una tarea simple.
func (uc *SimpleTaskUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func toSimpleTaskDTO(t *entity.SimpleTask) dto.SimpleTaskDTO {
	return dto.SimpleTaskDTO{
		ID:        t.ID,
		ProjectID: t.ProjectID,
		Task:      t.Task,
		CreatedBy: t.CreatedBy,
		Deadline:  t.Deadline,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
	}
}
