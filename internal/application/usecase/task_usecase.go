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

// TaskUseCase CRUD de tareas numeradas de proyecto. El consecutivo task_number
// se asigna por proyecto al crear y nunca se reusa.
type TaskUseCase struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) *TaskUseCase {
	return &TaskUseCase{taskRepo: taskRepo, projectRepo: projectRepo}
}

// ListByProject tareas de un proyecto.
func (uc *TaskUseCase) ListByProject(ctx context.Context, projectID string) ([]dto.TaskDTO, error) {
	if _, err := uc.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	tasks, err := uc.taskRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskDTO(t))
	}
	return out, nil
}

// Create crea una tarea con el siguiente consecutivo del proyecto.
func (uc *TaskUseCase) Create(ctx context.Context, projectID string, in dto.TaskRequest) (*dto.TaskDTO, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	number, err := uc.taskRepo.NextTaskNumber(ctx, projectID)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = "pending"
	}
	priority := in.Priority
	if priority == "" {
		priority = "medium"
	}
	now := time.Now()
	task := &entity.ProjectTask{
		ID:             uuid.New().String(),
		ProjectID:      projectID,
		TaskNumber:     number,
		Name:           in.Name,
		Description:    in.Description,
		Status:         status,
		Priority:       priority,
		AssignedTo:     in.AssignedTo,
		StartDate:      in.StartDate,
		DueDate:        in.DueDate,
		EstimatedHours: in.EstimatedHours,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	d := toTaskDTO(task)
	return &d, nil
}

// GetByID obtiene una tarea por ID.
func (uc *TaskUseCase) GetByID(ctx context.Context, id string) (*dto.TaskDTO, error) {
	task, err := uc.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := toTaskDTO(task)
	return &d, nil
}

// Update actualiza una tarea. Completarla sin fecha explícita estampa ahora.
func (uc *TaskUseCase) Update(ctx context.Context, id string, in dto.TaskRequest) (*dto.TaskDTO, error) {
	task, err := uc.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		task.Name = in.Name
	}
	if in.Description != "" {
		task.Description = in.Description
	}
	if in.Status != "" {
		task.Status = in.Status
		if in.Status == "completed" && task.CompletedDate == nil && in.CompletedDate == nil {
			now := time.Now()
			task.CompletedDate = &now
		}
	}
	if in.Priority != "" {
		task.Priority = in.Priority
	}
	if in.AssignedTo != "" {
		task.AssignedTo = in.AssignedTo
	}
	if in.StartDate != nil {
		task.StartDate = in.StartDate
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	if in.CompletedDate != nil {
		task.CompletedDate = in.CompletedDate
	}
	if in.EstimatedHours > 0 {
		task.EstimatedHours = in.EstimatedHours
	}
	if in.ActualHours > 0 {
		task.ActualHours = in.ActualHours
	}
	if in.Notes != "" {
		task.Notes = in.Notes
	}
	task.UpdatedAt = time.Now()
	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	d := toTaskDTO(task)
	return &d, nil
}

// Delete elimina una tarea.
func (uc *TaskUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.taskRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.taskRepo.Delete(ctx, id)
}

func toTaskDTO(t *entity.ProjectTask) dto.TaskDTO {
	return dto.TaskDTO{
		ID:             t.ID,
		ProjectID:      t.ProjectID,
		TaskNumber:     t.TaskNumber,
		Name:           t.Name,
		Description:    t.Description,
		Status:         t.Status,
		Priority:       t.Priority,
		AssignedTo:     t.AssignedTo,
		StartDate:      t.StartDate,
		DueDate:        t.DueDate,
		CompletedDate:  t.CompletedDate,
		EstimatedHours: t.EstimatedHours,
		ActualHours:    t.ActualHours,
		Notes:          t.Notes,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
