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

// Estado resultante de cada acción del ledger de equipos.
var equipmentActionStatus = map[string]string{
	entity.EquipmentActionAssignProject: entity.EquipmentStatusInUse,
	entity.EquipmentActionAssignPerson:  entity.EquipmentStatusInUse,
	entity.EquipmentActionMaintenance:   entity.EquipmentStatusMaintenance,
	entity.EquipmentActionCheckIn:       entity.EquipmentStatusAvailable,
}

// EquipmentUseCase administración de equipos y su ledger de acciones
// (asignación a obra o persona, mantenimiento, devolución).
type EquipmentUseCase struct {
	repo        repository.EquipmentRepository
	projectRepo repository.ProjectRepository
}

// NewEquipmentUseCase construye el caso de uso.
func NewEquipmentUseCase(repo repository.EquipmentRepository, projectRepo repository.ProjectRepository) *EquipmentUseCase {
	return &EquipmentUseCase{repo: repo, projectRepo: projectRepo}
}

// Create registra un equipo; nace disponible.
func (uc *EquipmentUseCase) Create(ctx context.Context, in dto.CreateEquipmentRequest) (*dto.EquipmentDTO, error) {
	if in.Name == "" || in.EquipmentNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	eq := &entity.Equipment{
		ID:              uuid.New().String(),
		EquipmentNumber: in.EquipmentNumber,
		Name:            in.Name,
		Category:        in.Category,
		Model:           in.Model,
		SerialNumber:    in.SerialNumber,
		Status:          entity.EquipmentStatusAvailable,
		Location:        in.Location,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, eq); err != nil {
		return nil, err
	}
	return toEquipmentDTO(eq), nil
}

// GetByID obtiene un equipo por ID.
func (uc *EquipmentUseCase) GetByID(ctx context.Context, id string) (*dto.EquipmentDTO, error) {
	eq, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEquipmentDTO(eq), nil
}

// List lista equipos con filtros.
func (uc *EquipmentUseCase) List(ctx context.Context, f repository.EquipmentFilter) ([]dto.EquipmentDTO, error) {
	f.Limit = dto.ClampLimit(f.Limit, 100)
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EquipmentDTO, 0, len(list))
	for _, eq := range list {
		out = append(out, *toEquipmentDTO(eq))
	}
	return out, nil
}

// Act ejecuta una acción sobre el equipo: muta su estado y deja la entrada
// correspondiente en el ledger. assign_to_project exige un proyecto válido;
// assign_to_person exige el nombre de la persona.
func (uc *EquipmentUseCase) Act(ctx context.Context, equipmentID, doneBy string, in dto.EquipmentActionRequest) (*dto.EquipmentDTO, error) {
	newStatus, ok := equipmentActionStatus[in.Action]
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	switch in.Action {
	case entity.EquipmentActionAssignProject:
		if in.ProjectID == "" {
			return nil, domain.ErrInvalidInput
		}
		if _, err := uc.projectRepo.GetByID(ctx, in.ProjectID); err != nil {
			return nil, err
		}
	case entity.EquipmentActionAssignPerson:
		if in.PersonName == "" {
			return nil, domain.ErrInvalidInput
		}
	}

	eq, err := uc.repo.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	tx := &entity.EquipmentTransaction{
		ID:                 uuid.New().String(),
		EquipmentID:        eq.ID,
		Action:             in.Action,
		ProjectID:          in.ProjectID,
		PersonName:         in.PersonName,
		ExpectedReturnDate: in.ExpectedReturnDate,
		Notes:              in.Notes,
		DoneBy:             doneBy,
		CreatedAt:          time.Now(),
	}
	if err := uc.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateStatus(ctx, eq.ID, newStatus, eq.Location); err != nil {
		return nil, err
	}
	eq.Status = newStatus
	return toEquipmentDTO(eq), nil
}

func toEquipmentDTO(e *entity.Equipment) *dto.EquipmentDTO {
	return &dto.EquipmentDTO{
		ID:              e.ID,
		EquipmentNumber: e.EquipmentNumber,
		Name:            e.Name,
		Category:        e.Category,
		Model:           e.Model,
		SerialNumber:    e.SerialNumber,
		Status:          e.Status,
		Location:        e.Location,
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
