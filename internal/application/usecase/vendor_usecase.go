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

// VendorUseCase CRUD de proveedores.
type VendorUseCase struct {
	repo repository.VendorRepository
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(repo repository.VendorRepository) *VendorUseCase {
	return &VendorUseCase{repo: repo}
}

// Create crea un proveedor; nace activo salvo indicación contraria.
func (uc *VendorUseCase) Create(ctx context.Context, in dto.VendorRequest) (*dto.VendorDTO, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = "active"
	}
	now := time.Now()
	v := &entity.Vendor{
		ID:          uuid.New().String(),
		Name:        in.Name,
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		Category:    in.Category,
		Status:      status,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return toVendorDTO(v), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *VendorUseCase) GetByID(ctx context.Context, id string) (*dto.VendorDTO, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toVendorDTO(v), nil
}

// List lista proveedores con filtros opcionales de estado y texto.
func (uc *VendorUseCase) List(ctx context.Context, status, search string) ([]dto.VendorDTO, error) {
	list, err := uc.repo.List(ctx, status, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendorDTO, 0, len(list))
	for _, v := range list {
		out = append(out, *toVendorDTO(v))
	}
	return out, nil
}

// Update actualiza un proveedor.
func (uc *VendorUseCase) Update(ctx context.Context, id string, in dto.VendorRequest) (*dto.VendorDTO, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		v.Name = in.Name
	}
	if in.ContactName != "" {
		v.ContactName = in.ContactName
	}
	if in.Email != "" {
		v.Email = in.Email
	}
	if in.Phone != "" {
		v.Phone = in.Phone
	}
	if in.Category != "" {
		v.Category = in.Category
	}
	if in.Status != "" {
		v.Status = in.Status
	}
	if in.Notes != "" {
		v.Notes = in.Notes
	}
	v.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return toVendorDTO(v), nil
}

// Delete elimina un proveedor.
func (uc *VendorUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func toVendorDTO(v *entity.Vendor) *dto.VendorDTO {
	return &dto.VendorDTO{
		ID:          v.ID,
		Name:        v.Name,
		ContactName: v.ContactName,
		Email:       v.Email,
		Phone:       v.Phone,
		Category:    v.Category,
		Status:      v.Status,
		Notes:       v.Notes,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}
