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

// ProductUseCase casos de uso CRUD para productos del catálogo. El stock y el
// costo promedio NO se editan por aquí; se mutan únicamente vía transacciones.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. Los numéricos ausentes quedan en cero y el producto
// nace activo salvo indicación contraria.
func (uc *ProductUseCase) Create(ctx context.Context, actorID string, in dto.CreateProductRequest) (*dto.ProductDTO, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.repo.GetBySKU(ctx, in.SKU); err == nil && existing != nil {
		return nil, domain.ErrDuplicate
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		SKU:           in.SKU,
		Name:          in.Name,
		Description:   in.Description,
		Category:      in.Category,
		UnitOfMeasure: in.UnitOfMeasure,
		CurrentStock:  in.CurrentStock,
		MinStockLevel: in.MinStockLevel,
		MaxStockLevel: in.MaxStockLevel,
		MAUC:          in.MAUC,
		Supplier:      in.Supplier,
		Location:      in.Location,
		ImageURL:      in.ImageURL,
		IsActive:      isActive,
		CreatedByID:   actorID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductDTO(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductDTO, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductDTO(product), nil
}

// List lista productos con filtros de catálogo. El filtro de estado de stock
// se aplica acá, después de consultar: es un campo calculado, no una columna.
func (uc *ProductUseCase) List(ctx context.Context, f repository.ProductFilter) ([]dto.ProductDTO, error) {
	f.Limit = dto.ClampLimit(f.Limit, 100)
	status := f.Status
	f.Status = ""
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductDTO, 0, len(list))
	for _, p := range list {
		if status != "" && status != "all" && p.StockStatus() != status {
			continue
		}
		items = append(items, *toProductDTO(p))
	}
	return items, nil
}

// Update actualiza los campos de catálogo de un producto.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductDTO, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Description != "" {
		product.Description = in.Description
	}
	if in.Category != "" {
		product.Category = in.Category
	}
	if in.UnitOfMeasure != "" {
		product.UnitOfMeasure = in.UnitOfMeasure
	}
	if in.MinStockLevel != nil {
		product.MinStockLevel = *in.MinStockLevel
	}
	if in.MaxStockLevel != nil {
		product.MaxStockLevel = *in.MaxStockLevel
	}
	if in.Supplier != "" {
		product.Supplier = in.Supplier
	}
	if in.Location != "" {
		product.Location = in.Location
	}
	if in.ImageURL != "" {
		product.ImageURL = in.ImageURL
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductDTO(product), nil
}

// Deactivate baja lógica del producto; el historial del ledger se conserva.
func (uc *ProductUseCase) Deactivate(ctx context.Context, id string) error {
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.repo.Deactivate(ctx, id)
}

func toProductDTO(p *entity.Product) *dto.ProductDTO {
	return &dto.ProductDTO{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		UnitOfMeasure: p.UnitOfMeasure,
		CurrentStock:  p.CurrentStock,
		MinStockLevel: p.MinStockLevel,
		MaxStockLevel: p.MaxStockLevel,
		MAUC:          p.MAUC,
		TotalValue:    p.TotalValue(),
		StockStatus:   p.StockStatus(),
		Supplier:      p.Supplier,
		Location:      p.Location,
		ImageURL:      p.ImageURL,
		IsActive:      p.IsActive,
		CreatedBy:     p.CreatedBy,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
