package repository

import (
	"context"

	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
)

// VendorRepository puerto de persistencia de proveedores.
type VendorRepository interface {
	Create(ctx context.Context, v *entity.Vendor) error
	GetByID(ctx context.Context, id string) (*entity.Vendor, error)
	List(ctx context.Context, status, search string) ([]*entity.Vendor, error)
	Update(ctx context.Context, v *entity.Vendor) error
	Delete(ctx context.Context, id string) error
}
