package repository

import (
	"context"

	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
)

// APIKeyRepository puerto de persistencia de llaves de integración.
type APIKeyRepository interface {
	Create(ctx context.Context, k *entity.APIKey) error
	List(ctx context.Context) ([]*entity.APIKey, error)
	GetByID(ctx context.Context, id string) (*entity.APIKey, error)
	Revoke(ctx context.Context, id string) error
}
