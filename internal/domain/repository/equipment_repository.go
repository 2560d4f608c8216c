package repository

import (
	"context"

	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
)

// EquipmentFilter filtros de listado de equipos.
type EquipmentFilter struct {
	Category string
	Status   string
	Search   string
	Limit    int
}

// EquipmentRepository puerto de persistencia de equipos y su ledger de acciones.
type EquipmentRepository interface {
	Create(ctx context.Context, e *entity.Equipment) error
	GetByID(ctx context.Context, id string) (*entity.Equipment, error)
	List(ctx context.Context, f EquipmentFilter) ([]*entity.Equipment, error)
	UpdateStatus(ctx context.Context, id, status, location string) error
	Search(ctx context.Context, term string, limit int) ([]*entity.Equipment, error)

	CreateTransaction(ctx context.Context, t *entity.EquipmentTransaction) error
	// ListRecentTransactions lectura tolerante para el feed de actividad: una
	// tabla no aprovisionada se reporta como domain.ErrSourceUnavailable.
	ListRecentTransactions(ctx context.Context, limit int) ([]*entity.EquipmentTransactionWithDetails, error)
}
