package repository

import (
	"context"
	"time"

	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
)

// TransactionFilter filtros de lectura del ledger de inventario.
type TransactionFilter struct {
	Types     []string
	ProductID string
	// Day filtra al día calendario indicado (filtros `today` y `date` del API).
	Day    *time.Time
	Start  *time.Time
	End    *time.Time
	Limit  int
	Offset int
}

// TransactionRepository puerto de persistencia del ledger de inventario.
// El ledger es append-only: no existe Update salvo el marcado de reverso.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.StockTransaction) error
	GetByID(ctx context.Context, id string) (*entity.StockTransaction, error)

	// NextNumber calcula el siguiente número legible de transacción del año
	// (TXN-<año>-<secuencia>); debe llamarse dentro de la misma tx que Create.
	NextNumber(ctx context.Context, year int) (string, error)

	// List devuelve filas del ledger con campos de despliegue de producto y
	// proyecto, ordenadas de la más reciente a la más antigua.
	List(ctx context.Context, f TransactionFilter) ([]*entity.TransactionWithDetails, error)

	Stats(ctx context.Context, start, end *time.Time, productID string) (*entity.TransactionStats, error)

	// MarkReversed enlaza la transacción original con su compensatoria.
	MarkReversed(ctx context.Context, id, reversedByID string) error

	// ListRecentForFeed lectura tolerante para el feed de actividad: una tabla
	// no aprovisionada se reporta como domain.ErrSourceUnavailable.
	ListRecentForFeed(ctx context.Context, limit int) ([]*entity.TransactionWithDetails, error)
}
