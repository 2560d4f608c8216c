package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
)

// ProductFilter filtros de listado de productos. Status filtra por el estado
// de stock calculado (in-stock/low-stock/out-of-stock); lo aplica el caso de
// uso después de consultar, no el repositorio.
type ProductFilter struct {
	Category   string
	Location   string
	Status     string
	Search     string
	Limit      int
	OnlyActive bool
}

// StockLevelRow fila del tablero de niveles de stock: producto más la suma de
// salidas (OUT) de los últimos 30 días, calculada en la misma consulta.
type StockLevelRow struct {
	Product    entity.Product
	OutLast30d decimal.Decimal
}

// ProductRepository puerto de persistencia de productos.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	List(ctx context.Context, f ProductFilter) ([]*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	Deactivate(ctx context.Context, id string) error

	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) dentro de la
	// transacción actual; solo tiene sentido con un Querier atado a una tx.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// UpdateStock escribe el contador de stock resultante de una transacción.
	UpdateStock(ctx context.Context, id string, newStock decimal.Decimal) error
	// UpdateStockSettings actualiza niveles y ubicación desde el tablero de operaciones.
	UpdateStockSettings(ctx context.Context, id string, current, min, max decimal.Decimal, location string) error

	// ListStockLevels devuelve productos con su consumo OUT de 30 días para el
	// tablero de niveles de stock.
	ListStockLevels(ctx context.Context, f ProductFilter) ([]StockLevelRow, error)
	// ListBelowMinimum productos activos con stock bajo el mínimo (reposición).
	ListBelowMinimum(ctx context.Context) ([]*entity.Product, error)
	// ListCategories nombres de categoría distintos, ordenados.
	ListCategories(ctx context.Context) ([]string, error)

	Search(ctx context.Context, term string, limit int) ([]*entity.Product, error)
}
