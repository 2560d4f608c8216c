package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un ítem de inventario de obra (material, consumible, repuesto).
// CurrentStock es el contador vivo que mutan las transacciones; MAUC es el costo
// promedio móvil usado como costo unitario por defecto al registrar salidas.
type Product struct {
	ID             string
	SKU            string // código único
	Name           string
	Description    string
	Category       string
	UnitOfMeasure  string
	CurrentStock   decimal.Decimal
	MinStockLevel  decimal.Decimal
	MaxStockLevel  decimal.Decimal
	MAUC           decimal.Decimal // moving average unit cost
	Supplier       string
	Location       string
	ImageURL       string
	IsActive       bool
	CreatedBy      string // nombre del usuario (texto plano, no FK)
	CreatedByID    string
	CreatedByEmail string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TotalValue valor del stock actual al costo promedio.
func (p *Product) TotalValue() decimal.Decimal {
	return p.CurrentStock.Mul(p.MAUC)
}

// Estados de stock del catálogo (GET /products).
const (
	StockStatusOutOfStock = "out-of-stock"
	StockStatusLowStock   = "low-stock"
	StockStatusInStock    = "in-stock"
)

// StockStatus clasifica el stock actual contra el nivel mínimo: sin stock,
// bajo el mínimo, o en stock.
func (p *Product) StockStatus() string {
	if p.CurrentStock.Sign() <= 0 {
		return StockStatusOutOfStock
	}
	if p.CurrentStock.LessThanOrEqual(p.MinStockLevel) {
		return StockStatusLowStock
	}
	return StockStatusInStock
}
