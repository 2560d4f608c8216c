package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevelDTO fila del tablero de niveles de stock.
type StockLevelDTO struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Category     string          `json:"category"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinLevel     decimal.Decimal `json:"min_level"`
	MaxLevel     decimal.Decimal `json:"max_level"` // nivel efectivo (2x min o 100 si no hay configuración)
	Unit         string          `json:"unit"`
	Value        decimal.Decimal `json:"value"`
	Location     string          `json:"location"`
	Supplier     string          `json:"supplier"`
	Status       string          `json:"status"` // critical | low | good | normal
	AverageUsage decimal.Decimal `json:"average_usage"`
	LastUpdated  time.Time       `json:"last_updated"`
}

// StockLevelsResponse respuesta del tablero: filas más el catálogo de categorías.
type StockLevelsResponse struct {
	Items      []StockLevelDTO `json:"items"`
	Categories []string        `json:"categories"`
}

// UpdateStockSettingsRequest entrada del POST /operations/stock-levels.
type UpdateStockSettingsRequest struct {
	ProductID    string          `json:"product_id"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinLevel     decimal.Decimal `json:"min_level"`
	MaxLevel     decimal.Decimal `json:"max_level"`
	Location     string          `json:"location"`
}

// ReorderSuggestionDTO producto bajo mínimo con cantidad sugerida de pedido.
type ReorderSuggestionDTO struct {
	ProductID         string          `json:"product_id"`
	ProductName       string          `json:"product_name"`
	SKU               string          `json:"sku"`
	CurrentStock      decimal.Decimal `json:"current_stock"`
	MinStockLevel     decimal.Decimal `json:"min_stock_level"`
	MaxStockLevel     decimal.Decimal `json:"max_stock_level"`
	SuggestedQuantity decimal.Decimal `json:"suggested_order_quantity"`
	Supplier          string          `json:"supplier,omitempty"`
}
