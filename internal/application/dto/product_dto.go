package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada del POST /products.
// Los numéricos ausentes toman defaults laxos (stock y niveles en cero);
// comportamiento heredado del producto y documentado como contrato.
type CreateProductRequest struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	UnitOfMeasure string          `json:"unit_of_measure"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	MaxStockLevel decimal.Decimal `json:"max_stock_level"`
	MAUC          decimal.Decimal `json:"mauc"`
	Supplier      string          `json:"supplier"`
	Location      string          `json:"location"`
	ImageURL      string          `json:"image_url"`
	IsActive      *bool           `json:"is_active"` // default true
}

// UpdateProductRequest entrada del PUT /products/:id. El stock NO se edita por
// aquí; se muta únicamente vía transacciones. Los niveles son punteros para
// distinguir "no enviado" de un cero explícito.
type UpdateProductRequest struct {
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	UnitOfMeasure string           `json:"unit_of_measure"`
	MinStockLevel *decimal.Decimal `json:"min_stock_level"`
	MaxStockLevel *decimal.Decimal `json:"max_stock_level"`
	Supplier      string           `json:"supplier"`
	Location      string           `json:"location"`
	ImageURL      string           `json:"image_url"`
	IsActive      *bool            `json:"is_active"`
}

// ProductDTO producto para respuestas.
type ProductDTO struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Category      string          `json:"category"`
	UnitOfMeasure string          `json:"unit_of_measure"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	MaxStockLevel decimal.Decimal `json:"max_stock_level"`
	MAUC          decimal.Decimal `json:"mauc"`
	TotalValue    decimal.Decimal `json:"total_value"`
	Supplier      string          `json:"supplier,omitempty"`
	Location      string          `json:"location,omitempty"`
	ImageURL      string          `json:"image_url,omitempty"`
	StockStatus   string          `json:"stock_status"`
	IsActive      bool            `json:"is_active"`
	CreatedBy     string          `json:"created_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
