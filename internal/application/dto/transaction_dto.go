package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest entrada del POST /transactions.
//
// El endpoint acepta los nombres de campo nuevos y los legacy de la UI
// anterior; la precedencia está documentada en Normalize del caso de uso:
// el nombre canónico gana y el legacy es fallback. Los numéricos aceptan
// número o string (decimal.Decimal los coacciona).
type CreateTransactionRequest struct {
	ProductID       string `json:"product_id"`
	LegacyProductID string `json:"productId"` // legacy

	TransactionType string `json:"transaction_type"` // IN | OUT | RETURN | ADJUSTMENT
	LegacyType      string `json:"transactionType"`  // legacy: pull | receive | return

	Quantity decimal.Decimal  `json:"quantity"`
	UnitCost *decimal.Decimal `json:"unit_cost"` // opcional; por defecto el MAUC del producto

	ProjectID       string `json:"project_id"`
	LegacyProjectID string `json:"projectId"` // legacy
	ProjectName     string `json:"project_name"`

	// Campos "done by"; si faltan se llenan con la identidad autenticada.
	DoneBy      string `json:"done_by"`
	DoneByID    string `json:"done_by_id"`
	DoneByEmail string `json:"done_by_email"`

	ReferenceNumber string     `json:"reference_number"`
	BatchNumber     string     `json:"batch_number"`
	LocationName    string     `json:"location_name"`
	ExpiryDate      *time.Time `json:"expiry_date"`
	Reason          string     `json:"reason"`
	Notes           string     `json:"notes"`
}

// TransactionDTO fila del ledger para respuestas.
type TransactionDTO struct {
	ID          string          `json:"id"`
	Number      string          `json:"transaction_number"`
	Type        string          `json:"transaction_type"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	ProductSKU  string          `json:"product_sku,omitempty"`
	ProductUnit string          `json:"product_unit,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	TotalValue  decimal.Decimal `json:"total_value"`
	StockBefore decimal.Decimal `json:"stock_before"`
	StockAfter  decimal.Decimal `json:"stock_after"`
	ProjectID   string          `json:"project_id,omitempty"`
	ProjectName string          `json:"project_name,omitempty"`
	DoneBy      string          `json:"done_by"`
	DoneByEmail string          `json:"done_by_email,omitempty"`
	Reference   string          `json:"reference_number,omitempty"`
	Batch       string          `json:"batch_number,omitempty"`
	Location    string          `json:"location_name,omitempty"`
	Reason      string          `json:"reason,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Status      string          `json:"status"`
	Date        time.Time       `json:"transaction_date"`
}

// CreateTransactionResponse resultado del alta: la transacción creada más la
// confirmación de la actualización de stock.
type CreateTransactionResponse struct {
	Transaction   TransactionDTO  `json:"transaction"`
	StockUpdated  bool            `json:"stock_updated"`
	NewStockLevel decimal.Decimal `json:"new_stock_level"`
}

// TransactionStatsDTO agregados del ledger.
type TransactionStatsDTO struct {
	TotalTransactions int             `json:"total_transactions"`
	TotalValue        decimal.Decimal `json:"total_value"`
	ByType            map[string]int  `json:"by_type"`
	ByStatus          map[string]int  `json:"by_status"`
}
