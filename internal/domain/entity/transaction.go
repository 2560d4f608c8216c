package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de inventario.
const (
	TransactionTypeIN         = "IN"         // entrada, suma stock
	TransactionTypeOUT        = "OUT"        // salida, resta stock
	TransactionTypeRETURN     = "RETURN"     // devolución, suma stock
	TransactionTypeADJUSTMENT = "ADJUSTMENT" // ajuste con signo
)

// Estados de una transacción. El ledger es append-only: una corrección se hace
// insertando una transacción compensatoria, nunca editando la original.
const (
	TransactionStatusCompleted = "completed"
	TransactionStatusReversed  = "reversed"
)

// StockTransaction es una entrada inmutable del ledger de inventario.
type StockTransaction struct {
	ID     string
	Number string // número legible, ej. TXN-2024-000123
	Type   string

	ProductID  string
	Quantity   decimal.Decimal // siempre positiva; el tipo define el signo del efecto
	UnitCost   decimal.Decimal
	TotalValue decimal.Decimal

	// Snapshot del nivel de stock alrededor de la transacción.
	StockBefore decimal.Decimal
	StockAfter  decimal.Decimal

	// Proyecto asociado (opcional); el nombre es snapshot al momento de la transacción.
	ProjectID   string
	ProjectName string

	// Quién ejecutó la transacción (texto plano capturado del proveedor de identidad).
	DoneBy      string
	DoneByID    string
	DoneByEmail string

	ReferenceNumber string
	BatchNumber     string
	LocationName    string
	ExpiryDate      *time.Time
	Reason          string
	Notes           string

	Status                  string
	ReversedByTransactionID string

	TransactionDate time.Time
	CreatedAt       time.Time
}

// TransactionWithDetails fila del ledger enriquecida con campos de despliegue
// del producto y proyecto (para listados).
type TransactionWithDetails struct {
	StockTransaction
	ProductName string
	ProductSKU  string
	ProductUnit string
}

// TransactionStats agregados del ledger para reportes.
type TransactionStats struct {
	TotalTransactions int
	TotalValue        decimal.Decimal
	ByType            map[string]int
	ByStatus          map[string]int
}
