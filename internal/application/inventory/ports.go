package inventory

import (
	"context"

	"github.com/buildtrack/buildtrack-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre el ledger y el
// contador de stock del producto.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txRepo repository.TransactionRepository,
		productRepo repository.ProductRepository,
	) error) error
}
