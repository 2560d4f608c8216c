package inventory

import (
	"context"
	"time"

	"github.com/buildtrack/buildtrack-api/internal/application/dto"
	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
	"github.com/buildtrack/buildtrack-api/internal/domain/inventory"
	"github.com/buildtrack/buildtrack-api/internal/domain/repository"
)

// Límite por defecto de los listados del ledger.
const defaultTransactionLimit = 50

// TransactionQuery filtros del GET /transactions, ya parseados por el handler.
type TransactionQuery struct {
	Type      string // canónico o legacy; se normaliza aquí
	ProductID string
	Today     bool
	Date      *time.Time
	Start     *time.Time
	End       *time.Time
	Limit     int
	Offset    int
}

// TransactionQueryUseCase lecturas del ledger de inventario. Opera sobre el
// pool (sin transacción): son consultas de solo lectura.
type TransactionQueryUseCase struct {
	txRepo repository.TransactionRepository
}

// NewTransactionQueryUseCase construye el caso de uso.
func NewTransactionQueryUseCase(txRepo repository.TransactionRepository) *TransactionQueryUseCase {
	return &TransactionQueryUseCase{txRepo: txRepo}
}

// List consulta el ledger con los filtros dados, de la más reciente a la más
// antigua. El límite se acota a MaxListLimit sin importar lo pedido.
func (uc *TransactionQueryUseCase) List(ctx context.Context, q TransactionQuery) ([]dto.TransactionDTO, error) {
	f := repository.TransactionFilter{
		ProductID: q.ProductID,
		Start:     q.Start,
		End:       q.End,
		Limit:     dto.ClampLimit(q.Limit, defaultTransactionLimit),
		Offset:    q.Offset,
	}
	if q.Type != "" {
		if t := inventory.NormalizeType(q.Type); t != "" {
			f.Types = []string{t}
		}
	}
	if q.Today {
		now := time.Now()
		f.Day = &now
	} else if q.Date != nil {
		f.Day = q.Date
	}

	rows, err := uc.txRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return toTransactionDTOs(rows), nil
}

// Recent devuelve las últimas transacciones del ledger.
func (uc *TransactionQueryUseCase) Recent(ctx context.Context, limit int) ([]dto.TransactionDTO, error) {
	return uc.List(ctx, TransactionQuery{Limit: dto.ClampLimit(limit, 10)})
}

// History historial de movimientos de un producto.
func (uc *TransactionQueryUseCase) History(ctx context.Context, productID string, limit int) ([]dto.TransactionDTO, error) {
	return uc.List(ctx, TransactionQuery{ProductID: productID, Limit: limit})
}

// Stats agregados del ledger para el rango indicado.
func (uc *TransactionQueryUseCase) Stats(ctx context.Context, start, end *time.Time, productID string) (*dto.TransactionStatsDTO, error) {
	stats, err := uc.txRepo.Stats(ctx, start, end, productID)
	if err != nil {
		return nil, err
	}
	return &dto.TransactionStatsDTO{
		TotalTransactions: stats.TotalTransactions,
		TotalValue:        stats.TotalValue,
		ByType:            stats.ByType,
		ByStatus:          stats.ByStatus,
	}, nil
}

func toTransactionDTOs(rows []*entity.TransactionWithDetails) []dto.TransactionDTO {
	out := make([]dto.TransactionDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, toTransactionDTO(&r.StockTransaction, r.ProductName, r.ProductSKU, r.ProductUnit))
	}
	return out
}
