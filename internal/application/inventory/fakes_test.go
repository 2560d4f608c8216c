package inventory_test

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/buildtrack/buildtrack-api/internal/domain"
	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
	"github.com/buildtrack/buildtrack-api/internal/domain/repository"
)

// Fakes en memoria para los casos de uso del motor de inventario. Embeben la
// interfaz del puerto para no implementar los métodos que el test no ejercita.

type fakeProductRepo struct {
	repository.ProductRepository
	products   map[string]*entity.Product
	stockRows  []repository.StockLevelRow
	categories []string
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) UpdateStock(_ context.Context, id string, newStock decimal.Decimal) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = newStock
	p.UpdatedAt = time.Now()
	return nil
}

func (r *fakeProductRepo) UpdateStockSettings(_ context.Context, id string, current, min, max decimal.Decimal, location string) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = current
	p.MinStockLevel = min
	p.MaxStockLevel = max
	p.Location = location
	return nil
}

func (r *fakeProductRepo) ListStockLevels(_ context.Context, _ repository.ProductFilter) ([]repository.StockLevelRow, error) {
	return r.stockRows, nil
}

func (r *fakeProductRepo) ListBelowMinimum(_ context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.CurrentStock.LessThan(p.MinStockLevel) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListCategories(_ context.Context) ([]string, error) {
	return r.categories, nil
}

type fakeTransactionRepo struct {
	repository.TransactionRepository
	rows       []*entity.StockTransaction
	lastFilter repository.TransactionFilter
}

func (r *fakeTransactionRepo) Create(_ context.Context, tx *entity.StockTransaction) error {
	r.rows = append(r.rows, tx)
	return nil
}

func (r *fakeTransactionRepo) GetByID(_ context.Context, id string) (*entity.StockTransaction, error) {
	for _, tx := range r.rows {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeTransactionRepo) NextNumber(_ context.Context, year int) (string, error) {
	return fmt.Sprintf("TXN-%d-%06d", year, len(r.rows)+1), nil
}

func (r *fakeTransactionRepo) MarkReversed(_ context.Context, id, reversedByID string) error {
	for _, tx := range r.rows {
		if tx.ID == id {
			tx.Status = entity.TransactionStatusReversed
			tx.ReversedByTransactionID = reversedByID
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeTransactionRepo) List(_ context.Context, f repository.TransactionFilter) ([]*entity.TransactionWithDetails, error) {
	r.lastFilter = f
	out := make([]*entity.TransactionWithDetails, 0, len(r.rows))
	// De la más reciente a la más antigua, como el repositorio real.
	for i := len(r.rows) - 1; i >= 0; i-- {
		out = append(out, &entity.TransactionWithDetails{StockTransaction: *r.rows[i]})
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback directo sobre los fakes, sin transacción.
// El caso de uso valida antes de escribir, así que el "rollback" se verifica
// comprobando que los fakes quedaron intactos tras un error.
type fakeTxRunner struct {
	txRepo      *fakeTransactionRepo
	productRepo *fakeProductRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	txRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(r.txRepo, r.productRepo)
}
