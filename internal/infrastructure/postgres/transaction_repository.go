package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/buildtrack/buildtrack-api/internal/domain"
	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
	"github.com/buildtrack/buildtrack-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `t.id, t.transaction_number, t.transaction_type, t.product_id,
	t.quantity, t.unit_cost, t.total_value, t.stock_before, t.stock_after,
	t.project_id, t.project_name, t.done_by, t.done_by_id, t.done_by_email,
	t.reference_number, t.batch_number, t.location_name, t.expiry_date,
	t.reason, t.notes, t.status, t.reversed_by_transaction_id,
	t.transaction_date, t.created_at`

// TransactionRepo implementación del puerto TransactionRepository sobre
// PostgreSQL (usable con pool o tx). El ledger es append-only.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

func scanTransaction(row pgx.Row, tx *entity.StockTransaction) error {
	return row.Scan(
		&tx.ID, &tx.Number, &tx.Type, &tx.ProductID,
		&tx.Quantity, &tx.UnitCost, &tx.TotalValue, &tx.StockBefore, &tx.StockAfter,
		&tx.ProjectID, &tx.ProjectName, &tx.DoneBy, &tx.DoneByID, &tx.DoneByEmail,
		&tx.ReferenceNumber, &tx.BatchNumber, &tx.LocationName, &tx.ExpiryDate,
		&tx.Reason, &tx.Notes, &tx.Status, &tx.ReversedByTransactionID,
		&tx.TransactionDate, &tx.CreatedAt,
	)
}

// Create inserta una entrada del ledger.
func (r *TransactionRepo) Create(ctx context.Context, tx *entity.StockTransaction) error {
	query := `
		INSERT INTO inventory_transactions (
			id, transaction_number, transaction_type, product_id,
			quantity, unit_cost, total_value, stock_before, stock_after,
			project_id, project_name, done_by, done_by_id, done_by_email,
			reference_number, batch_number, location_name, expiry_date,
			reason, notes, status, reversed_by_transaction_id,
			transaction_date, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`
	_, err := r.q.Exec(ctx, query,
		tx.ID, tx.Number, tx.Type, tx.ProductID,
		tx.Quantity, tx.UnitCost, tx.TotalValue, tx.StockBefore, tx.StockAfter,
		tx.ProjectID, tx.ProjectName, tx.DoneBy, tx.DoneByID, tx.DoneByEmail,
		tx.ReferenceNumber, tx.BatchNumber, tx.LocationName, tx.ExpiryDate,
		tx.Reason, tx.Notes, tx.Status, tx.ReversedByTransactionID,
		tx.TransactionDate, tx.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada del ledger por ID.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*entity.StockTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM inventory_transactions t WHERE t.id = $1`
	var tx entity.StockTransaction
	if err := scanTransaction(r.q.QueryRow(ctx, query, id), &tx); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &tx, nil
}

// NextNumber calcula el siguiente número legible del año (TXN-<año>-<secuencia>).
// Debe llamarse dentro de la misma tx que Create. La secuencia es global por
// año y el lock de la fila del producto solo serializa creaciones sobre el
// mismo producto: dos creaciones concurrentes sobre productos distintos pueden
// calcular el mismo consecutivo, igual que el trigger de la base original.
func (r *TransactionRepo) NextNumber(ctx context.Context, year int) (string, error) {
	var seq int
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(MAX(SUBSTRING(transaction_number FROM 10)::int), 0) + 1
		FROM inventory_transactions
		WHERE transaction_number LIKE 'TXN-' || $1::text || '-%'`, year,
	).Scan(&seq)
	if err != nil {
		return "", fmt.Errorf("next transaction number: %w", err)
	}
	return fmt.Sprintf("TXN-%d-%06d", year, seq), nil
}

// List devuelve filas del ledger con los campos de despliegue del producto,
// de la más reciente a la más antigua.
func (r *TransactionRepo) List(ctx context.Context, f repository.TransactionFilter) ([]*entity.TransactionWithDetails, error) {
	query := `
		SELECT ` + transactionColumns + `,
			COALESCE(p.name, ''), COALESCE(p.sku, ''), COALESCE(p.unit_of_measure, '')
		FROM inventory_transactions t
		LEFT JOIN products p ON p.id = t.product_id
		WHERE 1=1`
	args := []any{}
	n := 0
	next := func(v any) string {
		n++
		args = append(args, v)
		return fmt.Sprintf("$%d", n)
	}

	if len(f.Types) > 0 {
		query += ` AND t.transaction_type = ANY(` + next(f.Types) + `)`
	}
	if f.ProductID != "" {
		query += ` AND t.product_id = ` + next(f.ProductID)
	}
	if f.Day != nil {
		query += ` AND t.transaction_date::date = ` + next(f.Day.Format("2006-01-02"))
	}
	if f.Start != nil {
		query += ` AND t.transaction_date >= ` + next(*f.Start)
	}
	if f.End != nil {
		query += ` AND t.transaction_date <= ` + next(*f.End)
	}
	query += ` ORDER BY t.transaction_date DESC, t.created_at DESC`
	if f.Limit > 0 {
		query += ` LIMIT ` + next(f.Limit)
	}
	if f.Offset > 0 {
		query += ` OFFSET ` + next(f.Offset)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	return collectTransactionRows(rows)
}

func collectTransactionRows(rows pgx.Rows) ([]*entity.TransactionWithDetails, error) {
	var list []*entity.TransactionWithDetails
	for rows.Next() {
		var d entity.TransactionWithDetails
		if err := rows.Scan(
			&d.ID, &d.Number, &d.Type, &d.ProductID,
			&d.Quantity, &d.UnitCost, &d.TotalValue, &d.StockBefore, &d.StockAfter,
			&d.ProjectID, &d.ProjectName, &d.DoneBy, &d.DoneByID, &d.DoneByEmail,
			&d.ReferenceNumber, &d.BatchNumber, &d.LocationName, &d.ExpiryDate,
			&d.Reason, &d.Notes, &d.Status, &d.ReversedByTransactionID,
			&d.TransactionDate, &d.CreatedAt,
			&d.ProductName, &d.ProductSKU, &d.ProductUnit,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Stats agregados del ledger para el rango pedido.
func (r *TransactionRepo) Stats(ctx context.Context, start, end *time.Time, productID string) (*entity.TransactionStats, error) {
	where := ` WHERE 1=1`
	args := []any{}
	n := 0
	next := func(v any) string {
		n++
		args = append(args, v)
		return fmt.Sprintf("$%d", n)
	}
	if start != nil {
		where += ` AND transaction_date >= ` + next(*start)
	}
	if end != nil {
		where += ` AND transaction_date <= ` + next(*end)
	}
	if productID != "" {
		where += ` AND product_id = ` + next(productID)
	}

	stats := &entity.TransactionStats{
		ByType:   map[string]int{},
		ByStatus: map[string]int{},
	}
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total_value), 0) FROM inventory_transactions`+where,
		args...,
	).Scan(&stats.TotalTransactions, &stats.TotalValue)
	if err != nil {
		return nil, fmt.Errorf("transaction stats: %w", err)
	}

	rows, err := r.q.Query(ctx,
		`SELECT transaction_type, COUNT(*) FROM inventory_transactions`+where+` GROUP BY transaction_type`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("transaction stats by type: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t string
		var c int
		if err := rows.Scan(&t, &c); err != nil {
			return nil, fmt.Errorf("scan stats by type: %w", err)
		}
		stats.ByType[t] = c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.q.Query(ctx,
		`SELECT status, COUNT(*) FROM inventory_transactions`+where+` GROUP BY status`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("transaction stats by status: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s string
		var c int
		if err := rows.Scan(&s, &c); err != nil {
			return nil, fmt.Errorf("scan stats by status: %w", err)
		}
		stats.ByStatus[s] = c
	}
	return stats, rows.Err()
}

// MarkReversed enlaza la transacción original con su compensatoria.
func (r *TransactionRepo) MarkReversed(ctx context.Context, id, reversedByID string) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE inventory_transactions
		SET status = $2, reversed_by_transaction_id = $3
		WHERE id = $1`,
		id, entity.TransactionStatusReversed, reversedByID,
	)
	if err != nil {
		return fmt.Errorf("mark reversed: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListRecentForFeed lectura tolerante para el feed de actividad: una tabla no
// aprovisionada degrada a domain.ErrSourceUnavailable en vez de fallar el feed.
func (r *TransactionRepo) ListRecentForFeed(ctx context.Context, limit int) ([]*entity.TransactionWithDetails, error) {
	query := `
		SELECT ` + transactionColumns + `,
			COALESCE(p.name, ''), COALESCE(p.sku, ''), COALESCE(p.unit_of_measure, '')
		FROM inventory_transactions t
		LEFT JOIN products p ON p.id = t.product_id
		ORDER BY t.transaction_date DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, domain.ErrSourceUnavailable
		}
		return nil, fmt.Errorf("list recent for feed: %w", err)
	}
	defer rows.Close()
	return collectTransactionRows(rows)
}
