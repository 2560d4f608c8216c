package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/buildtrack/buildtrack-api/internal/domain"
	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
	"github.com/buildtrack/buildtrack-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, name, description, category, unit_of_measure,
	current_stock, min_stock_level, max_stock_level, mauc, supplier, location,
	image_url, is_active, created_by, created_by_id, created_by_email, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.Category, &p.UnitOfMeasure,
		&p.CurrentStock, &p.MinStockLevel, &p.MaxStockLevel, &p.MAUC, &p.Supplier,
		&p.Location, &p.ImageURL, &p.IsActive, &p.CreatedBy, &p.CreatedByID,
		&p.CreatedByEmail, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.SKU, p.Name, p.Description, p.Category, p.UnitOfMeasure,
		p.CurrentStock, p.MinStockLevel, p.MaxStockLevel, p.MAUC, p.Supplier,
		p.Location, p.ImageURL, p.IsActive, p.CreatedBy, p.CreatedByID,
		p.CreatedByEmail, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return scanProduct(r.q.QueryRow(ctx, query, id))
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return scanProduct(r.q.QueryRow(ctx, query, sku))
}

// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) dentro de la transacción actual.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return scanProduct(r.q.QueryRow(ctx, query, id))
}

// List lista productos con filtros de catálogo, los más recientes primero.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	n := 0
	next := func(v any) string {
		n++
		args = append(args, v)
		return fmt.Sprintf("$%d", n)
	}

	if f.OnlyActive {
		query += ` AND is_active = true`
	}
	if f.Category != "" {
		query += ` AND category = ` + next(f.Category)
	}
	if f.Location != "" {
		query += ` AND location = ` + next(f.Location)
	}
	if f.Search != "" {
		p := next("%" + f.Search + "%")
		query += ` AND (name ILIKE ` + p + ` OR sku ILIKE ` + p + ` OR description ILIKE ` + p + `)`
	}
	query += ` ORDER BY created_at DESC`
	if f.Limit > 0 {
		query += ` LIMIT ` + next(f.Limit)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza los campos de catálogo. El stock y el MAUC no se tocan aquí.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, category = $4, unit_of_measure = $5,
			min_stock_level = $6, max_stock_level = $7, supplier = $8, location = $9,
			image_url = $10, is_active = $11, updated_at = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.Category, p.UnitOfMeasure,
		p.MinStockLevel, p.MaxStockLevel, p.Supplier, p.Location,
		p.ImageURL, p.IsActive, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate baja lógica del producto.
func (r *ProductRepo) Deactivate(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock escribe el contador de stock resultante de una transacción.
func (r *ProductRepo) UpdateStock(ctx context.Context, id string, newStock decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET current_stock = $2, updated_at = now() WHERE id = $1`,
		id, newStock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStockSettings actualiza niveles y ubicación desde el tablero de operaciones.
func (r *ProductRepo) UpdateStockSettings(ctx context.Context, id string, current, min, max decimal.Decimal, location string) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE products
		SET current_stock = $2, min_stock_level = $3, max_stock_level = $4,
			location = COALESCE(NULLIF($5, ''), location), updated_at = now()
		WHERE id = $1`,
		id, current, min, max, location,
	)
	if err != nil {
		return fmt.Errorf("update stock settings: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListStockLevels productos activos con la suma de salidas (OUT) de los últimos
// 30 días calculada en la misma consulta.
func (r *ProductRepo) ListStockLevels(ctx context.Context, f repository.ProductFilter) ([]repository.StockLevelRow, error) {
	query := `
		SELECT ` + productColumns + `,
			COALESCE((
				SELECT SUM(t.quantity) FROM inventory_transactions t
				WHERE t.product_id = products.id
				  AND t.transaction_type = 'OUT'
				  AND t.transaction_date >= now() - interval '30 days'
			), 0) AS out_last_30d
		FROM products WHERE is_active = true`
	args := []any{}
	n := 0
	next := func(v any) string {
		n++
		args = append(args, v)
		return fmt.Sprintf("$%d", n)
	}
	if f.Category != "" {
		query += ` AND category = ` + next(f.Category)
	}
	if f.Search != "" {
		p := next("%" + f.Search + "%")
		query += ` AND (name ILIKE ` + p + ` OR sku ILIKE ` + p + `)`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	defer rows.Close()

	var list []repository.StockLevelRow
	for rows.Next() {
		var row repository.StockLevelRow
		p := &row.Product
		if err := rows.Scan(
			&p.ID, &p.SKU, &p.Name, &p.Description, &p.Category, &p.UnitOfMeasure,
			&p.CurrentStock, &p.MinStockLevel, &p.MaxStockLevel, &p.MAUC, &p.Supplier,
			&p.Location, &p.ImageURL, &p.IsActive, &p.CreatedBy, &p.CreatedByID,
			&p.CreatedByEmail, &p.CreatedAt, &p.UpdatedAt,
			&row.OutLast30d,
		); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ListBelowMinimum productos activos con stock bajo el mínimo configurado.
func (r *ProductRepo) ListBelowMinimum(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE is_active = true AND min_stock_level > 0 AND current_stock < min_stock_level
		ORDER BY current_stock / min_stock_level ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list below minimum: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListCategories nombres de categoría distintos, ordenados.
func (r *ProductRepo) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT DISTINCT category FROM products WHERE category <> '' ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var list []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Search búsqueda seccionada de productos activos para la barra global.
func (r *ProductRepo) Search(ctx context.Context, term string, limit int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE is_active = true
		  AND (name ILIKE $1 OR description ILIKE $1 OR sku ILIKE $1)
		ORDER BY name ASC LIMIT $2`
	rows, err := r.q.Query(ctx, query, "%"+term+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
