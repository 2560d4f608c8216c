package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/buildtrack/buildtrack-api/internal/domain"
	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
	"github.com/buildtrack/buildtrack-api/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

const vendorColumns = `id, name, contact_name, email, phone, category, status, notes, created_at, updated_at`

// VendorRepo persistencia de proveedores sobre PostgreSQL.
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

func scanVendor(row pgx.Row) (*entity.Vendor, error) {
	var v entity.Vendor
	err := row.Scan(
		&v.ID, &v.Name, &v.ContactName, &v.Email, &v.Phone,
		&v.Category, &v.Status, &v.Notes, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan vendor: %w", err)
	}
	return &v, nil
}

// Create inserta un proveedor.
func (r *VendorRepo) Create(ctx context.Context, v *entity.Vendor) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO vendors (`+vendorColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		v.ID, v.Name, v.ContactName, v.Email, v.Phone,
		v.Category, v.Status, v.Notes, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *VendorRepo) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	return scanVendor(r.q.QueryRow(ctx,
		`SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id))
}

// List lista proveedores con filtros opcionales.
func (r *VendorRepo) List(ctx context.Context, status, search string) ([]*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE 1=1`
	args := []any{}
	n := 0
	next := func(v any) string {
		n++
		args = append(args, v)
		return fmt.Sprintf("$%d", n)
	}
	if status != "" {
		query += ` AND status = ` + next(status)
	}
	if search != "" {
		p := next("%" + search + "%")
		query += ` AND (name ILIKE ` + p + ` OR contact_name ILIKE ` + p + ` OR category ILIKE ` + p + `)`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	var list []*entity.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Update actualiza un proveedor.
func (r *VendorRepo) Update(ctx context.Context, v *entity.Vendor) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE vendors
		SET name = $2, contact_name = $3, email = $4, phone = $5,
			category = $6, status = $7, notes = $8, updated_at = $9
		WHERE id = $1`,
		v.ID, v.Name, v.ContactName, v.Email, v.Phone,
		v.Category, v.Status, v.Notes, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vendor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proveedor.
func (r *VendorRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
