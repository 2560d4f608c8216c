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

var _ repository.EquipmentRepository = (*EquipmentRepo)(nil)

const equipmentColumns = `id, equipment_number, name, category, model, serial_number,
	status, location, notes, created_at, updated_at`

// EquipmentRepo persistencia de equipos y su ledger de acciones sobre PostgreSQL.
type EquipmentRepo struct {
	q Querier
}

// NewEquipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEquipmentRepository(q Querier) *EquipmentRepo {
	return &EquipmentRepo{q: q}
}

func scanEquipment(row pgx.Row) (*entity.Equipment, error) {
	var e entity.Equipment
	err := row.Scan(
		&e.ID, &e.EquipmentNumber, &e.Name, &e.Category, &e.Model, &e.SerialNumber,
		&e.Status, &e.Location, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan equipment: %w", err)
	}
	return &e, nil
}

// Create registra un equipo.
func (r *EquipmentRepo) Create(ctx context.Context, e *entity.Equipment) error {
	query := `
		INSERT INTO equipment (` + equipmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.EquipmentNumber, e.Name, e.Category, e.Model, e.SerialNumber,
		e.Status, e.Location, e.Notes, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert equipment: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo por ID.
func (r *EquipmentRepo) GetByID(ctx context.Context, id string) (*entity.Equipment, error) {
	return scanEquipment(r.q.QueryRow(ctx,
		`SELECT `+equipmentColumns+` FROM equipment WHERE id = $1`, id))
}

// List lista equipos con filtros.
func (r *EquipmentRepo) List(ctx context.Context, f repository.EquipmentFilter) ([]*entity.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE 1=1`
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
	if f.Status != "" {
		query += ` AND status = ` + next(f.Status)
	}
	if f.Search != "" {
		p := next("%" + f.Search + "%")
		query += ` AND (name ILIKE ` + p + ` OR equipment_number ILIKE ` + p + `)`
	}
	query += ` ORDER BY equipment_number ASC`
	if f.Limit > 0 {
		query += ` LIMIT ` + next(f.Limit)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()

	var list []*entity.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// UpdateStatus muta estado y ubicación del equipo.
func (r *EquipmentRepo) UpdateStatus(ctx context.Context, id, status, location string) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE equipment SET status = $2, location = $3, updated_at = now() WHERE id = $1`,
		id, status, location,
	)
	if err != nil {
		return fmt.Errorf("update equipment status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search búsqueda seccionada de equipos para la barra global.
func (r *EquipmentRepo) Search(ctx context.Context, term string, limit int) ([]*entity.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment
		WHERE name ILIKE $1 OR equipment_number ILIKE $1 OR category ILIKE $1 OR model ILIKE $1
		ORDER BY name ASC LIMIT $2`
	rows, err := r.q.Query(ctx, query, "%"+term+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search equipment: %w", err)
	}
	defer rows.Close()

	var list []*entity.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// CreateTransaction inserta una entrada del ledger de acciones.
func (r *EquipmentRepo) CreateTransaction(ctx context.Context, t *entity.EquipmentTransaction) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO equipment_transactions (
			id, equipment_id, action, project_id, person_name,
			expected_return_date, notes, done_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID, t.EquipmentID, t.Action, t.ProjectID, t.PersonName,
		t.ExpectedReturnDate, t.Notes, t.DoneBy, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert equipment transaction: %w", err)
	}
	return nil
}

// ListRecentTransactions lectura tolerante para el feed de actividad: una tabla
// no aprovisionada degrada a domain.ErrSourceUnavailable.
func (r *EquipmentRepo) ListRecentTransactions(ctx context.Context, limit int) ([]*entity.EquipmentTransactionWithDetails, error) {
	query := `
		SELECT t.id, t.equipment_id, t.action, t.project_id, t.person_name,
			t.expected_return_date, t.notes, t.done_by, t.created_at,
			COALESCE(e.name, ''), COALESCE(e.equipment_number, ''), COALESCE(e.category, '')
		FROM equipment_transactions t
		LEFT JOIN equipment e ON e.id = t.equipment_id
		ORDER BY t.created_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, domain.ErrSourceUnavailable
		}
		return nil, fmt.Errorf("list equipment transactions: %w", err)
	}
	defer rows.Close()

	var list []*entity.EquipmentTransactionWithDetails
	for rows.Next() {
		var d entity.EquipmentTransactionWithDetails
		if err := rows.Scan(
			&d.ID, &d.EquipmentID, &d.Action, &d.ProjectID, &d.PersonName,
			&d.ExpectedReturnDate, &d.Notes, &d.DoneBy, &d.CreatedAt,
			&d.EquipmentName, &d.EquipmentNumber, &d.Category,
		); err != nil {
			return nil, fmt.Errorf("scan equipment transaction: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
