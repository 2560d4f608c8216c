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

var (
	_ repository.UserRepository     = (*UserRepo)(nil)
	_ repository.SettingsRepository = (*SettingsRepo)(nil)
)

// UserRepo persistencia de perfiles de usuario sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// GetByID obtiene un perfil por el id del proveedor de identidad.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	var p entity.UserProfile
	err := r.q.QueryRow(ctx, `
		SELECT id, full_name, email, role, is_active, created_at, updated_at
		FROM users WHERE id = $1`, id,
	).Scan(&p.ID, &p.FullName, &p.Email, &p.Role, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &p, nil
}

// Upsert crea el perfil en el primer acceso o refresca nombre y email.
// El rol solo se escribe en la creación; los cambios de rol van por otra vía.
func (r *UserRepo) Upsert(ctx context.Context, p *entity.UserProfile) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO users (id, full_name, email, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET full_name = EXCLUDED.full_name, email = EXCLUDED.email, updated_at = EXCLUDED.updated_at`,
		p.ID, p.FullName, p.Email, p.Role, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

// List perfiles de la organización ordenados por nombre.
func (r *UserRepo) List(ctx context.Context) ([]*entity.UserProfile, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, full_name, email, role, is_active, created_at, updated_at
		FROM users ORDER BY full_name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.UserProfile
	for rows.Next() {
		var p entity.UserProfile
		if err := rows.Scan(&p.ID, &p.FullName, &p.Email, &p.Role, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// SettingsRepo documento clave-valor de configuración de la organización.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get lee un valor de configuración.
func (r *SettingsRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.q.QueryRow(ctx,
		`SELECT value FROM app_settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// Set escribe un valor de configuración (upsert).
func (r *SettingsRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO app_settings (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}
