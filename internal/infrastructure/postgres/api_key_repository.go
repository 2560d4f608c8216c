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

var _ repository.APIKeyRepository = (*APIKeyRepo)(nil)

// APIKeyRepo persistencia de llaves de integración sobre PostgreSQL.
// Solo se guarda el hash; la llave en claro nunca toca la BD.
type APIKeyRepo struct {
	q Querier
}

// NewAPIKeyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAPIKeyRepository(q Querier) *APIKeyRepo {
	return &APIKeyRepo{q: q}
}

// Create inserta una llave.
func (r *APIKeyRepo) Create(ctx context.Context, k *entity.APIKey) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO api_keys (id, name, key_hash, key_last4, permissions, is_active, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		k.ID, k.Name, k.KeyHash, k.KeyLast4, k.Permissions, k.IsActive, k.CreatedBy, k.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert api key: %w", err)
	}
	return nil
}

// List llaves de la organización, las más recientes primero.
func (r *APIKeyRepo) List(ctx context.Context) ([]*entity.APIKey, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, key_hash, key_last4, permissions, is_active, last_used, created_by, created_at
		FROM api_keys ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list api keys: %w", err)
	}
	defer rows.Close()

	var list []*entity.APIKey
	for rows.Next() {
		var k entity.APIKey
		if err := rows.Scan(&k.ID, &k.Name, &k.KeyHash, &k.KeyLast4, &k.Permissions,
			&k.IsActive, &k.LastUsedAt, &k.CreatedBy, &k.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan api key: %w", err)
		}
		list = append(list, &k)
	}
	return list, rows.Err()
}

// GetByID obtiene una llave por ID.
func (r *APIKeyRepo) GetByID(ctx context.Context, id string) (*entity.APIKey, error) {
	var k entity.APIKey
	err := r.q.QueryRow(ctx, `
		SELECT id, name, key_hash, key_last4, permissions, is_active, last_used, created_by, created_at
		FROM api_keys WHERE id = $1`, id,
	).Scan(&k.ID, &k.Name, &k.KeyHash, &k.KeyLast4, &k.Permissions,
		&k.IsActive, &k.LastUsedAt, &k.CreatedBy, &k.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get api key: %w", err)
	}
	return &k, nil
}

// Revoke baja lógica de la llave.
func (r *APIKeyRepo) Revoke(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE api_keys SET is_active = false, deleted_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("revoke api key: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
