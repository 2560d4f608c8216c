package repository

import (
	"context"

	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
)

// UserRepository puerto de persistencia de perfiles de usuario.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.UserProfile, error)
	// Upsert crea el perfil si no existe (primer acceso) o refresca nombre y email.
	Upsert(ctx context.Context, p *entity.UserProfile) error
	List(ctx context.Context) ([]*entity.UserProfile, error)
}

// SettingsRepository puerto del documento de configuración de la organización.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
