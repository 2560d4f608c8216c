package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/buildtrack/buildtrack-api/internal/application/dto"
	"github.com/buildtrack/buildtrack-api/internal/domain"
	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
	"github.com/buildtrack/buildtrack-api/internal/domain/repository"
	"github.com/buildtrack/buildtrack-api/pkg/jwt"
)

// Secciones de navegación habilitadas por rol. El admin ve todo; el worker
// solo el día a día de obra.
var roleSections = map[string][]string{
	entity.RoleAdmin:   {"dashboard", "inventory", "equipment", "projects", "vendors", "reports", "users", "settings"},
	entity.RoleManager: {"dashboard", "inventory", "equipment", "projects", "vendors", "reports"},
	entity.RoleWorker:  {"dashboard", "inventory", "equipment", "projects"},
}

// UserUseCase perfiles de usuario. La identidad la emite el proveedor externo;
// el perfil local se crea en el primer acceso y guarda el rol de navegación.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Profile devuelve el perfil del usuario autenticado, creándolo en el primer
// acceso con el rol del token (worker si el token no trae rol).
func (uc *UserUseCase) Profile(ctx context.Context, identity jwt.Identity) (*dto.UserProfileDTO, error) {
	profile, err := uc.repo.GetByID(ctx, identity.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		role := identity.Role
		if role == "" {
			role = entity.RoleWorker
		}
		now := time.Now()
		profile = &entity.UserProfile{
			ID:        identity.UserID,
			FullName:  identity.Name,
			Email:     identity.Email,
			Role:      role,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.repo.Upsert(ctx, profile); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	return toUserProfileDTO(profile), nil
}

// List lista los perfiles de la organización.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserProfileDTO, error) {
	profiles, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserProfileDTO, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, *toUserProfileDTO(p))
	}
	return out, nil
}

func toUserProfileDTO(p *entity.UserProfile) *dto.UserProfileDTO {
	sections, ok := roleSections[p.Role]
	if !ok {
		sections = roleSections[entity.RoleWorker]
	}
	return &dto.UserProfileDTO{
		ID:        p.ID,
		FullName:  p.FullName,
		Email:     p.Email,
		Role:      p.Role,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		Sections:  sections,
	}
}
