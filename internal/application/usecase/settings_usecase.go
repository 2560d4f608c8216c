package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/buildtrack/buildtrack-api/internal/application/dto"
	"github.com/buildtrack/buildtrack-api/internal/domain"
	"github.com/buildtrack/buildtrack-api/internal/domain/repository"
)

const (
	registrationPasswordKey = "registration_password_hash"
	orgSettingsKey          = "org_settings"
)

// SettingsUseCase configuración de la organización: el documento de ajustes
// generales y la contraseña de registro que protege el alta de cuentas.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// GetOrgSettings lee el documento de ajustes; sin documento guardado responde
// los defaults.
func (uc *SettingsUseCase) GetOrgSettings(ctx context.Context) (*dto.OrgSettingsDTO, error) {
	raw, err := uc.repo.Get(ctx, orgSettingsKey)
	if errors.Is(err, domain.ErrNotFound) {
		d := dto.DefaultOrgSettings()
		return &d, nil
	}
	if err != nil {
		return nil, err
	}
	var out dto.OrgSettingsDTO
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrgSettings reemplaza el documento de ajustes completo.
func (uc *SettingsUseCase) UpdateOrgSettings(ctx context.Context, in dto.OrgSettingsDTO) (*dto.OrgSettingsDTO, error) {
	if in.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Set(ctx, orgSettingsKey, string(raw)); err != nil {
		return nil, err
	}
	return &in, nil
}

// SetRegistrationPassword guarda el hash bcrypt de la contraseña de registro.
func (uc *SettingsUseCase) SetRegistrationPassword(ctx context.Context, in dto.RegistrationPasswordRequest) error {
	if len(in.Password) < 8 {
		return domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.repo.Set(ctx, registrationPasswordKey, string(hash))
}

// VerifyRegistrationPassword compara la contraseña contra el hash guardado.
// Sin contraseña configurada el registro queda abierto.
func (uc *SettingsUseCase) VerifyRegistrationPassword(ctx context.Context, password string) error {
	hash, err := uc.repo.Get(ctx, registrationPasswordKey)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return domain.ErrUnauthorized
	}
	return nil
}
