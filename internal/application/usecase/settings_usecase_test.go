package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildtrack/buildtrack-api/internal/application/dto"
	"github.com/buildtrack/buildtrack-api/internal/application/usecase"
	"github.com/buildtrack/buildtrack-api/internal/domain"
)

type fakeSettingsRepo struct {
	values map[string]string
}

func (r *fakeSettingsRepo) Get(_ context.Context, key string) (string, error) {
	v, ok := r.values[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return v, nil
}

func (r *fakeSettingsRepo) Set(_ context.Context, key, value string) error {
	if r.values == nil {
		r.values = map[string]string{}
	}
	r.values[key] = value
	return nil
}

func TestRegistrationPassword_HashYVerificacion(t *testing.T) {
	repo := &fakeSettingsRepo{}
	uc := usecase.NewSettingsUseCase(repo)

	err := uc.SetRegistrationPassword(context.Background(), dto.RegistrationPasswordRequest{Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "mínimo ocho caracteres")

	require.NoError(t, uc.SetRegistrationPassword(context.Background(), dto.RegistrationPasswordRequest{Password: "obra-segura-2026"}))
	for _, v := range repo.values {
		assert.NotEqual(t, "obra-segura-2026", v, "la contraseña no se guarda en claro")
	}

	assert.NoError(t, uc.VerifyRegistrationPassword(context.Background(), "obra-segura-2026"))
	assert.ErrorIs(t, uc.VerifyRegistrationPassword(context.Background(), "incorrecta"), domain.ErrUnauthorized)
}

func TestRegistrationPassword_SinConfigurarRegistroAbierto(t *testing.T) {
	uc := usecase.NewSettingsUseCase(&fakeSettingsRepo{})
	assert.NoError(t, uc.VerifyRegistrationPassword(context.Background(), "lo-que-sea"))
}

func TestOrgSettings_DefaultsYActualizacion(t *testing.T) {
	uc := usecase.NewSettingsUseCase(&fakeSettingsRepo{})

	// Sin documento guardado responde los defaults.
	got, err := uc.GetOrgSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "BuildTrack", got.CompanyName)
	assert.True(t, got.LowStockNotify)

	_, err = uc.UpdateOrgSettings(context.Background(), dto.OrgSettingsDTO{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "company_name es requerido")

	updated, err := uc.UpdateOrgSettings(context.Background(), dto.OrgSettingsDTO{
		CompanyName:       "Constructora Andina",
		DefaultUnit:       "kg",
		Currency:          "COP",
		MaintenanceNotify: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Constructora Andina", updated.CompanyName)

	got, err = uc.GetOrgSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Constructora Andina", got.CompanyName)
	assert.Equal(t, "COP", got.Currency)
	assert.True(t, got.MaintenanceNotify)
	assert.False(t, got.LowStockNotify, "el update reemplaza el documento completo")
}
