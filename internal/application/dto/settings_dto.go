package dto

import "time"

// CreateAPIKeyRequest entrada del POST /settings/api-keys.
type CreateAPIKeyRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// APIKeyDTO llave para listados: el valor siempre va enmascarado.
type APIKeyDTO struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Key         string     `json:"key"` // enmascarada salvo en la respuesta de creación
	Permissions []string   `json:"permissions"`
	IsActive    bool       `json:"is_active"`
	LastUsedAt  *time.Time `json:"last_used,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateAPIKeyResponse la única respuesta que incluye la llave en claro.
type CreateAPIKeyResponse struct {
	APIKey APIKeyDTO `json:"api_key"`
	// PlainKey se muestra una sola vez; no se puede recuperar después.
	PlainKey string `json:"plain_key"`
}

// RegistrationPasswordRequest alta/verificación de la contraseña de registro.
type RegistrationPasswordRequest struct {
	Password string `json:"password"`
}

// OrgSettingsDTO documento de ajustes generales de la organización.
type OrgSettingsDTO struct {
	CompanyName         string `json:"company_name"`
	DefaultUnit         string `json:"default_unit"`
	Currency            string `json:"currency"`
	LowStockNotify      bool   `json:"low_stock_notify"`
	MaintenanceNotify   bool   `json:"maintenance_notify"`
	WeeklyDigestEnabled bool   `json:"weekly_digest_enabled"`
}

// DefaultOrgSettings valores cuando la organización aún no guarda el documento.
func DefaultOrgSettings() OrgSettingsDTO {
	return OrgSettingsDTO{
		CompanyName:    "BuildTrack",
		DefaultUnit:    "unidad",
		Currency:       "USD",
		LowStockNotify: true,
	}
}
