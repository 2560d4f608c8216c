package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/buildtrack/buildtrack-api/internal/application/dto"
	"github.com/buildtrack/buildtrack-api/internal/application/usecase"
)

// SettingsHandler maneja llaves de integración y configuración de la
// organización. Todas sus rutas van detrás de RequireRole("admin").
type SettingsHandler struct {
	apiKeyUC   *usecase.APIKeyUseCase
	settingsUC *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(apiKeyUC *usecase.APIKeyUseCase, settingsUC *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{apiKeyUC: apiKeyUC, settingsUC: settingsUC}
}

// CreateAPIKey godoc
// @Summary      Crear llave de integración
// @Description  La llave en claro se muestra una sola vez; en reposo solo se guarda el hash.
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAPIKeyRequest  true  "Nombre y permisos"
// @Success      201   {object}  dto.CreateAPIKeyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/settings/api-keys [post]
func (h *SettingsHandler) CreateAPIKey(c *fiber.Ctx) error {
	var in dto.CreateAPIKeyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.apiKeyUC.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListAPIKeys godoc
// @Summary      Listar llaves de integración
// @Description  Las llaves se devuelven siempre enmascaradas.
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.APIKeyDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/settings/api-keys [get]
func (h *SettingsHandler) ListAPIKeys(c *fiber.Ctx) error {
	out, err := h.apiKeyUC.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// RevokeAPIKey godoc
// @Summary      Revocar llave de integración
// @Tags         settings
// @Security     Bearer
// @Param        id   path  string  true  "ID de la llave"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/settings/api-keys/{id} [delete]
func (h *SettingsHandler) RevokeAPIKey(c *fiber.Ctx) error {
	if err := h.apiKeyUC.Revoke(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetRegistrationPassword godoc
// @Summary      Configurar contraseña de registro
// @Description  En reposo se guarda el hash bcrypt, nunca la contraseña.
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrationPasswordRequest  true  "Contraseña (mínimo 8 caracteres)"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/registration-password [put]
func (h *SettingsHandler) SetRegistrationPassword(c *fiber.Ctx) error {
	var in dto.RegistrationPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.settingsUC.SetRegistrationPassword(c.Context(), in); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// GetOrgSettings godoc
// @Summary      Ajustes generales de la organización
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrgSettingsDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) GetOrgSettings(c *fiber.Ctx) error {
	out, err := h.settingsUC.GetOrgSettings(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdateOrgSettings godoc
// @Summary      Actualizar ajustes generales
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OrgSettingsDTO  true  "Documento de ajustes completo"
// @Success      200   {object}  dto.OrgSettingsDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) UpdateOrgSettings(c *fiber.Ctx) error {
	var in dto.OrgSettingsDTO
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.settingsUC.UpdateOrgSettings(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// VerifyRegistrationPassword godoc
// @Summary      Verificar la contraseña de registro
// @Description  Si la organización no la configuró, la verificación pasa (registro abierto).
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrationPasswordRequest  true  "Contraseña a verificar"
// @Success      200   {object}  map[string]bool
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/settings/registration-password/verify [post]
func (h *SettingsHandler) VerifyRegistrationPassword(c *fiber.Ctx) error {
	var in dto.RegistrationPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.settingsUC.VerifyRegistrationPassword(c.Context(), in.Password); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"valid": true})
}
