package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/buildtrack/buildtrack-api/internal/application/usecase"
)

// UserHandler maneja perfiles de usuario (protegido).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Profile godoc
// @Summary      Perfil del usuario autenticado
// @Description  Crea el perfil en el primer acceso a partir de la identidad del token. Incluye las secciones de navegación del rol.
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserProfileDTO
// @Router       /api/users/me [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.Profile(c.Context(), identityFrom(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar usuarios de la organización
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.UserProfileDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
