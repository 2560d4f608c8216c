package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/buildtrack/buildtrack-api/internal/application/dto"
	"github.com/buildtrack/buildtrack-api/internal/application/usecase"
	"github.com/buildtrack/buildtrack-api/internal/domain/repository"
)

// EquipmentHandler maneja el registro de equipos y su ledger de acciones (protegido).
type EquipmentHandler struct {
	uc         *usecase.EquipmentUseCase
	activityUC *usecase.ActivityUseCase
}

// NewEquipmentHandler construye el handler.
func NewEquipmentHandler(uc *usecase.EquipmentUseCase, activityUC *usecase.ActivityUseCase) *EquipmentHandler {
	return &EquipmentHandler{uc: uc, activityUC: activityUC}
}

// Create godoc
// @Summary      Registrar equipo
// @Tags         equipment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEquipmentRequest  true  "Datos del equipo"
// @Success      201   {object}  dto.EquipmentDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/equipment [post]
func (h *EquipmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEquipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener equipo por ID
// @Tags         equipment
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del equipo"
// @Success      200  {object}  dto.EquipmentDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/equipment/{id} [get]
func (h *EquipmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar equipos
// @Tags         equipment
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "Filtrar por categoría"
// @Param        status    query  string  false  "available | in_use | maintenance"
// @Param        search    query  string  false  "Buscar en nombre y número"
// @Param        limit     query  int     false  "Límite"
// @Success      200  {array}  dto.EquipmentDTO
// @Router       /api/equipment [get]
func (h *EquipmentHandler) List(c *fiber.Ctx) error {
	f := repository.EquipmentFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Limit:    c.QueryInt("limit", 0),
	}
	out, err := h.uc.List(c.Context(), f)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Act godoc
// @Summary      Ejecutar acción sobre un equipo
// @Description  assign_to_project | assign_to_person | move_to_maintenance | check_in. Registra en el ledger de acciones y muta el estado.
// @Tags         equipment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del equipo"
// @Param        body  body  dto.EquipmentActionRequest  true  "Acción"
// @Success      200   {object}  dto.EquipmentDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/equipment/{id}/actions [post]
func (h *EquipmentHandler) Act(c *fiber.Ctx) error {
	var in dto.EquipmentActionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Act(c.Context(), c.Params("id"), GetUserName(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// RecentActivity godoc
// @Summary      Feed de actividad reciente
// @Description  Mezcla movimientos de equipos e inventario. Una fuente no aprovisionada degrada sin fallar; sin fuentes responde el placeholder "System Ready".
// @Tags         equipment
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200  {array}  dto.ActivityDTO
// @Router       /api/equipment/transactions/recent [get]
func (h *EquipmentHandler) RecentActivity(c *fiber.Ctx) error {
	out, err := h.activityUC.Recent(c.Context(), c.QueryInt("limit", 0))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
