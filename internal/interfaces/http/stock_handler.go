package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/buildtrack/buildtrack-api/internal/application/dto"
	"github.com/buildtrack/buildtrack-api/internal/application/inventory"
)

// StockHandler maneja el tablero de niveles de stock de operaciones (protegido).
type StockHandler struct {
	uc *inventory.StockLevelUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockLevelUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Levels godoc
// @Summary      Tablero de niveles de stock
// @Description  Cada fila incluye el estado (critical/low/good/normal), el máximo efectivo y el uso promedio diario.
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "Filtrar por categoría"
// @Param        search    query  string  false  "Buscar en nombre y SKU"
// @Success      200  {object}  dto.StockLevelsResponse
// @Router       /api/operations/stock-levels [get]
func (h *StockHandler) Levels(c *fiber.Ctx) error {
	out, err := h.uc.Levels(c.Context(), c.Query("category"), c.Query("search"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdateSettings godoc
// @Summary      Ajustar niveles y ubicación de un producto
// @Tags         operations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateStockSettingsRequest  true  "Niveles a escribir"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/operations/stock-levels [post]
func (h *StockHandler) UpdateSettings(c *fiber.Ctx) error {
	var in dto.UpdateStockSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.UpdateSettings(c.Context(), in); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// ReorderSuggestions godoc
// @Summary      Sugerencias de reorden
// @Description  Productos en o bajo su mínimo, con la cantidad sugerida para volver al máximo efectivo.
// @Tags         operations
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReorderSuggestionDTO
// @Router       /api/operations/reorder [get]
func (h *StockHandler) ReorderSuggestions(c *fiber.Ctx) error {
	out, err := h.uc.ReorderSuggestions(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
