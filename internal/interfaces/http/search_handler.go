package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/buildtrack/buildtrack-api/internal/application/usecase"
)

// SearchHandler maneja la búsqueda global (protegido).
type SearchHandler struct {
	uc *usecase.SearchUseCase
}

// NewSearchHandler construye el handler.
func NewSearchHandler(uc *usecase.SearchUseCase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Search godoc
// @Summary      Búsqueda global
// @Description  Busca en productos, equipos, proyectos y tareas (máximo 5 por sección). Una consulta vacía responde secciones vacías sin tocar la BD.
// @Tags         search
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  false  "Término de búsqueda"
// @Success      200  {object}  dto.SearchResponse
// @Router       /api/search [get]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Context(), c.Query("q"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
