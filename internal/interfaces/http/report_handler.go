package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/buildtrack/buildtrack-api/internal/application/usecase"
)

// ReportHandler maneja la exportación de reportes (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// LedgerPDF godoc
// @Summary      Exportar el ledger de inventario a PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        start  query  string  false  "Inicio del rango (YYYY-MM-DD)"
// @Param        end    query  string  false  "Fin del rango (YYYY-MM-DD)"
// @Param        type   query  string  false  "IN | OUT | RETURN | ADJUSTMENT"
// @Success      200  {file}    file
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/transactions.pdf [get]
func (h *ReportHandler) LedgerPDF(c *fiber.Ctx) error {
	period := usecase.ReportPeriod{
		Start: parseDate(c, "start"),
		End:   parseDate(c, "end"),
		Type:  c.Query("type"),
	}
	pdfBytes, filename, err := h.uc.LedgerPDF(c.Context(), period)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
