package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/buildtrack/buildtrack-api/internal/application/dto"
	"github.com/buildtrack/buildtrack-api/internal/application/inventory"
)

// TransactionHandler maneja el ledger de transacciones de inventario (protegido).
type TransactionHandler struct {
	createUC *inventory.CreateTransactionUseCase
	queryUC  *inventory.TransactionQueryUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(createUC *inventory.CreateTransactionUseCase, queryUC *inventory.TransactionQueryUseCase) *TransactionHandler {
	return &TransactionHandler{createUC: createUC, queryUC: queryUC}
}

func actorFrom(c *fiber.Ctx) inventory.Actor {
	return inventory.Actor{
		ID:    GetUserID(c),
		Name:  GetUserName(c),
		Email: GetUserEmail(c),
	}
}

// parseDate parsea query params de fecha en formato YYYY-MM-DD.
func parseDate(c *fiber.Ctx, key string) *time.Time {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}

// Create godoc
// @Summary      Registrar transacción de stock
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Datos de la transacción (acepta claves legacy)"
// @Success      201   {object}  dto.CreateTransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.createUC.Create(c.Context(), actorFrom(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Consultar el ledger de transacciones
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        type        query  string  false  "IN | OUT | RETURN | ADJUSTMENT (acepta alias legacy)"
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        today       query  bool    false  "Solo las de hoy"
// @Param        date        query  string  false  "Día exacto (YYYY-MM-DD)"
// @Param        start_date  query  string  false  "Inicio del rango (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Fin del rango (YYYY-MM-DD)"
// @Param        limit       query  int     false  "Límite (tope 200)"  default(50)
// @Param        offset      query  int     false  "Offset"             default(0)
// @Success      200  {array}   dto.TransactionDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	q := inventory.TransactionQuery{
		Type:      c.Query("type"),
		ProductID: c.Query("product_id"),
		Today:     c.QueryBool("today"),
		Date:      parseDate(c, "date"),
		Start:     parseDate(c, "start_date"),
		End:       parseDate(c, "end_date"),
		Limit:     c.QueryInt("limit", 0),
		Offset:    c.QueryInt("offset", 0),
	}
	out, err := h.queryUC.List(c.Context(), q)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Recent godoc
// @Summary      Últimas transacciones del ledger
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200  {array}  dto.TransactionDTO
// @Router       /api/transactions/recent [get]
func (h *TransactionHandler) Recent(c *fiber.Ctx) error {
	out, err := h.queryUC.Recent(c.Context(), c.QueryInt("limit", 0))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de transacciones de un producto
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del producto"
// @Param        limit  query  int     false  "Límite (tope 200)"  default(50)
// @Success      200  {array}   dto.TransactionDTO
// @Router       /api/products/{id}/transactions [get]
func (h *TransactionHandler) History(c *fiber.Ctx) error {
	out, err := h.queryUC.History(c.Context(), c.Params("id"), c.QueryInt("limit", 0))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Agregados del ledger
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Inicio del rango (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Fin del rango (YYYY-MM-DD)"
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Success      200  {object}  dto.TransactionStatsDTO
// @Router       /api/transactions/stats [get]
func (h *TransactionHandler) Stats(c *fiber.Ctx) error {
	out, err := h.queryUC.Stats(c.Context(),
		parseDate(c, "start_date"), parseDate(c, "end_date"), c.Query("product_id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Reverse godoc
// @Summary      Reversar una transacción
// @Description  El ledger es append-only: el reverso inserta una transacción compensatoria.
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la transacción original"
// @Success      201   {object}  dto.CreateTransactionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transactions/{id}/reverse [post]
func (h *TransactionHandler) Reverse(c *fiber.Ctx) error {
	var in struct {
		Reason string `json:"reason"`
	}
	// El cuerpo es opcional; sin razón se genera una por defecto.
	_ = c.BodyParser(&in)
	out, err := h.createUC.Reverse(c.Context(), actorFrom(c), c.Params("id"), in.Reason)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
