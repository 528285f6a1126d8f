package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stoneworks/inventory-api/internal/application/dto"
	"github.com/stoneworks/inventory-api/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP de líneas de inventario y su ledger.
type InventoryHandler struct {
	adjust *inventory.AdjustUseCase
	query  *inventory.QueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(adjust *inventory.AdjustUseCase, query *inventory.QueryUseCase) *InventoryHandler {
	return &InventoryHandler{adjust: adjust, query: query}
}

// List godoc
// @Summary      Listar inventario con saldos
// @Tags         inventory
// @Produce      json
// @Param        stone_type         query  string  false  "Tipo de piedra"
// @Param        stone_name         query  string  false  "Nombre (parcial)"
// @Param        stage_id           query  int     false  "Etapa"
// @Param        edges_type_id      query  int     false  "Cantos"
// @Param        finishing_type_id  query  int     false  "Acabado"
// @Param        source             query  string  false  "procurement | manual"
// @Param        page               query  int     false  "Página (1..)"
// @Param        limit              query  int     false  "Tamaño de página (máx. 100)"
// @Success      200  {object}  dto.InventoryListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var q dto.InventoryListQuery
	if err := parseQuery(c, &q); err != nil {
		return err
	}
	out, err := h.query.List(c.Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Analytics godoc
// @Summary      Totales del inventario
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  dto.InventoryAnalyticsResponse
// @Router       /api/inventory/analytics [get]
func (h *InventoryHandler) Analytics(c *fiber.Ctx) error {
	out, err := h.query.Analytics(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ManualAdd godoc
// @Summary      Ingreso manual de stock
// @Description  Busca o crea la línea manual con esos atributos y agrega la cantidad al ledger.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ManualAddRequest  true  "atributos + quantity, unit, reason"
// @Success      201   {object}  dto.ManualAddResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/manual-add [post]
func (h *InventoryHandler) ManualAdd(c *fiber.Ctx) error {
	var in dto.ManualAddRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	in.PerformedBy = GetUserID(c)
	out, err := h.adjust.ManualAdd(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ManualAdjust godoc
// @Summary      Ajuste manual con signo
// @Description  Cantidad positiva suma y negativa resta. Rechaza cualquier saldo negativo.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ManualAdjustRequest  true  "inventory_item_id, quantity, unit, reason"
// @Success      200   {object}  dto.ManualAdjustResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/manual-adjust [post]
func (h *InventoryHandler) ManualAdjust(c *fiber.Ctx) error {
	var in dto.ManualAdjustRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	in.PerformedBy = GetUserID(c)
	out, err := h.adjust.Adjust(c.Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de movimientos de una línea
// @Tags         inventory
// @Produce      json
// @Param        id      path   int     true   "ID de la línea"
// @Param        type    query  string  false  "add | remove"
// @Param        search  query  string  false  "Texto en reason, source o performed_by"
// @Param        from    query  string  false  "YYYY-MM-DD"
// @Param        to      query  string  false  "YYYY-MM-DD (inclusive)"
// @Success      200  {object}  dto.InventoryHistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/transactions [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var q dto.HistoryQuery
	if err := parseQuery(c, &q); err != nil {
		return err
	}
	out, err := h.query.History(c.Context(), id, q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ExportHistory godoc
// @Summary      Exportar historial a Excel
// @Tags         inventory
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id  path  int  true  "ID de la línea"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/transactions/export [get]
func (h *InventoryHandler) ExportHistory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var q dto.HistoryQuery
	if err := parseQuery(c, &q); err != nil {
		return err
	}
	data, filename, err := h.query.ExportHistory(c.Context(), id, q)
	if err != nil {
		return err
	}
	c.Attachment(filename)
	return c.Send(data)
}

// LedgerCheck godoc
// @Summary      Verificar el ledger de una línea
// @Tags         inventory
// @Produce      json
// @Param        id  path  int  true  "ID de la línea"
// @Success      200  {object}  dto.LedgerCheckResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/ledger-check [get]
func (h *InventoryHandler) LedgerCheck(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	report, err := h.query.LedgerCheck(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(inventory.ToLedgerCheckResponse(report))
}

// Delete godoc
// @Summary      Eliminar una línea y su ledger
// @Tags         inventory
// @Param        id  path  int  true  "ID de la línea"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.query.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
