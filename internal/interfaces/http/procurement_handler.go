package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stoneworks/inventory-api/internal/application/dto"
	"github.com/stoneworks/inventory-api/internal/application/procurement"
)

// ProcurementHandler maneja compras a proveedores y sus líneas.
type ProcurementHandler struct {
	uc *procurement.ProcurementUseCase
}

// NewProcurementHandler construye el handler.
func NewProcurementHandler(uc *procurement.ProcurementUseCase) *ProcurementHandler {
	return &ProcurementHandler{uc: uc}
}

// List godoc
// @Summary      Listar compras
// @Tags         procurements
// @Produce      json
// @Param        vendor_id         query  int     false  "Proveedor"
// @Param        supplier_invoice  query  string  false  "Factura (parcial)"
// @Param        date_received     query  string  false  "YYYY-MM-DD"
// @Param        stone_type        query  string  false  "Tipo de piedra en alguna línea"
// @Param        stone_name        query  string  false  "Nombre de piedra en alguna línea"
// @Param        stage_id          query  int     false  "Etapa en alguna línea"
// @Param        page              query  int     false  "Página"
// @Param        limit             query  int     false  "Tamaño de página"
// @Success      200  {object}  dto.ProcurementListResponse
// @Router       /api/procurements [get]
func (h *ProcurementHandler) List(c *fiber.Ctx) error {
	var q dto.ProcurementListQuery
	if err := parseQuery(c, &q); err != nil {
		return err
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Analytics godoc
// @Summary      Totales de compras
// @Tags         procurements
// @Produce      json
// @Success      200  {object}  dto.ProcurementAnalyticsResponse
// @Router       /api/procurements/analytics [get]
func (h *ProcurementHandler) Analytics(c *fiber.Ctx) error {
	out, err := h.uc.Analytics(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de una compra con líneas y resumen
// @Tags         procurements
// @Produce      json
// @Param        id  path  int  true  "ID de la compra"
// @Success      200  {object}  dto.ProcurementDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/procurements/{id} [get]
func (h *ProcurementHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar una compra
// @Description  Cabecera y líneas en una sola transacción; cada línea suma stock a su línea de inventario.
// @Tags         procurements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProcurementRequest  true  "cabecera + items"
// @Success      201   {object}  dto.ProcurementDetailResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/procurements [post]
func (h *ProcurementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProcurementRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	in.PerformedBy = GetUserID(c)
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AddItem godoc
// @Summary      Agregar una línea a una compra existente
// @Tags         procurements
// @Accept       json
// @Produce      json
// @Param        id    path  int                            true  "ID de la compra"
// @Param        body  body  dto.AddProcurementItemRequest  true  "línea"
// @Success      201   {object}  dto.AddProcurementItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/procurements/{id}/items [post]
func (h *ProcurementHandler) AddItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.AddProcurementItemRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	in.PerformedBy = GetUserID(c)
	out, err := h.uc.AddItem(c.Context(), id, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteItem godoc
// @Summary      Eliminar una línea de compra
// @Description  Revierte su aporte al inventario; si el saldo queda en cero o menos y nadie más la usa, elimina la línea de inventario.
// @Tags         procurements
// @Produce      json
// @Param        itemId  path  int  true  "ID de la línea de compra"
// @Success      200  {object}  dto.DeleteProcurementItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/procurements/items/{itemId} [delete]
func (h *ProcurementHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := paramID(c, "itemId")
	if err != nil {
		return err
	}
	out, err := h.uc.DeleteItem(c.Context(), id, GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// VendorItems godoc
// @Summary      Líneas compradas a un proveedor
// @Tags         vendors
// @Produce      json
// @Param        id          path   int     true   "ID del proveedor"
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD (inclusive)"
// @Param        stone_type  query  string  false  "Tipo de piedra"
// @Param        stone_name  query  string  false  "Nombre (parcial)"
// @Param        page        query  int     false  "Página"
// @Param        limit       query  int     false  "Tamaño de página"
// @Success      200  {object}  dto.VendorItemsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendors/{id}/procurement-items [get]
func (h *ProcurementHandler) VendorItems(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var q dto.VendorItemsQuery
	if err := parseQuery(c, &q); err != nil {
		return err
	}
	out, err := h.uc.VendorItems(c.Context(), id, q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// VendorStatementPDF godoc
// @Summary      Estado de compras del proveedor en PDF
// @Tags         vendors
// @Produce      application/pdf
// @Param        id          path   int     true   "ID del proveedor"
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD (inclusive)"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendors/{id}/procurement-items/pdf [get]
func (h *ProcurementHandler) VendorStatementPDF(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var q dto.VendorItemsQuery
	if err := parseQuery(c, &q); err != nil {
		return err
	}
	data, filename, err := h.uc.VendorStatementPDF(c.Context(), id, q)
	if err != nil {
		return err
	}
	c.Attachment(filename)
	return c.Send(data)
}
