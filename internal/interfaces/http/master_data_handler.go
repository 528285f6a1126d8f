package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stoneworks/inventory-api/internal/application/usecase"
)

// MasterDataHandler expone los catálogos de solo lectura.
type MasterDataHandler struct {
	uc *usecase.MasterDataUseCase
}

// NewMasterDataHandler construye el handler.
func NewMasterDataHandler(uc *usecase.MasterDataUseCase) *MasterDataHandler {
	return &MasterDataHandler{uc: uc}
}

// Stones godoc
// @Summary  Catálogo de piedras
// @Tags     master
// @Produce  json
// @Success  200  {array}  dto.StoneResponse
// @Router   /api/master/stones [get]
func (h *MasterDataHandler) Stones(c *fiber.Ctx) error {
	out, err := h.uc.Stones(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Stages godoc
// @Summary  Catálogo de etapas
// @Tags     master
// @Produce  json
// @Success  200  {array}  dto.LookupResponse
// @Router   /api/master/stages [get]
func (h *MasterDataHandler) Stages(c *fiber.Ctx) error {
	out, err := h.uc.Stages(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Edges godoc
// @Summary  Catálogo de tipos de canto
// @Tags     master
// @Produce  json
// @Success  200  {array}  dto.LookupResponse
// @Router   /api/master/edges [get]
func (h *MasterDataHandler) Edges(c *fiber.Ctx) error {
	out, err := h.uc.EdgesTypes(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Finishes godoc
// @Summary  Catálogo de acabados
// @Tags     master
// @Produce  json
// @Success  200  {array}  dto.LookupResponse
// @Router   /api/master/finishes [get]
func (h *MasterDataHandler) Finishes(c *fiber.Ctx) error {
	out, err := h.uc.FinishingTypes(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// HSNCodes godoc
// @Summary  Códigos HSN
// @Tags     master
// @Produce  json
// @Success  200  {array}  dto.HSNCodeResponse
// @Router   /api/master/hsn-codes [get]
func (h *MasterDataHandler) HSNCodes(c *fiber.Ctx) error {
	out, err := h.uc.HSNCodes(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}
