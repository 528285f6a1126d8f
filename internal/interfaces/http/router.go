package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stoneworks/inventory-api/internal/application/auth"
	"github.com/stoneworks/inventory-api/internal/application/inventory"
	"github.com/stoneworks/inventory-api/internal/application/procurement"
	"github.com/stoneworks/inventory-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Adjust         *inventory.AdjustUseCase
	InventoryQuery *inventory.QueryUseCase
	Procurement    *procurement.ProcurementUseCase
	MasterData     *usecase.MasterDataUseCase
	Auth           *auth.AuthUseCase // nil deshabilita /api/auth
	JWTSecret      string
	AppName        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	// Todas las rutas aceptan un Bearer Token opcional que identifica a quien firma los movimientos.
	api := app.Group("/api", OptionalAuth(deps.JWTSecret))

	if deps.Auth != nil && deps.JWTSecret != "" {
		authHandler := NewAuthHandler(deps.Auth)
		api.Post("/auth/login", authHandler.Login)
		api.Post("/auth/register", authHandler.Register)
	}

	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Adjust, deps.InventoryQuery)
	inv.Get("/", inventoryHandler.List)
	inv.Get("/analytics", inventoryHandler.Analytics)
	inv.Post("/manual-add", inventoryHandler.ManualAdd)
	inv.Post("/manual-adjust", inventoryHandler.ManualAdjust)
	inv.Get("/:id/transactions", inventoryHandler.History)
	inv.Get("/:id/transactions/export", inventoryHandler.ExportHistory)
	inv.Get("/:id/ledger-check", inventoryHandler.LedgerCheck)
	inv.Delete("/:id", inventoryHandler.Delete)

	procurementHandler := NewProcurementHandler(deps.Procurement)
	procs := api.Group("/procurements")
	procs.Get("/", procurementHandler.List)
	procs.Get("/analytics", procurementHandler.Analytics)
	procs.Post("/", procurementHandler.Create)
	procs.Delete("/items/:itemId", procurementHandler.DeleteItem)
	procs.Get("/:id", procurementHandler.GetByID)
	procs.Post("/:id/items", procurementHandler.AddItem)

	vendors := api.Group("/vendors")
	vendors.Get("/:id/procurement-items", procurementHandler.VendorItems)
	vendors.Get("/:id/procurement-items/pdf", procurementHandler.VendorStatementPDF)

	master := api.Group("/master")
	masterHandler := NewMasterDataHandler(deps.MasterData)
	master.Get("/stones", masterHandler.Stones)
	master.Get("/stages", masterHandler.Stages)
	master.Get("/edges", masterHandler.Edges)
	master.Get("/finishes", masterHandler.Finishes)
	master.Get("/hsn-codes", masterHandler.HSNCodes)
}
