package procurement

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stoneworks/inventory-api/internal/application/dto"
	"github.com/stoneworks/inventory-api/internal/application/inventory"
	"github.com/stoneworks/inventory-api/internal/domain"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
	"github.com/stoneworks/inventory-api/internal/domain/repository"
	"github.com/stoneworks/inventory-api/internal/domain/stock"
	"github.com/stoneworks/inventory-api/pkg/logger"
)

// DefaultPerformer se registra como performed_by en filas generadas por compras.
const DefaultPerformer = "System"

const dateLayout = "2006-01-02"

// msgMissingItemFields mensaje de validación de una línea incompleta.
const msgMissingItemFields = "Missing required fields in procurement item"

// ProcurementUseCase casos de uso de compras. Toda escritura que toca el ledger corre en una
// transacción con la línea de inventario bloqueada.
type ProcurementUseCase struct {
	txRunner  inventory.TxRunner
	procRepo  repository.ProcurementRepository
	itemRepo  repository.ProcurementItemRepository
	pdf       StatementPDFGenerator
	log       *logger.Logger
	performer string
}

// NewProcurementUseCase construye el caso de uso. performer vacío usa DefaultPerformer.
func NewProcurementUseCase(
	txRunner inventory.TxRunner,
	procRepo repository.ProcurementRepository,
	itemRepo repository.ProcurementItemRepository,
	pdf StatementPDFGenerator,
	log *logger.Logger,
	performer string,
) *ProcurementUseCase {
	if performer == "" {
		performer = DefaultPerformer
	}
	return &ProcurementUseCase{
		txRunner:  txRunner,
		procRepo:  procRepo,
		itemRepo:  itemRepo,
		pdf:       pdf,
		log:       log,
		performer: performer,
	}
}

// Create registra la cabecera y todas sus líneas en una sola transacción.
func (uc *ProcurementUseCase) Create(ctx context.Context, in dto.CreateProcurementRequest) (*dto.ProcurementDetailResponse, error) {
	header, err := newProcurement(in)
	if err != nil {
		return nil, err
	}
	items := make([]*entity.ProcurementItem, 0, len(in.Items))
	for _, req := range in.Items {
		it, err := newProcurementItem(req)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	opID := uuid.New().String()
	performer := uc.performedBy(in.PerformedBy)
	err = uc.txRunner.Run(ctx, func(r inventory.Repos) error {
		_, found, err := r.Procurements.VendorName(ctx, header.VendorID)
		if err != nil {
			return err
		}
		if !found {
			return domain.NotFound("vendor")
		}
		if err := r.Procurements.Create(ctx, header); err != nil {
			return err
		}
		for _, it := range items {
			if _, err := linkItem(ctx, r, header, it, opID, performer); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("operation_id", opID).Int64("procurement_id", header.ID).
		Int("items", len(items)).Msg("procurement created")
	return uc.Get(ctx, header.ID)
}

// AddItem agrega una línea a una compra existente usando la fecha de su factura.
func (uc *ProcurementUseCase) AddItem(ctx context.Context, procurementID int64, in dto.AddProcurementItemRequest) (*dto.AddProcurementItemResponse, error) {
	it, err := newProcurementItem(in.ProcurementItemRequest)
	if err != nil {
		return nil, err
	}
	opID := uuid.New().String()
	var out *dto.AddProcurementItemResponse
	err = uc.txRunner.Run(ctx, func(r inventory.Repos) error {
		view, err := r.Procurements.GetByID(ctx, procurementID)
		if err != nil {
			return err
		}
		if view == nil {
			return domain.NotFound("procurement")
		}
		res, err := linkItem(ctx, r, &view.Procurement, it, opID, uc.performedBy(in.PerformedBy))
		if err != nil {
			return err
		}
		if err := r.Procurements.Touch(ctx, procurementID); err != nil {
			return err
		}
		itemResp := toItemResponse(&entity.ProcurementItemView{
			ProcurementItem: *it,
			SupplierInvoice: view.SupplierInvoice,
			InvoiceDate:     view.InvoiceDate,
		})
		out = &dto.AddProcurementItemResponse{
			Item:              itemResp,
			InventoryItemID:   res.inventoryItemID,
			InventoryCreated:  res.created,
			TransactionType:   string(res.row.Type),
			NewBalanceSqMeter: res.row.BalanceAfterSqMeter,
			NewBalancePieces:  res.row.BalanceAfterPieces,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Str("operation_id", opID).Int64("procurement_id", procurementID).
		Int64("inventory_item_id", out.InventoryItemID).Msg("procurement item added")
	return out, nil
}

type linkResult struct {
	inventoryItemID int64
	created         bool
	row             *entity.InventoryTransaction
}

// linkItem busca o crea la línea de inventario de it, guarda it enlazada a ella y agrega
// la fila de ingreso al ledger.
func linkItem(ctx context.Context, r inventory.Repos, p *entity.Procurement, it *entity.ProcurementItem, opID, performer string) (*linkResult, error) {
	inv, isNew, err := inventory.ResolveItem(ctx, r, it.ItemAttributes, entity.SourceProcurement)
	if err != nil {
		return nil, err
	}
	txType := entity.TxProcurementQuantityAdded
	if isNew {
		txType = entity.TxProcurementInitialStock
	}

	it.ProcurementID = p.ID
	it.InventoryItemID = &inv.ID
	it.CreatedAt = p.InvoiceDate
	if err := r.ProcurementItems.Create(ctx, it); err != nil {
		return nil, err
	}

	delta, err := inventory.MasterDelta(it.Quantity, it.Units, inv.LengthMM, inv.WidthMM)
	if err != nil {
		return nil, err
	}
	row, err := inventory.AppendEntry(ctx, r, inv, inventory.Entry{
		OperationID:   opID,
		Type:          txType,
		ChangeSqMeter: delta,
		SourceDetails: "Procurement Invoice: " + invoiceLabel(p.SupplierInvoice),
		PerformedBy:   performer,
	})
	if err != nil {
		return nil, err
	}
	return &linkResult{inventoryItemID: inv.ID, created: isNew, row: row}, nil
}

// DeleteItem quita una línea de compra revirtiendo su aporte al inventario.
// Si la reversión deja el saldo en cero o menos y ninguna otra línea de compra apunta al mismo
// inventario, la línea de inventario se elimina completa. Si otras líneas la referencian y el
// saldo quedaría negativo, se rechaza con InsufficientStockError y no cambia nada. Esto se aparta
// a propósito del sistema anterior, que agregaba la fila negativa igual: aquí ningún saldo del
// ledger puede quedar negativo (también lo exige el CHECK de inventory_transactions).
func (uc *ProcurementUseCase) DeleteItem(ctx context.Context, id int64, performedBy string) (*dto.DeleteProcurementItemResponse, error) {
	opID := uuid.New().String()
	out := &dto.DeleteProcurementItemResponse{ProcurementItemID: id}
	err := uc.txRunner.Run(ctx, func(r inventory.Repos) error {
		it, err := r.ProcurementItems.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if it == nil {
			return domain.NotFound("procurement item")
		}
		out.InventoryItemID = it.InventoryItemID

		if it.InventoryItemID != nil {
			if err := uc.reverse(ctx, r, it, opID, uc.performedBy(performedBy), out); err != nil {
				return err
			}
		}
		if err := r.ProcurementItems.Delete(ctx, id); err != nil {
			return err
		}
		return r.Procurements.Touch(ctx, it.ProcurementID)
	})
	if err != nil {
		return nil, err
	}
	ev := uc.log.Info().Str("operation_id", opID).Int64("procurement_item_id", id)
	if out.InventoryItemDeleted {
		ev = ev.Int64("deleted_inventory_item_id", *out.InventoryItemID)
	}
	ev.Msg("procurement item deleted")
	return out, nil
}

func (uc *ProcurementUseCase) reverse(ctx context.Context, r inventory.Repos, it *entity.ProcurementItem, opID, performer string, out *dto.DeleteProcurementItemResponse) error {
	inv, err := r.Items.GetForUpdate(ctx, *it.InventoryItemID)
	if err != nil {
		return err
	}
	if inv == nil {
		return nil
	}
	delta, err := inventory.MasterDelta(it.Quantity, it.Units, it.LengthMM, it.WidthMM)
	if err != nil {
		return err
	}
	last, err := r.Transactions.LastBalance(ctx, inv.ID)
	if err != nil {
		return err
	}
	hypothetical := last.Add(entity.Balance{
		SqMeter: delta.Neg(),
		Pieces:  -stock.PiecesFromSqMeter(delta, inv.LengthMM, inv.WidthMM),
	})

	if !hypothetical.SqMeter.IsPositive() || hypothetical.Pieces <= 0 {
		others, err := r.ProcurementItems.CountLinked(ctx, inv.ID, it.ID)
		if err != nil {
			return err
		}
		if others == 0 {
			if err := r.Items.Delete(ctx, inv.ID); err != nil {
				return err
			}
			out.InventoryItemDeleted = true
			return nil
		}
	}

	view, err := r.Procurements.GetByID(ctx, it.ProcurementID)
	if err != nil {
		return err
	}
	invoice := ""
	if view != nil {
		invoice = view.SupplierInvoice
	}
	row, err := inventory.AppendEntry(ctx, r, inv, inventory.Entry{
		OperationID:   opID,
		Type:          entity.TxProcurementItemDeleted,
		ChangeSqMeter: delta.Neg(),
		SourceDetails: "Deleted from procurement: " + invoiceLabel(invoice),
		PerformedBy:   performer,
	})
	if err != nil {
		return err
	}
	out.NewBalanceSqMeter = &row.BalanceAfterSqMeter
	out.NewBalancePieces = &row.BalanceAfterPieces
	return nil
}

func (uc *ProcurementUseCase) performedBy(user string) string {
	if user != "" {
		return user
	}
	return uc.performer
}

func invoiceLabel(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}

// newProcurement valida la cabecera y aplica valores por defecto.
func newProcurement(in dto.CreateProcurementRequest) (*entity.Procurement, error) {
	if in.VendorID <= 0 {
		return nil, domain.Invalid("vendor_id is required")
	}
	invoice := strings.TrimSpace(in.SupplierInvoice)
	if invoice == "" {
		return nil, domain.Invalid("supplier_invoice is required")
	}
	date, err := time.Parse(dateLayout, in.InvoiceDate)
	if err != nil {
		return nil, domain.Invalid("invoice_date must be a date (YYYY-MM-DD)")
	}
	gst := entity.GSTType(in.GSTType)
	if gst == "" {
		gst = entity.GSTTypeIGST
	}
	if !gst.Valid() {
		return nil, domain.Invalid("gst_type must be one of IGST, CGST, SGST")
	}
	p := &entity.Procurement{
		VendorID:                in.VendorID,
		InvoiceDate:             date,
		SupplierInvoice:         invoice,
		VehicleNumber:           in.VehicleNumber,
		GSTType:                 gst,
		TaxPercentage:           orZero(in.TaxPercentage),
		FreightCharges:          orZero(in.FreightCharges),
		AdditionalTaxableAmount: orZero(in.AdditionalTaxableAmount),
		GrandTotal:              in.GrandTotal,
		Comments:                in.Comments,
	}
	if p.TaxPercentage.IsNegative() || p.TaxPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.Invalid("tax_percentage must be between 0 and 100")
	}
	if p.FreightCharges.IsNegative() || p.AdditionalTaxableAmount.IsNegative() || p.GrandTotal.IsNegative() {
		return nil, domain.Invalid("amounts must not be negative")
	}
	return p, nil
}

// newProcurementItem valida una línea, trunca sus dimensiones y calcula item_amount.
func newProcurementItem(in dto.ProcurementItemRequest) (*entity.ProcurementItem, error) {
	if in.StoneID <= 0 || !in.LengthMM.IsPositive() || !in.WidthMM.IsPositive() ||
		!in.Quantity.IsPositive() || !in.Rate.IsPositive() {
		return nil, domain.Invalid(msgMissingItemFields)
	}
	attrs, err := inventory.NormalizeAttributes(in.ItemAttributesRequest)
	if err != nil {
		return nil, err
	}
	units := entity.Unit(in.Units)
	if units == "" {
		units = entity.UnitSqMeter
	}
	if !units.Valid() {
		return nil, domain.Invalid("units must be 'Pieces' or 'Sq Meter'")
	}
	rateUnit := in.RateUnit
	if rateUnit == "" {
		rateUnit = string(units)
	}
	return &entity.ProcurementItem{
		HSNCodeID:      optionalID(in.HSNCodeID),
		ItemAttributes: attrs,
		Quantity:       in.Quantity,
		Units:          units,
		Rate:           in.Rate,
		RateUnit:       rateUnit,
		ItemAmount:     in.Quantity.Mul(in.Rate).Round(2),
		Comments:       in.Comments,
	}, nil
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func optionalID(id *int64) *int64 {
	if id == nil || *id <= 0 {
		return nil
	}
	v := *id
	return &v
}
