package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/stoneworks/inventory-api/internal/application/dto"
	"github.com/stoneworks/inventory-api/internal/domain"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
	"github.com/stoneworks/inventory-api/internal/domain/repository"
	"github.com/stoneworks/inventory-api/pkg/logger"
)

// DateLayout formato de fechas en filtros de consulta.
const DateLayout = "2006-01-02"

// QueryUseCase consultas de inventario (listado, analítica, historial, verificación) y borrado de líneas.
type QueryUseCase struct {
	txRunner TxRunner
	itemRepo repository.InventoryItemRepository
	txRepo   repository.InventoryTransactionRepository
	sheet    HistorySpreadsheet
	log      *logger.Logger
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(
	txRunner TxRunner,
	itemRepo repository.InventoryItemRepository,
	txRepo repository.InventoryTransactionRepository,
	sheet HistorySpreadsheet,
	log *logger.Logger,
) *QueryUseCase {
	return &QueryUseCase{txRunner: txRunner, itemRepo: itemRepo, txRepo: txRepo, sheet: sheet, log: log}
}

// List devuelve las líneas con su saldo, más recientes en actividad primero.
func (uc *QueryUseCase) List(ctx context.Context, q dto.InventoryListQuery) (*dto.InventoryListResponse, error) {
	q.DefaultPage()
	filter := repository.InventoryItemFilter{
		StoneType:       q.StoneType,
		StoneName:       q.StoneName,
		StageID:         positive(q.StageID),
		EdgesTypeID:     positive(q.EdgesTypeID),
		FinishingTypeID: positive(q.FinishingTypeID),
		Source:          entity.Source(q.Source),
	}
	if filter.Source != "" && !filter.Source.Valid() {
		return nil, domain.Invalid("source must be 'procurement' or 'manual'")
	}
	views, total, err := uc.itemRepo.List(ctx, filter, q.Limit, q.Offset())
	if err != nil {
		return nil, err
	}
	out := &dto.InventoryListResponse{
		Items:      make([]dto.InventoryItemResponse, 0, len(views)),
		Pagination: dto.NewPageResponse(q.PageRequest, total),
	}
	for _, v := range views {
		out.Items = append(out.Items, ToItemResponse(v))
	}
	return out, nil
}

// Analytics devuelve los totales del tablero.
func (uc *QueryUseCase) Analytics(ctx context.Context) (*dto.InventoryAnalyticsResponse, error) {
	a, err := uc.itemRepo.Analytics(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.InventoryAnalyticsResponse{
		TotalItems:           a.TotalItems,
		RawMaterials:         a.RawMaterials,
		PackagingComplete:    a.PackagingComplete,
		TotalQuantityPieces:  a.TotalQuantityPieces,
		TotalQuantitySqMeter: a.TotalQuantitySqMeter,
	}, nil
}

// History devuelve la cabecera de la línea y su ledger, más reciente primero.
func (uc *QueryUseCase) History(ctx context.Context, id int64, q dto.HistoryQuery) (*dto.InventoryHistoryResponse, error) {
	filter, err := historyFilter(q)
	if err != nil {
		return nil, err
	}
	view, err := uc.itemRepo.GetView(ctx, id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, domain.NotFound("inventory item")
	}
	rows, err := uc.txRepo.ListByItem(ctx, id, filter)
	if err != nil {
		return nil, err
	}
	out := &dto.InventoryHistoryResponse{
		Item:         ToItemResponse(view),
		Transactions: make([]dto.InventoryTransactionResponse, 0, len(rows)),
	}
	for _, row := range rows {
		out.Transactions = append(out.Transactions, ToTransactionResponse(row))
	}
	return out, nil
}

// ExportHistory genera el historial filtrado como hoja de cálculo.
func (uc *QueryUseCase) ExportHistory(ctx context.Context, id int64, q dto.HistoryQuery) ([]byte, string, error) {
	h, err := uc.History(ctx, id, q)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.sheet.GenerateHistoryXLSX(ctx, h)
	if err != nil {
		return nil, "", fmt.Errorf("history xlsx: %w", err)
	}
	return data, fmt.Sprintf("inventory-%d-transactions.xlsx", id), nil
}

func historyFilter(q dto.HistoryQuery) (repository.TransactionFilter, error) {
	f := repository.TransactionFilter{Direction: q.Type, Search: q.Search}
	switch q.Type {
	case "", "add", "remove":
	default:
		return f, domain.Invalid("type must be 'add' or 'remove'")
	}
	if q.From != "" {
		t, err := time.Parse(DateLayout, q.From)
		if err != nil {
			return f, domain.Invalid("from must be a date (YYYY-MM-DD)")
		}
		f.From = &t
	}
	if q.To != "" {
		t, err := time.Parse(DateLayout, q.To)
		if err != nil {
			return f, domain.Invalid("to must be a date (YYYY-MM-DD)")
		}
		// el día indicado se incluye completo
		end := t.AddDate(0, 0, 1)
		f.To = &end
	}
	return f, nil
}

// Delete elimina una línea y su ledger. Falla con ErrConflict si alguna línea de compra la referencia.
func (uc *QueryUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		item, err := r.Items.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.NotFound("inventory item")
		}
		linked, err := r.ProcurementItems.CountLinked(ctx, id, 0)
		if err != nil {
			return err
		}
		if linked > 0 {
			return fmt.Errorf("%w: inventory item is referenced by %d procurement item(s)", domain.ErrConflict, linked)
		}
		return r.Items.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Int64("inventory_item_id", id).Msg("inventory item deleted")
	return nil
}

// LedgerCheck reproduce el ledger de una línea y reporta inconsistencias.
func (uc *QueryUseCase) LedgerCheck(ctx context.Context, id int64) (*LedgerReport, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.NotFound("inventory item")
	}
	rows, err := uc.txRepo.ListChronological(ctx, id)
	if err != nil {
		return nil, err
	}
	return VerifyLedger(item, rows), nil
}

// VerifyAll verifica el ledger de todas las líneas y devuelve solo los reportes con violaciones.
func (uc *QueryUseCase) VerifyAll(ctx context.Context) (checked int, broken []*LedgerReport, err error) {
	ids, err := uc.itemRepo.ListIDs(ctx)
	if err != nil {
		return 0, nil, err
	}
	for _, id := range ids {
		rep, err := uc.LedgerCheck(ctx, id)
		if err != nil {
			return checked, broken, fmt.Errorf("check inventory item %d: %w", id, err)
		}
		checked++
		if !rep.Consistent() {
			broken = append(broken, rep)
		}
	}
	return checked, broken, nil
}

func positive(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}
