package procurement

import (
	"context"
	"fmt"
	"time"

	"github.com/stoneworks/inventory-api/internal/application/dto"
	"github.com/stoneworks/inventory-api/internal/domain"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
	"github.com/stoneworks/inventory-api/internal/domain/repository"
)

// Get devuelve la cabecera, sus líneas y el resumen de montos.
func (uc *ProcurementUseCase) Get(ctx context.Context, id int64) (*dto.ProcurementDetailResponse, error) {
	view, err := uc.procRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, domain.NotFound("procurement")
	}
	items, err := uc.itemRepo.ListByProcurement(ctx, id)
	if err != nil {
		return nil, err
	}
	plain := make([]*entity.ProcurementItem, 0, len(items))
	out := &dto.ProcurementDetailResponse{
		Procurement: toProcurementResponse(view),
		Items:       make([]dto.ProcurementItemResponse, 0, len(items)),
	}
	for _, it := range items {
		plain = append(plain, &it.ProcurementItem)
		out.Items = append(out.Items, toItemResponse(it))
	}
	out.Procurement.TotalItems = int64(len(items))
	out.Summary = toSummaryResponse(entity.Summarize(&view.Procurement, plain))
	return out, nil
}

// List devuelve las compras más recientemente modificadas primero.
func (uc *ProcurementUseCase) List(ctx context.Context, q dto.ProcurementListQuery) (*dto.ProcurementListResponse, error) {
	q.DefaultPage()
	filter := repository.ProcurementFilter{
		SupplierInvoice: q.SupplierInvoice,
		StoneType:       q.StoneType,
		StoneName:       q.StoneName,
	}
	if q.VendorID > 0 {
		filter.VendorID = &q.VendorID
	}
	if q.StageID > 0 {
		filter.StageID = &q.StageID
	}
	if q.DateReceived != "" {
		d, err := time.Parse(dateLayout, q.DateReceived)
		if err != nil {
			return nil, domain.Invalid("date_received must be a date (YYYY-MM-DD)")
		}
		filter.DateReceived = &d
	}
	views, total, err := uc.procRepo.List(ctx, filter, q.Limit, q.Offset())
	if err != nil {
		return nil, err
	}
	out := &dto.ProcurementListResponse{
		Procurements: make([]dto.ProcurementResponse, 0, len(views)),
		Pagination:   dto.NewPageResponse(q.PageRequest, total),
	}
	for _, v := range views {
		out.Procurements = append(out.Procurements, toProcurementResponse(v))
	}
	return out, nil
}

// Analytics devuelve los totales del tablero de compras.
func (uc *ProcurementUseCase) Analytics(ctx context.Context) (*dto.ProcurementAnalyticsResponse, error) {
	a, err := uc.procRepo.Analytics(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ProcurementAnalyticsResponse{
		TotalProcurements: a.TotalProcurements,
		TotalValue:        a.TotalValue,
		UniqueVendors:     a.UniqueVendors,
		TotalStones:       a.TotalStones,
	}, nil
}

// VendorItems devuelve las líneas compradas a un proveedor con sus totales.
func (uc *ProcurementUseCase) VendorItems(ctx context.Context, vendorID int64, q dto.VendorItemsQuery) (*dto.VendorItemsResponse, error) {
	q.DefaultPage()
	filter, err := vendorFilter(q)
	if err != nil {
		return nil, err
	}
	if _, err := uc.vendorName(ctx, vendorID); err != nil {
		return nil, err
	}
	items, total, err := uc.itemRepo.ListByVendor(ctx, vendorID, filter, q.Limit, q.Offset())
	if err != nil {
		return nil, err
	}
	stats, err := uc.itemRepo.VendorStats(ctx, vendorID, filter)
	if err != nil {
		return nil, err
	}
	out := &dto.VendorItemsResponse{
		VendorID: vendorID,
		Items:    make([]dto.ProcurementItemResponse, 0, len(items)),
		Stats: dto.VendorItemStatsResponse{
			TotalItems:        stats.TotalItems,
			TotalAmount:       stats.TotalAmount,
			TotalProcurements: stats.TotalProcurements,
		},
		Pagination: dto.NewPageResponse(q.PageRequest, total),
	}
	for _, it := range items {
		out.Items = append(out.Items, toItemResponse(it))
	}
	return out, nil
}

// VendorStatementPDF renderiza todas las líneas del proveedor en el rango pedido.
func (uc *ProcurementUseCase) VendorStatementPDF(ctx context.Context, vendorID int64, q dto.VendorItemsQuery) ([]byte, string, error) {
	filter, err := vendorFilter(q)
	if err != nil {
		return nil, "", err
	}
	name, err := uc.vendorName(ctx, vendorID)
	if err != nil {
		return nil, "", err
	}
	items, _, err := uc.itemRepo.ListByVendor(ctx, vendorID, filter, 0, 0)
	if err != nil {
		return nil, "", err
	}
	stats, err := uc.itemRepo.VendorStats(ctx, vendorID, filter)
	if err != nil {
		return nil, "", err
	}
	st := &VendorStatement{
		VendorID:    vendorID,
		VendorName:  name,
		StartDate:   filter.StartDate,
		EndDate:     filter.EndDate,
		Items:       items,
		Stats:       *stats,
		GeneratedAt: time.Now(),
	}
	pdf, err := uc.pdf.GenerateVendorStatement(ctx, st)
	if err != nil {
		return nil, "", fmt.Errorf("vendor statement pdf: %w", err)
	}
	return pdf, fmt.Sprintf("vendor-%d-procurements.pdf", vendorID), nil
}

func (uc *ProcurementUseCase) vendorName(ctx context.Context, vendorID int64) (string, error) {
	name, found, err := uc.procRepo.VendorName(ctx, vendorID)
	if err != nil {
		return "", err
	}
	if !found {
		return "", domain.NotFound("vendor")
	}
	return name, nil
}

// vendorFilter traduce las fechas del query; end_date incluye el día completo.
func vendorFilter(q dto.VendorItemsQuery) (repository.VendorItemFilter, error) {
	f := repository.VendorItemFilter{StoneType: q.StoneType, StoneName: q.StoneName}
	if q.StartDate != "" {
		d, err := time.Parse(dateLayout, q.StartDate)
		if err != nil {
			return f, domain.Invalid("start_date must be a date (YYYY-MM-DD)")
		}
		f.StartDate = &d
	}
	if q.EndDate != "" {
		d, err := time.Parse(dateLayout, q.EndDate)
		if err != nil {
			return f, domain.Invalid("end_date must be a date (YYYY-MM-DD)")
		}
		end := d.AddDate(0, 0, 1)
		f.EndDate = &end
	}
	if f.StartDate != nil && f.EndDate != nil && !f.StartDate.Before(*f.EndDate) {
		return f, domain.Invalid("start_date must not be after end_date")
	}
	return f, nil
}
