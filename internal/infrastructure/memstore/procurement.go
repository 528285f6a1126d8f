package memstore

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stoneworks/inventory-api/internal/domain"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
	"github.com/stoneworks/inventory-api/internal/domain/repository"
)

var (
	_ repository.ProcurementRepository     = (*procurementRepo)(nil)
	_ repository.ProcurementItemRepository = (*procurementItemRepo)(nil)
)

type procurementRepo Store

func (r *procurementRepo) Create(_ context.Context, p *entity.Procurement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).fault("procurements.create"); err != nil {
		return err
	}
	for _, other := range r.data.procurements {
		if other.VendorID == p.VendorID && other.SupplierInvoice == p.SupplierInvoice {
			return domain.Duplicate("a procurement with this supplier invoice already exists for the vendor")
		}
	}
	p.ID = (*Store)(r).nextID()
	p.CreatedAt = r.now()
	p.UpdatedAt = p.CreatedAt
	r.data.procurements[p.ID] = *p
	return nil
}

func (r *procurementRepo) view(p entity.Procurement) *entity.ProcurementView {
	v := &entity.ProcurementView{Procurement: p, VendorName: r.data.vendors[p.VendorID].Name}
	if city := r.data.vendors[p.VendorID].City; city != "" {
		v.City = &city
	}
	for _, it := range r.data.procItems {
		if it.ProcurementID == p.ID {
			v.TotalItems++
		}
	}
	return v
}

func (r *procurementRepo) GetByID(_ context.Context, id int64) (*entity.ProcurementView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.data.procurements[id]
	if !ok {
		return nil, nil
	}
	return r.view(p), nil
}

func (r *procurementRepo) hasMatchingItem(procurementID int64, f repository.ProcurementFilter) bool {
	for _, it := range r.data.procItems {
		if it.ProcurementID != procurementID {
			continue
		}
		st := r.data.stones[it.StoneID]
		if f.StoneType != "" && st.StoneType != f.StoneType {
			continue
		}
		if f.StoneName != "" && !strings.Contains(strings.ToLower(st.StoneName), strings.ToLower(f.StoneName)) {
			continue
		}
		if f.StageID != nil && !sameID(it.StageID, f.StageID) {
			continue
		}
		return true
	}
	return false
}

func (r *procurementRepo) List(_ context.Context, f repository.ProcurementFilter, limit, offset int) ([]*entity.ProcurementView, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []*entity.ProcurementView
	for _, p := range r.data.procurements {
		if f.VendorID != nil && p.VendorID != *f.VendorID {
			continue
		}
		if f.SupplierInvoice != "" && !strings.Contains(strings.ToLower(p.SupplierInvoice), strings.ToLower(f.SupplierInvoice)) {
			continue
		}
		if f.DateReceived != nil && !p.InvoiceDate.Equal(*f.DateReceived) {
			continue
		}
		if (f.StoneType != "" || f.StoneName != "" || f.StageID != nil) && !r.hasMatchingItem(p.ID, f) {
			continue
		}
		all = append(all, r.view(p))
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].UpdatedAt.Equal(all[j].UpdatedAt) {
			return all[i].UpdatedAt.After(all[j].UpdatedAt)
		}
		return all[i].ID > all[j].ID
	})
	return page(all, limit, offset), int64(len(all)), nil
}

func (r *procurementRepo) Analytics(_ context.Context) (*repository.ProcurementAnalytics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a := &repository.ProcurementAnalytics{TotalValue: decimal.Zero}
	vendors := map[int64]struct{}{}
	for _, p := range r.data.procurements {
		a.TotalProcurements++
		a.TotalValue = a.TotalValue.Add(p.GrandTotal)
		vendors[p.VendorID] = struct{}{}
	}
	a.UniqueVendors = int64(len(vendors))
	a.TotalStones = int64(len(r.data.procItems))
	return a, nil
}

func (r *procurementRepo) VendorName(_ context.Context, vendorID int64) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.data.vendors[vendorID]
	return v.Name, ok, nil
}

func (r *procurementRepo) Touch(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.data.procurements[id]
	if !ok {
		return domain.NotFound("procurement")
	}
	p.UpdatedAt = r.now()
	r.data.procurements[id] = p
	return nil
}

type procurementItemRepo Store

func (r *procurementItemRepo) Create(_ context.Context, it *entity.ProcurementItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).fault("procurement_items.create"); err != nil {
		return err
	}
	if _, ok := r.data.procurements[it.ProcurementID]; !ok {
		return domain.NotFound("procurement")
	}
	it.ID = (*Store)(r).nextID()
	r.data.procItems[it.ID] = *it
	return nil
}

func (r *procurementItemRepo) GetByID(_ context.Context, id int64) (*entity.ProcurementItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.data.procItems[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *procurementItemRepo) view(it entity.ProcurementItem) *entity.ProcurementItemView {
	v := &entity.ProcurementItemView{ProcurementItem: it}
	st := r.data.stones[it.StoneID]
	v.StoneName, v.StoneType = st.StoneName, st.StoneType
	if it.StageID != nil {
		v.StageName = r.data.stages[*it.StageID]
	}
	if it.EdgesTypeID != nil {
		v.EdgesTypeName = r.data.edges[*it.EdgesTypeID]
	}
	if it.FinishingTypeID != nil {
		v.FinishingTypeName = r.data.finishes[*it.FinishingTypeID]
	}
	if it.HSNCodeID != nil {
		v.HSNCode = r.data.hsn[*it.HSNCodeID].Code
	}
	p := r.data.procurements[it.ProcurementID]
	v.SupplierInvoice, v.InvoiceDate = p.SupplierInvoice, p.InvoiceDate
	return v
}

func (r *procurementItemRepo) ListByProcurement(_ context.Context, procurementID int64) ([]*entity.ProcurementItemView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*entity.ProcurementItemView{}
	for _, it := range r.data.procItems {
		if it.ProcurementID == procurementID {
			out = append(out, r.view(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *procurementItemRepo) CountLinked(_ context.Context, inventoryItemID, exceptID int64) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for id, it := range r.data.procItems {
		if id != exceptID && it.InventoryItemID != nil && *it.InventoryItemID == inventoryItemID {
			n++
		}
	}
	return n, nil
}

func (r *procurementItemRepo) byVendor(vendorID int64, f repository.VendorItemFilter) []*entity.ProcurementItemView {
	var all []*entity.ProcurementItemView
	for _, it := range r.data.procItems {
		if r.data.procurements[it.ProcurementID].VendorID != vendorID {
			continue
		}
		if f.StartDate != nil && it.CreatedAt.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && !it.CreatedAt.Before(*f.EndDate) {
			continue
		}
		v := r.view(it)
		if f.StoneType != "" && v.StoneType != f.StoneType {
			continue
		}
		if f.StoneName != "" && !strings.Contains(strings.ToLower(v.StoneName), strings.ToLower(f.StoneName)) {
			continue
		}
		all = append(all, v)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})
	return all
}

func (r *procurementItemRepo) ListByVendor(_ context.Context, vendorID int64, f repository.VendorItemFilter, limit, offset int) ([]*entity.ProcurementItemView, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := r.byVendor(vendorID, f)
	return page(all, limit, offset), int64(len(all)), nil
}

func (r *procurementItemRepo) VendorStats(_ context.Context, vendorID int64, f repository.VendorItemFilter) (*repository.VendorItemStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st := &repository.VendorItemStats{TotalAmount: decimal.Zero}
	procs := map[int64]struct{}{}
	for _, v := range r.byVendor(vendorID, f) {
		st.TotalItems++
		st.TotalAmount = st.TotalAmount.Add(v.ItemAmount)
		procs[v.ProcurementID] = struct{}{}
	}
	st.TotalProcurements = int64(len(procs))
	return st, nil
}

func (r *procurementItemRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).fault("procurement_items.delete"); err != nil {
		return err
	}
	if _, ok := r.data.procItems[id]; !ok {
		return domain.NotFound("procurement item")
	}
	delete(r.data.procItems, id)
	return nil
}
