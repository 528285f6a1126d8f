package memstore

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stoneworks/inventory-api/internal/domain"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
	"github.com/stoneworks/inventory-api/internal/domain/repository"
)

var (
	_ repository.InventoryItemRepository        = (*itemRepo)(nil)
	_ repository.InventoryTransactionRepository = (*txRepo)(nil)
)

type itemRepo Store

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sameAttributes(a, b entity.ItemAttributes) bool {
	return a.StoneID == b.StoneID &&
		a.LengthMM == b.LengthMM &&
		a.WidthMM == b.WidthMM &&
		sameID(a.ThicknessMM, b.ThicknessMM) &&
		a.IsCalibrated == b.IsCalibrated &&
		sameID(a.EdgesTypeID, b.EdgesTypeID) &&
		sameID(a.FinishingTypeID, b.FinishingTypeID) &&
		sameID(a.StageID, b.StageID)
}

func (r *itemRepo) FindOrCreate(_ context.Context, attrs entity.ItemAttributes, source entity.Source) (int64, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).fault("items.find_or_create"); err != nil {
		return 0, false, err
	}
	for id, it := range r.data.items {
		if it.Source == source && sameAttributes(it.ItemAttributes, attrs) {
			return id, false, nil
		}
	}
	if _, ok := r.data.stones[attrs.StoneID]; !ok {
		return 0, false, domain.Invalid("stone %d does not exist", attrs.StoneID)
	}
	id := (*Store)(r).nextID()
	r.data.items[id] = entity.InventoryItem{ID: id, ItemAttributes: attrs, Source: source, CreatedAt: r.now()}
	return id, true, nil
}

func (r *itemRepo) GetByID(_ context.Context, id int64) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.data.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

// GetForUpdate no necesita bloquear: Run ya serializa las transacciones.
func (r *itemRepo) GetForUpdate(ctx context.Context, id int64) (*entity.InventoryItem, error) {
	return r.GetByID(ctx, id)
}

func (r *itemRepo) view(it entity.InventoryItem) *entity.InventoryItemView {
	v := &entity.InventoryItemView{InventoryItem: it, QuantitySqMeter: decimal.Zero}
	st := r.data.stones[it.StoneID]
	v.StoneName, v.StoneType = st.StoneName, st.StoneType
	if it.StageID != nil {
		v.Stage = r.data.stages[*it.StageID]
	}
	if it.EdgesTypeID != nil {
		v.EdgesType = r.data.edges[*it.EdgesTypeID]
	}
	if it.FinishingTypeID != nil {
		v.FinishingType = r.data.finishes[*it.FinishingTypeID]
	}
	for i := range r.data.txs {
		t := r.data.txs[i]
		if t.InventoryItemID != it.ID {
			continue
		}
		v.QuantitySqMeter = v.QuantitySqMeter.Add(t.ChangeInSqMeter)
		v.QuantityPieces += t.ChangeInPieces
		if v.LastActivityDate == nil || t.CreatedAt.After(*v.LastActivityDate) {
			at := t.CreatedAt
			v.LastActivityDate = &at
		}
	}
	return v
}

func (r *itemRepo) GetView(_ context.Context, id int64) (*entity.InventoryItemView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.data.items[id]
	if !ok {
		return nil, nil
	}
	return r.view(it), nil
}

func (r *itemRepo) List(_ context.Context, f repository.InventoryItemFilter, limit, offset int) ([]*entity.InventoryItemView, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []*entity.InventoryItemView
	for _, it := range r.data.items {
		v := r.view(it)
		if f.StoneType != "" && v.StoneType != f.StoneType {
			continue
		}
		if f.StoneName != "" && !strings.Contains(strings.ToLower(v.StoneName), strings.ToLower(f.StoneName)) {
			continue
		}
		if f.StageID != nil && !sameID(v.StageID, f.StageID) {
			continue
		}
		if f.EdgesTypeID != nil && !sameID(v.EdgesTypeID, f.EdgesTypeID) {
			continue
		}
		if f.FinishingTypeID != nil && !sameID(v.FinishingTypeID, f.FinishingTypeID) {
			continue
		}
		if f.Source != "" && v.Source != f.Source {
			continue
		}
		all = append(all, v)
	}
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i].LastActivityDate, all[j].LastActivityDate
		switch {
		case a != nil && b != nil && !a.Equal(*b):
			return a.After(*b)
		case (a == nil) != (b == nil):
			return a != nil
		}
		return all[i].ID > all[j].ID
	})
	return page(all, limit, offset), int64(len(all)), nil
}

func page[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return []T{}
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}

func (r *itemRepo) ListIDs(_ context.Context) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.data.items))
	for id := range r.data.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *itemRepo) Analytics(_ context.Context) (*repository.InventoryAnalytics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a := &repository.InventoryAnalytics{TotalQuantitySqMeter: decimal.Zero}
	for _, it := range r.data.items {
		v := r.view(it)
		a.TotalQuantityPieces += v.QuantityPieces
		a.TotalQuantitySqMeter = a.TotalQuantitySqMeter.Add(v.QuantitySqMeter)
		if v.QuantityPieces <= 0 {
			continue
		}
		a.TotalItems++
		if v.StageID != nil && *v.StageID == entity.StageRawMaterial {
			a.RawMaterials++
		}
		if v.StageID != nil && *v.StageID == entity.StagePackagingComplete {
			a.PackagingComplete++
		}
	}
	return a, nil
}

func (r *itemRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).fault("items.delete"); err != nil {
		return err
	}
	if _, ok := r.data.items[id]; !ok {
		return domain.NotFound("inventory item")
	}
	delete(r.data.items, id)
	kept := r.data.txs[:0:0]
	for _, t := range r.data.txs {
		if t.InventoryItemID != id {
			kept = append(kept, t)
		}
	}
	r.data.txs = kept
	for pid, pi := range r.data.procItems {
		if pi.InventoryItemID != nil && *pi.InventoryItemID == id {
			pi.InventoryItemID = nil
			r.data.procItems[pid] = pi
		}
	}
	return nil
}

type txRepo Store

func (r *txRepo) Create(_ context.Context, t *entity.InventoryTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).fault("transactions.create"); err != nil {
		return err
	}
	if _, ok := r.data.items[t.InventoryItemID]; !ok {
		return fmt.Errorf("insert inventory transaction: item %d does not exist", t.InventoryItemID)
	}
	t.ID = (*Store)(r).nextID()
	t.CreatedAt = r.now()
	r.data.txs = append(r.data.txs, *t)
	return nil
}

func (r *txRepo) LastBalance(_ context.Context, itemID int64) (entity.Balance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.data.txs) - 1; i >= 0; i-- {
		if t := r.data.txs[i]; t.InventoryItemID == itemID {
			return t.BalanceAfter(), nil
		}
	}
	return entity.Balance{SqMeter: decimal.Zero}, nil
}

func (r *txRepo) ListByItem(_ context.Context, itemID int64, f repository.TransactionFilter) ([]*entity.InventoryTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*entity.InventoryTransaction{}
	search := strings.ToLower(f.Search)
	for i := len(r.data.txs) - 1; i >= 0; i-- {
		t := r.data.txs[i]
		if t.InventoryItemID != itemID {
			continue
		}
		if f.Direction == "add" && !t.ChangeInSqMeter.IsPositive() {
			continue
		}
		if f.Direction == "remove" && !t.ChangeInSqMeter.IsNegative() {
			continue
		}
		if f.From != nil && t.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && !t.CreatedAt.Before(*f.To) {
			continue
		}
		if search != "" && !matches(search, t.Reason, t.SourceDetails, &t.PerformedBy) {
			continue
		}
		out = append(out, &t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func matches(search string, fields ...*string) bool {
	for _, f := range fields {
		if f != nil && strings.Contains(strings.ToLower(*f), search) {
			return true
		}
	}
	return false
}

func (r *txRepo) ListChronological(_ context.Context, itemID int64) ([]*entity.InventoryTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*entity.InventoryTransaction{}
	for i := range r.data.txs {
		if t := r.data.txs[i]; t.InventoryItemID == itemID {
			out = append(out, &t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Transactions devuelve una copia del ledger completo de itemID, en orden de inserción.
func (s *Store) Transactions(itemID int64) []entity.InventoryTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.InventoryTransaction
	for _, t := range s.data.txs {
		if t.InventoryItemID == itemID {
			out = append(out, t)
		}
	}
	return out
}

// ItemCount devuelve cuántas líneas de inventario existen.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data.items)
}
