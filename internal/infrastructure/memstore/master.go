package memstore

import (
	"context"
	"sort"

	"github.com/stoneworks/inventory-api/internal/domain/entity"
	"github.com/stoneworks/inventory-api/internal/domain/repository"
)

var _ repository.MasterDataRepository = (*masterRepo)(nil)

// AddStone registra una piedra en el catálogo y devuelve su id.
func (s *Store) AddStone(name, stoneType string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID()
	s.data.stones[id] = entity.Stone{ID: id, StoneName: name, StoneType: stoneType}
	return id
}

// AddStage registra una etapa con id explícito (la analítica usa ids fijos).
func (s *Store) AddStage(id int64, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.stages[id] = name
}

// AddEdgesType registra un tipo de canto.
func (s *Store) AddEdgesType(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID()
	s.data.edges[id] = name
	return id
}

// AddFinishingType registra un acabado.
func (s *Store) AddFinishingType(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID()
	s.data.finishes[id] = name
	return id
}

// AddHSNCode registra un código HSN.
func (s *Store) AddHSNCode(code, description string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID()
	s.data.hsn[id] = entity.HSNCode{ID: id, Code: code, Description: description}
	return id
}

// AddVendor registra un proveedor.
func (s *Store) AddVendor(name, city string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID()
	s.data.vendors[id] = Vendor{ID: id, Name: name, City: city}
	return id
}

type masterRepo Store

func (r *masterRepo) Stones(_ context.Context) ([]*entity.Stone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Stone, 0, len(r.data.stones))
	for _, st := range r.data.stones {
		st := st
		out = append(out, &st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StoneName < out[j].StoneName })
	return out, nil
}

func (r *masterRepo) Stages(_ context.Context) ([]*entity.LookupEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lookupList(r.data.stages), nil
}

func (r *masterRepo) EdgesTypes(_ context.Context) ([]*entity.LookupEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lookupList(r.data.edges), nil
}

func (r *masterRepo) FinishingTypes(_ context.Context) ([]*entity.LookupEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lookupList(r.data.finishes), nil
}

func (r *masterRepo) HSNCodes(_ context.Context) ([]*entity.HSNCode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.HSNCode, 0, len(r.data.hsn))
	for _, h := range r.data.hsn {
		h := h
		out = append(out, &h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func lookupList(m map[int64]string) []*entity.LookupEntry {
	out := make([]*entity.LookupEntry, 0, len(m))
	for id, name := range m {
		out = append(out, &entity.LookupEntry{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
