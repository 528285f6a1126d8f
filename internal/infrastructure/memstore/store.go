// Package memstore implementa los repositorios y el TxRunner en memoria. Cada Run toma una
// copia del estado y la restaura si la función devuelve error, igual que un Rollback.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/stoneworks/inventory-api/internal/application/inventory"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
	"github.com/stoneworks/inventory-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

// Vendor proveedor de solo lectura.
type Vendor struct {
	ID   int64
	Name string
	City string
}

type tables struct {
	seq          int64
	items        map[int64]entity.InventoryItem
	txs          []entity.InventoryTransaction
	procurements map[int64]entity.Procurement
	procItems    map[int64]entity.ProcurementItem
	stones       map[int64]entity.Stone
	stages       map[int64]string
	edges        map[int64]string
	finishes     map[int64]string
	hsn          map[int64]entity.HSNCode
	vendors      map[int64]Vendor
	users        map[string]entity.User
}

func newTables() *tables {
	return &tables{
		items:        map[int64]entity.InventoryItem{},
		procurements: map[int64]entity.Procurement{},
		procItems:    map[int64]entity.ProcurementItem{},
		stones:       map[int64]entity.Stone{},
		stages:       map[int64]string{},
		edges:        map[int64]string{},
		finishes:     map[int64]string{},
		hsn:          map[int64]entity.HSNCode{},
		vendors:      map[int64]Vendor{},
		users:        map[string]entity.User{},
	}
}

// clone copia las tablas. Los punteros de las entidades apuntan a valores que nunca se mutan
// en sitio, así que basta con copiar mapas y slices.
func (t *tables) clone() *tables {
	c := newTables()
	c.seq = t.seq
	for k, v := range t.items {
		c.items[k] = v
	}
	c.txs = append([]entity.InventoryTransaction(nil), t.txs...)
	for k, v := range t.procurements {
		c.procurements[k] = v
	}
	for k, v := range t.procItems {
		c.procItems[k] = v
	}
	for k, v := range t.stones {
		c.stones[k] = v
	}
	for k, v := range t.stages {
		c.stages[k] = v
	}
	for k, v := range t.edges {
		c.edges[k] = v
	}
	for k, v := range t.finishes {
		c.finishes[k] = v
	}
	for k, v := range t.hsn {
		c.hsn[k] = v
	}
	for k, v := range t.vendors {
		c.vendors[k] = v
	}
	for k, v := range t.users {
		c.users[k] = v
	}
	return c
}

// Store base de datos en memoria.
type Store struct {
	txMu   sync.Mutex
	mu     sync.RWMutex
	data   *tables
	faults map[string]error
	now    func() time.Time
}

// New crea un store vacío.
func New() *Store {
	return &Store{data: newTables(), faults: map[string]error{}, now: time.Now}
}

// SetClock reemplaza el reloj usado para created_at/updated_at.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// FailOn hace que la operación op (p. ej. "transactions.create") devuelva err.
// Sirve para comprobar que un error a mitad de operación no deja estado parcial.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.faults, op)
		return
	}
	s.faults[op] = err
}

func (s *Store) fault(op string) error {
	return s.faults[op]
}

func (s *Store) nextID() int64 {
	s.data.seq++
	return s.data.seq
}

// Run ejecuta fn de forma serializada; si fn falla se restaura el estado previo.
func (s *Store) Run(_ context.Context, fn func(r inventory.Repos) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.data.clone()
	s.mu.RUnlock()

	if err := fn(s.Repos()); err != nil {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

// Repos devuelve los repositorios respaldados por el store.
func (s *Store) Repos() inventory.Repos {
	return inventory.Repos{
		Items:            (*itemRepo)(s),
		Transactions:     (*txRepo)(s),
		Procurements:     (*procurementRepo)(s),
		ProcurementItems: (*procurementItemRepo)(s),
	}
}

// Users devuelve el repositorio de operadores.
func (s *Store) Users() repository.UserRepository {
	return (*userRepo)(s)
}

// MasterData devuelve el repositorio de catálogos.
func (s *Store) MasterData() repository.MasterDataRepository {
	return (*masterRepo)(s)
}
