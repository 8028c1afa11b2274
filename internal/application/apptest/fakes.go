// Package apptest provee dobles en memoria de los puertos de persistencia
// para los tests de los casos de uso.
package apptest

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Catálogos
// ──────────────────────────────────────────────────────────────────────────────

// FakeCatalogRepo implementación en memoria de repository.CatalogRepository.
type FakeCatalogRepo struct {
	Garments []*entity.Garment
	Brands   []*entity.Brand
	nextID   int64
}

var _ repository.CatalogRepository = (*FakeCatalogRepo)(nil)

func (f *FakeCatalogRepo) ListGarments() ([]*entity.Garment, error) {
	return append([]*entity.Garment(nil), f.Garments...), nil
}

func (f *FakeCatalogRepo) GetGarmentByID(id int64) (*entity.Garment, error) {
	for _, g := range f.Garments {
		if g.ID == id {
			cp := *g
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *FakeCatalogRepo) GetGarmentByCode(code string) (*entity.Garment, error) {
	for _, g := range f.Garments {
		if g.Code == code {
			cp := *g
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *FakeCatalogRepo) CreateGarment(garment *entity.Garment) error {
	for _, g := range f.Garments {
		if g.Code == garment.Code {
			return domain.ErrDuplicate
		}
	}
	f.nextID++
	garment.ID = f.nextID
	cp := *garment
	f.Garments = append(f.Garments, &cp)
	return nil
}

func (f *FakeCatalogRepo) DeleteGarment(id int64) (int64, error) {
	for i, g := range f.Garments {
		if g.ID == id {
			f.Garments = append(f.Garments[:i], f.Garments[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *FakeCatalogRepo) ListBrands() ([]*entity.Brand, error) {
	return append([]*entity.Brand(nil), f.Brands...), nil
}

func (f *FakeCatalogRepo) GetBrandByID(id int64) (*entity.Brand, error) {
	for _, b := range f.Brands {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *FakeCatalogRepo) CreateBrand(brand *entity.Brand) error {
	for _, b := range f.Brands {
		if b.Name == brand.Name {
			return domain.ErrDuplicate
		}
	}
	f.nextID++
	brand.ID = f.nextID
	cp := *brand
	f.Brands = append(f.Brands, &cp)
	return nil
}

func (f *FakeCatalogRepo) DeleteBrand(id int64) (int64, error) {
	for i, b := range f.Brands {
		if b.ID == id {
			f.Brands = append(f.Brands[:i], f.Brands[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// SeedGarment añade una prenda con ID asignado y la devuelve.
func (f *FakeCatalogRepo) SeedGarment(code, name string) *entity.Garment {
	g := &entity.Garment{Code: code, Name: name}
	_ = f.CreateGarment(g)
	return g
}

// SeedBrand añade una marca con ID asignado y la devuelve.
func (f *FakeCatalogRepo) SeedBrand(name string) *entity.Brand {
	b := &entity.Brand{Name: name}
	_ = f.CreateBrand(b)
	return b
}

// ──────────────────────────────────────────────────────────────────────────────
// Unidades de stock
// ──────────────────────────────────────────────────────────────────────────────

// FakeStockUnitRepo implementación en memoria de repository.StockUnitRepository.
type FakeStockUnitRepo struct {
	Units  []*entity.StockUnit
	nextID int64
}

var _ repository.StockUnitRepository = (*FakeStockUnitRepo)(nil)

func (f *FakeStockUnitRepo) GetByID(id int64) (*entity.StockUnit, error) {
	for _, u := range f.Units {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *FakeStockUnitRepo) GetByIDForUpdate(id int64) (*entity.StockUnit, error) {
	return f.GetByID(id)
}

func (f *FakeStockUnitRepo) GetByIdentityForUpdate(garmentCode, color string, brandID int64) (*entity.StockUnit, error) {
	for _, u := range f.Units {
		if u.GarmentCode == garmentCode && u.Color == color && u.BrandID == brandID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *FakeStockUnitRepo) Create(unit *entity.StockUnit) error {
	if existing, _ := f.GetByIdentityForUpdate(unit.GarmentCode, unit.Color, unit.BrandID); existing != nil {
		return domain.ErrDuplicate
	}
	f.nextID++
	unit.ID = f.nextID
	cp := *unit
	f.Units = append(f.Units, &cp)
	return nil
}

func (f *FakeStockUnitRepo) Update(unit *entity.StockUnit) (int64, error) {
	for _, u := range f.Units {
		if u.ID == unit.ID {
			*u = *unit
			return 1, nil
		}
	}
	return 0, nil
}

func (f *FakeStockUnitRepo) UpdateQuantity(id int64, quantity int) error {
	for _, u := range f.Units {
		if u.ID == id {
			u.Quantity = quantity
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *FakeStockUnitRepo) Delete(id int64) (int64, error) {
	for i, u := range f.Units {
		if u.ID == id {
			f.Units = append(f.Units[:i], f.Units[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *FakeStockUnitRepo) CountByGarmentCode(code string) (int64, error) {
	var n int64
	for _, u := range f.Units {
		if u.GarmentCode == code {
			n++
		}
	}
	return n, nil
}

func (f *FakeStockUnitRepo) CountByBrand(brandID int64) (int64, error) {
	var n int64
	for _, u := range f.Units {
		if u.BrandID == brandID {
			n++
		}
	}
	return n, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos
// ──────────────────────────────────────────────────────────────────────────────

// FakeMovementRepo implementación en memoria de repository.MovementRepository.
// UserNames resuelve el nombre mostrado, emulando el LEFT JOIN con usuarios.
type FakeMovementRepo struct {
	Movements []entity.Movement
	UserNames map[int64]string
	nextID    int64
	now       time.Time
}

var _ repository.MovementRepository = (*FakeMovementRepo)(nil)

func (f *FakeMovementRepo) Create(movement *entity.Movement) error {
	f.nextID++
	movement.ID = f.nextID
	if f.now.IsZero() {
		f.now = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	f.now = f.now.Add(time.Second)
	movement.CreatedAt = f.now
	f.Movements = append(f.Movements, *movement)
	return nil
}

func (f *FakeMovementRepo) Page(kind string, limit, offset int) ([]entity.MovementRecord, int64, error) {
	var filtered []entity.Movement
	for _, m := range f.Movements {
		if kind == "" || m.Kind == kind {
			filtered = append(filtered, m)
		}
	}
	total := int64(len(filtered))

	// Más recientes primero.
	records := make([]entity.MovementRecord, 0, limit)
	for i := len(filtered) - 1 - offset; i >= 0 && len(records) < limit; i-- {
		m := filtered[i]
		var userName string
		if m.UserID != nil && f.UserNames != nil {
			userName = f.UserNames[*m.UserID]
		}
		records = append(records, entity.MovementRecord{
			ID:           m.ID,
			Kind:         m.Kind,
			UnitID:       m.UnitID,
			Payload:      m.Payload,
			Quantity:     m.Quantity,
			UserName:     userName,
			Observations: m.Observations,
			CreatedAt:    m.CreatedAt,
		})
	}
	return records, total, nil
}

// ByKind devuelve los movimientos registrados del tipo dado, en orden de inserción.
func (f *FakeMovementRepo) ByKind(kind string) []entity.Movement {
	var out []entity.Movement
	for _, m := range f.Movements {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

// FakeUserRepo implementación en memoria de repository.UserRepository.
type FakeUserRepo struct {
	Users  []*entity.User
	nextID int64
}

var _ repository.UserRepository = (*FakeUserRepo)(nil)

func (f *FakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	for _, u := range f.Users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *FakeUserRepo) GetByID(id int64) (*entity.User, error) {
	for _, u := range f.Users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *FakeUserRepo) List() ([]*entity.User, error) {
	return append([]*entity.User(nil), f.Users...), nil
}

func (f *FakeUserRepo) Create(user *entity.User) error {
	for _, u := range f.Users {
		if strings.EqualFold(u.Username, user.Username) {
			return domain.ErrDuplicate
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	cp := *user
	f.Users = append(f.Users, &cp)
	return nil
}

func (f *FakeUserRepo) Delete(id int64) (int64, error) {
	for i, u := range f.Users {
		if u.ID == id {
			f.Users = append(f.Users[:i], f.Users[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *FakeUserRepo) Count() (int64, error) {
	return int64(len(f.Users)), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner
// ──────────────────────────────────────────────────────────────────────────────

// FakeTxRunner ejecuta el callback directamente sobre los fakes, sin
// transacción real. Los tres repos comparten estado entre llamadas.
type FakeTxRunner struct {
	Units     *FakeStockUnitRepo
	Movements *FakeMovementRepo
	Catalog   *FakeCatalogRepo
}

// NewFakeTxRunner construye el runner con repos vacíos.
func NewFakeTxRunner() *FakeTxRunner {
	return &FakeTxRunner{
		Units:     &FakeStockUnitRepo{},
		Movements: &FakeMovementRepo{},
		Catalog:   &FakeCatalogRepo{},
	}
}

func (f *FakeTxRunner) Run(
	_ context.Context,
	fn func(units repository.StockUnitRepository, movements repository.MovementRepository, catalog repository.CatalogRepository) error,
) error {
	return fn(f.Units, f.Movements, f.Catalog)
}
