package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockUnitRepository = (*StockUnitRepo)(nil)

// StockUnitRepo implementación de StockUnitRepository sobre PostgreSQL (usable con pool o tx).
type StockUnitRepo struct {
	q Querier
}

// NewStockUnitRepository construye el adaptador de unidades de stock. Pasar pool o tx (Querier).
func NewStockUnitRepository(q Querier) *StockUnitRepo {
	return &StockUnitRepo{q: q}
}

const stockUnitColumns = `id, catalogo_codigo, color, catalogo_marca, cantidad`

func (r *StockUnitRepo) scanOne(row pgx.Row, op string) (*entity.StockUnit, error) {
	var u entity.StockUnit
	err := row.Scan(&u.ID, &u.GarmentCode, &u.Color, &u.BrandID, &u.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

// GetByID obtiene una unidad por id.
func (r *StockUnitRepo) GetByID(id int64) (*entity.StockUnit, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+stockUnitColumns+` FROM productos WHERE id = $1`, id)
	return r.scanOne(row, "get stock unit")
}

// GetByIDForUpdate obtiene la unidad y bloquea la fila (SELECT FOR UPDATE).
func (r *StockUnitRepo) GetByIDForUpdate(id int64) (*entity.StockUnit, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+stockUnitColumns+` FROM productos WHERE id = $1 FOR UPDATE`, id)
	return r.scanOne(row, "get stock unit for update")
}

// GetByIdentityForUpdate busca por la tripleta de identidad y bloquea la fila.
func (r *StockUnitRepo) GetByIdentityForUpdate(garmentCode, color string, brandID int64) (*entity.StockUnit, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+stockUnitColumns+` FROM productos
		 WHERE catalogo_codigo = $1 AND color = $2 AND catalogo_marca = $3
		 FOR UPDATE`, garmentCode, color, brandID)
	return r.scanOne(row, "get stock unit by identity")
}

// Create inserta la unidad y rellena su ID. El índice único sobre la tripleta
// convierte una creación concurrente de la misma identidad en ErrDuplicate.
func (r *StockUnitRepo) Create(unit *entity.StockUnit) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO productos (catalogo_codigo, color, catalogo_marca, cantidad)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		unit.GarmentCode, unit.Color, unit.BrandID, unit.Quantity).Scan(&unit.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock unit: %w", err)
	}
	return nil
}

// Update reemplaza todos los campos de la unidad; devuelve filas afectadas.
func (r *StockUnitRepo) Update(unit *entity.StockUnit) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE productos SET
			catalogo_codigo = $1,
			color = $2,
			catalogo_marca = $3,
			cantidad = $4
		 WHERE id = $5`,
		unit.GarmentCode, unit.Color, unit.BrandID, unit.Quantity, unit.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("update stock unit: %w", err)
	}
	return tag.RowsAffected(), nil
}

// UpdateQuantity actualiza solo la cantidad.
func (r *StockUnitRepo) UpdateQuantity(id int64, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET cantidad = $1 WHERE id = $2`, quantity, id)
	if err != nil {
		return fmt.Errorf("update stock quantity: %w", err)
	}
	return nil
}

// Delete elimina la unidad; devuelve filas eliminadas.
func (r *StockUnitRepo) Delete(id int64) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete stock unit: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CountByGarmentCode cuenta las unidades que referencian un código de prenda.
func (r *StockUnitRepo) CountByGarmentCode(code string) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM productos WHERE catalogo_codigo = $1`, code).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count by garment code: %w", err)
	}
	return count, nil
}

// CountByBrand cuenta las unidades que referencian una marca.
func (r *StockUnitRepo) CountByBrand(brandID int64) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM productos WHERE catalogo_marca = $1`, brandID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count by brand: %w", err)
	}
	return count, nil
}
