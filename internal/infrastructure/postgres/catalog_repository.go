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

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación de CatalogRepository sobre PostgreSQL (usable con pool o tx).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador de catálogos. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// ListGarments devuelve todas las prendas del catálogo ordenadas por código.
func (r *CatalogRepo) ListGarments() ([]*entity.Garment, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, codigo, nombre FROM catalogo_prendas ORDER BY codigo`)
	if err != nil {
		return nil, fmt.Errorf("list garments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Garment
	for rows.Next() {
		var g entity.Garment
		if err := rows.Scan(&g.ID, &g.Code, &g.Name); err != nil {
			return nil, fmt.Errorf("scan garment: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// GetGarmentByID obtiene una prenda por id de catálogo.
func (r *CatalogRepo) GetGarmentByID(id int64) (*entity.Garment, error) {
	var g entity.Garment
	err := r.q.QueryRow(context.Background(),
		`SELECT id, codigo, nombre FROM catalogo_prendas WHERE id = $1`, id).
		Scan(&g.ID, &g.Code, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get garment: %w", err)
	}
	return &g, nil
}

// GetGarmentByCode obtiene una prenda por su código natural.
func (r *CatalogRepo) GetGarmentByCode(code string) (*entity.Garment, error) {
	var g entity.Garment
	err := r.q.QueryRow(context.Background(),
		`SELECT id, codigo, nombre FROM catalogo_prendas WHERE codigo = $1`, code).
		Scan(&g.ID, &g.Code, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get garment by code: %w", err)
	}
	return &g, nil
}

// CreateGarment inserta una prenda y rellena su ID. Código duplicado → ErrDuplicate.
func (r *CatalogRepo) CreateGarment(garment *entity.Garment) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO catalogo_prendas (codigo, nombre) VALUES ($1, $2) RETURNING id`,
		garment.Code, garment.Name).Scan(&garment.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert garment: %w", err)
	}
	return nil
}

// DeleteGarment elimina por id; devuelve filas eliminadas.
func (r *CatalogRepo) DeleteGarment(id int64) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM catalogo_prendas WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete garment: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListBrands devuelve todas las marcas ordenadas por nombre.
func (r *CatalogRepo) ListBrands() ([]*entity.Brand, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre FROM catalogo_marcas ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()
	var list []*entity.Brand
	for rows.Next() {
		var b entity.Brand
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// GetBrandByID obtiene una marca por id.
func (r *CatalogRepo) GetBrandByID(id int64) (*entity.Brand, error) {
	var b entity.Brand
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre FROM catalogo_marcas WHERE id = $1`, id).
		Scan(&b.ID, &b.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return &b, nil
}

// CreateBrand inserta una marca y rellena su ID. Nombre duplicado → ErrDuplicate.
func (r *CatalogRepo) CreateBrand(brand *entity.Brand) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO catalogo_marcas (nombre) VALUES ($1) RETURNING id`,
		brand.Name).Scan(&brand.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert brand: %w", err)
	}
	return nil
}

// DeleteBrand elimina por id; devuelve filas eliminadas.
func (r *CatalogRepo) DeleteBrand(id int64) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM catalogo_marcas WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete brand: %w", err)
	}
	return tag.RowsAffected(), nil
}
