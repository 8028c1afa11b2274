package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProductQueryRepository = (*ProductQueryRepo)(nil)

// psql builder con placeholders $N de PostgreSQL.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ProductQueryRepo proyecciones de lectura del stock sobre PostgreSQL. Los
// predicados de búsqueda se construyen con squirrel contra una lista explícita
// de columnas, nunca concatenando texto del usuario.
type ProductQueryRepo struct {
	q Querier
}

// NewProductQueryRepository construye el adaptador de lectura. Pasar pool o tx (Querier).
func NewProductQueryRepository(q Querier) *ProductQueryRepo {
	return &ProductQueryRepo{q: q}
}

func (r *ProductQueryRepo) baseSelect() squirrel.SelectBuilder {
	return psql.Select(
		"p.id",
		"cp.codigo",
		"cp.nombre",
		"p.color",
		"cm.id",
		"cm.nombre",
		"p.cantidad",
	).
		From("productos p").
		Join("catalogo_prendas cp ON p.catalogo_codigo = cp.codigo").
		Join("catalogo_marcas cm ON p.catalogo_marca = cm.id")
}

func scanProductDetail(row pgx.Row) (entity.ProductDetail, error) {
	var d entity.ProductDetail
	err := row.Scan(&d.ID, &d.GarmentCode, &d.GarmentName, &d.Color, &d.BrandID, &d.BrandName, &d.Quantity)
	return d, err
}

// List devuelve el listado unido con catálogo aplicando el filtro.
func (r *ProductQueryRepo) List(filter repository.ProductFilter) ([]entity.ProductDetail, error) {
	qb := r.baseSelect()

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		qb = qb.Where(squirrel.Or{
			squirrel.ILike{"cp.nombre": like},
			squirrel.ILike{"cp.codigo": like},
			squirrel.ILike{"cm.nombre": like},
			squirrel.ILike{"p.color": like},
		})
	}
	if filter.MinQuantity > 0 {
		qb = qb.Where(squirrel.GtOrEq{"p.cantidad": filter.MinQuantity})
	}
	qb = qb.OrderBy("cp.nombre", "p.color", "cm.nombre")

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build product list query: %w", err)
	}
	rows, err := r.q.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []entity.ProductDetail
	for rows.Next() {
		d, err := scanProductDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Get devuelve un producto unido con catálogo, o (nil, nil) si no existe.
func (r *ProductQueryRepo) Get(id int64) (*entity.ProductDetail, error) {
	sql, args, err := r.baseSelect().Where(squirrel.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build product get query: %w", err)
	}
	d, err := scanProductDetail(r.q.QueryRow(context.Background(), sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &d, nil
}
