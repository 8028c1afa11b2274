// Package query contiene las proyecciones de lectura del stock.
package query

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ProductUseCase listado plano con filtros, consulta individual y vista agrupada
// por prenda para el filtrado facetado del cliente.
type ProductUseCase struct {
	productRepo repository.ProductQueryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductQueryRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// List devuelve el listado unido con catálogo, con búsqueda insensible a
// mayúsculas sobre nombre/código de prenda, marca y color, y corte por cantidad
// mínima (el selector de ventas usa minQuantity=1 para ocultar filas en 0).
func (uc *ProductUseCase) List(ctx context.Context, search string, minQuantity int) ([]entity.ProductDetail, error) {
	if minQuantity < 0 {
		minQuantity = 0
	}
	rows, err := uc.productRepo.List(repository.ProductFilter{Search: search, MinQuantity: minQuantity})
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []entity.ProductDetail{}
	}
	return rows, nil
}

// Get devuelve un producto unido con catálogo, o ErrNotFound.
func (uc *ProductUseCase) Get(ctx context.Context, id int64) (*entity.ProductDetail, error) {
	detail, err := uc.productRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return detail, nil
}

// ListGroupedByGarment devuelve una entrada por código de prenda con stock en
// alguna variante, cada una con sus combinaciones (color, marca, cantidad). El
// orden de los grupos sigue el del listado plano (nombre de prenda, color).
func (uc *ProductUseCase) ListGroupedByGarment(ctx context.Context, search string) ([]entity.GroupedProduct, error) {
	rows, err := uc.productRepo.List(repository.ProductFilter{Search: search, MinQuantity: 1})
	if err != nil {
		return nil, err
	}
	return groupByGarment(rows), nil
}

// groupByGarment agrupa las filas planas por código de prenda conservando el
// orden de aparición.
func groupByGarment(rows []entity.ProductDetail) []entity.GroupedProduct {
	groups := []entity.GroupedProduct{}
	index := map[string]int{}
	for _, row := range rows {
		i, ok := index[row.GarmentCode]
		if !ok {
			i = len(groups)
			index[row.GarmentCode] = i
			groups = append(groups, entity.GroupedProduct{
				Code: row.GarmentCode,
				Name: row.GarmentName,
			})
		}
		groups[i].Total += row.Quantity
		groups[i].Variants = append(groups[i].Variants, entity.ProductVariant{
			ID:        row.ID,
			Color:     row.Color,
			BrandID:   row.BrandID,
			BrandName: row.BrandName,
			Quantity:  row.Quantity,
		})
	}
	return groups
}
