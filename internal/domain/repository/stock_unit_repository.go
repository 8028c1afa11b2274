package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// StockUnitRepository puerto de persistencia de unidades de stock.
// Los métodos Get* devuelven (nil, nil) cuando la fila no existe.
// Los *ForUpdate bloquean la fila (SELECT FOR UPDATE); usarlos solo dentro de una tx.
type StockUnitRepository interface {
	GetByID(id int64) (*entity.StockUnit, error)
	GetByIDForUpdate(id int64) (*entity.StockUnit, error)
	GetByIdentityForUpdate(garmentCode, color string, brandID int64) (*entity.StockUnit, error)
	// Create persiste la unidad y rellena su ID.
	Create(unit *entity.StockUnit) error
	// Update reemplaza todos los campos; devuelve filas afectadas (0 o 1).
	Update(unit *entity.StockUnit) (int64, error)
	UpdateQuantity(id int64, quantity int) error
	// Delete devuelve filas eliminadas (0 o 1).
	Delete(id int64) (int64, error)

	// Conteos de integridad referencial para los guards de borrado de catálogo.
	CountByGarmentCode(code string) (int64, error)
	CountByBrand(brandID int64) (int64, error)
}

// ProductFilter parámetros de búsqueda del listado de productos.
type ProductFilter struct {
	// Search aplica ILIKE '%...%' sobre nombre/código de prenda, marca y color.
	// Vacío = sin filtro de texto.
	Search string
	// MinQuantity excluye filas con cantidad menor (0 = sin filtro).
	MinQuantity int
}

// ProductQueryRepository proyecciones de lectura del stock (unidas con catálogo).
type ProductQueryRepository interface {
	List(filter ProductFilter) ([]entity.ProductDetail, error)
	// Get devuelve (nil, nil) si el producto no existe.
	Get(id int64) (*entity.ProductDetail, error)
}
