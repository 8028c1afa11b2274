package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// CatalogRepository puerto de persistencia de los catálogos de prendas y marcas.
// Los métodos Get* devuelven (nil, nil) cuando la entrada no existe.
type CatalogRepository interface {
	ListGarments() ([]*entity.Garment, error)
	GetGarmentByID(id int64) (*entity.Garment, error)
	GetGarmentByCode(code string) (*entity.Garment, error)
	CreateGarment(garment *entity.Garment) error
	DeleteGarment(id int64) (int64, error)

	ListBrands() ([]*entity.Brand, error)
	GetBrandByID(id int64) (*entity.Brand, error)
	CreateBrand(brand *entity.Brand) error
	DeleteBrand(id int64) (int64, error)
}
