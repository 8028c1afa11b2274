// Package catalog gestiona los catálogos de prendas y marcas.
package catalog

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// UseCase CRUD de catálogos con guard de integridad referencial en los borrados:
// no se puede eliminar una prenda o marca mientras algún SKU la referencie. El
// conteo y el borrado corren en la misma transacción para que un alta concurrente
// no se cuele entre ambos.
type UseCase struct {
	catalogRepo repository.CatalogRepository
	txRunner    inventory.TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(catalogRepo repository.CatalogRepository, txRunner inventory.TxRunner) *UseCase {
	return &UseCase{catalogRepo: catalogRepo, txRunner: txRunner}
}

// ListGarments devuelve el catálogo de prendas.
func (uc *UseCase) ListGarments(ctx context.Context) ([]dto.GarmentResponse, error) {
	garments, err := uc.catalogRepo.ListGarments()
	if err != nil {
		return nil, err
	}
	out := make([]dto.GarmentResponse, 0, len(garments))
	for _, g := range garments {
		out = append(out, dto.ToGarmentResponse(g))
	}
	return out, nil
}

// AddGarment crea una entrada del catálogo de prendas. Código duplicado → ErrDuplicate.
func (uc *UseCase) AddGarment(ctx context.Context, in dto.CreateGarmentRequest) (*dto.GarmentResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	garment := &entity.Garment{Code: in.Code, Name: in.Name}
	if err := uc.catalogRepo.CreateGarment(garment); err != nil {
		return nil, err
	}
	resp := dto.ToGarmentResponse(garment)
	return &resp, nil
}

// DeleteGarment elimina la prenda si ningún SKU referencia su código.
func (uc *UseCase) DeleteGarment(ctx context.Context, id int64) (int64, error) {
	var deleted int64
	err := uc.txRunner.Run(ctx, func(
		units repository.StockUnitRepository,
		_ repository.MovementRepository,
		catalog repository.CatalogRepository,
	) error {
		garment, err := catalog.GetGarmentByID(id)
		if err != nil {
			return err
		}
		if garment == nil {
			return domain.ErrNotFound
		}
		count, err := units.CountByGarmentCode(garment.Code)
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrConflict
		}
		deleted, err = catalog.DeleteGarment(id)
		return err
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// ListBrands devuelve el catálogo de marcas.
func (uc *UseCase) ListBrands(ctx context.Context) ([]dto.BrandResponse, error) {
	brands, err := uc.catalogRepo.ListBrands()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BrandResponse, 0, len(brands))
	for _, b := range brands {
		out = append(out, dto.ToBrandResponse(b))
	}
	return out, nil
}

// AddBrand crea una entrada del catálogo de marcas. Nombre duplicado → ErrDuplicate.
func (uc *UseCase) AddBrand(ctx context.Context, in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	brand := &entity.Brand{Name: in.Name}
	if err := uc.catalogRepo.CreateBrand(brand); err != nil {
		return nil, err
	}
	resp := dto.ToBrandResponse(brand)
	return &resp, nil
}

// DeleteBrand elimina la marca si ningún SKU la referencia.
func (uc *UseCase) DeleteBrand(ctx context.Context, id int64) (int64, error) {
	var deleted int64
	err := uc.txRunner.Run(ctx, func(
		units repository.StockUnitRepository,
		_ repository.MovementRepository,
		catalog repository.CatalogRepository,
	) error {
		brand, err := catalog.GetBrandByID(id)
		if err != nil {
			return err
		}
		if brand == nil {
			return domain.ErrNotFound
		}
		count, err := units.CountByBrand(id)
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrConflict
		}
		deleted, err = catalog.DeleteBrand(id)
		return err
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
