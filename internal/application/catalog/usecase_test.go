package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/apptest"
	"github.com/jhoicas/almacen-api/internal/application/catalog"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func newCatalogFixture(t *testing.T) (*catalog.UseCase, *apptest.FakeTxRunner) {
	t.Helper()
	runner := apptest.NewFakeTxRunner()
	return catalog.NewUseCase(runner.Catalog, runner), runner
}

func TestAddGarment_CreaYListaEnOrden(t *testing.T) {
	uc, _ := newCatalogFixture(t)
	ctx := context.Background()

	first, err := uc.AddGarment(ctx, dto.CreateGarmentRequest{Code: "CAM-01", Name: "Camisa"})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	_, err = uc.AddGarment(ctx, dto.CreateGarmentRequest{Code: "PAN-02", Name: "Pantalón"})
	require.NoError(t, err)

	list, err := uc.ListGarments(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "CAM-01", list[0].Code)
	assert.Equal(t, "PAN-02", list[1].Code)
}

func TestAddGarment_CodigoDuplicadoRechazado(t *testing.T) {
	uc, _ := newCatalogFixture(t)
	ctx := context.Background()

	_, err := uc.AddGarment(ctx, dto.CreateGarmentRequest{Code: "CAM-01", Name: "Camisa"})
	require.NoError(t, err)

	_, err = uc.AddGarment(ctx, dto.CreateGarmentRequest{Code: "CAM-01", Name: "Otra camisa"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAddGarment_CamposVaciosRechazados(t *testing.T) {
	uc, _ := newCatalogFixture(t)

	_, err := uc.AddGarment(context.Background(), dto.CreateGarmentRequest{Code: "", Name: "Camisa"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AddGarment(context.Background(), dto.CreateGarmentRequest{Code: "CAM-01", Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteGarment_BloqueadaConStockReferenciado(t *testing.T) {
	uc, runner := newCatalogFixture(t)
	ctx := context.Background()

	garment := runner.Catalog.SeedGarment("CAM-01", "Camisa")
	brand := runner.Catalog.SeedBrand("Nórdika")
	require.NoError(t, runner.Units.Create(&entity.StockUnit{
		GarmentCode: garment.Code, Color: "azul", BrandID: brand.ID, Quantity: 3,
	}))

	_, err := uc.DeleteGarment(ctx, garment.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Sin referencias, el borrado procede.
	_, err = runner.Units.Delete(1)
	require.NoError(t, err)
	deleted, err := uc.DeleteGarment(ctx, garment.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestDeleteGarment_NoExisteRetornaNotFound(t *testing.T) {
	uc, _ := newCatalogFixture(t)

	_, err := uc.DeleteGarment(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddBrand_NombreDuplicadoRechazado(t *testing.T) {
	uc, _ := newCatalogFixture(t)
	ctx := context.Background()

	_, err := uc.AddBrand(ctx, dto.CreateBrandRequest{Name: "Nórdika"})
	require.NoError(t, err)

	_, err = uc.AddBrand(ctx, dto.CreateBrandRequest{Name: "Nórdika"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestDeleteBrand_BloqueadaConStockReferenciado(t *testing.T) {
	uc, runner := newCatalogFixture(t)
	ctx := context.Background()

	garment := runner.Catalog.SeedGarment("CAM-01", "Camisa")
	brand := runner.Catalog.SeedBrand("Nórdika")
	require.NoError(t, runner.Units.Create(&entity.StockUnit{
		GarmentCode: garment.Code, Color: "azul", BrandID: brand.ID, Quantity: 3,
	}))

	_, err := uc.DeleteBrand(ctx, brand.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
