package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/apptest"
	"github.com/jhoicas/almacen-api/internal/application/catalog"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

const testUserID int64 = 7

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// newStockFixture construye el caso de uso sobre fakes con un catálogo sembrado:
// prenda CAM-01 "Camisa manga larga" y marca "Nórdika".
func newStockFixture(t *testing.T) (*inventory.StockUseCase, *apptest.FakeTxRunner, *entity.Garment, *entity.Brand) {
	t.Helper()
	runner := apptest.NewFakeTxRunner()
	garment := runner.Catalog.SeedGarment("CAM-01", "Camisa manga larga")
	brand := runner.Catalog.SeedBrand("Nórdika")
	return inventory.NewStockUseCase(runner), runner, garment, brand
}

func addRequest(brandID int64, qty int) dto.AddStockRequest {
	return dto.AddStockRequest{
		GarmentCode: "CAM-01",
		Color:       "azul",
		BrandID:     brandID,
		Quantity:    qty,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AddStock
// ──────────────────────────────────────────────────────────────────────────────

func TestAddStock_CreaSKUNuevoConMovimientoEntrada(t *testing.T) {
	uc, runner, _, brand := newStockFixture(t)

	out, err := uc.AddStock(context.Background(), testUserID, addRequest(brand.ID, 10))
	require.NoError(t, err)

	assert.Equal(t, dto.StockActionCreated, out.Action)
	assert.Equal(t, 10, out.Quantity)

	require.Len(t, runner.Units.Units, 1)
	assert.Equal(t, 10, runner.Units.Units[0].Quantity)

	require.Len(t, runner.Movements.Movements, 1, "cada mutación deja exactamente un movimiento")
	mov := runner.Movements.Movements[0]
	assert.Equal(t, entity.MovementEntrada, mov.Kind)
	assert.Equal(t, 10, mov.Quantity)
	assert.Equal(t, "producto nuevo", mov.Observations)
	require.NotNil(t, mov.UserID)
	assert.Equal(t, testUserID, *mov.UserID)
	require.NotNil(t, mov.Payload.Single)
	assert.Equal(t, "Camisa manga larga", mov.Payload.Single.GarmentName)
	assert.Equal(t, "Nórdika", mov.Payload.Single.BrandName)
}

func TestAddStock_MismaTripletaFusionaSumandoCantidades(t *testing.T) {
	uc, runner, _, brand := newStockFixture(t)
	ctx := context.Background()

	first, err := uc.AddStock(ctx, testUserID, addRequest(brand.ID, 10))
	require.NoError(t, err)

	out, err := uc.AddStock(ctx, testUserID, addRequest(brand.ID, 15))
	require.NoError(t, err)

	assert.Equal(t, dto.StockActionUpdated, out.Action)
	assert.Equal(t, 25, out.Quantity)
	assert.Equal(t, first.ID, out.ID, "la fusión reutiliza la fila existente")

	require.Len(t, runner.Units.Units, 1, "la tripleta no debe duplicarse")
	assert.Equal(t, 25, runner.Units.Units[0].Quantity)
}

func TestAddStock_SnapshotDeFusionConservaCantidadPrevia(t *testing.T) {
	uc, runner, _, brand := newStockFixture(t)
	ctx := context.Background()

	_, err := uc.AddStock(ctx, testUserID, addRequest(brand.ID, 10))
	require.NoError(t, err)
	_, err = uc.AddStock(ctx, testUserID, addRequest(brand.ID, 15))
	require.NoError(t, err)

	require.Len(t, runner.Movements.Movements, 2)
	merge := runner.Movements.Movements[1]
	assert.Equal(t, "actualización de stock", merge.Observations)
	assert.Equal(t, 15, merge.Quantity, "el movimiento lleva el delta, no el total")
	require.NotNil(t, merge.Payload.Single)
	assert.Equal(t, 10, merge.Payload.Single.Quantity,
		"el snapshot se congela antes de sumar: total viejo en el histórico")
}

func TestAddStock_ColorDistintoCreaFilaAparte(t *testing.T) {
	uc, runner, _, brand := newStockFixture(t)
	ctx := context.Background()

	_, err := uc.AddStock(ctx, testUserID, addRequest(brand.ID, 10))
	require.NoError(t, err)

	other := addRequest(brand.ID, 5)
	other.Color = "rojo"
	out, err := uc.AddStock(ctx, testUserID, other)
	require.NoError(t, err)

	assert.Equal(t, dto.StockActionCreated, out.Action)
	assert.Len(t, runner.Units.Units, 2)
}

func TestAddStock_ValidaEntrada(t *testing.T) {
	uc, _, _, brand := newStockFixture(t)
	ctx := context.Background()

	_, err := uc.AddStock(ctx, testUserID, addRequest(brand.ID, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.AddStock(ctx, testUserID, addRequest(brand.ID, -3))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	in := addRequest(brand.ID, 5)
	in.Color = ""
	_, err = uc.AddStock(ctx, testUserID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddStock_ReferenciasDesconocidasRechazadas(t *testing.T) {
	uc, _, _, brand := newStockFixture(t)
	ctx := context.Background()

	in := addRequest(brand.ID, 5)
	in.GarmentCode = "NO-EXISTE"
	_, err := uc.AddStock(ctx, testUserID, in)
	assert.ErrorIs(t, err, domain.ErrUnknownReference)

	in = addRequest(brand.ID+99, 5)
	_, err = uc.AddStock(ctx, testUserID, in)
	assert.ErrorIs(t, err, domain.ErrUnknownReference)
}

// ──────────────────────────────────────────────────────────────────────────────
// EditUnit
// ──────────────────────────────────────────────────────────────────────────────

func TestEditUnit_RegistraParOldNewYDelta(t *testing.T) {
	uc, runner, _, brand := newStockFixture(t)
	ctx := context.Background()

	created, err := uc.AddStock(ctx, testUserID, addRequest(brand.ID, 10))
	require.NoError(t, err)

	out, err := uc.EditUnit(ctx, testUserID, created.ID, dto.EditUnitRequest{
		GarmentCode: "CAM-01",
		Color:       "verde",
		BrandID:     brand.ID,
		Quantity:    4,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Changes)

	require.Len(t, runner.Units.Units, 1)
	assert.Equal(t, "verde", runner.Units.Units[0].Color)
	assert.Equal(t, 4, runner.Units.Units[0].Quantity)

	edits := runner.Movements.ByKind(entity.MovementEdicion)
	require.Len(t, edits, 1)
	mov := edits[0]
	assert.True(t, mov.Payload.IsEdit())
	assert.Equal(t, "azul", mov.Payload.Old.Color)
	assert.Equal(t, 10, mov.Payload.Old.Quantity)
	assert.Equal(t, "verde", mov.Payload.New.Color)
	assert.Equal(t, 4, mov.Payload.New.Quantity)
	assert.Equal(t, -6, mov.Quantity, "delta = nueva - vieja")
}

func TestEditUnit_CantidadCeroEliminaLaFilaTrasRegistrarLaEdicion(t *testing.T) {
	uc, runner, _, brand := newStockFixture(t)
	ctx := context.Background()

	created, err := uc.AddStock(ctx, testUserID, addRequest(brand.ID, 10))
	require.NoError(t, err)

	out, err := uc.EditUnit(ctx, testUserID, created.ID, dto.EditUnitRequest{
		GarmentCode: "CAM-01",
		Color:       "azul",
		BrandID:     brand.ID,
		Quantity:    0,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Changes)

	assert.Empty(t, runner.Units.Units, "cantidad 0 en edición borra la fila")

	// El movimiento sigue siendo de edición, no eliminación.
	assert.Len(t, runner.Movements.ByKind(entity.MovementEdicion), 1)
	assert.Empty(t, runner.Movements.ByKind(entity.MovementEliminacion))
}

func TestEditUnit_NoExisteRetornaNotFound(t *testing.T) {
	uc, _, _, brand := newStockFixture(t)

	_, err := uc.EditUnit(context.Background(), testUserID, 999, dto.EditUnitRequest{
		GarmentCode: "CAM-01",
		Color:       "azul",
		BrandID:     brand.ID,
		Quantity:    5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEditUnit_CantidadNegativaRechazada(t *testing.T) {
	uc, _, _, brand := newStockFixture(t)

	_, err := uc.EditUnit(context.Background(), testUserID, 1, dto.EditUnitRequest{
		GarmentCode: "CAM-01",
		Color:       "azul",
		BrandID:     brand.ID,
		Quantity:    -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// RemoveStock
// ──────────────────────────────────────────────────────────────────────────────

func TestRemoveStock_DescuentaYRegistraSalida(t *testing.T) {
	uc, runner, _, brand := newStockFixture(t)
	ctx := context.Background()

	created, err := uc.AddStock(ctx, testUserID, addRequest(brand.ID, 25))
	require.NoError(t, err)

	out, err := uc.RemoveStock(ctx, testUserID, dto.RemoveStockRequest{
		UnitID:       created.ID,
		Quantity:     5,
		Observations: "venta mostrador",
	})
	require.NoError(t, err)
	assert.Equal(t, 20, out.Quantity)

	salidas := runner.Movements.ByKind(entity.MovementSalida)
	require.Len(t, salidas, 1)
	assert.Equal(t, 5, salidas[0].Quantity)
	assert.Equal(t, "venta mostrador", salidas[0].Observations)
	require.NotNil(t, salidas[0].Payload.Single)
	assert.Equal(t, 25, salidas[0].Payload.Single.Quantity,
		"el snapshot refleja el stock previo a la salida")
}

func TestRemoveStock_StockInsuficienteRechazado(t *testing.T) {
	uc, runner, _, brand := newStockFixture(t)
	ctx := context.Background()

	created, err := uc.AddStock(ctx, testUserID, addRequest(brand.ID, 10))
	require.NoError(t, err)

	_, err = uc.RemoveStock(ctx, testUserID, dto.RemoveStockRequest{UnitID: created.ID, Quantity: 20})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// La fila no debe haberse tocado ni registrado salida alguna.
	assert.Equal(t, 10, runner.Units.Units[0].Quantity)
	assert.Empty(t, runner.Movements.ByKind(entity.MovementSalida))
}

func TestRemoveStock_SalidaTotalConservaLaFilaEnCero(t *testing.T) {
	uc, runner, _, brand := newStockFixture(t)
	ctx := context.Background()

	created, err := uc.AddStock(ctx, testUserID, addRequest(brand.ID, 10))
	require.NoError(t, err)

	out, err := uc.RemoveStock(ctx, testUserID, dto.RemoveStockRequest{UnitID: created.ID, Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Quantity)

	// A diferencia de entradas y ediciones, la salida deja la fila viva en 0.
	require.Len(t, runner.Units.Units, 1)
	assert.Equal(t, 0, runner.Units.Units[0].Quantity)
}

func TestRemoveStock_ProductoInexistenteRetornaNotFound(t *testing.T) {
	uc, _, _, _ := newStockFixture(t)

	_, err := uc.RemoveStock(context.Background(), testUserID, dto.RemoveStockRequest{UnitID: 42, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteUnit
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteUnit_BorraYDejaMovimientoEliminacion(t *testing.T) {
	uc, runner, _, brand := newStockFixture(t)
	ctx := context.Background()

	created, err := uc.AddStock(ctx, testUserID, addRequest(brand.ID, 8))
	require.NoError(t, err)

	deleted, err := uc.DeleteUnit(ctx, testUserID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.Empty(t, runner.Units.Units)

	movs := runner.Movements.ByKind(entity.MovementEliminacion)
	require.Len(t, movs, 1)
	assert.Equal(t, 8, movs[0].Quantity, "guarda la cantidad que tenía al borrarse")
	assert.Equal(t, "eliminación manual", movs[0].Observations)
}

func TestDeleteUnit_NoExisteRetornaNotFound(t *testing.T) {
	uc, _, _, _ := newStockFixture(t)

	_, err := uc.DeleteUnit(context.Background(), testUserID, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recorrido completo: alta → fusión → salida insuficiente → salida total
// ──────────────────────────────────────────────────────────────────────────────

func TestCicloDeVidaDeUnSKU(t *testing.T) {
	uc, runner, _, brand := newStockFixture(t)
	ctx := context.Background()

	created, err := uc.AddStock(ctx, testUserID, addRequest(brand.ID, 10))
	require.NoError(t, err)

	merged, err := uc.AddStock(ctx, testUserID, addRequest(brand.ID, 15))
	require.NoError(t, err)
	assert.Equal(t, 25, merged.Quantity)

	_, err = uc.RemoveStock(ctx, testUserID, dto.RemoveStockRequest{UnitID: created.ID, Quantity: 30})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	out, err := uc.RemoveStock(ctx, testUserID, dto.RemoveStockRequest{UnitID: created.ID, Quantity: 25})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Quantity)
	require.Len(t, runner.Units.Units, 1, "la salida total no borra la fila")

	// Dos entradas y una salida: la salida fallida no deja rastro.
	assert.Len(t, runner.Movements.Movements, 3)

	// La fila en 0 sigue referenciando la prenda: el catálogo no puede borrarla.
	catalogUC := catalog.NewUseCase(runner.Catalog, runner)
	_, err = catalogUC.DeleteGarment(ctx, runner.Catalog.Garments[0].ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
