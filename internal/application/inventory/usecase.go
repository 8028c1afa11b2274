package inventory

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	domaininv "github.com/jhoicas/almacen-api/internal/domain/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Observaciones estándar de los movimientos generados por el libro de stock.
const (
	obsNuevo         = "producto nuevo"
	obsActualizacion = "actualización de stock"
	obsCantidadCero  = "cantidad llegó a 0"
	obsEliminacion   = "eliminación manual"
)

// StockUseCase es la máquina de estados sobre la identidad (código, color, marca):
// entradas que se fusionan, ediciones con par old/new, salidas con verificación de
// stock y borrados. Cada operación corre en una sola transacción y deja exactamente
// un movimiento de auditoría, con snapshots tomados antes del cambio estructural.
type StockUseCase struct {
	txRunner TxRunner
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(txRunner TxRunner) *StockUseCase {
	return &StockUseCase{txRunner: txRunner}
}

// AddStock registra una entrada. Si ya existe un SKU con la misma tripleta
// (código, color, marca) suma la cantidad sobre esa fila en vez de duplicarla;
// si no, crea la fila. El snapshot del caso "fusión" se toma con la cantidad
// previa a la suma: el histórico muestra el total viejo y el delta por separado.
func (uc *StockUseCase) AddStock(ctx context.Context, userID int64, in dto.AddStockRequest) (*dto.AddStockResult, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if in.GarmentCode == "" || in.Color == "" || in.BrandID == 0 {
		return nil, domain.ErrInvalidInput
	}

	var result dto.AddStockResult
	err := uc.txRunner.Run(ctx, func(
		units repository.StockUnitRepository,
		movements repository.MovementRepository,
		catalog repository.CatalogRepository,
	) error {
		garment, err := catalog.GetGarmentByCode(in.GarmentCode)
		if err != nil {
			return err
		}
		if garment == nil {
			return domain.ErrUnknownReference
		}
		brand, err := catalog.GetBrandByID(in.BrandID)
		if err != nil {
			return err
		}
		if brand == nil {
			return domain.ErrUnknownReference
		}

		existing, err := units.GetByIdentityForUpdate(in.GarmentCode, in.Color, in.BrandID)
		if err != nil {
			return err
		}

		if existing == nil {
			unit := &entity.StockUnit{
				GarmentCode: in.GarmentCode,
				Color:       in.Color,
				BrandID:     in.BrandID,
				Quantity:    in.Quantity,
			}
			if err := units.Create(unit); err != nil {
				return err
			}
			snap := domaininv.Freeze(*unit, garment.Name, brand.Name)
			if err := movements.Create(&entity.Movement{
				Kind:         entity.MovementEntrada,
				UnitID:       &unit.ID,
				Payload:      entity.SinglePayload(snap),
				Quantity:     in.Quantity,
				UserID:       &userID,
				Observations: obsNuevo,
			}); err != nil {
				return err
			}
			result = dto.AddStockResult{ID: unit.ID, Action: dto.StockActionCreated, Quantity: in.Quantity}
			return nil
		}

		newQuantity := existing.Quantity + in.Quantity
		if newQuantity <= 0 {
			// Inalcanzable con la cantidad ya validada; se maneja defensivamente
			// igual que una edición a cero.
			snap := domaininv.Freeze(*existing, garment.Name, brand.Name)
			if _, err := units.Delete(existing.ID); err != nil {
				return err
			}
			if err := movements.Create(&entity.Movement{
				Kind:         entity.MovementEliminacion,
				UnitID:       &existing.ID,
				Payload:      entity.SinglePayload(snap),
				Quantity:     existing.Quantity,
				UserID:       &userID,
				Observations: obsCantidadCero,
			}); err != nil {
				return err
			}
			result = dto.AddStockResult{ID: existing.ID, Action: dto.StockActionDeleted}
			return nil
		}

		// Snapshot previo a la actualización: conserva el total viejo en el histórico.
		snap := domaininv.Freeze(*existing, garment.Name, brand.Name)
		if err := units.UpdateQuantity(existing.ID, newQuantity); err != nil {
			return err
		}
		if err := movements.Create(&entity.Movement{
			Kind:         entity.MovementEntrada,
			UnitID:       &existing.ID,
			Payload:      entity.SinglePayload(snap),
			Quantity:     in.Quantity,
			UserID:       &userID,
			Observations: obsActualizacion,
		}); err != nil {
			return err
		}
		result = dto.AddStockResult{ID: existing.ID, Action: dto.StockActionUpdated, Quantity: newQuantity}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// EditUnit reemplaza código, color, marca y cantidad del SKU, registrando un
// movimiento de edición con el par {old, new}. Si la cantidad nueva queda en 0
// la fila se elimina después de registrar la edición (el movimiento sigue siendo
// de tipo edición, no eliminación).
func (uc *StockUseCase) EditUnit(ctx context.Context, userID, id int64, in dto.EditUnitRequest) (*dto.EditUnitResult, error) {
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if in.GarmentCode == "" || in.Color == "" || in.BrandID == 0 {
		return nil, domain.ErrInvalidInput
	}

	var result dto.EditUnitResult
	err := uc.txRunner.Run(ctx, func(
		units repository.StockUnitRepository,
		movements repository.MovementRepository,
		catalog repository.CatalogRepository,
	) error {
		unit, err := units.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if unit == nil {
			return domain.ErrNotFound
		}

		newGarment, err := catalog.GetGarmentByCode(in.GarmentCode)
		if err != nil {
			return err
		}
		if newGarment == nil {
			return domain.ErrUnknownReference
		}
		newBrand, err := catalog.GetBrandByID(in.BrandID)
		if err != nil {
			return err
		}
		if newBrand == nil {
			return domain.ErrUnknownReference
		}

		// Nombres del estado previo; la FK garantiza que existen.
		oldGarmentName, oldBrandName, err := catalogNames(catalog, unit.GarmentCode, unit.BrandID)
		if err != nil {
			return err
		}

		oldUnit := *unit
		updated := entity.StockUnit{
			ID:          id,
			GarmentCode: in.GarmentCode,
			Color:       in.Color,
			BrandID:     in.BrandID,
			Quantity:    in.Quantity,
		}
		changes, err := units.Update(&updated)
		if err != nil {
			return err
		}

		payload := domaininv.FreezeEditPair(
			oldUnit, oldGarmentName, oldBrandName,
			updated, newGarment.Name, newBrand.Name,
		)
		if err := movements.Create(&entity.Movement{
			Kind:     entity.MovementEdicion,
			UnitID:   &id,
			Payload:  payload,
			Quantity: in.Quantity - oldUnit.Quantity,
			UserID:   &userID,
		}); err != nil {
			return err
		}

		// La edición ya quedó en el histórico; una cantidad en 0 borra la fila.
		if in.Quantity <= 0 {
			if _, err := units.Delete(id); err != nil {
				return err
			}
		}
		result = dto.EditUnitResult{Changes: changes}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RemoveStock registra una salida (venta) con verificación de suficiencia: la
// cantidad nunca se vuelve negativa. A diferencia de entradas y ediciones, una
// salida que deja la cantidad en 0 conserva la fila.
func (uc *StockUseCase) RemoveStock(ctx context.Context, userID int64, in dto.RemoveStockRequest) (*dto.RemoveStockResult, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var result dto.RemoveStockResult
	err := uc.txRunner.Run(ctx, func(
		units repository.StockUnitRepository,
		movements repository.MovementRepository,
		catalog repository.CatalogRepository,
	) error {
		unit, err := units.GetByIDForUpdate(in.UnitID)
		if err != nil {
			return err
		}
		if unit == nil {
			return domain.ErrNotFound
		}
		if in.Quantity > unit.Quantity {
			return domain.ErrInsufficientStock
		}

		garmentName, brandName, err := catalogNames(catalog, unit.GarmentCode, unit.BrandID)
		if err != nil {
			return err
		}
		snap := domaininv.Freeze(*unit, garmentName, brandName)

		newQuantity := unit.Quantity - in.Quantity
		if err := units.UpdateQuantity(unit.ID, newQuantity); err != nil {
			return err
		}
		if err := movements.Create(&entity.Movement{
			Kind:         entity.MovementSalida,
			UnitID:       &unit.ID,
			Payload:      entity.SinglePayload(snap),
			Quantity:     in.Quantity,
			UserID:       &userID,
			Observations: in.Observations,
		}); err != nil {
			return err
		}
		result = dto.RemoveStockResult{Quantity: newQuantity}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteUnit elimina el SKU (solo admin en la capa HTTP) dejando un movimiento
// de eliminación con el snapshot y la cantidad que tenía al borrarse.
func (uc *StockUseCase) DeleteUnit(ctx context.Context, userID, id int64) (int64, error) {
	var deleted int64
	err := uc.txRunner.Run(ctx, func(
		units repository.StockUnitRepository,
		movements repository.MovementRepository,
		catalog repository.CatalogRepository,
	) error {
		unit, err := units.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if unit == nil {
			return domain.ErrNotFound
		}

		garmentName, brandName, err := catalogNames(catalog, unit.GarmentCode, unit.BrandID)
		if err != nil {
			return err
		}
		snap := domaininv.Freeze(*unit, garmentName, brandName)

		deleted, err = units.Delete(id)
		if err != nil {
			return err
		}
		return movements.Create(&entity.Movement{
			Kind:         entity.MovementEliminacion,
			UnitID:       &id,
			Payload:      entity.SinglePayload(snap),
			Quantity:     unit.Quantity,
			UserID:       &userID,
			Observations: obsEliminacion,
		})
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// catalogNames resuelve los nombres de catálogo de un SKU existente. Tolera una
// entrada ausente devolviendo nombre vacío para no romper el snapshot.
func catalogNames(catalog repository.CatalogRepository, code string, brandID int64) (string, string, error) {
	garmentName, brandName := "", ""
	garment, err := catalog.GetGarmentByCode(code)
	if err != nil {
		return "", "", err
	}
	if garment != nil {
		garmentName = garment.Name
	}
	brand, err := catalog.GetBrandByID(brandID)
	if err != nil {
		return "", "", err
	}
	if brand != nil {
		brandName = brand.Name
	}
	return garmentName, brandName, nil
}
