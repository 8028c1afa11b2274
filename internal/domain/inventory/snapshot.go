// Package inventory contiene la lógica de dominio pura del inventario.
package inventory

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// Freeze congela un StockUnit junto con sus nombres de catálogo en un snapshot
// autocontenido. Función pura y total: no consulta nada y nunca falla.
func Freeze(unit entity.StockUnit, garmentName, brandName string) entity.ProductSnapshot {
	return entity.ProductSnapshot{
		UnitID:      unit.ID,
		GarmentCode: unit.GarmentCode,
		GarmentName: garmentName,
		Color:       unit.Color,
		BrandID:     unit.BrandID,
		BrandName:   brandName,
		Quantity:    unit.Quantity,
	}
}

// FreezeEditPair congela el antes y el después de una edición.
func FreezeEditPair(oldUnit entity.StockUnit, oldGarmentName, oldBrandName string,
	newUnit entity.StockUnit, newGarmentName, newBrandName string) entity.MovementPayload {
	return entity.EditPayload(
		Freeze(oldUnit, oldGarmentName, oldBrandName),
		Freeze(newUnit, newGarmentName, newBrandName),
	)
}
