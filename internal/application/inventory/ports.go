package inventory

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que la mutación del stock y su movimiento de auditoría
// se confirmen (o deshagan) juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		units repository.StockUnitRepository,
		movements repository.MovementRepository,
		catalog repository.CatalogRepository,
	) error) error
}
