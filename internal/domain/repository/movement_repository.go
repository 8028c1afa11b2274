package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// MovementRepository puerto del registro de movimientos. Append-only: no hay
// Update ni Delete a propósito.
type MovementRepository interface {
	// Create persiste el movimiento y rellena ID y CreatedAt.
	Create(movement *entity.Movement) error
	// Page devuelve una página (más recientes primero) y el total de filas que
	// cumplen el filtro. kind vacío = todos los tipos.
	Page(kind string, limit, offset int) ([]entity.MovementRecord, int64, error)
}
