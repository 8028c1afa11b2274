package dto

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// MovementPageResponse página del histórico, como la espera la vista de históricos:
// {movimientos, total, totalPages}.
type MovementPageResponse struct {
	Movements  []entity.MovementRecord `json:"movimientos"`
	Total      int64                   `json:"total"`
	TotalPages int                     `json:"totalPages"`
	Page       int                     `json:"page"`
}
