// Package movement expone la consulta paginada del histórico de movimientos.
package movement

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// PageSize tamaño fijo de página del histórico.
const PageSize = 10

// HistoryUseCase lectura del registro de movimientos: páginas de 10, más
// recientes primero, con filtro opcional por tipo.
type HistoryUseCase struct {
	movementRepo repository.MovementRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(movementRepo repository.MovementRepository) *HistoryUseCase {
	return &HistoryUseCase{movementRepo: movementRepo}
}

// Page devuelve la página pedida. kind vacío = todos los tipos; un tipo no
// reconocido es entrada inválida. Páginas fuera de rango devuelven una página
// vacía con los totales reales (el cliente acota la navegación por su cuenta).
func (uc *HistoryUseCase) Page(ctx context.Context, kind string, page int) (*dto.MovementPageResponse, error) {
	if kind != "" && !entity.ValidMovementKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * PageSize
	items, total, err := uc.movementRepo.Page(kind, PageSize, offset)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + PageSize - 1) / PageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	if items == nil {
		items = []entity.MovementRecord{}
	}
	return &dto.MovementPageResponse{
		Movements:  items,
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
	}, nil
}
