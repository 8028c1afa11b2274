package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/movement"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// MovementHandler maneja la consulta paginada del histórico.
type MovementHandler struct {
	uc *movement.HistoryUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *movement.HistoryUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Page godoc
// @Summary      Consultar histórico de movimientos
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        page  query  int     false  "Página (desde 1)"  default(1)
// @Param        type  query  string  false  "entrada | salida | edicion | eliminacion"
// @Success      200   {object}  dto.MovementPageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movimientos [get]
func (h *MovementHandler) Page(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	kind := c.Query("type")
	out, err := h.uc.Page(c.UserContext(), kind, page)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "tipo de movimiento no válido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}
