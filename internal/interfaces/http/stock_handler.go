package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// StockHandler maneja las mutaciones de stock: entradas, ediciones,
// salidas y bajas. Toda mutación queda registrada en el histórico dentro
// de la misma transacción.
type StockHandler struct {
	uc *inventory.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Add godoc
// @Summary      Registrar entrada de stock
// @Description  Si ya existe un SKU con la misma tripleta (código, color, marca) se fusiona sumando cantidades.
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddStockRequest  true  "catalogo_codigo, color, catalogo_marca, cantidad"
// @Success      201   {object}  dto.AddStockResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *StockHandler) Add(c *fiber.Ctx) error {
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.AddStock(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Edit godoc
// @Summary      Editar un SKU
// @Description  Reemplaza código, color, marca y cantidad. Si la cantidad queda en 0 el SKU se elimina tras registrar la edición.
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.EditUnitRequest  true  "catalogo_codigo, color, catalogo_marca, cantidad"
// @Success      200   {object}  dto.EditUnitResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *StockHandler) Edit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido"})
	}
	var in dto.EditUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.EditUnit(c.UserContext(), GetUserID(c), int64(id), in)
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Registrar salida de stock
// @Description  Descuenta unidades de un SKU. La fila se conserva aunque la cantidad llegue a 0.
// @Tags         salidas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RemoveStockRequest  true  "producto_id, cantidad, observaciones"
// @Success      200   {object}  dto.RemoveStockResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/salidas [post]
func (h *StockHandler) Remove(c *fiber.Ctx) error {
	var in dto.RemoveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.RemoveStock(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un SKU
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.DeletedResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido"})
	}
	deleted, err := h.uc.DeleteUnit(c.UserContext(), GetUserID(c), int64(id))
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(dto.DeletedResponse{Deleted: deleted})
}

// stockError mapea los errores de las mutaciones de stock a su código HTTP.
func stockError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrUnknownReference),
		errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "producto no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "ya existe un producto con ese código, color y marca"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
}
