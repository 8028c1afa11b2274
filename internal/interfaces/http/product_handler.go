package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/query"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// ProductHandler maneja las consultas de stock (solo lectura).
type ProductHandler struct {
	uc *query.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *query.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar stock plano (join con catálogos)
// @Tags         productos
// @Produce      json
// @Param        search        query  string  false  "Filtro por prenda, código, marca o color"
// @Param        min_quantity  query  int     false  "Cantidad mínima"
// @Success      200  {array}  entity.ProductDetail
// @Router       /api/productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	search := c.Query("search")
	minQuantity := c.QueryInt("min_quantity", 0)
	if minQuantity < 0 {
		minQuantity = 0
	}
	out, err := h.uc.List(c.UserContext(), search, minQuantity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener un SKU por ID
// @Tags         productos
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  entity.ProductDetail
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido"})
	}
	out, err := h.uc.Get(c.UserContext(), int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// ListGrouped godoc
// @Summary      Listar stock agrupado por prenda
// @Tags         productos
// @Produce      json
// @Param        search  query  string  false  "Filtro por prenda, código, marca o color"
// @Success      200  {array}  entity.GroupedProduct
// @Router       /api/productos-agrupados [get]
func (h *ProductHandler) ListGrouped(c *fiber.Ctx) error {
	out, err := h.uc.ListGroupedByGarment(c.UserContext(), c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}
