package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/catalog"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// CatalogHandler maneja los catálogos de prendas y marcas.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListGarments godoc
// @Summary      Listar catálogo de prendas
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.GarmentResponse
// @Router       /api/catalogo/prendas [get]
func (h *CatalogHandler) ListGarments(c *fiber.Ctx) error {
	out, err := h.uc.ListGarments(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// CreateGarment godoc
// @Summary      Añadir prenda al catálogo
// @Tags         catalogo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGarmentRequest  true  "codigo, nombre"
// @Success      201   {object}  dto.GarmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalogo/prendas [post]
func (h *CatalogHandler) CreateGarment(c *fiber.Ctx) error {
	var in dto.CreateGarmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.AddGarment(c.UserContext(), in)
	if err != nil {
		return catalogError(c, err, "la prenda ya existe en el catálogo")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteGarment godoc
// @Summary      Eliminar prenda del catálogo
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la prenda"
// @Success      200  {object}  dto.DeletedResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/catalogo/prendas/{id} [delete]
func (h *CatalogHandler) DeleteGarment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido"})
	}
	deleted, err := h.uc.DeleteGarment(c.UserContext(), int64(id))
	if err != nil {
		return catalogError(c, err, "")
	}
	return c.JSON(dto.DeletedResponse{Deleted: deleted})
}

// ListBrands godoc
// @Summary      Listar catálogo de marcas
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BrandResponse
// @Router       /api/catalogo/marcas [get]
func (h *CatalogHandler) ListBrands(c *fiber.Ctx) error {
	out, err := h.uc.ListBrands(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(out)
}

// CreateBrand godoc
// @Summary      Añadir marca al catálogo
// @Tags         catalogo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBrandRequest  true  "nombre"
// @Success      201   {object}  dto.BrandResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalogo/marcas [post]
func (h *CatalogHandler) CreateBrand(c *fiber.Ctx) error {
	var in dto.CreateBrandRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.AddBrand(c.UserContext(), in)
	if err != nil {
		return catalogError(c, err, "la marca ya existe en el catálogo")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteBrand godoc
// @Summary      Eliminar marca del catálogo
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la marca"
// @Success      200  {object}  dto.DeletedResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/catalogo/marcas/{id} [delete]
func (h *CatalogHandler) DeleteBrand(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido"})
	}
	deleted, err := h.uc.DeleteBrand(c.UserContext(), int64(id))
	if err != nil {
		return catalogError(c, err, "")
	}
	return c.JSON(dto.DeletedResponse{Deleted: deleted})
}

// catalogError mapea los errores de catálogo a su código HTTP.
func catalogError(c *fiber.Ctx, err error, duplicateMsg string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "datos requeridos faltantes"})
	case errors.Is(err, domain.ErrDuplicate):
		if duplicateMsg == "" {
			duplicateMsg = err.Error()
		}
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: duplicateMsg})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "registro no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
}
