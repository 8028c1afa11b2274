package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/report"
)

// ReportHandler genera reportes descargables.
type ReportHandler struct {
	uc *report.StockReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.StockReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockPDF godoc
// @Summary      Descargar reporte de inventario en PDF
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Param        search        query  string  false  "Filtro por prenda, código, marca o color"
// @Param        min_quantity  query  int     false  "Cantidad mínima"
// @Success      200  {file}  binary
// @Router       /api/reportes/inventario [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	search := c.Query("search")
	minQuantity := c.QueryInt("min_quantity", 0)
	if minQuantity < 0 {
		minQuantity = 0
	}
	pdfBytes, err := h.uc.Generate(c.UserContext(), search, minQuantity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	filename := fmt.Sprintf("inventario-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
