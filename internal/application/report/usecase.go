// Package report genera el reporte PDF del stock actual para toma de inventario.
package report

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// StockPDFGenerator puerto de generación del PDF del listado de stock.
type StockPDFGenerator interface {
	GenerateStockReport(ctx context.Context, rows []entity.ProductDetail, generatedAt time.Time) ([]byte, error)
}

// StockReportUseCase arma el listado (mismos filtros que el listado plano) y lo
// entrega al generador PDF.
type StockReportUseCase struct {
	productRepo repository.ProductQueryRepository
	generator   StockPDFGenerator
}

// NewStockReportUseCase construye el caso de uso.
func NewStockReportUseCase(productRepo repository.ProductQueryRepository, generator StockPDFGenerator) *StockReportUseCase {
	return &StockReportUseCase{productRepo: productRepo, generator: generator}
}

// Generate devuelve los bytes del PDF con el stock vigente.
func (uc *StockReportUseCase) Generate(ctx context.Context, search string, minQuantity int) ([]byte, error) {
	if minQuantity < 0 {
		minQuantity = 0
	}
	rows, err := uc.productRepo.List(repository.ProductFilter{Search: search, MinQuantity: minQuantity})
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateStockReport(ctx, rows, time.Now())
}
