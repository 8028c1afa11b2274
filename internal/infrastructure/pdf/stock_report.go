// Package pdf implementa el reporte imprimible del stock vigente para la toma
// física de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Prenda | Color | Marca | Cantidad           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: SKUs listados / unidades totales                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/almacen-api/internal/application/report"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStockReportGenerator implementa report.StockPDFGenerator usando Maroto v2.
type MarotoStockReportGenerator struct{}

var _ report.StockPDFGenerator = (*MarotoStockReportGenerator)(nil)

// NewMarotoStockReportGenerator construye el generador.
func NewMarotoStockReportGenerator() *MarotoStockReportGenerator {
	return &MarotoStockReportGenerator{}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoStockReportGenerator) GenerateStockReport(
	_ context.Context,
	rows []entity.ProductDetail,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(tableDetailRow(r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Inventario de almacén", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Stock vigente por prenda, color y marca", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 4, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de stock con fondo azul.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		}))
	}
	return row.New(7).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Código", 2, align.Left),
		h("Prenda", 4, align.Left),
		h("Color", 2, align.Left),
		h("Marca", 2, align.Left),
		h("Cantidad", 2, align.Right),
	)
}

func tableDetailRow(d entity.ProductDetail) core.Row {
	body := props.Text{Size: 9, Top: 1}
	return row.New(6).Add(
		col.New(2).Add(text.New(d.GarmentCode, body)),
		col.New(4).Add(text.New(d.GarmentName, body)),
		col.New(2).Add(text.New(d.Color, body)),
		col.New(2).Add(text.New(d.BrandName, body)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", d.Quantity), props.Text{
			Size: 9, Top: 1, Align: align.Right,
		})),
	)
}

func totalsRow(rows []entity.ProductDetail) core.Row {
	totalUnits := 0
	for _, r := range rows {
		totalUnits += r.Quantity
	}
	label := props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1.5}
	return row.New(8).Add(
		col.New(8).Add(text.New(fmt.Sprintf("SKUs listados: %d", len(rows)), label)),
		col.New(4).Add(text.New(fmt.Sprintf("Unidades totales: %d", totalUnits), props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1.5, Align: align.Right,
		})),
	)
}
