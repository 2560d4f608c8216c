// Package pdf implementa la exportación del ledger de inventario a PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: BuildTrack + título  │  Rango del reporte + fecha  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total transacciones / valor total / por tipo       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N° | Fecha | Tipo | Producto | Cant | Costo | Total  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de generación                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
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

	"github.com/buildtrack/buildtrack-api/internal/application/usecase"
	"github.com/buildtrack/buildtrack-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 194, Green: 65, Blue: 12}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.LedgerPDFGenerator = (*MarotoLedgerGenerator)(nil)

// MarotoLedgerGenerator implementa usecase.LedgerPDFGenerator usando Maroto v2.
type MarotoLedgerGenerator struct{}

// NewMarotoLedgerGenerator construye el generador.
func NewMarotoLedgerGenerator() *MarotoLedgerGenerator { return &MarotoLedgerGenerator{} }

// GenerateLedgerPDF genera el PDF y devuelve sus bytes.
func (g *MarotoLedgerGenerator) GenerateLedgerPDF(
	_ context.Context,
	period usecase.ReportPeriod,
	rows []*entity.TransactionWithDetails,
	stats *entity.TransactionStats,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de transacciones de inventario", true).
		WithAuthor("BuildTrack", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(stats))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func periodLabel(period usecase.ReportPeriod) string {
	format := func(t *time.Time, def string) string {
		if t == nil {
			return def
		}
		return t.Format("02/01/2006")
	}
	return fmt.Sprintf("Periodo: %s — %s",
		format(period.Start, "inicio"), format(period.End, "hoy"))
}

// headerRow: marca + título (izq) y rango + fecha de generación (der).
func headerRow(period usecase.ReportPeriod) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("BuildTrack", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Ledger de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE TRANSACCIONES", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(periodLabel(period), props.Text{
				Size: 8, Align: align.Right, Top: 8,
			}),
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// summaryRow: agregados del rango.
func summaryRow(stats *entity.TransactionStats) core.Row {
	types := make([]string, 0, len(stats.ByType))
	for t := range stats.ByType {
		types = append(types, t)
	}
	sort.Strings(types)
	byType := ""
	for i, t := range types {
		if i > 0 {
			byType += "   |   "
		}
		byType += fmt.Sprintf("%s: %d", t, stats.ByType[t])
	}

	return row.New(14).Add(
		col.New(12).Add(
			text.New("RESUMEN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Transacciones: %d   |   Valor total: $%s",
				stats.TotalTransactions, stats.TotalValue.StringFixed(2),
			), props.Text{Size: 9, Top: 6}),
			text.New(byType, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla del ledger.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Número", 2, align.Left),
		h("Fecha", 2, align.Left),
		h("Tipo", 1, align.Center),
		h("Producto", 3, align.Left),
		h("Cant.", 1, align.Right),
		h("Costo U.", 1, align.Right),
		h("Total", 2, align.Right),
	)
}

// tableDetailRows: una fila por entrada del ledger.
func tableDetailRows(list []*entity.TransactionWithDetails) []core.Row {
	result := make([]core.Row, 0, len(list))
	for _, t := range list {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(t.Number, props.Text{Size: 7.5, Top: 1, Left: 1})),
			col.New(2).Add(text.New(
				t.TransactionDate.Format("02/01/2006"),
				props.Text{Size: 7.5, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(t.Type, props.Text{Size: 7.5, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(t.ProductName, props.Text{Size: 7.5, Top: 1, Left: 1})),
			col.New(1).Add(text.New(
				t.Quantity.StringFixed(0),
				props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				t.UnitCost.StringFixed(2),
				props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+t.TotalValue.StringFixed(2),
				props.Text{Size: 7.5, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Reporte generado por BuildTrack. El ledger es append-only: las correcciones "+
				"aparecen como transacciones compensatorias, nunca como ediciones.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}
