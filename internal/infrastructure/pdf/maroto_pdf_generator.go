// Package pdf implementa la memoria de cálculo imprimible de una simulación de
// importación o de una evaluación de drawback.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + escenario   │  Producto / NCM + fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VALORACIÓN: FOB / Flete / Seguro / CIF / Valor aduanero     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Tributo | Base | Alícuota | Monto                    │
//	│  GASTOS: Concepto | Monto                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Tributos / Gastos / COSTO FINAL / Costo unitario   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: calculation_id + QR                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/comex-api/internal/application/dto"
	"github.com/jhoicas/comex-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorAlert   = &props.Color{Red: 170, Green: 40, Blue: 30}
)

// ContentType tipo MIME del documento generado.
const ContentType = "application/pdf"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa simulation.Renderer usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador. author aparece en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: nonEmpty(author, "comex-api")}
}

// ContentType cabecera HTTP del documento.
func (g *MarotoPDFGenerator) ContentType() string { return ContentType }

func (g *MarotoPDFGenerator) newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.author, true).
		Build()
	return maroto.New(cfg)
}

// RenderCost genera la memoria de cálculo del costo de importación.
func (g *MarotoPDFGenerator) RenderCost(_ context.Context, res *dto.CostResponse) ([]byte, error) {
	if res == nil {
		return nil, fmt.Errorf("pdf: resultado nulo")
	}
	m := g.newDocument("Memoria de cálculo de importación")

	m.AddRows(headerRow("MEMORIA DE CÁLCULO DE IMPORTACIÓN", scenarioLabel(res.Scenario),
		nonEmpty(res.Product, "—"), "NCM: "+nonEmpty(res.NCM, "—")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(valuationRow(res))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de tributos
	m.AddRows(sectionTitle("TRIBUTOS"))
	m.AddRows(taxHeaderRow())
	m.AddRows(taxRows(res.Taxes)...)

	if len(res.Expenses) > 0 {
		m.AddRows(line.NewRow(2))
		m.AddRows(sectionTitle("GASTOS ACCESORIOS"))
		m.AddRows(expenseRows(res.Expenses)...)
	}

	// Totales
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(
		[][2]string{
			{"Tributos:", money.BRL(res.TotalTaxes)},
			{"Gastos:", money.BRL(res.TotalExpenses)},
			{"Costo unitario:", money.BRL(res.UnitCost)},
		},
		[2]string{"COSTO FINAL:", money.BRL(res.TotalCost)},
	))

	m.AddRows(footerRows(res.CalculationID)...)
	return generate(m)
}

// RenderDrawback genera el informe del régimen de drawback.
func (g *MarotoPDFGenerator) RenderDrawback(_ context.Context, res *dto.DrawbackResponse) ([]byte, error) {
	if res == nil {
		return nil, fmt.Errorf("pdf: resultado nulo")
	}
	m := g.newDocument("Evaluación de drawback")

	m.AddRows(headerRow("EVALUACIÓN DE DRAWBACK", "Modalidad: "+res.Modality,
		"Acto concesorio "+nonEmpty(res.ActNumber, "—"), "Fecha de referencia: "+res.CurrentDate))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(statusRow(res))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("TRIBUTOS BENEFICIADOS"))
	m.AddRows(taxHeaderRow())
	m.AddRows(taxRows(res.BenefitedTaxes)...)
	if len(res.NotBenefitedTaxes) > 0 {
		m.AddRows(line.NewRow(2))
		m.AddRows(sectionTitle("TRIBUTOS NO BENEFICIADOS"))
		m.AddRows(taxRows(res.NotBenefitedTaxes)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(
		[][2]string{
			{"No beneficiado:", money.BRL(res.NotBenefitedAmount)},
			{"Saldo de cantidad:", quantity(res.RemainingQuantity)},
			{"Saldo de valor:", money.BRL(res.RemainingValue)},
		},
		[2]string{"BENEFICIO:", money.BRL(res.BenefitedAmount)},
	))

	m.AddRows(footerRows(res.CalculationID)...)
	return generate(m)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + subtítulo (izq) y dos líneas de referencia (der).
func headerRow(title, subtitle, refTop, refBottom string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(subtitle, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(refTop, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New(refBottom, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// valuationRow: cadena FOB → CIF en moneda extranjera y valor aduanero en BRL.
func valuationRow(res *dto.CostResponse) core.Row {
	foreign := money.Number
	return row.New(16).Add(
		col.New(12).Add(
			text.New("VALORACIÓN ADUANERA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("FOB: %s   |   Flete: %s   |   Seguro: %s   |   CIF: %s",
				foreign(res.FOBForeign, 2),
				foreign(res.FreightForeign, 2),
				foreign(res.InsuranceForeign, 2),
				foreign(res.CIFForeign, 2),
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
			text.New(fmt.Sprintf("Cambio: %s   |   Peso tasable: %s kg   |   Valor aduanero: %s",
				money.Number(res.ExchangeRate, 4),
				money.Number(res.ChargeableWeightKg, 2),
				money.BRL(res.CustomsValue),
			), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

// statusRow: estado de plazo y cumplimiento del acto.
func statusRow(res *dto.DrawbackResponse) core.Row {
	statusColor := colorPrimary
	if res.Status != "Regular" {
		statusColor = colorAlert
	}
	return row.New(14).Add(
		col.New(6).Add(
			text.New("ESTADO DEL ACTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s (%d días restantes)", res.Status, res.DaysRemaining), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6, Color: statusColor,
			}),
		),
		col.New(6).Add(
			text.New("CUMPLIMIENTO DE EXPORTACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(money.Percent(res.ComplianceRatio), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 6,
			}),
		),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
	))
}

// taxHeaderRow: cabecera de la tabla de tributos.
func taxHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Tributo", 3, align.Left),
		h("Base de cálculo", 4, align.Right),
		h("Alícuota", 2, align.Center),
		h("Monto", 3, align.Right),
	)
}

// taxRows: una fila por tributo, en el orden de cálculo.
func taxRows(lines []dto.TaxLineResponse) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		base := "—"
		if !l.Base.IsZero() {
			base = money.BRL(l.Base)
		}
		rate := "—"
		if !l.RatePercent.IsZero() {
			rate = money.Percent(l.RatePercent)
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(l.ID, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(base, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(rate, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(money.BRL(l.Amount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func expenseRows(expenses []dto.ExpenseResponse) []core.Row {
	result := make([]core.Row, 0, len(expenses))
	for _, e := range expenses {
		result = append(result, row.New(6).Add(
			col.New(9).Add(text.New(expenseLabel(e.Kind), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(money.BRL(e.Amount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha con la línea principal al final.
func totalsRow(lines [][2]string, grand [2]string) core.Row {
	labels := col.New(3)
	values := col.New(3)
	var top float64
	for _, l := range lines {
		labels.Add(text.New(l[0], props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top}))
		values.Add(text.New(l[1], props.Text{Size: 9, Align: align.Right, Right: 1, Top: top}))
		top += 5
	}
	labels.Add(text.New(grand[0], props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: top + 1,
	}))
	values.Add(text.New(grand[1], props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: top + 1,
	}))

	return row.New(top+10).Add(
		col.New(6), // espacio izquierdo
		labels,
		values,
	)
}

// footerRows: calculation_id + código QR para conciliar el documento con el cálculo.
func footerRows(calculationID string) []core.Row {
	rows := []core.Row{
		row.New(3),
		line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}),
	}
	if calculationID == "" {
		return rows
	}
	return append(rows, row.New(36).Add(
		col.New(3).Add(code.NewQr(calculationID, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(9).Add(
			text.New("Identificador del cálculo:", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 4, Left: 3,
			}),
			text.New(calculationID, props.Text{
				Size: 8, Top: 9, Left: 3, Color: colorGray,
			}),
			text.New("Mismas entradas producen el mismo identificador y los mismos valores.", props.Text{
				Size: 7, Top: 16, Left: 3, Color: colorGray,
			}),
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func scenarioLabel(s string) string {
	switch s {
	case "air":
		return "Importación aérea"
	case "sea":
		return "Importación marítima"
	case "simplified":
		return "Importación simplificada (courier)"
	default:
		return s
	}
}

var expenseLabels = map[string]string{
	"siscomex":       "Tasa Siscomex",
	"broker":         "Despachante aduanero",
	"storage":        "Almacenaje",
	"awb_release":    "Liberación AWB",
	"capatazia":      "Capatazia",
	"terminal_fees":  "Tasas de terminal",
	"road_transport": "Transporte terrestre",
	"other":          "Otros",
}

func expenseLabel(kind string) string {
	if l, ok := expenseLabels[kind]; ok {
		return l
	}
	return strings.ReplaceAll(kind, "_", " ")
}

// quantity formatea cantidades sin decimales superfluos.
func quantity(v decimal.Decimal) string {
	if v.Equal(v.Truncate(0)) {
		return money.Number(v, 0)
	}
	return money.Number(v, 2)
}
