// Package pdf genera el estado de cuenta de una empresa como documento A4.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Instalación  │  ESTADO DE CUENTA + período          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMPRESA: Nombre + RIF + contacto                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Deuda del mes / Deuda total / Saldo a favor        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Lotes de almacenamiento del mes                      │
//	│  TABLA: Despachos entregados del mes                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	appbilling "github.com/logisur/almacen-api/internal/application/billing"
	"github.com/logisur/almacen-api/internal/application/dto"
	"github.com/logisur/almacen-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoStatementGenerator implementa billing.StatementPDFGenerator usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

var _ appbilling.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// GenerateStatementPDF genera el PDF y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(
	_ context.Context,
	company *entity.Company,
	installation map[string]string,
	st *dto.StatementResponse,
	period string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de cuenta "+period, true).
		WithAuthor(nonEmpty(installation["name"], "Almacén"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(installation, period))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(companyRow(company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(st))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("LOTES DE ALMACENAMIENTO DEL PERÍODO"))
	m.AddRows(lotsHeaderRow())
	for _, r := range lotRows(st.BillingDetails.Lots) {
		m.AddRows(r)
	}

	m.AddRows(sectionTitleRow("DESPACHOS ENTREGADOS DEL PERÍODO"))
	m.AddRows(dispatchesHeaderRow())
	for _, r := range dispatchRows(st.BillingDetails.Dispatches) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("maroto: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: instalación a la izquierda, título y período a la derecha.
func headerRow(installation map[string]string, period string) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(nonEmpty(installation["name"], "Almacén"), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Tel: %s   |   Email: %s",
				nonEmpty(installation["phone"], "—"),
				nonEmpty(installation["email"], "—"),
			), props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Período "+period, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// companyRow: datos de la empresa cliente.
func companyRow(company *entity.Company) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("EMPRESA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("RIF: %s   |   Email: %s   |   Tel: %s",
				company.RIF,
				nonEmpty(company.Email, "—"),
				nonEmpty(company.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(st *dto.StatementResponse) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Deuda del período:"),
			label("Saldo a favor:"),
			grandLabel("DEUDA TOTAL:"),
		),
		col.New(3).Add(
			value("$"+st.CurrentMonthDebt.StringFixed(2)),
			value("$"+st.PositiveBalance.StringFixed(2)),
			grandValue("$"+st.TotalDebt.StringFixed(2)),
		),
		col.New(2),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		})),
	)
}

func lotsHeaderRow() core.Row {
	return row.New(7).Add(
		tableHeader("Lote", 4, align.Left),
		tableHeader("Entrada", 2, align.Center),
		tableHeader("Salida", 2, align.Center),
		tableHeader("Unid.", 1, align.Center),
		tableHeader("Costo", 3, align.Right),
	)
}

func lotRows(lots []dto.LotCostResponse) []core.Row {
	result := make([]core.Row, 0, len(lots))
	for _, l := range lots {
		dateOut := "—"
		if l.DateOut != nil {
			dateOut = *l.DateOut
		}
		result = append(result, row.New(6).Add(
			tableCell(l.ID, 4, align.Left),
			tableCell(l.DateIn, 2, align.Center),
			tableCell(dateOut, 2, align.Center),
			tableCell(fmt.Sprintf("%d", l.QtyLeft), 1, align.Center),
			tableCell("$"+l.Cost.StringFixed(2), 3, align.Right),
		))
	}
	return result
}

func dispatchesHeaderRow() core.Row {
	return row.New(7).Add(
		tableHeader("Fecha", 2, align.Center),
		tableHeader("Receptor", 4, align.Left),
		tableHeader("Ciudad", 3, align.Left),
		tableHeader("Tarifa", 3, align.Right),
	)
}

func dispatchRows(dispatches []dto.DispatchFeeResponse) []core.Row {
	result := make([]core.Row, 0, len(dispatches))
	for _, d := range dispatches {
		result = append(result, row.New(6).Add(
			tableCell(d.Date, 2, align.Center),
			tableCell(d.ReceiverName, 4, align.Left),
			tableCell(d.CityName, 3, align.Left),
			tableCell("$"+d.DeliveryPrice.StringFixed(2), 3, align.Right),
		))
	}
	return result
}

func tableHeader(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorPrimary, Top: 1, Left: 1, Right: 1,
	}))
}

func tableCell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
