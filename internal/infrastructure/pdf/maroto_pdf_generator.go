// Package pdf implementa a exportação de relatórios em PDF com Maroto v2.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título do relatório  │  Tipo + Data de geração     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PERÍODO: início — fim  |  Gerado por                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: pares rótulo/valor                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: colunas definidas pelo caso de uso                 │
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

	"github.com/sistemact/sistema-ct/internal/application/usecase"
	"github.com/sistemact/sistema-ct/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateReportPDF gera o PDF do relatório e devolve seus bytes.
func (g *MarotoPDFGenerator) GenerateReportPDF(
	_ context.Context,
	report *entity.Report,
	doc *usecase.ReportDocument,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		WithAuthor("Sistema CT", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(periodRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(doc.Summary) > 0 {
		for _, r := range summaryRows(doc.Summary) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	if len(doc.Table.Header) > 0 {
		m.AddRows(tableHeaderRow(doc.Table))
		for _, r := range tableRows(doc.Table) {
			m.AddRows(r)
		}
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: título (esq) e tipo + data de geração (dir).
func headerRow(report *entity.Report) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Sistema CT — Relatório gerencial", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(reportTypeLabel(report.Type), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Gerado em "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// periodRow: recorte de período e autor.
func periodRow(report *entity.Report) core.Row {
	periodo := fmt.Sprintf("Período: %s a %s",
		report.PeriodStart.Format("02/01/2006"),
		report.PeriodEnd.Format("02/01/2006"),
	)
	return row.New(8).Add(
		col.New(8).Add(text.New(periodo, props.Text{Size: 8, Top: 2, Color: colorGray})),
		col.New(4).Add(text.New("Gerado por: "+report.GeneratedBy, props.Text{
			Size: 8, Top: 2, Align: align.Right, Color: colorGray,
		})),
	)
}

// summaryRows: pares rótulo/valor, dois por linha.
func summaryRows(summary []usecase.ReportKV) []core.Row {
	var rows []core.Row
	for i := 0; i < len(summary); i += 2 {
		cols := []core.Col{
			col.New(3).Add(text.New(summary[i].Label, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			})),
			col.New(3).Add(text.New(summary[i].Value, props.Text{Size: 8, Top: 1})),
		}
		if i+1 < len(summary) {
			cols = append(cols,
				col.New(3).Add(text.New(summary[i+1].Label, props.Text{
					Style: fontstyle.Bold, Size: 8, Top: 1,
				})),
				col.New(3).Add(text.New(summary[i+1].Value, props.Text{Size: 8, Top: 1})),
			)
		}
		rows = append(rows, row.New(6).Add(cols...))
	}
	return rows
}

// tableHeaderRow: cabeçalho da tabela na grade definida em Widths.
func tableHeaderRow(table usecase.ReportTable) core.Row {
	cols := make([]core.Col, 0, len(table.Header))
	for i, label := range table.Header {
		cols = append(cols, col.New(table.Widths[i]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Left,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(cols...)
}

// tableRows: uma linha por registro.
func tableRows(table usecase.ReportTable) []core.Row {
	result := make([]core.Row, 0, len(table.Rows))
	for _, r := range table.Rows {
		cols := make([]core.Col, 0, len(r))
		for i, cell := range r {
			cols = append(cols, col.New(table.Widths[i]).Add(text.New(cell, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1, Right: 1,
			})))
		}
		result = append(result, row.New(6).Add(cols...))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func reportTypeLabel(t string) string {
	switch t {
	case entity.ReportClients:
		return "RELATÓRIO DE CLIENTES"
	case entity.ReportCash:
		return "RELATÓRIO DE CAIXA"
	case entity.ReportEmployees:
		return "RELATÓRIO DE FUNCIONÁRIOS"
	case entity.ReportZTalk:
		return "RELATÓRIO DE ATENDIMENTO"
	default:
		return "RELATÓRIO GERAL"
	}
}
