package usecase

import (
	"context"

	"github.com/sistemact/sistema-ct/internal/domain/entity"
)

// ReportKV é um par rótulo/valor do bloco de resumo do PDF.
type ReportKV struct {
	Label string
	Value string
}

// ReportTable é a tabela detalhada do PDF. Widths usa a grade de 12 colunas
// e precisa ter o mesmo tamanho de Header.
type ReportTable struct {
	Header []string
	Widths []int
	Rows   [][]string
}

// ReportDocument é o conteúdo já formatado que o gerador de PDF recebe:
// o caso de uso decide o que entra, o gerador só desenha.
type ReportDocument struct {
	Summary []ReportKV
	Table   ReportTable
}

// ReportPDFGenerator define a porta de exportação de relatórios em PDF.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, report *entity.Report, doc *ReportDocument) ([]byte, error)
}
