package dto

import (
	"encoding/json"
	"time"
)

// GenerateReportRequest entrada para gerar um relatório. Período ausente
// usa o mês corrente.
type GenerateReportRequest struct {
	Type        string     `json:"type" validate:"required,oneof=clients cash employees ztalk general"`
	Title       string     `json:"title"`
	PeriodStart *time.Time `json:"period_start"`
	PeriodEnd   *time.Time `json:"period_end"`
}

// ReportResponse saída de um relatório gerado.
type ReportResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Type        string          `json:"type"`
	Data        json.RawMessage `json:"data"`
	GeneratedBy string          `json:"generated_by"`
	GeneratedAt time.Time       `json:"generated_at"`
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   time.Time       `json:"period_end"`
}

// ReportListResponse lista de relatórios.
type ReportListResponse struct {
	Items []ReportResponse `json:"items"`
	Total int              `json:"total"`
}
