package entity

import (
	"encoding/json"
	"time"
)

// Tipos de relatório.
const (
	ReportClients   = "clients"
	ReportCash      = "cash"
	ReportEmployees = "employees"
	ReportZTalk     = "ztalk"
	ReportGeneral   = "general"
)

// Report é um snapshot gerado de um módulo, com o recorte de período usado.
type Report struct {
	ID          string
	Title       string
	Type        string // clients | cash | employees | ztalk | general
	Data        json.RawMessage
	GeneratedBy string
	GeneratedAt time.Time
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// ValidReportType informa se o tipo é um dos aceitos.
func ValidReportType(t string) bool {
	switch t {
	case ReportClients, ReportCash, ReportEmployees, ReportZTalk, ReportGeneral:
		return true
	}
	return false
}
