package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sistemact/sistema-ct/internal/application/dto"
	"github.com/sistemact/sistema-ct/internal/domain"
	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/domain/repository"
)

// ReportUseCase gera snapshots dos módulos e os exporta em PDF.
type ReportUseCase struct {
	reports       repository.ReportRepository
	clients       repository.ClientRepository
	cashFlows     repository.CashFlowRepository
	users         repository.UserRepository
	conversations repository.ZTalkConversationRepository
	broadcasts    repository.ZTalkBroadcastRepository
	pdf           ReportPDFGenerator
}

// NewReportUseCase constrói o caso de uso.
func NewReportUseCase(
	reports repository.ReportRepository,
	clients repository.ClientRepository,
	cashFlows repository.CashFlowRepository,
	users repository.UserRepository,
	conversations repository.ZTalkConversationRepository,
	broadcasts repository.ZTalkBroadcastRepository,
	pdf ReportPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		reports:       reports,
		clients:       clients,
		cashFlows:     cashFlows,
		users:         users,
		conversations: conversations,
		broadcasts:    broadcasts,
		pdf:           pdf,
	}
}

// clientsReportData snapshot do módulo de clientes.
type clientsReportData struct {
	Total       int `json:"total"`
	NewInPeriod int `json:"new_in_period"`
}

// cashReportData snapshot do livro-caixa no período.
type cashReportData struct {
	Entries       int             `json:"entries"`
	TotalEntradas decimal.Decimal `json:"total_entradas"`
	TotalSaidas   decimal.Decimal `json:"total_saidas"`
	Balance       decimal.Decimal `json:"balance"`
}

// employeesReportData snapshot das contas ativas por setor.
type employeesReportData struct {
	TotalActive int            `json:"total_active"`
	BySetor     map[string]int `json:"by_setor"`
}

// ztalkReportData snapshot do atendimento.
type ztalkReportData struct {
	Conversations  int            `json:"conversations"`
	ByStatus       map[string]int `json:"by_status"`
	BroadcastsSent int            `json:"broadcasts_sent"`
}

// generalReportData snapshot combinado dos módulos.
type generalReportData struct {
	Clients   clientsReportData   `json:"clients"`
	Cash      cashReportData      `json:"cash"`
	Employees employeesReportData `json:"employees"`
	ZTalk     ztalkReportData     `json:"ztalk"`
}

// Generate gera e persiste um snapshot do tipo pedido. Período ausente usa
// o mês corrente.
func (uc *ReportUseCase) Generate(ctx context.Context, actorID string, in dto.GenerateReportRequest) (*dto.ReportResponse, error) {
	if !entity.ValidReportType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	start, end := defaultPeriod(now, in.PeriodStart, in.PeriodEnd)
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}

	var (
		data any
		err  error
	)
	switch in.Type {
	case entity.ReportClients:
		data, err = uc.clientsData(ctx, start, end)
	case entity.ReportCash:
		data, err = uc.cashData(ctx, start, end)
	case entity.ReportEmployees:
		data, err = uc.employeesData(ctx)
	case entity.ReportZTalk:
		data, err = uc.ztalkData(ctx)
	case entity.ReportGeneral:
		data, err = uc.generalData(ctx, start, end)
	}
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	title := in.Title
	if title == "" {
		title = fmt.Sprintf("Relatório %s — %s", in.Type, now.Format("02/01/2006"))
	}
	report := &entity.Report{
		ID:          uuid.New().String(),
		Title:       title,
		Type:        in.Type,
		Data:        raw,
		GeneratedBy: actorID,
		GeneratedAt: now,
		PeriodStart: start,
		PeriodEnd:   end,
	}
	if err := uc.reports.Create(ctx, report); err != nil {
		return nil, err
	}
	return toReportResponse(report), nil
}

// GetByID obtém um relatório por ID; devolve nil quando ausente.
func (uc *ReportUseCase) GetByID(ctx context.Context, id string) (*dto.ReportResponse, error) {
	report, err := uc.reports.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, nil
	}
	return toReportResponse(report), nil
}

// List lista os relatórios; type, userID e período filtram quando presentes.
func (uc *ReportUseCase) List(ctx context.Context, reportType, userID string, start, end *time.Time) (*dto.ReportListResponse, error) {
	var (
		list []*entity.Report
		err  error
	)
	switch {
	case reportType != "":
		if !entity.ValidReportType(reportType) {
			return nil, domain.ErrInvalidInput
		}
		list, err = uc.reports.FindByType(ctx, reportType)
	case userID != "":
		list, err = uc.reports.FindByUser(ctx, userID)
	case start != nil && end != nil:
		list, err = uc.reports.FindByDateRange(ctx, *start, *end)
	default:
		list, err = uc.reports.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReportResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReportResponse(r))
	}
	return &dto.ReportListResponse{Items: items, Total: len(items)}, nil
}

// Delete remove um relatório; devolve ErrNotFound quando o ID não existe.
func (uc *ReportUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.reports.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// ExportPDF gera os bytes do PDF de um relatório persistido.
func (uc *ReportUseCase) ExportPDF(ctx context.Context, id string) ([]byte, error) {
	report, err := uc.reports.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrNotFound
	}
	doc, err := buildReportDocument(report)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateReportPDF(ctx, report, doc)
}

// ── coleta de dados ───────────────────────────────────────────────────────────

func (uc *ReportUseCase) clientsData(ctx context.Context, start, end time.Time) (clientsReportData, error) {
	all, err := uc.clients.FindAll(ctx)
	if err != nil {
		return clientsReportData{}, err
	}
	inPeriod, err := uc.clients.FindByDateRange(ctx, start, end)
	if err != nil {
		return clientsReportData{}, err
	}
	return clientsReportData{Total: len(all), NewInPeriod: len(inPeriod)}, nil
}

func (uc *ReportUseCase) cashData(ctx context.Context, start, end time.Time) (cashReportData, error) {
	list, err := uc.cashFlows.FindByDateRange(ctx, start, end)
	if err != nil {
		return cashReportData{}, err
	}
	entradas, saidas := sumFlows(list)
	return cashReportData{
		Entries:       len(list),
		TotalEntradas: entradas,
		TotalSaidas:   saidas,
		Balance:       entradas.Sub(saidas),
	}, nil
}

func (uc *ReportUseCase) employeesData(ctx context.Context) (employeesReportData, error) {
	list, err := uc.users.FindAll(ctx)
	if err != nil {
		return employeesReportData{}, err
	}
	bySetor := make(map[string]int)
	for _, u := range list {
		bySetor[u.Setor]++
	}
	return employeesReportData{TotalActive: len(list), BySetor: bySetor}, nil
}

func (uc *ReportUseCase) ztalkData(ctx context.Context) (ztalkReportData, error) {
	convs, err := uc.conversations.FindAll(ctx)
	if err != nil {
		return ztalkReportData{}, err
	}
	byStatus := make(map[string]int)
	for _, c := range convs {
		byStatus[c.Status]++
	}
	bcasts, err := uc.broadcasts.FindAll(ctx)
	if err != nil {
		return ztalkReportData{}, err
	}
	sent := 0
	for _, b := range bcasts {
		if b.Status == entity.BroadcastSent {
			sent++
		}
	}
	return ztalkReportData{Conversations: len(convs), ByStatus: byStatus, BroadcastsSent: sent}, nil
}

func (uc *ReportUseCase) generalData(ctx context.Context, start, end time.Time) (generalReportData, error) {
	clients, err := uc.clientsData(ctx, start, end)
	if err != nil {
		return generalReportData{}, err
	}
	cash, err := uc.cashData(ctx, start, end)
	if err != nil {
		return generalReportData{}, err
	}
	employees, err := uc.employeesData(ctx)
	if err != nil {
		return generalReportData{}, err
	}
	ztalk, err := uc.ztalkData(ctx)
	if err != nil {
		return generalReportData{}, err
	}
	return generalReportData{Clients: clients, Cash: cash, Employees: employees, ZTalk: ztalk}, nil
}

// ── montagem do PDF ───────────────────────────────────────────────────────────

func buildReportDocument(report *entity.Report) (*ReportDocument, error) {
	doc := &ReportDocument{}
	switch report.Type {
	case entity.ReportClients:
		var d clientsReportData
		if err := json.Unmarshal(report.Data, &d); err != nil {
			return nil, err
		}
		doc.Summary = clientsSummary(d)
	case entity.ReportCash:
		var d cashReportData
		if err := json.Unmarshal(report.Data, &d); err != nil {
			return nil, err
		}
		doc.Summary = cashSummary(d)
	case entity.ReportEmployees:
		var d employeesReportData
		if err := json.Unmarshal(report.Data, &d); err != nil {
			return nil, err
		}
		doc.Summary = []ReportKV{{Label: "Funcionários ativos", Value: fmt.Sprint(d.TotalActive)}}
		doc.Table = setorTable(d.BySetor)
	case entity.ReportZTalk:
		var d ztalkReportData
		if err := json.Unmarshal(report.Data, &d); err != nil {
			return nil, err
		}
		doc.Summary = ztalkSummary(d)
		doc.Table = statusTable(d.ByStatus)
	case entity.ReportGeneral:
		var d generalReportData
		if err := json.Unmarshal(report.Data, &d); err != nil {
			return nil, err
		}
		doc.Summary = append(clientsSummary(d.Clients), cashSummary(d.Cash)...)
		doc.Summary = append(doc.Summary,
			ReportKV{Label: "Funcionários ativos", Value: fmt.Sprint(d.Employees.TotalActive)})
		doc.Summary = append(doc.Summary, ztalkSummary(d.ZTalk)...)
	default:
		return nil, domain.ErrInvalidInput
	}
	return doc, nil
}

func clientsSummary(d clientsReportData) []ReportKV {
	return []ReportKV{
		{Label: "Clientes cadastrados", Value: fmt.Sprint(d.Total)},
		{Label: "Novos no período", Value: fmt.Sprint(d.NewInPeriod)},
	}
}

func cashSummary(d cashReportData) []ReportKV {
	return []ReportKV{
		{Label: "Lançamentos", Value: fmt.Sprint(d.Entries)},
		{Label: "Entradas", Value: "R$ " + d.TotalEntradas.StringFixed(2)},
		{Label: "Saídas", Value: "R$ " + d.TotalSaidas.StringFixed(2)},
		{Label: "Saldo", Value: "R$ " + d.Balance.StringFixed(2)},
	}
}

func ztalkSummary(d ztalkReportData) []ReportKV {
	return []ReportKV{
		{Label: "Conversas", Value: fmt.Sprint(d.Conversations)},
		{Label: "Broadcasts enviados", Value: fmt.Sprint(d.BroadcastsSent)},
	}
}

func setorTable(bySetor map[string]int) ReportTable {
	table := ReportTable{Header: []string{"Setor", "Ativos"}, Widths: []int{8, 4}}
	for _, setor := range []string{
		entity.SetorAdimplencia, entity.SetorHomologacao, entity.SetorVendas,
		entity.SetorRecepcao, entity.SetorGeral,
	} {
		if n, ok := bySetor[setor]; ok {
			table.Rows = append(table.Rows, []string{setor, fmt.Sprint(n)})
		}
	}
	return table
}

func statusTable(byStatus map[string]int) ReportTable {
	table := ReportTable{Header: []string{"Status da conversa", "Quantidade"}, Widths: []int{8, 4}}
	for _, status := range []string{
		entity.ConvOpen, entity.ConvPending, entity.ConvInProgress, entity.ConvClosed,
	} {
		if n, ok := byStatus[status]; ok {
			table.Rows = append(table.Rows, []string{status, fmt.Sprint(n)})
		}
	}
	return table
}

func defaultPeriod(now time.Time, start, end *time.Time) (time.Time, time.Time) {
	if start != nil && end != nil {
		return *start, *end
	}
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return monthStart, now
}

func toReportResponse(r *entity.Report) *dto.ReportResponse {
	if r == nil {
		return nil
	}
	return &dto.ReportResponse{
		ID:          r.ID,
		Title:       r.Title,
		Type:        r.Type,
		Data:        r.Data,
		GeneratedBy: r.GeneratedBy,
		GeneratedAt: r.GeneratedAt,
		PeriodStart: r.PeriodStart,
		PeriodEnd:   r.PeriodEnd,
	}
}
