package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistemact/sistema-ct/internal/application/dto"
	"github.com/sistemact/sistema-ct/internal/application/usecase"
	"github.com/sistemact/sistema-ct/internal/domain"
	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/infrastructure/localstore"
)

// stubPDF devolve bytes fixos e guarda o último documento recebido.
type stubPDF struct {
	lastDoc *usecase.ReportDocument
}

func (s *stubPDF) GenerateReportPDF(_ context.Context, _ *entity.Report, doc *usecase.ReportDocument) ([]byte, error) {
	s.lastDoc = doc
	return []byte("%PDF-stub"), nil
}

type reportFixture struct {
	uc  *usecase.ReportUseCase
	pdf *stubPDF
}

func newReportUseCase(t *testing.T) reportFixture {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	now := time.Now()

	users := localstore.NewUserRepository(store)
	for _, u := range []struct{ id, name, setor string }{
		{"u1", "Ana", entity.SetorVendas},
		{"u2", "Bruno", entity.SetorVendas},
		{"u3", "Carla", entity.SetorRecepcao},
	} {
		require.NoError(t, users.Create(ctx, &entity.User{
			ID: u.id, Name: u.name, Login: u.id,
			Role: entity.RoleFuncionario, Setor: u.setor,
			IsActive: true, CreatedAt: now, UpdatedAt: now,
		}))
	}

	clients := localstore.NewClientRepository(store)
	for _, c := range []struct {
		nome, cpf string
		criado    time.Time
	}{
		{"Cliente Antigo", "111.444.777-35", now.AddDate(0, -2, 0)},
		{"Cliente Novo", "123.456.789-09", now},
	} {
		require.NoError(t, clients.Create(ctx, &entity.Client{
			ID: c.cpf, Nome: c.nome, CPF: c.cpf, Telefone: "(11) 99999-0000",
			CreatedAt: c.criado, UpdatedAt: c.criado,
		}))
	}

	flows := localstore.NewCashFlowRepository(store)
	for _, f := range []struct {
		tipo, valor string
	}{
		{entity.CashEntrada, "150.00"},
		{entity.CashEntrada, "50.00"},
		{entity.CashSaida, "30.00"},
	} {
		require.NoError(t, flows.Create(ctx, &entity.CashFlow{
			ID: f.tipo + f.valor, UserID: "u1", UserName: "Ana",
			Type: f.tipo, Amount: decimal.RequireFromString(f.valor),
			Description: "lançamento", Date: now, CreatedAt: now,
		}))
	}

	convs := localstore.NewZTalkConversationRepository(store)
	for _, c := range []struct{ id, status string }{
		{"cv1", entity.ConvOpen}, {"cv2", entity.ConvOpen}, {"cv3", entity.ConvClosed},
	} {
		require.NoError(t, convs.Create(ctx, &entity.ZTalkConversation{
			ID: c.id, ContactID: "ct1", ContactName: "Contato", ContactPhone: "(11) 98888-7777",
			Status: c.status, Priority: entity.PriorityMedium, CreatedAt: now, UpdatedAt: now,
		}))
	}

	bcasts := localstore.NewZTalkBroadcastRepository(store)
	sentAt := now
	require.NoError(t, bcasts.Create(ctx, &entity.ZTalkBroadcast{
		ID: "b1", Title: "Promo", Message: "oferta", Recipients: []string{"(11) 90000-0001"},
		Status: entity.BroadcastSent, CreatedBy: "u1", CreatedAt: now, SentAt: &sentAt,
	}))
	require.NoError(t, bcasts.Create(ctx, &entity.ZTalkBroadcast{
		ID: "b2", Title: "Rascunho", Message: "depois", Recipients: []string{"(11) 90000-0002"},
		Status: entity.BroadcastDraft, CreatedBy: "u1", CreatedAt: now,
	}))

	pdf := &stubPDF{}
	uc := usecase.NewReportUseCase(
		localstore.NewReportRepository(store),
		clients, flows, users, convs, bcasts, pdf,
	)
	return reportFixture{uc: uc, pdf: pdf}
}

// O snapshot de caixa agrega entradas, saídas e saldo do período.
func TestReport_GerarCaixa(t *testing.T) {
	fx := newReportUseCase(t)

	rep, err := fx.uc.Generate(context.Background(), "u1", dto.GenerateReportRequest{Type: "cash"})
	require.NoError(t, err)
	assert.Equal(t, "u1", rep.GeneratedBy)
	assert.NotEmpty(t, rep.Title)

	var data struct {
		Entries       int             `json:"entries"`
		TotalEntradas decimal.Decimal `json:"total_entradas"`
		TotalSaidas   decimal.Decimal `json:"total_saidas"`
		Balance       decimal.Decimal `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(rep.Data, &data))
	assert.Equal(t, 3, data.Entries)
	assert.True(t, decimal.RequireFromString("200.00").Equal(data.TotalEntradas))
	assert.True(t, decimal.RequireFromString("30.00").Equal(data.TotalSaidas))
	assert.True(t, decimal.RequireFromString("170.00").Equal(data.Balance))
}

// Sem período explícito o recorte é o mês corrente: só o cliente novo conta.
func TestReport_PeriodoPadraoMesCorrente(t *testing.T) {
	fx := newReportUseCase(t)

	rep, err := fx.uc.Generate(context.Background(), "u1", dto.GenerateReportRequest{Type: "clients"})
	require.NoError(t, err)

	var data struct {
		Total       int `json:"total"`
		NewInPeriod int `json:"new_in_period"`
	}
	require.NoError(t, json.Unmarshal(rep.Data, &data))
	assert.Equal(t, 2, data.Total)
	assert.Equal(t, 1, data.NewInPeriod)
}

// O snapshot geral combina os quatro módulos.
func TestReport_GerarGeral(t *testing.T) {
	fx := newReportUseCase(t)

	rep, err := fx.uc.Generate(context.Background(), "u1", dto.GenerateReportRequest{Type: "general"})
	require.NoError(t, err)

	var data struct {
		Clients struct {
			Total int `json:"total"`
		} `json:"clients"`
		Employees struct {
			TotalActive int            `json:"total_active"`
			BySetor     map[string]int `json:"by_setor"`
		} `json:"employees"`
		ZTalk struct {
			Conversations  int            `json:"conversations"`
			ByStatus       map[string]int `json:"by_status"`
			BroadcastsSent int            `json:"broadcasts_sent"`
		} `json:"ztalk"`
	}
	require.NoError(t, json.Unmarshal(rep.Data, &data))
	assert.Equal(t, 2, data.Clients.Total)
	assert.Equal(t, 3, data.Employees.TotalActive)
	assert.Equal(t, 2, data.Employees.BySetor[entity.SetorVendas])
	assert.Equal(t, 3, data.ZTalk.Conversations)
	assert.Equal(t, 2, data.ZTalk.ByStatus[entity.ConvOpen])
	assert.Equal(t, 1, data.ZTalk.BroadcastsSent)
}

func TestReport_TipoEPeriodoInvalidos(t *testing.T) {
	fx := newReportUseCase(t)
	ctx := context.Background()

	_, err := fx.uc.Generate(ctx, "u1", dto.GenerateReportRequest{Type: "vendas"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	inicio := time.Now()
	fim := inicio.Add(-time.Hour)
	_, err = fx.uc.Generate(ctx, "u1", dto.GenerateReportRequest{
		Type: "cash", PeriodStart: &inicio, PeriodEnd: &fim,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// A listagem filtra por tipo e por autor.
func TestReport_ListagemFiltrada(t *testing.T) {
	fx := newReportUseCase(t)
	ctx := context.Background()

	_, err := fx.uc.Generate(ctx, "u1", dto.GenerateReportRequest{Type: "cash"})
	require.NoError(t, err)
	_, err = fx.uc.Generate(ctx, "u2", dto.GenerateReportRequest{Type: "clients"})
	require.NoError(t, err)

	porTipo, err := fx.uc.List(ctx, "cash", "", nil, nil)
	require.NoError(t, err)
	require.Equal(t, 1, porTipo.Total)
	assert.Equal(t, "cash", porTipo.Items[0].Type)

	porAutor, err := fx.uc.List(ctx, "", "u2", nil, nil)
	require.NoError(t, err)
	require.Equal(t, 1, porAutor.Total)
	assert.Equal(t, "u2", porAutor.Items[0].GeneratedBy)

	_, err = fx.uc.List(ctx, "inexistente", "", nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// A exportação monta o documento a partir do snapshot persistido.
func TestReport_ExportarPDF(t *testing.T) {
	fx := newReportUseCase(t)
	ctx := context.Background()

	rep, err := fx.uc.Generate(ctx, "u1", dto.GenerateReportRequest{Type: "employees"})
	require.NoError(t, err)

	pdf, err := fx.uc.ExportPDF(ctx, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), pdf)

	require.NotNil(t, fx.pdf.lastDoc)
	assert.NotEmpty(t, fx.pdf.lastDoc.Summary)
	require.NotEmpty(t, fx.pdf.lastDoc.Table.Rows, "tabela por setor deve vir preenchida")
	assert.Equal(t, []string{"Setor", "Ativos"}, fx.pdf.lastDoc.Table.Header)

	_, err = fx.uc.ExportPDF(ctx, "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReport_Excluir(t *testing.T) {
	fx := newReportUseCase(t)
	ctx := context.Background()

	rep, err := fx.uc.Generate(ctx, "u1", dto.GenerateReportRequest{Type: "ztalk"})
	require.NoError(t, err)

	require.NoError(t, fx.uc.Delete(ctx, rep.ID))

	got, err := fx.uc.GetByID(ctx, rep.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	err = fx.uc.Delete(ctx, rep.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
