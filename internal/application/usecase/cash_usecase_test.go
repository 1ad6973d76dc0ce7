package usecase_test

import (
	"context"
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

func newCashUseCase(t *testing.T) *usecase.CashUseCase {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	users := localstore.NewUserRepository(store)
	now := time.Now()
	require.NoError(t, users.Create(context.Background(), &entity.User{
		ID: "u1", Name: "Operador Caixa", Login: "caixa",
		Role: entity.RoleFuncionario, Setor: entity.SetorRecepcao,
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	}))

	return usecase.NewCashUseCase(localstore.NewCashFlowRepository(store), users)
}

func lancar(t *testing.T, uc *usecase.CashUseCase, tipo, valor string) {
	t.Helper()
	_, err := uc.Create(context.Background(), "u1", dto.CreateCashFlowRequest{
		Type:        tipo,
		Amount:      decimal.RequireFromString(valor),
		Description: "lançamento de teste",
	})
	require.NoError(t, err)
}

// Totais são recomputados do conjunto com aritmética decimal exata:
// 0.10 + 0.20 tem que dar exatamente 0.30.
func TestCash_TotaisDecimaisExatos(t *testing.T) {
	uc := newCashUseCase(t)

	lancar(t, uc, entity.CashEntrada, "0.10")
	lancar(t, uc, entity.CashEntrada, "0.20")
	lancar(t, uc, entity.CashSaida, "0.05")

	entradas, saidas, balance, err := uc.Totals(context.Background())
	require.NoError(t, err)

	assert.True(t, entradas.Equal(decimal.RequireFromString("0.30")),
		"entradas devem somar exatamente 0.30, veio %s", entradas)
	assert.True(t, saidas.Equal(decimal.RequireFromString("0.05")))
	assert.True(t, balance.Equal(decimal.RequireFromString("0.25")))
}

// A listagem agrega os mesmos totais e o saldo entradas-saídas.
func TestCash_ListagemComTotais(t *testing.T) {
	uc := newCashUseCase(t)

	lancar(t, uc, entity.CashEntrada, "1500.00")
	lancar(t, uc, entity.CashSaida, "350.50")
	lancar(t, uc, entity.CashSaida, "149.50")

	out, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Items, 3)

	assert.True(t, out.TotalEntradas.Equal(decimal.RequireFromString("1500.00")))
	assert.True(t, out.TotalSaidas.Equal(decimal.RequireFromString("500.00")))
	assert.True(t, out.Balance.Equal(decimal.RequireFromString("1000.00")))
}

// Valor zero ou negativo, tipo desconhecido e descrição vazia são rejeitados.
func TestCash_ValidacaoDeEntrada(t *testing.T) {
	uc := newCashUseCase(t)
	ctx := context.Background()

	cases := []dto.CreateCashFlowRequest{
		{Type: entity.CashEntrada, Amount: decimal.Zero, Description: "zerado"},
		{Type: entity.CashEntrada, Amount: decimal.RequireFromString("-1"), Description: "negativo"},
		{Type: "transferencia", Amount: decimal.RequireFromString("10"), Description: "tipo inválido"},
		{Type: entity.CashSaida, Amount: decimal.RequireFromString("10"), Description: ""},
	}
	for _, in := range cases {
		_, err := uc.Create(ctx, "u1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %+v deve ser rejeitada", in)
	}
}

// O lançamento carrega a identidade do autor resolvida no repositório;
// autor inexistente é rejeitado.
func TestCash_AutorResolvidoPeloRepositorio(t *testing.T) {
	uc := newCashUseCase(t)
	ctx := context.Background()

	flow, err := uc.Create(ctx, "u1", dto.CreateCashFlowRequest{
		Type: entity.CashEntrada, Amount: decimal.RequireFromString("10"), Description: "ok",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", flow.UserID)
	assert.Equal(t, "Operador Caixa", flow.UserName)

	_, err = uc.Create(ctx, "fantasma", dto.CreateCashFlowRequest{
		Type: entity.CashEntrada, Amount: decimal.RequireFromString("10"), Description: "ok",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// A correção preserva a autoria e valida os campos alterados.
func TestCash_CorrecaoDeLancamento(t *testing.T) {
	uc := newCashUseCase(t)
	ctx := context.Background()

	flow, err := uc.Create(ctx, "u1", dto.CreateCashFlowRequest{
		Type: entity.CashEntrada, Amount: decimal.RequireFromString("100.00"),
		Description: "valor digitado errado",
	})
	require.NoError(t, err)

	novoValor := decimal.RequireFromString("10.00")
	novaDesc := "valor corrigido"
	out, err := uc.Update(ctx, flow.ID, dto.UpdateCashFlowRequest{
		Amount: &novoValor, Description: &novaDesc,
	})
	require.NoError(t, err)
	assert.True(t, out.Amount.Equal(novoValor))
	assert.Equal(t, novaDesc, out.Description)
	assert.Equal(t, "u1", out.UserID, "a autoria original não muda na correção")
	assert.Equal(t, flow.CreatedAt.Unix(), out.CreatedAt.Unix())

	negativo := decimal.RequireFromString("-5")
	_, err = uc.Update(ctx, flow.ID, dto.UpdateCashFlowRequest{Amount: &negativo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, "nao-existe", dto.UpdateCashFlowRequest{Amount: &novoValor})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Intervalo invertido é rejeitado; intervalo válido devolve só o recorte.
func TestCash_ListagemPorIntervalo(t *testing.T) {
	uc := newCashUseCase(t)
	ctx := context.Background()

	now := time.Now()
	_, err := uc.Create(ctx, "u1", dto.CreateCashFlowRequest{
		Type: entity.CashEntrada, Amount: decimal.RequireFromString("10"),
		Description: "antigo", Date: now.AddDate(0, 0, -10),
	})
	require.NoError(t, err)
	_, err = uc.Create(ctx, "u1", dto.CreateCashFlowRequest{
		Type: entity.CashEntrada, Amount: decimal.RequireFromString("20"),
		Description: "recente", Date: now,
	})
	require.NoError(t, err)

	_, err = uc.ListByDateRange(ctx, now, now.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "intervalo invertido deve ser rejeitado")

	out, err := uc.ListByDateRange(ctx, now.AddDate(0, 0, -1), now.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "recente", out.Items[0].Description)
	assert.True(t, out.TotalEntradas.Equal(decimal.RequireFromString("20")))
}
