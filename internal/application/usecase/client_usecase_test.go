package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistemact/sistema-ct/internal/application/dto"
	"github.com/sistemact/sistema-ct/internal/application/usecase"
	"github.com/sistemact/sistema-ct/internal/domain"
	"github.com/sistemact/sistema-ct/internal/infrastructure/localstore"
)

func newClientUseCase(t *testing.T) *usecase.ClientUseCase {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	return usecase.NewClientUseCase(localstore.NewClientRepository(store))
}

// CPF e telefones entram com ou sem máscara e saem sempre na forma canônica.
func TestClient_CanonizaCPFETelefones(t *testing.T) {
	uc := newClientUseCase(t)

	out, err := uc.Create(context.Background(), "u1", dto.CreateClientRequest{
		Nome:                "Ana Costa",
		CPF:                 "12345678900",
		Telefone:            "11999998888",
		TelefonesAdicionais: []string{"1133334444"},
	})
	require.NoError(t, err)

	assert.Equal(t, "123.456.789-00", out.CPF)
	assert.Equal(t, "(11) 99999-8888", out.Telefone)
	require.Len(t, out.TelefonesAdicionais, 1)
	assert.Equal(t, "(11) 3333-4444", out.TelefonesAdicionais[0])
}

// CPF ou telefone com quantidade errada de dígitos é rejeitado.
func TestClient_DocumentosInvalidosRejeitados(t *testing.T) {
	uc := newClientUseCase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, "u1", dto.CreateClientRequest{
		Nome: "CPF curto", CPF: "123456789", Telefone: "(11) 99999-8888",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, "u1", dto.CreateClientRequest{
		Nome: "Telefone curto", CPF: "123.456.789-00", Telefone: "9999",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// A busca ignora caixa e acentos; termo vazio devolve todos.
func TestClient_BuscaInsensivelAAcento(t *testing.T) {
	uc := newClientUseCase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, "u1", dto.CreateClientRequest{
		Nome: "João Conceição", CPF: "123.456.789-00", Telefone: "(11) 99999-8888",
	})
	require.NoError(t, err)
	_, err = uc.Create(ctx, "u1", dto.CreateClientRequest{
		Nome: "Beatriz Lima", CPF: "987.654.321-00", Telefone: "(11) 88888-7777",
	})
	require.NoError(t, err)

	out, err := uc.Search(ctx, "joao conceicao")
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "João Conceição", out.Items[0].Nome)

	all, err := uc.Search(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)
}

// Atualização parcial preserva os campos não enviados e a autoria original.
func TestClient_AtualizacaoParcial(t *testing.T) {
	uc := newClientUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, "criador", dto.CreateClientRequest{
		Nome: "Rafael Souza", CPF: "123.456.789-00", Telefone: "(11) 99999-8888",
		Email: "rafael@email.com",
	})
	require.NoError(t, err)

	novoNome := "Rafael de Souza"
	updated, err := uc.Update(ctx, created.ID, "editor", dto.UpdateClientRequest{Nome: &novoNome})
	require.NoError(t, err)

	assert.Equal(t, "Rafael de Souza", updated.Nome)
	assert.Equal(t, "rafael@email.com", updated.Email, "campo não enviado deve ser preservado")
	assert.Equal(t, "criador", updated.CreatedBy)
	assert.Equal(t, "editor", updated.UpdatedBy)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt),
		"a data de criação não muda na atualização: %s vs %s", created.CreatedAt, updated.CreatedAt)
}

// Intervalo de datas filtra pela criação; intervalo invertido é rejeitado.
func TestClient_ListagemPorIntervaloDeCriacao(t *testing.T) {
	uc := newClientUseCase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, "u1", dto.CreateClientRequest{
		Nome: "Cliente Novo", CPF: "123.456.789-00", Telefone: "(11) 99999-8888",
	})
	require.NoError(t, err)

	now := time.Now()
	out, err := uc.ListByDateRange(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)

	vazio, err := uc.ListByDateRange(ctx, now.Add(-48*time.Hour), now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, vazio.Total)

	_, err = uc.ListByDateRange(ctx, now, now.Add(-time.Hour))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Exclusão de id inexistente devolve ErrNotFound.
func TestClient_ExclusaoInexistente(t *testing.T) {
	uc := newClientUseCase(t)
	err := uc.Delete(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
