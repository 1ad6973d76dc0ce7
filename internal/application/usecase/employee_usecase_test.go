package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistemact/sistema-ct/internal/application/dto"
	"github.com/sistemact/sistema-ct/internal/application/usecase"
	"github.com/sistemact/sistema-ct/internal/domain"
	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/infrastructure/localstore"
)

func newEmployeeUseCase(t *testing.T) *usecase.EmployeeUseCase {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	return usecase.NewEmployeeUseCase(localstore.NewUserRepository(store))
}

func criarFuncionario(t *testing.T, uc *usecase.EmployeeUseCase, login string) *dto.UserResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), "admin-1", dto.CreateEmployeeRequest{
		Name:  "Funcionário " + login,
		Email: login + "@sistemact.com",
		Role:  entity.RoleFuncionario,
		Setor: entity.SetorVendas,
		Login: login, Password: "senha-segura",
	})
	require.NoError(t, err)
	return out
}

// Login precisa ser único entre contas ativas.
func TestEmployee_LoginUnicoEntreAtivos(t *testing.T) {
	uc := newEmployeeUseCase(t)
	criarFuncionario(t, uc, "pedro")

	_, err := uc.Create(context.Background(), "admin-1", dto.CreateEmployeeRequest{
		Name: "Outro Pedro", Email: "outro@sistemact.com",
		Role: entity.RoleFuncionario, Setor: entity.SetorVendas,
		Login: "pedro", Password: "outra-senha",
	})
	assert.ErrorIs(t, err, domain.ErrLoginAlreadyTaken)
}

// Papel ou setor fora do vocabulário é rejeitado.
func TestEmployee_PapelESetorValidados(t *testing.T) {
	uc := newEmployeeUseCase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, "admin-1", dto.CreateEmployeeRequest{
		Name: "X", Email: "x@sistemact.com", Role: "gerente",
		Setor: entity.SetorVendas, Login: "xx1", Password: "senha-segura",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, "admin-1", dto.CreateEmployeeRequest{
		Name: "X", Email: "x@sistemact.com", Role: entity.RoleFuncionario,
		Setor: "financeiro", Login: "xx2", Password: "senha-segura",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Política de desativação (soft delete)
// ──────────────────────────────────────────────────────────────────────────────

// Apenas administrador-all desativa contas.
func TestEmployee_SomenteAdminAllDesativa(t *testing.T) {
	uc := newEmployeeUseCase(t)
	ctx := context.Background()
	alvo := criarFuncionario(t, uc, "alvo")

	for _, role := range []string{entity.RoleAdmin, entity.RoleFuncionario} {
		err := uc.Deactivate(ctx, alvo.ID, "ator-1", role)
		assert.ErrorIs(t, err, domain.ErrForbidden, "papel %s não pode desativar", role)
	}

	require.NoError(t, uc.Deactivate(ctx, alvo.ID, "ator-1", entity.RoleAdminAll))

	depois, err := uc.GetByID(ctx, alvo.ID)
	require.NoError(t, err)
	assert.False(t, depois.IsActive)
}

// Ninguém desativa a própria conta, nem o administrador-all.
func TestEmployee_NaoDesativaAPropriaConta(t *testing.T) {
	uc := newEmployeeUseCase(t)
	alvo := criarFuncionario(t, uc, "proprio")

	err := uc.Deactivate(context.Background(), alvo.ID, alvo.ID, entity.RoleAdminAll)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Desativar conta já inativa é idempotente; conta inexistente é ErrNotFound.
func TestEmployee_DesativacaoIdempotente(t *testing.T) {
	uc := newEmployeeUseCase(t)
	ctx := context.Background()
	alvo := criarFuncionario(t, uc, "repetido")

	require.NoError(t, uc.Deactivate(ctx, alvo.ID, "ator-1", entity.RoleAdminAll))
	require.NoError(t, uc.Deactivate(ctx, alvo.ID, "ator-1", entity.RoleAdminAll))

	err := uc.Deactivate(ctx, "nao-existe", "ator-1", entity.RoleAdminAll)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Conta desativada some da listagem padrão e libera o login para reuso.
func TestEmployee_DesativadoSaiDaListagemELiberaLogin(t *testing.T) {
	uc := newEmployeeUseCase(t)
	ctx := context.Background()
	alvo := criarFuncionario(t, uc, "reutilizavel")

	require.NoError(t, uc.Deactivate(ctx, alvo.ID, "ator-1", entity.RoleAdminAll))

	lista, err := uc.List(ctx)
	require.NoError(t, err)
	for _, u := range lista.Items {
		assert.NotEqual(t, alvo.ID, u.ID, "conta desativada não pode aparecer na listagem")
	}

	// o mesmo login pode ser usado por uma conta nova
	criarFuncionario(t, uc, "reutilizavel")
}

// Busca em memória é insensível a acento e caixa.
func TestEmployee_BuscaInsensivelAAcento(t *testing.T) {
	uc := newEmployeeUseCase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, "admin-1", dto.CreateEmployeeRequest{
		Name: "José Araújo", Email: "jose@sistemact.com",
		Role: entity.RoleFuncionario, Setor: entity.SetorHomologacao,
		Login: "jose", Password: "senha-segura",
	})
	require.NoError(t, err)

	out, err := uc.Search(ctx, "jose araujo")
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "José Araújo", out.Items[0].Name)
}
