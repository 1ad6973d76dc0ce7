package localstore_test

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/infrastructure/localstore"
)

func newStore(t *testing.T) *localstore.Store {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	return store
}

// ──────────────────────────────────────────────────────────────────────────────
// Sequências CRUD: findAll reflete exatamente o efeito líquido
// ──────────────────────────────────────────────────────────────────────────────

// Depois de criar, atualizar e excluir, a listagem tem só o efeito líquido:
// sem ids duplicados, sem registro excluído, com o último valor gravado.
func TestClientRepo_SequenciaCRUD(t *testing.T) {
	ctx := context.Background()
	repo := localstore.NewClientRepository(newStore(t))

	base := time.Now().Truncate(time.Second)
	for i, id := range []string{"a", "b", "c"} {
		err := repo.Create(ctx, &entity.Client{
			ID: id, Nome: "Cliente " + id, CPF: "123.456.789-0" + id, Telefone: "(11) 99999-9999",
			CreatedAt: base.Add(time.Duration(i) * time.Minute), UpdatedAt: base,
		})
		require.NoError(t, err)
	}

	b, err := repo.FindByID(ctx, "b")
	require.NoError(t, err)
	require.NotNil(t, b)
	b.Nome = "Cliente B Atualizado"
	require.NoError(t, repo.Update(ctx, b))

	ok, err := repo.Delete(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	seen := map[string]bool{}
	for _, c := range all {
		assert.False(t, seen[c.ID], "id duplicado na listagem: %s", c.ID)
		seen[c.ID] = true
	}
	assert.False(t, seen["a"], "registro excluído não pode aparecer")

	// mais recente primeiro
	assert.Equal(t, "c", all[0].ID)
	assert.Equal(t, "Cliente B Atualizado", all[1].Nome)
}

// Excluir ou atualizar id inexistente não é erro: delete devolve false,
// update é um no-op no adaptador.
func TestClientRepo_IDInexistente(t *testing.T) {
	ctx := context.Background()
	repo := localstore.NewClientRepository(newStore(t))

	ok, err := repo.Delete(ctx, "nao-existe")
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.FindByID(ctx, "nao-existe")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// O meio de armazenamento é só texto: datas precisam voltar como time.Time
// equivalentes após o ciclo gravar/ler.
func TestClientRepo_DatasSobrevivemAoCiclo(t *testing.T) {
	ctx := context.Background()
	repo := localstore.NewClientRepository(newStore(t))

	created := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &entity.Client{
		ID: "1", Nome: "Teste", CPF: "123.456.789-00", Telefone: "(11) 99999-9999",
		CreatedAt: created, UpdatedAt: created,
	}))

	got, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.CreatedAt.Equal(created))
}

// A gravação passa por arquivo temporário e rename: depois das escritas o
// diretório não guarda resíduo temporário e o blob continua legível.
func TestStore_GravacaoSemResiduoTemporario(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	repo := localstore.NewClientRepository(store)

	now := time.Now()
	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, repo.Create(ctx, &entity.Client{
			ID: id, Nome: "Cliente " + id, CPF: "123.456.789-00",
			Telefone: "(11) 99999-9999", CreatedAt: now, UpdatedAt: now,
		}))
	}

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"),
			"arquivo temporário remanescente: %s", e.Name())
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

// Mutações concorrentes no mesmo slot não se sobrescrevem: o efeito líquido
// de n criações paralelas são n registros persistidos.
func TestClientRepo_CriacoesConcorrentesNaoSePerdem(t *testing.T) {
	ctx := context.Background()
	repo := localstore.NewClientRepository(newStore(t))

	const n = 50
	now := time.Now()
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- repo.Create(ctx, &entity.Client{
				ID:   fmt.Sprintf("c-%02d", i),
				Nome: fmt.Sprintf("Cliente %02d", i), CPF: "123.456.789-00",
				Telefone: "(11) 99999-9999", CreatedAt: now, UpdatedAt: now,
			})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, n, "nenhuma criação concorrente pode ser perdida")

	seen := map[string]bool{}
	for _, c := range all {
		assert.False(t, seen[c.ID], "id duplicado na listagem: %s", c.ID)
		seen[c.ID] = true
	}
}

// Exclusões concorrentes com criações também preservam o efeito líquido.
func TestClientRepo_MutacoesConcorrentesMistas(t *testing.T) {
	ctx := context.Background()
	repo := localstore.NewClientRepository(newStore(t))

	const n = 20
	now := time.Now()
	for i := 0; i < n; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Client{
			ID:   fmt.Sprintf("velho-%02d", i),
			Nome: "Velho", CPF: "123.456.789-00", Telefone: "(11) 99999-9999",
			CreatedAt: now, UpdatedAt: now,
		}))
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Delete(ctx, fmt.Sprintf("velho-%02d", i))
			assert.NoError(t, err)
		}(i)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, repo.Create(ctx, &entity.Client{
				ID:   fmt.Sprintf("novo-%02d", i),
				Nome: "Novo", CPF: "123.456.789-00", Telefone: "(11) 99999-9999",
				CreatedAt: now, UpdatedAt: now,
			}))
		}(i)
	}
	wg.Wait()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, n)
	for _, c := range all {
		assert.Equal(t, "Novo", c.Nome)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Soft delete de funcionários
// ──────────────────────────────────────────────────────────────────────────────

// Conta desativada some de FindAll mas continua no blob
// (FindAllIncludingInactive ainda a encontra).
func TestUserRepo_SoftDelete(t *testing.T) {
	ctx := context.Background()
	repo := localstore.NewUserRepository(newStore(t))

	now := time.Now()
	require.NoError(t, repo.Create(ctx, &entity.User{
		ID: "1", Name: "Ana", Login: "ana", Role: entity.RoleFuncionario,
		Setor: entity.SetorGeral, IsActive: true, CreatedAt: now, UpdatedAt: now,
	}))

	u, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	u.IsActive = false
	require.NoError(t, repo.Update(ctx, u))

	active, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, active, "conta desativada não pode aparecer na listagem ativa")

	all, err := repo.FindAllIncludingInactive(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].IsActive)
}

// Conta desativada também não autentica por login/email.
func TestUserRepo_InativoNaoAutentica(t *testing.T) {
	ctx := context.Background()
	repo := localstore.NewUserRepository(newStore(t))

	now := time.Now()
	require.NoError(t, repo.Create(ctx, &entity.User{
		ID: "1", Name: "Ana", Login: "ana", Email: "ana@sistemact.com",
		Role: entity.RoleFuncionario, Setor: entity.SetorGeral,
		IsActive: false, CreatedAt: now, UpdatedAt: now,
	}))

	got, err := repo.FindByLoginOrEmail(ctx, "ana")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Semeadura de demonstração
// ──────────────────────────────────────────────────────────────────────────────

// A semeadura acontece uma única vez: a segunda inicialização com dados
// existentes não duplica registros.
func TestSeed_Idempotente(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	seeded, err := localstore.Seed(ctx, store)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = localstore.Seed(ctx, store)
	require.NoError(t, err)
	assert.False(t, seeded, "segunda semeadura deve ser no-op")

	users, err := localstore.NewUserRepository(store).FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)

	clients, err := localstore.NewClientRepository(store).FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 3)
}

// As credenciais de demonstração ficam fora do blob e são preenchidas
// na consulta por login.
func TestSeed_CredenciaisDemo(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	_, err := localstore.Seed(ctx, store)
	require.NoError(t, err)

	admin, err := localstore.NewUserRepository(store).FindByLoginOrEmail(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "admin123", admin.Password)
	assert.Equal(t, entity.RoleAdminAll, admin.Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Notificações expiradas
// ──────────────────────────────────────────────────────────────────────────────

func TestNotificationRepo_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	repo := localstore.NewNotificationRepository(newStore(t))

	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	require.NoError(t, repo.Create(ctx, &entity.Notification{ID: "1", Title: "velha", Type: entity.NotifInfo, CreatedAt: past, ExpiresAt: &past}))
	require.NoError(t, repo.Create(ctx, &entity.Notification{ID: "2", Title: "válida", Type: entity.NotifInfo, CreatedAt: now, ExpiresAt: &future}))
	require.NoError(t, repo.Create(ctx, &entity.Notification{ID: "3", Title: "sem prazo", Type: entity.NotifInfo, CreatedAt: now}))

	removed, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	rest, err := repo.FindForUser(ctx, "qualquer")
	require.NoError(t, err)
	assert.Len(t, rest, 2)
}

// Notificações globais (sem dono) aparecem para qualquer usuário;
// as dirigidas só para o dono.
func TestNotificationRepo_FindForUser(t *testing.T) {
	ctx := context.Background()
	repo := localstore.NewNotificationRepository(newStore(t))

	now := time.Now()
	require.NoError(t, repo.Create(ctx, &entity.Notification{ID: "1", Title: "global", Type: entity.NotifInfo, CreatedAt: now}))
	require.NoError(t, repo.Create(ctx, &entity.Notification{ID: "2", Title: "da ana", UserID: "ana", Type: entity.NotifInfo, CreatedAt: now}))

	daAna, err := repo.FindForUser(ctx, "ana")
	require.NoError(t, err)
	assert.Len(t, daAna, 2)

	deOutro, err := repo.FindForUser(ctx, "outro")
	require.NoError(t, err)
	require.Len(t, deOutro, 1)
	assert.Equal(t, "global", deOutro[0].Title)
}
