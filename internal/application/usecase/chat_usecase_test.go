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
	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/infrastructure/localstore"
)

func newChatUseCase(t *testing.T) *usecase.ChatUseCase {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	users := localstore.NewUserRepository(store)
	now := time.Now()
	for _, u := range []struct{ id, name string }{
		{"u1", "Usuário Um"}, {"u2", "Usuário Dois"}, {"u3", "Usuário Três"},
	} {
		require.NoError(t, users.Create(context.Background(), &entity.User{
			ID: u.id, Name: u.name, Login: u.id,
			Role: entity.RoleFuncionario, Setor: entity.SetorGeral,
			IsActive: true, CreatedAt: now, UpdatedAt: now,
		}))
	}

	return usecase.NewChatUseCase(
		localstore.NewChatChannelRepository(store),
		localstore.NewChatMessageRepository(store),
		users,
	)
}

// O criador entra como primeiro membro do canal.
func TestChat_CriadorEntraComoMembro(t *testing.T) {
	uc := newChatUseCase(t)

	ch, err := uc.CreateChannel(context.Background(), "u1", dto.CreateChannelRequest{
		Name: "geral", Type: entity.ChannelPublic, Members: []string{"u2"},
	})
	require.NoError(t, err)
	assert.Contains(t, ch.Members, "u1")
	assert.Contains(t, ch.Members, "u2")
}

// Canal privado só aparece para quem é membro.
func TestChat_CanalPrivadoOcultoDeNaoMembros(t *testing.T) {
	uc := newChatUseCase(t)
	ctx := context.Background()

	_, err := uc.CreateChannel(ctx, "u1", dto.CreateChannelRequest{
		Name: "diretoria", Type: entity.ChannelPrivate,
	})
	require.NoError(t, err)

	doU1, err := uc.ListChannels(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, doU1, 1)

	doU2, err := uc.ListChannels(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, doU2, "canal privado não pode aparecer para não membro")
}

// Entrar num canal público funciona; entrar num privado sem convite é 403.
func TestChat_EntradaEmCanal(t *testing.T) {
	uc := newChatUseCase(t)
	ctx := context.Background()

	publico, err := uc.CreateChannel(ctx, "u1", dto.CreateChannelRequest{
		Name: "avisos", Type: entity.ChannelPublic,
	})
	require.NoError(t, err)
	privado, err := uc.CreateChannel(ctx, "u1", dto.CreateChannelRequest{
		Name: "rh", Type: entity.ChannelPrivate,
	})
	require.NoError(t, err)

	joined, err := uc.JoinChannel(ctx, publico.ID, "u2")
	require.NoError(t, err)
	assert.Contains(t, joined.Members, "u2")

	_, err = uc.JoinChannel(ctx, privado.ID, "u2")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Mensagem com receiver e canal ao mesmo tempo é ambígua e rejeitada.
func TestChat_MensagemAmbiguaRejeitada(t *testing.T) {
	uc := newChatUseCase(t)

	_, err := uc.SendMessage(context.Background(), "u1", dto.SendChatMessageRequest{
		ReceiverID: "u2", ChannelID: "c1", Message: "para quem?",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Conversa direta: o histórico cobre os dois sentidos e inclui broadcasts.
func TestChat_HistoricoDireto(t *testing.T) {
	uc := newChatUseCase(t)
	ctx := context.Background()

	_, err := uc.SendMessage(ctx, "u1", dto.SendChatMessageRequest{ReceiverID: "u2", Message: "oi u2"})
	require.NoError(t, err)
	_, err = uc.SendMessage(ctx, "u2", dto.SendChatMessageRequest{ReceiverID: "u1", Message: "oi u1"})
	require.NoError(t, err)
	// broadcast para todos
	_, err = uc.SendMessage(ctx, "u3", dto.SendChatMessageRequest{Message: "aviso geral"})
	require.NoError(t, err)
	// direta entre outros dois não entra no histórico de u1/u2
	_, err = uc.SendMessage(ctx, "u3", dto.SendChatMessageRequest{ReceiverID: "u1", Message: "particular"})
	require.NoError(t, err)

	hist, err := uc.PrivateHistory(ctx, "u1", "u2")
	require.NoError(t, err)
	require.Len(t, hist, 3, "dois sentidos da direta mais o broadcast")
	for _, m := range hist {
		assert.NotEqual(t, "particular", m.Message)
	}
}

// Só o destinatário marca a direta como lida; o contador de não lidas cai.
func TestChat_LeituraEContadorDeNaoLidas(t *testing.T) {
	uc := newChatUseCase(t)
	ctx := context.Background()

	msg, err := uc.SendMessage(ctx, "u1", dto.SendChatMessageRequest{ReceiverID: "u2", Message: "leia-me"})
	require.NoError(t, err)

	unread, err := uc.UnreadCount(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	// o remetente não pode marcar como lida
	err = uc.MarkRead(ctx, msg.ID, "u1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, uc.MarkRead(ctx, msg.ID, "u2"))

	unread, err = uc.UnreadCount(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, 0, unread)
}

// Mensagem de canal exige ser membro.
func TestChat_MensagemDeCanalExigeMembro(t *testing.T) {
	uc := newChatUseCase(t)
	ctx := context.Background()

	ch, err := uc.CreateChannel(ctx, "u1", dto.CreateChannelRequest{
		Name: "projeto", Type: entity.ChannelPublic,
	})
	require.NoError(t, err)

	_, err = uc.SendMessage(ctx, "u2", dto.SendChatMessageRequest{ChannelID: ch.ID, Message: "posso?"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.JoinChannel(ctx, ch.ID, "u2")
	require.NoError(t, err)

	_, err = uc.SendMessage(ctx, "u2", dto.SendChatMessageRequest{ChannelID: ch.ID, Message: "agora sim"})
	require.NoError(t, err)

	hist, err := uc.ChannelHistory(ctx, ch.ID, "u2")
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, "agora sim", hist[0].Message)
}
