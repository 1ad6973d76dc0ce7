package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistemact/sistema-ct/internal/application/dto"
	"github.com/sistemact/sistema-ct/internal/application/usecase"
	"github.com/sistemact/sistema-ct/internal/domain"
	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/infrastructure/delivery"
	"github.com/sistemact/sistema-ct/internal/infrastructure/localstore"
	"github.com/sistemact/sistema-ct/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste: repositórios locais reais sobre diretório temporário
// ──────────────────────────────────────────────────────────────────────────────

func newZTalkUseCase(t *testing.T) *usecase.ZTalkUseCase {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)

	users := localstore.NewUserRepository(store)
	now := time.Now()
	require.NoError(t, users.Create(context.Background(), &entity.User{
		ID: "agent-1", Name: "Agente Um", Login: "agente1",
		Role: entity.RoleFuncionario, Setor: entity.SetorVendas,
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	}))

	return usecase.NewZTalkUseCase(
		localstore.NewZTalkContactRepository(store),
		localstore.NewZTalkConversationRepository(store),
		localstore.NewZTalkMessageRepository(store),
		localstore.NewZTalkQueueRepository(store),
		localstore.NewZTalkBroadcastRepository(store),
		users,
		delivery.NewSimulated(10*time.Millisecond),
		logger.New(logger.Config{Env: "test", Level: "error"}),
	)
}

func newTestConversation(t *testing.T, uc *usecase.ZTalkUseCase) *dto.ConversationResponse {
	t.Helper()
	ctx := context.Background()
	contact, err := uc.CreateContact(ctx, dto.CreateContactRequest{
		Name:  "Carlos Pereira",
		Phone: "(11) 98888-7777",
	})
	require.NoError(t, err)

	conv, err := uc.CreateConversation(ctx, dto.CreateConversationRequest{ContactID: contact.ID})
	require.NoError(t, err)
	return conv
}

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados das conversas
// ──────────────────────────────────────────────────────────────────────────────

// Conversa nasce aberta com prioridade medium.
func TestConversation_NasceAbertaComPrioridadeMedium(t *testing.T) {
	uc := newZTalkUseCase(t)
	conv := newTestConversation(t, uc)

	assert.Equal(t, entity.ConvOpen, conv.Status)
	assert.Equal(t, entity.PriorityMedium, conv.Priority)
}

// open -> in_progress -> pending -> in_progress -> closed é o caminho feliz.
func TestConversation_CaminhoFelizAteEncerrar(t *testing.T) {
	uc := newZTalkUseCase(t)
	ctx := context.Background()
	conv := newTestConversation(t, uc)

	for _, status := range []string{
		entity.ConvInProgress, entity.ConvPending, entity.ConvInProgress, entity.ConvClosed,
	} {
		s := status
		updated, err := uc.UpdateConversation(ctx, conv.ID, dto.UpdateConversationRequest{Status: &s})
		require.NoError(t, err, "transição para %s deve ser aceita", s)
		assert.Equal(t, s, updated.Status)
	}
}

// Conversa encerrada é terminal: nenhuma transição sai de closed.
func TestConversation_EncerradaNaoReabre(t *testing.T) {
	uc := newZTalkUseCase(t)
	ctx := context.Background()
	conv := newTestConversation(t, uc)

	closed := entity.ConvClosed
	_, err := uc.UpdateConversation(ctx, conv.ID, dto.UpdateConversationRequest{Status: &closed})
	require.NoError(t, err)

	for _, status := range []string{entity.ConvOpen, entity.ConvPending, entity.ConvInProgress} {
		s := status
		_, err := uc.UpdateConversation(ctx, conv.ID, dto.UpdateConversationRequest{Status: &s})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition,
			"closed -> %s deve ser rejeitada", s)
	}
}

// pending não volta direto para open.
func TestConversation_PendingNaoVoltaParaOpen(t *testing.T) {
	uc := newZTalkUseCase(t)
	ctx := context.Background()
	conv := newTestConversation(t, uc)

	pending := entity.ConvPending
	_, err := uc.UpdateConversation(ctx, conv.ID, dto.UpdateConversationRequest{Status: &pending})
	require.NoError(t, err)

	open := entity.ConvOpen
	_, err = uc.UpdateConversation(ctx, conv.ID, dto.UpdateConversationRequest{Status: &open})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// Atribuir um agente a uma conversa aberta a move para in_progress.
func TestConversation_AtribuicaoMoveParaInProgress(t *testing.T) {
	uc := newZTalkUseCase(t)
	ctx := context.Background()
	conv := newTestConversation(t, uc)

	agent := "agent-1"
	updated, err := uc.UpdateConversation(ctx, conv.ID, dto.UpdateConversationRequest{AssignedTo: &agent})
	require.NoError(t, err)

	assert.Equal(t, entity.ConvInProgress, updated.Status)
	assert.Equal(t, "agent-1", updated.AssignedTo)
	assert.Equal(t, "Agente Um", updated.AssignedToName)
}

// Mensagem em conversa encerrada é rejeitada.
func TestConversation_MensagemEmConversaEncerradaRejeitada(t *testing.T) {
	uc := newZTalkUseCase(t)
	ctx := context.Background()
	conv := newTestConversation(t, uc)

	closed := entity.ConvClosed
	_, err := uc.UpdateConversation(ctx, conv.ID, dto.UpdateConversationRequest{Status: &closed})
	require.NoError(t, err)

	_, err = uc.SendMessage(ctx, conv.ID, "agent-1", dto.SendZTalkMessageRequest{Message: "oi"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// Mensagem atualiza o cache de última mensagem da conversa.
func TestConversation_MensagemAtualizaUltimaMensagem(t *testing.T) {
	uc := newZTalkUseCase(t)
	ctx := context.Background()
	conv := newTestConversation(t, uc)

	msg, err := uc.SendMessage(ctx, conv.ID, "agent-1", dto.SendZTalkMessageRequest{Message: "bom dia"})
	require.NoError(t, err)
	assert.Equal(t, entity.DirectionOutbound, msg.Direction)
	assert.Equal(t, "Agente Um", msg.SenderName)

	after, err := uc.GetConversation(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, "bom dia", after.LastMessage)
	require.NotNil(t, after.LastMessageAt)
}

// Mensagem inbound é atribuída ao contato, não ao agente.
func TestConversation_MensagemInboundUsaIdentidadeDoContato(t *testing.T) {
	uc := newZTalkUseCase(t)
	ctx := context.Background()
	conv := newTestConversation(t, uc)

	msg, err := uc.SendMessage(ctx, conv.ID, "agent-1", dto.SendZTalkMessageRequest{
		Message:   "preciso de ajuda",
		Direction: entity.DirectionInbound,
	})
	require.NoError(t, err)
	assert.Equal(t, conv.ContactID, msg.SenderID)
	assert.Equal(t, "Carlos Pereira", msg.SenderName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida dos broadcasts
// ──────────────────────────────────────────────────────────────────────────────

func recipients(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("(11) 9%04d-%04d", i, i)
	}
	return out
}

// awaitStatus espera o broadcast chegar ao status esperado (a entrega roda
// em goroutine própria).
func awaitStatus(t *testing.T, uc *usecase.ZTalkUseCase, id, want string) *dto.BroadcastResponse {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		b, err := uc.GetBroadcast(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, b)
		if b.Status == want {
			return b
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("broadcast %s não chegou ao status %s", id, want)
	return nil
}

// Broadcast sem agendamento nasce em rascunho; com horário futuro, agendado.
func TestBroadcast_StatusInicial(t *testing.T) {
	uc := newZTalkUseCase(t)
	ctx := context.Background()

	draft, err := uc.CreateBroadcast(ctx, "agent-1", dto.CreateBroadcastRequest{
		Title: "Aviso", Message: "olá", Recipients: recipients(3),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BroadcastDraft, draft.Status)

	future := time.Now().Add(time.Hour)
	scheduled, err := uc.CreateBroadcast(ctx, "agent-1", dto.CreateBroadcastRequest{
		Title: "Aviso agendado", Message: "olá", Recipients: recipients(3), ScheduledFor: &future,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BroadcastScheduled, scheduled.Status)
}

// Disparo: responde sending na hora e termina em sent com as estatísticas
// proporcionais (95% entregues, 70% lidos, 5% falhas).
func TestBroadcast_EnvioAssincronoComEstatisticas(t *testing.T) {
	uc := newZTalkUseCase(t)
	ctx := context.Background()

	b, err := uc.CreateBroadcast(ctx, "agent-1", dto.CreateBroadcastRequest{
		Title: "Campanha", Message: "promoção", Recipients: recipients(100),
	})
	require.NoError(t, err)

	sending, err := uc.SendBroadcast(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BroadcastSending, sending.Status,
		"o disparo deve responder imediatamente com status sending")

	sent := awaitStatus(t, uc, b.ID, entity.BroadcastSent)
	require.NotNil(t, sent.SentAt)
	assert.Equal(t, 100, sent.Stats.Sent)
	assert.Equal(t, 95, sent.Stats.Delivered)
	assert.Equal(t, 70, sent.Stats.Read)
	assert.Equal(t, 5, sent.Stats.Failed)
}

// Broadcast já enviado não pode ser disparado de novo.
func TestBroadcast_ReenvioRejeitado(t *testing.T) {
	uc := newZTalkUseCase(t)
	ctx := context.Background()

	b, err := uc.CreateBroadcast(ctx, "agent-1", dto.CreateBroadcastRequest{
		Title: "Único", Message: "uma vez só", Recipients: recipients(2),
	})
	require.NoError(t, err)

	_, err = uc.SendBroadcast(ctx, b.ID)
	require.NoError(t, err)
	awaitStatus(t, uc, b.ID, entity.BroadcastSent)

	_, err = uc.SendBroadcast(ctx, b.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// Listas pequenas mantêm os pisos das estatísticas dentro do total enviado.
func TestBroadcast_EstatisticasNaoExcedemEnviados(t *testing.T) {
	uc := newZTalkUseCase(t)
	ctx := context.Background()

	b, err := uc.CreateBroadcast(ctx, "agent-1", dto.CreateBroadcastRequest{
		Title: "Minúsculo", Message: "oi", Recipients: recipients(1),
	})
	require.NoError(t, err)

	_, err = uc.SendBroadcast(ctx, b.ID)
	require.NoError(t, err)
	sent := awaitStatus(t, uc, b.ID, entity.BroadcastSent)

	assert.Equal(t, 1, sent.Stats.Sent)
	assert.LessOrEqual(t, sent.Stats.Delivered, sent.Stats.Sent)
	assert.LessOrEqual(t, sent.Stats.Read, sent.Stats.Delivered)
	assert.LessOrEqual(t, sent.Stats.Failed, sent.Stats.Sent)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filas: validação da janela de expediente
// ──────────────────────────────────────────────────────────────────────────────

func TestQueue_JanelaDeExpedienteValidada(t *testing.T) {
	uc := newZTalkUseCase(t)
	ctx := context.Background()

	valid := dto.WorkingHoursDTO{Start: "08:00", End: "18:00", Days: []int{1, 2, 3, 4, 5}}
	q, err := uc.CreateQueue(ctx, dto.CreateQueueRequest{Name: "Vendas", WorkingHours: valid})
	require.NoError(t, err)
	assert.True(t, q.IsActive)
	assert.Equal(t, valid, q.WorkingHours)

	cases := []dto.WorkingHoursDTO{
		{Start: "8h", End: "18:00", Days: []int{1}},      // horário fora do formato HH:MM
		{Start: "08:00", End: "18:00", Days: []int{7}},   // dia fora de 0..6
		{Start: "08:00", End: "18:00", Days: []int{-1}},  // dia negativo
		{Start: "08:00", End: "24:01", Days: []int{1}},   // fim inválido
	}
	for _, wh := range cases {
		_, err := uc.CreateQueue(ctx, dto.CreateQueueRequest{Name: "Inválida", WorkingHours: wh})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "janela %+v deve ser rejeitada", wh)
	}
}
