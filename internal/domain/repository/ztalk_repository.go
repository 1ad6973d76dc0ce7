package repository

import (
	"context"

	"github.com/sistemact/sistema-ct/internal/domain/entity"
)

// ZTalkContactRepository define a porta de persistência para contatos ZTalk.
type ZTalkContactRepository interface {
	FindAll(ctx context.Context) ([]*entity.ZTalkContact, error)
	// FindByID devolve nil quando o id não existe.
	FindByID(ctx context.Context, id string) (*entity.ZTalkContact, error)
	// Search faz busca por substring (sem distinção de caixa/acentos) em
	// nome, telefone e email.
	Search(ctx context.Context, query string) ([]*entity.ZTalkContact, error)
	Create(ctx context.Context, contact *entity.ZTalkContact) error
	Update(ctx context.Context, contact *entity.ZTalkContact) error
	// Delete devolve false quando o id não existe (não é erro).
	Delete(ctx context.Context, id string) (bool, error)
}

// ZTalkConversationRepository define a porta de persistência para conversas ZTalk.
// Conversas não são excluídas; encerram via status closed.
type ZTalkConversationRepository interface {
	// FindAll devolve as conversas ordenadas pela atualização mais recente.
	FindAll(ctx context.Context) ([]*entity.ZTalkConversation, error)
	// FindByID devolve nil quando o id não existe.
	FindByID(ctx context.Context, id string) (*entity.ZTalkConversation, error)
	Create(ctx context.Context, conv *entity.ZTalkConversation) error
	Update(ctx context.Context, conv *entity.ZTalkConversation) error
}

// ZTalkMessageRepository define a porta de persistência para mensagens ZTalk.
type ZTalkMessageRepository interface {
	// FindByConversation devolve as mensagens da conversa em ordem cronológica.
	FindByConversation(ctx context.Context, conversationID string) ([]*entity.ZTalkMessage, error)
	Create(ctx context.Context, msg *entity.ZTalkMessage) error
}

// ZTalkQueueRepository define a porta de persistência para filas de atendimento.
type ZTalkQueueRepository interface {
	FindAll(ctx context.Context) ([]*entity.ZTalkQueue, error)
	// FindByID devolve nil quando o id não existe.
	FindByID(ctx context.Context, id string) (*entity.ZTalkQueue, error)
	Create(ctx context.Context, queue *entity.ZTalkQueue) error
	Update(ctx context.Context, queue *entity.ZTalkQueue) error
	// Delete devolve false quando o id não existe (não é erro).
	Delete(ctx context.Context, id string) (bool, error)
}

// ZTalkBroadcastRepository define a porta de persistência para broadcasts.
// Broadcasts não são excluídos; o ciclo termina em sent.
type ZTalkBroadcastRepository interface {
	// FindAll devolve os broadcasts, mais recentes primeiro.
	FindAll(ctx context.Context) ([]*entity.ZTalkBroadcast, error)
	// FindByID devolve nil quando o id não existe.
	FindByID(ctx context.Context, id string) (*entity.ZTalkBroadcast, error)
	Create(ctx context.Context, b *entity.ZTalkBroadcast) error
	Update(ctx context.Context, b *entity.ZTalkBroadcast) error
}
