package repository

import (
	"context"

	"github.com/sistemact/sistema-ct/internal/domain/entity"
)

// ChatChannelRepository define a porta de persistência para canais do chat interno.
type ChatChannelRepository interface {
	FindAll(ctx context.Context) ([]*entity.ChatChannel, error)
	// FindByID devolve nil quando o id não existe.
	FindByID(ctx context.Context, id string) (*entity.ChatChannel, error)
	Create(ctx context.Context, channel *entity.ChatChannel) error
	Update(ctx context.Context, channel *entity.ChatChannel) error
	// Delete devolve false quando o id não existe (não é erro).
	Delete(ctx context.Context, id string) (bool, error)
}

// ChatMessageRepository define a porta de persistência para mensagens do chat interno.
type ChatMessageRepository interface {
	// FindAll devolve todas as mensagens em ordem cronológica.
	FindAll(ctx context.Context) ([]*entity.ChatMessage, error)
	// FindByID devolve nil quando o id não existe.
	FindByID(ctx context.Context, id string) (*entity.ChatMessage, error)
	Create(ctx context.Context, msg *entity.ChatMessage) error
	Update(ctx context.Context, msg *entity.ChatMessage) error
}
