package localstore

import (
	"context"
	"sort"

	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/domain/repository"
)

var (
	_ repository.ChatChannelRepository = (*ChatChannelRepo)(nil)
	_ repository.ChatMessageRepository = (*ChatMessageRepo)(nil)
)

// ChatChannelRepo adaptador local de canais do chat interno.
type ChatChannelRepo struct {
	col *Collection[entity.ChatChannel]
}

// NewChatChannelRepository constrói o adaptador sobre o slot ct-chat-channels.
func NewChatChannelRepository(store *Store) *ChatChannelRepo {
	return &ChatChannelRepo{col: NewCollection(store, SlotChatChannels, func(c *entity.ChatChannel) string { return c.ID })}
}

// FindAll devolve os canais em ordem de criação.
func (r *ChatChannelRepo) FindAll(ctx context.Context) ([]*entity.ChatChannel, error) {
	channels, err := r.col.All()
	if err != nil {
		return nil, err
	}
	sort.Slice(channels, func(i, j int) bool { return channels[i].CreatedAt.Before(channels[j].CreatedAt) })
	return channels, nil
}

// FindByID devolve o canal pelo id, ou nil quando ausente.
func (r *ChatChannelRepo) FindByID(ctx context.Context, id string) (*entity.ChatChannel, error) {
	return r.col.Get(id)
}

// Create persiste um novo canal.
func (r *ChatChannelRepo) Create(ctx context.Context, channel *entity.ChatChannel) error {
	return r.col.Insert(channel)
}

// Update substitui o canal de mesmo id.
func (r *ChatChannelRepo) Update(ctx context.Context, channel *entity.ChatChannel) error {
	_, err := r.col.Replace(channel)
	return err
}

// Delete exclui o canal; devolve false quando o id não existe.
func (r *ChatChannelRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Remove(id)
}

// ChatMessageRepo adaptador local de mensagens do chat interno.
type ChatMessageRepo struct {
	col *Collection[entity.ChatMessage]
}

// NewChatMessageRepository constrói o adaptador sobre o slot ct-chat-messages.
func NewChatMessageRepository(store *Store) *ChatMessageRepo {
	return &ChatMessageRepo{col: NewCollection(store, SlotChatMessages, func(m *entity.ChatMessage) string { return m.ID })}
}

// FindAll devolve todas as mensagens em ordem cronológica.
func (r *ChatMessageRepo) FindAll(ctx context.Context) ([]*entity.ChatMessage, error) {
	msgs, err := r.col.All()
	if err != nil {
		return nil, err
	}
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].Timestamp.Before(msgs[j].Timestamp) })
	return msgs, nil
}

// FindByID devolve a mensagem pelo id, ou nil quando ausente.
func (r *ChatMessageRepo) FindByID(ctx context.Context, id string) (*entity.ChatMessage, error) {
	return r.col.Get(id)
}

// Create persiste uma nova mensagem.
func (r *ChatMessageRepo) Create(ctx context.Context, msg *entity.ChatMessage) error {
	return r.col.Insert(msg)
}

// Update substitui a mensagem de mesmo id (marcação de leitura).
func (r *ChatMessageRepo) Update(ctx context.Context, msg *entity.ChatMessage) error {
	_, err := r.col.Replace(msg)
	return err
}
