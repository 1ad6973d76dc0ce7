package localstore

import (
	"context"
	"sort"

	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/domain/repository"
	"github.com/sistemact/sistema-ct/pkg/textsearch"
)

var (
	_ repository.ZTalkContactRepository      = (*ZTalkContactRepo)(nil)
	_ repository.ZTalkConversationRepository = (*ZTalkConversationRepo)(nil)
	_ repository.ZTalkMessageRepository      = (*ZTalkMessageRepo)(nil)
	_ repository.ZTalkQueueRepository        = (*ZTalkQueueRepo)(nil)
	_ repository.ZTalkBroadcastRepository    = (*ZTalkBroadcastRepo)(nil)
)

// ZTalkContactRepo adaptador local de contatos ZTalk.
type ZTalkContactRepo struct {
	col *Collection[entity.ZTalkContact]
}

// NewZTalkContactRepository constrói o adaptador sobre o slot ct-ztalk-contacts.
func NewZTalkContactRepository(store *Store) *ZTalkContactRepo {
	return &ZTalkContactRepo{col: NewCollection(store, SlotContacts, func(c *entity.ZTalkContact) string { return c.ID })}
}

// FindAll devolve os contatos, mais recentes primeiro.
func (r *ZTalkContactRepo) FindAll(ctx context.Context) ([]*entity.ZTalkContact, error) {
	contacts, err := r.col.All()
	if err != nil {
		return nil, err
	}
	sortContacts(contacts)
	return contacts, nil
}

// FindByID devolve o contato pelo id, ou nil quando ausente.
func (r *ZTalkContactRepo) FindByID(ctx context.Context, id string) (*entity.ZTalkContact, error) {
	return r.col.Get(id)
}

// Search filtra por substring em nome, telefone e email.
func (r *ZTalkContactRepo) Search(ctx context.Context, query string) ([]*entity.ZTalkContact, error) {
	contacts, err := r.col.Filter(func(c *entity.ZTalkContact) bool {
		return textsearch.ContainsAny(query, c.Name, c.Phone, c.Email)
	})
	if err != nil {
		return nil, err
	}
	sortContacts(contacts)
	return contacts, nil
}

// Create persiste um novo contato.
func (r *ZTalkContactRepo) Create(ctx context.Context, contact *entity.ZTalkContact) error {
	return r.col.Insert(contact)
}

// Update substitui o contato de mesmo id.
func (r *ZTalkContactRepo) Update(ctx context.Context, contact *entity.ZTalkContact) error {
	_, err := r.col.Replace(contact)
	return err
}

// Delete exclui o contato; devolve false quando o id não existe.
func (r *ZTalkContactRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Remove(id)
}

func sortContacts(contacts []*entity.ZTalkContact) {
	sort.Slice(contacts, func(i, j int) bool { return contacts[i].CreatedAt.After(contacts[j].CreatedAt) })
}

// ZTalkConversationRepo adaptador local de conversas ZTalk.
type ZTalkConversationRepo struct {
	col *Collection[entity.ZTalkConversation]
}

// NewZTalkConversationRepository constrói o adaptador sobre o slot ct-ztalk-conversations.
func NewZTalkConversationRepository(store *Store) *ZTalkConversationRepo {
	return &ZTalkConversationRepo{col: NewCollection(store, SlotConversations, func(c *entity.ZTalkConversation) string { return c.ID })}
}

// FindAll devolve as conversas ordenadas pela atualização mais recente.
func (r *ZTalkConversationRepo) FindAll(ctx context.Context) ([]*entity.ZTalkConversation, error) {
	convs, err := r.col.All()
	if err != nil {
		return nil, err
	}
	sort.Slice(convs, func(i, j int) bool { return convs[i].UpdatedAt.After(convs[j].UpdatedAt) })
	return convs, nil
}

// FindByID devolve a conversa pelo id, ou nil quando ausente.
func (r *ZTalkConversationRepo) FindByID(ctx context.Context, id string) (*entity.ZTalkConversation, error) {
	return r.col.Get(id)
}

// Create persiste uma nova conversa.
func (r *ZTalkConversationRepo) Create(ctx context.Context, conv *entity.ZTalkConversation) error {
	return r.col.Insert(conv)
}

// Update substitui a conversa de mesmo id.
func (r *ZTalkConversationRepo) Update(ctx context.Context, conv *entity.ZTalkConversation) error {
	_, err := r.col.Replace(conv)
	return err
}

// ZTalkMessageRepo adaptador local de mensagens ZTalk.
type ZTalkMessageRepo struct {
	col *Collection[entity.ZTalkMessage]
}

// NewZTalkMessageRepository constrói o adaptador sobre o slot ct-ztalk-messages.
func NewZTalkMessageRepository(store *Store) *ZTalkMessageRepo {
	return &ZTalkMessageRepo{col: NewCollection(store, SlotZTalkMessages, func(m *entity.ZTalkMessage) string { return m.ID })}
}

// FindByConversation devolve as mensagens da conversa em ordem cronológica.
func (r *ZTalkMessageRepo) FindByConversation(ctx context.Context, conversationID string) ([]*entity.ZTalkMessage, error) {
	msgs, err := r.col.Filter(func(m *entity.ZTalkMessage) bool { return m.ConversationID == conversationID })
	if err != nil {
		return nil, err
	}
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].Timestamp.Before(msgs[j].Timestamp) })
	return msgs, nil
}

// Create persiste uma nova mensagem.
func (r *ZTalkMessageRepo) Create(ctx context.Context, msg *entity.ZTalkMessage) error {
	return r.col.Insert(msg)
}

// ZTalkQueueRepo adaptador local de filas de atendimento.
type ZTalkQueueRepo struct {
	col *Collection[entity.ZTalkQueue]
}

// NewZTalkQueueRepository constrói o adaptador sobre o slot ct-ztalk-queues.
func NewZTalkQueueRepository(store *Store) *ZTalkQueueRepo {
	return &ZTalkQueueRepo{col: NewCollection(store, SlotQueues, func(q *entity.ZTalkQueue) string { return q.ID })}
}

// FindAll devolve as filas na ordem do blob.
func (r *ZTalkQueueRepo) FindAll(ctx context.Context) ([]*entity.ZTalkQueue, error) {
	return r.col.All()
}

// FindByID devolve a fila pelo id, ou nil quando ausente.
func (r *ZTalkQueueRepo) FindByID(ctx context.Context, id string) (*entity.ZTalkQueue, error) {
	return r.col.Get(id)
}

// Create persiste uma nova fila.
func (r *ZTalkQueueRepo) Create(ctx context.Context, queue *entity.ZTalkQueue) error {
	return r.col.Insert(queue)
}

// Update substitui a fila de mesmo id.
func (r *ZTalkQueueRepo) Update(ctx context.Context, queue *entity.ZTalkQueue) error {
	_, err := r.col.Replace(queue)
	return err
}

// Delete exclui a fila; devolve false quando o id não existe.
func (r *ZTalkQueueRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Remove(id)
}

// ZTalkBroadcastRepo adaptador local de broadcasts.
type ZTalkBroadcastRepo struct {
	col *Collection[entity.ZTalkBroadcast]
}

// NewZTalkBroadcastRepository constrói o adaptador sobre o slot ct-ztalk-broadcasts.
func NewZTalkBroadcastRepository(store *Store) *ZTalkBroadcastRepo {
	return &ZTalkBroadcastRepo{col: NewCollection(store, SlotBroadcasts, func(b *entity.ZTalkBroadcast) string { return b.ID })}
}

// FindAll devolve os broadcasts, mais recentes primeiro.
func (r *ZTalkBroadcastRepo) FindAll(ctx context.Context) ([]*entity.ZTalkBroadcast, error) {
	bs, err := r.col.All()
	if err != nil {
		return nil, err
	}
	sort.Slice(bs, func(i, j int) bool { return bs[i].CreatedAt.After(bs[j].CreatedAt) })
	return bs, nil
}

// FindByID devolve o broadcast pelo id, ou nil quando ausente.
func (r *ZTalkBroadcastRepo) FindByID(ctx context.Context, id string) (*entity.ZTalkBroadcast, error) {
	return r.col.Get(id)
}

// Create persiste um novo broadcast.
func (r *ZTalkBroadcastRepo) Create(ctx context.Context, b *entity.ZTalkBroadcast) error {
	return r.col.Insert(b)
}

// Update substitui o broadcast de mesmo id.
func (r *ZTalkBroadcastRepo) Update(ctx context.Context, b *entity.ZTalkBroadcast) error {
	_, err := r.col.Replace(b)
	return err
}
