package localstore

import (
	"context"
	"sort"
	"time"

	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo adaptador local de notificações.
type NotificationRepo struct {
	col *Collection[entity.Notification]
}

// NewNotificationRepository constrói o adaptador sobre o slot ct-notifications.
func NewNotificationRepository(store *Store) *NotificationRepo {
	return &NotificationRepo{col: NewCollection(store, SlotNotifications, func(n *entity.Notification) string { return n.ID })}
}

// FindForUser devolve as notificações do usuário mais as globais, mais recentes primeiro.
func (r *NotificationRepo) FindForUser(ctx context.Context, userID string) ([]*entity.Notification, error) {
	notifs, err := r.col.Filter(func(n *entity.Notification) bool {
		return n.UserID == "" || n.UserID == userID
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(notifs, func(i, j int) bool { return notifs[i].CreatedAt.After(notifs[j].CreatedAt) })
	return notifs, nil
}

// FindByID devolve a notificação pelo id, ou nil quando ausente.
func (r *NotificationRepo) FindByID(ctx context.Context, id string) (*entity.Notification, error) {
	return r.col.Get(id)
}

// Create persiste uma nova notificação.
func (r *NotificationRepo) Create(ctx context.Context, notif *entity.Notification) error {
	return r.col.Insert(notif)
}

// Update substitui a notificação de mesmo id.
func (r *NotificationRepo) Update(ctx context.Context, notif *entity.Notification) error {
	_, err := r.col.Replace(notif)
	return err
}

// Delete exclui a notificação; devolve false quando o id não existe.
func (r *NotificationRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Remove(id)
}

// DeleteExpired remove as notificações vencidas em relação a now.
func (r *NotificationRepo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	return r.col.RemoveWhere(func(n *entity.Notification) bool { return n.Expired(now) })
}
