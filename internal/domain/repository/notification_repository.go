package repository

import (
	"context"
	"time"

	"github.com/sistemact/sistema-ct/internal/domain/entity"
)

// NotificationRepository define a porta de persistência para notificações.
type NotificationRepository interface {
	// FindForUser devolve as notificações do usuário mais as globais
	// (UserID vazio), mais recentes primeiro.
	FindForUser(ctx context.Context, userID string) ([]*entity.Notification, error)
	// FindByID devolve nil quando o id não existe.
	FindByID(ctx context.Context, id string) (*entity.Notification, error)
	Create(ctx context.Context, notif *entity.Notification) error
	Update(ctx context.Context, notif *entity.Notification) error
	// Delete devolve false quando o id não existe (não é erro).
	Delete(ctx context.Context, id string) (bool, error)
	// DeleteExpired remove notificações com ExpiresAt anterior a now e
	// devolve quantas foram removidas.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
