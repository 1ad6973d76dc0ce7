package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sistemact/sistema-ct/internal/domain"
	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementação remota de NotificationRepository.
// user_id vazio marca notificação global.
type NotificationRepo struct {
	q Querier
}

func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

const notificationColumns = `id, title, message, type, COALESCE(user_id, ''), is_read, created_at, expires_at`

func scanNotification(row pgx.Row) (*entity.Notification, error) {
	var n entity.Notification
	err := row.Scan(&n.ID, &n.Title, &n.Message, &n.Type, &n.UserID, &n.IsRead, &n.CreatedAt, &n.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// FindForUser lista as notificações dirigidas ao usuário mais as globais.
func (r *NotificationRepo) FindForUser(ctx context.Context, userID string) ([]*entity.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id IS NULL OR user_id = '' OR user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// FindByID obtém uma notificação por ID; devolve nil quando ausente.
func (r *NotificationRepo) FindByID(ctx context.Context, id string) (*entity.Notification, error) {
	n, err := scanNotification(r.q.QueryRow(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return n, nil
}

// Create persiste uma nova notificação.
func (r *NotificationRepo) Create(ctx context.Context, notif *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, title, message, type, user_id, is_read, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		notif.ID, notif.Title, notif.Message, notif.Type, notif.UserID,
		notif.IsRead, notif.CreatedAt, notif.ExpiresAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// Update atualiza uma notificação (na prática, marca como lida).
func (r *NotificationRepo) Update(ctx context.Context, notif *entity.Notification) error {
	query := `
		UPDATE notifications SET title = $2, message = $3, type = $4, user_id = $5,
			is_read = $6, expires_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		notif.ID, notif.Title, notif.Message, notif.Type, notif.UserID,
		notif.IsRead, notif.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("update notification: %w", err)
	}
	return nil
}

// Delete remove uma notificação; devolve false quando o ID não existia.
func (r *NotificationRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete notification: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteExpired remove notificações vencidas em relação a now.
func (r *NotificationRepo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM notifications WHERE expires_at IS NOT NULL AND expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired notifications: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
