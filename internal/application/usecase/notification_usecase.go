package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sistemact/sistema-ct/internal/application/dto"
	"github.com/sistemact/sistema-ct/internal/domain"
	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/domain/repository"
	"github.com/sistemact/sistema-ct/pkg/logger"
)

// PurgeInterval é o intervalo do laço de limpeza de notificações vencidas.
const PurgeInterval = time.Minute

// NotificationUseCase casos de uso de notificações. UserID vazio na criação
// dirige o aviso a todos os usuários.
type NotificationUseCase struct {
	repo repository.NotificationRepository
	log  *logger.Logger
}

// NewNotificationUseCase constrói o caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository, log *logger.Logger) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, log: log}
}

// Create cria uma notificação.
func (uc *NotificationUseCase) Create(ctx context.Context, in dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	if in.Title == "" || in.Message == "" || !entity.ValidNotifType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	notif := &entity.Notification{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Message:   in.Message,
		Type:      in.Type,
		UserID:    in.UserID,
		IsRead:    false,
		CreatedAt: time.Now(),
		ExpiresAt: in.ExpiresAt,
	}
	if err := uc.repo.Create(ctx, notif); err != nil {
		return nil, err
	}
	return toNotificationResponse(notif), nil
}

// ListForUser lista as notificações do usuário mais as globais, com o
// contador de não lidas.
func (uc *NotificationUseCase) ListForUser(ctx context.Context, userID string) (*dto.NotificationListResponse, error) {
	list, err := uc.repo.FindForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	unread := 0
	for _, n := range list {
		if !n.IsRead {
			unread++
		}
		items = append(items, *toNotificationResponse(n))
	}
	return &dto.NotificationListResponse{Items: items, Unread: unread}, nil
}

// MarkRead marca uma notificação como lida.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, id string) error {
	notif, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if notif == nil {
		return domain.ErrNotFound
	}
	if notif.IsRead {
		return nil
	}
	notif.IsRead = true
	return uc.repo.Update(ctx, notif)
}

// MarkAllRead marca como lidas todas as notificações visíveis ao usuário.
func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) error {
	list, err := uc.repo.FindForUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, n := range list {
		if n.IsRead {
			continue
		}
		n.IsRead = true
		if err := uc.repo.Update(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

// Delete remove uma notificação; devolve ErrNotFound quando o ID não existe.
func (uc *NotificationUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// ClearExpired remove as notificações vencidas e devolve quantas saíram.
func (uc *NotificationUseCase) ClearExpired(ctx context.Context) (int, error) {
	return uc.repo.DeleteExpired(ctx, time.Now())
}

// StartPurge roda a limpeza de vencidas em intervalo fixo até o ctx encerrar.
// Deve rodar em goroutine própria.
func (uc *NotificationUseCase) StartPurge(ctx context.Context) {
	ticker := time.NewTicker(PurgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := uc.ClearExpired(ctx)
			if err != nil {
				uc.log.Warn().Err(err).Msg("limpeza de notificações vencidas falhou")
				continue
			}
			if n > 0 {
				uc.log.Debug().Int("removidas", n).Msg("notificações vencidas removidas")
			}
		}
	}
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	if n == nil {
		return nil
	}
	return &dto.NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		UserID:    n.UserID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
		ExpiresAt: n.ExpiresAt,
	}
}
