package dto

import "time"

// CreateNotificationRequest entrada para criar uma notificação.
// UserID vazio dirige o aviso a todos os usuários.
type CreateNotificationRequest struct {
	Title     string     `json:"title" validate:"required,min=1,max=200"`
	Message   string     `json:"message" validate:"required"`
	Type      string     `json:"type" validate:"required,oneof=info success warning error"`
	UserID    string     `json:"user_id"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// NotificationResponse saída de uma notificação.
type NotificationResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Type      string     `json:"type"`
	UserID    string     `json:"user_id,omitempty"`
	IsRead    bool       `json:"is_read"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// NotificationListResponse lista de notificações com o contador de não lidas.
type NotificationListResponse struct {
	Items  []NotificationResponse `json:"items"`
	Unread int                    `json:"unread"`
}
