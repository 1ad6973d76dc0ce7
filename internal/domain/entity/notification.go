package entity

import "time"

// Severidades de notificação.
const (
	NotifInfo    = "info"
	NotifSuccess = "success"
	NotifWarning = "warning"
	NotifError   = "error"
)

// Notification é um aviso para um usuário específico (UserID preenchido)
// ou para todos (UserID vazio). Notificações expiradas são removidas
// oportunisticamente por um laço de limpeza em intervalo fixo.
type Notification struct {
	ID        string
	Title     string
	Message   string
	Type      string // info | success | warning | error
	UserID    string // vazio = broadcast para todos
	IsRead    bool
	CreatedAt time.Time
	ExpiresAt *time.Time
}

// Expired informa se a notificação já passou do prazo em relação a now.
func (n Notification) Expired(now time.Time) bool {
	return n.ExpiresAt != nil && !n.ExpiresAt.After(now)
}

// ValidNotifType informa se a severidade é uma das aceitas.
func ValidNotifType(t string) bool {
	switch t {
	case NotifInfo, NotifSuccess, NotifWarning, NotifError:
		return true
	}
	return false
}
