package entity

import "time"

// Status de um contato ZTalk.
const (
	ContactActive   = "active"
	ContactBlocked  = "blocked"
	ContactInactive = "inactive"
)

// ZTalkContact é um contato do módulo de atendimento (estilo WhatsApp).
type ZTalkContact struct {
	ID              string
	Name            string
	Phone           string
	Email           string
	Tags            []string
	LastInteraction *time.Time
	Status          string // active | blocked | inactive
	CreatedAt       time.Time
}

// ValidContactStatus informa se o status é um dos aceitos.
func ValidContactStatus(s string) bool {
	switch s {
	case ContactActive, ContactBlocked, ContactInactive:
		return true
	}
	return false
}
