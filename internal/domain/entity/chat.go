package entity

import "time"

// Visibilidade de canais de chat.
const (
	ChannelPublic  = "public"
	ChannelPrivate = "private"
)

// Tipos de mensagem de chat interno.
const (
	ChatPrivate   = "private"
	ChatGroup     = "group"
	ChatBroadcast = "broadcast"
)

// ChatChannel é um canal do chat interno.
type ChatChannel struct {
	ID          string
	Name        string
	Description string
	Type        string // public | private
	Members     []string
	CreatedBy   string
	CreatedAt   time.Time
}

// HasMember informa se o usuário participa do canal.
func (c ChatChannel) HasMember(userID string) bool {
	for _, m := range c.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// ChatMessage é uma mensagem do chat interno: direta (ReceiverID), de canal
// (ChannelID) ou broadcast para todos.
type ChatMessage struct {
	ID           string
	SenderID     string
	SenderName   string
	ReceiverID   string
	ReceiverName string
	Message      string
	Type         string // private | group | broadcast
	ChannelID    string
	Timestamp    time.Time
	IsRead       bool
}
