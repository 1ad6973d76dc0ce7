package dto

import "time"

// CreateChannelRequest entrada para criar um canal de chat.
type CreateChannelRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Description string   `json:"description"`
	Type        string   `json:"type" validate:"required,oneof=public private"`
	Members     []string `json:"members"`
}

// ChannelResponse saída de um canal.
type ChannelResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Members     []string  `json:"members"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// SendChatMessageRequest entrada para enviar uma mensagem de chat: direta
// (ReceiverID), de canal (ChannelID) ou broadcast (nenhum dos dois).
type SendChatMessageRequest struct {
	ReceiverID string `json:"receiver_id"`
	ChannelID  string `json:"channel_id"`
	Message    string `json:"message" validate:"required"`
}

// ChatMessageResponse saída de uma mensagem de chat.
type ChatMessageResponse struct {
	ID           string    `json:"id"`
	SenderID     string    `json:"sender_id"`
	SenderName   string    `json:"sender_name"`
	ReceiverID   string    `json:"receiver_id,omitempty"`
	ReceiverName string    `json:"receiver_name,omitempty"`
	Message      string    `json:"message"`
	Type         string    `json:"type"`
	ChannelID    string    `json:"channel_id,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	IsRead       bool      `json:"is_read"`
}
