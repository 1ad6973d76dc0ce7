package dto

import "time"

// CreateContactRequest entrada para criar um contato ZTalk.
type CreateContactRequest struct {
	Name  string   `json:"name" validate:"required,min=1,max=200"`
	Phone string   `json:"phone" validate:"required"`
	Email string   `json:"email" validate:"omitempty,email"`
	Tags  []string `json:"tags"`
}

// UpdateContactRequest entrada para atualizar um contato; campos nil ficam como estão.
type UpdateContactRequest struct {
	Name   *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Phone  *string  `json:"phone"`
	Email  *string  `json:"email" validate:"omitempty,email"`
	Tags   []string `json:"tags"`
	Status *string  `json:"status" validate:"omitempty,oneof=active blocked inactive"`
}

// ContactResponse saída de um contato.
type ContactResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Phone           string     `json:"phone"`
	Email           string     `json:"email,omitempty"`
	Tags            []string   `json:"tags"`
	LastInteraction *time.Time `json:"last_interaction,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
}

// CreateConversationRequest entrada para abrir uma conversa com um contato.
type CreateConversationRequest struct {
	ContactID string   `json:"contact_id" validate:"required"`
	Priority  string   `json:"priority" validate:"omitempty,oneof=low medium high"`
	Tags      []string `json:"tags"`
}

// UpdateConversationRequest entrada para atribuir/mover uma conversa.
// Status passa pela máquina de estados; transição inválida é rejeitada.
type UpdateConversationRequest struct {
	AssignedTo *string  `json:"assigned_to"`
	Status     *string  `json:"status" validate:"omitempty,oneof=open pending in_progress closed"`
	Priority   *string  `json:"priority" validate:"omitempty,oneof=low medium high"`
	Tags       []string `json:"tags"`
}

// ConversationResponse saída de uma conversa.
type ConversationResponse struct {
	ID             string     `json:"id"`
	ContactID      string     `json:"contact_id"`
	ContactName    string     `json:"contact_name"`
	ContactPhone   string     `json:"contact_phone"`
	AssignedTo     string     `json:"assigned_to,omitempty"`
	AssignedToName string     `json:"assigned_to_name,omitempty"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	Tags           []string   `json:"tags"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	LastMessage    string     `json:"last_message,omitempty"`
	LastMessageAt  *time.Time `json:"last_message_at,omitempty"`
}

// SendZTalkMessageRequest entrada para registrar uma mensagem numa conversa.
type SendZTalkMessageRequest struct {
	Message   string `json:"message" validate:"required"`
	Type      string `json:"type" validate:"omitempty,oneof=text image document audio"`
	Direction string `json:"direction" validate:"omitempty,oneof=inbound outbound"`
}

// ZTalkMessageResponse saída de uma mensagem de conversa.
type ZTalkMessageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	SenderName     string    `json:"sender_name"`
	Message        string    `json:"message"`
	Type           string    `json:"type"`
	Direction      string    `json:"direction"`
	Timestamp      time.Time `json:"timestamp"`
	Status         string    `json:"status"`
}

// WorkingHoursDTO janela de expediente de uma fila.
type WorkingHoursDTO struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
	Days  []int  `json:"days" validate:"required"`
}

// CreateQueueRequest entrada para criar uma fila de atendimento.
type CreateQueueRequest struct {
	Name             string          `json:"name" validate:"required,min=1,max=100"`
	Description      string          `json:"description"`
	Members          []string        `json:"members"`
	AutoAssign       bool            `json:"auto_assign"`
	MaxConversations int             `json:"max_conversations"`
	WorkingHours     WorkingHoursDTO `json:"working_hours"`
}

// UpdateQueueRequest entrada para atualizar uma fila; campos nil ficam como estão.
type UpdateQueueRequest struct {
	Name             *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Description      *string          `json:"description"`
	Members          []string         `json:"members"`
	AutoAssign       *bool            `json:"auto_assign"`
	MaxConversations *int             `json:"max_conversations"`
	WorkingHours     *WorkingHoursDTO `json:"working_hours"`
	IsActive         *bool            `json:"is_active"`
}

// QueueResponse saída de uma fila.
type QueueResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description,omitempty"`
	Members          []string        `json:"members"`
	AutoAssign       bool            `json:"auto_assign"`
	MaxConversations int             `json:"max_conversations"`
	WorkingHours     WorkingHoursDTO `json:"working_hours"`
	IsActive         bool            `json:"is_active"`
}

// CreateBroadcastRequest entrada para criar um broadcast. ScheduledFor
// futuro agenda o envio; ausente deixa em rascunho.
type CreateBroadcastRequest struct {
	Title        string     `json:"title" validate:"required,min=1,max=200"`
	Message      string     `json:"message" validate:"required"`
	Recipients   []string   `json:"recipients" validate:"required,min=1"`
	ScheduledFor *time.Time `json:"scheduled_for"`
}

// BroadcastStatsDTO contadores agregados de um envio.
type BroadcastStatsDTO struct {
	Sent      int `json:"sent"`
	Delivered int `json:"delivered"`
	Read      int `json:"read"`
	Failed    int `json:"failed"`
}

// BroadcastResponse saída de um broadcast.
type BroadcastResponse struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Message      string            `json:"message"`
	Recipients   []string          `json:"recipients"`
	ScheduledFor *time.Time        `json:"scheduled_for,omitempty"`
	Status       string            `json:"status"`
	CreatedBy    string            `json:"created_by"`
	CreatedAt    time.Time         `json:"created_at"`
	SentAt       *time.Time        `json:"sent_at,omitempty"`
	Stats        BroadcastStatsDTO `json:"stats"`
}
