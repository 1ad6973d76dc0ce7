package entity

import "time"

// Status de uma conversa ZTalk.
const (
	ConvOpen       = "open"
	ConvPending    = "pending"
	ConvInProgress = "in_progress"
	ConvClosed     = "closed"
)

// Prioridades de conversa.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ZTalkConversation é um atendimento ligado a um contato. O nome e o telefone
// do contato e a última mensagem são cacheados na própria conversa.
type ZTalkConversation struct {
	ID             string
	ContactID      string
	ContactName    string
	ContactPhone   string
	AssignedTo     string
	AssignedToName string
	Status         string // open | pending | in_progress | closed
	Priority       string // low | medium | high
	Tags           []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	LastMessage    string
	LastMessageAt  *time.Time
}

// CanTransition valida a máquina de estados da conversa:
// open -> in_progress -> closed; open/in_progress -> pending;
// pending -> in_progress/closed; closed é terminal.
func (c ZTalkConversation) CanTransition(to string) bool {
	if c.Status == ConvClosed {
		return false
	}
	switch to {
	case ConvInProgress:
		return c.Status == ConvOpen || c.Status == ConvPending
	case ConvPending:
		return c.Status == ConvOpen || c.Status == ConvInProgress
	case ConvClosed:
		return true // qualquer estado não terminal pode ser encerrado
	case ConvOpen:
		return false // nenhuma operação reabre conversa
	}
	return false
}

// Direções de mensagem ZTalk.
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// Status de entrega de mensagem ZTalk.
const (
	MsgSent      = "sent"
	MsgDelivered = "delivered"
	MsgRead      = "read"
	MsgFailed    = "failed"
)

// ZTalkMessage é uma mensagem trocada dentro de uma conversa.
type ZTalkMessage struct {
	ID             string
	ConversationID string
	SenderID       string
	SenderName     string
	Message        string
	Type           string // text | image | document | audio
	Direction      string // inbound | outbound
	Timestamp      time.Time
	Status         string // sent | delivered | read | failed
}
