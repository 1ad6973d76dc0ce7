package entity

import "time"

// Status de um broadcast ZTalk.
// "failed" existe no modelo de dados mas nenhum fluxo o produz hoje;
// o gateway simulado contabiliza falhas apenas nas estatísticas agregadas.
const (
	BroadcastDraft     = "draft"
	BroadcastScheduled = "scheduled"
	BroadcastSending   = "sending"
	BroadcastSent      = "sent"
	BroadcastFailed    = "failed"
)

// BroadcastStats são os contadores agregados de um envio.
type BroadcastStats struct {
	Sent      int
	Delivered int
	Read      int
	Failed    int
}

// ZTalkBroadcast é um envio em massa para uma lista de destinatários.
// draft -> scheduled (quando há horário futuro) -> sending -> sent; sem volta.
type ZTalkBroadcast struct {
	ID           string
	Title        string
	Message      string
	Recipients   []string
	ScheduledFor *time.Time
	Status       string // draft | scheduled | sending | sent | failed
	CreatedBy    string
	CreatedAt    time.Time
	SentAt       *time.Time
	Stats        BroadcastStats
}

// Sendable informa se o broadcast ainda pode ser disparado.
func (b ZTalkBroadcast) Sendable() bool {
	return b.Status == BroadcastDraft || b.Status == BroadcastScheduled
}
