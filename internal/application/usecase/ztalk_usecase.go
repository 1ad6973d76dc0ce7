package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sistemact/sistema-ct/internal/application/dto"
	"github.com/sistemact/sistema-ct/internal/domain"
	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/domain/repository"
	"github.com/sistemact/sistema-ct/pkg/brdoc"
	"github.com/sistemact/sistema-ct/pkg/logger"
)

// BroadcastGateway define a porta de entrega de broadcasts. Implementações
// bloqueiam até a entrega terminar ou o ctx ser cancelado.
type BroadcastGateway interface {
	Deliver(ctx context.Context, broadcast *entity.ZTalkBroadcast) (entity.BroadcastStats, error)
}

// ZTalkUseCase casos de uso do módulo de atendimento: contatos, conversas,
// mensagens, filas e broadcasts.
type ZTalkUseCase struct {
	contacts      repository.ZTalkContactRepository
	conversations repository.ZTalkConversationRepository
	messages      repository.ZTalkMessageRepository
	queues        repository.ZTalkQueueRepository
	broadcasts    repository.ZTalkBroadcastRepository
	users         repository.UserRepository
	gateway       BroadcastGateway
	log           *logger.Logger
}

// NewZTalkUseCase constrói o caso de uso.
func NewZTalkUseCase(
	contacts repository.ZTalkContactRepository,
	conversations repository.ZTalkConversationRepository,
	messages repository.ZTalkMessageRepository,
	queues repository.ZTalkQueueRepository,
	broadcasts repository.ZTalkBroadcastRepository,
	users repository.UserRepository,
	gateway BroadcastGateway,
	log *logger.Logger,
) *ZTalkUseCase {
	return &ZTalkUseCase{
		contacts:      contacts,
		conversations: conversations,
		messages:      messages,
		queues:        queues,
		broadcasts:    broadcasts,
		users:         users,
		gateway:       gateway,
		log:           log,
	}
}

// ── Contatos ──────────────────────────────────────────────────────────────────

// CreateContact cria um contato. O telefone sai na máscara canônica.
func (uc *ZTalkUseCase) CreateContact(ctx context.Context, in dto.CreateContactRequest) (*dto.ContactResponse, error) {
	phone := brdoc.FormatPhone(in.Phone)
	if in.Name == "" || !brdoc.ValidPhone(phone) {
		return nil, domain.ErrInvalidInput
	}
	contact := &entity.ZTalkContact{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     phone,
		Email:     in.Email,
		Tags:      in.Tags,
		Status:    entity.ContactActive,
		CreatedAt: time.Now(),
	}
	if err := uc.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// GetContact obtém um contato por ID; devolve nil quando ausente.
func (uc *ZTalkUseCase) GetContact(ctx context.Context, id string) (*dto.ContactResponse, error) {
	contact, err := uc.contacts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, nil
	}
	return toContactResponse(contact), nil
}

// UpdateContact atualiza um contato; campos nil ficam como estão.
func (uc *ZTalkUseCase) UpdateContact(ctx context.Context, id string, in dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	contact, err := uc.contacts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		contact.Name = *in.Name
	}
	if in.Phone != nil {
		phone := brdoc.FormatPhone(*in.Phone)
		if !brdoc.ValidPhone(phone) {
			return nil, domain.ErrInvalidInput
		}
		contact.Phone = phone
	}
	if in.Email != nil {
		contact.Email = *in.Email
	}
	if in.Tags != nil {
		contact.Tags = in.Tags
	}
	if in.Status != nil {
		if !entity.ValidContactStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		contact.Status = *in.Status
	}
	if err := uc.contacts.Update(ctx, contact); err != nil {
		return nil, err
	}
	return toContactResponse(contact), nil
}

// ListContacts lista todos os contatos.
func (uc *ZTalkUseCase) ListContacts(ctx context.Context) ([]dto.ContactResponse, error) {
	list, err := uc.contacts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toContactList(list), nil
}

// SearchContacts filtra contatos por nome, telefone ou e-mail. Termo vazio
// devolve todos.
func (uc *ZTalkUseCase) SearchContacts(ctx context.Context, term string) ([]dto.ContactResponse, error) {
	if term == "" {
		return uc.ListContacts(ctx)
	}
	list, err := uc.contacts.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return toContactList(list), nil
}

// DeleteContact remove um contato; devolve ErrNotFound quando o ID não existe.
func (uc *ZTalkUseCase) DeleteContact(ctx context.Context, id string) error {
	ok, err := uc.contacts.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// ── Conversas ─────────────────────────────────────────────────────────────────

// CreateConversation abre uma conversa a partir de um contato existente.
// Nasce em open, prioridade medium quando não informada.
func (uc *ZTalkUseCase) CreateConversation(ctx context.Context, in dto.CreateConversationRequest) (*dto.ConversationResponse, error) {
	contact, err := uc.contacts.FindByID(ctx, in.ContactID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	now := time.Now()
	conv := &entity.ZTalkConversation{
		ID:           uuid.New().String(),
		ContactID:    contact.ID,
		ContactName:  contact.Name,
		ContactPhone: contact.Phone,
		Status:       entity.ConvOpen,
		Priority:     priority,
		Tags:         in.Tags,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.conversations.Create(ctx, conv); err != nil {
		return nil, err
	}
	return toConversationResponse(conv), nil
}

// GetConversation obtém uma conversa por ID; devolve nil quando ausente.
func (uc *ZTalkUseCase) GetConversation(ctx context.Context, id string) (*dto.ConversationResponse, error) {
	conv, err := uc.conversations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, nil
	}
	return toConversationResponse(conv), nil
}

// ListConversations lista as conversas pela atualização mais recente.
func (uc *ZTalkUseCase) ListConversations(ctx context.Context) ([]dto.ConversationResponse, error) {
	list, err := uc.conversations.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ConversationResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toConversationResponse(c))
	}
	return out, nil
}

// UpdateConversation atribui/move uma conversa. Mudança de status passa pela
// máquina de estados; transição inválida devolve ErrInvalidTransition.
func (uc *ZTalkUseCase) UpdateConversation(ctx context.Context, id string, in dto.UpdateConversationRequest) (*dto.ConversationResponse, error) {
	conv, err := uc.conversations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, nil
	}
	if in.Status != nil && *in.Status != conv.Status {
		if !conv.CanTransition(*in.Status) {
			return nil, domain.ErrInvalidTransition
		}
		conv.Status = *in.Status
	}
	if in.AssignedTo != nil {
		if *in.AssignedTo == "" {
			conv.AssignedTo, conv.AssignedToName = "", ""
		} else {
			agent, err := uc.users.FindByID(ctx, *in.AssignedTo)
			if err != nil {
				return nil, err
			}
			if agent == nil {
				return nil, domain.ErrUserNotFound
			}
			conv.AssignedTo = agent.ID
			conv.AssignedToName = agent.Name
			// atribuição tira a conversa da fila de abertas
			if conv.Status == entity.ConvOpen {
				conv.Status = entity.ConvInProgress
			}
		}
	}
	if in.Priority != nil {
		conv.Priority = *in.Priority
	}
	if in.Tags != nil {
		conv.Tags = in.Tags
	}
	conv.UpdatedAt = time.Now()
	if err := uc.conversations.Update(ctx, conv); err != nil {
		return nil, err
	}
	return toConversationResponse(conv), nil
}

// SendMessage registra uma mensagem numa conversa não encerrada e atualiza
// o cache de última mensagem da conversa e a última interação do contato.
func (uc *ZTalkUseCase) SendMessage(ctx context.Context, conversationID, actorID string, in dto.SendZTalkMessageRequest) (*dto.ZTalkMessageResponse, error) {
	if in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	conv, err := uc.conversations.FindByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, domain.ErrNotFound
	}
	if conv.Status == entity.ConvClosed {
		return nil, domain.ErrInvalidTransition
	}

	direction := in.Direction
	if direction == "" {
		direction = entity.DirectionOutbound
	}
	msgType := in.Type
	if msgType == "" {
		msgType = "text"
	}
	now := time.Now()
	msg := &entity.ZTalkMessage{
		ID:             uuid.New().String(),
		ConversationID: conv.ID,
		Message:        in.Message,
		Type:           msgType,
		Direction:      direction,
		Timestamp:      now,
		Status:         entity.MsgSent,
	}
	if direction == entity.DirectionOutbound {
		sender, err := uc.users.FindByID(ctx, actorID)
		if err != nil {
			return nil, err
		}
		if sender == nil {
			return nil, domain.ErrUserNotFound
		}
		msg.SenderID = sender.ID
		msg.SenderName = sender.Name
	} else {
		msg.SenderID = conv.ContactID
		msg.SenderName = conv.ContactName
	}
	if err := uc.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	conv.LastMessage = in.Message
	conv.LastMessageAt = &now
	conv.UpdatedAt = now
	if err := uc.conversations.Update(ctx, conv); err != nil {
		return nil, err
	}
	if contact, err := uc.contacts.FindByID(ctx, conv.ContactID); err == nil && contact != nil {
		contact.LastInteraction = &now
		if err := uc.contacts.Update(ctx, contact); err != nil {
			uc.log.Warn().Err(err).Msg("atualização de última interação do contato falhou")
		}
	}
	return toZTalkMessageResponse(msg), nil
}

// ConversationHistory devolve as mensagens da conversa em ordem cronológica.
func (uc *ZTalkUseCase) ConversationHistory(ctx context.Context, conversationID string) ([]dto.ZTalkMessageResponse, error) {
	conv, err := uc.conversations.FindByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.messages.FindByConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ZTalkMessageResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toZTalkMessageResponse(m))
	}
	return out, nil
}

// ── Filas ─────────────────────────────────────────────────────────────────────

// CreateQueue cria uma fila de atendimento.
func (uc *ZTalkUseCase) CreateQueue(ctx context.Context, in dto.CreateQueueRequest) (*dto.QueueResponse, error) {
	if in.Name == "" || !validWorkingHours(in.WorkingHours) {
		return nil, domain.ErrInvalidInput
	}
	queue := &entity.ZTalkQueue{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Description:      in.Description,
		Members:          in.Members,
		AutoAssign:       in.AutoAssign,
		MaxConversations: in.MaxConversations,
		WorkingHours: entity.WorkingHours{
			Start: in.WorkingHours.Start,
			End:   in.WorkingHours.End,
			Days:  in.WorkingHours.Days,
		},
		IsActive: true,
	}
	if err := uc.queues.Create(ctx, queue); err != nil {
		return nil, err
	}
	return toQueueResponse(queue), nil
}

// UpdateQueue atualiza uma fila; campos nil ficam como estão.
func (uc *ZTalkUseCase) UpdateQueue(ctx context.Context, id string, in dto.UpdateQueueRequest) (*dto.QueueResponse, error) {
	queue, err := uc.queues.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if queue == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		queue.Name = *in.Name
	}
	if in.Description != nil {
		queue.Description = *in.Description
	}
	if in.Members != nil {
		queue.Members = in.Members
	}
	if in.AutoAssign != nil {
		queue.AutoAssign = *in.AutoAssign
	}
	if in.MaxConversations != nil {
		queue.MaxConversations = *in.MaxConversations
	}
	if in.WorkingHours != nil {
		if !validWorkingHours(*in.WorkingHours) {
			return nil, domain.ErrInvalidInput
		}
		queue.WorkingHours = entity.WorkingHours{
			Start: in.WorkingHours.Start,
			End:   in.WorkingHours.End,
			Days:  in.WorkingHours.Days,
		}
	}
	if in.IsActive != nil {
		queue.IsActive = *in.IsActive
	}
	if err := uc.queues.Update(ctx, queue); err != nil {
		return nil, err
	}
	return toQueueResponse(queue), nil
}

// ListQueues lista as filas.
func (uc *ZTalkUseCase) ListQueues(ctx context.Context) ([]dto.QueueResponse, error) {
	list, err := uc.queues.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QueueResponse, 0, len(list))
	for _, q := range list {
		out = append(out, *toQueueResponse(q))
	}
	return out, nil
}

// DeleteQueue remove uma fila; devolve ErrNotFound quando o ID não existe.
func (uc *ZTalkUseCase) DeleteQueue(ctx context.Context, id string) error {
	ok, err := uc.queues.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// ── Broadcasts ────────────────────────────────────────────────────────────────

// CreateBroadcast cria um broadcast: agendado quando há horário futuro,
// rascunho caso contrário.
func (uc *ZTalkUseCase) CreateBroadcast(ctx context.Context, actorID string, in dto.CreateBroadcastRequest) (*dto.BroadcastResponse, error) {
	if in.Title == "" || in.Message == "" || len(in.Recipients) == 0 {
		return nil, domain.ErrInvalidInput
	}
	status := entity.BroadcastDraft
	if in.ScheduledFor != nil && in.ScheduledFor.After(time.Now()) {
		status = entity.BroadcastScheduled
	}
	b := &entity.ZTalkBroadcast{
		ID:           uuid.New().String(),
		Title:        in.Title,
		Message:      in.Message,
		Recipients:   in.Recipients,
		ScheduledFor: in.ScheduledFor,
		Status:       status,
		CreatedBy:    actorID,
		CreatedAt:    time.Now(),
	}
	if err := uc.broadcasts.Create(ctx, b); err != nil {
		return nil, err
	}
	return toBroadcastResponse(b), nil
}

// ListBroadcasts lista os broadcasts, mais recentes primeiro.
func (uc *ZTalkUseCase) ListBroadcasts(ctx context.Context) ([]dto.BroadcastResponse, error) {
	list, err := uc.broadcasts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BroadcastResponse, 0, len(list))
	for _, b := range list {
		out = append(out, *toBroadcastResponse(b))
	}
	return out, nil
}

// GetBroadcast obtém um broadcast por ID; devolve nil quando ausente.
func (uc *ZTalkUseCase) GetBroadcast(ctx context.Context, id string) (*dto.BroadcastResponse, error) {
	b, err := uc.broadcasts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	return toBroadcastResponse(b), nil
}

// SendBroadcast dispara um broadcast em rascunho ou agendado: passa a
// sending imediatamente e a entrega roda em segundo plano; terminada, o
// status vira sent com as estatísticas do gateway. Reenvio é rejeitado.
func (uc *ZTalkUseCase) SendBroadcast(ctx context.Context, id string) (*dto.BroadcastResponse, error) {
	b, err := uc.broadcasts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if !b.Sendable() {
		return nil, domain.ErrInvalidTransition
	}
	b.Status = entity.BroadcastSending
	if err := uc.broadcasts.Update(ctx, b); err != nil {
		return nil, err
	}

	go uc.deliver(context.WithoutCancel(ctx), b.ID)

	return toBroadcastResponse(b), nil
}

// deliver roda em goroutine própria: espera o gateway e grava o desfecho.
func (uc *ZTalkUseCase) deliver(ctx context.Context, id string) {
	b, err := uc.broadcasts.FindByID(ctx, id)
	if err != nil || b == nil {
		uc.log.Warn().Err(err).Str("broadcast_id", id).Msg("broadcast sumiu durante a entrega")
		return
	}
	stats, err := uc.gateway.Deliver(ctx, b)
	if err != nil {
		uc.log.Warn().Err(err).Str("broadcast_id", id).Msg("entrega de broadcast falhou")
		return
	}
	now := time.Now()
	b.Status = entity.BroadcastSent
	b.SentAt = &now
	b.Stats = stats
	if err := uc.broadcasts.Update(ctx, b); err != nil {
		uc.log.Warn().Err(err).Str("broadcast_id", id).Msg("gravação do desfecho do broadcast falhou")
	}
}

// ── conversões ────────────────────────────────────────────────────────────────

func validWorkingHours(wh dto.WorkingHoursDTO) bool {
	if _, err := time.Parse("15:04", wh.Start); err != nil {
		return false
	}
	if _, err := time.Parse("15:04", wh.End); err != nil {
		return false
	}
	for _, d := range wh.Days {
		if d < 0 || d > 6 {
			return false
		}
	}
	return true
}

func toContactResponse(c *entity.ZTalkContact) *dto.ContactResponse {
	if c == nil {
		return nil
	}
	return &dto.ContactResponse{
		ID:              c.ID,
		Name:            c.Name,
		Phone:           c.Phone,
		Email:           c.Email,
		Tags:            c.Tags,
		LastInteraction: c.LastInteraction,
		Status:          c.Status,
		CreatedAt:       c.CreatedAt,
	}
}

func toContactList(list []*entity.ZTalkContact) []dto.ContactResponse {
	out := make([]dto.ContactResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toContactResponse(c))
	}
	return out
}

func toConversationResponse(c *entity.ZTalkConversation) *dto.ConversationResponse {
	if c == nil {
		return nil
	}
	return &dto.ConversationResponse{
		ID:             c.ID,
		ContactID:      c.ContactID,
		ContactName:    c.ContactName,
		ContactPhone:   c.ContactPhone,
		AssignedTo:     c.AssignedTo,
		AssignedToName: c.AssignedToName,
		Status:         c.Status,
		Priority:       c.Priority,
		Tags:           c.Tags,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		LastMessage:    c.LastMessage,
		LastMessageAt:  c.LastMessageAt,
	}
}

func toZTalkMessageResponse(m *entity.ZTalkMessage) *dto.ZTalkMessageResponse {
	if m == nil {
		return nil
	}
	return &dto.ZTalkMessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		SenderName:     m.SenderName,
		Message:        m.Message,
		Type:           m.Type,
		Direction:      m.Direction,
		Timestamp:      m.Timestamp,
		Status:         m.Status,
	}
}

func toQueueResponse(q *entity.ZTalkQueue) *dto.QueueResponse {
	if q == nil {
		return nil
	}
	return &dto.QueueResponse{
		ID:               q.ID,
		Name:             q.Name,
		Description:      q.Description,
		Members:          q.Members,
		AutoAssign:       q.AutoAssign,
		MaxConversations: q.MaxConversations,
		WorkingHours: dto.WorkingHoursDTO{
			Start: q.WorkingHours.Start,
			End:   q.WorkingHours.End,
			Days:  q.WorkingHours.Days,
		},
		IsActive: q.IsActive,
	}
}

func toBroadcastResponse(b *entity.ZTalkBroadcast) *dto.BroadcastResponse {
	if b == nil {
		return nil
	}
	return &dto.BroadcastResponse{
		ID:           b.ID,
		Title:        b.Title,
		Message:      b.Message,
		Recipients:   b.Recipients,
		ScheduledFor: b.ScheduledFor,
		Status:       b.Status,
		CreatedBy:    b.CreatedBy,
		CreatedAt:    b.CreatedAt,
		SentAt:       b.SentAt,
		Stats: dto.BroadcastStatsDTO{
			Sent:      b.Stats.Sent,
			Delivered: b.Stats.Delivered,
			Read:      b.Stats.Read,
			Failed:    b.Stats.Failed,
		},
	}
}
