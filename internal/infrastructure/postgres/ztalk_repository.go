package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sistemact/sistema-ct/internal/domain"
	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/domain/repository"
)

var (
	_ repository.ZTalkContactRepository      = (*ZTalkContactRepo)(nil)
	_ repository.ZTalkConversationRepository = (*ZTalkConversationRepo)(nil)
	_ repository.ZTalkMessageRepository      = (*ZTalkMessageRepo)(nil)
	_ repository.ZTalkQueueRepository        = (*ZTalkQueueRepo)(nil)
	_ repository.ZTalkBroadcastRepository    = (*ZTalkBroadcastRepo)(nil)
)

// ZTalkContactRepo implementação remota de ZTalkContactRepository.
type ZTalkContactRepo struct {
	q Querier
}

func NewZTalkContactRepository(q Querier) *ZTalkContactRepo {
	return &ZTalkContactRepo{q: q}
}

const ztalkContactColumns = `id, name, phone, COALESCE(email, ''), COALESCE(tags, '{}'),
		last_interaction, status, created_at`

func scanZTalkContact(row pgx.Row) (*entity.ZTalkContact, error) {
	var c entity.ZTalkContact
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Tags, &c.LastInteraction, &c.Status, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ZTalkContactRepo) FindAll(ctx context.Context) ([]*entity.ZTalkContact, error) {
	return r.list(ctx, `SELECT `+ztalkContactColumns+` FROM ztalk_contacts ORDER BY name`)
}

func (r *ZTalkContactRepo) FindByID(ctx context.Context, id string) (*entity.ZTalkContact, error) {
	c, err := scanZTalkContact(r.q.QueryRow(ctx,
		`SELECT `+ztalkContactColumns+` FROM ztalk_contacts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ztalk contact: %w", err)
	}
	return c, nil
}

// Search filtra por nome, telefone ou e-mail sem diferenciar caixa nem acentos.
func (r *ZTalkContactRepo) Search(ctx context.Context, query string) ([]*entity.ZTalkContact, error) {
	sql := `
		SELECT ` + ztalkContactColumns + `
		FROM ztalk_contacts
		WHERE unaccent(name) ILIKE unaccent('%' || $1 || '%')
		   OR phone LIKE '%' || $1 || '%'
		   OR email ILIKE '%' || $1 || '%'
		ORDER BY name`
	return r.list(ctx, sql, query)
}

func (r *ZTalkContactRepo) list(ctx context.Context, query string, args ...any) ([]*entity.ZTalkContact, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ztalk contacts: %w", err)
	}
	defer rows.Close()
	var list []*entity.ZTalkContact
	for rows.Next() {
		c, err := scanZTalkContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ztalk contact: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *ZTalkContactRepo) Create(ctx context.Context, contact *entity.ZTalkContact) error {
	query := `
		INSERT INTO ztalk_contacts (id, name, phone, email, tags, last_interaction, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		contact.ID, contact.Name, contact.Phone, contact.Email, contact.Tags,
		contact.LastInteraction, contact.Status, contact.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ztalk contact: %w", err)
	}
	return nil
}

func (r *ZTalkContactRepo) Update(ctx context.Context, contact *entity.ZTalkContact) error {
	query := `
		UPDATE ztalk_contacts SET name = $2, phone = $3, email = $4, tags = $5,
			last_interaction = $6, status = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		contact.ID, contact.Name, contact.Phone, contact.Email, contact.Tags,
		contact.LastInteraction, contact.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update ztalk contact: %w", err)
	}
	return nil
}

func (r *ZTalkContactRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM ztalk_contacts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete ztalk contact: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ZTalkConversationRepo implementação remota de ZTalkConversationRepository.
type ZTalkConversationRepo struct {
	q Querier
}

func NewZTalkConversationRepository(q Querier) *ZTalkConversationRepo {
	return &ZTalkConversationRepo{q: q}
}

const ztalkConversationColumns = `id, contact_id, contact_name, contact_phone,
		COALESCE(assigned_to, ''), COALESCE(assigned_to_name, ''), status, priority,
		COALESCE(tags, '{}'), created_at, updated_at, COALESCE(last_message, ''), last_message_at`

func scanZTalkConversation(row pgx.Row) (*entity.ZTalkConversation, error) {
	var c entity.ZTalkConversation
	err := row.Scan(
		&c.ID, &c.ContactID, &c.ContactName, &c.ContactPhone,
		&c.AssignedTo, &c.AssignedToName, &c.Status, &c.Priority,
		&c.Tags, &c.CreatedAt, &c.UpdatedAt, &c.LastMessage, &c.LastMessageAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindAll devolve as conversas ordenadas pela atualização mais recente.
func (r *ZTalkConversationRepo) FindAll(ctx context.Context) ([]*entity.ZTalkConversation, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+ztalkConversationColumns+` FROM ztalk_conversations ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list ztalk conversations: %w", err)
	}
	defer rows.Close()
	var list []*entity.ZTalkConversation
	for rows.Next() {
		c, err := scanZTalkConversation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ztalk conversation: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *ZTalkConversationRepo) FindByID(ctx context.Context, id string) (*entity.ZTalkConversation, error) {
	c, err := scanZTalkConversation(r.q.QueryRow(ctx,
		`SELECT `+ztalkConversationColumns+` FROM ztalk_conversations WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ztalk conversation: %w", err)
	}
	return c, nil
}

func (r *ZTalkConversationRepo) Create(ctx context.Context, conv *entity.ZTalkConversation) error {
	query := `
		INSERT INTO ztalk_conversations (id, contact_id, contact_name, contact_phone,
			assigned_to, assigned_to_name, status, priority, tags,
			created_at, updated_at, last_message, last_message_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		conv.ID, conv.ContactID, conv.ContactName, conv.ContactPhone,
		conv.AssignedTo, conv.AssignedToName, conv.Status, conv.Priority, conv.Tags,
		conv.CreatedAt, conv.UpdatedAt, conv.LastMessage, conv.LastMessageAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ztalk conversation: %w", err)
	}
	return nil
}

func (r *ZTalkConversationRepo) Update(ctx context.Context, conv *entity.ZTalkConversation) error {
	query := `
		UPDATE ztalk_conversations SET assigned_to = $2, assigned_to_name = $3,
			status = $4, priority = $5, tags = $6, updated_at = $7,
			last_message = $8, last_message_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		conv.ID, conv.AssignedTo, conv.AssignedToName,
		conv.Status, conv.Priority, conv.Tags, conv.UpdatedAt,
		conv.LastMessage, conv.LastMessageAt,
	)
	if err != nil {
		return fmt.Errorf("update ztalk conversation: %w", err)
	}
	return nil
}

// ZTalkMessageRepo implementação remota de ZTalkMessageRepository.
type ZTalkMessageRepo struct {
	q Querier
}

func NewZTalkMessageRepository(q Querier) *ZTalkMessageRepo {
	return &ZTalkMessageRepo{q: q}
}

// FindByConversation devolve as mensagens da conversa em ordem cronológica.
func (r *ZTalkMessageRepo) FindByConversation(ctx context.Context, conversationID string) ([]*entity.ZTalkMessage, error) {
	query := `
		SELECT id, conversation_id, sender_id, sender_name, message, type, direction, timestamp, status
		FROM ztalk_messages WHERE conversation_id = $1 ORDER BY timestamp`
	rows, err := r.q.Query(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("list ztalk messages: %w", err)
	}
	defer rows.Close()
	var list []*entity.ZTalkMessage
	for rows.Next() {
		var m entity.ZTalkMessage
		err := rows.Scan(
			&m.ID, &m.ConversationID, &m.SenderID, &m.SenderName,
			&m.Message, &m.Type, &m.Direction, &m.Timestamp, &m.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("scan ztalk message: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *ZTalkMessageRepo) Create(ctx context.Context, msg *entity.ZTalkMessage) error {
	query := `
		INSERT INTO ztalk_messages (id, conversation_id, sender_id, sender_name,
			message, type, direction, timestamp, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		msg.ID, msg.ConversationID, msg.SenderID, msg.SenderName,
		msg.Message, msg.Type, msg.Direction, msg.Timestamp, msg.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ztalk message: %w", err)
	}
	return nil
}

// ZTalkQueueRepo implementação remota de ZTalkQueueRepository.
// A janela de expediente é achatada em colunas (working_start, working_end,
// working_days int[]).
type ZTalkQueueRepo struct {
	q Querier
}

func NewZTalkQueueRepository(q Querier) *ZTalkQueueRepo {
	return &ZTalkQueueRepo{q: q}
}

const ztalkQueueColumns = `id, name, COALESCE(description, ''), COALESCE(members, '{}'),
		auto_assign, max_conversations, working_start, working_end,
		COALESCE(working_days, '{}'), is_active`

func scanZTalkQueue(row pgx.Row) (*entity.ZTalkQueue, error) {
	var (
		q    entity.ZTalkQueue
		days []int32
	)
	err := row.Scan(
		&q.ID, &q.Name, &q.Description, &q.Members,
		&q.AutoAssign, &q.MaxConversations,
		&q.WorkingHours.Start, &q.WorkingHours.End, &days, &q.IsActive,
	)
	if err != nil {
		return nil, err
	}
	for _, d := range days {
		q.WorkingHours.Days = append(q.WorkingHours.Days, int(d))
	}
	return &q, nil
}

func workingDays(q *entity.ZTalkQueue) []int32 {
	days := make([]int32, 0, len(q.WorkingHours.Days))
	for _, d := range q.WorkingHours.Days {
		days = append(days, int32(d))
	}
	return days
}

func (r *ZTalkQueueRepo) FindAll(ctx context.Context) ([]*entity.ZTalkQueue, error) {
	rows, err := r.q.Query(ctx, `SELECT `+ztalkQueueColumns+` FROM ztalk_queues ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list ztalk queues: %w", err)
	}
	defer rows.Close()
	var list []*entity.ZTalkQueue
	for rows.Next() {
		q, err := scanZTalkQueue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ztalk queue: %w", err)
		}
		list = append(list, q)
	}
	return list, rows.Err()
}

func (r *ZTalkQueueRepo) FindByID(ctx context.Context, id string) (*entity.ZTalkQueue, error) {
	q, err := scanZTalkQueue(r.q.QueryRow(ctx,
		`SELECT `+ztalkQueueColumns+` FROM ztalk_queues WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ztalk queue: %w", err)
	}
	return q, nil
}

func (r *ZTalkQueueRepo) Create(ctx context.Context, queue *entity.ZTalkQueue) error {
	query := `
		INSERT INTO ztalk_queues (id, name, description, members, auto_assign,
			max_conversations, working_start, working_end, working_days, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		queue.ID, queue.Name, queue.Description, queue.Members, queue.AutoAssign,
		queue.MaxConversations, queue.WorkingHours.Start, queue.WorkingHours.End,
		workingDays(queue), queue.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ztalk queue: %w", err)
	}
	return nil
}

func (r *ZTalkQueueRepo) Update(ctx context.Context, queue *entity.ZTalkQueue) error {
	query := `
		UPDATE ztalk_queues SET name = $2, description = $3, members = $4, auto_assign = $5,
			max_conversations = $6, working_start = $7, working_end = $8,
			working_days = $9, is_active = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		queue.ID, queue.Name, queue.Description, queue.Members, queue.AutoAssign,
		queue.MaxConversations, queue.WorkingHours.Start, queue.WorkingHours.End,
		workingDays(queue), queue.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update ztalk queue: %w", err)
	}
	return nil
}

func (r *ZTalkQueueRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM ztalk_queues WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete ztalk queue: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ZTalkBroadcastRepo implementação remota de ZTalkBroadcastRepository.
type ZTalkBroadcastRepo struct {
	q Querier
}

func NewZTalkBroadcastRepository(q Querier) *ZTalkBroadcastRepo {
	return &ZTalkBroadcastRepo{q: q}
}

const ztalkBroadcastColumns = `id, title, message, COALESCE(recipients, '{}'), scheduled_for,
		status, created_by, created_at, sent_at,
		stats_sent, stats_delivered, stats_read, stats_failed`

func scanZTalkBroadcast(row pgx.Row) (*entity.ZTalkBroadcast, error) {
	var b entity.ZTalkBroadcast
	err := row.Scan(
		&b.ID, &b.Title, &b.Message, &b.Recipients, &b.ScheduledFor,
		&b.Status, &b.CreatedBy, &b.CreatedAt, &b.SentAt,
		&b.Stats.Sent, &b.Stats.Delivered, &b.Stats.Read, &b.Stats.Failed,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// FindAll devolve os broadcasts, mais recentes primeiro.
func (r *ZTalkBroadcastRepo) FindAll(ctx context.Context) ([]*entity.ZTalkBroadcast, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+ztalkBroadcastColumns+` FROM ztalk_broadcasts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list ztalk broadcasts: %w", err)
	}
	defer rows.Close()
	var list []*entity.ZTalkBroadcast
	for rows.Next() {
		b, err := scanZTalkBroadcast(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ztalk broadcast: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *ZTalkBroadcastRepo) FindByID(ctx context.Context, id string) (*entity.ZTalkBroadcast, error) {
	b, err := scanZTalkBroadcast(r.q.QueryRow(ctx,
		`SELECT `+ztalkBroadcastColumns+` FROM ztalk_broadcasts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ztalk broadcast: %w", err)
	}
	return b, nil
}

func (r *ZTalkBroadcastRepo) Create(ctx context.Context, b *entity.ZTalkBroadcast) error {
	query := `
		INSERT INTO ztalk_broadcasts (id, title, message, recipients, scheduled_for,
			status, created_by, created_at, sent_at,
			stats_sent, stats_delivered, stats_read, stats_failed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.Title, b.Message, b.Recipients, b.ScheduledFor,
		b.Status, b.CreatedBy, b.CreatedAt, b.SentAt,
		b.Stats.Sent, b.Stats.Delivered, b.Stats.Read, b.Stats.Failed,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ztalk broadcast: %w", err)
	}
	return nil
}

func (r *ZTalkBroadcastRepo) Update(ctx context.Context, b *entity.ZTalkBroadcast) error {
	query := `
		UPDATE ztalk_broadcasts SET title = $2, message = $3, recipients = $4,
			scheduled_for = $5, status = $6, sent_at = $7,
			stats_sent = $8, stats_delivered = $9, stats_read = $10, stats_failed = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.Title, b.Message, b.Recipients,
		b.ScheduledFor, b.Status, b.SentAt,
		b.Stats.Sent, b.Stats.Delivered, b.Stats.Read, b.Stats.Failed,
	)
	if err != nil {
		return fmt.Errorf("update ztalk broadcast: %w", err)
	}
	return nil
}
