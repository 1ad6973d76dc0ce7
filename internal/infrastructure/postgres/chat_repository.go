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
	_ repository.ChatChannelRepository = (*ChatChannelRepo)(nil)
	_ repository.ChatMessageRepository = (*ChatMessageRepo)(nil)
)

// ChatChannelRepo implementação remota de ChatChannelRepository.
type ChatChannelRepo struct {
	q Querier
}

func NewChatChannelRepository(q Querier) *ChatChannelRepo {
	return &ChatChannelRepo{q: q}
}

const chatChannelColumns = `id, name, COALESCE(description, ''), type,
		COALESCE(members, '{}'), created_by, created_at`

func scanChatChannel(row pgx.Row) (*entity.ChatChannel, error) {
	var c entity.ChatChannel
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Type, &c.Members, &c.CreatedBy, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChatChannelRepo) FindAll(ctx context.Context) ([]*entity.ChatChannel, error) {
	rows, err := r.q.Query(ctx, `SELECT `+chatChannelColumns+` FROM chat_channels ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list chat channels: %w", err)
	}
	defer rows.Close()
	var list []*entity.ChatChannel
	for rows.Next() {
		c, err := scanChatChannel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chat channel: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *ChatChannelRepo) FindByID(ctx context.Context, id string) (*entity.ChatChannel, error) {
	c, err := scanChatChannel(r.q.QueryRow(ctx,
		`SELECT `+chatChannelColumns+` FROM chat_channels WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chat channel: %w", err)
	}
	return c, nil
}

func (r *ChatChannelRepo) Create(ctx context.Context, channel *entity.ChatChannel) error {
	query := `
		INSERT INTO chat_channels (id, name, description, type, members, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		channel.ID, channel.Name, channel.Description, channel.Type,
		channel.Members, channel.CreatedBy, channel.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert chat channel: %w", err)
	}
	return nil
}

func (r *ChatChannelRepo) Update(ctx context.Context, channel *entity.ChatChannel) error {
	query := `
		UPDATE chat_channels SET name = $2, description = $3, type = $4, members = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		channel.ID, channel.Name, channel.Description, channel.Type, channel.Members,
	)
	if err != nil {
		return fmt.Errorf("update chat channel: %w", err)
	}
	return nil
}

func (r *ChatChannelRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM chat_channels WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete chat channel: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ChatMessageRepo implementação remota de ChatMessageRepository.
// Mensagens não são excluídas; Update serve para marcar leitura.
type ChatMessageRepo struct {
	q Querier
}

func NewChatMessageRepository(q Querier) *ChatMessageRepo {
	return &ChatMessageRepo{q: q}
}

const chatMessageColumns = `id, sender_id, sender_name, COALESCE(receiver_id, ''),
		COALESCE(receiver_name, ''), message, type, COALESCE(channel_id, ''), timestamp, is_read`

func scanChatMessage(row pgx.Row) (*entity.ChatMessage, error) {
	var m entity.ChatMessage
	err := row.Scan(
		&m.ID, &m.SenderID, &m.SenderName, &m.ReceiverID, &m.ReceiverName,
		&m.Message, &m.Type, &m.ChannelID, &m.Timestamp, &m.IsRead,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindAll devolve todas as mensagens em ordem cronológica.
func (r *ChatMessageRepo) FindAll(ctx context.Context) ([]*entity.ChatMessage, error) {
	rows, err := r.q.Query(ctx, `SELECT `+chatMessageColumns+` FROM chat_messages ORDER BY timestamp`)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer rows.Close()
	var list []*entity.ChatMessage
	for rows.Next() {
		m, err := scanChatMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *ChatMessageRepo) FindByID(ctx context.Context, id string) (*entity.ChatMessage, error) {
	m, err := scanChatMessage(r.q.QueryRow(ctx,
		`SELECT `+chatMessageColumns+` FROM chat_messages WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chat message: %w", err)
	}
	return m, nil
}

func (r *ChatMessageRepo) Create(ctx context.Context, msg *entity.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (id, sender_id, sender_name, receiver_id, receiver_name,
			message, type, channel_id, timestamp, is_read)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		msg.ID, msg.SenderID, msg.SenderName, msg.ReceiverID, msg.ReceiverName,
		msg.Message, msg.Type, msg.ChannelID, msg.Timestamp, msg.IsRead,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}

func (r *ChatMessageRepo) Update(ctx context.Context, msg *entity.ChatMessage) error {
	_, err := r.q.Exec(ctx, `UPDATE chat_messages SET is_read = $2 WHERE id = $1`, msg.ID, msg.IsRead)
	if err != nil {
		return fmt.Errorf("update chat message: %w", err)
	}
	return nil
}
