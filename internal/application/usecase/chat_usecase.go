package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sistemact/sistema-ct/internal/application/dto"
	"github.com/sistemact/sistema-ct/internal/domain"
	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/domain/repository"
)

// ChatUseCase casos de uso do chat interno: canais e mensagens.
type ChatUseCase struct {
	channels repository.ChatChannelRepository
	messages repository.ChatMessageRepository
	users    repository.UserRepository
}

// NewChatUseCase constrói o caso de uso.
func NewChatUseCase(
	channels repository.ChatChannelRepository,
	messages repository.ChatMessageRepository,
	users repository.UserRepository,
) *ChatUseCase {
	return &ChatUseCase{channels: channels, messages: messages, users: users}
}

// CreateChannel cria um canal. O criador entra como primeiro membro.
func (uc *ChatUseCase) CreateChannel(ctx context.Context, actorID string, in dto.CreateChannelRequest) (*dto.ChannelResponse, error) {
	if in.Name == "" || (in.Type != entity.ChannelPublic && in.Type != entity.ChannelPrivate) {
		return nil, domain.ErrInvalidInput
	}
	members := in.Members
	if !containsString(members, actorID) {
		members = append([]string{actorID}, members...)
	}
	channel := &entity.ChatChannel{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Type:        in.Type,
		Members:     members,
		CreatedBy:   actorID,
		CreatedAt:   time.Now(),
	}
	if err := uc.channels.Create(ctx, channel); err != nil {
		return nil, err
	}
	return toChannelResponse(channel), nil
}

// ListChannels lista os canais visíveis ao usuário: públicos mais os
// privados dos quais participa.
func (uc *ChatUseCase) ListChannels(ctx context.Context, userID string) ([]dto.ChannelResponse, error) {
	list, err := uc.channels.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChannelResponse, 0, len(list))
	for _, c := range list {
		if c.Type == entity.ChannelPrivate && !c.HasMember(userID) {
			continue
		}
		out = append(out, *toChannelResponse(c))
	}
	return out, nil
}

// JoinChannel adiciona o usuário a um canal público.
func (uc *ChatUseCase) JoinChannel(ctx context.Context, channelID, userID string) (*dto.ChannelResponse, error) {
	channel, err := uc.channels.FindByID(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, domain.ErrNotFound
	}
	if channel.Type == entity.ChannelPrivate && !channel.HasMember(userID) {
		return nil, domain.ErrForbidden
	}
	if !channel.HasMember(userID) {
		channel.Members = append(channel.Members, userID)
		if err := uc.channels.Update(ctx, channel); err != nil {
			return nil, err
		}
	}
	return toChannelResponse(channel), nil
}

// LeaveChannel remove o usuário do canal.
func (uc *ChatUseCase) LeaveChannel(ctx context.Context, channelID, userID string) error {
	channel, err := uc.channels.FindByID(ctx, channelID)
	if err != nil {
		return err
	}
	if channel == nil {
		return domain.ErrNotFound
	}
	if !channel.HasMember(userID) {
		return nil
	}
	members := make([]string, 0, len(channel.Members))
	for _, m := range channel.Members {
		if m != userID {
			members = append(members, m)
		}
	}
	channel.Members = members
	return uc.channels.Update(ctx, channel)
}

// SendMessage envia uma mensagem: direta quando há ReceiverID, de canal
// quando há ChannelID, broadcast quando nenhum dos dois.
func (uc *ChatUseCase) SendMessage(ctx context.Context, actorID string, in dto.SendChatMessageRequest) (*dto.ChatMessageResponse, error) {
	if in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ReceiverID != "" && in.ChannelID != "" {
		return nil, domain.ErrInvalidInput
	}
	sender, err := uc.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, domain.ErrUserNotFound
	}

	msg := &entity.ChatMessage{
		ID:         uuid.New().String(),
		SenderID:   sender.ID,
		SenderName: sender.Name,
		Message:    in.Message,
		Timestamp:  time.Now(),
	}
	switch {
	case in.ReceiverID != "":
		receiver, err := uc.users.FindByID(ctx, in.ReceiverID)
		if err != nil {
			return nil, err
		}
		if receiver == nil {
			return nil, domain.ErrUserNotFound
		}
		msg.Type = entity.ChatPrivate
		msg.ReceiverID = receiver.ID
		msg.ReceiverName = receiver.Name
	case in.ChannelID != "":
		channel, err := uc.channels.FindByID(ctx, in.ChannelID)
		if err != nil {
			return nil, err
		}
		if channel == nil {
			return nil, domain.ErrNotFound
		}
		if !channel.HasMember(actorID) {
			return nil, domain.ErrForbidden
		}
		msg.Type = entity.ChatGroup
		msg.ChannelID = channel.ID
	default:
		msg.Type = entity.ChatBroadcast
	}
	if err := uc.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	return toChatMessageResponse(msg), nil
}

// ChannelHistory devolve as mensagens de um canal em ordem cronológica.
// Canal privado só entrega histórico a membros.
func (uc *ChatUseCase) ChannelHistory(ctx context.Context, channelID, userID string) ([]dto.ChatMessageResponse, error) {
	channel, err := uc.channels.FindByID(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, domain.ErrNotFound
	}
	if channel.Type == entity.ChannelPrivate && !channel.HasMember(userID) {
		return nil, domain.ErrForbidden
	}
	all, err := uc.messages.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChatMessageResponse, 0)
	for _, m := range all {
		if m.ChannelID == channelID {
			out = append(out, *toChatMessageResponse(m))
		}
	}
	return out, nil
}

// PrivateHistory devolve a conversa direta entre dois usuários, mais os
// broadcasts, em ordem cronológica.
func (uc *ChatUseCase) PrivateHistory(ctx context.Context, userID, otherID string) ([]dto.ChatMessageResponse, error) {
	all, err := uc.messages.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChatMessageResponse, 0)
	for _, m := range all {
		switch m.Type {
		case entity.ChatPrivate:
			direct := (m.SenderID == userID && m.ReceiverID == otherID) ||
				(m.SenderID == otherID && m.ReceiverID == userID)
			if direct {
				out = append(out, *toChatMessageResponse(m))
			}
		case entity.ChatBroadcast:
			out = append(out, *toChatMessageResponse(m))
		}
	}
	return out, nil
}

// MarkRead marca uma mensagem como lida. Só o destinatário direto pode.
func (uc *ChatUseCase) MarkRead(ctx context.Context, messageID, userID string) error {
	msg, err := uc.messages.FindByID(ctx, messageID)
	if err != nil {
		return err
	}
	if msg == nil {
		return domain.ErrNotFound
	}
	if msg.Type == entity.ChatPrivate && msg.ReceiverID != userID {
		return domain.ErrForbidden
	}
	if msg.IsRead {
		return nil
	}
	msg.IsRead = true
	return uc.messages.Update(ctx, msg)
}

// UnreadCount conta mensagens diretas não lidas dirigidas ao usuário.
func (uc *ChatUseCase) UnreadCount(ctx context.Context, userID string) (int, error) {
	all, err := uc.messages.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, m := range all {
		if m.Type == entity.ChatPrivate && m.ReceiverID == userID && !m.IsRead {
			count++
		}
	}
	return count, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func toChannelResponse(c *entity.ChatChannel) *dto.ChannelResponse {
	if c == nil {
		return nil
	}
	return &dto.ChannelResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Type:        c.Type,
		Members:     c.Members,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
	}
}

func toChatMessageResponse(m *entity.ChatMessage) *dto.ChatMessageResponse {
	if m == nil {
		return nil
	}
	return &dto.ChatMessageResponse{
		ID:           m.ID,
		SenderID:     m.SenderID,
		SenderName:   m.SenderName,
		ReceiverID:   m.ReceiverID,
		ReceiverName: m.ReceiverName,
		Message:      m.Message,
		Type:         m.Type,
		ChannelID:    m.ChannelID,
		Timestamp:    m.Timestamp,
		IsRead:       m.IsRead,
	}
}
