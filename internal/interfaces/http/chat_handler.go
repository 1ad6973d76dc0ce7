package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sistemact/sistema-ct/internal/application/dto"
	"github.com/sistemact/sistema-ct/internal/application/usecase"
	"github.com/sistemact/sistema-ct/internal/domain"
)

// ChatHandler trata as requisições HTTP do chat interno (protegido).
type ChatHandler struct {
	uc *usecase.ChatUseCase
}

// NewChatHandler constrói o handler.
func NewChatHandler(uc *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

// CreateChannel godoc
// @Summary      Criar canal de chat
// @Tags         chat
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateChannelRequest  true  "name, type (public|private)"
// @Success      201   {object}  dto.ChannelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/chat/channels [post]
func (h *ChatHandler) CreateChannel(c *fiber.Ctx) error {
	var in dto.CreateChannelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateChannel(c.Context(), GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name e type (public|private) são obrigatórios"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListChannels godoc
// @Summary      Listar canais visíveis ao usuário
// @Tags         chat
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ChannelResponse
// @Router       /api/chat/channels [get]
func (h *ChatHandler) ListChannels(c *fiber.Ctx) error {
	out, err := h.uc.ListChannels(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// JoinChannel godoc
// @Summary      Entrar num canal público
// @Tags         chat
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do canal"
// @Success      200  {object}  dto.ChannelResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chat/channels/{id}/join [post]
func (h *ChatHandler) JoinChannel(c *fiber.Ctx) error {
	out, err := h.uc.JoinChannel(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return chatError(c, err)
	}
	return c.JSON(out)
}

// LeaveChannel godoc
// @Summary      Sair de um canal
// @Tags         chat
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do canal"
// @Success      204  "sem conteúdo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chat/channels/{id}/leave [post]
func (h *ChatHandler) LeaveChannel(c *fiber.Ctx) error {
	if err := h.uc.LeaveChannel(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return chatError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SendMessage godoc
// @Summary      Enviar mensagem (direta, de canal ou broadcast)
// @Tags         chat
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendChatMessageRequest  true  "message; receiver_id OU channel_id"
// @Success      201   {object}  dto.ChatMessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/chat/messages [post]
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	var in dto.SendChatMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.SendMessage(c.Context(), GetUserID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "message é obrigatória; receiver_id e channel_id são mutuamente exclusivos"})
		}
		return chatError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ChannelHistory godoc
// @Summary      Histórico de mensagens de um canal
// @Tags         chat
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do canal"
// @Success      200  {array}  dto.ChatMessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chat/channels/{id}/messages [get]
func (h *ChatHandler) ChannelHistory(c *fiber.Ctx) error {
	out, err := h.uc.ChannelHistory(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return chatError(c, err)
	}
	return c.JSON(out)
}

// PrivateHistory godoc
// @Summary      Conversa direta com outro usuário (mais broadcasts)
// @Tags         chat
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do outro usuário"
// @Success      200  {array}  dto.ChatMessageResponse
// @Router       /api/chat/private/{id} [get]
func (h *ChatHandler) PrivateHistory(c *fiber.Ctx) error {
	out, err := h.uc.PrivateHistory(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MarkRead godoc
// @Summary      Marcar mensagem como lida
// @Tags         chat
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da mensagem"
// @Success      204  "sem conteúdo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chat/messages/{id}/read [post]
func (h *ChatHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.uc.MarkRead(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return chatError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UnreadCount godoc
// @Summary      Contar mensagens diretas não lidas
// @Tags         chat
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int
// @Router       /api/chat/unread [get]
func (h *ChatHandler) UnreadCount(c *fiber.Ctx) error {
	n, err := h.uc.UnreadCount(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"unread": n})
}

// chatError mapeia os erros de domínio do chat para HTTP.
func chatError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound, domain.ErrUserNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso não encontrado"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sem acesso a este canal ou mensagem"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
