package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sistemact/sistema-ct/internal/application/dto"
	"github.com/sistemact/sistema-ct/internal/application/usecase"
	"github.com/sistemact/sistema-ct/internal/domain"
)

// ZTalkHandler trata as requisições HTTP da central de atendimento ZTalk:
// contatos, conversas, filas e broadcasts.
type ZTalkHandler struct {
	uc *usecase.ZTalkUseCase
}

// NewZTalkHandler constrói o handler.
func NewZTalkHandler(uc *usecase.ZTalkUseCase) *ZTalkHandler {
	return &ZTalkHandler{uc: uc}
}

// ─── Contatos ────────────────────────────────────────────────────────

// CreateContact godoc
// @Summary      Criar contato
// @Tags         ztalk
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContactRequest  true  "name e phone obrigatórios"
// @Success      201   {object}  dto.ContactResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ztalk/contacts [post]
func (h *ZTalkHandler) CreateContact(c *fiber.Ctx) error {
	var in dto.CreateContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateContact(c.Context(), in)
	if err != nil {
		return ztalkError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListContacts godoc
// @Summary      Listar ou buscar contatos
// @Tags         ztalk
// @Security     Bearer
// @Produce      json
// @Param        q    query  string  false  "termo de busca (nome, telefone ou email)"
// @Success      200  {array}  dto.ContactResponse
// @Router       /api/ztalk/contacts [get]
func (h *ZTalkHandler) ListContacts(c *fiber.Ctx) error {
	term := c.Query("q")
	var (
		out []dto.ContactResponse
		err error
	)
	if term != "" {
		out, err = h.uc.SearchContacts(c.Context(), term)
	} else {
		out, err = h.uc.ListContacts(c.Context())
	}
	if err != nil {
		return ztalkError(c, err)
	}
	return c.JSON(out)
}

// GetContact godoc
// @Summary      Buscar contato por ID
// @Tags         ztalk
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do contato"
// @Success      200  {object}  dto.ContactResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ztalk/contacts/{id} [get]
func (h *ZTalkHandler) GetContact(c *fiber.Ctx) error {
	out, err := h.uc.GetContact(c.Context(), c.Params("id"))
	if err != nil {
		return ztalkError(c, err)
	}
	return c.JSON(out)
}

// UpdateContact godoc
// @Summary      Atualizar contato
// @Tags         ztalk
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID do contato"
// @Param        body  body  dto.UpdateContactRequest  true  "campos a atualizar"
// @Success      200   {object}  dto.ContactResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ztalk/contacts/{id} [put]
func (h *ZTalkHandler) UpdateContact(c *fiber.Ctx) error {
	var in dto.UpdateContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateContact(c.Context(), c.Params("id"), in)
	if err != nil {
		return ztalkError(c, err)
	}
	return c.JSON(out)
}

// DeleteContact godoc
// @Summary      Remover contato
// @Tags         ztalk
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do contato"
// @Success      204  "sem conteúdo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ztalk/contacts/{id} [delete]
func (h *ZTalkHandler) DeleteContact(c *fiber.Ctx) error {
	if err := h.uc.DeleteContact(c.Context(), c.Params("id")); err != nil {
		return ztalkError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ─── Conversas ───────────────────────────────────────────────────────

// CreateConversation godoc
// @Summary      Abrir conversa com um contato
// @Tags         ztalk
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateConversationRequest  true  "contact_id obrigatório"
// @Success      201   {object}  dto.ConversationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ztalk/conversations [post]
func (h *ZTalkHandler) CreateConversation(c *fiber.Ctx) error {
	var in dto.CreateConversationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateConversation(c.Context(), in)
	if err != nil {
		return ztalkError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListConversations godoc
// @Summary      Listar conversas (mais recentes primeiro)
// @Tags         ztalk
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ConversationResponse
// @Router       /api/ztalk/conversations [get]
func (h *ZTalkHandler) ListConversations(c *fiber.Ctx) error {
	out, err := h.uc.ListConversations(c.Context())
	if err != nil {
		return ztalkError(c, err)
	}
	return c.JSON(out)
}

// GetConversation godoc
// @Summary      Buscar conversa por ID
// @Tags         ztalk
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da conversa"
// @Success      200  {object}  dto.ConversationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ztalk/conversations/{id} [get]
func (h *ZTalkHandler) GetConversation(c *fiber.Ctx) error {
	out, err := h.uc.GetConversation(c.Context(), c.Params("id"))
	if err != nil {
		return ztalkError(c, err)
	}
	return c.JSON(out)
}

// UpdateConversation godoc
// @Summary      Atualizar conversa (status, agente, prioridade, tags)
// @Tags         ztalk
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "ID da conversa"
// @Param        body  body  dto.UpdateConversationRequest  true  "campos a atualizar"
// @Success      200   {object}  dto.ConversationResponse
// @Failure      409   {object}  dto.ErrorResponse  "transição de status inválida"
// @Router       /api/ztalk/conversations/{id} [put]
func (h *ZTalkHandler) UpdateConversation(c *fiber.Ctx) error {
	var in dto.UpdateConversationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateConversation(c.Context(), c.Params("id"), in)
	if err != nil {
		return ztalkError(c, err)
	}
	return c.JSON(out)
}

// SendConversationMessage godoc
// @Summary      Registrar mensagem em uma conversa
// @Tags         ztalk
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID da conversa"
// @Param        body  body  dto.SendZTalkMessageRequest   true  "content; direction (inbound|outbound)"
// @Success      201   {object}  dto.ZTalkMessageResponse
// @Failure      409   {object}  dto.ErrorResponse  "conversa encerrada"
// @Router       /api/ztalk/conversations/{id}/messages [post]
func (h *ZTalkHandler) SendConversationMessage(c *fiber.Ctx) error {
	var in dto.SendZTalkMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.SendMessage(c.Context(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return ztalkError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ConversationHistory godoc
// @Summary      Histórico de mensagens de uma conversa
// @Tags         ztalk
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da conversa"
// @Success      200  {array}  dto.ZTalkMessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ztalk/conversations/{id}/messages [get]
func (h *ZTalkHandler) ConversationHistory(c *fiber.Ctx) error {
	out, err := h.uc.ConversationHistory(c.Context(), c.Params("id"))
	if err != nil {
		return ztalkError(c, err)
	}
	return c.JSON(out)
}

// ─── Filas ───────────────────────────────────────────────────────────

// CreateQueue godoc
// @Summary      Criar fila de atendimento
// @Tags         ztalk
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQueueRequest  true  "name; working_hours opcional"
// @Success      201   {object}  dto.QueueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ztalk/queues [post]
func (h *ZTalkHandler) CreateQueue(c *fiber.Ctx) error {
	var in dto.CreateQueueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateQueue(c.Context(), in)
	if err != nil {
		return ztalkError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListQueues godoc
// @Summary      Listar filas
// @Tags         ztalk
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.QueueResponse
// @Router       /api/ztalk/queues [get]
func (h *ZTalkHandler) ListQueues(c *fiber.Ctx) error {
	out, err := h.uc.ListQueues(c.Context())
	if err != nil {
		return ztalkError(c, err)
	}
	return c.JSON(out)
}

// UpdateQueue godoc
// @Summary      Atualizar fila
// @Tags         ztalk
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID da fila"
// @Param        body  body  dto.UpdateQueueRequest  true  "campos a atualizar"
// @Success      200   {object}  dto.QueueResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ztalk/queues/{id} [put]
func (h *ZTalkHandler) UpdateQueue(c *fiber.Ctx) error {
	var in dto.UpdateQueueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateQueue(c.Context(), c.Params("id"), in)
	if err != nil {
		return ztalkError(c, err)
	}
	return c.JSON(out)
}

// DeleteQueue godoc
// @Summary      Remover fila
// @Tags         ztalk
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da fila"
// @Success      204  "sem conteúdo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ztalk/queues/{id} [delete]
func (h *ZTalkHandler) DeleteQueue(c *fiber.Ctx) error {
	if err := h.uc.DeleteQueue(c.Context(), c.Params("id")); err != nil {
		return ztalkError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ─── Broadcasts ──────────────────────────────────────────────────────

// CreateBroadcast godoc
// @Summary      Criar broadcast (rascunho ou agendado)
// @Tags         ztalk
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBroadcastRequest  true  "name, message, recipients"
// @Success      201   {object}  dto.BroadcastResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ztalk/broadcasts [post]
func (h *ZTalkHandler) CreateBroadcast(c *fiber.Ctx) error {
	var in dto.CreateBroadcastRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateBroadcast(c.Context(), GetUserID(c), in)
	if err != nil {
		return ztalkError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListBroadcasts godoc
// @Summary      Listar broadcasts
// @Tags         ztalk
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BroadcastResponse
// @Router       /api/ztalk/broadcasts [get]
func (h *ZTalkHandler) ListBroadcasts(c *fiber.Ctx) error {
	out, err := h.uc.ListBroadcasts(c.Context())
	if err != nil {
		return ztalkError(c, err)
	}
	return c.JSON(out)
}

// GetBroadcast godoc
// @Summary      Buscar broadcast por ID
// @Tags         ztalk
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do broadcast"
// @Success      200  {object}  dto.BroadcastResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ztalk/broadcasts/{id} [get]
func (h *ZTalkHandler) GetBroadcast(c *fiber.Ctx) error {
	out, err := h.uc.GetBroadcast(c.Context(), c.Params("id"))
	if err != nil {
		return ztalkError(c, err)
	}
	return c.JSON(out)
}

// SendBroadcast godoc
// @Summary      Disparar broadcast (envio assíncrono)
// @Tags         ztalk
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do broadcast"
// @Success      202  {object}  dto.BroadcastResponse  "status passa a sending"
// @Failure      409  {object}  dto.ErrorResponse      "broadcast não está em rascunho/agendado"
// @Router       /api/ztalk/broadcasts/{id}/send [post]
func (h *ZTalkHandler) SendBroadcast(c *fiber.Ctx) error {
	out, err := h.uc.SendBroadcast(c.Context(), c.Params("id"))
	if err != nil {
		return ztalkError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(out)
}

// ztalkError mapeia os erros de domínio do ZTalk para HTTP.
func ztalkError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound, domain.ErrUserNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso não encontrado"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	case domain.ErrInvalidTransition:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "operação não permitida no estado atual"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "registro duplicado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
