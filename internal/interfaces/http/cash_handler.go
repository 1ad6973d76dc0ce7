package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sistemact/sistema-ct/internal/application/dto"
	"github.com/sistemact/sistema-ct/internal/application/usecase"
	"github.com/sistemact/sistema-ct/internal/domain"
)

// CashHandler trata as requisições HTTP do livro-caixa (protegido).
type CashHandler struct {
	uc *usecase.CashUseCase
}

// NewCashHandler constrói o handler.
func NewCashHandler(uc *usecase.CashUseCase) *CashHandler {
	return &CashHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar lançamento de caixa
// @Tags         cash
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCashFlowRequest  true  "type (entrada|saida), amount, description"
// @Success      201   {object}  dto.CashFlowResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cash-flows [post]
func (h *CashHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCashFlowRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "conta não encontrada"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type, amount positivo e description são obrigatórios"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar lançamentos com totais
// @Tags         cash
// @Security     Bearer
// @Produce      json
// @Param        from     query  string  false  "Início do período (RFC 3339)"
// @Param        to       query  string  false  "Fim do período (RFC 3339)"
// @Param        user_id  query  string  false  "Filtrar por usuário"
// @Success      200      {object}  dto.CashFlowListResponse
// @Router       /api/cash-flows [get]
func (h *CashHandler) List(c *fiber.Ctx) error {
	if userID := c.Query("user_id"); userID != "" {
		out, err := h.uc.ListByUser(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
	if from, to := c.Query("from"), c.Query("to"); from != "" && to != "" {
		start, err1 := time.Parse(time.RFC3339, from)
		end, err2 := time.Parse(time.RFC3339, to)
		if err1 != nil || err2 != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from e to devem estar em RFC 3339"})
		}
		out, err := h.uc.ListByDateRange(c.Context(), start, end)
		if err != nil {
			if err == domain.ErrInvalidInput {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "período invertido"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Corrigir lançamento
// @Tags         cash
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do lançamento"
// @Param        body  body  dto.UpdateCashFlowRequest  true  "Campos a corrigir"
// @Success      200   {object}  dto.CashFlowResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cash-flows/{id} [put]
func (h *CashHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCashFlowRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lançamento não encontrado"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type, amount positivo e description são obrigatórios"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir lançamento
// @Tags         cash
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do lançamento"
// @Success      204  "sem conteúdo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cash-flows/{id} [delete]
func (h *CashHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lançamento não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
