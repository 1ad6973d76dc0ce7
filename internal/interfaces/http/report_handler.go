package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sistemact/sistema-ct/internal/application/dto"
	"github.com/sistemact/sistema-ct/internal/application/usecase"
	"github.com/sistemact/sistema-ct/internal/domain"
)

// ReportHandler trata as requisições HTTP de relatórios gerenciais.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Generate godoc
// @Summary      Gerar relatório com snapshot dos dados do período
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateReportRequest  true  "type (clients|cash_flow|employees|ztalk|general); período opcional"
// @Success      201   {object}  dto.ReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Generate(c.Context(), GetUserID(c), in)
	if err != nil {
		return reportError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar relatórios gerados
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        type     query  string  false  "filtrar por tipo"
// @Param        user_id  query  string  false  "filtrar por autor"
// @Param        from     query  string  false  "início (RFC3339)"
// @Param        to       query  string  false  "fim (RFC3339)"
// @Success      200  {object}  dto.ReportListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	var start, end *time.Time
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from deve ser RFC3339"})
		}
		start = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to deve ser RFC3339"})
		}
		end = &t
	}
	out, err := h.uc.List(c.Context(), c.Query("type"), c.Query("user_id"), start, end)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Buscar relatório por ID
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do relatório"
// @Success      200  {object}  dto.ReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id} [get]
func (h *ReportHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover relatório
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do relatório"
// @Success      204  "sem conteúdo"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id} [delete]
func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return reportError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportPDF godoc
// @Summary      Exportar relatório em PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID do relatório"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id}/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.ExportPDF(c.Context(), id)
	if err != nil {
		return reportError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="relatorio-%s.pdf"`, id))
	return c.Send(pdf)
}

// reportError mapeia os erros de domínio dos relatórios para HTTP.
func reportError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "relatório não encontrado"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
