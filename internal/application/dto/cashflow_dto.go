package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCashFlowRequest entrada para criar um lançamento de caixa.
// Amount precisa ser positivo; a direção vai em Type.
type CreateCashFlowRequest struct {
	Type        string          `json:"type" validate:"required,oneof=entrada saida"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
}

// UpdateCashFlowRequest entrada para corrigir um lançamento; campos nil
// ficam como estão. UserID e CreatedAt não são editáveis.
type UpdateCashFlowRequest struct {
	Type        *string          `json:"type" validate:"omitempty,oneof=entrada saida"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Date        *time.Time       `json:"date"`
}

// CashFlowResponse saída de um lançamento.
type CashFlowResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	UserName    string          `json:"user_name"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CashFlowListResponse lista de lançamentos com os totais agregados.
type CashFlowListResponse struct {
	Items         []CashFlowResponse `json:"items"`
	TotalEntradas decimal.Decimal    `json:"total_entradas"`
	TotalSaidas   decimal.Decimal    `json:"total_saidas"`
	Balance       decimal.Decimal    `json:"balance"`
}
