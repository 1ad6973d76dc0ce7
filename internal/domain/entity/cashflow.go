package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direções de um lançamento de caixa.
const (
	CashEntrada = "entrada"
	CashSaida   = "saida"
)

// CashFlow é um lançamento do livro-caixa. Amount é sempre positivo;
// a direção fica em Type.
type CashFlow struct {
	ID          string
	UserID      string
	UserName    string
	Type        string // entrada | saida
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        time.Time // data de competência do lançamento
	CreatedAt   time.Time
}

// ValidCashType informa se a direção é entrada ou saida.
func ValidCashType(t string) bool {
	return t == CashEntrada || t == CashSaida
}
