package repository

import (
	"context"
	"time"

	"github.com/sistemact/sistema-ct/internal/domain/entity"
)

// CashFlowRepository define a porta de persistência para lançamentos de caixa.
type CashFlowRepository interface {
	// FindAll devolve todos os lançamentos, mais recentes primeiro.
	FindAll(ctx context.Context) ([]*entity.CashFlow, error)
	// FindByID devolve nil quando o id não existe.
	FindByID(ctx context.Context, id string) (*entity.CashFlow, error)
	// FindByDateRange filtra pela data de competência (inclusive nas duas pontas).
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.CashFlow, error)
	// FindByUser filtra pelos lançamentos registrados pelo usuário.
	FindByUser(ctx context.Context, userID string) ([]*entity.CashFlow, error)
	Create(ctx context.Context, flow *entity.CashFlow) error
	Update(ctx context.Context, flow *entity.CashFlow) error
	// Delete devolve false quando o id não existe (não é erro).
	Delete(ctx context.Context, id string) (bool, error)
}
