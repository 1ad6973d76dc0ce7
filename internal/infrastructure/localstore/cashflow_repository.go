package localstore

import (
	"context"
	"sort"
	"time"

	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/domain/repository"
)

var _ repository.CashFlowRepository = (*CashFlowRepo)(nil)

// CashFlowRepo adaptador local do livro-caixa.
type CashFlowRepo struct {
	col *Collection[entity.CashFlow]
}

// NewCashFlowRepository constrói o adaptador sobre o slot ct-cash-flows.
func NewCashFlowRepository(store *Store) *CashFlowRepo {
	return &CashFlowRepo{col: NewCollection(store, SlotCashFlows, func(f *entity.CashFlow) string { return f.ID })}
}

// FindAll devolve todos os lançamentos, mais recentes primeiro.
func (r *CashFlowRepo) FindAll(ctx context.Context) ([]*entity.CashFlow, error) {
	flows, err := r.col.All()
	if err != nil {
		return nil, err
	}
	sortFlows(flows)
	return flows, nil
}

// FindByID devolve o lançamento pelo id, ou nil quando ausente.
func (r *CashFlowRepo) FindByID(ctx context.Context, id string) (*entity.CashFlow, error) {
	return r.col.Get(id)
}

// FindByDateRange filtra pela data de competência, inclusive nas duas pontas.
func (r *CashFlowRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.CashFlow, error) {
	flows, err := r.col.Filter(func(f *entity.CashFlow) bool {
		return !f.Date.Before(start) && !f.Date.After(end)
	})
	if err != nil {
		return nil, err
	}
	sortFlows(flows)
	return flows, nil
}

// FindByUser filtra pelos lançamentos registrados pelo usuário.
func (r *CashFlowRepo) FindByUser(ctx context.Context, userID string) ([]*entity.CashFlow, error) {
	flows, err := r.col.Filter(func(f *entity.CashFlow) bool { return f.UserID == userID })
	if err != nil {
		return nil, err
	}
	sortFlows(flows)
	return flows, nil
}

// Create persiste um novo lançamento.
func (r *CashFlowRepo) Create(ctx context.Context, flow *entity.CashFlow) error {
	return r.col.Insert(flow)
}

// Update substitui o lançamento de mesmo id.
func (r *CashFlowRepo) Update(ctx context.Context, flow *entity.CashFlow) error {
	_, err := r.col.Replace(flow)
	return err
}

// Delete exclui o lançamento; devolve false quando o id não existe.
func (r *CashFlowRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Remove(id)
}

func sortFlows(flows []*entity.CashFlow) {
	sort.Slice(flows, func(i, j int) bool { return flows[i].Date.After(flows[j].Date) })
}
