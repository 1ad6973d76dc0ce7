package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sistemact/sistema-ct/internal/application/dto"
	"github.com/sistemact/sistema-ct/internal/domain"
	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/domain/repository"
)

// CashUseCase casos de uso do livro-caixa. Totais são sempre recomputados
// do conjunto completo com aritmética decimal, nunca mantidos em contador.
type CashUseCase struct {
	repo  repository.CashFlowRepository
	users repository.UserRepository
}

// NewCashUseCase constrói o caso de uso.
func NewCashUseCase(repo repository.CashFlowRepository, users repository.UserRepository) *CashUseCase {
	return &CashUseCase{repo: repo, users: users}
}

// Create registra um lançamento em nome do usuário autenticado. Amount
// precisa ser positivo e Type uma das duas direções. Date ausente usa o
// momento do registro.
func (uc *CashUseCase) Create(ctx context.Context, actorID string, in dto.CreateCashFlowRequest) (*dto.CashFlowResponse, error) {
	if !entity.ValidCashType(in.Type) || in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	actor, err := uc.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrUserNotFound
	}
	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	flow := &entity.CashFlow{
		ID:          uuid.New().String(),
		UserID:      actor.ID,
		UserName:    actor.Name,
		Type:        in.Type,
		Amount:      in.Amount,
		Description: in.Description,
		Category:    in.Category,
		Date:        date,
		CreatedAt:   now,
	}
	if err := uc.repo.Create(ctx, flow); err != nil {
		return nil, err
	}
	return toCashFlowResponse(flow), nil
}

// List lista todos os lançamentos com os totais agregados.
func (uc *CashUseCase) List(ctx context.Context) (*dto.CashFlowListResponse, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toCashFlowList(list), nil
}

// ListByDateRange lista lançamentos do intervalo com os totais do recorte.
func (uc *CashUseCase) ListByDateRange(ctx context.Context, start, end time.Time) (*dto.CashFlowListResponse, error) {
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return toCashFlowList(list), nil
}

// ListByUser lista os lançamentos de um usuário com os totais do recorte.
func (uc *CashUseCase) ListByUser(ctx context.Context, userID string) (*dto.CashFlowListResponse, error) {
	list, err := uc.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toCashFlowList(list), nil
}

// Update corrige um lançamento existente. A autoria original (UserID,
// CreatedAt) é preservada; campos nil ficam como estão.
func (uc *CashUseCase) Update(ctx context.Context, id string, in dto.UpdateCashFlowRequest) (*dto.CashFlowResponse, error) {
	flow, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if flow == nil {
		return nil, domain.ErrNotFound
	}
	if in.Type != nil {
		if !entity.ValidCashType(*in.Type) {
			return nil, domain.ErrInvalidInput
		}
		flow.Type = *in.Type
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		flow.Amount = *in.Amount
	}
	if in.Description != nil {
		if *in.Description == "" {
			return nil, domain.ErrInvalidInput
		}
		flow.Description = *in.Description
	}
	if in.Category != nil {
		flow.Category = *in.Category
	}
	if in.Date != nil {
		flow.Date = *in.Date
	}
	if err := uc.repo.Update(ctx, flow); err != nil {
		return nil, err
	}
	return toCashFlowResponse(flow), nil
}

// Delete remove um lançamento; devolve ErrNotFound quando o ID não existe.
func (uc *CashUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Totals recomputa entradas, saídas e saldo do conjunto completo.
func (uc *CashUseCase) Totals(ctx context.Context) (entradas, saidas, balance decimal.Decimal, err error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, err
	}
	entradas, saidas = sumFlows(list)
	return entradas, saidas, entradas.Sub(saidas), nil
}

func sumFlows(list []*entity.CashFlow) (entradas, saidas decimal.Decimal) {
	entradas, saidas = decimal.Zero, decimal.Zero
	for _, f := range list {
		switch f.Type {
		case entity.CashEntrada:
			entradas = entradas.Add(f.Amount)
		case entity.CashSaida:
			saidas = saidas.Add(f.Amount)
		}
	}
	return entradas, saidas
}

func toCashFlowResponse(f *entity.CashFlow) *dto.CashFlowResponse {
	if f == nil {
		return nil
	}
	return &dto.CashFlowResponse{
		ID:          f.ID,
		UserID:      f.UserID,
		UserName:    f.UserName,
		Type:        f.Type,
		Amount:      f.Amount,
		Description: f.Description,
		Category:    f.Category,
		Date:        f.Date,
		CreatedAt:   f.CreatedAt,
	}
}

func toCashFlowList(list []*entity.CashFlow) *dto.CashFlowListResponse {
	items := make([]dto.CashFlowResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toCashFlowResponse(f))
	}
	entradas, saidas := sumFlows(list)
	return &dto.CashFlowListResponse{
		Items:         items,
		TotalEntradas: entradas,
		TotalSaidas:   saidas,
		Balance:       entradas.Sub(saidas),
	}
}
