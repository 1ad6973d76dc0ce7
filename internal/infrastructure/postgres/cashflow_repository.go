package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sistemact/sistema-ct/internal/domain"
	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/domain/repository"
)

var _ repository.CashFlowRepository = (*CashFlowRepo)(nil)

// CashFlowRepo implementação remota de CashFlowRepository.
// Amount é numeric no banco; o codec de decimal registrado no pool
// garante ida e volta sem passar por float64.
type CashFlowRepo struct {
	q Querier
}

func NewCashFlowRepository(q Querier) *CashFlowRepo {
	return &CashFlowRepo{q: q}
}

const cashFlowColumns = `id, user_id, user_name, type, amount, description,
		COALESCE(category, ''), date, created_at`

func scanCashFlow(row pgx.Row) (*entity.CashFlow, error) {
	var f entity.CashFlow
	err := row.Scan(
		&f.ID, &f.UserID, &f.UserName, &f.Type, &f.Amount, &f.Description,
		&f.Category, &f.Date, &f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// FindAll lista os lançamentos por data de competência, mais recentes primeiro.
func (r *CashFlowRepo) FindAll(ctx context.Context) ([]*entity.CashFlow, error) {
	return r.list(ctx, `SELECT `+cashFlowColumns+` FROM cash_flows ORDER BY date DESC, created_at DESC`)
}

// FindByID obtém um lançamento por ID; devolve nil quando ausente.
func (r *CashFlowRepo) FindByID(ctx context.Context, id string) (*entity.CashFlow, error) {
	f, err := scanCashFlow(r.q.QueryRow(ctx, `SELECT `+cashFlowColumns+` FROM cash_flows WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cash flow: %w", err)
	}
	return f, nil
}

// FindByDateRange filtra pela data de competência, inclusive nas duas pontas.
func (r *CashFlowRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.CashFlow, error) {
	return r.list(ctx,
		`SELECT `+cashFlowColumns+` FROM cash_flows WHERE date >= $1 AND date <= $2 ORDER BY date DESC, created_at DESC`,
		start, end)
}

// FindByUser lista os lançamentos registrados por um usuário.
func (r *CashFlowRepo) FindByUser(ctx context.Context, userID string) ([]*entity.CashFlow, error) {
	return r.list(ctx,
		`SELECT `+cashFlowColumns+` FROM cash_flows WHERE user_id = $1 ORDER BY date DESC, created_at DESC`,
		userID)
}

func (r *CashFlowRepo) list(ctx context.Context, query string, args ...any) ([]*entity.CashFlow, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cash flows: %w", err)
	}
	defer rows.Close()
	var list []*entity.CashFlow
	for rows.Next() {
		f, err := scanCashFlow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cash flow: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

// Create persiste um novo lançamento.
func (r *CashFlowRepo) Create(ctx context.Context, flow *entity.CashFlow) error {
	query := `
		INSERT INTO cash_flows (id, user_id, user_name, type, amount, description, category, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		flow.ID, flow.UserID, flow.UserName, flow.Type, flow.Amount,
		flow.Description, flow.Category, flow.Date, flow.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cash flow: %w", err)
	}
	return nil
}

// Update atualiza um lançamento existente.
func (r *CashFlowRepo) Update(ctx context.Context, flow *entity.CashFlow) error {
	query := `
		UPDATE cash_flows SET type = $2, amount = $3, description = $4, category = $5, date = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		flow.ID, flow.Type, flow.Amount, flow.Description, flow.Category, flow.Date,
	)
	if err != nil {
		return fmt.Errorf("update cash flow: %w", err)
	}
	return nil
}

// Delete remove um lançamento; devolve false quando o ID não existia.
func (r *CashFlowRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM cash_flows WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete cash flow: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
