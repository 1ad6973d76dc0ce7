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

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo implementação remota de ReportRepository. Data é jsonb.
type ReportRepo struct {
	q Querier
}

func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

const reportColumns = `id, title, type, data, generated_by, generated_at, period_start, period_end`

func scanReport(row pgx.Row) (*entity.Report, error) {
	var rep entity.Report
	err := row.Scan(
		&rep.ID, &rep.Title, &rep.Type, &rep.Data,
		&rep.GeneratedBy, &rep.GeneratedAt, &rep.PeriodStart, &rep.PeriodEnd,
	)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

// FindAll lista os relatórios, mais recentes primeiro.
func (r *ReportRepo) FindAll(ctx context.Context) ([]*entity.Report, error) {
	return r.list(ctx, `SELECT `+reportColumns+` FROM reports ORDER BY generated_at DESC`)
}

// FindByID obtém um relatório por ID; devolve nil quando ausente.
func (r *ReportRepo) FindByID(ctx context.Context, id string) (*entity.Report, error) {
	rep, err := scanReport(r.q.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report: %w", err)
	}
	return rep, nil
}

func (r *ReportRepo) FindByType(ctx context.Context, reportType string) ([]*entity.Report, error) {
	return r.list(ctx,
		`SELECT `+reportColumns+` FROM reports WHERE type = $1 ORDER BY generated_at DESC`, reportType)
}

func (r *ReportRepo) FindByUser(ctx context.Context, userID string) ([]*entity.Report, error) {
	return r.list(ctx,
		`SELECT `+reportColumns+` FROM reports WHERE generated_by = $1 ORDER BY generated_at DESC`, userID)
}

func (r *ReportRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Report, error) {
	return r.list(ctx,
		`SELECT `+reportColumns+` FROM reports WHERE generated_at >= $1 AND generated_at <= $2 ORDER BY generated_at DESC`,
		start, end)
}

func (r *ReportRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Report, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()
	var list []*entity.Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		list = append(list, rep)
	}
	return list, rows.Err()
}

// Create persiste um relatório gerado.
func (r *ReportRepo) Create(ctx context.Context, report *entity.Report) error {
	query := `
		INSERT INTO reports (id, title, type, data, generated_by, generated_at, period_start, period_end)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		report.ID, report.Title, report.Type, report.Data,
		report.GeneratedBy, report.GeneratedAt, report.PeriodStart, report.PeriodEnd,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// Delete remove um relatório; devolve false quando o ID não existia.
func (r *ReportRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete report: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
