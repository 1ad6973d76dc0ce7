package localstore

import (
	"context"
	"sort"
	"time"

	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo adaptador local de relatórios gerados.
type ReportRepo struct {
	col *Collection[entity.Report]
}

// NewReportRepository constrói o adaptador sobre o slot ct-reports.
func NewReportRepository(store *Store) *ReportRepo {
	return &ReportRepo{col: NewCollection(store, SlotReports, func(r *entity.Report) string { return r.ID })}
}

// FindAll devolve os relatórios, mais recentes primeiro.
func (r *ReportRepo) FindAll(ctx context.Context) ([]*entity.Report, error) {
	reports, err := r.col.All()
	if err != nil {
		return nil, err
	}
	sortReports(reports)
	return reports, nil
}

// FindByID devolve o relatório pelo id, ou nil quando ausente.
func (r *ReportRepo) FindByID(ctx context.Context, id string) (*entity.Report, error) {
	return r.col.Get(id)
}

// FindByType filtra pelo tipo de relatório.
func (r *ReportRepo) FindByType(ctx context.Context, reportType string) ([]*entity.Report, error) {
	reports, err := r.col.Filter(func(rep *entity.Report) bool { return rep.Type == reportType })
	if err != nil {
		return nil, err
	}
	sortReports(reports)
	return reports, nil
}

// FindByUser filtra pelos relatórios gerados pelo usuário.
func (r *ReportRepo) FindByUser(ctx context.Context, userID string) ([]*entity.Report, error) {
	reports, err := r.col.Filter(func(rep *entity.Report) bool { return rep.GeneratedBy == userID })
	if err != nil {
		return nil, err
	}
	sortReports(reports)
	return reports, nil
}

// FindByDateRange filtra pela data de geração, inclusive nas duas pontas.
func (r *ReportRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Report, error) {
	reports, err := r.col.Filter(func(rep *entity.Report) bool {
		return !rep.GeneratedAt.Before(start) && !rep.GeneratedAt.After(end)
	})
	if err != nil {
		return nil, err
	}
	sortReports(reports)
	return reports, nil
}

// Create persiste um novo relatório.
func (r *ReportRepo) Create(ctx context.Context, report *entity.Report) error {
	return r.col.Insert(report)
}

// Delete exclui o relatório; devolve false quando o id não existe.
func (r *ReportRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Remove(id)
}

func sortReports(reports []*entity.Report) {
	sort.Slice(reports, func(i, j int) bool { return reports[i].GeneratedAt.After(reports[j].GeneratedAt) })
}
