package repository

import (
	"context"
	"time"

	"github.com/sistemact/sistema-ct/internal/domain/entity"
)

// ReportRepository define a porta de persistência para relatórios gerados.
type ReportRepository interface {
	// FindAll devolve os relatórios, mais recentes primeiro.
	FindAll(ctx context.Context) ([]*entity.Report, error)
	// FindByID devolve nil quando o id não existe.
	FindByID(ctx context.Context, id string) (*entity.Report, error)
	FindByType(ctx context.Context, reportType string) ([]*entity.Report, error)
	FindByUser(ctx context.Context, userID string) ([]*entity.Report, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Report, error)
	Create(ctx context.Context, report *entity.Report) error
	// Delete devolve false quando o id não existe (não é erro).
	Delete(ctx context.Context, id string) (bool, error)
}
