package repository

import (
	"context"
	"time"

	"github.com/sistemact/sistema-ct/internal/domain/entity"
)

// ClientRepository define a porta de persistência para clientes.
type ClientRepository interface {
	// FindAll devolve todos os clientes, mais recentes primeiro.
	FindAll(ctx context.Context) ([]*entity.Client, error)
	// FindByID devolve nil quando o id não existe.
	FindByID(ctx context.Context, id string) (*entity.Client, error)
	// Search faz busca por substring (sem distinção de caixa/acentos) em
	// nome, cpf, telefone, matrícula e email.
	Search(ctx context.Context, query string) ([]*entity.Client, error)
	// FindByDateRange filtra por data de criação (inclusive nas duas pontas).
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Client, error)
	Create(ctx context.Context, client *entity.Client) error
	Update(ctx context.Context, client *entity.Client) error
	// Delete devolve false quando o id não existe (não é erro).
	Delete(ctx context.Context, id string) (bool, error)
}
