package localstore

import (
	"context"
	"sort"
	"time"

	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/domain/repository"
	"github.com/sistemact/sistema-ct/pkg/textsearch"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo adaptador local de clientes.
type ClientRepo struct {
	col *Collection[entity.Client]
}

// NewClientRepository constrói o adaptador sobre o slot ct-clients.
func NewClientRepository(store *Store) *ClientRepo {
	return &ClientRepo{col: NewCollection(store, SlotClients, func(c *entity.Client) string { return c.ID })}
}

// FindAll devolve todos os clientes, mais recentes primeiro.
func (r *ClientRepo) FindAll(ctx context.Context) ([]*entity.Client, error) {
	clients, err := r.col.All()
	if err != nil {
		return nil, err
	}
	sortClients(clients)
	return clients, nil
}

// FindByID devolve o cliente pelo id, ou nil quando ausente.
func (r *ClientRepo) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	return r.col.Get(id)
}

// Search filtra por substring em nome, cpf, telefone, matrícula e email.
func (r *ClientRepo) Search(ctx context.Context, query string) ([]*entity.Client, error) {
	clients, err := r.col.Filter(func(c *entity.Client) bool {
		return textsearch.ContainsAny(query, c.Nome, c.CPF, c.Telefone, c.Matricula, c.Email)
	})
	if err != nil {
		return nil, err
	}
	sortClients(clients)
	return clients, nil
}

// FindByDateRange filtra pela data de criação, inclusive nas duas pontas.
func (r *ClientRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Client, error) {
	clients, err := r.col.Filter(func(c *entity.Client) bool {
		return !c.CreatedAt.Before(start) && !c.CreatedAt.After(end)
	})
	if err != nil {
		return nil, err
	}
	sortClients(clients)
	return clients, nil
}

// Create persiste um novo cliente.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	return r.col.Insert(client)
}

// Update substitui o cliente de mesmo id.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	_, err := r.col.Replace(client)
	return err
}

// Delete exclui o cliente; devolve false quando o id não existe.
func (r *ClientRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Remove(id)
}

func sortClients(clients []*entity.Client) {
	sort.Slice(clients, func(i, j int) bool { return clients[i].CreatedAt.After(clients[j].CreatedAt) })
}
