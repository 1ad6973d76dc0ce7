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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementação remota de ClientRepository.
type ClientRepo struct {
	q Querier
}

func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, nome, cpf, COALESCE(telefone, ''), COALESCE(email, ''), COALESCE(endereco, ''),
		COALESCE(matricula, ''), COALESCE(telefones_adicionais, '{}'), COALESCE(observacoes, ''),
		created_at, updated_at, COALESCE(created_by, ''), COALESCE(updated_by, '')`

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.Nome, &c.CPF, &c.Telefone, &c.Email, &c.Endereco,
		&c.Matricula, &c.TelefonesAdicionais, &c.Observacoes,
		&c.CreatedAt, &c.UpdatedAt, &c.CreatedBy, &c.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindAll lista todos os clientes, mais recentes primeiro.
func (r *ClientRepo) FindAll(ctx context.Context) ([]*entity.Client, error) {
	return r.list(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY created_at DESC`)
}

// FindByID obtém um cliente por ID; devolve nil quando ausente.
func (r *ClientRepo) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	c, err := scanClient(r.q.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// Search filtra por nome, CPF, telefone, matrícula ou e-mail, sem diferenciar
// maiúsculas nem acentos (unaccent precisa estar instalada no banco).
func (r *ClientRepo) Search(ctx context.Context, term string) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE unaccent(nome) ILIKE unaccent('%' || $1 || '%')
		   OR cpf LIKE '%' || $1 || '%'
		   OR telefone LIKE '%' || $1 || '%'
		   OR matricula ILIKE '%' || $1 || '%'
		   OR email ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC`
	return r.list(ctx, query, term)
}

// FindByDateRange lista clientes cadastrados dentro do intervalo [from, to].
func (r *ClientRepo) FindByDateRange(ctx context.Context, from, to time.Time) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at DESC`
	return r.list(ctx, query, from, to)
}

func (r *ClientRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Client, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Create persiste um novo cliente.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients (id, nome, cpf, telefone, email, endereco, matricula,
			telefones_adicionais, observacoes, created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		client.ID, client.Nome, client.CPF, client.Telefone, client.Email, client.Endereco,
		client.Matricula, client.TelefonesAdicionais, client.Observacoes,
		client.CreatedAt, client.UpdatedAt, client.CreatedBy, client.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// Update atualiza um cliente existente. O created_at original é preservado.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	query := `
		UPDATE clients SET nome = $2, cpf = $3, telefone = $4, email = $5, endereco = $6,
			matricula = $7, telefones_adicionais = $8, observacoes = $9,
			updated_at = $10, updated_by = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		client.ID, client.Nome, client.CPF, client.Telefone, client.Email, client.Endereco,
		client.Matricula, client.TelefonesAdicionais, client.Observacoes,
		client.UpdatedAt, client.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete remove o cliente; devolve false quando o ID não existia.
func (r *ClientRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete client: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
