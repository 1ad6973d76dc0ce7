package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sistemact/sistema-ct/internal/domain"
	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementação remota de UserRepository (usável com pool ou tx).
// A coluna password fica no banco; só FindByLoginOrEmail a traz para memória.
type UserRepo struct {
	q Querier
}

// NewUserRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, name, email, role, setor, login, is_active, created_at, updated_at,
		COALESCE(created_by, ''), COALESCE(updated_by, '')`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Role, &u.Setor, &u.Login, &u.IsActive,
		&u.CreatedAt, &u.UpdatedAt, &u.CreatedBy, &u.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindAll lista as contas ativas, mais recentes primeiro.
func (r *UserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users WHERE is_active ORDER BY created_at DESC`)
}

// FindAllIncludingInactive lista todas as contas, inclusive desativadas.
func (r *UserRepo) FindAllIncludingInactive(ctx context.Context) ([]*entity.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
}

func (r *UserRepo) list(ctx context.Context, query string, args ...any) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// FindByID obtém uma conta por ID; devolve nil quando ausente.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// FindByLoginOrEmail procura entre as contas ativas e traz a coluna password
// para a checagem de login. Devolve nil quando ausente.
func (r *UserRepo) FindByLoginOrEmail(ctx context.Context, loginOrEmail string) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `, password
		FROM users WHERE (login = $1 OR email = $1) AND is_active`
	var u entity.User
	err := r.q.QueryRow(ctx, query, loginOrEmail).Scan(
		&u.ID, &u.Name, &u.Email, &u.Role, &u.Setor, &u.Login, &u.IsActive,
		&u.CreatedAt, &u.UpdatedAt, &u.CreatedBy, &u.UpdatedBy, &u.Password,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by login: %w", err)
	}
	return &u, nil
}

// Create persiste uma nova conta.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, role, setor, login, password, is_active, created_at, updated_at, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.Role, user.Setor, user.Login, user.Password,
		user.IsActive, user.CreatedAt, user.UpdatedAt, user.CreatedBy, user.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Update atualiza uma conta. A senha só é sobrescrita quando vem preenchida.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET name = $2, email = $3, role = $4, setor = $5, login = $6,
			password = COALESCE(NULLIF($7, ''), password),
			is_active = $8, updated_at = $9, updated_by = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.Role, user.Setor, user.Login, user.Password,
		user.IsActive, user.UpdatedAt, user.UpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}
