package repository

import (
	"context"

	"github.com/sistemact/sistema-ct/internal/domain/entity"
)

// UserRepository define a porta de persistência para contas/funcionários.
// A desativação de conta é feita via Update(IsActive=false); não há hard delete.
type UserRepository interface {
	// FindAll devolve apenas contas ativas, mais recentes primeiro.
	FindAll(ctx context.Context) ([]*entity.User, error)
	// FindAllIncludingInactive devolve todas as contas, inclusive desativadas.
	FindAllIncludingInactive(ctx context.Context) ([]*entity.User, error)
	// FindByID devolve nil quando o id não existe.
	FindByID(ctx context.Context, id string) (*entity.User, error)
	// FindByLoginOrEmail procura entre as contas ativas; devolve nil se ausente.
	// No modo remoto o campo Password vem preenchido para a checagem de login.
	FindByLoginOrEmail(ctx context.Context, loginOrEmail string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
}
