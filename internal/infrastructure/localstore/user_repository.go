package localstore

import (
	"context"
	"sort"

	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo adaptador local de contas/funcionários. FindAll devolve apenas
// contas ativas; o registro desativado permanece no blob (soft delete).
type UserRepo struct {
	col *Collection[entity.User]
}

// NewUserRepository constrói o adaptador sobre o slot ct-users.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{col: NewCollection(store, SlotUsers, func(u *entity.User) string { return u.ID })}
}

// FindAll devolve as contas ativas, mais recentes primeiro.
func (r *UserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	users, err := r.col.Filter(func(u *entity.User) bool { return u.IsActive })
	if err != nil {
		return nil, err
	}
	sortUsers(users)
	return users, nil
}

// FindAllIncludingInactive devolve todas as contas do blob.
func (r *UserRepo) FindAllIncludingInactive(ctx context.Context) ([]*entity.User, error) {
	users, err := r.col.All()
	if err != nil {
		return nil, err
	}
	sortUsers(users)
	return users, nil
}

// FindByID devolve a conta pelo id, ou nil quando ausente.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.col.Get(id)
}

// FindByLoginOrEmail procura entre as contas ativas. No modo local a senha
// não fica no blob: o campo Password é preenchido a partir do mapa fixo de
// credenciais de demonstração, quando houver.
func (r *UserRepo) FindByLoginOrEmail(ctx context.Context, loginOrEmail string) (*entity.User, error) {
	users, err := r.col.All()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if !u.IsActive {
			continue
		}
		if u.Login == loginOrEmail || u.Email == loginOrEmail {
			if u.Password == "" {
				u.Password = DemoCredentials[u.Login]
			}
			return u, nil
		}
	}
	return nil, nil
}

// Create persiste uma nova conta.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	return r.col.Insert(user)
}

// Update substitui a conta de mesmo id; id ausente vira ErrNotFound no caso de uso.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	_, err := r.col.Replace(user)
	return err
}

func sortUsers(users []*entity.User) {
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
}
