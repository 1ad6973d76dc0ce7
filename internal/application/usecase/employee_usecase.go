package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sistemact/sistema-ct/internal/application/dto"
	"github.com/sistemact/sistema-ct/internal/domain"
	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/domain/repository"
	"github.com/sistemact/sistema-ct/pkg/textsearch"
)

// EmployeeUseCase casos de uso de funcionários sobre o mesmo armazenamento
// de contas. Delete é sempre soft delete (is_active=false).
type EmployeeUseCase struct {
	repo repository.UserRepository
}

// NewEmployeeUseCase constrói o caso de uso.
func NewEmployeeUseCase(repo repository.UserRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create cria um funcionário. O login precisa ser único entre contas ativas.
func (uc *EmployeeUseCase) Create(ctx context.Context, actorID string, in dto.CreateEmployeeRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Login == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(in.Role) || !entity.ValidSetor(in.Setor) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.FindByLoginOrEmail(ctx, in.Login)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrLoginAlreadyTaken
	}
	now := time.Now()
	user := &entity.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		Setor:     in.Setor,
		Login:     in.Login,
		Password:  in.Password,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: actorID,
		UpdatedBy: actorID,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtém um funcionário por ID; devolve nil quando ausente.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// Update atualiza um funcionário; campos nil ficam como estão. Trocar o
// login exige que ele continue único entre contas ativas.
func (uc *EmployeeUseCase) Update(ctx context.Context, id, actorID string, in dto.UpdateEmployeeRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Login != nil && *in.Login != user.Login {
		existing, err := uc.repo.FindByLoginOrEmail(ctx, *in.Login)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, domain.ErrLoginAlreadyTaken
		}
		user.Login = *in.Login
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.Setor != nil {
		if !entity.ValidSetor(*in.Setor) {
			return nil, domain.ErrInvalidInput
		}
		user.Setor = *in.Setor
	}
	if in.Password != nil && *in.Password != "" {
		user.Password = *in.Password
	}
	user.UpdatedAt = time.Now()
	user.UpdatedBy = actorID
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List lista os funcionários ativos.
func (uc *EmployeeUseCase) List(ctx context.Context) (*dto.EmployeeListResponse, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toEmployeeList(list), nil
}

// Search filtra funcionários ativos em memória por nome, login, e-mail ou
// setor, sem distinção de caixa/acentos. Termo vazio devolve todos.
func (uc *EmployeeUseCase) Search(ctx context.Context, term string) (*dto.EmployeeListResponse, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if term == "" {
		return toEmployeeList(list), nil
	}
	var filtered []*entity.User
	for _, u := range list {
		if textsearch.ContainsAny(term, u.Name, u.Login, u.Email, u.Setor) {
			filtered = append(filtered, u)
		}
	}
	return toEmployeeList(filtered), nil
}

// Deactivate desativa uma conta (soft delete). Só administrador-all pode
// desativar, e ninguém desativa a própria conta.
func (uc *EmployeeUseCase) Deactivate(ctx context.Context, id, actorID, actorRole string) error {
	if actorRole != entity.RoleAdminAll {
		return domain.ErrForbidden
	}
	if id == actorID {
		return domain.ErrForbidden
	}
	user, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if !user.IsActive {
		return nil // já desativada
	}
	user.IsActive = false
	user.UpdatedAt = time.Now()
	user.UpdatedBy = actorID
	return uc.repo.Update(ctx, user)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Setor:     u.Setor,
		Login:     u.Login,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		CreatedBy: u.CreatedBy,
		UpdatedBy: u.UpdatedBy,
	}
}

func toEmployeeList(list []*entity.User) *dto.EmployeeListResponse {
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.EmployeeListResponse{Items: items, Total: len(items)}
}
