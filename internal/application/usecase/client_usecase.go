package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sistemact/sistema-ct/internal/application/dto"
	"github.com/sistemact/sistema-ct/internal/domain"
	"github.com/sistemact/sistema-ct/internal/domain/entity"
	"github.com/sistemact/sistema-ct/internal/domain/repository"
	"github.com/sistemact/sistema-ct/pkg/brdoc"
)

// ClientUseCase casos de uso CRUD para clientes. CPF e telefones entram em
// qualquer formato e saem sempre na máscara canônica.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create cria um cliente. Nome, CPF e telefone principal são obrigatórios.
func (uc *ClientUseCase) Create(ctx context.Context, actorID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Nome == "" || in.CPF == "" || in.Telefone == "" {
		return nil, domain.ErrInvalidInput
	}
	cpf := brdoc.FormatCPF(in.CPF)
	telefone := brdoc.FormatPhone(in.Telefone)
	if !brdoc.ValidCPF(cpf) || !brdoc.ValidPhone(telefone) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:                  uuid.New().String(),
		Nome:                in.Nome,
		CPF:                 cpf,
		Telefone:            telefone,
		Email:               in.Email,
		Endereco:            in.Endereco,
		Matricula:           in.Matricula,
		TelefonesAdicionais: formatPhones(in.TelefonesAdicionais),
		Observacoes:         in.Observacoes,
		CreatedAt:           now,
		UpdatedAt:           now,
		CreatedBy:           actorID,
		UpdatedBy:           actorID,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtém um cliente por ID; devolve nil quando ausente.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	return toClientResponse(client), nil
}

// Update atualiza um cliente; campos nil ficam como estão. O created_at
// e o created_by originais são preservados.
func (uc *ClientUseCase) Update(ctx context.Context, id, actorID string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	if in.Nome != nil {
		if *in.Nome == "" {
			return nil, domain.ErrInvalidInput
		}
		client.Nome = *in.Nome
	}
	if in.CPF != nil {
		cpf := brdoc.FormatCPF(*in.CPF)
		if !brdoc.ValidCPF(cpf) {
			return nil, domain.ErrInvalidInput
		}
		client.CPF = cpf
	}
	if in.Telefone != nil {
		telefone := brdoc.FormatPhone(*in.Telefone)
		if !brdoc.ValidPhone(telefone) {
			return nil, domain.ErrInvalidInput
		}
		client.Telefone = telefone
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Endereco != nil {
		client.Endereco = *in.Endereco
	}
	if in.Matricula != nil {
		client.Matricula = *in.Matricula
	}
	if in.TelefonesAdicionais != nil {
		client.TelefonesAdicionais = formatPhones(in.TelefonesAdicionais)
	}
	if in.Observacoes != nil {
		client.Observacoes = *in.Observacoes
	}
	client.UpdatedAt = time.Now()
	client.UpdatedBy = actorID
	if err := uc.repo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista todos os clientes.
func (uc *ClientUseCase) List(ctx context.Context) (*dto.ClientListResponse, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toClientList(list), nil
}

// Search filtra clientes por nome, CPF, telefone, matrícula ou e-mail.
// Termo vazio devolve a lista completa.
func (uc *ClientUseCase) Search(ctx context.Context, term string) (*dto.ClientListResponse, error) {
	if term == "" {
		return uc.List(ctx)
	}
	list, err := uc.repo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return toClientList(list), nil
}

// ListByDateRange lista clientes cadastrados no intervalo.
func (uc *ClientUseCase) ListByDateRange(ctx context.Context, start, end time.Time) (*dto.ClientListResponse, error) {
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return toClientList(list), nil
}

// Delete remove um cliente; devolve ErrNotFound quando o ID não existe.
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func formatPhones(phones []string) []string {
	if len(phones) == 0 {
		return nil
	}
	out := make([]string, 0, len(phones))
	for _, p := range phones {
		if p == "" {
			continue
		}
		out = append(out, brdoc.FormatPhone(p))
	}
	return out
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:                  c.ID,
		Nome:                c.Nome,
		CPF:                 c.CPF,
		Telefone:            c.Telefone,
		Email:               c.Email,
		Endereco:            c.Endereco,
		Matricula:           c.Matricula,
		TelefonesAdicionais: c.TelefonesAdicionais,
		Observacoes:         c.Observacoes,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
		CreatedBy:           c.CreatedBy,
		UpdatedBy:           c.UpdatedBy,
	}
}

func toClientList(list []*entity.Client) *dto.ClientListResponse {
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{Items: items, Total: len(items)}
}
