package dto

import "time"

// CreateClientRequest entrada para criar um cliente. CPF e telefones são
// aceitos com ou sem máscara; o caso de uso os canoniza.
type CreateClientRequest struct {
	Nome                string   `json:"nome" validate:"required,min=1,max=200"`
	CPF                 string   `json:"cpf" validate:"required"`
	Telefone            string   `json:"telefone" validate:"required"`
	Email               string   `json:"email" validate:"omitempty,email"`
	Endereco            string   `json:"endereco"`
	Matricula           string   `json:"matricula"`
	TelefonesAdicionais []string `json:"telefones_adicionais"`
	Observacoes         string   `json:"observacoes"`
}

// UpdateClientRequest entrada para atualizar um cliente; campos nil ficam como estão.
type UpdateClientRequest struct {
	Nome                *string  `json:"nome" validate:"omitempty,min=1,max=200"`
	CPF                 *string  `json:"cpf"`
	Telefone            *string  `json:"telefone"`
	Email               *string  `json:"email" validate:"omitempty,email"`
	Endereco            *string  `json:"endereco"`
	Matricula           *string  `json:"matricula"`
	TelefonesAdicionais []string `json:"telefones_adicionais"`
	Observacoes         *string  `json:"observacoes"`
}

// ClientResponse saída de um cliente.
type ClientResponse struct {
	ID                  string    `json:"id"`
	Nome                string    `json:"nome"`
	CPF                 string    `json:"cpf"`
	Telefone            string    `json:"telefone"`
	Email               string    `json:"email"`
	Endereco            string    `json:"endereco"`
	Matricula           string    `json:"matricula"`
	TelefonesAdicionais []string  `json:"telefones_adicionais"`
	Observacoes         string    `json:"observacoes"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	CreatedBy           string    `json:"created_by,omitempty"`
	UpdatedBy           string    `json:"updated_by,omitempty"`
}

// ClientListResponse lista de clientes.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Total int              `json:"total"`
}
