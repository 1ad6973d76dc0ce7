package entity

import "time"

// Client representa um cliente cadastrado. Nome, CPF e telefone principal
// são obrigatórios; CPF e telefones ficam sempre no formato canônico de exibição.
type Client struct {
	ID                  string
	Nome                string
	CPF                 string // NNN.NNN.NNN-NN
	Telefone            string // (NN) NNNNN-NNNN
	Email               string
	Endereco            string
	Matricula           string
	TelefonesAdicionais []string
	Observacoes         string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	CreatedBy           string
	UpdatedBy           string
}
