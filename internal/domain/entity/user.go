package entity

import "time"

// Papéis de acesso do sistema.
const (
	RoleAdminAll    = "administrador-all"
	RoleAdmin       = "administrador"
	RoleFuncionario = "funcionario"
)

// Setores da empresa.
const (
	SetorAdimplencia = "adimplencia"
	SetorHomologacao = "homologacao"
	SetorVendas      = "vendas"
	SetorRecepcao    = "recepcao"
	SetorGeral       = "geral"
)

// User representa uma conta do sistema. Funcionários são a mesma entidade:
// o caso de uso de funcionários aplica a política de desativação (soft delete)
// por cima do mesmo armazenamento.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      string // administrador-all | administrador | funcionario
	Setor     string // adimplencia | homologacao | vendas | recepcao | geral
	Login     string
	Password  string // hash bcrypt no remoto; texto no blob local (contas demo ficam vazias lá)
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy string
	UpdatedBy string
}

// ValidRole informa se o papel é um dos aceitos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdminAll, RoleAdmin, RoleFuncionario:
		return true
	}
	return false
}

// ValidSetor informa se o setor é um dos aceitos.
func ValidSetor(setor string) bool {
	switch setor {
	case SetorAdimplencia, SetorHomologacao, SetorVendas, SetorRecepcao, SetorGeral:
		return true
	}
	return false
}
