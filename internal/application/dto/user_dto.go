package dto

import "time"

// LoginRequest entrada do login por login/e-mail e senha.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido mais a conta autenticada.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse saída de uma conta/funcionário. A senha nunca sai daqui.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Setor     string    `json:"setor"`
	Login     string    `json:"login"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}

// CreateEmployeeRequest entrada para criar um funcionário.
type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required"`
	Setor    string `json:"setor" validate:"required"`
	Login    string `json:"login" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateEmployeeRequest entrada para atualizar um funcionário; campos nil
// ficam como estão. Password vazio preserva a senha atual.
type UpdateEmployeeRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role"`
	Setor    *string `json:"setor"`
	Login    *string `json:"login" validate:"omitempty,min=3,max=100"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

// EmployeeListResponse lista de funcionários.
type EmployeeListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
}
