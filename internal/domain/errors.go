package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrUserNotFound      = errors.New("usuário não encontrado")
	ErrLoginAlreadyTaken = errors.New("login já está em uso por uma conta ativa")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("não autorizado")
	ErrForbidden         = errors.New("acesso negado")
	ErrInvalidTransition = errors.New("transição de status inválida")
)
