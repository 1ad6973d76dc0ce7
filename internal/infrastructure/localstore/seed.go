package localstore

import (
	"context"
	"time"

	"github.com/sistemact/sistema-ct/internal/domain/entity"
)

// DemoCredentials é o mapa fixo de senhas do modo de demonstração,
// indexado pelo login. No modo local a senha nunca vai para o blob.
var DemoCredentials = map[string]string{
	"admin": "admin123",
	"joao":  "joao123",
	"maria": "maria123",
}

// DemoUsers devolve as contas de demonstração semeadas no modo local.
func DemoUsers(now time.Time) []*entity.User {
	return []*entity.User{
		{
			ID: "1", Name: "Admin Principal", Email: "admin@sistemact.com",
			Role: entity.RoleAdminAll, Setor: entity.SetorGeral, Login: "admin",
			IsActive: true, CreatedAt: now, UpdatedAt: now, CreatedBy: "1", UpdatedBy: "1",
		},
		{
			ID: "2", Name: "João Silva", Email: "joao@sistemact.com",
			Role: entity.RoleAdmin, Setor: entity.SetorVendas, Login: "joao",
			IsActive: true, CreatedAt: now, UpdatedAt: now, CreatedBy: "1", UpdatedBy: "1",
		},
		{
			ID: "3", Name: "Maria Santos", Email: "maria@sistemact.com",
			Role: entity.RoleFuncionario, Setor: entity.SetorRecepcao, Login: "maria",
			IsActive: true, CreatedAt: now, UpdatedAt: now, CreatedBy: "1", UpdatedBy: "1",
		},
	}
}

// DemoClients devolve os clientes de demonstração semeados no modo local.
func DemoClients(now time.Time) []*entity.Client {
	return []*entity.Client{
		{
			ID: "1", Nome: "João da Silva", CPF: "123.456.789-00", Telefone: "(11) 99999-9999",
			Email: "joao.silva@email.com", Endereco: "Rua das Flores, 123 - São Paulo, SP",
			Matricula: "MAT001", TelefonesAdicionais: []string{"(11) 3333-3333"},
			Observacoes: "Cliente preferencial",
			CreatedAt:   now.AddDate(0, 0, -7), UpdatedAt: now.AddDate(0, 0, -7),
			CreatedBy: "1", UpdatedBy: "1",
		},
		{
			ID: "2", Nome: "Maria Oliveira", CPF: "987.654.321-00", Telefone: "(11) 88888-8888",
			Email: "maria.oliveira@email.com", Endereco: "Av. Paulista, 456 - São Paulo, SP",
			Matricula: "MAT002", TelefonesAdicionais: []string{},
			CreatedAt: now.AddDate(0, 0, -3), UpdatedAt: now.AddDate(0, 0, -3),
			CreatedBy: "2", UpdatedBy: "2",
		},
		{
			ID: "3", Nome: "Pedro Santos", CPF: "456.789.123-00", Telefone: "(11) 77777-7777",
			Email: "pedro.santos@email.com", Endereco: "Rua Augusta, 789 - São Paulo, SP",
			Matricula: "MAT003", TelefonesAdicionais: []string{"(11) 2222-2222", "(11) 4444-4444"},
			Observacoes: "Contato preferencial por WhatsApp",
			CreatedAt:   now.AddDate(0, 0, -1), UpdatedAt: now.AddDate(0, 0, -1),
			CreatedBy: "3", UpdatedBy: "3",
		},
	}
}

func demoNotifications(now time.Time) []*entity.Notification {
	return []*entity.Notification{
		{
			ID: "1", Title: "Bem-vindo ao Sistema CT!",
			Message:   "Sistema inicializado com sucesso. Explore todas as funcionalidades disponíveis.",
			Type:      entity.NotifSuccess,
			CreatedAt: now,
		},
		{
			ID: "2", Title: "Modo Demonstração",
			Message:   "Você está usando o modo local. Configure o backend remoto para usar o banco de dados completo.",
			Type:      entity.NotifInfo,
			CreatedAt: now.Add(-5 * time.Minute),
		},
	}
}

// Seed grava o conjunto de demonstração uma única vez: se o slot de usuários
// já tem registros, nada é semeado (inicializações repetidas não duplicam dados).
// Devolve true quando a semeadura aconteceu.
func Seed(ctx context.Context, store *Store) (bool, error) {
	users := NewUserRepository(store)
	existing, err := users.FindAllIncludingInactive(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	now := time.Now()
	for _, u := range DemoUsers(now) {
		if err := users.Create(ctx, u); err != nil {
			return false, err
		}
	}
	clients := NewClientRepository(store)
	for _, c := range DemoClients(now) {
		if err := clients.Create(ctx, c); err != nil {
			return false, err
		}
	}
	notifs := NewNotificationRepository(store)
	for _, n := range demoNotifications(now) {
		if err := notifs.Create(ctx, n); err != nil {
			return false, err
		}
	}
	return true, nil
}
