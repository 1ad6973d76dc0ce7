// seed prepara o backend remoto (PostgreSQL): aplica o esquema e grava o
// conjunto de demonstração (contas e clientes).
//
// Uso: go run ./cmd/seed
// Requer REMOTE_DATABASE_URL e REMOTE_ANON_KEY configurados; no banco as
// senhas de demonstração são gravadas com hash bcrypt.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sistemact/sistema-ct/internal/infrastructure/localstore"
	"github.com/sistemact/sistema-ct/internal/infrastructure/postgres"
	"github.com/sistemact/sistema-ct/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("carregar configuração: %v", err)
	}
	if !cfg.Remote.Configured() {
		fail("backend remoto não configurado: defina REMOTE_DATABASE_URL e REMOTE_ANON_KEY")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Remote)
	if err != nil {
		fail("conectar ao PostgreSQL: %v", err)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		fail("aplicar esquema: %v", err)
	}
	fmt.Println("esquema aplicado")

	users := postgres.NewUserRepository(pool)
	existing, err := users.FindAllIncludingInactive(ctx)
	if err != nil {
		fail("consultar usuários: %v", err)
	}
	if len(existing) > 0 {
		fmt.Printf("banco já possui %d conta(s); nada a semear\n", len(existing))
		return
	}

	now := time.Now()
	for _, u := range localstore.DemoUsers(now) {
		hash, err := bcrypt.GenerateFromPassword([]byte(localstore.DemoCredentials[u.Login]), bcrypt.DefaultCost)
		if err != nil {
			fail("hash da senha de %s: %v", u.Login, err)
		}
		u.Password = string(hash)
		if err := users.Create(ctx, u); err != nil {
			fail("inserir usuário %s: %v", u.Login, err)
		}
	}
	fmt.Println("contas de demonstração criadas (admin, joao, maria)")

	clients := postgres.NewClientRepository(pool)
	for _, c := range localstore.DemoClients(now) {
		if err := clients.Create(ctx, c); err != nil {
			fail("inserir cliente %s: %v", c.Nome, err)
		}
	}
	fmt.Println("clientes de demonstração criados")

	fmt.Println("seed concluído")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
