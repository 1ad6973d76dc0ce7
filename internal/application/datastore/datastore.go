// Package datastore escolhe o backend de dados na subida da aplicação:
// PostgreSQL remoto quando configurado e alcançável, armazenamento local
// caso contrário. A escolha acontece uma única vez; o restante do sistema
// depende apenas das portas de repositório.
package datastore

import (
	"context"

	"github.com/sistemact/sistema-ct/internal/domain/repository"
	"github.com/sistemact/sistema-ct/internal/infrastructure/localstore"
	"github.com/sistemact/sistema-ct/internal/infrastructure/postgres"
	"github.com/sistemact/sistema-ct/pkg/config"
	"github.com/sistemact/sistema-ct/pkg/logger"
)

// Status é o estado do backend escolhido, exposto em /health.
// Qualquer falha remota cai para o modo local com Connected=true; Err só é
// preenchido quando nem o armazenamento local pôde ser aberto.
type Status struct {
	Connected  bool
	Connecting bool
	UsingLocal bool
	Err        error
}

// Mode devolve o rótulo do modo em uso.
func (s Status) Mode() string {
	if s.UsingLocal {
		return "local"
	}
	return "remote"
}

// Backend agrupa todas as portas de repositório já ligadas ao modo escolhido.
type Backend struct {
	Users         repository.UserRepository
	Clients       repository.ClientRepository
	CashFlows     repository.CashFlowRepository
	Notifications repository.NotificationRepository
	ChatChannels  repository.ChatChannelRepository
	ChatMessages  repository.ChatMessageRepository
	Contacts      repository.ZTalkContactRepository
	Conversations repository.ZTalkConversationRepository
	ZTalkMessages repository.ZTalkMessageRepository
	Queues        repository.ZTalkQueueRepository
	Broadcasts    repository.ZTalkBroadcastRepository
	Reports       repository.ReportRepository
	Status        Status
}

// Select decide o modo e monta o Backend. Remoto não configurado, banco
// inalcançável ou esquema ausente caem silenciosamente (com log) para o
// modo local, que é semeado com os dados de demonstração na primeira vez.
func Select(ctx context.Context, cfg *config.Config, log *logger.Logger) *Backend {
	if cfg.Remote.Configured() {
		pool, err := postgres.NewPool(ctx, cfg.Remote)
		if err == nil {
			if err = postgres.Probe(ctx, pool); err == nil {
				log.Info().Msg("backend remoto (PostgreSQL) selecionado")
				return remoteBackend(pool)
			}
			pool.Close()
		}
		if postgres.IsMissingSchema(err) {
			log.Warn().Err(err).Msg("esquema remoto ausente; usando armazenamento local")
		} else {
			log.Warn().Err(err).Msg("backend remoto inalcançável; usando armazenamento local")
		}
	} else {
		log.Info().Msg("backend remoto não configurado; usando armazenamento local")
	}
	return localBackend(ctx, cfg.Local.Dir, log)
}

func remoteBackend(pool postgres.Querier) *Backend {
	return &Backend{
		Users:         postgres.NewUserRepository(pool),
		Clients:       postgres.NewClientRepository(pool),
		CashFlows:     postgres.NewCashFlowRepository(pool),
		Notifications: postgres.NewNotificationRepository(pool),
		ChatChannels:  postgres.NewChatChannelRepository(pool),
		ChatMessages:  postgres.NewChatMessageRepository(pool),
		Contacts:      postgres.NewZTalkContactRepository(pool),
		Conversations: postgres.NewZTalkConversationRepository(pool),
		ZTalkMessages: postgres.NewZTalkMessageRepository(pool),
		Queues:        postgres.NewZTalkQueueRepository(pool),
		Broadcasts:    postgres.NewZTalkBroadcastRepository(pool),
		Reports:       postgres.NewReportRepository(pool),
		Status:        Status{Connected: true},
	}
}

func localBackend(ctx context.Context, dir string, log *logger.Logger) *Backend {
	store, err := localstore.Open(dir)
	if err != nil {
		// falha dura: nem o fallback local está disponível
		log.Error().Err(err).Str("dir", dir).Msg("abertura do armazenamento local falhou")
		return &Backend{Status: Status{UsingLocal: true, Err: err}}
	}
	seeded, err := localstore.Seed(ctx, store)
	if err != nil {
		log.Warn().Err(err).Msg("seed do armazenamento local falhou")
	} else if seeded {
		log.Info().Msg("armazenamento local semeado com os dados de demonstração")
	}
	return &Backend{
		Users:         localstore.NewUserRepository(store),
		Clients:       localstore.NewClientRepository(store),
		CashFlows:     localstore.NewCashFlowRepository(store),
		Notifications: localstore.NewNotificationRepository(store),
		ChatChannels:  localstore.NewChatChannelRepository(store),
		ChatMessages:  localstore.NewChatMessageRepository(store),
		Contacts:      localstore.NewZTalkContactRepository(store),
		Conversations: localstore.NewZTalkConversationRepository(store),
		ZTalkMessages: localstore.NewZTalkMessageRepository(store),
		Queues:        localstore.NewZTalkQueueRepository(store),
		Broadcasts:    localstore.NewZTalkBroadcastRepository(store),
		Reports:       localstore.NewReportRepository(store),
		Status:        Status{Connected: true, UsingLocal: true},
	}
}
