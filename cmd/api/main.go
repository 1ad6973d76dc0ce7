package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sistemact/sistema-ct/internal/application/auth"
	"github.com/sistemact/sistema-ct/internal/application/datastore"
	"github.com/sistemact/sistema-ct/internal/application/usecase"
	"github.com/sistemact/sistema-ct/internal/infrastructure/delivery"
	infrapdf "github.com/sistemact/sistema-ct/internal/infrastructure/pdf"
	httpRouter "github.com/sistemact/sistema-ct/internal/interfaces/http"
	"github.com/sistemact/sistema-ct/pkg/config"
	"github.com/sistemact/sistema-ct/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Escolha única do backend de dados: remoto quando configurado e
	// alcançável, armazenamento local caso contrário.
	store := datastore.Select(ctx, cfg, log)
	if store.Status.Err != nil {
		log.Fatal().Err(store.Status.Err).Msg("nenhum backend de dados disponível")
	}
	log.Info().
		Str("mode", store.Status.Mode()).
		Msg("backend de dados pronto")

	authUC := auth.NewAuthUseCase(store.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := usecase.NewClientUseCase(store.Clients)
	employeeUC := usecase.NewEmployeeUseCase(store.Users)
	cashUC := usecase.NewCashUseCase(store.CashFlows, store.Users)
	notificationUC := usecase.NewNotificationUseCase(store.Notifications, log)
	chatUC := usecase.NewChatUseCase(store.ChatChannels, store.ChatMessages, store.Users)

	gateway := delivery.NewSimulated(cfg.Broadcast.DeliveryDelay)
	ztalkUC := usecase.NewZTalkUseCase(
		store.Contacts, store.Conversations, store.ZTalkMessages,
		store.Queues, store.Broadcasts, store.Users,
		gateway, log,
	)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportUC := usecase.NewReportUseCase(
		store.Reports, store.Clients, store.CashFlows,
		store.Users, store.Conversations, store.Broadcasts,
		pdfGenerator,
	)

	// Expiração de notificações roda em segundo plano até o shutdown.
	go notificationUC.StartPurge(ctx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sistema CT API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ClientUC:       clientUC,
		EmployeeUC:     employeeUC,
		CashUC:         cashUC,
		NotificationUC: notificationUC,
		ChatUC:         chatUC,
		ZTalkUC:        ztalkUC,
		ReportUC:       reportUC,
		Store:          store,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
