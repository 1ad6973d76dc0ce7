package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sistemact/sistema-ct/internal/application/auth"
	"github.com/sistemact/sistema-ct/internal/application/datastore"
	"github.com/sistemact/sistema-ct/internal/application/dto"
	"github.com/sistemact/sistema-ct/internal/application/usecase"
	"github.com/sistemact/sistema-ct/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ClientUC       *usecase.ClientUseCase
	EmployeeUC     *usecase.EmployeeUseCase
	CashUC         *usecase.CashUseCase
	NotificationUC *usecase.NotificationUseCase
	ChatUC         *usecase.ChatUseCase
	ZTalkUC        *usecase.ZTalkUseCase
	ReportUC       *usecase.ReportUseCase
	Store          *datastore.Backend
	JWTSecret      string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	// Health (público) — informa qual backend de dados está ativo.
	app.Get("/health", func(c *fiber.Ctx) error {
		st := deps.Store.Status
		return c.JSON(dto.StatusResponse{
			Status:     "ok",
			Mode:       st.Mode(),
			Connected:  st.Connected,
			UsingLocal: st.UsingLocal,
		})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Perfil do usuário autenticado
	protected.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"id":    GetUserID(c),
			"role":  GetRole(c),
			"setor": GetSetor(c),
		})
	})

	adminOnly := RequireRole(entity.RoleAdminAll, entity.RoleAdmin)
	adminAllOnly := RequireRole(entity.RoleAdminAll)

	// Clientes (protegido; exclusão só para administrador-all)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", adminAllOnly, clientHandler.Delete)

	// Funcionários (somente administradores; desativação só administrador-all)
	employees := protected.Group("/employees", adminOnly)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", adminAllOnly, employeeHandler.Delete)

	// Fluxo de caixa (protegido)
	cash := protected.Group("/cash-flows")
	cashHandler := NewCashHandler(deps.CashUC)
	cash.Post("/", cashHandler.Create)
	cash.Get("/", cashHandler.List)
	cash.Put("/:id", cashHandler.Update)
	cash.Delete("/:id", cashHandler.Delete)

	// Notificações (protegido)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Post("/", notificationHandler.Create)
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/read-all", notificationHandler.MarkAllRead)
	notifications.Post("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", notificationHandler.Delete)

	// Chat interno (protegido)
	chat := protected.Group("/chat")
	chatHandler := NewChatHandler(deps.ChatUC)
	chat.Post("/channels", chatHandler.CreateChannel)
	chat.Get("/channels", chatHandler.ListChannels)
	chat.Post("/channels/:id/join", chatHandler.JoinChannel)
	chat.Post("/channels/:id/leave", chatHandler.LeaveChannel)
	chat.Get("/channels/:id/messages", chatHandler.ChannelHistory)
	chat.Post("/messages", chatHandler.SendMessage)
	chat.Post("/messages/:id/read", chatHandler.MarkRead)
	chat.Get("/private/:id", chatHandler.PrivateHistory)
	chat.Get("/unread", chatHandler.UnreadCount)

	// ZTalk (somente administradores)
	ztalk := protected.Group("/ztalk", adminOnly)
	ztalkHandler := NewZTalkHandler(deps.ZTalkUC)
	ztalk.Post("/contacts", ztalkHandler.CreateContact)
	ztalk.Get("/contacts", ztalkHandler.ListContacts)
	ztalk.Get("/contacts/:id", ztalkHandler.GetContact)
	ztalk.Put("/contacts/:id", ztalkHandler.UpdateContact)
	ztalk.Delete("/contacts/:id", ztalkHandler.DeleteContact)
	ztalk.Post("/conversations", ztalkHandler.CreateConversation)
	ztalk.Get("/conversations", ztalkHandler.ListConversations)
	ztalk.Get("/conversations/:id", ztalkHandler.GetConversation)
	ztalk.Put("/conversations/:id", ztalkHandler.UpdateConversation)
	ztalk.Post("/conversations/:id/messages", ztalkHandler.SendConversationMessage)
	ztalk.Get("/conversations/:id/messages", ztalkHandler.ConversationHistory)
	ztalk.Post("/queues", ztalkHandler.CreateQueue)
	ztalk.Get("/queues", ztalkHandler.ListQueues)
	ztalk.Put("/queues/:id", ztalkHandler.UpdateQueue)
	ztalk.Delete("/queues/:id", ztalkHandler.DeleteQueue)
	ztalk.Post("/broadcasts", ztalkHandler.CreateBroadcast)
	ztalk.Get("/broadcasts", ztalkHandler.ListBroadcasts)
	ztalk.Get("/broadcasts/:id", ztalkHandler.GetBroadcast)
	ztalk.Post("/broadcasts/:id/send", ztalkHandler.SendBroadcast)

	// Relatórios (somente administradores)
	reports := protected.Group("/reports", adminOnly)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Post("/", reportHandler.Generate)
	reports.Get("/", reportHandler.List)
	reports.Get("/:id", reportHandler.GetByID)
	reports.Delete("/:id", reportHandler.Delete)
	reports.Get("/:id/pdf", reportHandler.ExportPDF)
}
