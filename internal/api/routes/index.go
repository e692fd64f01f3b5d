package routes

import (
	"bot9-palace-backend/internal/api/routes/v1"
	"bot9-palace-backend/internal/concierge/agents"
	"bot9-palace-backend/internal/concierge/tools"
	"bot9-palace-backend/internal/concierge/workflow"
	"bot9-palace-backend/internal/config"
	"bot9-palace-backend/internal/hotel"
	"bot9-palace-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func Register(app *fiber.App) {
	conversationRepo := repo.NewConversationRepository(config.DB)
	bookingRepo := repo.NewBookingRepository(config.DB)

	hotelClient := hotel.NewClient(config.HotelAPIBaseURL())
	tools.RegisterHotelTools(hotelClient, bookingRepo)

	agent := agents.NewAgent(config.LLMProvider())
	chatWorkflow := workflow.NewWorkflow(conversationRepo, agent)

	// public chat surface
	app.Post("/chat", chatWorkflow.TriggerChatWorkflow)

	// API v1 group
	api := app.Group("/api")
	v1Group := api.Group("/v1")

	// Register v1 routes
	v1.RegisterRoutes(v1Group, conversationRepo, bookingRepo)
}
