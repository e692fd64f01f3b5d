package v1

import (
	"bot9-palace-backend/internal/handlers"
	"bot9-palace-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

// read-only view over the persisted conversation log
func registerChat(r fiber.Router, conversations repo.ConversationRepoInterface) {
	chatHandler := handlers.NewChatHandler(conversations)

	r.Get("/chat/:userId", chatHandler.GetTurnsByUserID)
}
