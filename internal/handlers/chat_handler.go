package handlers

import (
	"bot9-palace-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

type ChatHandler struct {
	conversations repo.ConversationRepoInterface
}

func NewChatHandler(conversations repo.ConversationRepoInterface) *ChatHandler {
	return &ChatHandler{conversations: conversations}
}

// get the turns of one session, oldest first
func (h *ChatHandler) GetTurnsByUserID(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 20)

	turns, total, err := h.conversations.ListTurns(userID, page, pageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get turns",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"turns": turns,
		"total": total,
	})
}
