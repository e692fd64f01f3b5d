package workflow

import (
	"context"
	"log"

	"bot9-palace-backend/internal/concierge/prompts"
	llmHandlers "bot9-palace-backend/internal/llm_handlers"
	"bot9-palace-backend/internal/repo"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Orchestrator resolves a session history into the assistant's reply.
type Orchestrator interface {
	ProcessTurn(ctx context.Context, sessionKey string, history []llmHandlers.Message) (string, error)
}

type Workflow struct {
	conversations repo.ConversationRepoInterface
	agent         Orchestrator
}

func NewWorkflow(conversations repo.ConversationRepoInterface, agent Orchestrator) *Workflow {
	return &Workflow{
		conversations: conversations,
		agent:         agent,
	}
}

type chatRequest struct {
	UserID  string `json:"userId" validate:"required"`
	Content string `json:"content" validate:"required"`
}

var validate = validator.New()

// TriggerChatWorkflow handles POST /chat: persist the user turn (creating and
// seeding the session on first use), run the orchestrator over the full
// history and persist its reply before responding.
func (w *Workflow) TriggerChatWorkflow(c *fiber.Ctx) error {
	var dto chatRequest

	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validate.Struct(dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "userId and content are required",
		})
	}

	if err := w.conversations.AppendUserTurn(dto.UserID, dto.Content, prompts.SystemPrompts); err != nil {
		log.Printf("Error handling chat request: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("An error occurred")
	}

	history, err := w.conversations.GetHistory(dto.UserID)
	if err != nil {
		log.Printf("Error handling chat request: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("An error occurred")
	}

	if len(history) == 0 {
		return c.Status(fiber.StatusBadRequest).SendString("User not found")
	}

	reply, err := w.agent.ProcessTurn(c.Context(), dto.UserID, history)
	if err != nil {
		log.Printf("Error processing chat turn: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("An error occurred")
	}

	if err := w.conversations.AppendAssistantTurn(dto.UserID, reply); err != nil {
		log.Printf("Error persisting assistant reply: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("An error occurred")
	}

	return c.JSON(fiber.Map{
		"reply": reply,
	})
}
