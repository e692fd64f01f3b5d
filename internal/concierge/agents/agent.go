package agents

import (
	"context"
	"fmt"
	"log"
	"os"

	"bot9-palace-backend/internal/concierge/tools"
	"bot9-palace-backend/internal/config"
	llmHandlers "bot9-palace-backend/internal/llm_handlers"
)

type Agent struct {
	llmClient llmHandlers.Client
}

func NewAgent(provider string) *Agent {
	var cfg llmHandlers.Config

	switch provider {
	case "openai":
		cfg = llmHandlers.Config{
			Provider:       llmHandlers.ProviderLangChainOpenAI,
			Model:          config.Getenv("OPENAI_MODEL", "gpt-4o"),
			APIKey:         os.Getenv("OPENAI_API_KEY"),
			LangChainTools: tools.GetOpenAITools(),
		}

	case "groq":
		cfg = llmHandlers.Config{
			Provider:       llmHandlers.ProviderLangChainGroq,
			Model:          os.Getenv("GROQ_MODEL_NAME"),
			BaseURL:        os.Getenv("GROQ_BASE_URL"),
			APIKey:         os.Getenv("GROQ_API_KEY"),
			LangChainTools: tools.GetGroqTools(),
		}

	case "gemini":
		cfg = llmHandlers.Config{
			Provider:    llmHandlers.ProviderGemini,
			GeminiTools: tools.GetGeminiTools(),
		}

	default:
		log.Fatalf("Unknown provider: %s. Valid options: openai, groq, gemini", provider)
	}

	llmClient, err := llmHandlers.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client (%s): %v", provider, err)
	}

	return &Agent{
		llmClient: llmClient,
	}
}

// ProcessTurn sends the full session history to the LLM and resolves its
// answer into the reply text: either the result of the action it selected or
// its free-text content. A model that picked an unknown action, or answered
// with no content at all, yields the "NULL" sentinel.
func (a *Agent) ProcessTurn(ctx context.Context, sessionKey string, history []llmHandlers.Message) (string, error) {
	completion, err := a.llmClient.Chat(ctx, history)
	if err != nil {
		return "", fmt.Errorf("LLM chat error: %w", err)
	}

	for _, call := range completion.ToolCalls {
		reply, handled, err := llmHandlers.Dispatch(ctx, sessionKey, call)
		if err != nil {
			return "", fmt.Errorf("tool %s: %w", call.Name, err)
		}
		if handled {
			return reply, nil
		}
		log.Printf("Model selected unregistered tool %q", call.Name)
	}

	if completion.Content == "" {
		return "NULL", nil
	}
	return completion.Content, nil
}
