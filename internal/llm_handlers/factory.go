package llmHandlers

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"google.golang.org/genai"
)

type Provider string

const (
	ProviderLangChainOpenAI Provider = "langchain_openai"
	ProviderLangChainGroq   Provider = "langchain_groq" // any OpenAI-compatible API
	ProviderGemini          Provider = "gemini"
)

type Config struct {
	Provider Provider

	// LangChain config
	Model   string
	BaseURL string
	APIKey  string

	// Action declarations, in the format each backend expects
	LangChainTools []llms.Tool
	GeminiTools    []*genai.Tool
}

func New(ctx context.Context, cfg Config) (Client, error) {
	switch cfg.Provider {
	case ProviderLangChainOpenAI, ProviderLangChainGroq:
		return NewLangChainClient(cfg)
	case ProviderGemini:
		return NewGenaiGeminiClient(ctx, cfg.GeminiTools)
	default:
		return nil, fmt.Errorf("unknown provider %s", cfg.Provider)
	}
}
