package llmHandlers

import (
	"context"
	"fmt"

	"bot9-palace-backend/internal/models"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

type LangChainClient struct {
	llm   llms.Model
	tools []llms.Tool
}

func NewLangChainClient(cfg Config) (*LangChainClient, error) {
	opts := []openai.Option{
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, openai.WithToken(cfg.APIKey))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create langchain openai client: %w", err)
	}

	return &LangChainClient{llm: llm, tools: cfg.LangChainTools}, nil
}

func (c *LangChainClient) Chat(ctx context.Context, messages []Message) (*Completion, error) {
	msgContents := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		var msgType llms.ChatMessageType
		switch m.Role {
		case models.RoleSystem:
			msgType = llms.ChatMessageTypeSystem
		case models.RoleAssistant:
			msgType = llms.ChatMessageTypeAI
		default:
			msgType = llms.ChatMessageTypeHuman
		}
		msgContents = append(msgContents, llms.TextParts(msgType, m.Content))
	}

	callOpts := []llms.CallOption{}
	if len(c.tools) > 0 {
		callOpts = append(callOpts, llms.WithTools(c.tools))
	}

	resp, err := c.llm.GenerateContent(ctx, msgContents, callOpts...)
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned from LLM")
	}

	choice := resp.Choices[0]
	completion := &Completion{Content: choice.Content}
	for _, tc := range choice.ToolCalls {
		if tc.FunctionCall == nil {
			continue
		}
		completion.ToolCalls = append(completion.ToolCalls, ToolCall{
			Name:      tc.FunctionCall.Name,
			Arguments: tc.FunctionCall.Arguments,
		})
	}
	// some OpenAI-compatible backends still answer with the legacy
	// function_call field
	if len(completion.ToolCalls) == 0 && choice.FuncCall != nil {
		completion.ToolCalls = append(completion.ToolCalls, ToolCall{
			Name:      choice.FuncCall.Name,
			Arguments: choice.FuncCall.Arguments,
		})
	}

	return completion, nil
}
