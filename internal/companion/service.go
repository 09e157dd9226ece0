package companion

import (
	"context"
	"fmt"

	"HealthCompanion/internal/config"
	"HealthCompanion/internal/database"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
)

// Streamer produces a streamed model reply.
type Streamer interface {
	Stream(ctx context.Context, system string, history []*schema.Message, query string) (*schema.StreamReader[*schema.Message], error)
}

// Service runs the chat chain: system prompt, prior turns, then the query.
type Service struct {
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewService builds the chain over an Ark chat model.
func NewService(ctx context.Context, cfg config.ArkConfig) (*Service, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("ark credentials or model not configured")
	}

	maxTokens := cfg.MaxTokens
	temperature := cfg.Temperature
	chatModel, err := ark.NewChatModel(ctx, &ark.ChatModelConfig{
		BaseURL:     cfg.BaseURL,
		Region:      cfg.Region,
		APIKey:      cfg.APIKey,
		AccessKey:   cfg.AccessKey,
		SecretKey:   cfg.SecretKey,
		Model:       cfg.Model,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	return newService(ctx, chatModel)
}

func newService(ctx context.Context, chatModel model.BaseChatModel) (*Service, error) {
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}
	return &Service{chain: runnable}, nil
}

func (s *Service) Stream(ctx context.Context, system string, history []*schema.Message, query string) (*schema.StreamReader[*schema.Message], error) {
	stream, err := s.chain.Stream(ctx, map[string]any{
		"system":  system,
		"history": history,
		"query":   query,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to stream chat chain output: %w", err)
	}
	return stream, nil
}

// HistoryMessages converts stored messages into chain input, oldest first.
func HistoryMessages(messages []database.Message) []*schema.Message {
	history := make([]*schema.Message, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case "user":
			history = append(history, schema.UserMessage(msg.Content))
		case "assistant":
			history = append(history, schema.AssistantMessage(msg.Content, nil))
		}
	}
	return history
}
