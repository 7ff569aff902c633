package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type openAIService struct {
	client *openai.Client
	model  string
}

// NewOpenAIService builds a chat-completions client. SDK retries are disabled:
// a failed call is reported to the caller immediately.
func NewOpenAIService(apiKey, model, baseURL string) (CompletionClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("openai api key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &openAIService{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// Complete implements CompletionClient.
func (o *openAIService) Complete(ctx context.Context, prompt Prompt) (string, error) {
	params := openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		}),
		Model: openai.F(o.model),
	}
	if prompt.MaxOutputTokens > 0 {
		params.MaxTokens = openai.F(int64(prompt.MaxOutputTokens))
	}

	completion, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if completion == nil || len(completion.Choices) == 0 {
		return "", errors.New("openai response missing choices")
	}

	text := completion.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", errors.New("openai response empty content")
	}

	return text, nil
}
