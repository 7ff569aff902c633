package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type geminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(apiKey, modelName string) (CompletionClient, error) {
	return newGeminiService(apiKey, modelName, genai.HTTPOptions{})
}

func newGeminiService(apiKey, modelName string, httpOptions genai.HTTPOptions) (CompletionClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: httpOptions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: modelName,
	}, nil
}

// Complete implements CompletionClient.
func (g *geminiService) Complete(ctx context.Context, prompt Prompt) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(prompt.System, genai.RoleUser),
	}
	if prompt.MaxOutputTokens > 0 {
		config.MaxOutputTokens = prompt.MaxOutputTokens
		// Thinking tokens count against the output cap.
		config.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](0)}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt.User), config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("gemini response missing candidates")
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("gemini response empty content")
	}

	return text, nil
}
