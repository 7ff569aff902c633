package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatRequestBody struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens *int64        `json:"max_tokens"`
}

// chatMessage mirrors the SDK wire form, where content is a list of typed parts.
type chatMessage struct {
	Role    string `json:"role"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (m chatMessage) text() string {
	var parts []string
	for _, part := range m.Content {
		if part.Type == "text" {
			parts = append(parts, part.Text)
		}
	}
	return strings.Join(parts, "")
}

func newOpenAITestServer(t *testing.T, status int, body string, captured *chatRequestBody, calls *int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, captured))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

const chatCompletionOK = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4o-mini",
  "choices": [
    {"index": 0, "message": {"role": "assistant", "content": "What is a goroutine leak?"}, "finish_reason": "stop"}
  ],
  "usage": {"prompt_tokens": 10, "completion_tokens": 7, "total_tokens": 17}
}`

func TestOpenAIService_Complete(t *testing.T) {
	var captured chatRequestBody
	calls := 0
	srv := newOpenAITestServer(t, http.StatusOK, chatCompletionOK, &captured, &calls)

	client, err := NewOpenAIService("sk-test", "gpt-4o-mini", srv.URL+"/")
	require.NoError(t, err)

	prompt := NewPromptBuilder().BuildQuestionPrompt("backend engineer", "English")
	text, err := client.Complete(context.Background(), prompt)
	require.NoError(t, err)

	assert.Equal(t, "What is a goroutine leak?", text)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "gpt-4o-mini", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[0].text(), "English")
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Contains(t, captured.Messages[1].text(), "backend engineer")
	require.NotNil(t, captured.MaxTokens)
	assert.Equal(t, int64(300), *captured.MaxTokens)
}

func TestOpenAIService_Complete_NoCapOnEvaluation(t *testing.T) {
	var captured chatRequestBody
	calls := 0
	srv := newOpenAITestServer(t, http.StatusOK, chatCompletionOK, &captured, &calls)

	client, err := NewOpenAIService("sk-test", "gpt-4o-mini", srv.URL+"/")
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), NewPromptBuilder().BuildEvaluationPrompt("Q", "A", "ko"))
	require.NoError(t, err)
	assert.Nil(t, captured.MaxTokens)
}

func TestOpenAIService_Complete_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		body   string
	}{
		{
			name:   "rate limited",
			status: http.StatusTooManyRequests,
			body:   `{"error": {"message": "Rate limit reached", "type": "requests"}}`,
		},
		{
			name:   "no choices",
			status: http.StatusOK,
			body:   `{"id": "chatcmpl-2", "object": "chat.completion", "created": 1, "model": "gpt-4o-mini", "choices": []}`,
		},
		{
			name:   "empty content",
			status: http.StatusOK,
			body:   `{"id": "chatcmpl-3", "object": "chat.completion", "created": 1, "model": "gpt-4o-mini", "choices": [{"index": 0, "message": {"role": "assistant", "content": "  "}, "finish_reason": "stop"}]}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var captured chatRequestBody
			calls := 0
			srv := newOpenAITestServer(t, tc.status, tc.body, &captured, &calls)

			client, err := NewOpenAIService("sk-test", "gpt-4o-mini", srv.URL+"/")
			require.NoError(t, err)

			_, err = client.Complete(context.Background(), NewPromptBuilder().BuildQuestionPrompt("qa", "ko"))
			assert.Error(t, err)
			assert.Equal(t, 1, calls, "no retries")
		})
	}
}

func TestNewOpenAIService_RequiresKey(t *testing.T) {
	_, err := NewOpenAIService(" ", "gpt-4o-mini", "")
	assert.Error(t, err)
}
