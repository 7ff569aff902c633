package services

import "context"

// Prompt is the (system, user) instruction pair sent to the completion provider.
// MaxOutputTokens of zero leaves the output length unbounded.
type Prompt struct {
	System          string
	User            string
	MaxOutputTokens int32
}

// CompletionClient sends exactly two messages and returns the text of the
// first returned choice. Usage, finish reason and safety metadata are ignored.
type CompletionClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// Flow names label metrics and log lines.
const (
	FlowQuestion       = "question"
	FlowEvaluation     = "evaluation"
	FlowResumeQuestion = "resume_question"
	FlowResumeReview   = "resume_review"
)
