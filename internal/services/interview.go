package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	"alfredoptarigan/interview-coach/internal/metrics"
	"alfredoptarigan/interview-coach/internal/models"
)

// InterviewService runs the question-generation and answer-evaluation flows.
type InterviewService interface {
	GenerateQuestion(ctx context.Context, req models.InterviewRequest) (string, error)
	EvaluateAnswer(ctx context.Context, req models.EvaluationRequest) (string, error)
}

type interviewService struct {
	completion    CompletionClient
	recorder      ResultRecorder
	metrics       *metrics.Metrics
	promptBuilder *PromptBuilder
	timeout       time.Duration
}

func NewInterviewService(
	completion CompletionClient,
	recorder ResultRecorder,
	m *metrics.Metrics,
	timeout time.Duration,
) InterviewService {
	return &interviewService{
		completion:    completion,
		recorder:      recorder,
		metrics:       m,
		promptBuilder: NewPromptBuilder(),
		timeout:       timeout,
	}
}

// GenerateQuestion implements InterviewService.
func (s *interviewService) GenerateQuestion(ctx context.Context, req models.InterviewRequest) (string, error) {
	prompt := s.promptBuilder.BuildQuestionPrompt(req.JobRole, req.Language)

	text, err := complete(ctx, s.completion, s.metrics, s.timeout, FlowQuestion, prompt)
	if err != nil {
		return "", err
	}

	question := NormalizeText(text)
	s.recorder.Record(models.NewQuestionResult(req.UserID, req.SessionID, question))

	return question, nil
}

// EvaluateAnswer implements InterviewService.
func (s *interviewService) EvaluateAnswer(ctx context.Context, req models.EvaluationRequest) (string, error) {
	prompt := s.promptBuilder.BuildEvaluationPrompt(req.Question, req.Answer, req.Language)

	text, err := complete(ctx, s.completion, s.metrics, s.timeout, FlowEvaluation, prompt)
	if err != nil {
		return "", err
	}

	evaluation := NormalizeText(text)
	s.recorder.Record(models.NewEvaluationResult(req.UserID, req.SessionID, req.Question, req.Answer, evaluation))

	return evaluation, nil
}

// complete runs one bounded completion call and tags any failure as ErrUpstreamFailure.
func complete(
	ctx context.Context,
	client CompletionClient,
	m *metrics.Metrics,
	timeout time.Duration,
	flow string,
	prompt Prompt,
) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	started := time.Now()
	text, err := client.Complete(ctx, prompt)
	m.ObserveCompletion(flow, started, err)
	if errors.Is(err, context.Canceled) {
		log.Printf("⚠️  %s completion abandoned, client went away", flow)
		return "", fmt.Errorf("%s completion: %w", flow, err)
	}
	if err != nil {
		log.Printf("❌ %s completion failed after %s: %v", flow, time.Since(started).Round(time.Millisecond), err)
		return "", fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
	}

	log.Printf("✅ %s completion received: %d characters", flow, utf8.RuneCountInString(text))
	return text, nil
}
