package services

import (
	"context"
	"log"
	"time"
	"unicode/utf8"

	"alfredoptarigan/interview-coach/internal/metrics"
	"alfredoptarigan/interview-coach/internal/models"
)

// ResumeService runs the résumé-driven flows. Nothing from these flows is persisted.
type ResumeService interface {
	GenerateQuestion(ctx context.Context, upload models.ResumeUpload) (string, error)
	Analyze(ctx context.Context, upload models.ResumeUpload) (*models.ResumeAnalysis, error)
}

type resumeService struct {
	completion    CompletionClient
	parser        DocumentParserService
	metrics       *metrics.Metrics
	promptBuilder *PromptBuilder
	timeout       time.Duration
}

func NewResumeService(
	completion CompletionClient,
	parser DocumentParserService,
	m *metrics.Metrics,
	timeout time.Duration,
) ResumeService {
	return &resumeService{
		completion:    completion,
		parser:        parser,
		metrics:       m,
		promptBuilder: NewPromptBuilder(),
		timeout:       timeout,
	}
}

// GenerateQuestion implements ResumeService.
func (s *resumeService) GenerateQuestion(ctx context.Context, upload models.ResumeUpload) (string, error) {
	resumeText, err := s.extract(upload)
	if err != nil {
		return "", err
	}

	prompt := s.promptBuilder.BuildResumeQuestionPrompt(resumeText, upload.Language)
	text, err := complete(ctx, s.completion, s.metrics, s.timeout, FlowResumeQuestion, prompt)
	if err != nil {
		return "", err
	}

	return NormalizeText(text), nil
}

// Analyze implements ResumeService. A model reply that is not the expected JSON
// object yields the degraded shape, not an error.
func (s *resumeService) Analyze(ctx context.Context, upload models.ResumeUpload) (*models.ResumeAnalysis, error) {
	resumeText, err := s.extract(upload)
	if err != nil {
		return nil, err
	}

	prompt := s.promptBuilder.BuildResumeReviewPrompt(resumeText, upload.Language)
	text, err := complete(ctx, s.completion, s.metrics, s.timeout, FlowResumeReview, prompt)
	if err != nil {
		return nil, err
	}

	analysis := ParseResumeAnalysis(text)
	if analysis.Degraded {
		log.Printf("⚠️  Resume review was not valid JSON, returning degraded result (%d characters)", utf8.RuneCountInString(text))
		s.metrics.IncDegraded()
	}

	return &analysis, nil
}

func (s *resumeService) extract(upload models.ResumeUpload) (string, error) {
	content, err := s.parser.ExtractText(upload.Data, upload.Filename)
	if err != nil {
		log.Printf("⚠️  Failed to extract resume %q: %v", upload.Filename, err)
		s.metrics.IncExtractionFailure()
		return "", err
	}

	log.Printf("📄 Extracted resume %q: %d pages, %d characters", upload.Filename, content.PageCount, utf8.RuneCountInString(content.Text))
	return content.Text, nil
}
