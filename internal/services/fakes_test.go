package services

import (
	"context"
	"sync"

	"alfredoptarigan/interview-coach/internal/models"
)

type fakeCompletionClient struct {
	mu       sync.Mutex
	response string
	err      error
	prompts  []Prompt
}

func (f *fakeCompletionClient) Complete(ctx context.Context, prompt Prompt) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeCompletionClient) calls() []Prompt {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Prompt(nil), f.prompts...)
}

type fakeRepository struct {
	mu   sync.Mutex
	err  error
	rows []*models.InterviewResult
}

func (f *fakeRepository) Create(ctx context.Context, result *models.InterviewResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, result)
	return nil
}

func (f *fakeRepository) saved() []*models.InterviewResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*models.InterviewResult(nil), f.rows...)
}

// syncRecorder records into a slice immediately.
type syncRecorder struct {
	mu   sync.Mutex
	rows []*models.InterviewResult
}

func (s *syncRecorder) Start(ctx context.Context) {}
func (s *syncRecorder) Stop()                     {}

func (s *syncRecorder) Record(result *models.InterviewResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, result)
}

func (s *syncRecorder) recorded() []*models.InterviewResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*models.InterviewResult(nil), s.rows...)
}
