package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/interview-coach/internal/metrics"
	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/testutil"
)

func newTestResumeService(client CompletionClient) ResumeService {
	return NewResumeService(client, NewDocumentParserService(), metrics.New(prometheus.NewRegistry()), time.Second)
}

func TestResumeService_GenerateQuestion(t *testing.T) {
	client := &fakeCompletionClient{response: "Tell me about the Kafka migration."}
	svc := newTestResumeService(client)

	question, err := svc.GenerateQuestion(context.Background(), models.ResumeUpload{
		Filename: "resume.pdf",
		Data:     testutil.BuildPDF("Jane Doe", "Led Kafka migration"),
		Language: "English",
	})
	require.NoError(t, err)
	assert.Equal(t, "Tell me about the Kafka migration.", question)

	prompts := client.calls()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0].User, "Led Kafka migration")
	assert.Equal(t, QuestionMaxTokens, prompts[0].MaxOutputTokens)
}

func TestResumeService_Analyze(t *testing.T) {
	client := &fakeCompletionClient{response: `{"review": "Solid.", "questions": ["Q1", "Q2", "Q3"]}`}
	svc := newTestResumeService(client)

	analysis, err := svc.Analyze(context.Background(), models.ResumeUpload{
		Filename: "resume.pdf",
		Data:     testutil.BuildPDF("Jane Doe"),
		Language: "ko",
	})
	require.NoError(t, err)
	assert.False(t, analysis.Degraded)
	assert.Equal(t, "Solid.", analysis.Review)
	assert.Equal(t, []string{"Q1", "Q2", "Q3"}, analysis.Questions)

	prompts := client.calls()
	require.Len(t, prompts, 1)
	assert.Equal(t, ResumeReviewMaxTokens, prompts[0].MaxOutputTokens)
}

func TestResumeService_Analyze_Degraded(t *testing.T) {
	raw := "```json\n{\"review\": \"Solid.\", \"questions\": [\"Q1\"]}\n```"
	svc := newTestResumeService(&fakeCompletionClient{response: raw})

	analysis, err := svc.Analyze(context.Background(), models.ResumeUpload{
		Filename: "resume.pdf",
		Data:     testutil.BuildPDF("Jane Doe"),
		Language: "ko",
	})
	require.NoError(t, err)
	assert.True(t, analysis.Degraded)
	assert.Equal(t, ResumeAnalysisFallbackReview, analysis.Review)
	assert.Equal(t, []string{raw}, analysis.Questions)
}

func TestResumeService_ExtractionFailedSkipsCompletion(t *testing.T) {
	client := &fakeCompletionClient{response: "unused"}
	svc := newTestResumeService(client)
	upload := models.ResumeUpload{Filename: "scan.pdf", Data: testutil.BuildPDF("", ""), Language: "ko"}

	_, err := svc.Analyze(context.Background(), upload)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExtractionFailed))

	_, err = svc.GenerateQuestion(context.Background(), upload)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExtractionFailed))

	assert.Empty(t, client.calls())
}
