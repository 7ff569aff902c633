package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"alfredoptarigan/interview-coach/internal/models"
)

// ResumeAnalysisFallbackReview replaces the review when the model output is not
// the expected JSON object.
const ResumeAnalysisFallbackReview = "The resume review could not be parsed. The raw model output is returned in questions."

type resumeAnalysisPayload struct {
	Review    *string   `json:"review"`
	Questions *[]string `json:"questions"`
}

// NormalizeText passes plain completion text through unmodified.
func NormalizeText(raw string) string {
	return raw
}

// ParseResumeAnalysis decodes raw strictly as {"review": string, "questions": [string]}.
// Markdown fences, surrounding prose, unknown keys, missing keys and trailing data
// all produce the degraded shape with raw preserved verbatim in Questions[0].
func ParseResumeAnalysis(raw string) models.ResumeAnalysis {
	analysis, err := decodeResumeAnalysis(raw)
	if err != nil {
		return models.ResumeAnalysis{
			Review:    ResumeAnalysisFallbackReview,
			Questions: []string{raw},
			Degraded:  true,
		}
	}
	return analysis
}

func decodeResumeAnalysis(raw string) (models.ResumeAnalysis, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.DisallowUnknownFields()

	var payload resumeAnalysisPayload
	if err := dec.Decode(&payload); err != nil {
		return models.ResumeAnalysis{}, fmt.Errorf("decode resume analysis: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return models.ResumeAnalysis{}, errors.New("trailing data after resume analysis object")
	}
	if payload.Review == nil {
		return models.ResumeAnalysis{}, errors.New("resume analysis missing review")
	}
	if payload.Questions == nil {
		return models.ResumeAnalysis{}, errors.New("resume analysis missing questions")
	}

	return models.ResumeAnalysis{
		Review:    *payload.Review,
		Questions: *payload.Questions,
	}, nil
}
