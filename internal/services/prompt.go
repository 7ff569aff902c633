package services

import (
	"fmt"
)

const (
	QuestionMaxTokens     int32 = 300
	ResumeReviewMaxTokens int32 = 600
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

func (pb *PromptBuilder) systemInstruction(language, shape string) string {
	return fmt.Sprintf(`You are a senior technical interviewer.
You MUST respond only in %s, regardless of the language of the input.
%s`, language, shape)
}

// BuildQuestionPrompt asks for exactly one interview question for a job role.
func (pb *PromptBuilder) BuildQuestionPrompt(jobRole, language string) Prompt {
	return Prompt{
		System: pb.systemInstruction(language, "Output ONLY the question text. No numbering, no preamble, no explanation."),
		User: fmt.Sprintf(`Generate exactly one technical interview question for a %s position.

Write the question in %s.
Output ONLY the question, no numbering.`, jobRole, language),
		MaxOutputTokens: QuestionMaxTokens,
	}
}

// BuildEvaluationPrompt embeds the question and answer verbatim. Evaluations are
// expected to be long, so no output cap is set.
func (pb *PromptBuilder) BuildEvaluationPrompt(question, answer, language string) Prompt {
	return Prompt{
		System: pb.systemInstruction(language, "Evaluate candidate answers honestly and concretely."),
		User: fmt.Sprintf(`Question: %s
Answer: %s

Evaluate the answer in %s.
Give:
- Score (0-100)
- Strengths
- Weaknesses
- Improvement advice`, question, answer, language),
	}
}

// BuildResumeQuestionPrompt asks for one question tailored to the résumé.
func (pb *PromptBuilder) BuildResumeQuestionPrompt(resumeText, language string) Prompt {
	return Prompt{
		System: pb.systemInstruction(language, "Output ONLY the question text. No numbering, no preamble, no explanation."),
		User: fmt.Sprintf(`Below is a candidate's resume.

RESUME:
%s

Based on this resume, generate exactly one interview question tailored to the candidate's experience.
Write the question in %s.
Output ONLY the question, nothing else.`, resumeText, language),
		MaxOutputTokens: QuestionMaxTokens,
	}
}

// BuildResumeReviewPrompt asks for a JSON object {"review": ..., "questions": [...]}.
func (pb *PromptBuilder) BuildResumeReviewPrompt(resumeText, language string) Prompt {
	return Prompt{
		System: pb.systemInstruction(language, "Output ONLY a single valid JSON object. No markdown, no code fences, no prose."),
		User: fmt.Sprintf(`Below is a candidate's resume.

RESUME:
%s

Review this resume and prepare interview questions. Write all text in %s.

Return a JSON object with exactly these two keys:
{
  "review": "<critique of the resume in 3-5 lines>",
  "questions": ["<3-5 interview questions tailored to this resume>"]
}

Output JSON only.`, resumeText, language),
		MaxOutputTokens: ResumeReviewMaxTokens,
	}
}
