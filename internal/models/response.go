package models

type QuestionResponse struct {
	Question string `json:"question"`
}

type EvaluationResponse struct {
	Evaluation string `json:"evaluation"`
}

// ResumeAnalysis is the structured review of a résumé. Degraded is set when
// the model output could not be parsed and the fallback shape was used.
type ResumeAnalysis struct {
	Review    string   `json:"review"`
	Questions []string `json:"questions"`
	Degraded  bool     `json:"-"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
