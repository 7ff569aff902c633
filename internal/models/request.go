package models

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultLanguage is used when a request omits language.
const DefaultLanguage = "ko"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type InterviewRequest struct {
	JobRole   string `json:"job_role" validate:"required"`
	UserID    string `json:"user_id" validate:"required"`
	Language  string `json:"language,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

func (r *InterviewRequest) ApplyDefaults() {
	if strings.TrimSpace(r.Language) == "" {
		r.Language = DefaultLanguage
	}
}

func (r *InterviewRequest) Validate() error {
	return validate.Struct(r)
}

type EvaluationRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	Question  string `json:"question" validate:"required"`
	Answer    string `json:"answer" validate:"required"`
	Language  string `json:"language,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

func (r *EvaluationRequest) ApplyDefaults() {
	if strings.TrimSpace(r.Language) == "" {
		r.Language = DefaultLanguage
	}
}

func (r *EvaluationRequest) Validate() error {
	return validate.Struct(r)
}

// ResumeUpload is an uploaded résumé held in memory for one request.
type ResumeUpload struct {
	Filename string
	Data     []byte
	Language string
}

func (r *ResumeUpload) ApplyDefaults() {
	if strings.TrimSpace(r.Language) == "" {
		r.Language = DefaultLanguage
	}
}

// ValidationMessage turns a validator error into a client-safe message.
func ValidationMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fields := make([]string, 0, len(errs))
		for _, fe := range errs {
			fields = append(fields, fe.Field())
		}
		if len(fields) == 1 {
			return fields[0] + " is required"
		}
		return strings.Join(fields, ", ") + " are required"
	}
	return "Invalid request payload"
}
