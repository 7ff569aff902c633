package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/services"
)

type InterviewHandler struct {
	interviewService services.InterviewService
}

func NewInterviewHandler(interviewService services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		interviewService: interviewService,
	}
}

// HandleGenerateQuestion handles POST /generate-question
func (h *InterviewHandler) HandleGenerateQuestion(c *fiber.Ctx) error {
	var req models.InterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, CodeInvalidRequest, "Invalid request payload")
	}
	if err := req.Validate(); err != nil {
		return respondError(c, fiber.StatusBadRequest, CodeInvalidRequest, models.ValidationMessage(err))
	}
	req.ApplyDefaults()

	question, err := h.interviewService.GenerateQuestion(c.UserContext(), req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.QuestionResponse{Question: question})
}

// HandleEvaluateAnswer handles POST /evaluate-answer
func (h *InterviewHandler) HandleEvaluateAnswer(c *fiber.Ctx) error {
	var req models.EvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, fiber.StatusBadRequest, CodeInvalidRequest, "Invalid request payload")
	}
	if err := req.Validate(); err != nil {
		return respondError(c, fiber.StatusBadRequest, CodeInvalidRequest, models.ValidationMessage(err))
	}
	req.ApplyDefaults()

	evaluation, err := h.interviewService.EvaluateAnswer(c.UserContext(), req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.EvaluationResponse{Evaluation: evaluation})
}
