package handlers

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/interview-coach/internal/models"
	"alfredoptarigan/interview-coach/internal/services"
)

type ResumeHandler struct {
	resumeService services.ResumeService
	maxFileSize   int64
}

func NewResumeHandler(resumeService services.ResumeService, maxFileSize int64) *ResumeHandler {
	return &ResumeHandler{
		resumeService: resumeService,
		maxFileSize:   maxFileSize,
	}
}

// HandleAnalyzeResume handles POST /analyze-resume
func (h *ResumeHandler) HandleAnalyzeResume(c *fiber.Ctx) error {
	upload, err := h.readUpload(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	analysis, err := h.resumeService.Analyze(c.UserContext(), *upload)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(analysis)
}

// HandleResumeQuestion handles POST /analyze-resume/question
func (h *ResumeHandler) HandleResumeQuestion(c *fiber.Ctx) error {
	upload, err := h.readUpload(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	question, err := h.resumeService.GenerateQuestion(c.UserContext(), *upload)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(models.QuestionResponse{Question: question})
}

// readUpload reads the "file" form field into memory.
func (h *ResumeHandler) readUpload(c *fiber.Ctx) (*models.ResumeUpload, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, badRequest(CodeInvalidRequest, "file is required")
	}

	if fileHeader.Size > h.maxFileSize {
		return nil, badRequest(CodeFileTooLarge,
			fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, badRequest(CodeInvalidRequest, "Failed to read uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, badRequest(CodeInvalidRequest, "Failed to read uploaded file")
	}

	upload := &models.ResumeUpload{
		Filename: fileHeader.Filename,
		Data:     data,
		Language: c.FormValue("language"),
	}
	upload.ApplyDefaults()
	return upload, nil
}
