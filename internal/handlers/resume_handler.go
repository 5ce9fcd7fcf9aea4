package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"interview-ai/backend/internal/models"
	"interview-ai/backend/internal/services"
)

type ResumeHandler struct {
	storageService   services.StorageService
	resumeParser     services.ResumeParserService
	questionService  services.QuestionService
	interviewService services.InterviewService
	maxFileSize      int64
	questionCount    int
}

func NewResumeHandler(
	storageService services.StorageService,
	resumeParser services.ResumeParserService,
	questionService services.QuestionService,
	interviewService services.InterviewService,
	maxFileSize int64,
	questionCount int,
) *ResumeHandler {
	return &ResumeHandler{
		storageService:   storageService,
		resumeParser:     resumeParser,
		questionService:  questionService,
		interviewService: interviewService,
		maxFileSize:      maxFileSize,
		questionCount:    questionCount,
	}
}

// HandleUpload handles POST /resume/upload: save the resume, extract its
// text, generate questions, and open a session.
func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
	role := c.FormValue("role")
	seniority := c.FormValue("seniority")
	if role == "" || seniority == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "role and seniority are required",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	resumePath, err := h.storageService.SaveResume(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume: %v", err),
		})
	}

	resumeText, err := h.resumeParser.ExtractText(resumePath)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to parse resume: %v", err),
		})
	}

	// Question generation has its own fallback and never errors here
	questions, err := h.questionService.GenerateQuestions(c.Context(), resumeText, role, seniority, h.questionCount)
	if err != nil {
		logrus.Errorf("❌ Question generation error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to generate interview questions",
		})
	}

	session, err := h.interviewService.StartSession(role, seniority)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create session",
		})
	}

	return c.JSON(models.UploadResumeResponse{
		SessionID: session.SessionID,
		Questions: questions,
	})
}
