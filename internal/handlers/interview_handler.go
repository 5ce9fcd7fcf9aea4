package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"interview-ai/backend/internal/models"
	"interview-ai/backend/internal/repositories"
	"interview-ai/backend/internal/services"
)

type InterviewHandler struct {
	interviewService services.InterviewService
	storageService   services.StorageService
	maxFileSize      int64
}

func NewInterviewHandler(
	interviewService services.InterviewService,
	storageService services.StorageService,
	maxFileSize int64,
) *InterviewHandler {
	return &InterviewHandler{
		interviewService: interviewService,
		storageService:   storageService,
		maxFileSize:      maxFileSize,
	}
}

// HandleStart handles POST /interview/start. The frontend passes the question
// list it already generated as a JSON string; the new session starts with an
// empty result list either way.
func (h *InterviewHandler) HandleStart(c *fiber.Ctx) error {
	role := c.FormValue("role")
	seniority := c.FormValue("seniority")
	questionsRaw := c.FormValue("questions")

	if role == "" || seniority == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "role and seniority are required",
		})
	}

	var questions []models.Question
	if err := json.Unmarshal([]byte(questionsRaw), &questions); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid question format",
		})
	}

	session, err := h.interviewService.StartSession(role, seniority)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to create session",
		})
	}

	return c.JSON(models.StartInterviewResponse{
		SessionID: session.SessionID,
		Questions: questions,
	})
}

// HandleAnswer handles POST /interview/answer: store the recording, run the
// collaborators, and append the merged result to the session. Partial AI
// failure still returns success with best-effort content.
func (h *InterviewHandler) HandleAnswer(c *fiber.Ctx) error {
	sessionID := c.FormValue("session_id")
	questionID := c.FormValue("question_id")
	questionText := c.FormValue("question_text")

	if sessionID == "" || questionID == "" || questionText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session_id, question_id and question_text are required",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "answer recording is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Recording too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	mediaPath, err := h.storageService.SaveAnswerMedia(file, sessionID, questionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save recording: %v", err),
		})
	}

	result, err := h.interviewService.SubmitAnswer(c.Context(), sessionID, questionID, questionText, mediaPath)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Session not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save answer",
		})
	}

	return c.JSON(models.AnswerResponse{
		Message:    "Answer saved successfully",
		Transcript: result.Transcript,
		Emotion:    result.Expression,
		Scores:     result.AnswerScores,
	})
}

// HandleEnd handles POST /interview/end. Ending is advisory and idempotent.
func (h *InterviewHandler) HandleEnd(c *fiber.Ctx) error {
	sessionID := c.FormValue("session_id")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session_id is required",
		})
	}

	if err := h.interviewService.EndSession(sessionID); err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Session not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to end session",
		})
	}

	return c.JSON(models.EndInterviewResponse{
		Message:   "Interview session finished",
		SessionID: sessionID,
	})
}
