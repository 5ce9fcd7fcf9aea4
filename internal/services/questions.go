package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"interview-ai/backend/internal/models"
)

// QuestionService generates interview questions from a candidate's resume.
type QuestionService interface {
	GenerateQuestions(ctx context.Context, resumeText, role, seniority string, numQuestions int) ([]models.Question, error)
}

type questionService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewQuestionService(gemini GeminiService, maxRetries int) QuestionService {
	return &questionService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

var numberPrefixRe = regexp.MustCompile(`^[0-9]+[\.\-\)]\s*`)

// GenerateQuestions implements QuestionService. AI failure never fails the
// request; generic fallback questions are returned so interviews can still
// start while the model is unavailable.
func (q *questionService) GenerateQuestions(ctx context.Context, resumeText, role, seniority string, numQuestions int) ([]models.Question, error) {
	prompt := q.promptBuilder.BuildQuestionGenerationPrompt(resumeText, role, seniority, numQuestions)

	response, err := q.gemini.GenerateTextWithRetry(ctx, prompt, 0.7, q.maxRetries)
	if err != nil {
		logrus.Warnf("⚠️ Question generation failed, using fallback questions: %v", err)
		return fallbackQuestions(role, seniority, numQuestions), nil
	}

	texts := CleanQuestionLines(response, numQuestions)
	if len(texts) == 0 {
		logrus.Warn("⚠️ Question generation returned no usable lines, using fallback questions")
		return fallbackQuestions(role, seniority, numQuestions), nil
	}

	questions := make([]models.Question, 0, len(texts))
	for i, text := range texts {
		questions = append(questions, models.Question{
			ID:   fmt.Sprintf("%d", i+1),
			Text: text,
		})
	}

	return questions, nil
}

// CleanQuestionLines splits raw model output into individual questions,
// stripping "1.", "2)" and "Q:" style prefixes the model sometimes adds
// despite instructions. At most limit questions are kept; fewer is fine.
func CleanQuestionLines(raw string, limit int) []string {
	var cleaned []string

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		for _, prefix := range []string{"Q:", "Q1:", "Q.", "Q)"} {
			if strings.HasPrefix(line, prefix) {
				line = strings.TrimSpace(line[len(prefix):])
			}
		}
		line = strings.TrimSpace(numberPrefixRe.ReplaceAllString(line, ""))

		if line != "" {
			cleaned = append(cleaned, line)
		}
	}

	if limit > 0 && len(cleaned) > limit {
		cleaned = cleaned[:limit]
	}

	return cleaned
}

func fallbackQuestions(role, seniority string, numQuestions int) []models.Question {
	questions := make([]models.Question, 0, numQuestions)
	for i := 0; i < numQuestions; i++ {
		questions = append(questions, models.Question{
			ID:   fmt.Sprintf("%d", i+1),
			Text: fmt.Sprintf("Fallback question %d for role %s (%s).", i+1, role, seniority),
		})
	}
	return questions
}
