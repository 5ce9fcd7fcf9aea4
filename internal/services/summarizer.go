package services

import (
	"context"
	"fmt"

	"interview-ai/backend/internal/models"
)

// Summarizer produces the coaching summary for a finished session.
type Summarizer interface {
	Summarize(ctx context.Context, role, seniority string, questions []models.QuestionResult, overall models.AggregateReport) (*models.InterviewSummary, error)
}

type summaryService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewSummaryService(gemini GeminiService, maxRetries int) Summarizer {
	return &summaryService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// Summarize implements Summarizer.
func (s *summaryService) Summarize(ctx context.Context, role, seniority string, questions []models.QuestionResult, overall models.AggregateReport) (*models.InterviewSummary, error) {
	prompt, err := s.promptBuilder.BuildSessionSummaryPrompt(role, seniority, questions, overall)
	if err != nil {
		return nil, err
	}

	response, err := s.gemini.GenerateTextWithRetry(ctx, prompt, 0.5, s.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session summary: %w", err)
	}

	var result models.InterviewSummary
	if err := parseJSONResponse(response, &result); err != nil {
		return nil, fmt.Errorf("failed to parse session summary: %w", err)
	}

	return &result, nil
}
