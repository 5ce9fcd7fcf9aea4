package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"interview-ai/backend/internal/models"
)

// AnswerScorer evaluates a single transcribed answer.
type AnswerScorer interface {
	ScoreAnswer(ctx context.Context, question, transcript string) (*models.AnswerScores, error)
}

type scoringService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewScoringService(gemini GeminiService, maxRetries int) AnswerScorer {
	return &scoringService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// ScoreAnswer implements AnswerScorer. A response the model wraps in markdown
// fences is still accepted; output that holds no JSON object at all is an
// error and the caller applies its zero-score default.
func (s *scoringService) ScoreAnswer(ctx context.Context, question, transcript string) (*models.AnswerScores, error) {
	prompt := s.promptBuilder.BuildAnswerScoringPrompt(question, transcript)

	response, err := s.gemini.GenerateTextWithRetry(ctx, prompt, 0.3, s.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate answer evaluation: %w", err)
	}

	var result models.AnswerScores
	if err := parseJSONResponse(response, &result); err != nil {
		return nil, fmt.Errorf("failed to parse answer evaluation: %w", err)
	}

	return &result, nil
}

func parseJSONResponse(response string, target interface{}) error {
	jsonStr := extractJSON(response)

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
