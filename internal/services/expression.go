package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"interview-ai/backend/internal/models"
)

// ExpressionAnalyzer reports the dominant facial emotion of a recorded answer.
type ExpressionAnalyzer interface {
	AnalyzeExpression(ctx context.Context, mediaPath string) (*models.EmotionSummary, error)
}

// expressionService posts the recording to an external facial-expression
// analysis service (POST {url}/analyze, multipart "file" field) and decodes
// {"dominant_emotion": "...", "emotion_scores": {...}}.
type expressionService struct {
	baseURL string
	client  *http.Client
}

func NewExpressionService(baseURL string) ExpressionAnalyzer {
	return &expressionService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// AnalyzeExpression implements ExpressionAnalyzer.
func (s *expressionService) AnalyzeExpression(ctx context.Context, mediaPath string) (*models.EmotionSummary, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(mediaPath))
	if err != nil {
		return nil, err
	}

	fd, err := os.Open(mediaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open media file: %w", err)
	}
	defer fd.Close()

	if _, err := io.Copy(part, fd); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/analyze", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("expression service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("expression service %s: %s", resp.Status, string(respBody))
	}

	var out models.EmotionSummary
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("expression decode: %w", err)
	}

	if out.DominantEmotion == "" {
		out.DominantEmotion = models.UnknownEmotion
	}
	if out.EmotionScores == nil {
		out.EmotionScores = map[string]float64{}
	}

	return &out, nil
}
