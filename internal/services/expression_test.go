package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeTestMedia(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "answer.webm")
	if err := os.WriteFile(path, []byte("not really a video"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestAnalyzeExpression(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/analyze" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("missing file field: %v", err)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"dominant_emotion": "happy",
			"emotion_scores":   map[string]float64{"happy": 0.7, "neutral": 0.3},
		})
	}))
	defer server.Close()

	svc := NewExpressionService(server.URL)

	got, err := svc.AnalyzeExpression(context.Background(), writeTestMedia(t))
	if err != nil {
		t.Fatalf("AnalyzeExpression: %v", err)
	}

	if got.DominantEmotion != "happy" {
		t.Errorf("expected happy, got %q", got.DominantEmotion)
	}
	if got.EmotionScores["happy"] != 0.7 {
		t.Errorf("unexpected scores: %v", got.EmotionScores)
	}
}

func TestAnalyzeExpressionEmptyResponseDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{})
	}))
	defer server.Close()

	svc := NewExpressionService(server.URL)

	got, err := svc.AnalyzeExpression(context.Background(), writeTestMedia(t))
	if err != nil {
		t.Fatalf("AnalyzeExpression: %v", err)
	}

	if got.DominantEmotion != "unknown" {
		t.Errorf("expected unknown, got %q", got.DominantEmotion)
	}
	if got.EmotionScores == nil {
		t.Error("emotion scores must never be nil")
	}
}

func TestAnalyzeExpressionServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no face detected", http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewExpressionService(server.URL)

	if _, err := svc.AnalyzeExpression(context.Background(), writeTestMedia(t)); err == nil {
		t.Fatal("expected error on server failure")
	}
}

func TestAnalyzeExpressionMissingFile(t *testing.T) {
	svc := NewExpressionService("http://localhost:0")

	if _, err := svc.AnalyzeExpression(context.Background(), "/does/not/exist.webm"); err == nil {
		t.Fatal("expected error for missing media file")
	}
}
