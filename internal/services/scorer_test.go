package services

import (
	"context"
	"errors"
	"testing"
)

type fakeGemini struct {
	response string
	err      error
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	return f.response, f.err
}

func (f *fakeGemini) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error) {
	return f.response, f.err
}

func (f *fakeGemini) GenerateFromMedia(ctx context.Context, prompt string, media []byte, mimeType string) (string, error) {
	return f.response, f.err
}

func TestScoreAnswer(t *testing.T) {
	gemini := &fakeGemini{response: `{
		"content_score": 8,
		"structure_score": 7,
		"clarity_score": 9,
		"confidence_score": 6,
		"feedback": "Good use of examples."
	}`}
	scorer := NewScoringService(gemini, 1)

	got, err := scorer.ScoreAnswer(context.Background(), "Q", "transcript")
	if err != nil {
		t.Fatalf("ScoreAnswer: %v", err)
	}

	if got.ContentScore != 8 || got.StructureScore != 7 || got.ClarityScore != 9 || got.ConfidenceScore != 6 {
		t.Errorf("unexpected scores: %+v", got)
	}
	if got.Feedback != "Good use of examples." {
		t.Errorf("unexpected feedback: %q", got.Feedback)
	}
}

func TestScoreAnswerMarkdownWrapped(t *testing.T) {
	gemini := &fakeGemini{response: "Here you go:\n```json\n{\"content_score\": 5, \"structure_score\": 5, \"clarity_score\": 5, \"confidence_score\": 5, \"feedback\": \"ok\"}\n```"}
	scorer := NewScoringService(gemini, 1)

	got, err := scorer.ScoreAnswer(context.Background(), "Q", "transcript")
	if err != nil {
		t.Fatalf("ScoreAnswer: %v", err)
	}
	if got.ContentScore != 5 || got.Feedback != "ok" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestScoreAnswerModelFailure(t *testing.T) {
	scorer := NewScoringService(&fakeGemini{err: errors.New("quota exceeded")}, 1)

	if _, err := scorer.ScoreAnswer(context.Background(), "Q", "transcript"); err == nil {
		t.Fatal("expected error on model failure")
	}
}

func TestScoreAnswerUnparseableOutput(t *testing.T) {
	scorer := NewScoringService(&fakeGemini{response: "I cannot rate this answer."}, 1)

	if _, err := scorer.ScoreAnswer(context.Background(), "Q", "transcript"); err == nil {
		t.Fatal("expected error on unparseable output")
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"fenced object", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounded object", `Sure! {"a":1} Hope that helps.`, `{"a":1}`},
		{"array", `[1,2,3]`, `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.in); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
