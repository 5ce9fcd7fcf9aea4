package services

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestCleanQuestionLines(t *testing.T) {
	raw := `1. Why are you interested in this role?
2) Tell me about a challenging project.

Q: What is your experience with Go?
3) Describe a time you disagreed with a teammate.
How do you approach testing?`

	want := []string{
		"Why are you interested in this role?",
		"Tell me about a challenging project.",
		"What is your experience with Go?",
		"Describe a time you disagreed with a teammate.",
		"How do you approach testing?",
	}

	got := CleanQuestionLines(raw, 5)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CleanQuestionLines mismatch:\nwant %v\ngot  %v", want, got)
	}
}

func TestCleanQuestionLinesLimit(t *testing.T) {
	raw := "q1\nq2\nq3\nq4\nq5\nq6\nq7"

	got := CleanQuestionLines(raw, 5)
	if len(got) != 5 {
		t.Errorf("expected 5 questions, got %d", len(got))
	}
}

func TestGenerateQuestions(t *testing.T) {
	gemini := &fakeGemini{response: "Why this role?\nTell me about a project.\nWhat is your biggest strength?"}
	svc := NewQuestionService(gemini, 1)

	got, err := svc.GenerateQuestions(context.Background(), "resume text", "Backend Engineer", "Senior", 5)
	if err != nil {
		t.Fatalf("GenerateQuestions: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(got))
	}
	if got[0].ID != "1" || got[2].ID != "3" {
		t.Errorf("question ids must be sequential from 1: %+v", got)
	}
	if got[1].Text != "Tell me about a project." {
		t.Errorf("unexpected question text: %q", got[1].Text)
	}
}

func TestGenerateQuestionsModelFailureFallsBack(t *testing.T) {
	svc := NewQuestionService(&fakeGemini{err: errors.New("quota exceeded")}, 1)

	got, err := svc.GenerateQuestions(context.Background(), "resume text", "Backend Engineer", "Senior", 5)
	if err != nil {
		t.Fatalf("GenerateQuestions must not fail, got %v", err)
	}

	if len(got) != 5 {
		t.Fatalf("expected 5 fallback questions, got %d", len(got))
	}
	if !strings.Contains(got[0].Text, "Backend Engineer") {
		t.Errorf("fallback question should mention the role: %q", got[0].Text)
	}
}
