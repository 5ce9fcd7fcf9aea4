package services

import (
	"encoding/json"
	"fmt"

	"interview-ai/backend/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAnswerScoringPrompt creates the prompt for evaluating one answer
func (pb *PromptBuilder) BuildAnswerScoringPrompt(question, transcript string) string {
	return fmt.Sprintf(`You are an interview evaluator.

Question:
%s

Candidate answer (transcript):
%s

Rate from 1-10:
- content_score
- structure_score
- clarity_score
- confidence_score

Also include:
- feedback: 3-5 sentences of specific, actionable feedback.

Return ONLY JSON.
Do NOT wrap in markdown.
Do NOT add explanations.
Format:

{
  "content_score": number,
  "structure_score": number,
  "clarity_score": number,
  "confidence_score": number,
  "feedback": "text"
}`, question, transcript)
}

// BuildSessionSummaryPrompt creates the prompt for the full-session summary
func (pb *PromptBuilder) BuildSessionSummaryPrompt(role, seniority string, questions []models.QuestionResult, overall models.AggregateReport) (string, error) {
	questionsJSON, err := json.Marshal(questions)
	if err != nil {
		return "", fmt.Errorf("failed to encode question results: %w", err)
	}

	return fmt.Sprintf(`You are an interview coaching assistant.

The candidate interviewed for:
Role: %s
Seniority: %s

Their average scores were:
- Content: %.2f
- Structure: %.2f
- Clarity: %.2f
- Confidence: %.2f
- Dominant emotion: %s

Here are per-question results as a JSON list (each with question_text, transcript, scores, and expression):
%s

Based on this, produce a concise evaluation.

Return ONLY JSON (no markdown, no extra text) in this format:

{
  "strengths": ["point 1", "point 2", "..."],
  "improvements": ["point 1", "point 2", "..."],
  "summary": "3-5 sentence narrative summary of their performance."
}`,
		role, seniority,
		overall.ContentScore, overall.StructureScore, overall.ClarityScore, overall.ConfidenceScore,
		overall.EmotionSummary.DominantEmotion,
		string(questionsJSON)), nil
}

// BuildQuestionGenerationPrompt creates the prompt for resume-based question generation
func (pb *PromptBuilder) BuildQuestionGenerationPrompt(resumeText, role, seniority string, numQuestions int) string {
	return fmt.Sprintf(`You are an expert technical + behavioral interviewer.

Candidate resume:
%s

Target role: %s
Seniority level: %s

Task:
- Generate %d interview questions.
- Mix of:
    - behavioral questions,
    - role-specific technical or domain questions,
    - a couple of deep-dive questions about their past projects.
- Questions should be concise and clear.
- Do NOT number them with 1., 2., etc.
- Return them as a plain list, one question per line.

Output format example:
Why are you interested in this role at our company?
Tell me about a challenging project you worked on...
...`, resumeText, role, seniority, numQuestions)
}
