package models

// EmotionSummary is the facial-expression result for a single answer.
// EmotionScores holds normalized weights in [0,1]; the weights need not sum
// to exactly 1 after rounding.
type EmotionSummary struct {
	DominantEmotion string             `json:"dominant_emotion"`
	EmotionScores   map[string]float64 `json:"emotion_scores"`
}

// UnknownEmotion is the dominant emotion recorded when analysis fails or
// detects nothing.
const UnknownEmotion = "unknown"

// AnswerScores is the AI evaluation of one answer. Each score is in [0,10].
type AnswerScores struct {
	ContentScore    float64 `json:"content_score"`
	StructureScore  float64 `json:"structure_score"`
	ClarityScore    float64 `json:"clarity_score"`
	ConfidenceScore float64 `json:"confidence_score"`
	Feedback        string  `json:"feedback"`
}

// QuestionResult is the stored outcome of one answered question. AnswerScores
// is embedded so its fields marshal as top-level siblings of transcript and
// expression; report aggregation reads the score fields without indirection.
// Entries are immutable once appended to a session.
type QuestionResult struct {
	QuestionID   string `json:"question_id"`
	QuestionText string `json:"question_text"`
	Transcript   string `json:"transcript"`
	AnswerScores
	Expression EmotionSummary `json:"expression"`
}

// Session is the durable record of one interview attempt. Questions grows
// append-only; the record is never deleted by the system itself.
type Session struct {
	SessionID string           `json:"session_id"`
	Role      string           `json:"role"`
	Seniority string           `json:"seniority"`
	Questions []QuestionResult `json:"questions"`
}

// AggregateEmotion summarizes dominant emotions across a session.
type AggregateEmotion struct {
	DominantEmotion string         `json:"dominant_emotion"`
	EmotionCounts   map[string]int `json:"emotion_counts"`
}

// AggregateReport holds the mean scores over all QuestionResults of a session,
// rounded to 2 decimals. It is always recomputed from Session.Questions and
// never persisted.
type AggregateReport struct {
	ContentScore    float64          `json:"content_score"`
	StructureScore  float64          `json:"structure_score"`
	ClarityScore    float64          `json:"clarity_score"`
	ConfidenceScore float64          `json:"confidence_score"`
	EmotionSummary  AggregateEmotion `json:"emotion_summary"`
}

// InterviewSummary is the AI coaching summary for a full session.
type InterviewSummary struct {
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Summary      string   `json:"summary"`
}

// Report is the composed interview report returned to callers.
type Report struct {
	SessionID string           `json:"session_id"`
	Role      string           `json:"role"`
	Seniority string           `json:"seniority"`
	Questions []QuestionResult `json:"questions"`
	Overall   AggregateReport  `json:"overall"`
	AISummary InterviewSummary `json:"ai_summary"`
}
