package models

import (
	"encoding/json"
	"testing"
)

// The score fields must marshal as top-level siblings of transcript and
// expression, matching the stored session document layout that report
// aggregation reads.
func TestQuestionResultFlatJSON(t *testing.T) {
	result := QuestionResult{
		QuestionID:   "1",
		QuestionText: "Q",
		Transcript:   "hello",
		AnswerScores: AnswerScores{
			ContentScore:    8,
			StructureScore:  7,
			ClarityScore:    6,
			ConfidenceScore: 5,
			Feedback:        "ok",
		},
		Expression: EmotionSummary{
			DominantEmotion: "happy",
			EmotionScores:   map[string]float64{"happy": 1},
		},
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	for _, key := range []string{"question_id", "question_text", "transcript",
		"content_score", "structure_score", "clarity_score", "confidence_score",
		"feedback", "expression"} {
		if _, ok := flat[key]; !ok {
			t.Errorf("missing top-level key %q in %s", key, data)
		}
	}

	if flat["content_score"] != 8.0 {
		t.Errorf("content_score not flattened: %v", flat["content_score"])
	}

	var back QuestionResult
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal roundtrip: %v", err)
	}
	if back.ContentScore != 8 || back.Expression.DominantEmotion != "happy" {
		t.Errorf("roundtrip mismatch: %+v", back)
	}
}
