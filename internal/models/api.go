package models

// Question is one generated interview question as returned to the frontend.
type Question struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type UploadResumeResponse struct {
	SessionID string     `json:"session_id"`
	Questions []Question `json:"questions"`
}

type StartInterviewResponse struct {
	SessionID string     `json:"session_id"`
	Questions []Question `json:"questions"`
}

type AnswerResponse struct {
	Message    string         `json:"message"`
	Transcript string         `json:"transcript"`
	Emotion    EmotionSummary `json:"emotion"`
	Scores     AnswerScores   `json:"scores"`
}

type EndInterviewResponse struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}
