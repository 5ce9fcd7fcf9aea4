package services

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"interview-ai/backend/internal/models"
	"interview-ai/backend/internal/repositories"
)

// InterviewService owns the session lifecycle: it creates sessions, merges
// collaborator results into per-question records, and compiles the aggregate
// report. Collaborator failures degrade to documented defaults; only storage
// errors and missing sessions surface to the caller.
type InterviewService interface {
	StartSession(role, seniority string) (*models.Session, error)
	SubmitAnswer(ctx context.Context, sessionID, questionID, questionText, mediaPath string) (*models.QuestionResult, error)
	EndSession(sessionID string) error
	CompileReport(ctx context.Context, sessionID string) (*models.Report, error)
}

// ScoringFailedFeedback is stored as feedback when answer scoring fails.
const ScoringFailedFeedback = "AI Scoring failed."

type interviewService struct {
	sessions   repositories.SessionRepository
	transcribe Transcriber
	expression ExpressionAnalyzer
	scorer     AnswerScorer
	summarizer Summarizer
	timeout    time.Duration
}

func NewInterviewService(
	sessions repositories.SessionRepository,
	transcribe Transcriber,
	expression ExpressionAnalyzer,
	scorer AnswerScorer,
	summarizer Summarizer,
	timeout time.Duration,
) InterviewService {
	return &interviewService{
		sessions:   sessions,
		transcribe: transcribe,
		expression: expression,
		scorer:     scorer,
		summarizer: summarizer,
		timeout:    timeout,
	}
}

// StartSession implements InterviewService.
func (s *interviewService) StartSession(role, seniority string) (*models.Session, error) {
	session := &models.Session{
		SessionID: uuid.New().String(),
		Role:      role,
		Seniority: seniority,
		Questions: []models.QuestionResult{},
	}

	if err := s.sessions.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	logrus.Infof("🎤 Session %s started (%s, %s)", session.SessionID, role, seniority)
	return session, nil
}

// SubmitAnswer implements InterviewService. Expression analysis runs
// concurrently with transcription; scoring runs after transcription because
// it consumes the transcript. Each collaborator is wrapped so one failure
// never aborts the others or the request: the answer is always stored with
// best-effort content. Submitting the same question id twice stores two
// entries; uniqueness is the caller's concern.
func (s *interviewService) SubmitAnswer(ctx context.Context, sessionID, questionID, questionText, mediaPath string) (*models.QuestionResult, error) {
	if _, err := s.sessions.Find(sessionID); err != nil {
		return nil, err
	}

	var (
		wg         sync.WaitGroup
		transcript string
		scores     models.AnswerScores
		emotion    models.EmotionSummary
	)

	wg.Add(2)

	go func() {
		defer wg.Done()

		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		text, err := s.transcribe.Transcribe(callCtx, mediaPath)
		if err != nil {
			logrus.Warnf("⚠️ Transcription failed for session %s question %s: %v", sessionID, questionID, err)
			text = ""
		}
		transcript = text

		scoreCtx, cancelScore := context.WithTimeout(ctx, s.timeout)
		defer cancelScore()

		result, err := s.scorer.ScoreAnswer(scoreCtx, questionText, transcript)
		if err != nil {
			logrus.Warnf("⚠️ Scoring failed for session %s question %s: %v", sessionID, questionID, err)
			scores = models.AnswerScores{Feedback: ScoringFailedFeedback}
			return
		}
		scores = *result
	}()

	go func() {
		defer wg.Done()

		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		result, err := s.expression.AnalyzeExpression(callCtx, mediaPath)
		if err != nil {
			logrus.Warnf("⚠️ Expression analysis failed for session %s question %s: %v", sessionID, questionID, err)
			emotion = models.EmotionSummary{
				DominantEmotion: models.UnknownEmotion,
				EmotionScores:   map[string]float64{},
			}
			return
		}
		emotion = *result
	}()

	wg.Wait()

	result := models.QuestionResult{
		QuestionID:   questionID,
		QuestionText: questionText,
		Transcript:   transcript,
		AnswerScores: scores,
		Expression:   emotion,
	}

	if _, err := s.sessions.AppendResult(sessionID, result); err != nil {
		return nil, fmt.Errorf("failed to save answer: %w", err)
	}

	logrus.Infof("💾 Answer saved for session %s question %s", sessionID, questionID)
	return &result, nil
}

// EndSession implements InterviewService. Closing is advisory: the call only
// validates that the session exists, so repeating it is harmless.
func (s *interviewService) EndSession(sessionID string) error {
	if _, err := s.sessions.Find(sessionID); err != nil {
		return err
	}

	logrus.Infof("🏁 Session %s finished", sessionID)
	return nil
}

// CompileReport implements InterviewService. The report never fails because
// summarization failed; a fixed generic summary is substituted instead.
func (s *interviewService) CompileReport(ctx context.Context, sessionID string) (*models.Report, error) {
	session, err := s.sessions.Find(sessionID)
	if err != nil {
		return nil, err
	}

	overall := ComputeAggregate(session.Questions)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	summary, err := s.summarizer.Summarize(callCtx, session.Role, session.Seniority, session.Questions, overall)
	if err != nil {
		logrus.Warnf("⚠️ Summarization failed for session %s, using fallback summary: %v", sessionID, err)
		summary = fallbackSummary()
	}

	return &models.Report{
		SessionID: session.SessionID,
		Role:      session.Role,
		Seniority: session.Seniority,
		Questions: session.Questions,
		Overall:   overall,
		AISummary: *summary,
	}, nil
}

// ComputeAggregate derives the aggregate report from a session's question
// list. It is a pure function and is recomputed on every report request.
// Means are rounded half away from zero to 2 decimals. The aggregate
// dominant emotion is the first label to reach the maximum count, in
// first-encountered order, which keeps ties deterministic.
func ComputeAggregate(questions []models.QuestionResult) models.AggregateReport {
	if len(questions) == 0 {
		return models.AggregateReport{
			EmotionSummary: models.AggregateEmotion{
				DominantEmotion: models.UnknownEmotion,
				EmotionCounts:   map[string]int{},
			},
		}
	}

	var totalContent, totalStructure, totalClarity, totalConfidence float64
	counts := make(map[string]int)
	var order []string

	for _, q := range questions {
		totalContent += q.ContentScore
		totalStructure += q.StructureScore
		totalClarity += q.ClarityScore
		totalConfidence += q.ConfidenceScore

		emo := q.Expression.DominantEmotion
		if emo == "" {
			continue
		}
		if _, seen := counts[emo]; !seen {
			order = append(order, emo)
		}
		counts[emo]++
	}

	dominant := models.UnknownEmotion
	best := 0
	for _, emo := range order {
		if counts[emo] > best {
			best = counts[emo]
			dominant = emo
		}
	}

	n := float64(len(questions))
	return models.AggregateReport{
		ContentScore:    round2(totalContent / n),
		StructureScore:  round2(totalStructure / n),
		ClarityScore:    round2(totalClarity / n),
		ConfidenceScore: round2(totalConfidence / n),
		EmotionSummary: models.AggregateEmotion{
			DominantEmotion: dominant,
			EmotionCounts:   counts,
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func fallbackSummary() *models.InterviewSummary {
	return &models.InterviewSummary{
		Strengths: []string{
			"Shows potential in answering questions clearly.",
			"Demonstrates some structured thinking in responses.",
		},
		Improvements: []string{
			"Add more specific, measurable results to examples.",
			"Improve overall structure using the STAR method consistently.",
		},
		Summary: "The candidate delivered a generally solid performance with room for growth in " +
			"how they structure answers and highlight impact. With practice, they can present " +
			"their experience in a more compelling and confident way.",
	}
}
