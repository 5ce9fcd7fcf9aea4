package services

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"interview-ai/backend/internal/models"
)

// ReportPDFService renders a compiled report into a downloadable PDF.
type ReportPDFService interface {
	Render(report *models.Report) ([]byte, error)
}

type reportPDFService struct{}

func NewReportPDFService() ReportPDFService {
	return &reportPDFService{}
}

// Render implements ReportPDFService.
func (r *reportPDFService) Render(report *models.Report) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	writeLine := func(text string, size float64, bold bool, leading float64) {
		style := ""
		if bold {
			style = "B"
		}
		doc.SetFont("Helvetica", style, size)
		if len(text) > 120 {
			text = text[:120]
		}
		doc.CellFormat(0, leading, text, "", 1, "L", false, 0, "")
	}

	// Header
	writeLine("Interview Performance Report", 16, true, 9)
	writeLine(fmt.Sprintf("Session ID: %s", report.SessionID), 9, false, 5)
	writeLine(fmt.Sprintf("Role: %s | Level: %s", report.Role, report.Seniority), 10, false, 5)
	doc.Ln(3)

	// Overall scores
	writeLine("Overall Scores", 13, true, 8)
	writeLine(fmt.Sprintf("Content: %.2f / 10", report.Overall.ContentScore), 11, false, 6)
	writeLine(fmt.Sprintf("Structure: %.2f / 10", report.Overall.StructureScore), 11, false, 6)
	writeLine(fmt.Sprintf("Clarity: %.2f / 10", report.Overall.ClarityScore), 11, false, 6)
	writeLine(fmt.Sprintf("Confidence: %.2f / 10", report.Overall.ConfidenceScore), 11, false, 6)
	writeLine(fmt.Sprintf("Dominant Emotion: %s", report.Overall.EmotionSummary.DominantEmotion), 10, false, 6)
	doc.Ln(3)

	// AI summary
	writeLine("AI Summary", 13, true, 8)
	if report.AISummary.Summary != "" {
		doc.SetFont("Helvetica", "", 10)
		doc.MultiCell(0, 5, report.AISummary.Summary, "", "L", false)
	}
	doc.Ln(2)

	if len(report.AISummary.Strengths) > 0 {
		writeLine("Strengths:", 12, true, 7)
		for _, item := range report.AISummary.Strengths {
			writeLine("- "+item, 10, false, 5)
		}
		doc.Ln(2)
	}

	if len(report.AISummary.Improvements) > 0 {
		writeLine("Areas to Improve:", 12, true, 7)
		for _, item := range report.AISummary.Improvements {
			writeLine("- "+item, 10, false, 5)
		}
		doc.Ln(3)
	}

	// Per-question breakdown
	writeLine("Question-wise Breakdown", 13, true, 8)

	for idx, q := range report.Questions {
		questionText := q.QuestionText
		if questionText == "" {
			questionText = "Question text not available."
		}
		transcript := q.Transcript
		if transcript == "" {
			transcript = "Transcript not available."
		}

		writeLine(fmt.Sprintf("Q%d: %s", idx+1, questionText), 11, true, 6)
		writeLine(fmt.Sprintf("Transcript: %s", transcript), 9, false, 5)
		writeLine(fmt.Sprintf("Scores - Content: %.1f, Structure: %.1f, Clarity: %.1f, Confidence: %.1f",
			q.ContentScore, q.StructureScore, q.ClarityScore, q.ConfidenceScore), 9, false, 5)

		dominant := q.Expression.DominantEmotion
		if dominant == "" {
			dominant = models.UnknownEmotion
		}
		writeLine(fmt.Sprintf("Dominant Emotion: %s", dominant), 9, false, 5)

		if q.Feedback != "" {
			writeLine(fmt.Sprintf("Feedback: %s", q.Feedback), 9, false, 5)
		}
		doc.Ln(2)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report PDF: %w", err)
	}

	return buf.Bytes(), nil
}
