package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"interview-ai/backend/internal/repositories"
	"interview-ai/backend/internal/services"
)

type ReportHandler struct {
	interviewService services.InterviewService
	pdfService       services.ReportPDFService
}

func NewReportHandler(
	interviewService services.InterviewService,
	pdfService services.ReportPDFService,
) *ReportHandler {
	return &ReportHandler{
		interviewService: interviewService,
		pdfService:       pdfService,
	}
}

// HandleGetReport handles GET /report/:session_id
func (h *ReportHandler) HandleGetReport(c *fiber.Ctx) error {
	report, err := h.interviewService.CompileReport(c.Context(), c.Params("session_id"))
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Session not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to compile report",
		})
	}

	return c.JSON(report)
}

// HandleGetReportPDF handles GET /report/:session_id/pdf
func (h *ReportHandler) HandleGetReportPDF(c *fiber.Ctx) error {
	sessionID := c.Params("session_id")

	report, err := h.interviewService.CompileReport(c.Context(), sessionID)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Session not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to compile report",
		})
	}

	pdfBytes, err := h.pdfService.Render(report)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to render report PDF",
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="interview-report-%s.pdf"`, sessionID))
	return c.Send(pdfBytes)
}
