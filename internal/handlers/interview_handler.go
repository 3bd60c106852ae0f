package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/virtual-panel/internal/fallback"
	"alfredoptarigan/virtual-panel/internal/middleware"
	"alfredoptarigan/virtual-panel/internal/models"
	"alfredoptarigan/virtual-panel/internal/services"
)

type InterviewHandler struct {
	gateway services.AIGateway
}

func NewInterviewHandler(gateway services.AIGateway) *InterviewHandler {
	return &InterviewHandler{gateway: gateway}
}

// HandleGenerateQuestions handles POST /api/interview/questions
func (h *InterviewHandler) HandleGenerateQuestions(c *fiber.Ctx) error {
	var req models.QuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	if err := req.Validate(); err != nil {
		return badRequest(c, "Role is required")
	}

	reqID := middleware.GetRequestID(c)
	log.Printf("🎯 [%s] Generating questions for role: %s", reqID, req.Role)

	questions, err := h.gateway.GenerateQuestions(c.UserContext(), req.Role)
	source := models.SourceAI
	message := ""

	switch reason := services.ReasonOf(err); {
	case err == nil:
	case reason == services.ReasonDisabled:
		log.Printf("⚠️ [%s] No valid API key, using fallback questions", reqID)
		questions, source = fallback.SelectQuestions(req.Role), models.SourceFallback
	case reason == services.ReasonInternal:
		log.Printf("❌ [%s] Error generating questions: %v", reqID, err)
		questions, source = fallback.SelectQuestions(req.Role), models.SourceFallback
		message = "Using default questions due to technical issue"
	default:
		log.Printf("⚠️ [%s] AI generation failed: %v", reqID, err)
		questions, source = fallback.SelectQuestions(req.Role), models.SourceFallback
	}

	if message == "" {
		message = fmt.Sprintf("Generated %d questions for %s", len(questions), req.Role)
	}

	return c.JSON(models.QuestionsResponse{
		Success:   true,
		Questions: questions,
		Message:   message,
		Source:    source,
	})
}

// HandleAnalyze handles POST /api/interview/analyze
func (h *InterviewHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	if err := req.Validate(); err != nil {
		return badRequest(c, "Interview transcript is required")
	}

	reqID := middleware.GetRequestID(c)
	log.Printf("🔍 [%s] Analyzing interview for role: %s (%d answers)", reqID, req.Role, len(req.Transcript))

	source := models.SourceAI
	message := "Interview analysis completed"

	var analysis models.InterviewAnalysis
	result, err := h.gateway.AnalyzeTranscript(c.UserContext(), req.Transcript, req.Role)

	switch reason := services.ReasonOf(err); {
	case err == nil && result != nil:
		analysis = *result
	case reason == services.ReasonDisabled:
		log.Printf("⚠️ [%s] No valid API key, using fallback analysis", reqID)
		analysis, source = fallback.ScoreInterview(req.Transcript, req.Role), models.SourceFallback
	case reason == services.ReasonInternal:
		log.Printf("❌ [%s] Error analyzing interview: %v", reqID, err)
		analysis, source = fallback.ScoreInterview(req.Transcript, req.Role), models.SourceFallback
		message = "Analysis completed with default feedback"
	default:
		log.Printf("⚠️ [%s] AI analysis failed: %v", reqID, err)
		analysis, source = fallback.ScoreInterview(req.Transcript, req.Role), models.SourceFallback
	}

	return c.JSON(models.InterviewAnalysisResponse{
		Success:  true,
		Analysis: analysis,
		Message:  message,
		Source:   source,
	})
}
