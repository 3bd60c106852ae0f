package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/virtual-panel/internal/fallback"
	"alfredoptarigan/virtual-panel/internal/middleware"
	"alfredoptarigan/virtual-panel/internal/models"
	"alfredoptarigan/virtual-panel/internal/services"
)

const (
	resumeFormField = "resume"
	pdfMIMEType     = "application/pdf"
)

type ResumeHandler struct {
	gateway     services.AIGateway
	pdfParser   services.PDFParserService
	maxFileSize int64
	minTextLen  int
	development bool
}

func NewResumeHandler(
	gateway services.AIGateway,
	pdfParser services.PDFParserService,
	maxFileSize int64,
	minTextLen int,
	development bool,
) *ResumeHandler {
	return &ResumeHandler{
		gateway:     gateway,
		pdfParser:   pdfParser,
		maxFileSize: maxFileSize,
		minTextLen:  minTextLen,
		development: development,
	}
}

// HandleAnalyze handles POST /api/resume/analyze
func (h *ResumeHandler) HandleAnalyze(c *fiber.Ctx) error {
	reqID := middleware.GetRequestID(c)
	log.Printf("📄 [%s] Resume analysis request received", reqID)

	fileHeader, err := c.FormFile(resumeFormField)
	if err != nil {
		return badRequest(c, "No PDF file uploaded")
	}

	// Rejected before any byte is parsed.
	mediaType, _, err := mime.ParseMediaType(fileHeader.Header.Get(fiber.HeaderContentType))
	if err != nil || mediaType != pdfMIMEType {
		return badRequest(c, "Only PDF files are allowed")
	}

	if fileHeader.Size > h.maxFileSize {
		return badRequest(c, fileTooLargeMessage+". Max size: "+formatSize(h.maxFileSize))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return h.internalError(c, fmt.Errorf("failed to open uploaded file: %w", err))
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return h.internalError(c, fmt.Errorf("failed to read uploaded file: %w", err))
	}

	log.Printf("📄 [%s] Extracting text from PDF (%d bytes)...", reqID, len(data))
	resumeText, err := h.pdfParser.ExtractTextFromBytes(data)
	switch {
	case errors.Is(err, services.ErrUnreadablePDF):
		log.Printf("⚠️ [%s] Unreadable PDF: %v", reqID, err)
		return badRequest(c, "Could not read the uploaded PDF. Please upload a valid PDF file.")
	case err != nil && !errors.Is(err, services.ErrNoPDFText):
		return h.internalError(c, fmt.Errorf("failed to extract text: %w", err))
	}

	if len(strings.TrimSpace(resumeText)) < h.minTextLen {
		return badRequest(c, "Could not extract sufficient text from PDF. Please ensure the PDF contains readable text.")
	}

	log.Printf("✅ [%s] PDF text extracted, length: %d", reqID, len(resumeText))

	source := models.SourceAI
	var analysis models.ResumeAnalysis

	result, err := h.gateway.AnalyzeResume(c.UserContext(), resumeText)
	switch {
	case err == nil && result != nil:
		analysis = *result
	case services.ReasonOf(err) == services.ReasonDisabled:
		log.Printf("⚠️ [%s] No valid API key, using fallback analysis", reqID)
		analysis, source = fallback.ScoreResume(resumeText), models.SourceFallback
	default:
		log.Printf("⚠️ [%s] AI analysis failed: %v", reqID, err)
		analysis, source = fallback.ScoreResume(resumeText), models.SourceFallback
	}

	return c.JSON(models.ResumeAnalysisResponse{
		Success:  true,
		Analysis: analysis,
		Message:  "Resume analysis completed",
		Source:   source,
	})
}

func (h *ResumeHandler) internalError(c *fiber.Ctx, err error) error {
	log.Printf("❌ [%s] Error in resume analysis: %v", middleware.GetRequestID(c), err)
	return c.Status(fiber.StatusInternalServerError).JSON(failure("Failed to analyze resume", err, h.development))
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%d MB", n>>20)
	case n >= 1<<10:
		return fmt.Sprintf("%d KB", n>>10)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
