package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"alfredoptarigan/virtual-panel/internal/models"
)

// FailureReason names why the gateway gave up. Callers fall back on every
// reason; the value only feeds logs and tests.
type FailureReason string

const (
	ReasonDisabled       FailureReason = "disabled"
	ReasonCallFailed     FailureReason = "call_failed"
	ReasonTimeout        FailureReason = "timeout"
	ReasonMalformed      FailureReason = "malformed"
	ReasonWrongCount     FailureReason = "wrong_count"
	ReasonNoJSON         FailureReason = "no_json"
	ReasonUnbalancedJSON FailureReason = "unbalanced_json"
	ReasonInvalidJSON    FailureReason = "invalid_json"
	ReasonMissingFields  FailureReason = "missing_fields"
	ReasonInternal       FailureReason = "internal"
)

const (
	OpGenerateQuestions = "generate_questions"
	OpAnalyzeTranscript = "analyze_transcript"
	OpAnalyzeResume     = "analyze_resume"
)

// Candidate questions this short are treated as junk.
const minQuestionLength = 10

type GatewayError struct {
	Op     string
	Reason FailureReason
	Cause  error
}

func (e *GatewayError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed (%s): %v", e.Op, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s failed (%s)", e.Op, e.Reason)
}

func (e *GatewayError) Unwrap() error {
	return e.Cause
}

// ReasonOf extracts the failure reason from err, or "" if err did not come
// from the gateway.
func ReasonOf(err error) FailureReason {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.Reason
	}
	return ""
}

type AIGateway interface {
	GenerateQuestions(ctx context.Context, role string) ([]string, error)
	AnalyzeTranscript(ctx context.Context, transcript []models.TranscriptEntry, role string) (*models.InterviewAnalysis, error)
	AnalyzeResume(ctx context.Context, resumeText string) (*models.ResumeAnalysis, error)
}

type GatewayOptions struct {
	Timeout     time.Duration
	MaxAttempts int
	Temperature float32
}

type aiGateway struct {
	llm                LLMClient
	knowledge          KnowledgeBase
	promptBuilder      *PromptBuilder
	interviewExtractor *StructuredExtractor
	resumeExtractor    *StructuredExtractor
	opts               GatewayOptions
}

// NewAIGateway wires the model behind prompt building and response parsing.
// A nil llm yields a gateway that fails every call with ReasonDisabled.
func NewAIGateway(llm LLMClient, knowledge KnowledgeBase, opts GatewayOptions) AIGateway {
	if knowledge == nil {
		knowledge = NoKnowledgeBase()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 20 * time.Second
	}
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}

	return &aiGateway{
		llm:                llm,
		knowledge:          knowledge,
		promptBuilder:      NewPromptBuilder(),
		interviewExtractor: MustStructuredExtractor(interviewAnalysisSchema),
		resumeExtractor:    MustStructuredExtractor(resumeAnalysisSchema),
		opts:               opts,
	}
}

// GenerateQuestions implements AIGateway.
func (g *aiGateway) GenerateQuestions(ctx context.Context, role string) (questions []string, err error) {
	defer recoverInto(OpGenerateQuestions, &err)

	if g.llm == nil {
		return nil, &GatewayError{Op: OpGenerateQuestions, Reason: ReasonDisabled}
	}

	reference := g.knowledge.Retrieve(ctx, fmt.Sprintf("Interview questions and preparation for a %s position", role), DocTypeInterviewGuide)
	prompt := g.promptBuilder.BuildQuestionsPrompt(role, reference)

	text, err := g.complete(ctx, OpGenerateQuestions, prompt)
	if err != nil {
		return nil, err
	}

	questions, err = ParseNumberedQuestions(text)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Successfully generated %d questions with AI", len(questions))
	return questions, nil
}

// AnalyzeTranscript implements AIGateway.
func (g *aiGateway) AnalyzeTranscript(ctx context.Context, transcript []models.TranscriptEntry, role string) (analysis *models.InterviewAnalysis, err error) {
	defer recoverInto(OpAnalyzeTranscript, &err)

	if g.llm == nil {
		return nil, &GatewayError{Op: OpAnalyzeTranscript, Reason: ReasonDisabled}
	}

	reference := g.knowledge.Retrieve(ctx, fmt.Sprintf("How to evaluate interview answers for a %s position", role), DocTypeInterviewGuide)
	prompt := g.promptBuilder.BuildInterviewAnalysisPrompt(transcript, role, reference)

	text, err := g.complete(ctx, OpAnalyzeTranscript, prompt)
	if err != nil {
		return nil, err
	}

	var raw struct {
		OverallScore float64  `json:"overallScore"`
		Strengths    []string `json:"strengths"`
		Weaknesses   []string `json:"weaknesses"`
		Improvements []string `json:"improvements"`
		Resources    []string `json:"resources"`
		Summary      string   `json:"summary"`
	}
	if err := g.interviewExtractor.Extract(text, &raw); err != nil {
		return nil, extractionError(OpAnalyzeTranscript, err)
	}

	log.Println("✅ Successfully analyzed interview with AI")
	return &models.InterviewAnalysis{
		OverallScore: int(math.Round(raw.OverallScore)),
		Strengths:    raw.Strengths,
		Weaknesses:   raw.Weaknesses,
		Improvements: raw.Improvements,
		Resources:    raw.Resources,
		Summary:      raw.Summary,
	}, nil
}

// AnalyzeResume implements AIGateway.
func (g *aiGateway) AnalyzeResume(ctx context.Context, resumeText string) (analysis *models.ResumeAnalysis, err error) {
	defer recoverInto(OpAnalyzeResume, &err)

	if g.llm == nil {
		return nil, &GatewayError{Op: OpAnalyzeResume, Reason: ReasonDisabled}
	}

	cleaned := CleanText(resumeText)
	reference := g.knowledge.Retrieve(ctx, cleaned, DocTypeResumeGuide)
	prompt := g.promptBuilder.BuildResumeAnalysisPrompt(cleaned, reference)

	text, err := g.complete(ctx, OpAnalyzeResume, prompt)
	if err != nil {
		return nil, err
	}

	var raw struct {
		ATSScore    float64  `json:"atsScore"`
		Suggestions []string `json:"suggestions"`
	}
	if err := g.resumeExtractor.Extract(text, &raw); err != nil {
		return nil, extractionError(OpAnalyzeResume, err)
	}

	log.Println("✅ Resume analyzed successfully with AI")
	return &models.ResumeAnalysis{
		ATSScore:    int(math.Round(raw.ATSScore)),
		Suggestions: raw.Suggestions,
	}, nil
}

// complete runs one bounded model call. The timeout covers every attempt.
func (g *aiGateway) complete(ctx context.Context, op, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
	defer cancel()

	log.Printf("🤖 Sending %s request to model (%d characters)", op, len(prompt))

	text, err := g.llm.GenerateTextWithRetry(ctx, prompt, g.opts.Temperature, g.opts.MaxAttempts)
	if err != nil {
		reason := ReasonCallFailed
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			reason = ReasonTimeout
		}
		return "", &GatewayError{Op: op, Reason: reason, Cause: err}
	}

	return text, nil
}

var numberedLine = regexp.MustCompile(`^\d+\.\s*`)

// ParseNumberedQuestions keeps lines starting with "<n>." and strips the
// prefix. Exactly five such lines, each longer than ten characters, are
// required.
func ParseNumberedQuestions(text string) ([]string, error) {
	var questions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		loc := numberedLine.FindStringIndex(line)
		if loc == nil {
			continue
		}
		questions = append(questions, strings.TrimSpace(line[loc[1]:]))
	}

	if len(questions) != models.QuestionCount {
		return nil, &GatewayError{
			Op:     OpGenerateQuestions,
			Reason: ReasonWrongCount,
			Cause:  fmt.Errorf("got %d numbered lines, want %d", len(questions), models.QuestionCount),
		}
	}

	for i, q := range questions {
		if utf8.RuneCountInString(q) <= minQuestionLength {
			return nil, &GatewayError{
				Op:     OpGenerateQuestions,
				Reason: ReasonMalformed,
				Cause:  fmt.Errorf("question %d too short: %q", i+1, q),
			}
		}
	}

	return questions, nil
}

func extractionError(op string, err error) error {
	reason := ReasonInvalidJSON
	switch {
	case errors.Is(err, ErrNoJSONObject):
		reason = ReasonNoJSON
	case errors.Is(err, ErrUnbalancedJSON):
		reason = ReasonUnbalancedJSON
	case errors.Is(err, ErrMissingFields):
		reason = ReasonMissingFields
	}
	return &GatewayError{Op: op, Reason: reason, Cause: err}
}

func recoverInto(op string, err *error) {
	if r := recover(); r != nil {
		*err = &GatewayError{Op: op, Reason: ReasonInternal, Cause: fmt.Errorf("panic: %v", r)}
	}
}
