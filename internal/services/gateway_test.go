package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/virtual-panel/internal/models"
)

const fiveQuestions = `Here are your questions:
1. Tell me about a system you designed end to end.
2. How do you approach code reviews with senior colleagues?
3. Describe a production incident you helped resolve.
4. How do you decide between building and buying a component?
5. What would you improve in your current team's workflow?`

func newTestGateway(llm LLMClient, kb KnowledgeBase) AIGateway {
	return NewAIGateway(llm, kb, GatewayOptions{Timeout: time.Second, MaxAttempts: 1})
}

func TestParseNumberedQuestions(t *testing.T) {
	questions, err := ParseNumberedQuestions(fiveQuestions)
	require.NoError(t, err)
	assert.Len(t, questions, 5)
	assert.Equal(t, "Tell me about a system you designed end to end.", questions[0])
	assert.Equal(t, "What would you improve in your current team's workflow?", questions[4])
}

func TestParseNumberedQuestions_Failures(t *testing.T) {
	four := strings.Join(strings.Split(fiveQuestions, "\n")[:5], "\n")
	six := fiveQuestions + "\n6. Is there anything you would like to ask us?"
	short := strings.Replace(fiveQuestions, "3. Describe a production incident you helped resolve.", "3. Why?", 1)
	exactlyTen := strings.Replace(fiveQuestions, "3. Describe a production incident you helped resolve.", "3. 0123456789", 1)

	tests := []struct {
		name   string
		input  string
		reason FailureReason
	}{
		{name: "fewer than five", input: four, reason: ReasonWrongCount},
		{name: "more than five", input: six, reason: ReasonWrongCount},
		{name: "no numbering", input: "- one\n- two", reason: ReasonWrongCount},
		{name: "short candidate", input: short, reason: ReasonMalformed},
		{name: "ten characters is too short", input: exactlyTen, reason: ReasonMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNumberedQuestions(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.reason, ReasonOf(err))
		})
	}
}

func TestParseNumberedQuestions_IndentedAndTightNumbering(t *testing.T) {
	input := "  1.Tell me about your background.\n 2.   What drew you to this field?\n3. Describe your proudest achievement.\n4. How do you handle tight deadlines?\n5. Where do you want to grow next?"
	questions, err := ParseNumberedQuestions(input)
	require.NoError(t, err)
	assert.Equal(t, "Tell me about your background.", questions[0])
	assert.Equal(t, "What drew you to this field?", questions[1])
}

func TestGateway_Disabled(t *testing.T) {
	gw := newTestGateway(nil, nil)
	ctx := context.Background()

	_, err := gw.GenerateQuestions(ctx, "Nurse")
	assert.Equal(t, ReasonDisabled, ReasonOf(err))

	_, err = gw.AnalyzeTranscript(ctx, []models.TranscriptEntry{{Question: "q", Answer: "a"}}, "Nurse")
	assert.Equal(t, ReasonDisabled, ReasonOf(err))

	_, err = gw.AnalyzeResume(ctx, "text")
	assert.Equal(t, ReasonDisabled, ReasonOf(err))
}

func TestGateway_GenerateQuestions(t *testing.T) {
	llm := &fakeLLM{response: fiveQuestions}
	gw := newTestGateway(llm, nil)

	questions, err := gw.GenerateQuestions(context.Background(), "Platform Engineer")
	require.NoError(t, err)
	assert.Len(t, questions, 5)
	assert.Contains(t, llm.lastPrompt(), "for a Platform Engineer position")
	assert.NotContains(t, llm.lastPrompt(), "REFERENCE MATERIAL")
}

func TestGateway_CallFailures(t *testing.T) {
	t.Run("provider error", func(t *testing.T) {
		gw := newTestGateway(&fakeLLM{err: errBoom}, nil)
		_, err := gw.GenerateQuestions(context.Background(), "Nurse")
		assert.Equal(t, ReasonCallFailed, ReasonOf(err))
		assert.ErrorIs(t, err, errBoom)
	})

	t.Run("timeout", func(t *testing.T) {
		gw := NewAIGateway(&fakeLLM{block: true}, nil, GatewayOptions{Timeout: 20 * time.Millisecond})
		_, err := gw.AnalyzeResume(context.Background(), "text")
		assert.Equal(t, ReasonTimeout, ReasonOf(err))
	})

	t.Run("panic is recovered", func(t *testing.T) {
		gw := newTestGateway(&fakeLLM{panicWith: "nil map"}, nil)
		_, err := gw.AnalyzeTranscript(context.Background(), nil, "Nurse")
		assert.Equal(t, ReasonInternal, ReasonOf(err))
	})
}

func TestGateway_RetriesUpToMaxAttempts(t *testing.T) {
	llm := &fakeLLM{err: errBoom}
	gw := NewAIGateway(llm, nil, GatewayOptions{Timeout: time.Second, MaxAttempts: 3})

	_, err := gw.GenerateQuestions(context.Background(), "Nurse")
	assert.Equal(t, ReasonCallFailed, ReasonOf(err))
	assert.Equal(t, 3, llm.calls())
}

func TestGateway_AnalyzeTranscript(t *testing.T) {
	llm := &fakeLLM{response: "```json\n" + `{
  "overallScore": 82.6,
  "strengths": ["Clear structure", "Good examples", "Calm delivery"],
  "weaknesses": ["Rushed ending", "Few metrics", "Some filler"],
  "improvements": ["Quantify impact", "Slow down", "Use STAR"],
  "resources": ["Book A", "Course B", "Blog C"],
  "summary": "Solid performance overall."
}` + "\n```"}
	gw := newTestGateway(llm, nil)

	transcript := []models.TranscriptEntry{
		{Question: "Why this role?", Answer: "Because I like it.", QuestionNumber: 1},
		{Question: "Biggest failure?", Answer: "A missed deadline.", QuestionNumber: 2},
	}

	analysis, err := gw.AnalyzeTranscript(context.Background(), transcript, "Nurse")
	require.NoError(t, err)
	assert.Equal(t, 83, analysis.OverallScore)
	assert.Equal(t, "Solid performance overall.", analysis.Summary)
	assert.Len(t, analysis.Strengths, 3)

	prompt := llm.lastPrompt()
	assert.Contains(t, prompt, "Q1: Why this role?\nA1: Because I like it.")
	assert.Contains(t, prompt, "Q2: Biggest failure?\nA2: A missed deadline.")
}

func TestGateway_AnalyzeTranscriptBadShapes(t *testing.T) {
	tests := []struct {
		name     string
		response string
		reason   FailureReason
	}{
		{name: "prose only", response: "The candidate did well.", reason: ReasonNoJSON},
		{name: "truncated", response: `{"overallScore": 80, "strengths": [`, reason: ReasonUnbalancedJSON},
		{name: "not json", response: `{overallScore: 80}`, reason: ReasonInvalidJSON},
		{name: "missing fields", response: `{"overallScore": 80}`, reason: ReasonMissingFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newTestGateway(&fakeLLM{response: tt.response}, nil)
			_, err := gw.AnalyzeTranscript(context.Background(), nil, "Nurse")
			assert.Equal(t, tt.reason, ReasonOf(err))
		})
	}
}

func TestGateway_AnalyzeResume(t *testing.T) {
	llm := &fakeLLM{response: `Sure! {"atsScore": 67, "suggestions": ["Add a skills section", "Use bullet points"]}`}
	gw := newTestGateway(llm, nil)

	analysis, err := gw.AnalyzeResume(context.Background(), "  Jane Doe  \n\n\n  Engineer  ")
	require.NoError(t, err)
	assert.Equal(t, 67, analysis.ATSScore)
	assert.Equal(t, []string{"Add a skills section", "Use bullet points"}, analysis.Suggestions)
	assert.Contains(t, llm.lastPrompt(), "RESUME TEXT:\nJane Doe\nEngineer\n")
}

func TestGateway_AnalyzeResumeMissingFields(t *testing.T) {
	gw := newTestGateway(&fakeLLM{response: `{"score": 67}`}, nil)
	_, err := gw.AnalyzeResume(context.Background(), "text")
	assert.Equal(t, ReasonMissingFields, ReasonOf(err))
}

func TestGateway_UsesKnowledgeBase(t *testing.T) {
	llm := &fakeLLM{response: fiveQuestions, embedding: []float32{0.1, 0.2}}
	qd := &fakeQdrant{results: map[string][]SearchResult{
		DocTypeInterviewGuide: {{Text: "Ask about incident response.", Score: 0.91, DocType: DocTypeInterviewGuide}},
	}}
	gw := newTestGateway(llm, NewKnowledgeBase(llm, qd, 3))

	_, err := gw.GenerateQuestions(context.Background(), "SRE")
	require.NoError(t, err)

	assert.Equal(t, []string{DocTypeInterviewGuide}, qd.queried)
	assert.Contains(t, llm.lastPrompt(), "REFERENCE MATERIAL")
	assert.Contains(t, llm.lastPrompt(), "Ask about incident response.")
}

func TestReasonOf_NonGatewayError(t *testing.T) {
	assert.Equal(t, FailureReason(""), ReasonOf(errBoom))
	assert.Equal(t, FailureReason(""), ReasonOf(nil))
}
