package models

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// QuestionCount is the fixed size of every question set.
const QuestionCount = 5

type QuestionsRequest struct {
	Role string `json:"role" validate:"required"`
	Name string `json:"name"`
}

// UnmarshalJSON accepts any JSON type for name, which is never read.
func (r *QuestionsRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Role string          `json:"role"`
		Name json.RawMessage `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Role = raw.Role
	r.Name = lenientString(raw.Name)
	return nil
}

func (r *QuestionsRequest) Validate() error {
	r.Role = strings.TrimSpace(r.Role)
	return validate.Struct(r)
}

type TranscriptEntry struct {
	Question       string `json:"question"`
	Answer         string `json:"answer"`
	QuestionNumber int    `json:"questionNumber"`
}

// UnmarshalJSON tolerates a questionNumber sent as a numeric string, and
// drops any other mistyped field to its zero value.
func (e *TranscriptEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Question       json.RawMessage `json:"question"`
		Answer         json.RawMessage `json:"answer"`
		QuestionNumber json.RawMessage `json:"questionNumber"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.Question = lenientString(raw.Question)
	e.Answer = lenientString(raw.Answer)
	e.QuestionNumber = lenientInt(raw.QuestionNumber)
	return nil
}

type AnalyzeInterviewRequest struct {
	Transcript []TranscriptEntry `json:"transcript" validate:"required,min=1"`
	Role       string            `json:"role"`
	Name       string            `json:"name"`
}

// UnmarshalJSON decodes the transcript strictly; role and name are lenient.
func (r *AnalyzeInterviewRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Transcript []TranscriptEntry `json:"transcript"`
		Role       json.RawMessage   `json:"role"`
		Name       json.RawMessage   `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Transcript = raw.Transcript
	r.Role = lenientString(raw.Role)
	r.Name = lenientString(raw.Name)
	return nil
}

func (r *AnalyzeInterviewRequest) Validate() error {
	r.Role = strings.TrimSpace(r.Role)
	return validate.Struct(r)
}

type InterviewAnalysis struct {
	OverallScore int      `json:"overallScore"`
	Strengths    []string `json:"strengths"`
	Weaknesses   []string `json:"weaknesses"`
	Improvements []string `json:"improvements"`
	Resources    []string `json:"resources"`
	Summary      string   `json:"summary"`
}
