package models

// Source tells the client which path produced a payload.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

type QuestionsResponse struct {
	Success   bool     `json:"success"`
	Questions []string `json:"questions"`
	Message   string   `json:"message"`
	Source    Source   `json:"source"`
}

type InterviewAnalysisResponse struct {
	Success  bool              `json:"success"`
	Analysis InterviewAnalysis `json:"analysis"`
	Message  string            `json:"message"`
	Source   Source            `json:"source"`
}

type ResumeAnalysisResponse struct {
	Success  bool           `json:"success"`
	Analysis ResumeAnalysis `json:"analysis"`
	Message  string         `json:"message"`
	Source   Source         `json:"source"`
}

type HealthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the hard-failure envelope. Error carries raw detail only
// in development.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
