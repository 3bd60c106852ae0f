// Package session holds the client-side state of one practice session:
// who the candidate is, their latest resume score, and the interview in
// progress.
package session

import (
	"github.com/google/uuid"

	"alfredoptarigan/virtual-panel/internal/models"
)

type User struct {
	Name string
	Role string
}

type Interview struct {
	Questions []string
	Responses []models.TranscriptEntry
	Analysis  *models.InterviewAnalysis
}

type State struct {
	ID             string
	User           User
	ResumeAnalysis *models.ResumeAnalysis
	Interview      Interview
}

func NewState() State {
	return State{ID: uuid.NewString()}
}

// Complete reports whether every fetched question has an answer.
func (i Interview) Complete() bool {
	return len(i.Questions) > 0 && len(i.Responses) >= len(i.Questions)
}

// NextQuestion returns the first unanswered question and its 1-based number.
func (i Interview) NextQuestion() (string, int, bool) {
	n := len(i.Responses)
	if n >= len(i.Questions) {
		return "", 0, false
	}
	return i.Questions[n], n + 1, true
}
