package session

import (
	"sync"

	"alfredoptarigan/virtual-panel/internal/models"
)

// Action is one of the types below. The set is closed.
type Action interface {
	isAction()
}

// SetUser merges the non-empty fields into the current user.
type SetUser struct {
	Name string
	Role string
}

type SetResumeAnalysis struct {
	Analysis models.ResumeAnalysis
}

type SetInterviewQuestions struct {
	Questions []string
}

type AddInterviewResponse struct {
	Entry models.TranscriptEntry
}

type SetInterviewAnalysis struct {
	Analysis models.InterviewAnalysis
}

type ResetInterview struct{}

func (SetUser) isAction()               {}
func (SetResumeAnalysis) isAction()     {}
func (SetInterviewQuestions) isAction() {}
func (AddInterviewResponse) isAction()  {}
func (SetInterviewAnalysis) isAction()  {}
func (ResetInterview) isAction()        {}

// Reduce returns the state after applying action. It never mutates the
// slices or pointers reachable from state.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case SetUser:
		if a.Name != "" {
			state.User.Name = a.Name
		}
		if a.Role != "" {
			state.User.Role = a.Role
		}
	case SetResumeAnalysis:
		analysis := a.Analysis
		analysis.Suggestions = append([]string(nil), a.Analysis.Suggestions...)
		state.ResumeAnalysis = &analysis
	case SetInterviewQuestions:
		state.Interview.Questions = append([]string(nil), a.Questions...)
	case AddInterviewResponse:
		responses := make([]models.TranscriptEntry, len(state.Interview.Responses), len(state.Interview.Responses)+1)
		copy(responses, state.Interview.Responses)
		state.Interview.Responses = append(responses, a.Entry)
	case SetInterviewAnalysis:
		analysis := a.Analysis
		state.Interview.Analysis = &analysis
	case ResetInterview:
		state.Interview = Interview{}
	}
	return state
}

// Store serializes dispatches against a single State.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore(initial State) *Store {
	return &Store{state: initial}
}

func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, action)
	return s.state
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
