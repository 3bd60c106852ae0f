package session

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/virtual-panel/internal/models"
)

func TestNewState(t *testing.T) {
	s := NewState()

	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)
	assert.Empty(t, s.User)
	assert.Nil(t, s.ResumeAnalysis)
	assert.Empty(t, s.Interview.Questions)
	assert.NotEqual(t, s.ID, NewState().ID)
}

func TestReduce_SetUserMerges(t *testing.T) {
	s := Reduce(NewState(), SetUser{Name: "Ana", Role: "Designer"})
	s = Reduce(s, SetUser{Role: "Product Designer"})

	assert.Equal(t, User{Name: "Ana", Role: "Product Designer"}, s.User)
}

func TestReduce_InterviewFlow(t *testing.T) {
	s := Reduce(NewState(), SetInterviewQuestions{Questions: []string{"Q1", "Q2"}})

	q, n, ok := s.Interview.NextQuestion()
	require.True(t, ok)
	assert.Equal(t, "Q1", q)
	assert.Equal(t, 1, n)
	assert.False(t, s.Interview.Complete())

	s = Reduce(s, AddInterviewResponse{Entry: models.TranscriptEntry{Question: "Q1", Answer: "A1", QuestionNumber: 1}})
	s = Reduce(s, AddInterviewResponse{Entry: models.TranscriptEntry{Question: "Q2", Answer: "A2", QuestionNumber: 2}})

	_, _, ok = s.Interview.NextQuestion()
	assert.False(t, ok)
	assert.True(t, s.Interview.Complete())
	assert.Len(t, s.Interview.Responses, 2)

	s = Reduce(s, SetInterviewAnalysis{Analysis: models.InterviewAnalysis{OverallScore: 77}})
	require.NotNil(t, s.Interview.Analysis)
	assert.Equal(t, 77, s.Interview.Analysis.OverallScore)

	id := s.ID
	s = Reduce(s, ResetInterview{})
	assert.Equal(t, Interview{}, s.Interview)
	assert.Equal(t, id, s.ID)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	questions := []string{"Q1"}
	before := Reduce(NewState(), SetInterviewQuestions{Questions: questions})
	before = Reduce(before, AddInterviewResponse{Entry: models.TranscriptEntry{Answer: "first"}})

	after := Reduce(before, AddInterviewResponse{Entry: models.TranscriptEntry{Answer: "second"}})
	questions[0] = "changed"

	assert.Len(t, before.Interview.Responses, 1)
	assert.Len(t, after.Interview.Responses, 2)
	assert.Equal(t, "Q1", after.Interview.Questions[0])
}

func TestReduce_ResumeAnalysisIsCopied(t *testing.T) {
	suggestions := []string{"Add metrics"}
	s := Reduce(NewState(), SetResumeAnalysis{Analysis: models.ResumeAnalysis{ATSScore: 60, Suggestions: suggestions}})
	suggestions[0] = "changed"

	require.NotNil(t, s.ResumeAnalysis)
	assert.Equal(t, 60, s.ResumeAnalysis.ATSScore)
	assert.Equal(t, []string{"Add metrics"}, s.ResumeAnalysis.Suggestions)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	store := NewStore(NewState())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.Dispatch(AddInterviewResponse{Entry: models.TranscriptEntry{QuestionNumber: i + 1}})
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.State().Interview.Responses, 50)
}
