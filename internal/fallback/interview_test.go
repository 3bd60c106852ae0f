package fallback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"alfredoptarigan/virtual-panel/internal/models"
)

func transcriptOf(entries, wordsPerAnswer int) []models.TranscriptEntry {
	out := make([]models.TranscriptEntry, entries)
	for i := range out {
		out[i] = models.TranscriptEntry{
			Question:       "Question?",
			Answer:         strings.TrimSpace(strings.Repeat("word ", wordsPerAnswer)),
			QuestionNumber: i + 1,
		}
	}
	return out
}

func TestScoreInterview_Scores(t *testing.T) {
	tests := []struct {
		name     string
		entries  int
		words    int
		expected int
	}{
		{name: "full and long answers cap at 95", entries: 5, words: 55, expected: 95},
		{name: "short partial interview", entries: 3, words: 10, expected: 60},
		{name: "full interview with medium answers", entries: 5, words: 35, expected: 85},
		{name: "partial interview with long answers", entries: 4, words: 60, expected: 85},
		{name: "full interview with short answers", entries: 5, words: 5, expected: 75},
		{name: "exactly 50 words gets one bonus", entries: 3, words: 50, expected: 70},
		{name: "exactly 30 words gets no bonus", entries: 3, words: 30, expected: 60},
		{name: "empty transcript", entries: 0, words: 0, expected: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreInterview(transcriptOf(tt.entries, tt.words), "Software Developer")
			assert.Equal(t, tt.expected, got.OverallScore)
		})
	}
}

func TestScoreInterview_Deterministic(t *testing.T) {
	transcript := transcriptOf(5, 42)
	assert.Equal(t, ScoreInterview(transcript, "Nurse"), ScoreInterview(transcript, "Nurse"))
}

func TestScoreInterview_Sections(t *testing.T) {
	short := ScoreInterview(transcriptOf(5, 10), "Data Scientist")
	assert.Equal(t, "Participated actively", short.Strengths[2])
	assert.Equal(t, "Responses could be more detailed", short.Weaknesses[0])
	assert.Equal(t, "Research more about Data Scientist specific skills and technologies", short.Improvements[1])
	assert.Contains(t, short.Summary, "an average of 10 words per answer")
	assert.Contains(t, short.Summary, "the interview for Data Scientist")

	long := ScoreInterview(transcriptOf(5, 40), "Data Scientist")
	assert.Equal(t, "Gave detailed responses", long.Strengths[2])
	assert.Equal(t, "Could improve on specific examples", long.Weaknesses[0])

	for _, a := range []models.InterviewAnalysis{short, long} {
		assert.Len(t, a.Strengths, 3)
		assert.Len(t, a.Weaknesses, 3)
		assert.Len(t, a.Improvements, 3)
		assert.Len(t, a.Resources, 3)
	}
}

func TestScoreInterview_EmptyRole(t *testing.T) {
	got := ScoreInterview(transcriptOf(1, 3), "  ")
	assert.Equal(t, "Research more about your target role specific skills and technologies", got.Improvements[1])
	assert.Contains(t, got.Summary, "the interview for your target role")
}

func TestAverageWords(t *testing.T) {
	tests := []struct {
		name     string
		answers  []string
		expected int
	}{
		{name: "empty", answers: nil, expected: 0},
		{name: "missing answers count zero", answers: []string{"", ""}, expected: 0},
		{name: "rounds half up", answers: []string{"one", "one two"}, expected: 2},
		{name: "rounds down", answers: []string{"one", "one", "one two"}, expected: 1},
		{name: "collapses whitespace", answers: []string{"  one\ttwo \n three  "}, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var transcript []models.TranscriptEntry
			for _, a := range tt.answers {
				transcript = append(transcript, models.TranscriptEntry{Answer: a})
			}
			assert.Equal(t, tt.expected, AverageWords(transcript))
		})
	}
}
