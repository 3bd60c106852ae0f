package fallback

import (
	"fmt"
	"math"
	"strings"

	"alfredoptarigan/virtual-panel/internal/models"
)

const (
	baseInterviewScore = 60
	maxFallbackScore   = 95
)

// ScoreInterview grades a transcript from answer length alone. It is pure:
// the same transcript and role always produce the same analysis.
func ScoreInterview(transcript []models.TranscriptEntry, role string) models.InterviewAnalysis {
	role = strings.TrimSpace(role)
	if role == "" {
		role = "your target role"
	}

	avgWords := AverageWords(transcript)

	score := baseInterviewScore
	// Both length bonuses stack: an average above 50 also clears 30.
	if avgWords > 50 {
		score += 15
	}
	if avgWords > 30 {
		score += 10
	}
	if len(transcript) == models.QuestionCount {
		score += 15
	}

	detail := "Participated actively"
	if avgWords > 30 {
		detail = "Gave detailed responses"
	}

	depth := "Could improve on specific examples"
	if avgWords < 20 {
		depth = "Responses could be more detailed"
	}

	return models.InterviewAnalysis{
		OverallScore: min(score, maxFallbackScore),
		Strengths: []string{
			"Completed the interview process",
			"Provided responses to all questions",
			detail,
		},
		Weaknesses: []string{
			depth,
			"Consider adding more concrete examples",
			"Work on structuring responses better",
		},
		Improvements: []string{
			"Practice the STAR method (Situation, Task, Action, Result) for behavioral questions",
			fmt.Sprintf("Research more about %s specific skills and technologies", role),
			"Prepare specific examples from your experience",
		},
		Resources: []string{
			"Cracking the Coding Interview (if technical role)",
			"LinkedIn Learning courses for professional skills",
			"Industry-specific blogs and publications",
		},
		Summary: fmt.Sprintf(
			"You completed the interview for %s and provided responses to all questions. With an average of %d words per answer, there's room to develop more comprehensive responses with specific examples.",
			role, avgWords,
		),
	}
}

// AverageWords is the rounded mean of whitespace-delimited words per answer.
// An empty transcript averages zero.
func AverageWords(transcript []models.TranscriptEntry) int {
	total := 0
	for _, entry := range transcript {
		total += len(strings.Fields(entry.Answer))
	}
	avg := float64(total) / float64(max(len(transcript), 1))
	return int(math.Floor(avg + 0.5))
}
