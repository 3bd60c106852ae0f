package fallback

import (
	"strings"

	"alfredoptarigan/virtual-panel/internal/models"
)

const baseResumeScore = 40

type resumeCheck struct {
	passed     func(lower, raw string) bool
	points     int
	suggestion string
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// Checks run in this order; a failed check contributes its suggestion.
var resumeChecks = []resumeCheck{
	{
		passed:     func(l, _ string) bool { return containsAny(l, "experience", "work") },
		points:     10,
		suggestion: "Use standard section headings (Experience, Education, Skills)",
	},
	{
		passed:     func(l, _ string) bool { return containsAny(l, "education", "degree") },
		points:     10,
		suggestion: "Use standard section headings (Experience, Education, Skills)",
	},
	{
		passed:     func(l, _ string) bool { return containsAny(l, "skills", "technical") },
		points:     10,
		suggestion: "Include relevant technical skills for your field",
	},
	{
		passed:     func(l, _ string) bool { return strings.Contains(l, "email") && strings.Contains(l, "phone") },
		points:     10,
		suggestion: "Ensure contact information is clearly visible",
	},
	{
		passed:     func(l, _ string) bool { return containsAny(l, "project", "achievement") },
		points:     10,
		suggestion: "Include quantifiable achievements with numbers",
	},
	{
		passed:     func(_, r string) bool { return containsAny(r, "•", "-") },
		points:     5,
		suggestion: "Use bullet points to improve readability",
	},
	{
		passed:     func(_, r string) bool { return len(strings.Split(r, "\n")) > 20 },
		points:     5,
		suggestion: "Use standard section headings (Experience, Education, Skills)",
	},
}

// Always worth saying regardless of which checks passed.
var generalResumeSuggestions = []string{
	"Add more relevant keywords for your target role",
	"Add a professional summary section",
}

// ScoreResume estimates ATS compatibility from keyword and layout checks.
// Suggestions list what the failed checks point at, followed by the
// general advice, without duplicates.
func ScoreResume(text string) models.ResumeAnalysis {
	lower := strings.ToLower(text)

	score := baseResumeScore
	var suggestions []string
	seen := make(map[string]bool)
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			suggestions = append(suggestions, s)
		}
	}

	for _, check := range resumeChecks {
		if check.passed(lower, text) {
			score += check.points
			continue
		}
		add(check.suggestion)
	}
	for _, s := range generalResumeSuggestions {
		add(s)
	}

	return models.ResumeAnalysis{
		ATSScore:    min(score, maxFallbackScore),
		Suggestions: suggestions,
	}
}
