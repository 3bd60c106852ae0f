package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesOrder(t *testing.T) {
	assert.Equal(t, []string{"software developer", "data scientist", "marketing manager"}, Categories())
}

func TestSelectQuestions_SoftwareRoles(t *testing.T) {
	want := []string{
		"Tell me about yourself and your programming background.",
		"Describe a challenging technical problem you solved recently.",
		"How do you stay updated with new technologies and programming trends?",
		"Explain your approach to debugging a complex issue.",
		"What programming languages and frameworks are you most comfortable with?",
	}

	roles := []string{
		"Software Developer",
		"senior software developer",
		"  SOFTWARE DEVELOPER II  ",
		"software",
		"Lead Software Developer (Backend)",
	}

	for _, role := range roles {
		t.Run(role, func(t *testing.T) {
			assert.Equal(t, want, SelectQuestions(role))
		})
	}
}

func TestSelectQuestions_Categories(t *testing.T) {
	tests := []struct {
		role     string
		category string
	}{
		{role: "Data Scientist", category: "data scientist"},
		{role: "principal data scientist", category: "data scientist"},
		{role: "Marketing Manager", category: "marketing manager"},
		{role: "marketing", category: "marketing manager"},
		{role: "Chef", category: DefaultCategory},
		{role: "Airline Pilot", category: DefaultCategory},
		{role: "default", category: DefaultCategory},
		// Matching is on the whole category name, not on the word "software".
		{role: "Software Engineer", category: DefaultCategory},
		{role: "Senior Software Engineer", category: DefaultCategory},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			assert.Equal(t, questionsFor(t, tt.category), SelectQuestions(tt.role))
		})
	}
}

func TestSelectQuestions_FirstMatchWins(t *testing.T) {
	// Both "software developer" and "data scientist" are contained in the
	// role; the earlier catalog entry wins.
	got := SelectQuestions("data scientist turned software developer")
	assert.Equal(t, questionsFor(t, "software developer"), got)
}

func TestSelectQuestions_AlwaysFive(t *testing.T) {
	for _, role := range []string{"x", "Nurse", "data", "software developer", "", "Teacher of Marketing Manager Skills"} {
		assert.Len(t, SelectQuestions(role), 5, "role %q", role)
	}
}

func TestSelectQuestions_ReturnsCopy(t *testing.T) {
	first := SelectQuestions("software developer")
	first[0] = "mutated"

	second := SelectQuestions("software developer")
	assert.NotEqual(t, "mutated", second[0])
}

func TestParseCatalog_Errors(t *testing.T) {
	_, _, err := parseCatalog([]byte("categories:\n  - name: a\n    questions: [one]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has 1 questions")

	_, _, err = parseCatalog([]byte("categories:\n  - name: a\n    questions: [1, 2, 3, 4, 5]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no \"default\" category")

	_, _, err = parseCatalog([]byte("categories: [\n"))
	require.Error(t, err)
}

func questionsFor(t *testing.T, category string) []string {
	t.Helper()
	if category == DefaultCategory {
		return defaultQuestion
	}
	for _, c := range categories {
		if c.Name == category {
			return c.Questions
		}
	}
	t.Fatalf("unknown category %q", category)
	return nil
}
