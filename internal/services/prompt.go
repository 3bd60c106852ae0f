package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/virtual-panel/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionsPrompt asks for exactly five numbered questions.
func (pb *PromptBuilder) BuildQuestionsPrompt(role, reference string) string {
	return fmt.Sprintf(`Generate exactly 5 professional interview questions for a %s position.

Requirements:
- Questions should be relevant to the role
- Mix behavioral and technical questions
- Make them realistic and commonly asked
- Return only the questions, numbered 1-5
- Each question on a new line
- No additional text or explanations

Format:
1. [Question 1]
2. [Question 2]
3. [Question 3]
4. [Question 4]
5. [Question 5]%s`, role, referenceSection(reference))
}

// BuildInterviewAnalysisPrompt embeds the whole transcript and the JSON
// shape the answer must follow.
func (pb *PromptBuilder) BuildInterviewAnalysisPrompt(transcript []models.TranscriptEntry, role, reference string) string {
	return fmt.Sprintf(`Analyze this job interview transcript for a %s position:

%s

Provide a comprehensive analysis in the following JSON format:
{
  "overallScore": <score from 0-100>,
  "strengths": ["strength 1", "strength 2", "strength 3"],
  "weaknesses": ["weakness 1", "weakness 2", "weakness 3"],
  "improvements": ["improvement 1", "improvement 2", "improvement 3"],
  "resources": ["resource 1", "resource 2", "resource 3"],
  "summary": "Overall performance summary in 2-3 sentences"
}

Make the analysis specific, constructive, and actionable. Focus on communication skills, technical knowledge, and role-specific competencies.%s`,
		role, FormatTranscript(transcript), referenceSection(reference))
}

// BuildResumeAnalysisPrompt asks for an ATS score and suggestions.
func (pb *PromptBuilder) BuildResumeAnalysisPrompt(resumeText, reference string) string {
	return fmt.Sprintf(`Analyze this resume for ATS (Applicant Tracking System) compatibility and provide improvement suggestions:

RESUME TEXT:
%s

Please provide your analysis in the following JSON format:
{
  "atsScore": <number from 0-100>,
  "suggestions": [
    "suggestion 1",
    "suggestion 2",
    "suggestion 3",
    "suggestion 4",
    "suggestion 5"
  ]
}

Consider these ATS factors:
- Keyword usage and relevance
- Formatting and structure
- Contact information completeness
- Skills section clarity
- Work experience descriptions
- Education details
- Overall readability

Make suggestions specific and actionable.%s`, resumeText, referenceSection(reference))
}

// FormatTranscript renders "Qn:/An:" pairs in transcript order.
func FormatTranscript(transcript []models.TranscriptEntry) string {
	parts := make([]string, 0, len(transcript))
	for i, entry := range transcript {
		parts = append(parts, fmt.Sprintf("Q%d: %s\nA%d: %s", i+1, entry.Question, i+1, entry.Answer))
	}
	return strings.Join(parts, "\n\n")
}

func referenceSection(reference string) string {
	if strings.TrimSpace(reference) == "" {
		return ""
	}
	return "\n\nREFERENCE MATERIAL (use it to ground your answer, do not quote it):\n" + reference
}

// FormatRAGContext renders search hits for a prompt. No hits, no text.
func FormatRAGContext(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	var parts []string
	for i, result := range results {
		parts = append(parts, fmt.Sprintf("--- Context %d (Score: %.2f) ---\n%s",
			i+1, result.Score, strings.TrimSpace(result.Text)))
	}

	return strings.Join(parts, "\n\n")
}
