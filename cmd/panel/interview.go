package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"alfredoptarigan/virtual-panel/internal/models"
	"alfredoptarigan/virtual-panel/internal/session"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run an interactive mock interview",
	Long:  "Fetches questions for the role, reads one answer per question from stdin (a single line each), then submits the transcript and prints the panel's feedback.",
	Args:  cobra.NoArgs,
	RunE:  runInterview,
}

var (
	interviewRole string
	interviewName string
)

var errInputEnded = errors.New("input ended before the interview finished")

func init() {
	interviewCmd.Flags().StringVarP(&interviewRole, "role", "r", "", "Target role (required)")
	interviewCmd.Flags().StringVarP(&interviewName, "name", "n", "", "Candidate name")

	if err := interviewCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	rootCmd.AddCommand(interviewCmd)
}

func runInterview(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	api := newClient()

	store := session.NewStore(session.NewState())
	store.Dispatch(session.SetUser{Name: interviewName, Role: interviewRole})

	qs, err := api.GenerateQuestions(ctx, interviewRole, interviewName)
	if err != nil {
		return fmt.Errorf("failed to fetch questions: %w", err)
	}
	state := store.Dispatch(session.SetInterviewQuestions{Questions: qs.Questions})

	greeting := "Welcome"
	if state.User.Name != "" {
		greeting += ", " + state.User.Name
	}
	fmt.Fprintf(out, "%s! Interview for %s, %d questions. Answer each on one line.\n", greeting, state.User.Role, len(qs.Questions))

	if err := collectAnswers(cmd.InOrStdin(), out, store); err != nil {
		return err
	}

	state = store.State()
	fmt.Fprintln(out, "\n🔍 Analyzing your interview...")
	resp, err := api.AnalyzeInterview(ctx, state.Interview.Responses, state.User.Role, state.User.Name)
	if err != nil {
		return fmt.Errorf("failed to analyze interview: %w", err)
	}
	state = store.Dispatch(session.SetInterviewAnalysis{Analysis: resp.Analysis})

	printInterviewAnalysis(out, *state.Interview.Analysis, resp.Source)
	return nil
}

// collectAnswers asks every unanswered question in the store. Blank lines
// are ignored.
func collectAnswers(in io.Reader, out io.Writer, store *session.Store) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		question, number, ok := store.State().Interview.NextQuestion()
		if !ok {
			return nil
		}

		fmt.Fprintf(out, "\nQ%d: %s\n> ", number, question)

		answer := ""
		for answer == "" {
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("failed to read answer: %w", err)
				}
				return errInputEnded
			}
			answer = strings.TrimSpace(scanner.Text())
		}

		store.Dispatch(session.AddInterviewResponse{Entry: models.TranscriptEntry{
			Question:       question,
			Answer:         answer,
			QuestionNumber: number,
		}})
	}
}

func printInterviewAnalysis(out io.Writer, a models.InterviewAnalysis, source models.Source) {
	fmt.Fprintf(out, "\n🎯 Overall score: %d/100 (source: %s)\n", a.OverallScore, source)
	printList(out, "Strengths", a.Strengths)
	printList(out, "Weaknesses", a.Weaknesses)
	printList(out, "Improvements", a.Improvements)
	printList(out, "Resources", a.Resources)
	fmt.Fprintf(out, "\n%s\n", a.Summary)
}

func printList(out io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(out, "  - %s\n", item)
	}
}
