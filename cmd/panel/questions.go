package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the interview questions for a role",
	Args:  cobra.NoArgs,
	RunE:  runQuestions,
}

var questionsRole string

func init() {
	questionsCmd.Flags().StringVarP(&questionsRole, "role", "r", "", "Target role (required)")

	if err := questionsCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	rootCmd.AddCommand(questionsCmd)
}

func runQuestions(cmd *cobra.Command, _ []string) error {
	resp, err := newClient().GenerateQuestions(cmd.Context(), questionsRole, "")
	if err != nil {
		return fmt.Errorf("failed to fetch questions: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (source: %s)\n\n", resp.Message, resp.Source)
	for i, q := range resp.Questions {
		fmt.Fprintf(out, "%d. %s\n", i+1, q)
	}
	return nil
}
