package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resumeCmd = &cobra.Command{
	Use:   "resume <file.pdf>",
	Short: "Score a PDF resume for ATS compatibility",
	Args:  cobra.ExactArgs(1),
	RunE:  runResume,
}

func init() {
	rootCmd.AddCommand(resumeCmd)
}

func runResume(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open resume %s: %w", path, err)
	}
	defer f.Close()

	resp, err := newClient().AnalyzeResume(cmd.Context(), path, f)
	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "📄 ATS score: %d/100 (source: %s)\n", resp.Analysis.ATSScore, resp.Source)
	printList(out, "Suggestions", resp.Analysis.Suggestions)
	return nil
}
