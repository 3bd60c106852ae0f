// Package main implements the panel CLI, a terminal front end for the
// virtual interview panel API.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"alfredoptarigan/virtual-panel/internal/client"
)

var rootCmd = &cobra.Command{
	Use:          "panel",
	Short:        "Practice interviews and score resumes against the panel API",
	Long:         "panel drives the virtual interview panel API from the terminal: fetch role-specific questions, answer them one by one, and get scored feedback on the interview or on a PDF resume.",
	SilenceUsage: true,
}

var (
	apiURL     string
	apiTimeout time.Duration
)

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Panel API base URL (overrides PANEL_API_URL, default "+client.DefaultBaseURL+")")
	rootCmd.PersistentFlags().DurationVar(&apiTimeout, "timeout", 60*time.Second, "HTTP timeout per request")
}

func newClient() *client.Client {
	url := apiURL
	if url == "" {
		url = os.Getenv("PANEL_API_URL")
	}
	return client.New(url, apiTimeout)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
