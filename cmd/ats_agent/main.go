// Package main provides the entry point for the resume matcher CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_agent",
	Short: "ATS resume compatibility scorer",
	Long:  "ats_agent scores structured resumes against structured job descriptions the way an applicant tracking system would, and ranks candidate pools per job description.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
