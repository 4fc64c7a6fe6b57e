package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one resume against a job description",
	Long:  "Score a structured resume JSON file against a structured job description JSON file and print the full score report.",
	RunE:  runScore,
}

var (
	scoreJDFile     string
	scoreResumeFile string
	scoreOutputFile string
	scoreAPIKey     string
	scoreConfigFile string
	scoreVerbose    bool
)

func init() {
	scoreCmd.Flags().StringVar(&scoreJDFile, "jd", "", "Path to job description JSON file (required)")
	scoreCmd.Flags().StringVar(&scoreResumeFile, "resume", "", "Path to resume JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	scoreCmd.Flags().StringVar(&scoreConfigFile, "config", "", "Path to JSON config file")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted report to stderr")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(scoreConfigFile, config.Config{
		JD:     scoreJDFile,
		Resume: scoreResumeFile,
		APIKey: scoreAPIKey,
	})
	if err != nil {
		return err
	}
	if cfg.JD == "" || cfg.Resume == "" {
		return fmt.Errorf("both --jd and --resume are required")
	}

	jd, err := loadJobDescription(cfg.JD)
	if err != nil {
		return err
	}
	resume, err := loadResume(cfg.Resume)
	if err != nil {
		return err
	}

	scorer, cleanup := newScorer(cfg.APIKey)
	defer cleanup()

	score := scorer.ScoreResume(cmd.Context(), jd, resume)

	if scoreVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintJobDescription(jd)
		printer.PrintScoreReport(&score)
	}

	return writeResult(scoreOutputFile, score)
}
