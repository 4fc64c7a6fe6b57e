package main

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two versions of a resume against a job description",
	Long:  "Score a before and after version of the same resume against one job description and report the score delta and newly covered skills.",
	RunE:  runCompare,
}

var (
	compareJDFile     string
	compareBeforeFile string
	compareAfterFile  string
	compareOutputFile string
	compareAPIKey     string
)

func init() {
	compareCmd.Flags().StringVar(&compareJDFile, "jd", "", "Path to job description JSON file (required)")
	compareCmd.Flags().StringVar(&compareBeforeFile, "before", "", "Path to the original resume JSON file (required)")
	compareCmd.Flags().StringVar(&compareAfterFile, "after", "", "Path to the revised resume JSON file (required)")
	compareCmd.Flags().StringVarP(&compareOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	compareCmd.Flags().StringVar(&compareAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig("", config.Config{
		JD:     compareJDFile,
		APIKey: compareAPIKey,
	})
	if err != nil {
		return err
	}
	if cfg.JD == "" || compareBeforeFile == "" || compareAfterFile == "" {
		return fmt.Errorf("--jd, --before, and --after are required")
	}

	jd, err := loadJobDescription(cfg.JD)
	if err != nil {
		return err
	}
	before, err := loadResume(compareBeforeFile)
	if err != nil {
		return err
	}
	after, err := loadResume(compareAfterFile)
	if err != nil {
		return err
	}

	scorer, cleanup := newScorer(cfg.APIKey)
	defer cleanup()

	comparison := scorer.Compare(cmd.Context(), jd, before, after)
	return writeResult(compareOutputFile, comparison)
}
