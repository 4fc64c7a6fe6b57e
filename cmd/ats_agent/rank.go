package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank multiple resumes against a job description",
	Long:  "Score every given resume JSON file against one job description and print the ranking, best match first.",
	RunE:  runRank,
}

var (
	rankJDFile      string
	rankResumeFiles []string
	rankOutputFile  string
	rankAPIKey      string
	rankConfigFile  string
	rankVerbose     bool
)

func init() {
	rankCmd.Flags().StringVar(&rankJDFile, "jd", "", "Path to job description JSON file (required)")
	rankCmd.Flags().StringSliceVar(&rankResumeFiles, "resume", nil, "Path to a resume JSON file (repeatable)")
	rankCmd.Flags().StringVarP(&rankOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	rankCmd.Flags().StringVar(&rankAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	rankCmd.Flags().StringVar(&rankConfigFile, "config", "", "Path to JSON config file")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print a formatted ranking to stderr")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(rankConfigFile, config.Config{
		JD:      rankJDFile,
		Resumes: rankResumeFiles,
		APIKey:  rankAPIKey,
	})
	if err != nil {
		return err
	}
	if cfg.JD == "" {
		return fmt.Errorf("--jd is required")
	}
	if len(cfg.Resumes) == 0 {
		return fmt.Errorf("at least one --resume is required")
	}

	jd, err := loadJobDescription(cfg.JD)
	if err != nil {
		return err
	}

	resumes := make([]types.CandidateResume, 0, len(cfg.Resumes))
	for _, path := range cfg.Resumes {
		resume, err := loadResume(path)
		if err != nil {
			return err
		}
		resumes = append(resumes, *resume)
	}

	scorer, cleanup := newScorer(cfg.APIKey)
	defer cleanup()

	ranking := scorer.RankResumes(cmd.Context(), jd, resumes)

	if rankVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintJobDescription(jd)
		printer.PrintRanking(&ranking)
	}

	return writeResult(rankOutputFile, ranking)
}
