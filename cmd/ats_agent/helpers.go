package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// loadJobDescription reads and parses a job description JSON file.
func loadJobDescription(path string) (*types.JobDescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jd file: %w", err)
	}
	jd, err := parsing.ParseJobDescription(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse jd file %s: %w", path, err)
	}
	return jd, nil
}

// loadResume reads and parses a resume JSON file.
func loadResume(path string) (*types.CandidateResume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	resume, err := parsing.ParseCandidateResume(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse resume file %s: %w", path, err)
	}
	return resume, nil
}

// newScorer builds a scorer, using the Gemini oracle when an API key is
// available and the keyword-only fallback otherwise. The returned cleanup
// releases the oracle's client.
func newScorer(apiKey string) (*scoring.Scorer, func()) {
	var oracle embedding.Oracle = embedding.Unavailable{}
	cleanup := func() {}
	if apiKey != "" {
		gemini := embedding.NewGeminiOracle(apiKey, "")
		oracle = gemini
		cleanup = func() { _ = gemini.Close() }
	}
	return scoring.NewScorer(skills.NewNormalizer(), oracle), cleanup
}

// writeResult writes v as indented JSON to the given path, or to stdout when
// the path is empty.
func writeResult(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if path == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// resolveConfig layers flag values over an optional config file over the
// environment.
func resolveConfig(configPath string, flags config.Config) (config.Config, error) {
	defaults := config.FromEnv()
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		defaults = fileCfg.MergeWithDefaults(defaults)
	}
	merged := flags.MergeWithDefaults(defaults)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}
