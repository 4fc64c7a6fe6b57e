package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const testJD = `{
	"id": "jd_cli",
	"job_title": "Backend Engineer",
	"required_skills": ["Python", "Kubernetes"]
}`

const testResume = `{
	"id": "res_cli",
	"name": "Jane Doe",
	"skills": ["Python", "K8s"]
}`

const testWeakResume = `{
	"id": "res_weak",
	"name": "John Doe",
	"skills": ["Photoshop"]
}`

func TestScoreCommand_WritesReport(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	jdPath := writeTempJSON(t, "jd.json", testJD)
	resumePath := writeTempJSON(t, "resume.json", testResume)
	outPath := filepath.Join(t.TempDir(), "score.json")

	rootCmd.SetArgs([]string{"score", "--jd", jdPath, "--resume", resumePath, "--out", outPath})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var score types.ResumeScore
	require.NoError(t, json.Unmarshal(data, &score))
	assert.Equal(t, "res_cli", score.ResumeID)
	assert.Equal(t, 100.0, score.Breakdown.RequiredSkillsPct)
}

func TestScoreCommand_MissingFlags(t *testing.T) {
	scoreJDFile = ""
	scoreResumeFile = ""
	rootCmd.SetArgs([]string{"score"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestScoreCommand_BadResumeFile(t *testing.T) {
	jdPath := writeTempJSON(t, "jd.json", testJD)
	resumePath := writeTempJSON(t, "resume.json", `{"skills": ["Go"]}`)

	rootCmd.SetArgs([]string{"score", "--jd", jdPath, "--resume", resumePath})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse resume file")
}

func TestRankCommand_RanksResumes(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	jdPath := writeTempJSON(t, "jd.json", testJD)
	strongPath := writeTempJSON(t, "strong.json", testResume)
	weakPath := writeTempJSON(t, "weak.json", testWeakResume)
	outPath := filepath.Join(t.TempDir(), "ranking.json")

	rootCmd.SetArgs([]string{
		"rank", "--jd", jdPath,
		"--resume", strongPath, "--resume", weakPath,
		"--out", outPath,
	})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var ranking types.RankingResponse
	require.NoError(t, json.Unmarshal(data, &ranking))
	require.Len(t, ranking.Rankings, 2)
	assert.Equal(t, "jd_cli", ranking.JDID)
	assert.Equal(t, "res_cli", ranking.TopResumeID)
}

func TestCompareCommand_ReportsDelta(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	jdPath := writeTempJSON(t, "jd.json", testJD)
	beforePath := writeTempJSON(t, "before.json", testWeakResume)
	afterPath := writeTempJSON(t, "after.json", testResume)
	outPath := filepath.Join(t.TempDir(), "comparison.json")

	rootCmd.SetArgs([]string{
		"compare", "--jd", jdPath,
		"--before", beforePath, "--after", afterPath,
		"--out", outPath,
	})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var cmp types.ScoreComparison
	require.NoError(t, json.Unmarshal(data, &cmp))
	assert.Positive(t, cmp.ImprovementPct)
	assert.NotEmpty(t, cmp.KeywordsAdded)
}

func TestResolveConfig_FlagsBeatFileBeatsEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://env/db")

	cfgPath := writeTempJSON(t, "config.json", `{"api_key": "file-key", "port": 9000}`)

	cfg, err := resolveConfig(cfgPath, config.Config{APIKey: "flag-key"})
	require.NoError(t, err)

	assert.Equal(t, "flag-key", cfg.APIKey)
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
	assert.Equal(t, 9000, cfg.Port)
}

func TestResolveConfig_EnvOnly(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "")

	cfg, err := resolveConfig("", config.Config{})
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 8080, cfg.Port)
}

func TestWriteResult_ToFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, writeResult(outPath, map[string]int{"answer": 42}))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"answer": 42`)
}
