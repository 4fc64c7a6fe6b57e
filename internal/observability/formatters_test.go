package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintJobDescription(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	years := 5
	jd := &types.JobDescription{
		Company:                 "Acme Corp",
		JobTitle:                "Senior Backend Engineer",
		Category:                types.CategoryPythonBackend,
		RequiredExperienceYears: &years,
		RequiredSkills:          []string{"Python", "PostgreSQL", "Docker", "Kubernetes", "Redis", "Kafka"},
		PreferredSkills:         []string{"Terraform"},
	}

	p.PrintJobDescription(jd)
	output := buf.String()

	assert.Contains(t, output, "JOB DESCRIPTION")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "Senior Backend Engineer")
	assert.Contains(t, output, "python_backend")
	assert.Contains(t, output, "5+")
	assert.Contains(t, output, "... and 1 more")
	assert.Contains(t, output, "Terraform")
}

func TestPrintJobDescription_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobDescription(nil)

	assert.Empty(t, buf.String())
}

func TestPrintScoreReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	score := &types.ResumeScore{
		ResumeID:     "res_1",
		ResumeName:   "Jane Doe",
		OverallScore: 72.5,
		Breakdown: types.ScoreBreakdown{
			RequiredSkillsPct:  50.0,
			PreferredSkillsPct: 100.0,
		},
		KnockoutAlerts: []types.KnockoutAlert{
			{Skill: "Kubernetes", Severity: types.SeverityWarning, Message: "Required skill 'Kubernetes' not found in resume"},
		},
		MissingRequiredSkills: []string{"Kubernetes"},
	}

	p.PrintScoreReport(score)
	output := buf.String()

	assert.Contains(t, output, "SCORE REPORT")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "72.5")
	assert.Contains(t, output, "warning")
	assert.Contains(t, output, "Kubernetes")
}

func TestPrintScoreReport_FallsBackToID(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreReport(&types.ResumeScore{ResumeID: "res_anon", OverallScore: 10})

	assert.Contains(t, buf.String(), "res_anon")
}

func TestPrintRanking(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	ranking := &types.RankingResponse{
		JDID: "jd_1",
		Rankings: []types.ResumeScore{
			{ResumeID: "res_1", ResumeName: "First", OverallScore: 91.0},
			{ResumeID: "res_2", ResumeName: "Second", OverallScore: 64.2,
				KnockoutAlerts: []types.KnockoutAlert{{Skill: "Go", Severity: types.SeverityWarning}}},
		},
		TopResumeID: "res_1",
	}

	p.PrintRanking(ranking)
	output := buf.String()

	assert.Contains(t, output, "RANKING")
	assert.Contains(t, output, "#1  First")
	assert.Contains(t, output, "91.0")
	assert.Contains(t, output, "(1 alerts)")
}

func TestPrintRanking_EmptyPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRanking(&types.RankingResponse{JDID: "jd_1"})

	assert.Empty(t, buf.String())
}
