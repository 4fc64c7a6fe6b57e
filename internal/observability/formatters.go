// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobDescription outputs a human-readable summary of a job description.
func (p *Printer) PrintJobDescription(jd *types.JobDescription) {
	if jd == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", jd.Company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", jd.JobTitle))
	if jd.Category != "" {
		sb.WriteString(fmt.Sprintf("Category: %s\n", jd.Category))
	}
	if jd.RequiredExperienceYears != nil {
		sb.WriteString(fmt.Sprintf("Years:    %d+\n", *jd.RequiredExperienceYears))
	}
	sb.WriteString("\n")

	if len(jd.RequiredSkills) > 0 {
		sb.WriteString("Required Skills:\n")
		count := min(len(jd.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", jd.RequiredSkills[i]))
		}
		if len(jd.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(jd.RequiredSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(jd.PreferredSkills) > 0 {
		sb.WriteString("Preferred Skills:\n")
		count := min(len(jd.PreferredSkills), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", jd.PreferredSkills[i]))
		}
		if len(jd.PreferredSkills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(jd.PreferredSkills)-3))
		}
	}

	p.printBox("JOB DESCRIPTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreReport outputs a resume score with its factor breakdown and
// knockout alerts.
func (p *Printer) PrintScoreReport(score *types.ResumeScore) {
	if score == nil {
		return
	}

	var sb strings.Builder

	name := score.ResumeName
	if name == "" {
		name = score.ResumeID
	}
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", name))
	sb.WriteString(fmt.Sprintf("Overall:   %.1f / 100\n\n", score.OverallScore))

	sb.WriteString("Breakdown:\n")
	sb.WriteString(fmt.Sprintf("  Required skills     %5.1f\n", score.Breakdown.RequiredSkillsPct))
	sb.WriteString(fmt.Sprintf("  Preferred skills    %5.1f\n", score.Breakdown.PreferredSkillsPct))
	sb.WriteString(fmt.Sprintf("  Title similarity    %5.1f\n", score.Breakdown.TitleSimilarityPct))
	sb.WriteString(fmt.Sprintf("  Experience          %5.1f\n", score.Breakdown.ExperienceRelevancePct))
	sb.WriteString(fmt.Sprintf("  Years fit           %5.1f\n", score.Breakdown.YearsExperienceFitPct))
	sb.WriteString(fmt.Sprintf("  Education           %5.1f\n", score.Breakdown.EducationMatchPct))

	if len(score.KnockoutAlerts) > 0 {
		sb.WriteString("\nKnockout Alerts:\n")
		for _, alert := range score.KnockoutAlerts {
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", alert.Severity, alert.Skill))
		}
	}

	if len(score.MissingRequiredSkills) > 0 {
		missing := strings.Join(score.MissingRequiredSkills, ", ")
		sb.WriteString(fmt.Sprintf("\nMissing: %s\n", missing))
	}

	p.printBox("SCORE REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the ranked resumes for a job description.
func (p *Printer) PrintRanking(ranking *types.RankingResponse) {
	if ranking == nil || len(ranking.Rankings) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resumes ranked: %d\n\n", len(ranking.Rankings)))

	count := min(len(ranking.Rankings), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := ranking.Rankings[i]
		name := entry.ResumeName
		if name == "" {
			name = entry.ResumeID
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    Score: %.1f", entry.OverallScore))
		if len(entry.KnockoutAlerts) > 0 {
			sb.WriteString(fmt.Sprintf("  (%d alerts)", len(entry.KnockoutAlerts)))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranking.Rankings) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more resumes", len(ranking.Rankings)-maxItemsToShow))
	}

	p.printBox("RANKING", sb.String())
}
