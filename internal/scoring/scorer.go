// Package scoring computes ATS compatibility scores between a structured
// job description and structured candidate resumes. Scoring is total: every
// input combination produces a complete report and no operation returns an
// error.
package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Aggregation weights for the six factors. These are contractual constants,
// not configuration; they sum to 1.0.
const (
	weightRequiredSkills      = 0.35
	weightPreferredSkills     = 0.15
	weightTitleAlignment      = 0.20
	weightExperienceRelevance = 0.15
	weightYearsExperience     = 0.10
	weightEducation           = 0.05
)

// criticalMissingThreshold is the resume-wide missing-required-skill count
// at which every knockout alert for that resume becomes critical.
const criticalMissingThreshold = 3

// Scorer scores resumes against job descriptions. It holds only read-only
// collaborators and is safe for concurrent use.
type Scorer struct {
	skills *skills.Normalizer
	oracle embedding.Oracle
}

// NewScorer creates a Scorer. A nil normalizer gets the built-in synonym
// table; a nil oracle degrades to keyword-only scoring.
func NewScorer(normalizer *skills.Normalizer, oracle embedding.Oracle) *Scorer {
	if normalizer == nil {
		normalizer = skills.NewNormalizer()
	}
	if oracle == nil {
		oracle = embedding.Unavailable{}
	}
	return &Scorer{skills: normalizer, oracle: oracle}
}

// ScoreResume scores a single resume against a job description and returns
// a fresh report. It never fails; missing evidence and absent requirements
// resolve to the documented baseline scores.
func (s *Scorer) ScoreResume(ctx context.Context, jd *types.JobDescription, resume *types.CandidateResume) types.ResumeScore {
	blob := resumeTextBlob(resume)

	matchedRequired, missingRequired := s.matchSkills(jd.RequiredSkills, resume, blob)
	requiredPct := listPct(len(matchedRequired), len(jd.RequiredSkills))

	matchedPreferred, _ := s.matchSkills(jd.PreferredSkills, resume, blob)
	preferredPct := listPct(len(matchedPreferred), len(jd.PreferredSkills))

	titlePct := s.titleAlignment(ctx, jd.JobTitle, resume)
	experiencePct := s.experienceRelevance(ctx, jd, resume)
	yearsPct := yearsFit(jd.RequiredExperienceYears, resume)
	educationPct := educationMatch(jd.Education, resume)

	overall := requiredPct*weightRequiredSkills +
		preferredPct*weightPreferredSkills +
		titlePct*weightTitleAlignment +
		experiencePct*weightExperienceRelevance +
		yearsPct*weightYearsExperience +
		educationPct*weightEducation

	return types.ResumeScore{
		ResumeID:     resume.ID,
		ResumeName:   resume.Name,
		FileName:     resume.FileName,
		OverallScore: round1(overall),
		Breakdown: types.ScoreBreakdown{
			RequiredSkillsPct:      round1(requiredPct),
			PreferredSkillsPct:     round1(preferredPct),
			TitleSimilarityPct:     round1(titlePct),
			ExperienceRelevancePct: round1(experiencePct),
			YearsExperienceFitPct:  round1(yearsPct),
			EducationMatchPct:      round1(educationPct),
		},
		KnockoutAlerts:         buildKnockouts(missingRequired),
		MatchedRequiredSkills:  matchedRequired,
		MissingRequiredSkills:  missingRequired,
		MatchedPreferredSkills: matchedPreferred,
	}
}

// matchSkills matches each JD skill against the resume: first via the
// normalizer against the flat skill list, then via full-text search over
// the resume blob.
func (s *Scorer) matchSkills(jdSkills []string, resume *types.CandidateResume, blob string) (matched, missing []string) {
	matched = make([]string, 0, len(jdSkills))
	missing = make([]string, 0)

	for _, skill := range jdSkills {
		if _, ok := s.skills.FindMatch(skill, resume.Skills); ok {
			matched = append(matched, skill)
			continue
		}
		if s.skillInText(skill, blob) {
			matched = append(matched, skill)
			continue
		}
		missing = append(missing, skill)
	}
	return matched, missing
}

// buildKnockouts builds one alert per missing required skill. Severity is a
// single resume-wide decision: critical when the resume is missing three or
// more required skills, warning otherwise.
func buildKnockouts(missingRequired []string) []types.KnockoutAlert {
	severity := types.SeverityWarning
	if len(missingRequired) >= criticalMissingThreshold {
		severity = types.SeverityCritical
	}

	alerts := make([]types.KnockoutAlert, 0, len(missingRequired))
	for _, skill := range missingRequired {
		alerts = append(alerts, types.KnockoutAlert{
			Skill:    skill,
			Severity: severity,
			Message:  fmt.Sprintf("Required skill '%s' not found in resume", skill),
		})
	}
	return alerts
}

// listPct converts a matched/total ratio to a percentage. An empty
// requirement list is not a penalty and scores 100.
func listPct(matched, total int) float64 {
	if total == 0 {
		return 100.0
	}
	return float64(matched) / float64(total) * 100
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
