// Package parsing decodes structured job description and resume JSON into
// domain types, validating against the embedded schemas and normalizing the
// fields the scorers depend on.
package parsing

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ParseJobDescription validates and decodes a structured job description
// document produced by the upstream extraction pipeline.
func ParseJobDescription(data []byte) (*types.JobDescription, error) {
	if err := schemas.ValidateJobDescription(data); err != nil {
		return nil, &ParseError{
			Message: "job description failed schema validation",
			Cause:   err,
		}
	}

	var jd types.JobDescription
	if err := json.Unmarshal(data, &jd); err != nil {
		return nil, &ParseError{
			Message: "failed to decode job description JSON",
			Cause:   err,
		}
	}

	if err := postProcessJobDescription(&jd); err != nil {
		return nil, err
	}

	return &jd, nil
}

// postProcessJobDescription applies normalization and validation
func postProcessJobDescription(jd *types.JobDescription) error {
	jd.JobTitle = strings.TrimSpace(jd.JobTitle)
	if jd.JobTitle == "" {
		return &ValidationError{Field: "job_title", Message: "job title is required"}
	}

	if jd.ID == "" {
		jd.ID = uuid.NewString()
	}

	// Unlabeled documents default to the broadest category.
	jd.Category = types.Category(strings.ToLower(strings.TrimSpace(string(jd.Category))))
	if jd.Category == "" {
		jd.Category = types.CategoryFullstack
	}
	if !jd.Category.Valid() {
		return &ValidationError{
			Field:   "jd_type",
			Message: fmt.Sprintf("unknown category %q", jd.Category),
		}
	}

	if jd.RequiredExperienceYears != nil && *jd.RequiredExperienceYears < 0 {
		return &ValidationError{
			Field:   "required_experience_years",
			Message: "must be non-negative",
		}
	}

	jd.RequiredSkills = dedupeStrings(jd.RequiredSkills)
	jd.PreferredSkills = dedupeStrings(jd.PreferredSkills)
	jd.KeywordsToMatch = dedupeStrings(jd.KeywordsToMatch)
	jd.KeyResponsibilities = trimStrings(jd.KeyResponsibilities)

	return nil
}

// dedupeStrings trims entries, drops empties, and removes case-insensitive
// duplicates while preserving the first spelling and original order.
func dedupeStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}

// trimStrings trims entries and drops empties without deduplicating.
func trimStrings(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
