package parsing

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

// ParseCandidateResume validates and decodes a structured resume document
// produced by the upstream extraction pipeline.
func ParseCandidateResume(data []byte) (*types.CandidateResume, error) {
	if err := schemas.ValidateCandidateResume(data); err != nil {
		return nil, &ParseError{
			Message: "resume failed schema validation",
			Cause:   err,
		}
	}

	var resume types.CandidateResume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, &ParseError{
			Message: "failed to decode resume JSON",
			Cause:   err,
		}
	}

	if err := postProcessResume(&resume); err != nil {
		return nil, err
	}

	return &resume, nil
}

// postProcessResume applies normalization and validation
func postProcessResume(resume *types.CandidateResume) error {
	resume.Name = strings.TrimSpace(resume.Name)
	if resume.Name == "" {
		return &ValidationError{Field: "name", Message: "candidate name is required"}
	}

	if resume.ID == "" {
		resume.ID = uuid.NewString()
	}

	resume.Skills = dedupeStrings(resume.Skills)
	resume.Certifications = dedupeStrings(resume.Certifications)

	if resume.Experience == nil {
		resume.Experience = []types.ExperienceEntry{}
	}
	for i := range resume.Experience {
		entry := &resume.Experience[i]
		entry.Title = strings.TrimSpace(entry.Title)
		entry.Company = strings.TrimSpace(entry.Company)
		entry.Dates = strings.TrimSpace(entry.Dates)
		entry.Bullets = trimStrings(entry.Bullets)
		if entry.Title == "" && entry.Company == "" && len(entry.Bullets) == 0 {
			return &ValidationError{
				Field:   fmt.Sprintf("experience[%d]", i),
				Message: "entry has no title, company, or bullets",
			}
		}
	}

	if resume.Projects == nil {
		resume.Projects = []types.ProjectEntry{}
	}
	for i := range resume.Projects {
		proj := &resume.Projects[i]
		proj.Name = strings.TrimSpace(proj.Name)
		proj.Technologies = dedupeStrings(proj.Technologies)
		proj.Bullets = trimStrings(proj.Bullets)
	}

	if resume.Education == nil {
		resume.Education = []types.EducationEntry{}
	}
	for i := range resume.Education {
		edu := &resume.Education[i]
		edu.Degree = strings.TrimSpace(edu.Degree)
		edu.School = strings.TrimSpace(edu.School)
		edu.Year = strings.TrimSpace(edu.Year)
	}

	return nil
}
