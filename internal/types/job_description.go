// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Category classifies a job description into one of the supported role families.
type Category string

// Supported job description categories.
const (
	CategoryJavaBackend   Category = "java_backend"
	CategoryPythonBackend Category = "python_backend"
	CategoryAIML          Category = "ai_ml"
	CategoryFrontend      Category = "frontend"
	CategoryFullstack     Category = "fullstack"
	CategoryNewGrad       Category = "new_grad"
)

// Valid reports whether the category is one of the supported values.
func (c Category) Valid() bool {
	switch c {
	case CategoryJavaBackend, CategoryPythonBackend, CategoryAIML,
		CategoryFrontend, CategoryFullstack, CategoryNewGrad:
		return true
	}
	return false
}

// JobDescription represents a structured job description produced by the
// upstream extraction pipeline. It is immutable once constructed.
type JobDescription struct {
	ID                      string   `json:"id"`
	JobTitle                string   `json:"job_title"`
	Company                 string   `json:"company"`
	Location                string   `json:"location,omitempty"`
	Category                Category `json:"jd_type"`
	RequiredSkills          []string `json:"required_skills"`
	PreferredSkills         []string `json:"preferred_skills"`
	RequiredExperienceYears *int     `json:"required_experience_years,omitempty"`
	Education               string   `json:"education,omitempty"`
	KeyResponsibilities     []string `json:"key_responsibilities"`
	KeywordsToMatch         []string `json:"keywords_to_match"`
	RawText                 string   `json:"raw_text"`
}
