package types

import (
	"github.com/go-playground/validator/v10"
)

// ScoreRequest is the request body for scoring one resume against one JD.
type ScoreRequest struct {
	JD     *JobDescription  `json:"jd" validate:"required"`
	Resume *CandidateResume `json:"resume" validate:"required"`
}

// RankRequest is the request body for ranking multiple resumes against one JD.
// An empty resume list is valid and yields an empty ranking.
type RankRequest struct {
	JD      *JobDescription   `json:"jd" validate:"required"`
	Resumes []CandidateResume `json:"resumes"`
}

// CompareRequest is the request body for a before/after score comparison.
type CompareRequest struct {
	JD     *JobDescription  `json:"jd" validate:"required"`
	Before *CandidateResume `json:"before" validate:"required"`
	After  *CandidateResume `json:"after" validate:"required"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RankRequest using the validator.
func (r *RankRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CompareRequest using the validator.
func (r *CompareRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
