package types

// Knockout alert severities.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
)

// ScoreBreakdown holds the six factor percentages (0-100, one decimal).
type ScoreBreakdown struct {
	RequiredSkillsPct      float64 `json:"required_skills_pct"`
	PreferredSkillsPct     float64 `json:"preferred_skills_pct"`
	TitleSimilarityPct     float64 `json:"title_similarity_pct"`
	ExperienceRelevancePct float64 `json:"experience_relevance_pct"`
	YearsExperienceFitPct  float64 `json:"years_experience_fit_pct"`
	EducationMatchPct      float64 `json:"education_match_pct"`
}

// KnockoutAlert flags a required skill the resume does not evidence.
type KnockoutAlert struct {
	Skill    string `json:"skill"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// ResumeScore is the full score report for one resume against one job
// description. Built fresh on every scoring call and never mutated after.
type ResumeScore struct {
	ResumeID               string          `json:"resume_id"`
	ResumeName             string          `json:"resume_name"`
	FileName               string          `json:"file_name,omitempty"`
	OverallScore           float64         `json:"overall_score"`
	Breakdown              ScoreBreakdown  `json:"breakdown"`
	KnockoutAlerts         []KnockoutAlert `json:"knockout_alerts"`
	MatchedRequiredSkills  []string        `json:"matched_required_skills"`
	MissingRequiredSkills  []string        `json:"missing_required_skills"`
	MatchedPreferredSkills []string        `json:"matched_preferred_skills"`
}

// RankingResponse lists all resume scores for a job description, sorted
// descending by overall score. TopResumeID is empty when Rankings is empty.
type RankingResponse struct {
	JDID        string        `json:"jd_id"`
	Rankings    []ResumeScore `json:"rankings"`
	TopResumeID string        `json:"top_resume_id"`
}

// ScoreComparison reports a before/after scoring pair for the same resume,
// typically around a tailoring pass.
type ScoreComparison struct {
	Before         ResumeScore `json:"before"`
	After          ResumeScore `json:"after"`
	ImprovementPct float64     `json:"improvement_pct"`
	KeywordsAdded  []string    `json:"keywords_added"`
}
