package types

// ContactInfo holds candidate contact details.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Location string `json:"location,omitempty"`
}

// ExperienceEntry is a single work experience entry. Dates is free text as
// it appeared in the resume ("Jan 2020 - Mar 2022", "2019 to Present", ...).
type ExperienceEntry struct {
	Title   string   `json:"title"`
	Company string   `json:"company"`
	Dates   string   `json:"dates"`
	Bullets []string `json:"bullets"`
}

// ProjectEntry is a single project entry.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Technologies []string `json:"technologies,omitempty"`
	Bullets      []string `json:"bullets"`
}

// EducationEntry is a single education entry.
type EducationEntry struct {
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year,omitempty"`
}

// CandidateResume represents a structured resume produced by the upstream
// extraction pipeline. Nothing in it is assumed normalized; matching code
// must tolerate case and phrasing variance. Immutable once constructed.
type CandidateResume struct {
	ID             string            `json:"id"`
	FileName       string            `json:"file_name,omitempty"`
	Name           string            `json:"name"`
	Contact        ContactInfo       `json:"contact"`
	Tagline        string            `json:"tagline,omitempty"`
	Summary        string            `json:"summary,omitempty"`
	Skills         []string          `json:"skills"`
	Experience     []ExperienceEntry `json:"experience"`
	Projects       []ProjectEntry    `json:"projects"`
	Education      []EducationEntry  `json:"education"`
	Certifications []string          `json:"certifications"`
	RawText        string            `json:"raw_text"`
}
