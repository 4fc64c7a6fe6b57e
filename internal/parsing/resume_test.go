package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandidateResume_Valid(t *testing.T) {
	doc := []byte(`{
		"id": "res_jane",
		"name": " Jane Doe ",
		"contact": {"email": "jane@example.com"},
		"skills": ["Go", "go", " Kubernetes "],
		"experience": [
			{"title": " Engineer ", "company": "Acme", "dates": "Jan 2020 - Mar 2022", "bullets": [" Built services ", ""]}
		],
		"education": [{"degree": "BS Computer Science", "school": "State U"}]
	}`)

	resume, err := ParseCandidateResume(doc)
	require.NoError(t, err)

	assert.Equal(t, "res_jane", resume.ID)
	assert.Equal(t, "Jane Doe", resume.Name)
	assert.Equal(t, []string{"Go", "Kubernetes"}, resume.Skills)
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "Engineer", resume.Experience[0].Title)
	assert.Equal(t, []string{"Built services"}, resume.Experience[0].Bullets)
}

func TestParseCandidateResume_GeneratesID(t *testing.T) {
	resume, err := ParseCandidateResume([]byte(`{"name": "Jane Doe"}`))
	require.NoError(t, err)
	assert.NotEmpty(t, resume.ID)
}

func TestParseCandidateResume_MissingName(t *testing.T) {
	_, err := ParseCandidateResume([]byte(`{"skills": ["Go"]}`))
	require.Error(t, err)
	assert.IsType(t, &ParseError{}, err)
}

func TestParseCandidateResume_BlankNameAfterTrim(t *testing.T) {
	_, err := ParseCandidateResume([]byte(`{"name": "  "}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "name", validationErr.Field)
}

func TestParseCandidateResume_EmptyExperienceEntry(t *testing.T) {
	doc := []byte(`{
		"name": "Jane Doe",
		"experience": [{"title": "", "company": "", "dates": "2020", "bullets": []}]
	}`)

	_, err := ParseCandidateResume(doc)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "experience[0]", validationErr.Field)
}

func TestParseCandidateResume_NilSlicesBecomeEmpty(t *testing.T) {
	resume, err := ParseCandidateResume([]byte(`{"name": "Jane Doe"}`))
	require.NoError(t, err)

	assert.NotNil(t, resume.Skills)
	assert.NotNil(t, resume.Experience)
	assert.NotNil(t, resume.Projects)
	assert.NotNil(t, resume.Education)
	assert.NotNil(t, resume.Certifications)
}

func TestParseCandidateResume_ProjectTechnologiesDeduped(t *testing.T) {
	doc := []byte(`{
		"name": "Jane Doe",
		"projects": [{"name": "matcher", "technologies": ["Go", "go", "pgx"], "bullets": ["wrote it"]}]
	}`)

	resume, err := ParseCandidateResume(doc)
	require.NoError(t, err)

	require.Len(t, resume.Projects, 1)
	assert.Equal(t, []string{"Go", "pgx"}, resume.Projects[0].Technologies)
}

func TestParseCandidateResume_MalformedJSON(t *testing.T) {
	_, err := ParseCandidateResume([]byte(`not json`))
	require.Error(t, err)
	assert.IsType(t, &ParseError{}, err)
}
