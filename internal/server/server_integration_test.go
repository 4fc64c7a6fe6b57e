//go:build integration

package server

import (
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests require a running PostgreSQL database.
// Set TEST_DATABASE_URL environment variable to run them.

func newIntegrationServer(t *testing.T) *Server {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	s, err := New(Config{Port: 0, DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { s.db.Close() })
	return s
}

func TestIntegration_ScoreEndpoint_PersistsDocumentsAndScore(t *testing.T) {
	s := newIntegrationServer(t)

	jdID := "itest_jd_" + uuid.NewString()
	resumeID := "itest_res_" + uuid.NewString()
	req := types.ScoreRequest{
		JD: &types.JobDescription{
			ID:             jdID,
			JobTitle:       "Backend Engineer",
			RequiredSkills: []string{"Python"},
		},
		Resume: &types.CandidateResume{
			ID:     resumeID,
			Name:   "Jane Doe",
			Skills: []string{"Python"},
		},
	}

	w := doRequest(s, http.MethodPost, "/score", req)
	require.Equal(t, http.StatusOK, w.Code)

	// The inline documents are stored alongside the score.
	assert.Equal(t, http.StatusOK, doRequest(s, http.MethodGet, "/jds/"+jdID, nil).Code)
	assert.Equal(t, http.StatusOK, doRequest(s, http.MethodGet, "/resumes/"+resumeID, nil).Code)

	w = doRequest(s, http.MethodGet, "/jds/"+jdID+"/scores/"+resumeID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var score types.ResumeScore
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &score))
	assert.Equal(t, resumeID, score.ResumeID)
	assert.Equal(t, 100.0, score.Breakdown.RequiredSkillsPct)

	assert.Equal(t, http.StatusOK, doRequest(s, http.MethodDelete, "/resumes/"+resumeID, nil).Code)
	assert.Equal(t, http.StatusOK, doRequest(s, http.MethodDelete, "/jds/"+jdID, nil).Code)
}

func TestIntegration_RankEndpoint_PersistsRankedScores(t *testing.T) {
	s := newIntegrationServer(t)

	jdID := "itest_jd_" + uuid.NewString()
	matchID := "itest_res_match_" + uuid.NewString()
	missID := "itest_res_miss_" + uuid.NewString()
	req := types.RankRequest{
		JD: &types.JobDescription{
			ID:             jdID,
			JobTitle:       "Backend Engineer",
			RequiredSkills: []string{"Python"},
		},
		Resumes: []types.CandidateResume{
			{ID: matchID, Name: "Match", Skills: []string{"Python"}},
			{ID: missID, Name: "Miss", Skills: []string{"Photoshop"}},
			{Name: "Anonymous", Skills: []string{"Python"}}, // no id, not stored
		},
	}

	w := doRequest(s, http.MethodPost, "/rank", req)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(s, http.MethodGet, "/jds/"+jdID+"/scores", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		JDID   string              `json:"jd_id"`
		Scores []types.ResumeScore `json:"scores"`
		Count  int                 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, jdID, resp.JDID)
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, matchID, resp.Scores[0].ResumeID)

	assert.Equal(t, http.StatusOK, doRequest(s, http.MethodDelete, "/resumes/"+matchID, nil).Code)
	assert.Equal(t, http.StatusOK, doRequest(s, http.MethodDelete, "/resumes/"+missID, nil).Code)
	assert.Equal(t, http.StatusOK, doRequest(s, http.MethodDelete, "/jds/"+jdID, nil).Code)
}

func TestIntegration_ScoreRetrieval_NotFound(t *testing.T) {
	s := newIntegrationServer(t)

	w := doRequest(s, http.MethodGet, "/jds/itest_missing/scores", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	jdID := "itest_jd_" + uuid.NewString()
	w = doRequest(s, http.MethodPost, "/jds", &types.JobDescription{ID: jdID, JobTitle: "Engineer"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(s, http.MethodGet, "/jds/"+jdID+"/scores/itest_missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// A jd with no scores lists an empty set, not an error.
	w = doRequest(s, http.MethodGet, "/jds/"+jdID+"/scores", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)

	assert.Equal(t, http.StatusOK, doRequest(s, http.MethodDelete, "/jds/"+jdID, nil).Code)
}
