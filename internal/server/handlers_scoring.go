package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/resume-matcher/internal/types"
)

// handleScore scores one resume against one job description
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Both jd and resume are required")
		return
	}

	score := s.scorer.ScoreResume(r.Context(), req.JD, req.Resume)

	// Persist when storage is available; scoring still succeeds otherwise.
	// The documents are stored alongside the score so its foreign keys hold.
	if s.db != nil && req.JD.ID != "" && req.Resume.ID != "" {
		s.persistScore(r.Context(), req.JD, req.Resume, &score)
	}

	s.jsonResponse(w, http.StatusOK, score)
}

// handleRank ranks a batch of resumes against one job description
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req types.RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "jd is required")
		return
	}

	ranking := s.scorer.RankResumes(r.Context(), req.JD, req.Resumes)

	if s.db != nil && req.JD.ID != "" {
		s.persistRanking(r.Context(), req.JD, req.Resumes, &ranking)
	}

	s.jsonResponse(w, http.StatusOK, ranking)
}

// handleCompare scores a before/after resume pair against one job description
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req types.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "jd, before, and after are required")
		return
	}

	comparison := s.scorer.Compare(r.Context(), req.JD, req.Before, req.After)
	s.jsonResponse(w, http.StatusOK, comparison)
}

// persistScore upserts the scored documents and then the score report.
// The score row references both documents, so they must be stored first.
// Failures are logged only; the request already has its result.
func (s *Server) persistScore(ctx context.Context, jd *types.JobDescription, resume *types.CandidateResume, score *types.ResumeScore) {
	if err := s.db.SaveJobDescription(ctx, jd); err != nil {
		log.Printf("Failed to persist job description %s: %v", jd.ID, err)
		return
	}
	if err := s.db.SaveResume(ctx, resume); err != nil {
		log.Printf("Failed to persist resume %s: %v", resume.ID, err)
		return
	}
	if err := s.db.SaveScore(ctx, jd.ID, score); err != nil {
		log.Printf("Failed to persist score: %v", err)
	}
}

// persistRanking upserts the ranked documents and their score reports.
// Resumes without an id are scored but not stored.
func (s *Server) persistRanking(ctx context.Context, jd *types.JobDescription, resumes []types.CandidateResume, ranking *types.RankingResponse) {
	if err := s.db.SaveJobDescription(ctx, jd); err != nil {
		log.Printf("Failed to persist job description %s: %v", jd.ID, err)
		return
	}
	for i := range resumes {
		if resumes[i].ID == "" {
			continue
		}
		if err := s.db.SaveResume(ctx, &resumes[i]); err != nil {
			log.Printf("Failed to persist resume %s: %v", resumes[i].ID, err)
		}
	}
	for i := range ranking.Rankings {
		if ranking.Rankings[i].ResumeID == "" {
			continue
		}
		if err := s.db.SaveScore(ctx, jd.ID, &ranking.Rankings[i]); err != nil {
			log.Printf("Failed to persist score: %v", err)
		}
	}
}
