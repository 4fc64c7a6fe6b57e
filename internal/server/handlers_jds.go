package server

import (
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/jonathan/resume-matcher/internal/parsing"
)

const maxDocumentBytes = 1 << 20 // 1 MiB per document is plenty

// handleCreateJD stores a job description document
func (s *Server) handleCreateJD(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStorageDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	jd, err := parsing.ParseJobDescription(body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.db.SaveJobDescription(r.Context(), jd); err != nil {
		log.Printf("Failed to save job description: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save job description")
		return
	}

	s.jsonResponse(w, http.StatusCreated, jd)
}

// handleListJDs lists stored job descriptions
func (s *Server) handleListJDs(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStorageDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	limit, offset := paginationParams(r)
	jds, err := s.db.ListJobDescriptions(r.Context(), limit, offset)
	if err != nil {
		log.Printf("Failed to list job descriptions: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list job descriptions")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"jds": jds, "count": len(jds)})
}

// handleGetJD returns one stored job description
func (s *Server) handleGetJD(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStorageDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id := r.PathValue("id")
	jd, err := s.db.GetJobDescription(r.Context(), id)
	if err != nil {
		log.Printf("Failed to get job description: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get job description")
		return
	}
	if jd == nil {
		notFound := &ErrNotFound{Kind: "job description", ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, jd)
}

// handleDeleteJD deletes a stored job description and its scores
func (s *Server) handleDeleteJD(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStorageDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id := r.PathValue("id")
	deleted, err := s.db.DeleteJobDescription(r.Context(), id)
	if err != nil {
		log.Printf("Failed to delete job description: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete job description")
		return
	}
	if !deleted {
		notFound := &ErrNotFound{Kind: "job description", ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})
}

// handleJDRanking ranks every stored resume against a stored job description
func (s *Server) handleJDRanking(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStorageDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id := r.PathValue("id")
	jd, err := s.db.GetJobDescription(r.Context(), id)
	if err != nil {
		log.Printf("Failed to get job description: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get job description")
		return
	}
	if jd == nil {
		notFound := &ErrNotFound{Kind: "job description", ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	limit, offset := paginationParams(r)
	resumes, err := s.db.ListResumes(r.Context(), limit, offset)
	if err != nil {
		log.Printf("Failed to list resumes: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list resumes")
		return
	}

	ranking := s.scorer.RankResumes(r.Context(), jd, resumes)
	if err := s.db.SaveRanking(r.Context(), &ranking); err != nil {
		log.Printf("Failed to persist ranking: %v", err)
	}

	s.jsonResponse(w, http.StatusOK, ranking)
}

// handleListScores returns the stored score reports for a job description,
// highest overall score first
func (s *Server) handleListScores(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStorageDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id := r.PathValue("id")
	jd, err := s.db.GetJobDescription(r.Context(), id)
	if err != nil {
		log.Printf("Failed to get job description: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get job description")
		return
	}
	if jd == nil {
		notFound := &ErrNotFound{Kind: "job description", ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	scores, err := s.db.ListScoresForJD(r.Context(), id)
	if err != nil {
		log.Printf("Failed to list scores: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list scores")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"jd_id": id, "scores": scores, "count": len(scores)})
}

// handleGetScore returns the stored score report for one jd/resume pair
func (s *Server) handleGetScore(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStorageDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jdID := r.PathValue("id")
	resumeID := r.PathValue("resume_id")
	score, err := s.db.GetScore(r.Context(), jdID, resumeID)
	if err != nil {
		log.Printf("Failed to get score: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get score")
		return
	}
	if score == nil {
		notFound := &ErrNotFound{Kind: "score", ID: jdID + "/" + resumeID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, score)
}

// paginationParams reads limit/offset query parameters with defaults.
func paginationParams(r *http.Request) (limit, offset int) {
	limit = 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
