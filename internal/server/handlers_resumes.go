package server

import (
	"io"
	"log"
	"net/http"

	"github.com/jonathan/resume-matcher/internal/parsing"
)

// handleCreateResume stores a resume document
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
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

	resume, err := parsing.ParseCandidateResume(body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.db.SaveResume(r.Context(), resume); err != nil {
		log.Printf("Failed to save resume: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save resume")
		return
	}

	s.jsonResponse(w, http.StatusCreated, resume)
}

// handleListResumes lists stored resumes
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStorageDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	limit, offset := paginationParams(r)
	resumes, err := s.db.ListResumes(r.Context(), limit, offset)
	if err != nil {
		log.Printf("Failed to list resumes: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list resumes")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": resumes, "count": len(resumes)})
}

// handleGetResume returns one stored resume
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStorageDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id := r.PathValue("id")
	resume, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		log.Printf("Failed to get resume: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get resume")
		return
	}
	if resume == nil {
		notFound := &ErrNotFound{Kind: "resume", ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleDeleteResume deletes a stored resume and its scores
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStorageDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id := r.PathValue("id")
	deleted, err := s.db.DeleteResume(r.Context(), id)
	if err != nil {
		log.Printf("Failed to delete resume: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete resume")
		return
	}
	if !deleted {
		notFound := &ErrNotFound{Kind: "resume", ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted", "id": id})
}
