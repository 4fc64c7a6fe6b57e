package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/server/ratelimit"
	"github.com/jonathan/resume-matcher/internal/skills"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	scorer      *scoring.Scorer
	oracle      embedding.Oracle
	rateLimiter *ratelimit.Limiter
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string
}

// New creates a new server instance. The database is optional: without it
// the scoring endpoints still work and the storage endpoints return 503.
func New(cfg Config) (*Server, error) {
	s := &Server{}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(context.Background()); err != nil {
			database.Close()
			return nil, err
		}
		s.db = database
	}

	var oracle embedding.Oracle = embedding.Unavailable{}
	if cfg.APIKey != "" {
		oracle = embedding.NewGeminiOracle(cfg.APIKey, "")
	}
	s.oracle = oracle
	s.scorer = scoring.NewScorer(skills.NewNormalizer(), oracle)

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Setup router
	mux := http.NewServeMux()

	// Scoring endpoints (work without a database)
	mux.HandleFunc("POST /score", s.handleScore)
	mux.HandleFunc("POST /rank", s.handleRank)
	mux.HandleFunc("POST /compare", s.handleCompare)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Job description endpoints
	mux.HandleFunc("POST /jds", s.handleCreateJD)
	mux.HandleFunc("GET /jds", s.handleListJDs)
	mux.HandleFunc("GET /jds/{id}", s.handleGetJD)
	mux.HandleFunc("DELETE /jds/{id}", s.handleDeleteJD)
	mux.HandleFunc("GET /jds/{id}/ranking", s.handleJDRanking)
	mux.HandleFunc("GET /jds/{id}/scores", s.handleListScores)
	mux.HandleFunc("GET /jds/{id}/scores/{resume_id}", s.handleGetScore)

	// Resume endpoints
	mux.HandleFunc("POST /resumes", s.handleCreateResume)
	mux.HandleFunc("GET /resumes", s.handleListResumes)
	mux.HandleFunc("GET /resumes/{id}", s.handleGetResume)
	mux.HandleFunc("DELETE /resumes/{id}", s.handleDeleteResume)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Ranking large batches can take a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if closer, ok := s.oracle.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// withRateLimit adds per-client rate limiting
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, remaining := s.rateLimiter.Allow(s.extractClientID(r))
		if !allowed {
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		next.ServeHTTP(w, r)
	})
}

// extractClientID extracts the client identifier from the request.
// Uses the IP from RemoteAddr; X-Forwarded-For is ignored since we cannot
// assume a trusted proxy in front of us.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	status := map[string]string{"status": "ok"}
	if s.db != nil {
		status["storage"] = "enabled"
	} else {
		status["storage"] = "disabled"
	}
	s.jsonResponse(w, http.StatusOK, status)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
