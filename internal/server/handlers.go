package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/ats-engine/internal/engine"
	"github.com/jonathan/ats-engine/internal/ingest"
	"github.com/jonathan/ats-engine/internal/jd"
	"github.com/jonathan/ats-engine/internal/resume"
	"github.com/jonathan/ats-engine/internal/types"
)

// handleEvaluate runs a full resume-vs-JD evaluation
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req types.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, (&ErrValidation{Field: "body", Message: err.Error()}).Error())
		return
	}

	resumeText, err := ingest.Normalize(req.ResumeText)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to normalize resume text: "+err.Error())
		return
	}
	jdText, err := ingest.Normalize(req.JobDescriptionText)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to normalize job description text: "+err.Error())
		return
	}

	result := engine.EvaluateWithOptions(resumeText, jdText, engine.Options{
		Taxonomy:       s.taxonomy,
		FuzzyThreshold: s.fuzzyThreshold,
	})

	log.Printf("Evaluation complete: total=%d keywords=%d", result.ScoreBreakdown.Total, len(result.MatchResults))

	s.jsonResponse(w, http.StatusOK, result)
}

// handleParseJD parses a job description into its structured model
func (s *Server) handleParseJD(w http.ResponseWriter, r *http.Request) {
	var req types.ParseJDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, (&ErrValidation{Field: "rawText", Message: err.Error()}).Error())
		return
	}

	text, err := ingest.Normalize(req.RawText)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to normalize job description text: "+err.Error())
		return
	}

	model := jd.Build(text, s.taxonomy)
	s.jsonResponse(w, http.StatusOK, model)
}

// handleParseResume parses a resume into sections and contact info
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	var req types.ParseResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, (&ErrValidation{Field: "text", Message: err.Error()}).Error())
		return
	}

	text, err := ingest.Normalize(req.Text)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to normalize resume text: "+err.Error())
		return
	}

	parsed := resume.Parse(text)
	s.jsonResponse(w, http.StatusOK, parsed)
}
