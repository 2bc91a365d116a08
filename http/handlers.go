package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jilee1212/sitegen"
	"github.com/jilee1212/sitegen/pipeline"
)

// maxUploadBytes bounds one multipart request. Individual file limits
// are enforced per media kind by the decoder.
const maxUploadBytes = 100 << 20

// generateResponse is the JSON body returned by the generate endpoint.
type generateResponse struct {
	HTML         string                                     `json:"html"`
	Summary      sitegen.Summary                            `json:"summary"`
	Sections     map[sitegen.Section][]sitegen.SectionEntry `json:"sections"`
	Confidence   float64                                    `json:"confidence"`
	Skipped      []string                                   `json:"skipped,omitempty"`
	Errors       []uploadError                              `json:"errors,omitempty"`
	GenerationID string                                     `json:"generationId,omitempty"`
}

type uploadError struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

// handleGenerate accepts a multipart form with a "template" field and
// one or more "files" parts, runs the pipeline, and returns the
// generated site.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}

	template, err := s.templates.FindTemplateByName(r.Context(), r.FormValue("template"))
	if err != nil {
		s.respondCodeError(w, err)
		return
	}

	var uploads []pipeline.Upload
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["files"] {
			f, err := header.Open()
			if err != nil {
				s.respondError(w, http.StatusBadRequest, "unreadable file part")
				return
			}
			content, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				s.respondError(w, http.StatusBadRequest, "unreadable file part")
				return
			}
			uploads = append(uploads, pipeline.Upload{Name: header.Filename, Content: content})
		}
	}
	if len(uploads) == 0 {
		s.respondError(w, http.StatusBadRequest, "no files uploaded")
		return
	}

	result, err := s.generator.Generate(r.Context(), template, uploads, nil)
	if err != nil {
		s.logger.Error("generation failed", "error", err)
		s.respondCodeError(w, err)
		return
	}

	resp := generateResponse{
		HTML:         result.HTML,
		Summary:      result.Summary,
		Sections:     result.Sections,
		Confidence:   result.Bundle.Confidence,
		Skipped:      result.Skipped,
		GenerationID: result.GenerationID,
	}
	for _, e := range result.Errors {
		resp.Errors = append(resp.Errors, uploadError{Name: e.Name, Error: sitegen.ErrorMessage(e.Err)})
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := s.templates.FindTemplates(r.Context())
	if err != nil {
		s.respondCodeError(w, err)
		return
	}
	names := make([]string, 0, len(templates))
	for _, t := range templates {
		names = append(names, t.Name)
	}
	s.respondJSON(w, http.StatusOK, map[string][]string{"templates": names})
}

func (s *Server) handleListGenerations(w http.ResponseWriter, r *http.Request) {
	if s.generations == nil {
		s.respondError(w, http.StatusNotImplemented, "generation history not configured")
		return
	}
	var filter sitegen.GenerationFilter
	if company := r.URL.Query().Get("company"); company != "" {
		filter.CompanyName = &company
	}
	generations, err := s.generations.FindGenerations(r.Context(), filter)
	if err != nil {
		s.respondCodeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"generations": generations})
}

func (s *Server) handleGetGeneration(w http.ResponseWriter, r *http.Request) {
	if s.generations == nil {
		s.respondError(w, http.StatusNotImplemented, "generation history not configured")
		return
	}
	generation, err := s.generations.FindGenerationByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.respondCodeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, generation)
}

func (s *Server) handleDeleteGeneration(w http.ResponseWriter, r *http.Request) {
	if s.generations == nil {
		s.respondError(w, http.StatusNotImplemented, "generation history not configured")
		return
	}
	if err := s.generations.DeleteGeneration(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.respondCodeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("writing response failed", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

// respondCodeError maps domain error codes onto HTTP statuses.
func (s *Server) respondCodeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch sitegen.ErrorCode(err) {
	case sitegen.EINVALID:
		status = http.StatusBadRequest
	case sitegen.ENOTFOUND:
		status = http.StatusNotFound
	case sitegen.ECONFLICT:
		status = http.StatusConflict
	case sitegen.EUNAVAILABLE:
		status = http.StatusServiceUnavailable
	}
	s.respondError(w, status, sitegen.ErrorMessage(err))
}
