// internal/server/handlers.go
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"skillmatch/internal/common/errors"
	"skillmatch/internal/extract"
	"skillmatch/internal/genai"
	"skillmatch/internal/match"
	"skillmatch/internal/match/normalize"
	"skillmatch/internal/match/suggest"
	"skillmatch/internal/quota"
)

const defaultMaxUploadBytes = 10 << 20

type analyzeRequest struct {
	SessionID string `json:"sessionId"`
	Plan      string `json:"plan"`
	Industry  string `json:"industry"`
	Role      string `json:"role"`
	Skills    string `json:"skills"`
}

type resumeRequest struct {
	analyzeRequest
	Profile genai.CandidateProfile `json:"profile"`
	EmailTo string                 `json:"emailTo"`
}

type suggestResponse struct {
	Analysis    *match.Analysis     `json:"analysis"`
	Suggestions suggest.Suggestions `json:"suggestions"`
}

type resumeResponse struct {
	AnalysisID string       `json:"analysisId"`
	Resume     genai.Resume `json:"resume"`
	Emailed    bool         `json:"emailed"`
}

type extractResponse struct {
	Text   string   `json:"text"`
	Skills []string `json:"skills"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decodeAnalyze(w, r, &req) {
		return
	}
	if !s.reserve(r.Context(), w, req.Plan, req.SessionID, quota.ActionAnalyze) {
		return
	}

	analysis := s.engine.Analyze(r.Context(), req.Industry, req.Role, req.Skills)
	s.history.Save(r.Context(), req.SessionID, analysis)

	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decodeAnalyze(w, r, &req) {
		return
	}
	if !s.reserve(r.Context(), w, req.Plan, req.SessionID, quota.ActionSuggest) {
		return
	}

	analysis := s.engine.Analyze(r.Context(), req.Industry, req.Role, req.Skills)
	suggestions := s.engine.Suggest(analysis)
	s.history.Save(r.Context(), req.SessionID, analysis)

	writeJSON(w, http.StatusOK, suggestResponse{Analysis: analysis, Suggestions: suggestions})
}

func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}
	if err := validateBody(resumeSchemaLoader, body); err != nil {
		writeDomainError(w, err, "resume", "")
		return
	}
	var req resumeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeDomainError(w, errors.NewInvalidRequestError(err.Error()), "resume", "")
		return
	}
	if !s.reserve(r.Context(), w, req.Plan, req.SessionID, quota.ActionGenerate) {
		return
	}

	analysis := s.engine.Analyze(r.Context(), req.Industry, req.Role, req.Skills)
	resume := s.writer.Write(r.Context(), req.Profile, analysis)

	emailed := false
	if req.EmailTo != "" && s.mailer != nil {
		if err := s.mailer.Send(r.Context(), req.EmailTo, req.Role, resume.Text); err == nil {
			emailed = true
		}
	}

	writeJSON(w, http.StatusOK, resumeResponse{
		AnalysisID: analysis.ID,
		Resume:     resume,
		Emailed:    emailed,
	})
}

// handleExtract accepts a multipart "file" field or a raw body with a
// document Content-Type and returns the extracted text plus the skills
// recognized in it.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "use POST")
		return
	}

	maxBytes := s.cfg.MaxUploadBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxUploadBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	contentType := r.Header.Get("Content-Type")
	var data []byte

	if strings.HasPrefix(contentType, "multipart/form-data") {
		file, header, err := r.FormFile("file")
		if err != nil {
			writeDomainError(w, errors.NewInvalidRequestError("multipart field \"file\" is required"), "extract", "")
			return
		}
		defer file.Close()
		data, err = io.ReadAll(file)
		if err != nil {
			writeDomainError(w, errors.NewExtractionFailedError(err), "extract", "")
			return
		}
		contentType = header.Header.Get("Content-Type")
	} else {
		var readErr error
		data, readErr = io.ReadAll(r.Body)
		if readErr != nil {
			writeDomainError(w, errors.NewExtractionFailedError(readErr), "extract", "")
			return
		}
	}

	if len(data) == 0 {
		writeDomainError(w, errors.NewInvalidRequestError("empty document"), "extract", "")
		return
	}

	text, err := extract.Text(contentType, data)
	if err != nil {
		writeDomainError(w, err, "extract", "")
		return
	}

	writeJSON(w, http.StatusOK, extractResponse{
		Text:   text,
		Skills: normalize.ExtractSkills(text),
	})
}

func (s *Server) handleQuota(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "use GET")
		return
	}
	plan := r.URL.Query().Get("plan")
	sessionID := r.URL.Query().Get("sessionId")
	if plan == "" || sessionID == "" {
		writeDomainError(w, errors.NewInvalidRequestError("plan and sessionId are required"), "quota", plan)
		return
	}

	status, err := s.gate.Snapshot(r.Context(), plan, sessionID)
	if err != nil {
		writeDomainError(w, err, "quota", plan)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "use GET")
		return
	}
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		writeDomainError(w, errors.NewInvalidRequestError("sessionId is required"), "history", "")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	records, err := s.history.Recent(r.Context(), sessionID, limit)
	if err != nil {
		writeDomainError(w, err, "history", "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"records": records})
}

func (s *Server) handleHistorySearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "use GET")
		return
	}
	skill := r.URL.Query().Get("skill")
	if skill == "" {
		writeDomainError(w, errors.NewInvalidRequestError("skill is required"), "history-search", "")
		return
	}
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))

	records, err := s.history.SearchBySkill(r.Context(), normalize.Token(skill), size)
	if err != nil {
		writeDomainError(w, err, "history-search", "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"records": records})
}

func (s *Server) decodeAnalyze(w http.ResponseWriter, r *http.Request, req *analyzeRequest) bool {
	body, ok := s.readBody(w, r)
	if !ok {
		return false
	}
	if err := validateBody(analyzeSchemaLoader, body); err != nil {
		writeDomainError(w, err, "analyze", "")
		return false
	}
	if err := json.Unmarshal(body, req); err != nil {
		writeDomainError(w, errors.NewInvalidRequestError(err.Error()), "analyze", "")
		return false
	}
	return true
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "use POST")
		return nil, false
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeDomainError(w, errors.NewInvalidRequestError("body too large or unreadable"), "request", "")
		return nil, false
	}
	return body, true
}
