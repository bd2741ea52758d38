package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/gulfwise/finclinic/internal/catalog"
	"github.com/gulfwise/finclinic/internal/model"
	"github.com/gulfwise/finclinic/internal/store"
)

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Warn("encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":           "ok",
		"catalog_revision": s.catalog.Revision(),
	})
}

// catalogOption is the localized wire form of an answer option.
type catalogOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// catalogQuestion is the localized wire form of a question.
type catalogQuestion struct {
	ID          string          `json:"id"`
	Number      int             `json:"number"`
	Category    model.Category  `json:"category"`
	Weight      int             `json:"weight"`
	Text        string          `json:"text"`
	Options     []catalogOption `json:"options"`
	Conditional bool            `json:"conditional,omitempty"`
}

func localizeQuestion(q catalog.Question, lang language.Tag) catalogQuestion {
	arabic := lang == language.Arabic
	text := q.Text
	if arabic && q.TextAr != "" {
		text = q.TextAr
	}
	opts := make([]catalogOption, len(q.Options))
	for i, o := range q.Options {
		label := o.Label
		if arabic && o.LabelAr != "" {
			label = o.LabelAr
		}
		opts[i] = catalogOption{Value: o.Value, Label: label}
	}
	return catalogQuestion{
		ID:          q.ID,
		Number:      q.Number,
		Category:    q.Category,
		Weight:      q.Weight,
		Text:        text,
		Options:     opts,
		Conditional: q.Conditional,
	}
}

// handleCatalog returns the question catalog localized per
// Accept-Language. An optional children query parameter filters out
// questions that do not apply to the respondent.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	lang := negotiateLang(r)

	questions := s.catalog.Questions()
	if raw := r.URL.Query().Get("children"); raw != "" {
		children, err := strconv.Atoi(raw)
		if err != nil || children < 0 {
			respondError(w, http.StatusBadRequest, "children must be a non-negative integer")
			return
		}
		questions = s.catalog.QuestionsFor(children)
	}

	out := make([]catalogQuestion, len(questions))
	for i, q := range questions {
		out[i] = localizeQuestion(q, lang)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"revision":  s.catalog.Revision(),
		"questions": out,
	})
}

// assessmentRequest is the submission payload.
type assessmentRequest struct {
	Profile model.Profile   `json:"profile"`
	Answers model.AnswerSet `json:"answers"`
}

// handleCreateAssessment validates, scores, and persists one
// submission. Invalid answers come back as 422 with the full
// violation list so the client can surface every problem at once.
func (s *Server) handleCreateAssessment(w http.ResponseWriter, r *http.Request) {
	var req assessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Profile.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, violations := s.assessor.Assess(req.Answers, req.Profile)
	if len(violations) > 0 {
		respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":      "validation failed",
			"violations": violations,
		})
		return
	}

	sub := &model.Submission{
		ID:        uuid.New().String(),
		Profile:   req.Profile,
		Answers:   req.Answers,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.SaveSubmission(r.Context(), sub); err != nil {
		zap.L().Error("save submission", zap.String("id", sub.ID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to save submission")
		return
	}

	zap.L().Info("assessment scored",
		zap.String("id", sub.ID),
		zap.Float64("total", result.Overall.Total),
		zap.String("band", string(result.Overall.StatusBand)),
	)
	respondJSON(w, http.StatusCreated, sub)
}

func (s *Server) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sub, err := s.store.GetSubmission(r.Context(), id)
	if err != nil {
		if eris.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "submission not found")
			return
		}
		zap.L().Error("get submission", zap.String("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to load submission")
		return
	}
	respondJSON(w, http.StatusOK, sub)
}

func (s *Server) handleListAssessments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter store.SubmissionFilter
	if band := q.Get("band"); band != "" {
		filter.Band = model.StatusBand(band)
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		filter.Limit = n
	}
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "offset must be a non-negative integer")
			return
		}
		filter.Offset = n
	}

	subs, err := s.store.ListSubmissions(r.Context(), filter)
	if err != nil {
		zap.L().Error("list submissions", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to list submissions")
		return
	}
	if subs == nil {
		subs = []model.Submission{}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"submissions": subs,
		"count":       len(subs),
	})
}
