package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/minsukim/studydiag/internal/diagnosis"
	"github.com/minsukim/studydiag/internal/i18n"
	"github.com/minsukim/studydiag/internal/model"
	"github.com/minsukim/studydiag/internal/quiz"
	"github.com/minsukim/studydiag/internal/waitlist"
)

// Handler holds shared dependencies for HTTP handlers.
type Handler struct {
	synth    *diagnosis.Synthesizer
	quiz     *quiz.Manager
	waitlist *waitlist.Service
}

// New creates a new Handler.
func New(synth *diagnosis.Synthesizer, quizManager *quiz.Manager, waitlistSvc *waitlist.Service) *Handler {
	return &Handler{synth: synth, quiz: quizManager, waitlist: waitlistSvc}
}

// Routes registers all HTTP routes.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/healthz", h.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/diagnosis", h.handleDiagnosis)
		r.Post("/waitlist", h.handleWaitlist)

		r.Post("/quiz", h.handleStartQuiz)
		r.Route("/quiz/{sessionID}", func(r chi.Router) {
			r.Get("/", h.handleQuizState)
			r.Post("/select", h.handleSelect)
			r.Post("/advance", h.handleAdvance)
			r.Delete("/", h.handleAbandon)
		})

		r.Get("/rankings/schools", h.handleSchoolRankings)
		r.Get("/rankings/players", h.handlePlayerRankings)
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleDiagnosis never fails toward the client: any synthesis problem is
// already resolved to the fallback report inside Produce.
func (h *Handler) handleDiagnosis(w http.ResponseWriter, r *http.Request) {
	var in model.DiagnosisInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, r, http.StatusBadRequest, "InvalidRequestBody")
		return
	}

	report := h.synth.Produce(r.Context(), in)
	respondJSON(w, http.StatusOK, report)
}

func (h *Handler) handleWaitlist(w http.ResponseWriter, r *http.Request) {
	var sub waitlist.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		respondError(w, r, http.StatusBadRequest, "InvalidRequestBody")
		return
	}

	switch err := h.waitlist.Submit(r.Context(), sub); {
	case errors.Is(err, waitlist.ErrMissingFields):
		respondError(w, r, http.StatusBadRequest, "WaitlistMissingFields")
	case errors.Is(err, waitlist.ErrInvalidEmail):
		respondError(w, r, http.StatusBadRequest, "WaitlistInvalidEmail")
	case err != nil:
		respondError(w, r, http.StatusInternalServerError, "WaitlistError")
	default:
		respondJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": i18n.T(r.Context(), "WaitlistSuccess"),
		})
	}
}

type startQuizRequest struct {
	PlayerName   string `json:"playerName"`
	PlayerSchool string `json:"playerSchool"`
}

func (h *Handler) handleStartQuiz(w http.ResponseWriter, r *http.Request) {
	var req startQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "InvalidRequestBody")
		return
	}
	if req.PlayerName == "" || req.PlayerSchool == "" {
		respondError(w, r, http.StatusBadRequest, "PlayerNameRequired")
		return
	}

	s := h.quiz.Start(req.PlayerName, req.PlayerSchool)
	respondJSON(w, http.StatusCreated, h.sessionResponse(s))
}

func (h *Handler) handleQuizState(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, h.sessionResponse(s))
}

type selectRequest struct {
	Option int `json:"option"`
}

func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, "InvalidRequestBody")
		return
	}

	if err := s.Select(req.Option); err != nil {
		h.quizError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, h.sessionResponse(s))
}

func (h *Handler) handleAdvance(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	if _, err := s.Advance(); err != nil {
		h.quizError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, h.sessionResponse(s))
}

func (h *Handler) handleAbandon(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil || !h.quiz.Abandon(id) {
		respondError(w, r, http.StatusNotFound, "QuizSessionNotFound")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSchoolRankings(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.quiz.Bank().SchoolRankings)
}

func (h *Handler) handlePlayerRankings(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.quiz.Bank().PlayerRankings)
}

// session resolves the sessionID URL parameter, replying 404 on failure.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*quiz.Session, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, r, http.StatusNotFound, "QuizSessionNotFound")
		return nil, false
	}
	s, ok := h.quiz.Get(id)
	if !ok {
		respondError(w, r, http.StatusNotFound, "QuizSessionNotFound")
		return nil, false
	}
	return s, true
}

func (h *Handler) quizError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, quiz.ErrSessionFinished):
		respondError(w, r, http.StatusConflict, "QuizSessionFinished")
	case errors.Is(err, quiz.ErrInvalidOption):
		respondError(w, r, http.StatusBadRequest, "QuizInvalidOption")
	default:
		respondError(w, r, http.StatusInternalServerError, "InternalError")
	}
}
