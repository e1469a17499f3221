package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/minsukim/studydiag/internal/i18n"
	"github.com/minsukim/studydiag/internal/model"
	"github.com/minsukim/studydiag/internal/quiz"
)

// questionView is the client-facing shape of an open question. The correct
// answer and explanation stay server-side until the session finishes.
type questionView struct {
	ID         int              `json:"id"`
	Subject    string           `json:"subject"`
	Question   string           `json:"question"`
	Options    []string         `json:"options"`
	Difficulty model.Difficulty `json:"difficulty"`
}

// resultView augments the raw result with the leaderboard comparison and the
// full questions for answer review.
type resultView struct {
	model.QuizResult
	SchoolRank int                  `json:"schoolRank"`
	PlayerRank int                  `json:"playerRank"`
	Questions  []model.QuizQuestion `json:"questions"`
}

type sessionView struct {
	SessionID      string        `json:"sessionId"`
	State          quiz.State    `json:"state"`
	QuestionIndex  int           `json:"questionIndex"`
	TotalQuestions int           `json:"totalQuestions"`
	TimeLeft       int           `json:"timeLeft"`
	Selected       int           `json:"selected"`
	TotalTime      int           `json:"totalTime"`
	Question       *questionView `json:"question,omitempty"`
	Result         *resultView   `json:"result,omitempty"`
}

func (h *Handler) sessionResponse(s *quiz.Session) sessionView {
	snap := s.Snapshot()
	view := sessionView{
		SessionID:      s.ID.String(),
		State:          snap.State,
		QuestionIndex:  snap.QuestionIndex,
		TotalQuestions: snap.TotalQuestions,
		TimeLeft:       snap.TimeLeft,
		Selected:       snap.Selected,
		TotalTime:      snap.TotalTime,
	}

	if snap.State == quiz.StateFinished {
		bank := h.quiz.Bank()
		view.Result = &resultView{
			QuizResult: *snap.Result,
			SchoolRank: bank.SchoolRank(snap.Result.PlayerSchool),
			PlayerRank: bank.SimulatedPlayerRank(),
			Questions:  bank.Questions,
		}
		return view
	}

	q := snap.Question
	view.Question = &questionView{
		ID:         q.ID,
		Subject:    q.Subject,
		Question:   q.Question,
		Options:    q.Options,
		Difficulty: q.Difficulty,
	}
	return view
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, msgID string) {
	respondJSON(w, status, map[string]any{
		"success": false,
		"error":   i18n.T(r.Context(), msgID),
	})
}
