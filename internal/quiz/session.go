// Package quiz drives timed multiple-choice quiz sessions over the bundled
// question bank and compares results against static ranking tables.
package quiz

import (
	"errors"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/minsukim/studydiag/internal/model"
)

// DefaultQuestionTime is the per-question countdown budget in seconds.
const DefaultQuestionTime = 60

// State of a quiz session.
type State string

const (
	// StateAwaitingAnswer means the current question is open for selection.
	StateAwaitingAnswer State = "awaiting_answer"
	// StateFinished means every question has been answered and the result
	// is available.
	StateFinished State = "finished"
)

var (
	// ErrSessionFinished is returned for transitions on a finished session.
	ErrSessionFinished = errors.New("quiz session already finished")
	// ErrInvalidOption is returned for an out-of-range option index.
	ErrInvalidOption = errors.New("invalid option index")
)

// Session is one playthrough of the question bank by a single player. All
// transitions are serialized by an internal mutex, so a countdown tick and a
// concurrent selection resolve in arrival order and can never interleave
// mid-transition.
type Session struct {
	ID           uuid.UUID
	PlayerName   string
	PlayerSchool string

	mu        sync.Mutex
	questions []model.QuizQuestion
	budget    int
	current   int
	selected  int
	remaining int
	totalTime int
	answers   []model.QuizAnswer
	result    *model.QuizResult
}

// NewSession starts a session at the first question with a fresh countdown.
func NewSession(playerName, playerSchool string, questions []model.QuizQuestion, budget int) *Session {
	if budget <= 0 {
		budget = DefaultQuestionTime
	}
	return &Session{
		ID:           uuid.New(),
		PlayerName:   playerName,
		PlayerSchool: playerSchool,
		questions:    questions,
		budget:       budget,
		selected:     model.Unanswered,
		remaining:    budget,
		answers:      make([]model.QuizAnswer, 0, len(questions)),
	}
}

// Select records a candidate selection for the current question. Repeated
// calls overwrite each other; only the last selection before the next advance
// counts.
func (s *Session) Select(option int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return ErrSessionFinished
	}
	if option < 0 || option >= len(s.questions[s.current].Options) {
		return ErrInvalidOption
	}
	s.selected = option
	return nil
}

// Advance commits the current selection (or the unanswered sentinel) and
// moves on. On the last question it finishes the session and returns the
// result; otherwise it returns nil and reseeds the countdown.
func (s *Session) Advance() (*model.QuizResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return nil, ErrSessionFinished
	}
	s.advanceLocked()
	return s.result, nil
}

// Tick consumes one countdown unit. When the countdown reaches zero the
// session advances on its own, scoring the question as unanswered unless a
// selection was recorded. Ticks after the session finished are ignored.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return
	}
	s.remaining--
	s.totalTime++
	if s.remaining <= 0 {
		s.advanceLocked()
	}
}

func (s *Session) advanceLocked() {
	q := s.questions[s.current]
	s.answers = append(s.answers, model.QuizAnswer{
		QuestionID:     q.ID,
		SelectedAnswer: s.selected,
		IsCorrect:      s.selected == q.CorrectAnswer,
		TimeSpent:      s.budget - s.remaining,
	})

	if s.current == len(s.questions)-1 {
		correct := 0
		for _, a := range s.answers {
			if a.IsCorrect {
				correct++
			}
		}
		s.result = &model.QuizResult{
			PlayerName:     s.PlayerName,
			PlayerSchool:   s.PlayerSchool,
			TotalScore:     int(math.Round(float64(correct) / float64(len(s.questions)) * 100)),
			CorrectAnswers: correct,
			TotalQuestions: len(s.questions),
			TotalTime:      s.totalTime,
			Answers:        s.answers,
		}
		return
	}

	s.current++
	s.selected = model.Unanswered
	s.remaining = s.budget
}

// Snapshot is a consistent view of a session for rendering.
type Snapshot struct {
	State          State
	QuestionIndex  int
	TotalQuestions int
	TimeLeft       int
	Selected       int
	TotalTime      int
	Question       model.QuizQuestion
	Result         *model.QuizResult
}

// Snapshot returns the session's current state under the transition lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:          StateAwaitingAnswer,
		QuestionIndex:  s.current,
		TotalQuestions: len(s.questions),
		TimeLeft:       s.remaining,
		Selected:       s.selected,
		TotalTime:      s.totalTime,
	}
	if s.result != nil {
		snap.State = StateFinished
		snap.Result = s.result
		return snap
	}
	snap.Question = s.questions[s.current]
	return snap
}

// Finished reports whether the session has emitted its result.
func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result != nil
}
