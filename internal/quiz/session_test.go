package quiz

import (
	"testing"

	"github.com/minsukim/studydiag/internal/model"
)

func testQuestions() []model.QuizQuestion {
	return []model.QuizQuestion{
		{ID: 1, Subject: "수학", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0},
		{ID: 2, Subject: "영어", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 2},
		{ID: 3, Subject: "국어", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0},
		{ID: 4, Subject: "과학", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0},
		{ID: 5, Subject: "사회", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 3},
	}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession("김수학", "서울고등학교", testQuestions(), 60)
}

func TestAllCorrectScoresHundred(t *testing.T) {
	s := newTestSession(t)
	answers := []int{0, 2, 0, 0, 3}

	var result *model.QuizResult
	for i, a := range answers {
		if err := s.Select(a); err != nil {
			t.Fatalf("Select(%d) on question %d: %v", a, i, err)
		}
		r, err := s.Advance()
		if err != nil {
			t.Fatalf("Advance on question %d: %v", i, err)
		}
		result = r
	}

	if result == nil {
		t.Fatal("expected result after the last advance")
	}
	if result.TotalScore != 100 {
		t.Errorf("TotalScore = %d, want 100", result.TotalScore)
	}
	if result.CorrectAnswers != 5 {
		t.Errorf("CorrectAnswers = %d, want 5", result.CorrectAnswers)
	}
	if result.TotalQuestions != 5 {
		t.Errorf("TotalQuestions = %d, want 5", result.TotalQuestions)
	}
	if len(result.Answers) != 5 {
		t.Errorf("answers = %d entries, want 5", len(result.Answers))
	}
}

func TestCountdownExpiryScoresUnanswered(t *testing.T) {
	s := NewSession("p", "s", testQuestions(), 3)

	for range 3 {
		s.Tick()
	}

	snap := s.Snapshot()
	if snap.State != StateAwaitingAnswer {
		t.Fatalf("state = %q, want awaiting_answer", snap.State)
	}
	if snap.QuestionIndex != 1 {
		t.Errorf("expiry should advance exactly one question, index = %d", snap.QuestionIndex)
	}
	if snap.TimeLeft != 3 {
		t.Errorf("countdown should reseed to budget, got %d", snap.TimeLeft)
	}

	s.mu.Lock()
	a := s.answers[0]
	s.mu.Unlock()
	if a.SelectedAnswer != model.Unanswered {
		t.Errorf("SelectedAnswer = %d, want %d", a.SelectedAnswer, model.Unanswered)
	}
	if a.IsCorrect {
		t.Error("expired question must be scored incorrect")
	}
	if a.TimeSpent != 3 {
		t.Errorf("TimeSpent = %d, want full budget 3", a.TimeSpent)
	}
}

func TestSelectionOverwrite(t *testing.T) {
	s := newTestSession(t)

	// Only the last selection before the advance counts.
	for _, opt := range []int{1, 3, 0} {
		if err := s.Select(opt); err != nil {
			t.Fatalf("Select(%d): %v", opt, err)
		}
	}
	if _, err := s.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	s.mu.Lock()
	a := s.answers[0]
	s.mu.Unlock()
	if a.SelectedAnswer != 0 {
		t.Errorf("SelectedAnswer = %d, want last selection 0", a.SelectedAnswer)
	}
	if !a.IsCorrect {
		t.Error("last selection was the correct option")
	}
}

func TestSelectInvalidOption(t *testing.T) {
	s := newTestSession(t)
	if err := s.Select(4); err != ErrInvalidOption {
		t.Errorf("Select(4) = %v, want ErrInvalidOption", err)
	}
	if err := s.Select(-1); err != ErrInvalidOption {
		t.Errorf("Select(-1) = %v, want ErrInvalidOption", err)
	}
}

func TestFinishedSessionRejectsTransitions(t *testing.T) {
	s := newTestSession(t)
	for range 5 {
		if _, err := s.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}

	if !s.Finished() {
		t.Fatal("session should be finished after 5 advances")
	}
	if err := s.Select(0); err != ErrSessionFinished {
		t.Errorf("Select after finish = %v, want ErrSessionFinished", err)
	}
	if _, err := s.Advance(); err != ErrSessionFinished {
		t.Errorf("Advance after finish = %v, want ErrSessionFinished", err)
	}

	// Late ticks are ignored; the answer list never grows past the bank.
	s.Tick()
	s.Tick()
	snap := s.Snapshot()
	if len(snap.Result.Answers) != 5 {
		t.Errorf("answers = %d entries, want 5", len(snap.Result.Answers))
	}
}

func TestScoreRounding(t *testing.T) {
	// 2 of 5 correct: round(40) = 40; 1 of 3 correct: round(33.3) = 33.
	s := newTestSession(t)
	_ = s.Select(0) // correct
	_, _ = s.Advance()
	_ = s.Select(2) // correct
	_, _ = s.Advance()
	for range 3 {
		_, _ = s.Advance() // unanswered
	}
	snap := s.Snapshot()
	if snap.Result.TotalScore != 40 {
		t.Errorf("TotalScore = %d, want 40", snap.Result.TotalScore)
	}

	three := NewSession("p", "s", testQuestions()[:3], 60)
	_ = three.Select(0) // correct
	_, _ = three.Advance()
	_, _ = three.Advance()
	result, _ := three.Advance()
	if result.TotalScore != 33 {
		t.Errorf("TotalScore = %d, want 33", result.TotalScore)
	}
}

func TestTotalTimeAccumulatesAcrossQuestions(t *testing.T) {
	s := NewSession("p", "s", testQuestions(), 60)

	s.Tick()
	s.Tick()
	_, _ = s.Advance() // 2s on question 1
	s.Tick()
	_, _ = s.Advance() // 1s on question 2

	snap := s.Snapshot()
	if snap.TotalTime != 3 {
		t.Errorf("TotalTime = %d, want 3", snap.TotalTime)
	}

	s.mu.Lock()
	t1, t2 := s.answers[0].TimeSpent, s.answers[1].TimeSpent
	s.mu.Unlock()
	if t1 != 2 || t2 != 1 {
		t.Errorf("TimeSpent = %d,%d, want 2,1", t1, t2)
	}
}

func TestSnapshotHidesNothingButMatchesState(t *testing.T) {
	s := newTestSession(t)
	snap := s.Snapshot()
	if snap.State != StateAwaitingAnswer {
		t.Errorf("state = %q", snap.State)
	}
	if snap.Question.ID != 1 {
		t.Errorf("question ID = %d, want 1", snap.Question.ID)
	}
	if snap.Selected != model.Unanswered {
		t.Errorf("selected = %d, want unanswered sentinel", snap.Selected)
	}
	if snap.TimeLeft != 60 {
		t.Errorf("time left = %d, want 60", snap.TimeLeft)
	}
}
