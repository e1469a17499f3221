package quiz

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/minsukim/studydiag/internal/model"
)

//go:embed data/*.json
var dataFS embed.FS

// Bank holds the bundled read-only quiz reference data: the question bank and
// the school/player ranking tables. Completed sessions are never written back.
type Bank struct {
	Questions      []model.QuizQuestion
	SchoolRankings []model.SchoolRanking
	PlayerRankings []model.PlayerRanking
}

// LoadBank parses the embedded reference data and validates the question bank.
func LoadBank() (*Bank, error) {
	b := &Bank{}
	if err := loadJSON("data/questions.json", &b.Questions); err != nil {
		return nil, err
	}
	if err := loadJSON("data/school_rankings.json", &b.SchoolRankings); err != nil {
		return nil, err
	}
	if err := loadJSON("data/player_rankings.json", &b.PlayerRankings); err != nil {
		return nil, err
	}

	if len(b.Questions) == 0 {
		return nil, fmt.Errorf("question bank is empty")
	}
	for _, q := range b.Questions {
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("question %d has no options", q.ID)
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return nil, fmt.Errorf("question %d: correct answer %d out of range", q.ID, q.CorrectAnswer)
		}
	}
	return b, nil
}

func loadJSON(path string, v any) error {
	data, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// SchoolRank returns the 1-based position of the named school in the ranking
// table, or 0 when the school is not listed.
func (b *Bank) SchoolRank(name string) int {
	for i, s := range b.SchoolRankings {
		if s.Name == name {
			return i + 1
		}
	}
	return 0
}

// SimulatedPlayerRank places a fresh result after every listed player. The
// tables are static; new results never enter them.
func (b *Bank) SimulatedPlayerRank() int {
	return len(b.PlayerRankings) + 1
}
