package diagnosis

import (
	"strings"
	"testing"

	"github.com/minsukim/studydiag/internal/model"
)

func baseInput() model.DiagnosisInput {
	return model.DiagnosisInput{
		UserType:          model.UserStudent,
		StudentName:       "김민준",
		Grade:             model.Grade1,
		CurrentGradeLevel: model.LevelUpper,
		WeakSubjects:      model.NewOptionSet[model.Subject](),
		StrongSubjects:    model.NewOptionSet[model.Subject](),
		DailyStudyHours:   3,
		StudyStyle:        model.StyleReading,
		Goals:             model.NewOptionSet[model.GoalType](),
		MainConcerns:      model.NewOptionSet[model.ConcernType](),
	}
}

func TestUrgencyPolicy(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*model.DiagnosisInput)
		want model.UrgencyLevel
	}{
		{"default is low", func(in *model.DiagnosisInput) {}, model.UrgencyLow},
		{"lower tier is high", func(in *model.DiagnosisInput) {
			in.CurrentGradeLevel = model.LevelLower
		}, model.UrgencyHigh},
		{"grades concern is high", func(in *model.DiagnosisInput) {
			in.MainConcerns.Toggle(model.ConcernGrades)
		}, model.UrgencyHigh},
		{"third grade is high", func(in *model.DiagnosisInput) {
			in.Grade = model.Grade3
		}, model.UrgencyHigh},
		{"middle tier is medium", func(in *model.DiagnosisInput) {
			in.CurrentGradeLevel = model.LevelMiddle
		}, model.UrgencyMedium},
		{"three concerns is medium even at top tier", func(in *model.DiagnosisInput) {
			in.CurrentGradeLevel = model.LevelTop
			in.MainConcerns.Toggle(model.ConcernMotivation)
			in.MainConcerns.Toggle(model.ConcernConcentration)
			in.MainConcerns.Toggle(model.ConcernStudyMethod)
		}, model.UrgencyMedium},
		{"high beats medium when both match", func(in *model.DiagnosisInput) {
			in.CurrentGradeLevel = model.LevelMiddle
			in.MainConcerns.Toggle(model.ConcernMotivation)
			in.MainConcerns.Toggle(model.ConcernConcentration)
			in.MainConcerns.Toggle(model.ConcernGrades)
		}, model.UrgencyHigh},
		{"two concerns stay low", func(in *model.DiagnosisInput) {
			in.MainConcerns.Toggle(model.ConcernMotivation)
			in.MainConcerns.Toggle(model.ConcernConcentration)
		}, model.UrgencyLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput()
			tt.mod(&in)
			if got := urgencyFor(in); got != tt.want {
				t.Errorf("urgencyFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFallbackListsNeverEmpty(t *testing.T) {
	// The emptiest possible input still yields one strength and one weakness.
	in := baseInput()
	in.DailyStudyHours = 0

	report := Fallback(in)
	if len(report.StrengthsAndWeaknesses.Strengths) == 0 {
		t.Error("strengths must not be empty")
	}
	if len(report.StrengthsAndWeaknesses.Weaknesses) == 0 {
		t.Error("weaknesses must not be empty")
	}
}

func TestFallbackStrengths(t *testing.T) {
	in := baseInput()
	in.StrongSubjects.Toggle(model.SubjectMath)
	in.StrongSubjects.Toggle(model.SubjectEnglish)
	in.DailyStudyHours = 4
	in.Goals.Toggle(model.GoalUniversity)

	got := Fallback(in).StrengthsAndWeaknesses.Strengths
	if len(got) != 3 {
		t.Fatalf("expected 3 strengths, got %d: %v", len(got), got)
	}
	if !strings.Contains(got[0], "영어, 수학") {
		t.Errorf("strong subject sentence should list labels, got %q", got[0])
	}
}

func TestFallbackWeaknessConcernMapping(t *testing.T) {
	in := baseInput()
	in.MainConcerns.Toggle(model.ConcernTimeManagement)
	in.MainConcerns.Toggle(model.ConcernCareer) // no mapped sentence

	got := Fallback(in).StrengthsAndWeaknesses.Weaknesses
	if len(got) != 1 {
		t.Fatalf("expected 1 weakness, got %d: %v", len(got), got)
	}
	if got[0] != "효율적인 시간 관리가 필요합니다" {
		t.Errorf("unexpected weakness sentence: %q", got[0])
	}
}

func TestFallbackRecommendationExtras(t *testing.T) {
	tests := []struct {
		name          string
		style         model.StudyStyle
		level         model.GradeLevel
		wantImmediate int
		wantShortTerm int
	}{
		{"visual adds immediate", model.StyleVisual, model.LevelTop, 4, 3},
		{"auditory adds immediate", model.StyleAuditory, model.LevelTop, 4, 3},
		{"kinesthetic adds nothing", model.StyleKinesthetic, model.LevelTop, 3, 3},
		{"reading adds nothing", model.StyleReading, model.LevelUpper, 3, 3},
		{"middle tier extends short term", model.StyleReading, model.LevelMiddle, 3, 4},
		{"lower tier extends short term", model.StyleReading, model.LevelLower, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInput()
			in.StudyStyle = tt.style
			in.CurrentGradeLevel = tt.level
			rec := Fallback(in).Recommendations
			if len(rec.Immediate) != tt.wantImmediate {
				t.Errorf("immediate = %d items, want %d", len(rec.Immediate), tt.wantImmediate)
			}
			if len(rec.ShortTerm) != tt.wantShortTerm {
				t.Errorf("shortTerm = %d items, want %d", len(rec.ShortTerm), tt.wantShortTerm)
			}
			if len(rec.LongTerm) != 3 {
				t.Errorf("longTerm = %d items, want 3", len(rec.LongTerm))
			}
		})
	}
}

func TestFallbackDailyPlanCap(t *testing.T) {
	tests := []struct {
		hours int
		want  string
	}{
		{0, "매일 1시간"},
		{3, "매일 4시간"},
		{7, "매일 8시간"},
		{10, "매일 8시간"},
		{100, "매일 8시간"},
	}

	for _, tt := range tests {
		in := baseInput()
		in.DailyStudyHours = tt.hours
		daily := Fallback(in).StudyPlan.Daily
		if !strings.HasPrefix(daily, tt.want) {
			t.Errorf("hours=%d: daily plan %q, want prefix %q", tt.hours, daily, tt.want)
		}
	}
}

func TestFallbackAssessmentComposition(t *testing.T) {
	in := baseInput()
	in.CurrentGradeLevel = model.LevelMiddle
	in.DailyStudyHours = 2

	report := Fallback(in)
	if !strings.Contains(report.OverallAssessment, "중위권으로") {
		t.Error("assessment should include the tier sentence")
	}
	if !strings.Contains(report.OverallAssessment, "학습시간이 부족합니다") {
		t.Error("assessment should include the low study-time sentence")
	}
	if strings.Contains(report.OverallAssessment, "단계적인 접근") {
		t.Error("assessment should not mention the specific concern when empty")
	}

	in.SpecificConcern = "수학 점수가 계속 떨어져요"
	report = Fallback(in)
	if !strings.Contains(report.OverallAssessment, "단계적인 접근이 필요합니다") {
		t.Error("assessment should append the concern note when present")
	}
}

func TestStudyTimeBucket(t *testing.T) {
	tests := []struct {
		hours int
		want  string
	}{
		{0, "low"}, {2, "low"}, {3, "moderate"}, {6, "moderate"}, {7, "high"}, {12, "high"},
	}
	for _, tt := range tests {
		if got := studyTimeBucket(tt.hours); got != tt.want {
			t.Errorf("studyTimeBucket(%d) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}

func TestFallbackResourcesFixed(t *testing.T) {
	if got := len(Fallback(baseInput()).AdditionalResources); got != 4 {
		t.Errorf("expected 4 resource items, got %d", got)
	}
}
