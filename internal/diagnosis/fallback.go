package diagnosis

import (
	"fmt"
	"strings"

	"github.com/minsukim/studydiag/internal/model"
)

// maxDailyPlanHours caps the recommended daily study time.
const maxDailyPlanHours = 8

var gradeLevelAssessments = map[model.GradeLevel]string{
	model.LevelTop:    "현재 상위권을 유지하고 있어 기본 실력은 우수합니다.",
	model.LevelUpper:  "중상위권으로 상위권 도약 가능성이 높습니다.",
	model.LevelMiddle: "중위권으로 체계적인 학습으로 상당한 향상이 가능합니다.",
	model.LevelLower:  "기초부터 차근차근 다져나가면 분명히 성과를 볼 수 있습니다.",
}

var studyTimeAssessments = map[string]string{
	"low":      "현재 학습시간이 부족합니다.",
	"moderate": "적절한 학습시간을 유지하고 있습니다.",
	"high":     "충분한 학습시간을 투자하고 있습니다.",
}

var concernWeaknesses = map[model.ConcernType]string{
	model.ConcernMotivation:     "학습 동기부여에 어려움이 있습니다",
	model.ConcernTimeManagement: "효율적인 시간 관리가 필요합니다",
	model.ConcernStudyMethod:    "본인에게 맞는 학습법을 찾지 못했습니다",
	model.ConcernConcentration:  "집중력 향상이 필요합니다",
	model.ConcernGrades:         "성적 향상을 위한 체계적 접근이 필요합니다",
}

// studyTimeBucket classifies daily study hours: at most 2 is low, at most 6
// is moderate, anything above is high.
func studyTimeBucket(hours int) string {
	switch {
	case hours <= 2:
		return "low"
	case hours <= 6:
		return "moderate"
	default:
		return "high"
	}
}

// Fallback computes a diagnosis report purely from deterministic rules over
// the input. It is used whenever the completion service is unconfigured,
// unreachable, or returns content that cannot be parsed, and it always
// produces non-empty strength and weakness lists.
func Fallback(in model.DiagnosisInput) model.DiagnosisReport {
	var assessment strings.Builder
	assessment.WriteString(gradeLevelAssessments[in.CurrentGradeLevel])
	assessment.WriteString(" ")
	assessment.WriteString(studyTimeAssessments[studyTimeBucket(in.DailyStudyHours)])
	assessment.WriteString(" 현재 가장 중요한 것은 체계적인 학습 계획 수립과 약한 과목에 대한 집중적인 보완입니다.")
	if in.SpecificConcern != "" {
		assessment.WriteString(" 특히 언급하신 고민에 대해서는 단계적인 접근이 필요합니다.")
	}

	return model.DiagnosisReport{
		OverallAssessment: assessment.String(),
		StrengthsAndWeaknesses: model.StrengthsAndWeaknesses{
			Strengths:  fallbackStrengths(in),
			Weaknesses: fallbackWeaknesses(in),
		},
		Recommendations: fallbackRecommendations(in),
		StudyPlan: model.StudyPlan{
			Daily:   fmt.Sprintf("매일 %d시간 학습, 약한 과목 1시간 필수 포함", min(in.DailyStudyHours+1, maxDailyPlanHours)),
			Weekly:  "주 5일 정규 학습, 주말에 복습 및 모의고사 풀이",
			Monthly: "월말 성과 점검, 학습 방법 개선점 찾기, 다음 달 목표 설정",
		},
		AdditionalResources: []string{
			"약한 과목 기초 문제집 및 개념서",
			"학습 계획 및 시간 관리 앱 (Forest, 스터디플래너 등)",
			"온라인 강의 플랫폼 (강점 과목은 심화, 약점 과목은 기초)",
			"학습법 관련 도서 (효율적인 공부법, 시간 관리 등)",
		},
		UrgencyLevel: urgencyFor(in),
	}
}

func fallbackStrengths(in model.DiagnosisInput) []string {
	var strengths []string
	if in.StrongSubjects.Len() > 0 {
		strengths = append(strengths, subjectList(in.StrongSubjects)+" 과목에서 좋은 실력을 보유하고 있습니다")
	}
	if in.DailyStudyHours >= 4 {
		strengths = append(strengths, "충분한 학습시간을 확보하고 있어 성실성이 돋보입니다")
	}
	if in.Goals.Len() > 0 {
		strengths = append(strengths, "명확한 목표를 가지고 있어 동기부여가 잘 되어 있습니다")
	}
	if len(strengths) == 0 {
		strengths = append(strengths, "진단을 통해 현재 상황을 객관적으로 파악하려는 의지가 있습니다")
	}
	return strengths
}

func fallbackWeaknesses(in model.DiagnosisInput) []string {
	var weaknesses []string
	if in.WeakSubjects.Len() > 0 {
		weaknesses = append(weaknesses, subjectList(in.WeakSubjects)+" 과목에서 어려움을 겪고 있습니다")
	}
	for _, c := range in.MainConcerns.Values() {
		// Concern codes without a mapped sentence (e.g. career) add nothing.
		if w, ok := concernWeaknesses[c]; ok {
			weaknesses = append(weaknesses, w)
		}
	}
	if len(weaknesses) == 0 {
		weaknesses = append(weaknesses, "현재 특별한 약점은 발견되지 않았으나, 더 체계적인 학습으로 향상 가능합니다")
	}
	return weaknesses
}

func fallbackRecommendations(in model.DiagnosisInput) model.Recommendations {
	immediate := []string{
		"오늘부터 하루 30분씩 약한 과목 기초 복습하기",
		"스마트폰 사용 시간을 30분 줄이고 학습에 집중하기",
		"학습 환경 정리하고 집중할 수 있는 공간 만들기",
	}
	switch in.StudyStyle {
	case model.StyleVisual:
		immediate = append(immediate, "컬러펜과 도표를 활용한 시각적 정리법 시작하기")
	case model.StyleAuditory:
		immediate = append(immediate, "중요 내용을 소리내어 읽고 녹음해서 반복 듣기")
	}

	shortTerm := []string{
		"약한 과목 전용 오답노트 만들어 주 2회 복습하기",
		"학습 계획표 작성하고 매일 실행 여부 체크하기",
		"월 1회 모의고사 풀고 분석하는 습관 만들기",
	}
	if in.CurrentGradeLevel == model.LevelLower || in.CurrentGradeLevel == model.LevelMiddle {
		shortTerm = append(shortTerm, "기초 개념부터 차근차근 다시 정리하기")
	}

	longTerm := []string{
		"체계적인 학습 습관을 통해 꾸준한 성적 향상 달성하기",
		"자기주도 학습 능력을 기르고 스스로 학습 계획 수립하기",
		"목표 대학이나 진로에 맞는 구체적인 로드맵 완성하기",
	}

	return model.Recommendations{Immediate: immediate, ShortTerm: shortTerm, LongTerm: longTerm}
}

// urgencyFor is the triage policy. The conditions short-circuit in strict
// priority order: any high condition wins, medium is only reachable when no
// high condition matched.
func urgencyFor(in model.DiagnosisInput) model.UrgencyLevel {
	if in.CurrentGradeLevel == model.LevelLower ||
		in.MainConcerns.Has(model.ConcernGrades) ||
		in.Grade == model.Grade3 {
		return model.UrgencyHigh
	}
	if in.CurrentGradeLevel == model.LevelMiddle || in.MainConcerns.Len() >= 3 {
		return model.UrgencyMedium
	}
	return model.UrgencyLow
}

func subjectList(set model.OptionSet[model.Subject]) string {
	labels := make([]string, 0, set.Len())
	for _, s := range set.Values() {
		labels = append(labels, model.SubjectLabel(s))
	}
	return strings.Join(labels, ", ")
}
