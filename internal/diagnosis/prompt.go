package diagnosis

import (
	"fmt"
	"strings"

	"github.com/minsukim/studydiag/internal/model"
)

// systemPrompt pins the completion service to the report JSON schema. The
// urgency policy is restated here, but the parsed reply is re-checked against
// the deterministic policy anyway.
const systemPrompt = `당신은 경험이 풍부한 학습 전문가이자 교육 컨설턴트입니다.
학생들의 학습 현황을 분석하고 맞춤형 솔루션을 제공하는 것이 전문 분야입니다.
한국의 고등학교 교육 시스템과 대학 입시에 대해 깊이 알고 있으며,
학생 개개인의 특성에 맞는 구체적이고 실행 가능한 조언을 제공합니다.

응답은 반드시 다음 JSON 형식으로만 제공하세요:
{
  "overallAssessment": "전체적인 진단 (250자 이내)",
  "strengthsAndWeaknesses": {
    "strengths": ["강점1", "강점2", "강점3"],
    "weaknesses": ["약점1", "약점2", "약점3"]
  },
  "recommendations": {
    "immediate": ["즉시실행1", "즉시실행2", "즉시실행3"],
    "shortTerm": ["단기계획1", "단기계획2", "단기계획3"],
    "longTerm": ["장기목표1", "장기목표2", "장기목표3"]
  },
  "studyPlan": {
    "daily": "일일 학습 계획",
    "weekly": "주별 학습 계획",
    "monthly": "월별 학습 계획"
  },
  "additionalResources": ["추천자료1", "추천자료2", "추천자료3", "추천자료4"],
  "urgencyLevel": "low|medium|high"
}`

// BuildUserPrompt substitutes every survey field, translated to its display
// label, into the fixed diagnosis request template.
func BuildUserPrompt(in model.DiagnosisInput) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "다음은 고등학교 %s학년 학생 %q님의 학습 진단 정보입니다.\n\n", in.Grade, in.StudentName)

	sb.WriteString("【기본 정보】\n")
	fmt.Fprintf(&sb, "- 현재 성적대: %s\n", model.GradeLevelLabel(in.CurrentGradeLevel))
	fmt.Fprintf(&sb, "- 일일 학습시간: %d시간\n", in.DailyStudyHours)
	fmt.Fprintf(&sb, "- 학습 스타일: %s\n\n", model.StudyStyleLabel(in.StudyStyle))

	sb.WriteString("【과목별 현황】\n")
	fmt.Fprintf(&sb, "- 어려워하는 과목: %s\n", orNone(subjectList(in.WeakSubjects)))
	fmt.Fprintf(&sb, "- 잘하는 과목: %s\n\n", orNone(subjectList(in.StrongSubjects)))

	sb.WriteString("【목표 및 고민】\n")
	fmt.Fprintf(&sb, "- 주요 목표: %s\n", orNone(goalList(in.Goals)))
	fmt.Fprintf(&sb, "- 주요 고민: %s\n\n", orNone(concernList(in.MainConcerns)))

	sb.WriteString("【상세 상황】\n")
	fmt.Fprintf(&sb, "- 현재 학습 상황: %s\n", orUnknown(in.CurrentSituation))
	fmt.Fprintf(&sb, "- 이전 노력: %s\n", orUnknown(in.PreviousEfforts))
	fmt.Fprintf(&sb, "- 구체적 고민: %s\n\n", orUnknown(in.SpecificConcern))

	sb.WriteString("이 학생의 현재 상황을 종합적으로 분석하여 맞춤형 학습 진단을 제공해주세요.\n")
	sb.WriteString("특히 다음 사항을 고려해주세요:\n")
	sb.WriteString("1. 학생의 현재 성적대와 목표 간의 격차\n")
	sb.WriteString("2. 약한 과목에 대한 구체적인 학습 전략\n")
	sb.WriteString("3. 학습 시간과 효율성의 균형\n")
	sb.WriteString("4. 고3이라면 입시까지의 시간적 긴박성\n")
	sb.WriteString("5. 학생이 직접 언급한 구체적인 고민사항\n\n")
	sb.WriteString("실행 가능하고 구체적인 조언을 중심으로 진단해주세요.\n")

	return sb.String()
}

func goalList(set model.OptionSet[model.GoalType]) string {
	labels := make([]string, 0, set.Len())
	for _, g := range set.Values() {
		labels = append(labels, model.GoalLabel(g))
	}
	return strings.Join(labels, ", ")
}

func concernList(set model.OptionSet[model.ConcernType]) string {
	labels := make([]string, 0, set.Len())
	for _, c := range set.Values() {
		labels = append(labels, model.ConcernLabel(c))
	}
	return strings.Join(labels, ", ")
}

func orNone(s string) string {
	if s == "" {
		return "없음"
	}
	return s
}

func orUnknown(s string) string {
	if s == "" {
		return "정보 없음"
	}
	return s
}
