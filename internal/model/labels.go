package model

// Display labels shown to users and substituted into the diagnosis prompt.
// Unknown codes fall back to the raw code so a stale client can never make
// label lookup fail.

var subjectLabels = map[Subject]string{
	SubjectKorean:  "국어",
	SubjectEnglish: "영어",
	SubjectMath:    "수학",
	SubjectScience: "과학",
	SubjectSocial:  "사회",
	SubjectOther:   "기타",
}

// SubjectLabel returns the display name for a subject code.
func SubjectLabel(s Subject) string {
	if l, ok := subjectLabels[s]; ok {
		return l
	}
	return string(s)
}

var gradeLevelLabels = map[GradeLevel]string{
	LevelTop:    "상위권 (1-2등급)",
	LevelUpper:  "중상위권 (3-4등급)",
	LevelMiddle: "중위권 (5-6등급)",
	LevelLower:  "하위권 (7-9등급)",
}

// GradeLevelLabel returns the display name for a performance tier.
func GradeLevelLabel(l GradeLevel) string {
	if s, ok := gradeLevelLabels[l]; ok {
		return s
	}
	return string(l)
}

var studyStyleLabels = map[StudyStyle]string{
	StyleVisual:      "시각적 학습",
	StyleAuditory:    "청각적 학습",
	StyleKinesthetic: "체험적 학습",
	StyleReading:     "읽기/쓰기 학습",
}

// StudyStyleLabel returns the display name for a study style.
func StudyStyleLabel(s StudyStyle) string {
	if l, ok := studyStyleLabels[s]; ok {
		return l
	}
	return string(s)
}

var goalLabels = map[GoalType]string{
	GoalUniversity:       "대학 진학",
	GoalGradeImprovement: "성적 향상",
	GoalHabitBuilding:    "학습 습관 형성",
	GoalExamPrep:         "시험 대비",
}

// GoalLabel returns the display name for a goal code.
func GoalLabel(g GoalType) string {
	if l, ok := goalLabels[g]; ok {
		return l
	}
	return string(g)
}

var concernLabels = map[ConcernType]string{
	ConcernMotivation:     "공부 의욕 부족",
	ConcernTimeManagement: "시간 관리 문제",
	ConcernStudyMethod:    "공부 방법 모름",
	ConcernConcentration:  "집중력 부족",
	ConcernGrades:         "성적이 오르지 않음",
	ConcernCareer:         "진로 고민",
}

// ConcernLabel returns the display name for a concern code.
func ConcernLabel(c ConcernType) string {
	if l, ok := concernLabels[c]; ok {
		return l
	}
	return string(c)
}
